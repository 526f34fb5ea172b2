package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags records what normalization happened when a file was registered.
	FileFlags uint8
)

const (
	// FileVirtual marks content registered from memory (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM is set when a UTF-8 byte order mark was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF is set when CRLF line endings were rewritten to LF.
	FileNormalizedCRLF
)

// File holds the registered content and metadata of one source file.
// Content is immutable after registration; spans index into it by byte.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags

	lineIdx []uint32 // byte offset of every '\n' in Content
}

// LineCol is a human-readable position, both components 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}
