package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet registers source files and resolves spans to line/column positions.
// FileIDs are dense and stable for the lifetime of the set.
type FileSet struct {
	files []File
	index map[string]FileID // normalized path -> most recent ID
}

func NewFileSet() *FileSet {
	return &FileSet{
		index: make(map[string]FileID),
	}
}

// Add registers already-normalized content under path and returns its new ID.
// Re-adding a path keeps the old file reachable by ID; Find returns the
// newest version.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("source: file count overflow: %w", err))
	}
	id := FileID(n)
	normalized := normalizePath(path)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    normalized,
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
		lineIdx: buildLineIndex(content),
	})
	fs.index[normalized] = id
	return id
}

// Load reads path from disk, strips a UTF-8 BOM, normalizes CRLF to LF, and
// registers the result.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path comes from the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, hadBOM := stripBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	var flags FileFlags
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual registers in-memory content (tests, stdin).
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file for id.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// Find returns the most recently added file registered under path.
func (fs *FileSet) Find(path string) (*File, bool) {
	id, ok := fs.index[normalizePath(path)]
	if !ok {
		return nil, false
	}
	return &fs.files[id], true
}

// Len returns the number of registered files.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Resolve converts a span into 1-based line/column endpoints.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := &fs.files[span.File]
	return toLineCol(f.lineIdx, span.Start), toLineCol(f.lineIdx, span.End)
}

// Line returns the text of the 1-based line n without its terminator, or ""
// when the file has no such line.
func (f *File) Line(n uint32) string {
	if n == 0 {
		return ""
	}
	nl := uint32(len(f.lineIdx))
	size := uint32(len(f.Content))

	var start uint32
	switch {
	case n == 1:
		start = 0
	case n-2 < nl:
		start = f.lineIdx[n-2] + 1
	default:
		return ""
	}

	end := size
	if n-1 < nl {
		end = f.lineIdx[n-1]
	}
	if start >= size {
		return ""
	}
	return string(f.Content[start:end])
}

// NumLines returns how many lines the file has. A trailing newline does not
// start a new line; an empty file has one line.
func (f *File) NumLines() uint32 {
	n := uint32(len(f.lineIdx))
	if len(f.Content) == 0 || f.Content[len(f.Content)-1] == '\n' {
		if n == 0 {
			return 1
		}
		return n
	}
	return n + 1
}
