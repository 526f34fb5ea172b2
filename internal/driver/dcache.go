package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
)

// bindCacheSchema is bumped whenever bindPayload changes shape; older
// entries are then silently treated as misses.
const bindCacheSchema uint16 = 1

// Digest is a SHA-256 value: a file's content hash or a derived cache key.
type Digest [sha256.Size]byte

// DiskCache persists per-file bind results between runs. Entries are
// immutable once written; a changed file hashes to a different key. Safe
// for concurrent use, and a nil *DiskCache is a valid always-miss cache.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a cache under the user cache dir
// (XDG_CACHE_HOME or ~/.cache) in an app-named subdirectory.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	// A "bind" subdirectory keeps the root listable when other artifact
	// kinds join later.
	return filepath.Join(c.dir, "bind", hex.EncodeToString(key[:])+".mp")
}

// Put serializes payload under key, writing to a temp file and renaming
// so readers never observe a partial entry.
func (c *DiskCache) Put(key Digest, payload *bindPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get deserializes the entry under key into out. A missing entry is
// (false, nil), not an error.
func (c *DiskCache) Get(key Digest, out *bindPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll removes every cached entry: rename the root aside, then delete,
// so a concurrent reader sees either the old tree or nothing.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey derives the entry key from the file's content hash plus the
// option bits that change which diagnostics a bind produces. Binding the
// same bytes under different options must not share an entry.
func cacheKey(content Digest, opts Options) Digest {
	h := sha256.New()
	h.Write(content[:])
	var tail [9]byte
	if opts.Sema.RequireTopLevelTypes {
		tail[0] = 1
	}
	binary.LittleEndian.PutUint64(tail[1:], uint64(int64(opts.MaxDiagnostics)))
	h.Write(tail[:])
	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}

// cachedNote mirrors diag.Note with the span flattened to offsets; byte
// offsets survive across runs, FileIDs do not.
type cachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

type cachedDiag struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Notes    []cachedNote
}

// bindPayload is the on-disk form of one file's bind outcome.
type bindPayload struct {
	Schema uint16
	Path   string
	Stats  Stats
	Diags  []cachedDiag
}

// snapshotResult flattens a fresh result for storage.
func snapshotResult(res *UnitResult) *bindPayload {
	payload := &bindPayload{
		Schema: bindCacheSchema,
		Path:   res.Path,
		Stats:  res.Stats,
		Diags:  make([]cachedDiag, 0, res.Bag.Len()),
	}
	for _, d := range res.Bag.Items() {
		cd := cachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		payload.Diags = append(payload.Diags, cd)
	}
	return payload
}

// rehydrate rebuilds a UnitResult from a cached payload, rebasing spans
// onto the current FileID. Returns false for stale schemas.
func (p *bindPayload) rehydrate(path string, fileID source.FileID, opts Options) (UnitResult, bool) {
	if p.Schema != bindCacheSchema {
		return UnitResult{}, false
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	for _, cd := range p.Diags {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: fileID, Start: cd.Start, End: cd.End},
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: fileID, Start: n.Start, End: n.End},
				Msg:  n.Msg,
			})
		}
		bag.Add(d)
	}
	return UnitResult{
		Path:      path,
		FileID:    fileID,
		Bag:       bag,
		Stats:     p.Stats,
		FromCache: true,
	}, true
}
