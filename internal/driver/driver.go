// Package driver runs whole files through the front end: lex, parse with
// interleaved binding, finalize, then the follow-up pass that reports
// type names no definition ever arrived for. Multi-file runs bind files
// concurrently; every file gets its own interner, type table, AST context
// and binder, so workers share nothing but the FileSet they read from.
package driver

import (
	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/observ"
	"github.com/BluPerf/swift/internal/sema"
	"github.com/BluPerf/swift/internal/source"
)

// Options configures a bind run. The zero value is usable: unlimited
// diagnostics, GOMAXPROCS workers, no cache, no progress, no timings.
type Options struct {
	// MaxDiagnostics caps each file's diagnostic bag; 0 means unlimited.
	MaxDiagnostics int
	// Jobs is the number of parallel file workers; <= 0 means GOMAXPROCS.
	Jobs int
	// Sema carries the per-unit binder switches.
	Sema sema.Options
	// Cache, when set, serves and stores per-file bind results keyed by
	// content hash.
	Cache *DiskCache
	// Sink receives progress events; nil means none are sent.
	Sink Sink
	// Timer, when set, accumulates per-phase durations.
	Timer *observ.Timer
}

// Stats counts what one bind produced, prelude declarations excluded.
type Stats struct {
	Items   int `msgpack:"items" json:"items"`
	Values  int `msgpack:"values" json:"values"`
	Aliases int `msgpack:"aliases" json:"aliases"`
	Exprs   int `msgpack:"exprs" json:"exprs"`
	// Pending is how many type names stayed undefined through the whole
	// unit; each produced one error in the follow-up pass.
	Pending int `msgpack:"pending" json:"pending"`
}

// UnitResult is the outcome of binding one file.
type UnitResult struct {
	// Path is the load path, or the virtual name for in-memory sources.
	Path   string
	FileID source.FileID

	// Unit is the finalized translation unit inside Ctx. NoUnitID when
	// the result was served from cache or the file failed to load.
	Unit ast.UnitID
	// Ctx owns the unit's AST; nil for cached and failed results.
	Ctx *ast.Context
	// Names is the interner the unit's identifiers live in; nil for
	// cached and failed results.
	Names *source.Interner

	// Pending lists the aliases still unresolved at end of unit, already
	// reported into Bag as undeclared-type errors.
	Pending []ast.AliasID

	Bag   *diag.Bag
	Stats Stats

	// FromCache marks results rehydrated from the disk cache.
	FromCache bool
}
