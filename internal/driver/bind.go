package driver

import (
	"time"

	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/lexer"
	"github.com/BluPerf/swift/internal/parser"
	"github.com/BluPerf/swift/internal/sema"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/trace"
	"github.com/BluPerf/swift/internal/types"
)

// BindSource binds one in-memory unit registered under name, returning
// the private FileSet alongside so callers can resolve spans. The cache
// is not consulted: virtual sources are for tests and stdin.
func BindSource(name string, src []byte, opts Options) (*source.FileSet, *UnitResult) {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, src)
	res := bindUnit(trace.Nop, 0, fileSet.Get(fileID), name, opts)
	return fileSet, &res
}

// BindFile loads one file into fileSet and binds it. A load failure
// surfaces as an IOReadFailed diagnostic in the result bag rather than a
// Go error, so multi-file runs keep going past a broken path.
func BindFile(fileSet *source.FileSet, path string, opts Options) *UnitResult {
	fileID, err := fileSet.Load(path)
	if err != nil {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.NewError(diag.IOReadFailed, source.Span{},
			"failed to load file: "+err.Error()))
		return &UnitResult{Path: path, Bag: bag}
	}
	res := bindLoaded(trace.Nop, 0, fileSet, fileID, path, opts)
	return &res
}

// bindLoaded binds an already-registered file, going through the disk
// cache when one is configured.
func bindLoaded(tr trace.Tracer, parent uint64, fileSet *source.FileSet, fileID source.FileID, path string, opts Options) UnitResult {
	file := fileSet.Get(fileID)

	if opts.Cache != nil {
		key := cacheKey(Digest(file.Hash), opts)
		var payload bindPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			if res, ok := payload.rehydrate(path, fileID, opts); ok {
				emit(opts.Sink, Event{File: path, Stage: StageBind, Status: StatusDone,
					Errors: res.Bag.ErrorCount(), FromCache: true})
				return res
			}
		}
	}

	res := bindUnit(tr, parent, file, path, opts)

	if opts.Cache != nil {
		_ = opts.Cache.Put(cacheKey(Digest(file.Hash), opts), snapshotResult(&res))
	}
	return res
}

// bindUnit is the whole per-file pipeline. Parsing drives the lexer and
// the binder in one pass, so "bind" covers all three; "resolve" is the
// follow-up pass over the pending list.
func bindUnit(tr trace.Tracer, parent uint64, file *source.File, path string, opts Options) UnitResult {
	emit(opts.Sink, Event{File: path, Stage: StageBind, Status: StatusWorking})
	started := time.Now()
	bindPhase := opts.Timer.Begin("bind " + path)

	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	names := source.NewInterner()
	ti := types.NewInterner()
	ctx := ast.NewContext(ast.Hints{})
	binder := sema.NewBinder(ctx, names, ti, reporter, opts.Sema)

	span := trace.Begin(tr, trace.ScopePass, "bind", parent)
	lx := lexer.New(file, lexer.Options{Reporter: reporter, Interner: names})
	parsed := parser.ParseUnit(lx, binder, parser.Options{
		MaxErrors: maxErrors(opts.MaxDiagnostics),
		Reporter:  reporter,
	})
	span.End(path)

	span = trace.Begin(tr, trace.ScopePass, "resolve", parent)
	pending := ctx.Unit(parsed.Unit).Unresolved
	reportUndeclared(reporter, ctx, names, pending)
	span.End(path)

	res := UnitResult{
		Path:    path,
		FileID:  file.ID,
		Unit:    parsed.Unit,
		Ctx:     ctx,
		Names:   names,
		Pending: pending,
		Bag:     bag,
		Stats: Stats{
			Items:   len(ctx.Unit(parsed.Unit).Items),
			Values:  int(ctx.Values.Len()),
			Aliases: int(ctx.Aliases.Len()) - binder.PreludeAliases(),
			Exprs:   int(ctx.Exprs.Len()),
			Pending: len(pending),
		},
	}

	opts.Timer.End(bindPhase, "")
	status := StatusDone
	if bag.HasErrors() {
		status = StatusError
	}
	emit(opts.Sink, Event{File: path, Stage: StageBind, Status: status,
		Errors: bag.ErrorCount(), Elapsed: time.Since(started)})
	return res
}

// reportUndeclared turns every alias that stayed unresolved through the
// unit into an error at its first reference.
func reportUndeclared(r diag.Reporter, ctx *ast.Context, names *source.Interner, pending []ast.AliasID) {
	for _, aliasID := range pending {
		decl := ctx.Alias(aliasID)
		spelling, ok := names.Lookup(decl.Name)
		if !ok {
			spelling = "_"
		}
		diag.ReportError(r, diag.SemaUnresolvedType, decl.Span,
			"use of undeclared type '"+spelling+"'").Emit()
	}
}

func maxErrors(maxDiagnostics int) uint {
	if maxDiagnostics <= 0 {
		return 0
	}
	return uint(maxDiagnostics)
}
