package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/trace"
)

// ListSwiftFiles returns the sorted relative walk of every *.swift file
// under dir.
func ListSwiftFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".swift") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Deterministic order regardless of walk internals.
	sort.Strings(files)
	return files, nil
}

// BindDir binds every *.swift file under dir. See BindFiles.
func BindDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []UnitResult, error) {
	files, err := ListSwiftFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	return BindFiles(ctx, files, opts)
}

// BindFiles binds the given files concurrently, one isolated pipeline per
// file, and returns results in input order. Load failures become
// IOReadFailed diagnostics in the affected file's bag; the only Go errors
// are context cancellation. The FileSet is written before workers start
// and read-only after, so workers share it safely.
func BindFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []UnitResult, error) {
	fileSet := source.NewFileSet()
	if len(paths) == 0 {
		return fileSet, nil, nil
	}

	tr := trace.FromContext(ctx)
	run := trace.Begin(tr, trace.ScopeDriver, "bind", 0)
	defer run.End("")

	emit(opts.Sink, Event{Stage: StageBind, Status: StatusWorking, Total: len(paths)})

	loadPhase := opts.Timer.Begin("load")
	fileIDs := make(map[string]source.FileID, len(paths))
	loadErrors := make(map[string]error, len(paths))
	for _, path := range paths {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	opts.Timer.End(loadPhase, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per worker, so no mutex around results.
	results := make([]UnitResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOReadFailed, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = UnitResult{Path: path, Bag: bag}
				emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusError, Errors: 1})
				return nil
			}

			fileSpan := trace.Begin(tr, trace.ScopeFile, "file:"+path, run.ID())
			results[i] = bindLoaded(tr, fileSpan.ID(), fileSet, fileIDs[path], path, opts)
			fileSpan.End("")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	errors := 0
	for i := range results {
		errors += results[i].Bag.ErrorCount()
	}
	status := StatusDone
	if errors > 0 {
		status = StatusError
	}
	emit(opts.Sink, Event{Stage: StageBind, Status: status, Errors: errors, Total: len(paths)})
	return fileSet, results, nil
}
