package driver

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"arraylint/internal/ctxlog"
	"arraylint/internal/diag"
	"arraylint/internal/lexer"
	"arraylint/internal/observ"
	"arraylint/internal/source"
	"arraylint/internal/token"
)

// LintResult is the outcome of linting one file version.
type LintResult struct {
	FileSet *source.FileSet
	File    *source.File
	Stream  *token.Stream
	Bag     *diag.Bag
	Timing  *observ.Report
}

// Lint tokenizes the file id of fs and runs every rule over it. The
// returned bag is sorted.
func Lint(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) (*LintResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file := fs.Get(id)
	if file == nil {
		return nil, fmt.Errorf("lint: unknown file %d", id)
	}
	opts = opts.withDefaults()

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	rep := diag.NewDedupReporter(&diag.BagReporter{Bag: bag})

	idx := timer.Begin("tokenize")
	stream := lexer.Scan(file, lexer.Options{Reporter: rep, TabWidth: opts.TabWidth})
	timer.End(idx, fmt.Sprintf("tokens=%d", stream.Len()))

	idx = timer.Begin("rules")
	newDispatcher(opts.Rules).run(stream, rep)
	timer.End(idx, fmt.Sprintf("diags=%d", bag.Len()))

	bag.Sort()
	ctxlog.FromContext(ctx).Debug("linted",
		zap.String("path", file.Path),
		zap.Int("tokens", stream.Len()),
		zap.Int("diagnostics", bag.Len()),
	)

	res := &LintResult{FileSet: fs, File: file, Stream: stream, Bag: bag}
	if timer != nil {
		report := timer.Report()
		res.Timing = &report
	}
	return res, nil
}

// LintContent lints an in-memory buffer registered under name.
func LintContent(ctx context.Context, name string, content []byte, opts Options) (*LintResult, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return Lint(ctx, fs, id, opts)
}

// LintFile loads path from disk and lints it.
func LintFile(ctx context.Context, path string, opts Options) (*LintResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return Lint(ctx, fs, id, opts)
}
