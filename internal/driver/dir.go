package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"arraylint/internal/ctxlog"
)

// DefaultExtensions are the file suffixes walked when none are configured.
var DefaultExtensions = []string{".php"}

// DirOptions configures LintDir and FixDir.
type DirOptions struct {
	Options
	Extensions []string
	// Jobs bounds parallelism; 0 means GOMAXPROCS.
	Jobs     int
	Cache    *DiskCache
	Progress ProgressSink
	// DryRun makes FixDir compute fixes without writing files.
	DryRun bool
}

// FileResult is the outcome for one file of a directory run. Err holds
// per-file failures; they never abort the run.
type FileResult struct {
	Path   string
	Lint   *LintResult
	Fix    *FixResult
	Cached bool
	Err    error
}

// ListFiles returns the sorted list of files under root with one of exts.
// A root that is a file is returned as is.
func ListFiles(root string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if hasExtension(path, exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func skipDir(name string) bool {
	return name == "vendor" || name == "node_modules" || strings.HasPrefix(name, ".")
}

func hasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	return slices.ContainsFunc(exts, func(e string) bool {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		return strings.EqualFold(e, ext)
	})
}

// LintDir lints every matching file under root in parallel. Results come
// back in path order.
func LintDir(ctx context.Context, root string, opts DirOptions) ([]FileResult, error) {
	return runDir(ctx, root, opts, StageLint, func(ctx context.Context, path string, o Options) FileResult {
		if opts.Cache != nil {
			if content, err := os.ReadFile(path); err == nil && opts.Cache.IsClean(CacheKey(content, o)) {
				return FileResult{Path: path, Cached: true}
			}
		}
		lr, err := LintFile(ctx, path, o)
		if err != nil {
			return FileResult{Path: path, Err: err}
		}
		if opts.Cache != nil && lr.Bag.Len() == 0 {
			if err := opts.Cache.MarkClean(CacheKey(lr.File.Content, o), path); err != nil {
				ctxlog.FromContext(ctx).Warn("cache write failed", zap.String("path", path), zap.Error(err))
			}
		}
		return FileResult{Path: path, Lint: lr}
	})
}

// FixDir fixes every matching file under root in parallel and writes the
// changed ones back.
func FixDir(ctx context.Context, root string, opts DirOptions) ([]FileResult, error) {
	return runDir(ctx, root, opts, StageFix, func(ctx context.Context, path string, o Options) FileResult {
		run := FixFile
		if opts.DryRun {
			run = CheckFile
		}
		fr, err := run(ctx, path, o)
		res := FileResult{Path: path, Fix: fr, Err: err}
		if fr != nil {
			res.Lint = fr.Remaining
		}
		return res
	})
}

type fileJob func(ctx context.Context, path string, opts Options) FileResult

func runDir(ctx context.Context, root string, opts DirOptions, stage Stage, job fileJob) ([]FileResult, error) {
	files, err := ListFiles(root, opts.Extensions)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", root, err)
	}
	if len(files) == 0 {
		return nil, nil
	}
	single := opts.Options.withDefaults()
	log := ctxlog.FromContext(ctx)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusQueued})
	}

	// each goroutine owns its index
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusWorking})
			start := time.Now()

			res := job(gctx, path, single)
			results[i] = res

			evt := Event{File: path, Stage: stage, Status: StatusDone, Elapsed: time.Since(start), Err: res.Err}
			if res.Cached {
				evt.Stage = StageCache
			}
			if res.Lint != nil {
				evt.Diagnostics = res.Lint.Bag.Len()
			}
			if res.Err != nil && !errors.Is(res.Err, ErrNoConvergence) {
				evt.Status = StatusError
				log.Warn("file failed", zap.String("path", path), zap.Error(res.Err))
			}
			emit(opts.Progress, evt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	log.Debug("directory run finished", zap.String("root", root), zap.Int("files", len(files)), zap.String("stage", string(stage)))
	return results, nil
}
