package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"arraylint/internal/ctxlog"
	"arraylint/internal/diag"
	"arraylint/internal/fix"
	"arraylint/internal/source"
)

// ErrNoConvergence is returned when fixes keep changing the file after
// MaxPasses passes.
var ErrNoConvergence = errors.New("fixes did not converge")

// ErrLexical is returned when a file does not tokenize cleanly; fixes are
// never applied to such files.
var ErrLexical = errors.New("file has lexical errors")

// FixResult is the outcome of the fixed-point loop over one file.
type FixResult struct {
	Path     string
	Original []byte
	Content  []byte
	// Passes counts lint passes, the final clean one included.
	Passes  int
	Applied int
	Skipped int
	// Remaining is the lint result of the final content.
	Remaining *LintResult
}

// Changed reports whether the content differs from the original.
func (r *FixResult) Changed() bool {
	return r != nil && !bytes.Equal(r.Original, r.Content)
}

// FixContent lints and fixes content until a pass applies nothing. Each
// pass lints the output of the previous one from scratch, so a fix that
// depends on another fix lands a pass later.
func FixContent(ctx context.Context, name string, content []byte, opts Options) (*FixResult, error) {
	return fixBuffer(ctx, source.NewFileSet(), name, content, opts)
}

func fixBuffer(ctx context.Context, fs *source.FileSet, name string, content []byte, opts Options) (*FixResult, error) {
	opts = opts.withDefaults()
	opts.MaxDiagnostics = 0
	log := ctxlog.FromContext(ctx)

	res := &FixResult{Path: name, Original: content, Content: content}
	for pass := 1; ; pass++ {
		id := fs.AddVirtual(name, res.Content)
		lr, err := Lint(ctx, fs, id, opts)
		if err != nil {
			return res, err
		}
		res.Passes = pass
		res.Remaining = lr
		if hasLexicalErrors(lr.Bag) {
			return res, fmt.Errorf("%s: %w", name, ErrLexical)
		}
		if !lr.Bag.HasFixable() {
			return res, nil
		}
		if pass > opts.MaxPasses {
			return res, fmt.Errorf("%s: %w after %d passes", name, ErrNoConvergence, opts.MaxPasses)
		}

		applied, out, err := fix.ApplyBuffer(fs, id, lr.Bag.Items(), fix.ApplyOptions{Mode: fix.ApplyModeAll})
		if errors.Is(err, fix.ErrNoFixes) {
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("%s: apply fixes: %w", name, err)
		}
		res.Applied += len(applied.Applied)
		res.Skipped = len(applied.Skipped)
		res.Content = out
		log.Debug("fix pass",
			zap.String("path", name),
			zap.Int("pass", pass),
			zap.Int("applied", len(applied.Applied)),
			zap.Int("skipped", len(applied.Skipped)),
		)
	}
}

// FixFile runs the fixed-point loop over path and writes the result back
// when it changed. Line endings and a byte-order mark are restored as they
// were found.
func FixFile(ctx context.Context, path string, opts Options) (*FixResult, error) {
	res, flags, err := loadAndFix(ctx, path, opts)
	if err != nil && !errors.Is(err, ErrNoConvergence) {
		return res, err
	}
	if !res.Changed() {
		return res, err
	}
	if werr := writeBack(path, res.Content, flags); werr != nil {
		return res, werr
	}
	return res, err
}

// CheckFile runs the fixed-point loop over path without writing anything.
func CheckFile(ctx context.Context, path string, opts Options) (*FixResult, error) {
	res, _, err := loadAndFix(ctx, path, opts)
	return res, err
}

func loadAndFix(ctx context.Context, path string, opts Options) (*FixResult, source.FileFlags, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(id)
	res, err := fixBuffer(ctx, fs, file.Path, file.Content, opts)
	return res, file.Flags, err
}

func writeBack(path string, content []byte, flags source.FileFlags) error {
	if flags&source.FileNormalizedCRLF != 0 {
		content = bytes.ReplaceAll(content, []byte("\n"), []byte("\r\n"))
	}
	if flags&source.FileHadBOM != 0 {
		content = append([]byte{0xEF, 0xBB, 0xBF}, content...)
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func hasLexicalErrors(bag *diag.Bag) bool {
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError && d.Code.Lexical() {
			return true
		}
	}
	return false
}
