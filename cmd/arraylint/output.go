package main

import (
	"fmt"
	"io"

	"arraylint/internal/diagfmt"
	"arraylint/internal/driver"
	"arraylint/internal/observ"
	"arraylint/internal/version"
)

type tally struct {
	files      int
	failed     int
	violations int
	fixable    int
}

func countResults(results []driver.FileResult) tally {
	var t tally
	for _, r := range results {
		t.files++
		if r.Err != nil {
			t.failed++
		}
		if r.Lint == nil {
			continue
		}
		for _, d := range r.Lint.Bag.Items() {
			t.violations++
			if d.Fixable() {
				t.fixable++
			}
		}
	}
	return t
}

// renderDiagnostics writes the diagnostics of every result in the
// configured format. Per-file failures go to errOut.
func renderDiagnostics(out, errOut io.Writer, results []driver.FileResult, s *runSettings, args []string) error {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", r.Path, r.Err)
		}
	}

	inputs := make([]diagfmt.Input, 0, len(results))
	for _, r := range results {
		if r.Lint != nil {
			inputs = append(inputs, diagfmt.Input{Bag: r.Lint.Bag, FileSet: r.Lint.FileSet})
		}
	}

	switch s.format {
	case "json":
		return diagfmt.JSONAll(out, inputs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeFixes:     true,
		})
	case "sarif":
		return diagfmt.Sarif(out, inputs, diagfmt.SarifRunMeta{
			ToolName:       "arraylint",
			ToolVersion:    version.Version,
			InvocationArgs: args,
		})
	case "short":
		for _, in := range inputs {
			if err := diagfmt.Short(out, in.Bag, in.FileSet); err != nil {
				return err
			}
		}
	default:
		opts := diagfmt.PrettyOpts{
			Color:    s.color,
			Context:  1,
			PathMode: diagfmt.PathModeRelative,
		}
		for _, in := range inputs {
			diagfmt.Pretty(out, in.Bag, in.FileSet, opts)
		}
	}
	return nil
}

func writeSummary(w io.Writer, t tally) {
	files := plural(t.files, "file", "files")
	switch {
	case t.violations == 0 && t.failed == 0:
		fmt.Fprintf(w, "no violations in %s\n", files)
	case t.violations == 0:
		fmt.Fprintf(w, "%s failed out of %s\n", plural(t.failed, "file", "files"), files)
	default:
		fmt.Fprintf(w, "%s (%d fixable) in %s\n", plural(t.violations, "violation", "violations"), t.fixable, files)
	}
}

func writeTimings(w io.Writer, results []driver.FileResult) {
	var total observ.Report
	for _, r := range results {
		if r.Lint != nil && r.Lint.Timing != nil {
			total.Merge(*r.Lint.Timing)
		}
	}
	fmt.Fprint(w, total.Summary())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func machineFormat(format string) bool {
	return format == "json" || format == "sarif"
}
