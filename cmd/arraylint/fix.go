package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"arraylint/internal/driver"
)

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [flags] [file.php|directory]...",
		Short: "Rewrite array literals into canonical form",
		Long: "Fix lints every target, applies all safe fixes and repeats until the files stop changing. " +
			"Violations without a fix are reported afterwards.",
		RunE: runFix,
	}
	addRunFlags(cmd)
	cmd.Flags().Bool("dry-run", false, "report the files that would change without writing them")
	cmd.Flags().Int("max-passes", driver.DefaultMaxPasses, "maximum fix passes per file")
	return cmd
}

func runFix(cmd *cobra.Command, args []string) error {
	targets := targetsOf(args)
	s, err := resolveSettings(cmd, targets[0])
	if err != nil {
		return err
	}
	if s.dir.DryRun, err = cmd.Flags().GetBool("dry-run"); err != nil {
		return err
	}

	var results []driver.FileResult
	if shouldUseTUI(s.ui, s.format) {
		results, err = runTargetsWithUI(cmd.Context(), cmd.OutOrStdout(), "arraylint fix", targets, s.dir, driver.FixDir)
	} else {
		results, err = runTargets(cmd.Context(), targets, s.dir, driver.FixDir)
	}
	if err != nil {
		return err
	}

	changed := 0
	for _, r := range results {
		if r.Fix != nil && r.Fix.Changed() {
			changed++
			if !s.quiet && !machineFormat(s.format) {
				reportFixed(cmd.ErrOrStderr(), r, s.dir.DryRun)
			}
		}
	}

	if err := renderDiagnostics(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, s, args); err != nil {
		return err
	}
	t := countResults(results)
	if !s.quiet && !machineFormat(s.format) {
		verb := "fixed"
		if s.dir.DryRun {
			verb = "would fix"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s; ", verb, plural(changed, "file", "files"))
		writeSummary(cmd.ErrOrStderr(), t)
	}
	if s.timings {
		writeTimings(cmd.ErrOrStderr(), results)
	}

	if t.violations > 0 || t.failed > 0 || (s.dir.DryRun && changed > 0) {
		return errViolations
	}
	return nil
}

func reportFixed(w io.Writer, r driver.FileResult, dryRun bool) {
	path := r.Path
	if rel, err := filepath.Rel(".", path); err == nil {
		path = rel
	}
	verb := "fixed"
	if dryRun {
		verb = "would fix"
	}
	note := ""
	if errors.Is(r.Err, driver.ErrNoConvergence) {
		note = ", not converged"
	}
	fmt.Fprintf(w, "%s %s (%s in %s%s)\n", verb, path, plural(r.Fix.Applied, "fix", "fixes"), plural(r.Fix.Passes, "pass", "passes"), note)
}
