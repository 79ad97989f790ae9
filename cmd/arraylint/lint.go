package main

import (
	"github.com/spf13/cobra"

	"arraylint/internal/driver"
)

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [flags] [file.php|directory]...",
		Short: "Report array literal violations",
		Long:  "Lint walks the targets (default: the current directory) and reports every array literal that is not in canonical form.",
		RunE:  runLint,
	}
	addRunFlags(cmd)
	cmd.Flags().Bool("no-cache", false, "ignore the clean-file cache")
	cmd.Flags().Bool("clear-cache", false, "drop cached results before linting")
	return cmd
}

// addRunFlags registers the flags shared by lint and fix.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "output format (pretty|short|json|sarif; default from config)")
	cmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

func targetsOf(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

func runLint(cmd *cobra.Command, args []string) error {
	targets := targetsOf(args)
	s, err := resolveSettings(cmd, targets[0])
	if err != nil {
		return err
	}

	var results []driver.FileResult
	if shouldUseTUI(s.ui, s.format) {
		results, err = runTargetsWithUI(cmd.Context(), cmd.OutOrStdout(), "arraylint lint", targets, s.dir, driver.LintDir)
	} else {
		results, err = runTargets(cmd.Context(), targets, s.dir, driver.LintDir)
	}
	if err != nil {
		return err
	}

	if err := renderDiagnostics(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, s, args); err != nil {
		return err
	}
	t := countResults(results)
	if !s.quiet && !machineFormat(s.format) {
		writeSummary(cmd.ErrOrStderr(), t)
	}
	if s.timings {
		writeTimings(cmd.ErrOrStderr(), results)
	}
	if t.violations > 0 || t.failed > 0 {
		return errViolations
	}
	return nil
}
