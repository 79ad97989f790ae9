package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"arraylint/internal/ctxlog"
	"arraylint/internal/version"
)

// Exit codes.
const (
	exitOK         = 0
	exitViolations = 1
	exitFailure    = 2
)

// errViolations signals that the run completed and found violations.
var errViolations = errors.New("violations found")

func newRootCmd() *cobra.Command {
	var logger *zap.Logger
	root := &cobra.Command{
		Use:           "arraylint",
		Short:         "Array literal formatting checker and fixer for PHP",
		Long:          `arraylint checks the layout of PHP array literals and rewrites them into the canonical form`,
		Version:       version.String(false),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			logger, err = ctxlog.New(verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.AddCommand(newLintCmd())
	root.AddCommand(newFixCmd())
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newVersionCmd())

	flags := root.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.String("config", "", "path to .arraylint.toml (default: discovered from the target)")
	flags.Int("tab-width", 0, "columns per indent level; 0 keeps tabs at one column")
	flags.Int("jobs", 0, "files processed in parallel (0: GOMAXPROCS)")
	flags.Int("max-diagnostics", 0, "maximum number of diagnostics per file (0: unlimited)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.BoolP("verbose", "v", false, "debug logging to stderr")
	return root
}

// main runs the CLI and maps errors to exit codes: 1 when violations
// remain, 2 on any other failure.
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	err := root.Execute()
	code := exitCode(err)
	if code == exitFailure {
		fmt.Fprintln(root.ErrOrStderr(), "arraylint:", err)
	}
	return code
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errViolations):
		return exitViolations
	default:
		return exitFailure
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
