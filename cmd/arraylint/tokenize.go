package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arraylint/internal/diagfmt"
	"arraylint/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.php",
		Short: "Print the token stream of a PHP file",
		Long:  `Tokenize shows the tokens the rules see, with positions and bracket partners`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cfg, err := loadConfig(cmd, filePath)
	if err != nil {
		return err
	}
	tabWidth := cfg.TabWidth
	if cmd.Flags().Changed("tab-width") {
		if tabWidth, err = cmd.Flags().GetInt("tab-width"); err != nil {
			return err
		}
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, tabWidth, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		colorFlag, err := cmd.Flags().GetString("color")
		if err != nil {
			return err
		}
		mode, err := readColorFlag(colorFlag)
		if err != nil {
			return err
		}
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   useColor(mode),
			Context: 1,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Stream)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Stream)
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
