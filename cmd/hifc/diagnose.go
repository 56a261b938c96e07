package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hif/internal/diag"
	"hif/internal/diagfmt"
	"hif/internal/source"
	"hif/internal/version"
)

// printBag renders bag in the format selected by --diag-format and reports
// whether any entry was fatal.
func printBag(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) bool {
	if bag == nil || bag.Len() == 0 {
		return false
	}
	bag.Sort()
	mode, _ := cmd.Root().PersistentFlags().GetString("diag-format")
	switch diagfmt.ParseFormat(mode) {
	case diagfmt.FormatJSON:
		_ = diagfmt.JSON(cmd.ErrOrStderr(), bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
		})
	case diagfmt.FormatSARIF:
		_ = diagfmt.Sarif(cmd.ErrOrStderr(), bag, fs, diagfmt.SarifRunMeta{
			ToolName:       "hifc",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args,
		})
	default:
		diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{
			Color:     colorEnabled(cmd),
			ShowNotes: true,
		})
		errs, warns, _ := bag.CountBySeverity()
		if errs > 0 || warns > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d error(s), %d warning(s)\n", errs, warns)
		}
	}
	return bag.HasErrors()
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || n <= 0 {
		return 100
	}
	return n
}

func fail(cmd *cobra.Command, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	fmt.Fprintln(cmd.ErrOrStderr(), err)
	return err
}

func openInput(path string) (*os.File, error) {
	return os.Open(path)
}

func createOutput(path string) (*os.File, error) {
	return os.Create(path)
}
