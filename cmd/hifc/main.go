// Command hifc is the CLI front end over the HIF packages: it standardizes
// a tree from one semantics to another, maps standard-library symbols,
// manages inserted casts, analyzes and splits processes, compares
// precision, and round-trips the XML wire format.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hif/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "hifc",
	Short: "Hardware Intermediate Format toolkit",
	Long:  `hifc standardizes, analyzes, and serializes Hardware Intermediate Format trees.`,
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostic output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect per run")
	rootCmd.PersistentFlags().String("diag-format", "pretty", "diagnostic output format (pretty|json|sarif)")

	rootCmd.AddCommand(standardizeCmd)
	rootCmd.AddCommand(mapSymbolsCmd)
	rootCmd.AddCommand(manageCastsCmd)
	rootCmd.AddCommand(analyzeProcessesCmd)
	rootCmd.AddCommand(splitProcessesCmd)
	rootCmd.AddCommand(comparePrecisionCmd)
	rootCmd.AddCommand(xmlParseCmd)
	rootCmd.AddCommand(xmlWriteCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// colorEnabled resolves the --color flag against fatih/color's own terminal
// autodetection (color.NoColor is set at package init from go-isatty).
func colorEnabled(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return !color.NoColor
	}
}
