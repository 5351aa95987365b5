// Package cmd implements the CLI commands for moxdown using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagOutputDir string

var rootCmd = &cobra.Command{
	Use:   "moxdown <file.mox>",
	Short: "moxdown — compile MOX markup into HTML, Gopher and Gemini documents",
	Long: `moxdown compiles a MOX source file into three independent output
documents: an HTML page, a Gopher menu, and a Gemini page. Each run
writes <base>.html, <base>.gph and <base>.gmi.

Examples:
  moxdown index.mox
  moxdown index.mox -gexample.com -p70
  moxdown index.mox --site --pdf
  moxdown import page.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "Output directory (default: current directory)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
