// Package cmd — import command.
// Converts an existing HTML page into MOX source, the reverse direction
// of the compiler, so existing sites can be migrated to MOX.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/moxdown/core"
	"github.com/gaurav-prasanna/moxdown/core/importer"
	"github.com/gaurav-prasanna/moxdown/core/output"
)

var importCmd = &cobra.Command{
	Use:   "import <file.html>",
	Short: "Convert an HTML page into MOX source",
	Long: `Import reads an HTML file, strips navigation and scripting noise,
and writes the main content as <base>.mox.

Example:
  moxdown import page.html`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrSourceRead, path, err)
	}

	mox, err := importer.New().Import(string(raw))
	if err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	written, err := writer.Write(path, []byte(mox), ".mox")
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", written)
	return nil
}
