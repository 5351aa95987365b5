// Package output handles file naming and writing for moxdown outputs.
// Each output file takes the source file's base name with the
// renderer's extension (site.mox → site.html, site.gph, site.gmi) and
// is overwritten unconditionally.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data as <base><ext> where base is derived from
// sourcePath, and returns the written path.
func (w *Writer) Write(sourcePath string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, BaseName(sourcePath)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// BaseName strips the directory and the final suffix from a source
// path: "/pages/site.mox" → "site", "notes" → "notes".
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
