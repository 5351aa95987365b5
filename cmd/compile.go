// Package cmd — compile operation.
// The root command itself compiles: load → classify → render each
// format → write. All formats are rendered before the first file is
// written, so a failing render leaves no partial output behind.
//
// Rendering flags use POSIX shorthands, so values may be appended
// directly (-gexample.com, -p70). Unknown flags are an error.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/moxdown/core"
	"github.com/gaurav-prasanna/moxdown/core/load"
	"github.com/gaurav-prasanna/moxdown/core/output"
	"github.com/gaurav-prasanna/moxdown/core/parse"
	"github.com/gaurav-prasanna/moxdown/core/render"
	"github.com/gaurav-prasanna/moxdown/site"
)

// Flag variables.
var (
	flagHost         string
	flagPort         int
	flagFontColor    string
	flagLinkColor    string
	flagVisitedColor string
	flagBackground   string
	flagBullet       string
	flagLinkChar     string
	flagPDF          bool
	flagSite         bool
)

func init() {
	def := core.DefaultConfig()
	f := rootCmd.Flags()

	f.StringVarP(&flagHost, "host", "g", def.Host, "Gopher host embedded in menu lines")
	f.IntVarP(&flagPort, "port", "p", def.Port, "Gopher port embedded in menu lines")
	f.StringVarP(&flagFontColor, "font-color", "c", def.FontColor, "HTML font color")
	f.StringVarP(&flagLinkColor, "link-color", "l", def.LinkColor, "HTML link color")
	f.StringVarP(&flagVisitedColor, "visited-color", "v", def.VisitedLinkColor, "HTML visited link color")
	f.StringVarP(&flagBackground, "background", "b", def.Background, "HTML background color or image")
	f.StringVarP(&flagBullet, "bullet", "u", def.ListChar, "List bullet character")
	f.StringVarP(&flagLinkChar, "link-char", "k", def.LinkChar, "Link indicator character")

	f.BoolVar(&flagPDF, "pdf", false, "Also render a PDF document")
	f.BoolVar(&flagSite, "site", false, "Compile every local page reachable through mox:// links")
}

func runCompile(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	path := args[0]
	cfg := buildConfig()

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	renderers := []core.Renderer{
		render.NewHTMLRenderer(cfg),
		render.NewGopherRenderer(cfg),
		render.NewGeminiRenderer(cfg),
	}
	if flagPDF {
		renderers = append(renderers, render.NewPDFRenderer(cfg))
	}

	if flagSite {
		return compileSite(path, renderers, writer)
	}
	return compileFile(path, renderers, writer)
}

// compileFile runs a single source file through the pipeline.
func compileFile(path string, renderers []core.Renderer, writer *output.Writer) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	type rendered struct {
		data []byte
		ext  string
	}
	outputs := make([]rendered, 0, len(renderers))
	for _, r := range renderers {
		data, err := r.Render(doc)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", r.Extension(), err)
		}
		outputs = append(outputs, rendered{data: data, ext: r.Extension()})
	}

	for _, out := range outputs {
		written, err := writer.Write(path, out.data, out.ext)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", written)
	}
	return nil
}

// compileSite discovers all pages linked via mox:// and compiles each.
func compileSite(startPath string, renderers []core.Renderer, writer *output.Writer) error {
	fmt.Fprintf(os.Stdout, "Discovering pages from %s...\n", startPath)

	paths := site.DiscoverAll(startPath, loadDocument)
	fmt.Fprintf(os.Stdout, "Found %d pages to compile\n", len(paths))

	var errCount int
	for i, path := range paths {
		fmt.Fprintf(os.Stdout, "[%d/%d] Compiling %s\n", i+1, len(paths), path)

		if err := compileFile(path, renderers, writer); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
		}
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d pages failed", errCount, len(paths))
	}
	return nil
}

// loadDocument loads a source file and classifies it into a Document.
func loadDocument(path string) (core.Document, error) {
	lines, err := load.Load(path)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Document(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// buildConfig assembles the render settings from defaults plus flags.
func buildConfig() core.Config {
	return core.Config{
		Host:             flagHost,
		Port:             flagPort,
		FontColor:        flagFontColor,
		LinkColor:        flagLinkColor,
		VisitedLinkColor: flagVisitedColor,
		Background:       flagBackground,
		ListChar:         flagBullet,
		LinkChar:         flagLinkChar,
	}
}
