// Package render — Gemini renderer.
// The closest mapping of the three: MOX and gemtext are both
// line-oriented, so nearly every token becomes one output line with a
// fixed prefix.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/moxdown/core"
)

const geminiRule = "-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-"

// GeminiRenderer renders a Document as a gemtext page.
type GeminiRenderer struct {
	cfg core.Config
}

// NewGeminiRenderer creates a GeminiRenderer with the given settings.
func NewGeminiRenderer(cfg core.Config) *GeminiRenderer {
	return &GeminiRenderer{cfg: cfg}
}

// Render produces the complete gemtext document.
func (r *GeminiRenderer) Render(doc core.Document) ([]byte, error) {
	var b strings.Builder
	for _, tok := range doc {
		switch tok.Kind {
		case core.KindText:
			b.WriteString(tok.Content)
			b.WriteString("\n")
		case core.KindLink:
			url := rewriteInternal(tok.URL, ".gmi")
			label := tok.Label
			if label == "" {
				label = url
			}
			fmt.Fprintf(&b, "=> %s %s\n", url, label)
		case core.KindHeading1:
			fmt.Fprintf(&b, "# %s\n", tok.Content)
		case core.KindHeading2:
			fmt.Fprintf(&b, "## %s\n", tok.Content)
		case core.KindHeading3:
			fmt.Fprintf(&b, "### %s\n", tok.Content)
		case core.KindListItem:
			fmt.Fprintf(&b, "* %s\n", tok.Content)
		case core.KindPreformatted:
			fmt.Fprintf(&b, "```%s```\n", tok.Content)
		case core.KindRule:
			b.WriteString(geminiRule)
			b.WriteString("\n")
		case core.KindImage:
			fmt.Fprintf(&b, "=> %s Image: %s\n", tok.URL, tok.Label)
		}
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for Gemini output.
func (r *GeminiRenderer) Extension() string {
	return ".gmi"
}
