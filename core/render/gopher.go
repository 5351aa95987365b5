// Package render — Gopher menu renderer.
// Every token becomes one or more protocol lines of the form
// type + display TAB selector TAB host TAB port CRLF. Non-navigable
// content uses the informational type with a (NULL) selector.
package render

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wrap"

	"github.com/gaurav-prasanna/moxdown/core"
)

const (
	gopherInfoType   = 'i'
	gopherLinkType   = '1'
	gopherImageType  = 'p'
	gopherNoSelector = "(NULL)"

	// Menu convention: preformatted content is hard-wrapped at 63
	// columns and indented four spaces per emitted line.
	gopherWrapWidth  = 63
	gopherPreIndent  = "    "
	gopherRuleLength = 40
)

// GopherRenderer renders a Document as a Gopher menu.
type GopherRenderer struct {
	cfg core.Config
}

// NewGopherRenderer creates a GopherRenderer with the given settings.
func NewGopherRenderer(cfg core.Config) *GopherRenderer {
	return &GopherRenderer{cfg: cfg}
}

// Render produces the complete menu document.
func (r *GopherRenderer) Render(doc core.Document) ([]byte, error) {
	var b strings.Builder
	for _, tok := range doc {
		switch tok.Kind {
		case core.KindText:
			r.menuLine(&b, gopherInfoType, tok.Content, gopherNoSelector)
		case core.KindLink:
			url := rewriteInternal(tok.URL, ".gph")
			label := tok.Label
			if label == "" {
				label = url
			}
			r.menuLine(&b, gopherLinkType, label, url)
		case core.KindHeading1:
			r.menuLine(&b, gopherInfoType, "=== "+tok.Content+" ===", gopherNoSelector)
		case core.KindHeading2:
			r.menuLine(&b, gopherInfoType, "== "+tok.Content+" ==", gopherNoSelector)
		case core.KindHeading3:
			r.menuLine(&b, gopherInfoType, "-- "+tok.Content+" --", gopherNoSelector)
		case core.KindListItem:
			r.menuLine(&b, gopherInfoType, " - "+tok.Content, gopherNoSelector)
		case core.KindPreformatted:
			// wrap keeps existing line breaks, so one pass handles the
			// whole block; an empty content line still yields a line.
			wrapped := wrap.String(tok.Content, gopherWrapWidth)
			for _, line := range strings.Split(wrapped, "\n") {
				r.menuLine(&b, gopherInfoType, gopherPreIndent+line, gopherNoSelector)
			}
		case core.KindRule:
			r.menuLine(&b, gopherInfoType, strings.Repeat("*", gopherRuleLength), gopherNoSelector)
		case core.KindImage:
			r.menuLine(&b, gopherImageType, "[ "+tok.Label+" ]", tok.URL)
		}
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for Gopher output.
func (r *GopherRenderer) Extension() string {
	return ".gph"
}

func (r *GopherRenderer) menuLine(b *strings.Builder, typ rune, display, selector string) {
	fmt.Fprintf(b, "%c%s\t%s\t%s\t%d\r\n", typ, display, selector, r.cfg.Host, r.cfg.Port)
}
