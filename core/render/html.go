// Package render — HTML renderer.
// Walks the token sequence threading two pieces of state: a pending
// inline break (a <br> owed before the next inline token) and a
// blank-line suppression flag set after block elements, which eat the
// single empty text line MOX sources commonly leave after them.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/moxdown/core"
)

const htmlStyle = `<style>
body {
    padding: 1em;
}
img {
    max-width: 400px;
    max-height: 300px;
}
pre {
    background: white;
    padding: 0.5em;
}
</style>
`

// HTMLRenderer renders a Document as a standalone HTML page.
type HTMLRenderer struct {
	cfg core.Config
}

// NewHTMLRenderer creates an HTMLRenderer with the given settings.
func NewHTMLRenderer(cfg core.Config) *HTMLRenderer {
	return &HTMLRenderer{cfg: cfg}
}

// Render produces the full HTML document. The first level-1 heading in
// the walk becomes the page title.
func (r *HTMLRenderer) Render(doc core.Document) ([]byte, error) {
	var body strings.Builder
	var title string
	pendingBreak := false
	suppressBlank := false

	for _, tok := range doc {
		switch tok.Kind {
		case core.KindText:
			if suppressBlank && tok.Content == "" {
				suppressBlank = false
				continue
			}
			if pendingBreak {
				body.WriteString("<br>")
			}
			body.WriteString(tok.Content)
			body.WriteString("\n")
			pendingBreak = true
			suppressBlank = false
		case core.KindLink:
			if pendingBreak {
				body.WriteString("<br>")
			}
			url := rewriteInternal(tok.URL, ".html")
			label := tok.Label
			if label == "" {
				label = url
			}
			fmt.Fprintf(&body, "%s <a href=%s>%s</a>\n", r.cfg.LinkChar, url, label)
			pendingBreak = true
			suppressBlank = false
		case core.KindHeading1:
			fmt.Fprintf(&body, "<h1>%s</h1>\n", tok.Content)
			if title == "" {
				title = tok.Content
			}
			pendingBreak = false
			suppressBlank = true
		case core.KindHeading2:
			fmt.Fprintf(&body, "<h2>%s</h2>\n", tok.Content)
			pendingBreak = false
			suppressBlank = true
		case core.KindHeading3:
			fmt.Fprintf(&body, "<h3>%s</h3>\n", tok.Content)
			pendingBreak = false
			suppressBlank = true
		case core.KindListItem:
			if pendingBreak {
				body.WriteString("<br>")
			}
			fmt.Fprintf(&body, "&emsp;%s %s\n", r.cfg.ListChar, tok.Content)
			pendingBreak = true
		case core.KindPreformatted:
			fmt.Fprintf(&body, "<pre>%s</pre>\n", tok.Content)
			pendingBreak = false
			suppressBlank = true
		case core.KindRule:
			body.WriteString("<hr>\n")
			pendingBreak = false
			suppressBlank = true
		case core.KindImage:
			if pendingBreak {
				body.WriteString("<br>")
			}
			fmt.Fprintf(&body, "<img src='%s' title='%s'>\n", tok.URL, tok.Label)
			pendingBreak = true
			suppressBlank = false
		}
	}

	var page strings.Builder
	page.WriteString("<html>\n<head>\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", title)
	page.WriteString("<meta charset=\"utf-8\">\n</head>\n")
	page.WriteString(htmlStyle)
	fmt.Fprintf(&page, "<body bgcolor=\"%s\" text=\"%s\" link=\"%s\" vlink=\"%s\">\n",
		r.cfg.Background, r.cfg.FontColor, r.cfg.LinkColor, r.cfg.VisitedLinkColor)
	page.WriteString(body.String())
	page.WriteString("</body>\n</html>\n")
	return []byte(page.String()), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
