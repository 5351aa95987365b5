// Package importer converts an existing HTML page into MOX source.
// The page is cleaned with goquery (noise elements removed, the main
// content container selected), converted to Markdown, and the Markdown
// is then mapped line by line onto MOX constructs. Since MOX is
// strictly line-granular, inline links are hoisted onto their own "=>"
// lines after the paragraph they appeared in.
package importer

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before conversion. They
// contribute no meaningful content to a MOX page.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// Importer converts HTML pages into MOX source text.
type Importer struct{}

// New creates an Importer.
func New() *Importer {
	return &Importer{}
}

// Import converts raw HTML into MOX source.
func (im *Importer) Import(html string) (string, error) {
	content, err := extractContent(html)
	if err != nil {
		return "", err
	}
	markdown, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return moxFromMarkdown(markdown), nil
}

// extractContent isolates the main content of a page: noise elements
// are dropped, then the best container is picked in priority order
// (<main>, <article>, <body>).
func extractContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return result, nil
}

var (
	mdLinkRegex  = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)\)`)
	mdImageRegex = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)\s]+)\)$`)
	mdRuleRegex  = regexp.MustCompile(`^(-{3,}|_{3,}|\*{3,})$`)
)

// moxFromMarkdown maps Markdown lines onto MOX constructs.
func moxFromMarkdown(markdown string) string {
	var out strings.Builder
	inFence := false

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			out.WriteString("```\n")
			continue
		}
		if inFence {
			out.WriteString(line)
			out.WriteString("\n")
			continue
		}

		switch {
		case trimmed == "":
			out.WriteString("\n")
		case mdRuleRegex.MatchString(trimmed):
			out.WriteString("---\n")
		case mdImageRegex.MatchString(trimmed):
			m := mdImageRegex.FindStringSubmatch(trimmed)
			caption := m[1]
			if caption == "" {
				caption = "image"
			}
			fmt.Fprintf(&out, "(img) %s %s\n", m[2], caption)
		case strings.HasPrefix(trimmed, "#"):
			out.WriteString(capHeading(trimmed))
			out.WriteString("\n")
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			fmt.Fprintf(&out, "* %s\n", cleanInline(trimmed[2:]))
		default:
			writeParagraph(&out, trimmed)
		}
	}
	return out.String()
}

// writeParagraph emits a text line with inline markup stripped, then a
// "=>" line for each absolute link the paragraph contained. Relative
// links are dropped: a MOX link needs a protocol.
func writeParagraph(out *strings.Builder, line string) {
	links := mdLinkRegex.FindAllStringSubmatch(line, -1)
	text := cleanInline(line)

	// A line that is nothing but one link becomes the link line itself.
	if len(links) == 1 && strings.TrimSpace(mdLinkRegex.ReplaceAllString(line, "")) == "" {
		if url := links[0][2]; strings.Contains(url, "://") {
			fmt.Fprintf(out, "=> %s %s\n", url, links[0][1])
			return
		}
	}

	out.WriteString(text)
	out.WriteString("\n")
	for _, m := range links {
		if strings.Contains(m[2], "://") {
			fmt.Fprintf(out, "=> %s %s\n", m[2], m[1])
		}
	}
}

// capHeading passes headings through, collapsing levels deeper than
// three to "###" since MOX has only three.
func capHeading(line string) string {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level > 3 {
		level = 3
	}
	text := cleanInline(strings.TrimSpace(strings.TrimLeft(line, "# ")))
	return strings.Repeat("#", level) + " " + text
}

// cleanInline strips inline Markdown formatting MOX cannot express.
func cleanInline(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = regexp.MustCompile("`([^`]+)`").ReplaceAllString(text, "$1")
	text = mdLinkRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
