// Package core defines the shared types of the moxdown compiler.
// A source document is parsed once into a Document (an ordered sequence
// of classified line tokens) and then handed read-only to each output
// renderer.
package core

import "errors"

// TokenKind identifies the semantic category of one logical source line.
type TokenKind uint8

const (
	// KindText is a plain line of readable text.
	KindText TokenKind = iota
	// KindLink is a "=>" link line.
	KindLink
	// KindHeading1 is a "#" heading line.
	KindHeading1
	// KindHeading2 is a "##" heading line.
	KindHeading2
	// KindHeading3 is a "###" heading line.
	KindHeading3
	// KindListItem is a "*" list item line.
	KindListItem
	// KindPreformatted is a fenced preformatted block collapsed into one
	// logical line; Content may contain embedded line breaks.
	KindPreformatted
	// KindRule is a "---" horizontal rule line.
	KindRule
	// KindImage is an "(img)" image line.
	KindImage
)

var kindNames = map[TokenKind]string{
	KindText:         "text",
	KindLink:         "link",
	KindHeading1:     "heading1",
	KindHeading2:     "heading2",
	KindHeading3:     "heading3",
	KindListItem:     "list item",
	KindPreformatted: "preformatted",
	KindRule:         "rule",
	KindImage:        "image",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is the classified form of one logical source line. Which fields
// are meaningful depends on Kind: Content for text, headings, list items
// and preformatted blocks; URL and Label for links (Label empty when the
// source line has no label) and images (Label holds the caption, always
// present — the classifier rejects captionless image lines).
type Token struct {
	Kind    TokenKind
	Content string
	URL     string
	Label   string
}

// Document is the ordered token sequence for one source file. It is
// built once and never mutated; renderers share it read-only and may
// run concurrently.
type Document []Token

// Config carries the per-run rendering settings, built once from
// defaults plus CLI overrides and passed into each renderer.
type Config struct {
	Host             string // Gopher host embedded in menu lines
	Port             int    // Gopher port embedded in menu lines
	FontColor        string
	LinkColor        string
	VisitedLinkColor string
	Background       string // color or image name
	ListChar         string // list bullet indicator
	LinkChar         string // link indicator
}

// DefaultConfig returns the stock rendering settings.
func DefaultConfig() Config {
	return Config{
		Host:             "mox.vice.ar",
		Port:             70,
		FontColor:        "black",
		LinkColor:        "blue",
		VisitedLinkColor: "#ff00aa",
		Background:       "#bbddff",
		ListChar:         "❧",
		LinkChar:         "☞",
	}
}

// Renderer converts a Document into one output format.
type Renderer interface {
	Render(doc Document) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html").
	Extension() string
}

// Compilation errors. All are fatal: no output file is written once any
// of them occurs.
var (
	// ErrSourceRead wraps failures to open or read a source file.
	ErrSourceRead = errors.New("cannot read source file")
	// ErrMissingProtocol marks a link URL without a "://" separator.
	ErrMissingProtocol = errors.New("link URL is missing the protocol")
	// ErrMalformedLine marks a line whose fields don't match its form,
	// such as an image line without a caption.
	ErrMalformedLine = errors.New("malformed line")
)
