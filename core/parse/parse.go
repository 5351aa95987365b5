// Package parse classifies logical MOX lines into tokens.
//
// Classification is pure and total per line: each line maps to exactly
// one token kind, decided by the first matching rule in a fixed priority
// order. The order matters for the heading rules, since "#" is a prefix
// of "##" is a prefix of "###".
//
// Field validation happens here, not at render time: a link without a
// URL or protocol and an image without a caption are rejected during
// classification, so renderers never see a malformed token.
package parse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gaurav-prasanna/moxdown/core"
)

// Document classifies every logical line into a token sequence.
func Document(lines []string) (core.Document, error) {
	doc := make(core.Document, 0, len(lines))
	for i, line := range lines {
		tok, err := Line(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		doc = append(doc, tok)
	}
	return doc, nil
}

// Line classifies a single logical line.
func Line(line string) (core.Token, error) {
	line = strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "=>"):
		return linkToken(line)
	case strings.HasPrefix(line, "###"):
		return core.Token{Kind: core.KindHeading3, Content: trimPrefix(line, "###")}, nil
	case strings.HasPrefix(line, "##"):
		return core.Token{Kind: core.KindHeading2, Content: trimPrefix(line, "##")}, nil
	case strings.HasPrefix(line, "#"):
		return core.Token{Kind: core.KindHeading1, Content: trimPrefix(line, "#")}, nil
	case strings.HasPrefix(line, "*"):
		return core.Token{Kind: core.KindListItem, Content: trimPrefix(line, "*")}, nil
	case strings.HasPrefix(line, "```"):
		return core.Token{Kind: core.KindPreformatted, Content: fencedContent(line)}, nil
	case line == "---":
		return core.Token{Kind: core.KindRule}, nil
	case strings.HasPrefix(line, "(img)"):
		return imageToken(line)
	default:
		return core.Token{Kind: core.KindText, Content: line}, nil
	}
}

func linkToken(line string) (core.Token, error) {
	fields := splitFields(line, 3)
	if len(fields) < 2 {
		return core.Token{}, fmt.Errorf("%w: link without a URL: %q", core.ErrMalformedLine, line)
	}
	url := fields[1]
	if !strings.Contains(url, "://") {
		return core.Token{}, fmt.Errorf("%w (such as http://): %s", core.ErrMissingProtocol, url)
	}
	tok := core.Token{Kind: core.KindLink, URL: url}
	if len(fields) > 2 {
		tok.Label = fields[2]
	}
	return tok, nil
}

func imageToken(line string) (core.Token, error) {
	fields := splitFields(line, 3)
	if len(fields) < 3 {
		return core.Token{}, fmt.Errorf("%w: image without a URL and caption: %q", core.ErrMalformedLine, line)
	}
	return core.Token{Kind: core.KindImage, URL: fields[1], Label: fields[2]}, nil
}

// fencedContent strips the three-character fence markers from both ends
// of a collapsed preformatted line, plus the line breaks touching them.
func fencedContent(line string) string {
	body := line[3:]
	if len(body) >= 3 {
		body = body[:len(body)-3]
	}
	return strings.Trim(body, "\n\r")
}

func trimPrefix(line, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, prefix))
}

// splitFields splits on runs of whitespace into at most max fields, the
// last field keeping its internal whitespace. This is how link labels
// and image captions retain inner spaces.
func splitFields(s string, max int) []string {
	var fields []string
	s = strings.TrimSpace(s)
	for len(s) > 0 && len(fields) < max-1 {
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			break
		}
		fields = append(fields, s[:i])
		s = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	}
	if len(s) > 0 {
		fields = append(fields, s)
	}
	return fields
}
