// Package load reads a MOX source file into trimmed logical lines.
// A fenced preformatted block (delimited by lines whose trimmed content
// is exactly "```") is collapsed into a single logical line with
// embedded line breaks, so the classifier never deals with cross-line
// state.
package load

import (
	"fmt"
	"os"
	"strings"

	"github.com/gaurav-prasanna/moxdown/core"
)

// Load returns the logical lines of the file at path. Ordinary lines are
// trimmed of surrounding whitespace; fenced blocks arrive as one line
// bounded by the "```" markers. Trailing empty lines are dropped, but at
// least one line is always returned, even for an empty file.
func Load(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrSourceRead, path, err)
	}
	return Split(string(raw)), nil
}

// Split performs the logical-line split on raw file contents.
func Split(content string) []string {
	content += "\n"

	var lines []string
	var current strings.Builder
	preformatted := false
	backticks := 0

	for _, ch := range content {
		current.WriteRune(ch)
		if ch == '`' {
			backticks++
			if backticks == 3 {
				// A fence only opens when the ``` are the first
				// characters of the trimmed line; the closing fence
				// of a block never is, since the block's content
				// precedes it in the logical line.
				preformatted = len(strings.TrimSpace(current.String())) == 3
				backticks = 0
			}
			continue
		}
		backticks = 0
		if ch == '\n' && !preformatted {
			lines = append(lines, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	// Drop trailing empty lines, keeping at least the first line so an
	// empty file still yields a one-line document.
	for len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
