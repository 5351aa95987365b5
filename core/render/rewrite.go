// Package render provides the output renderers of the moxdown compiler.
// Each renderer walks the same token sequence independently and emits
// one complete output document; none of them mutates the Document, so
// they are safe to run in parallel.
package render

import "strings"

// rewriteInternal maps a mox:// cross-document link to the filename the
// target compiles to in this renderer's format: the scheme is stripped
// and the .mox suffix becomes ext. Every other URL passes through
// untouched.
func rewriteInternal(url, ext string) string {
	if !strings.Contains(url, "mox://") {
		return url
	}
	url = strings.ReplaceAll(url, "mox://", "")
	return strings.ReplaceAll(url, ".mox", ext)
}
