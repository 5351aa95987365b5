package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/moxdown/core"
	"github.com/gaurav-prasanna/moxdown/core/parse"
)

func renderGopher(t *testing.T, cfg core.Config, lines ...string) []string {
	t.Helper()
	doc, err := parse.Document(lines)
	require.NoError(t, err)
	data, err := NewGopherRenderer(cfg).Render(doc)
	require.NoError(t, err)
	out := string(data)
	require.True(t, strings.HasSuffix(out, "\r\n"), "menu must end with CRLF")
	return strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
}

func TestGopherInformationalFraming(t *testing.T) {
	lines := renderGopher(t, core.DefaultConfig(), "hello there")
	require.Equal(t, []string{"ihello there\t(NULL)\tmox.vice.ar\t70"}, lines)
}

func TestGopherHeadingMarkers(t *testing.T) {
	lines := renderGopher(t, core.DefaultConfig(), "# Welcome", "## Section", "### Detail")
	require.Equal(t, "i=== Welcome ===\t(NULL)\tmox.vice.ar\t70", lines[0])
	require.Equal(t, "i== Section ==\t(NULL)\tmox.vice.ar\t70", lines[1])
	require.Equal(t, "i-- Detail --\t(NULL)\tmox.vice.ar\t70", lines[2])
}

func TestGopherLinkLine(t *testing.T) {
	lines := renderGopher(t, core.DefaultConfig(), "=> http://example.com/ Example")
	require.Equal(t, []string{"1Example\thttp://example.com/\tmox.vice.ar\t70"}, lines)
}

func TestGopherInternalLinkRewritten(t *testing.T) {
	lines := renderGopher(t, core.DefaultConfig(), "=> mox://site.mox Home")
	require.Equal(t, []string{"1Home\tsite.gph\tmox.vice.ar\t70"}, lines)
}

func TestGopherHostPortFromConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Host = "example.org"
	cfg.Port = 7070
	lines := renderGopher(t, cfg, "text")
	require.Equal(t, []string{"itext\t(NULL)\texample.org\t7070"}, lines)
}

func TestGopherListItem(t *testing.T) {
	lines := renderGopher(t, core.DefaultConfig(), "* a thing")
	require.Equal(t, "i - a thing\t(NULL)\tmox.vice.ar\t70", lines[0])
}

func TestGopherRule(t *testing.T) {
	lines := renderGopher(t, core.DefaultConfig(), "---")
	require.Equal(t, "i"+strings.Repeat("*", 40)+"\t(NULL)\tmox.vice.ar\t70", lines[0])
}

func TestGopherImageLine(t *testing.T) {
	lines := renderGopher(t, core.DefaultConfig(), "(img) http://example.com/cat.png A cat")
	require.Equal(t, []string{"p[ A cat ]\thttp://example.com/cat.png\tmox.vice.ar\t70"}, lines)
}

// A 130-character preformatted line wraps into 63+63+4 character
// chunks, each indented four spaces.
func TestGopherPreformattedWrap(t *testing.T) {
	doc := core.Document{{Kind: core.KindPreformatted, Content: strings.Repeat("x", 130)}}
	data, err := NewGopherRenderer(core.DefaultConfig()).Render(doc)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	for i, want := range []int{63, 63, 4} {
		require.True(t, strings.HasPrefix(lines[i], "i    "), "line %d missing indent: %q", i, lines[i])
		display := strings.SplitN(lines[i], "\t", 2)[0]
		chunk := strings.TrimPrefix(display[1:], "    ")
		require.Len(t, chunk, want, "line %d", i)
		require.Equal(t, strings.Repeat("x", want), chunk)
	}
}

func TestGopherPreformattedKeepsEmptyLines(t *testing.T) {
	doc := core.Document{{Kind: core.KindPreformatted, Content: "one\n\ntwo"}}
	data, err := NewGopherRenderer(core.DefaultConfig()).Render(doc)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	require.Equal(t, "i    \t(NULL)\tmox.vice.ar\t70", lines[1])
}

func TestGopherEmptyPreformattedEmitsOneLine(t *testing.T) {
	doc := core.Document{{Kind: core.KindPreformatted, Content: ""}}
	data, err := NewGopherRenderer(core.DefaultConfig()).Render(doc)
	require.NoError(t, err)
	require.Equal(t, "i    \t(NULL)\tmox.vice.ar\t70\r\n", string(data))
}

func TestExtensionGopher(t *testing.T) {
	require.Equal(t, ".gph", NewGopherRenderer(core.DefaultConfig()).Extension())
}
