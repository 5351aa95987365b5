package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/moxdown/core"
)

func TestLineClassification(t *testing.T) {
	tests := []struct {
		name string
		line string
		want core.Token
	}{
		{"text", "just some words", core.Token{Kind: core.KindText, Content: "just some words"}},
		{"text trimmed", "  padded  ", core.Token{Kind: core.KindText, Content: "padded"}},
		{"empty", "", core.Token{Kind: core.KindText, Content: ""}},
		{"heading1", "# Welcome", core.Token{Kind: core.KindHeading1, Content: "Welcome"}},
		{"heading2", "## Section", core.Token{Kind: core.KindHeading2, Content: "Section"}},
		{"heading3", "### Detail", core.Token{Kind: core.KindHeading3, Content: "Detail"}},
		{"heading no space", "#Tight", core.Token{Kind: core.KindHeading1, Content: "Tight"}},
		{"list item", "* first thing", core.Token{Kind: core.KindListItem, Content: "first thing"}},
		{"rule", "---", core.Token{Kind: core.KindRule}},
		{"four dashes is text", "----", core.Token{Kind: core.KindText, Content: "----"}},
		{"link", "=> http://example.com/ Example", core.Token{Kind: core.KindLink, URL: "http://example.com/", Label: "Example"}},
		{"link no label", "=> http://example.com/", core.Token{Kind: core.KindLink, URL: "http://example.com/"}},
		{"link label keeps spaces", "=> http://example.com/ A Longer Label", core.Token{Kind: core.KindLink, URL: "http://example.com/", Label: "A Longer Label"}},
		{"internal link", "=> mox://site.mox Home", core.Token{Kind: core.KindLink, URL: "mox://site.mox", Label: "Home"}},
		{"image", "(img) http://example.com/cat.png A cat", core.Token{Kind: core.KindImage, URL: "http://example.com/cat.png", Label: "A cat"}},
		{"preformatted", "```\ncode line\n```", core.Token{Kind: core.KindPreformatted, Content: "code line"}},
		{"preformatted multiline", "```\none\ntwo\n```", core.Token{Kind: core.KindPreformatted, Content: "one\ntwo"}},
		{"preformatted empty", "``````", core.Token{Kind: core.KindPreformatted, Content: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Line(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

// Rule priority: "###" must win over "##" over "#".
func TestHeadingPriority(t *testing.T) {
	tok, err := Line("### x")
	require.NoError(t, err)
	require.Equal(t, core.KindHeading3, tok.Kind)

	tok, err = Line("## x")
	require.NoError(t, err)
	require.Equal(t, core.KindHeading2, tok.Kind)
}

func TestLineIsDeterministic(t *testing.T) {
	for _, line := range []string{"# h", "text", "=> http://a.b c", "---", "* li"} {
		first, err := Line(line)
		require.NoError(t, err)
		second, err := Line(line)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestLinkMissingProtocol(t *testing.T) {
	_, err := Line("=> noscheme.com")
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrMissingProtocol)
}

func TestLinkWithoutURL(t *testing.T) {
	_, err := Line("=>")
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrMalformedLine)
}

func TestImageWithoutCaption(t *testing.T) {
	_, err := Line("(img) http://example.com/cat.png")
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrMalformedLine)
}

func TestDocumentReportsLineNumber(t *testing.T) {
	_, err := Document([]string{"fine", "=> noscheme.com"})
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrMissingProtocol)
	require.Contains(t, err.Error(), "line 2")
}

func TestDocumentOrderPreserved(t *testing.T) {
	doc, err := Document([]string{"# one", "two", "* three"})
	require.NoError(t, err)
	require.Len(t, doc, 3)
	require.Equal(t, core.KindHeading1, doc[0].Kind)
	require.Equal(t, core.KindText, doc[1].Kind)
	require.Equal(t, core.KindListItem, doc[2].Kind)
}
