// Package render — PDF renderer.
// An optional fourth output: the token walk typeset with gofpdf.
// Headings get scaled bold fonts, preformatted blocks a monospace font
// on a light fill, links render as "label (url)". Images are not
// embedded; their caption is shown as a placeholder.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/moxdown/core"
)

// PDFRenderer renders a Document as a PDF document.
type PDFRenderer struct {
	cfg core.Config
}

// NewPDFRenderer creates a PDFRenderer with the given settings.
func NewPDFRenderer(cfg core.Config) *PDFRenderer {
	return &PDFRenderer{cfg: cfg}
}

var pdfHeadingSizes = map[core.TokenKind]float64{
	core.KindHeading1: 18,
	core.KindHeading2: 15,
	core.KindHeading3: 13,
}

// Render produces the PDF bytes. The first level-1 heading becomes the
// document's title metadata, mirroring the HTML renderer.
func (r *PDFRenderer) Render(doc core.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	titled := false
	for _, tok := range doc {
		switch tok.Kind {
		case core.KindText:
			if strings.TrimSpace(tok.Content) == "" {
				pdf.Ln(3)
				continue
			}
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tok.Content, "", "L", false)
		case core.KindLink:
			url := rewriteInternal(tok.URL, ".pdf")
			label := tok.Label
			if label == "" {
				label = url
			}
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(0, 0, 238)
			pdf.MultiCell(0, 5, fmt.Sprintf("%s (%s)", label, url), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		case core.KindHeading1, core.KindHeading2, core.KindHeading3:
			if tok.Kind == core.KindHeading1 && !titled {
				pdf.SetTitle(tok.Content, true)
				titled = true
			}
			size := pdfHeadingSizes[tok.Kind]
			pdf.Ln(4)
			pdf.SetFont("Helvetica", "B", size)
			pdf.MultiCell(0, size*0.6, tok.Content, "", "L", false)
			pdf.Ln(2)
		case core.KindListItem:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "• "+tok.Content, "", "L", false)
		case core.KindPreformatted:
			pdf.Ln(2)
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			for _, line := range strings.Split(tok.Content, "\n") {
				pdf.MultiCell(0, 4.5, line, "", "L", true)
			}
			pdf.Ln(2)
		case core.KindRule:
			pageWidth, _ := pdf.GetPageSize()
			left, _, right, _ := pdf.GetMargins()
			pdf.Ln(3)
			_, y := pdf.GetXY()
			pdf.Line(left, y, pageWidth-right, y)
			pdf.Ln(3)
		case core.KindImage:
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(100, 100, 100)
			pdf.MultiCell(0, 5, "[ "+tok.Label+" ]", "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
