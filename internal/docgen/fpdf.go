package docgen

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// pdfCanvas adapts an fpdf document to the Canvas interface. Core fonts are
// cp1252, so every string goes through the unicode translator to keep the
// Spanish accents intact.
type pdfCanvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewPDFCanvas returns a canvas backed by a fresh A4 portrait document with
// its first page already open.
func NewPDFCanvas() *pdfCanvas {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &pdfCanvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (c *pdfCanvas) PageSize() (float64, float64) {
	w, h := c.pdf.GetPageSize()
	return w, h
}

func (c *pdfCanvas) NewPage() {
	c.pdf.AddPage()
}

func (c *pdfCanvas) SetFont(style FontStyle, size float64) {
	c.pdf.SetFont("Helvetica", string(style), size)
}

func (c *pdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, c.tr(s))
}

func (c *pdfCanvas) TextCentered(x, y float64, s string) {
	t := c.tr(s)
	c.pdf.Text(x-c.pdf.GetStringWidth(t)/2, y, t)
}

func (c *pdfCanvas) Rect(x, y, w, h float64) {
	c.pdf.Rect(x, y, w, h, "D")
}

func (c *pdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

// SplitText measures the untranslated string. Accented runes measure a
// touch wide that way, which only makes wrapping conservative; translating
// here would double-encode the lines when Text draws them.
func (c *pdfCanvas) SplitText(s string, maxWidth float64) []string {
	return c.pdf.SplitText(s, maxWidth)
}

// Output writes the finished document and reports any accumulated drawing
// error.
func (c *pdfCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}
