package docgen

import (
	"fmt"
	"regexp"
	"time"
)

const (
	margin    = 15.0
	checkSize = 5.0
	rowHeight = 8.0
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// layout carries the y cursor down an annex page.
type layout struct {
	c     Canvas
	y     float64
	pageW float64
	pageH float64
}

func newLayout(c Canvas) *layout {
	w, h := c.PageSize()
	return &layout{c: c, y: margin, pageW: w, pageH: h}
}

func (l *layout) contentWidth() float64 {
	return l.pageW - 2*margin
}

// addText draws word-wrapped text at x and advances the cursor past it.
// Line advance is 0.4mm per font point, matching the annex's tight leading.
func (l *layout) addText(text string, x, maxWidth, fontSize float64) {
	l.c.SetFont(FontRegular, fontSize)
	lines := l.c.SplitText(text, maxWidth)
	for i, line := range lines {
		l.c.Text(x, l.y+float64(i)*fontSize*0.4, line)
	}
	l.y += float64(len(lines)) * fontSize * 0.4
}

// addBoldText is addText in the bold face.
func (l *layout) addBoldText(text string, x, maxWidth, fontSize float64) {
	l.c.SetFont(FontBold, fontSize)
	lines := l.c.SplitText(text, maxWidth)
	for i, line := range lines {
		l.c.Text(x, l.y+float64(i)*fontSize*0.4, line)
	}
	l.y += float64(len(lines)) * fontSize * 0.4
}

// box draws a bordered field at the cursor with its value in the lower-left
// corner. The cursor does not move; callers advance it explicitly, some
// rows place two boxes side by side.
func (l *layout) box(x, width, height float64, text string) {
	l.c.Rect(x, l.y, width, height)
	if text != "" {
		l.c.Text(x+2, l.y+height-2, text)
	}
}

// boxAt is box at an explicit y, for fields hung above the cursor line.
func (l *layout) boxAt(x, y, width, height float64, text string) {
	l.c.Rect(x, y, width, height)
	if text != "" {
		l.c.Text(x+2, y+height-2, text)
	}
}

// checkbox draws a 5mm square with an optional X and its label.
func (l *layout) checkbox(x float64, checked bool, label string) {
	l.c.Rect(x, l.y, checkSize, checkSize)
	if checked {
		l.c.Text(x+1, l.y+4, "X")
	}
	l.c.Text(x+checkSize+3, l.y+4, label)
}

// label draws plain text on the cursor line without advancing.
func (l *layout) label(x float64, text string) {
	l.c.Text(x, l.y, text)
}

// ensureSpace starts a new page when less than need millimeters remain. It
// reports whether a break happened so tables can repeat their header rows.
func (l *layout) ensureSpace(need float64) bool {
	if l.y > l.pageH-need {
		l.c.NewPage()
		l.y = margin
		return true
	}
	return false
}

// footer stamps the generation line at the bottom of the current page.
func (l *layout) footer(generatedAt time.Time) {
	l.c.SetFont(FontRegular, 8)
	l.c.TextCentered(l.pageW/2, l.pageH-15, "Documento generado el "+SpanishDate(generatedAt))
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// SpanishDate formats a date the way es-PE long dates print, for example
// "14 de marzo de 2025".
func SpanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// sanitizeFilename collapses everything outside [a-zA-Z0-9] to underscores.
func sanitizeFilename(name string) string {
	return nonAlnum.ReplaceAllString(name, "_")
}

// MasivosFilename is the download name for a Pagos Masivos annex.
func MasivosFilename(companyName string) string {
	return "Anexo_Pagos_Masivos_" + sanitizeFilename(companyName) + ".pdf"
}

// RecaudacionFilename is the download name for a Recaudación annex.
func RecaudacionFilename(razonSocial string) string {
	return "Anexo_Recaudacion_" + sanitizeFilename(razonSocial) + ".pdf"
}
