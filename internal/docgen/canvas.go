// Package docgen renders the enrollment annexes onto an abstract canvas.
// The layouts position everything in millimeters on A4 portrait pages; the
// concrete canvas (PDF today) only draws primitives.
package docgen

// FontStyle selects between the two faces the annexes use.
type FontStyle string

const (
	FontRegular FontStyle = ""
	FontBold    FontStyle = "B"
)

// Canvas is the drawing surface a renderer writes to. Coordinates are in
// millimeters from the top-left corner; Text positions the baseline, as PDF
// text operators do.
type Canvas interface {
	PageSize() (w, h float64)
	NewPage()
	SetFont(style FontStyle, size float64)
	Text(x, y float64, s string)
	TextCentered(x, y float64, s string)
	Rect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
	SplitText(s string, maxWidth float64) []string
}
