package docgen

import (
	"bytes"
	"fmt"

	"anexos/internal/domain"
)

// MasivosPDF renders a Pagos Masivos annex and returns the PDF bytes.
func MasivosPDF(a *domain.MasivosAnnex) ([]byte, error) {
	c := NewPDFCanvas()
	RenderMasivos(c, a)

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		return nil, fmt.Errorf("docgen.MasivosPDF: %w", err)
	}
	return buf.Bytes(), nil
}

// RecaudacionPDF renders a Recaudación annex and returns the PDF bytes.
func RecaudacionPDF(a *domain.RecaudacionAnnex) ([]byte, error) {
	c := NewPDFCanvas()
	RenderRecaudacion(c, a)

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		return nil, fmt.Errorf("docgen.RecaudacionPDF: %w", err)
	}
	return buf.Bytes(), nil
}
