// Package printview renders annexes as self-contained printable HTML. The
// markup mirrors the PDF layout; the stylesheet carries the print media
// rules so the browser's print dialog produces the same form.
package printview

import (
	"fmt"
	"html/template"
	"io"

	"anexos/internal/docgen"
	"anexos/internal/domain"
)

const baseCSS = `
body { font-family: Arial, sans-serif; line-height: 1.4; margin: 20px; font-size: 11px; }
.header { text-align: center; margin-bottom: 20px; }
.field-row { display: flex; align-items: center; margin: 8px 0; }
.field-label { margin-right: 10px; font-weight: normal; }
.field-box { border: 2px solid #000; min-height: 20px; padding: 3px 5px; background: white; flex-grow: 1; max-width: 400px; }
.field-box-small { border: 2px solid #000; min-height: 20px; padding: 3px 5px; background: white; width: 150px; margin-right: 20px; }
.section-title { font-weight: bold; margin: 15px 0 10px 0; font-size: 12px; }
.checkbox-section { margin: 10px 0; }
.checkbox { border: 2px solid #000; width: 15px; height: 15px; display: inline-block; margin-right: 5px; text-align: center; vertical-align: middle; }
.note { font-size: 9px; margin: 5px 0; }
table { border-collapse: collapse; width: 100%; margin: 10px 0; }
th, td { border: 2px solid #000; padding: 4px 6px; font-size: 10px; text-align: left; }
th { text-align: center; }
.signature-section { margin-top: 40px; display: flex; justify-content: space-between; }
.signature-box { text-align: center; width: 45%; }
.signature-line { border-bottom: 2px solid #000; height: 40px; margin-bottom: 5px; }
@media print { body { margin: 15px; } .no-print { display: none; } }
`

type masivosPage struct {
	Annex         *domain.MasivosAnnex
	SolesAhorro   bool
	SolesCte      bool
	DolaresAhorro bool
	DolaresCte    bool
	SolesNumber   string
	DolaresNumber string
	Date          string
	CSS           template.CSS
}

type recaudacionPage struct {
	Annex *domain.RecaudacionAnnex
	Date  string
	CSS   template.CSS
}

var (
	masivosTmpl     = template.Must(template.New("masivos").Funcs(funcs).Parse(masivosHTML))
	recaudacionTmpl = template.Must(template.New("recaudacion").Funcs(funcs).Parse(recaudacionHTML))
)

var funcs = template.FuncMap{
	"mark": func(checked bool) string {
		if checked {
			return "X"
		}
		return ""
	},
	"pct": func(v string) string {
		if v == "" {
			return "% "
		}
		return v + "%"
	},
}

// WriteMasivos renders the Pagos Masivos annex as printable HTML.
func WriteMasivos(w io.Writer, a *domain.MasivosAnnex) error {
	page := masivosPage{
		Annex:         a,
		SolesAhorro:   a.Currency == domain.CurrencySoles && a.AccountKind == domain.AccountAhorro,
		SolesCte:      a.Currency == domain.CurrencySoles && a.AccountKind == domain.AccountCorriente,
		DolaresAhorro: a.Currency == domain.CurrencyDolares && a.AccountKind == domain.AccountAhorro,
		DolaresCte:    a.Currency == domain.CurrencyDolares && a.AccountKind == domain.AccountCorriente,
		Date:          docgen.SpanishDate(a.GeneratedAt),
		CSS:           template.CSS(baseCSS),
	}
	if a.Currency == domain.CurrencySoles {
		page.SolesNumber = a.AccountNumber
	}
	if a.Currency == domain.CurrencyDolares {
		page.DolaresNumber = a.AccountNumber
	}
	if err := masivosTmpl.Execute(w, page); err != nil {
		return fmt.Errorf("printview.WriteMasivos: %w", err)
	}
	return nil
}

// WriteRecaudacion renders the Recaudación annex as printable HTML.
func WriteRecaudacion(w io.Writer, a *domain.RecaudacionAnnex) error {
	page := recaudacionPage{
		Annex: a,
		Date:  docgen.SpanishDate(a.GeneratedAt),
		CSS:   template.CSS(baseCSS),
	}
	if err := recaudacionTmpl.Execute(w, page); err != nil {
		return fmt.Errorf("printview.WriteRecaudacion: %w", err)
	}
	return nil
}
