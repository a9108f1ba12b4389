// Package xlsxexport writes annex records as spreadsheets for the bank's
// back-office intake, which bulk-loads enrollments from Excel.
package xlsxexport

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"anexos/internal/domain"
)

const sheetName = "Anexo"

// field is one labeled cell pair on the export sheet.
type field struct {
	Label string
	Value string
}

// WriteMasivos writes a Pagos Masivos annex as a two-column workbook.
func WriteMasivos(w io.Writer, a *domain.MasivosAnnex) error {
	fields := []field{
		{"Razón Social", a.CompanyName},
		{"RUC / DNI", a.TaxID},
		{"Nombre Contacto", a.ContactName},
		{"Teléfono", a.ContactPhone},
		{"Correo 1", a.ContactEmail1},
		{"Correo 2", a.ContactEmail2},
		{"Servicios", a.ServiceList},
		{"Tipo de Solicitud", requestLabel(a.IsNuevo, a.IsModificacion)},
		{"Moneda Cuenta de Cargo", string(a.Currency)},
		{"Tipo Cuenta de Cargo", string(a.AccountKind)},
		{"Número Cuenta de Cargo", a.AccountNumber},
		{"Lote Máx. Remuneraciones S/", a.MaxBatchRemuneracionesSoles},
		{"Lote Máx. Remuneraciones $", a.MaxBatchRemuneracionesDolares},
		{"Pago Máx. Remuneraciones S/", a.MaxPaymentRemuneracionesSoles},
		{"Pago Máx. Remuneraciones $", a.MaxPaymentRemuneracionesDolares},
		{"Lote Máx. Proveedores S/", a.MaxBatchProveedoresSoles},
		{"Lote Máx. Proveedores $", a.MaxBatchProveedoresDolares},
		{"Pago Máx. Proveedores S/", a.MaxPaymentProveedoresSoles},
		{"Pago Máx. Proveedores $", a.MaxPaymentProveedoresDolares},
		{"Lote Máx. Pagos Varios S/", a.MaxBatchVariosSoles},
		{"Lote Máx. Pagos Varios $", a.MaxBatchVariosDolares},
		{"Pago Máx. Pagos Varios S/", a.MaxPaymentVariosSoles},
		{"Pago Máx. Pagos Varios $", a.MaxPaymentVariosDolares},
		{"Días Máx. Proveedores", a.MaxDaysProveedores},
		{"Días Máx. Pagos Varios", a.MaxDaysVarios},
		{"Consolidar Proveedores", a.ConsolidateProveedores},
		{"Consolidar Pagos Varios", a.ConsolidateVarios},
		{"Comisión Empresa S/", a.CommissionEmpresaSoles},
		{"Comisión Empresa $", a.CommissionEmpresaDolares},
		{"Comisión Proveedor S/", a.CommissionProveedorSoles},
		{"Comisión Proveedor $", a.CommissionProveedorDolares},
		{"Generado", a.GeneratedAt.Format(time.RFC3339)},
	}
	return writeWorkbook(w, "ANEXO PAGOS MASIVOS", fields, nil)
}

// WriteRecaudacion writes a Recaudación annex. The two account lists follow
// the field block as four-column tables.
func WriteRecaudacion(w io.Writer, a *domain.RecaudacionAnnex) error {
	fields := []field{
		{"Código Único", a.CodigoUnico},
		{"Punto de Servicio", a.PuntoServicio},
		{"Razón Social", a.RazonSocial},
		{"RUC", a.TaxID},
		{"Giro de la Empresa", a.GiroEmpresa},
		{"Tipo de Solicitud", requestLabel(a.IsNuevo, a.IsModificacion)},
		{"Nombre Comercial", a.NombreComercial},
		{"Número de Servicio", a.NumeroServicio},
		{"Nombre de Servicio", a.NombreServicio},
		{"Envío de Archivo", deliveryLabel(a)},
		{"Indicador de Carga", loadLabel(a)},
		{"Horario de Recaudación", a.HorarioRecaudacion},
		{"Moneda Soles", boolLabel(a.MonedaSoles)},
		{"Moneda Dólares", boolLabel(a.MonedaDolares)},
		{"Canal App / Banca", boolLabel(a.CanalAppBanca)},
		{"Canal Agente Lima", boolLabel(a.CanalAgenteLima)},
		{"Canal Agente Provincias", boolLabel(a.CanalAgenteProvincias)},
		{"Canal Agente Supermercados", boolLabel(a.CanalAgenteSupermercados)},
		{"Canal Otro", a.CanalOtros},
		{"Tipo de Abono", depositLabel(a)},
		{"Acepta Pagos Vencidos", boolLabel(a.AceptaPagosVencidos)},
		{"Obliga Pagos Sucesivos", boolLabel(a.ObligaPagosSucesivos)},
		{"Acepta Pagos Parciales", boolLabel(a.AceptaPagosParciales)},
		{"Código Identificador Deudor", a.CodigoIdentificadorDeudor},
		{"Caracteres Código Deudor", a.NumeroCaracteresDeudor},
		{"Comisión Agente Empresa S/", a.ComisionAgenteEmpresaSoles},
		{"Comisión Agente Empresa $", a.ComisionAgenteEmpresaDolares},
		{"Comisión Agente Usuario Lima", a.ComisionAgenteUsuarioLima},
		{"Comisión Electrónicos Empresa S/", a.ComisionElectronicosEmpresaSoles},
		{"Comisión Otros 1", a.ComisionElectronicosOtro1},
		{"Comisión Otros 2", a.ComisionElectronicosOtro2},
		{"Correos Consolidación", a.CorreosConsolidacion},
		{"Correos Confirmación", a.CorreosConfirmacion},
		{"Nombre Contacto", a.NombreContacto},
		{"Correo Contacto", a.CorreoContacto},
		{"Teléfono Contacto", a.TelefonoContacto},
		{"Tipo de Recaudación", collectionLabel(a)},
		{"Número de Clientes", a.NumeroClientes},
		{"Recaudación Anual S/", a.RecaudacionAnualSoles},
		{"Recaudación Anual $", a.RecaudacionAnualDolares},
		{"Generado", a.GeneratedAt.Format(time.RFC3339)},
	}

	tables := []accountTable{
		{Title: "Cuentas para Abonos de Cobranzas", Rows: a.CuentasCobranzas},
		{Title: "Cuentas para Cargos por Comisiones", Rows: a.CuentasComisiones},
	}
	return writeWorkbook(w, "ANEXO SERVICIO DE RECAUDACIÓN", fields, tables)
}

type accountTable struct {
	Title string
	Rows  []domain.AnnexAccountRow
}

func writeWorkbook(w io.Writer, title string, fields []field, tables []accountTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("xlsxexport: rename sheet: %w", err)
	}

	row := 1
	setCell(f, "A", row, title)
	row += 2

	setCell(f, "A", row, "Campo")
	setCell(f, "B", row, "Valor")
	row++
	for _, fl := range fields {
		setCell(f, "A", row, fl.Label)
		setCell(f, "B", row, fl.Value)
		row++
	}

	for _, table := range tables {
		row++
		setCell(f, "A", row, table.Title)
		row++
		for i, h := range []string{"Porcentaje (%)", "Tipo de Cuenta", "Moneda", "Número de Cuenta"} {
			setCell(f, string(rune('A'+i)), row, h)
		}
		row++
		for _, r := range table.Rows {
			setCell(f, "A", row, r.Percentage)
			setCell(f, "B", row, r.Kind)
			setCell(f, "C", row, r.Currency)
			setCell(f, "D", row, r.Number)
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsxexport: write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col string, row int, value string) {
	// Coordinates are built locally, so the only possible error is a bad
	// sheet name, caught by the rename above.
	_ = f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), value)
}

func requestLabel(nuevo, modificacion bool) string {
	switch {
	case nuevo:
		return "Nuevo"
	case modificacion:
		return "Modificación"
	}
	return ""
}

func boolLabel(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}

func deliveryLabel(a *domain.RecaudacionAnnex) string {
	switch {
	case a.EnvioSFTP:
		return "SFTP"
	case a.EnvioCorreo:
		return "Correo Electrónico"
	}
	return ""
}

func loadLabel(a *domain.RecaudacionAnnex) string {
	switch {
	case a.Carga9PM:
		return "Hasta las 9 p.m."
	case a.Carga24Horas:
		return "24 horas"
	}
	return ""
}

func depositLabel(a *domain.RecaudacionAnnex) string {
	switch {
	case a.AbonoLineaDetallado:
		return "En línea detallado"
	case a.AbonoLineaConsolidado:
		return "En línea consolidado"
	case a.AbonoFinalDiaConsolidado:
		return "Fin de día consolidado"
	}
	return ""
}

func collectionLabel(a *domain.RecaudacionAnnex) string {
	switch {
	case a.RecaudacionExclusiva:
		return "Exclusiva"
	case a.RecaudacionCompartida:
		return "Compartida"
	}
	return ""
}

// nonAlphanumeric matches characters outside [a-zA-Z0-9_-].
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// BuildFilename returns a sanitized download name, for example
// Anexo_Pagos_Masivos_Acme_SAC_2025-03-14.xlsx.
func BuildFilename(prefix, companyName string, generatedAt time.Time) string {
	s := nonAlphanumeric.ReplaceAllString(companyName, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return fmt.Sprintf("%s_%s_%s.xlsx", prefix, s, generatedAt.Format("2006-01-02"))
}
