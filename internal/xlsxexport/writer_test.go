package xlsxexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"anexos/internal/domain"
)

var testNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func readCell(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheetName, cell)
	require.NoError(t, err)
	return v
}

func TestWriteMasivos(t *testing.T) {
	a := &domain.MasivosAnnex{
		CompanyName:   "Acme S.A.C.",
		TaxID:         "20123456789",
		ContactName:   "María Torres",
		Currency:      domain.CurrencySoles,
		AccountKind:   domain.AccountCorriente,
		AccountNumber: "193-1234567-0-01",
		IsNuevo:       true,
		ServiceList:   "remuneraciones proveedores",
		GeneratedAt:   testNow,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMasivos(&buf, a))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "ANEXO PAGOS MASIVOS", readCell(t, f, "A1"))
	assert.Equal(t, "Campo", readCell(t, f, "A3"))
	assert.Equal(t, "Razón Social", readCell(t, f, "A4"))
	assert.Equal(t, "Acme S.A.C.", readCell(t, f, "B4"))
	assert.Equal(t, "20123456789", readCell(t, f, "B5"))

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	want := map[string]string{
		"Tipo de Solicitud":      "Nuevo",
		"Servicios":              "remuneraciones proveedores",
		"Número Cuenta de Cargo": "193-1234567-0-01",
		"Generado":               "2025-03-14T10:30:00Z",
	}
	got := map[string]string{}
	for _, row := range rows {
		if len(row) >= 2 {
			got[row[0]] = row[1]
		}
	}
	for label, value := range want {
		assert.Equal(t, value, got[label], label)
	}
}

func TestWriteRecaudacion(t *testing.T) {
	a := &domain.RecaudacionAnnex{
		RazonSocial:    "Colegio San Martín",
		CodigoUnico:    "CU0012345",
		IsModificacion: true,
		EnvioSFTP:      true,
		Carga9PM:       true,
		MonedaSoles:    true,
		CuentasCobranzas: []domain.AnnexAccountRow{
			{Percentage: "60", Kind: "Corriente", Currency: "Soles", Number: "193-1234567-0-01"},
			{Percentage: "40", Kind: "Ahorros", Currency: "Dólares", Number: "193-7654321-1-02"},
		},
		CuentasComisiones: []domain.AnnexAccountRow{
			{Percentage: "100", Kind: "Corriente", Currency: "Soles", Number: "193-1234567-0-01"},
		},
		GeneratedAt: testNow,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRecaudacion(&buf, a))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "ANEXO SERVICIO DE RECAUDACIÓN", readCell(t, f, "A1"))

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	var (
		labels      []string
		cobranzaRow []string
	)
	for i, row := range rows {
		if len(row) > 0 {
			labels = append(labels, row[0])
		}
		if len(row) > 0 && row[0] == "Cuentas para Abonos de Cobranzas" {
			// Title, then header, then first data row.
			cobranzaRow = rows[i+2]
		}
	}

	assert.Contains(t, labels, "Cuentas para Abonos de Cobranzas")
	assert.Contains(t, labels, "Cuentas para Cargos por Comisiones")
	require.Len(t, cobranzaRow, 4)
	assert.Equal(t, []string{"60", "Corriente", "Soles", "193-1234567-0-01"}, cobranzaRow)

	got := map[string]string{}
	for _, row := range rows {
		if len(row) >= 2 {
			got[row[0]] = row[1]
		}
	}
	assert.Equal(t, "Modificación", got["Tipo de Solicitud"])
	assert.Equal(t, "SFTP", got["Envío de Archivo"])
	assert.Equal(t, "Hasta las 9 p.m.", got["Indicador de Carga"])
	assert.Equal(t, "Sí", got["Moneda Soles"])
	assert.Equal(t, "No", got["Moneda Dólares"])
}

func TestBuildFilename(t *testing.T) {
	assert.Equal(t, "Anexo_Pagos_Masivos_Acme_S_A_C_2025-03-14.xlsx",
		BuildFilename("Anexo_Pagos_Masivos", "Acme S.A.C.", testNow))
	assert.Equal(t, "Anexo_Recaudacion_Colegio_San_Mart_n_2025-03-14.xlsx",
		BuildFilename("Anexo_Recaudacion", "Colegio San Martín", testNow))
}
