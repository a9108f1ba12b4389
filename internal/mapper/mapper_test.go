package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"anexos/internal/domain"
)

var testNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func masivosForm() *domain.MasivosForm {
	f := domain.NewMasivosForm()
	f.CompanyName = "Acme S.A.C."
	f.TaxID = "20123456789"
	f.ContactName = "María Torres"
	f.ContactPhone = "987654321"
	f.ContactEmail1 = "mtorres@acme.com.pe"
	f.Services = domain.ServiceSelection{Remuneraciones: true, PagosVarios: true}
	f.Currencies = domain.CurrencySelection{Soles: true, Dolares: true}
	f.AccountSoles = domain.Account{Kind: domain.AccountCorriente, Number: "193-1234567-0-01"}
	f.AccountDolares = domain.Account{Kind: domain.AccountAhorro, Number: "193-7654321-0-02"}
	f.SetControl(domain.ServiceRemuneraciones, domain.CurrencySoles, domain.AmountControls{MaxBatch: "100000", MaxPayment: "5000"})
	f.SetControl(domain.ServicePagosVarios, domain.CurrencyDolares, domain.AmountControls{MaxBatch: "SL", MaxPayment: "SL"})
	return f
}

func TestToMasivosAnnex(t *testing.T) {
	a := ToMasivosAnnex(masivosForm(), testNow)

	assert.Equal(t, "Acme S.A.C.", a.CompanyName)
	assert.Equal(t, "remuneraciones pagosVarios", a.ServiceList)
	assert.True(t, a.IsRemuneraciones)
	assert.False(t, a.IsProveedores)
	assert.True(t, a.IsNuevo)
	assert.False(t, a.IsModificacion)

	// Soles wins as the primary account when both currencies are selected.
	assert.Equal(t, domain.CurrencySoles, a.Currency)
	assert.Equal(t, domain.AccountCorriente, a.AccountKind)
	assert.Equal(t, "193-1234567-0-01", a.AccountNumber)

	assert.Equal(t, "100000", a.MaxBatchRemuneracionesSoles)
	assert.Equal(t, "5000", a.MaxPaymentRemuneracionesSoles)
	assert.Equal(t, "SL", a.MaxBatchVariosDolares)

	// Pairs never filled in stay empty, not zero.
	assert.Equal(t, "", a.MaxBatchProveedoresSoles)
	assert.Equal(t, "", a.MaxBatchRemuneracionesDolares)

	assert.Equal(t, "no", a.ConsolidateProveedores)
	assert.Equal(t, testNow, a.GeneratedAt)
}

func TestToMasivosAnnexDolaresOnly(t *testing.T) {
	f := masivosForm()
	f.Currencies = domain.CurrencySelection{Dolares: true}

	a := ToMasivosAnnex(f, testNow)
	assert.Equal(t, domain.CurrencyDolares, a.Currency)
	assert.Equal(t, domain.AccountAhorro, a.AccountKind)
	assert.Equal(t, "193-7654321-0-02", a.AccountNumber)
}

func TestToMasivosAnnexNoCurrencyLeavesAccountEmpty(t *testing.T) {
	f := masivosForm()
	f.Currencies = domain.CurrencySelection{}

	a := ToMasivosAnnex(f, testNow)
	assert.Empty(t, a.Currency)
	assert.Empty(t, a.AccountKind)
	assert.Empty(t, a.AccountNumber)
}

func TestToMasivosAnnexIdempotent(t *testing.T) {
	f := masivosForm()
	first := ToMasivosAnnex(f, testNow)
	second := ToMasivosAnnex(f, testNow)
	assert.Equal(t, first, second)
}

func TestToRecaudacionAnnex(t *testing.T) {
	f := domain.NewRecaudacionForm()
	f.CodigoUnico = "CU0012345"
	f.RazonSocial = "Acme S.A.C."
	f.TaxID = "20123456789"
	f.RequestKind = domain.RequestModificacion
	f.FileDelivery = domain.DeliveryCorreo
	f.LoadIndicator = domain.Load24Hours
	f.DepositKind = domain.DepositFinalDiaConsolidado
	f.Policy = domain.PaymentPolicy{AcceptsOverdue: true, AcceptsPartial: true}
	f.CuentasCobranzas = []domain.AccountEntry{
		{Percentage: "100", Kind: domain.AccountCorriente, Currency: domain.CurrencySoles, Number: "193-1234567-0-01"},
	}
	f.CorreosConsolidacion = []string{"a@acme.pe", "b@acme.pe"}
	f.TipoRecaudacion = domain.CollectionExclusiva

	a := ToRecaudacionAnnex(f, testNow)

	assert.False(t, a.IsNuevo)
	assert.True(t, a.IsModificacion)
	assert.False(t, a.EnvioSFTP)
	assert.True(t, a.EnvioCorreo)
	assert.False(t, a.Carga9PM)
	assert.True(t, a.Carga24Horas)
	assert.False(t, a.AbonoLineaDetallado)
	assert.True(t, a.AbonoFinalDiaConsolidado)

	assert.True(t, a.AceptaPagosVencidos)
	assert.False(t, a.ObligaPagosSucesivos)
	assert.True(t, a.AceptaPagosParciales)

	assert.Equal(t, "a@acme.pe, b@acme.pe", a.CorreosConsolidacion)
	assert.True(t, a.RecaudacionExclusiva)
	assert.False(t, a.RecaudacionCompartida)

	if assert.Len(t, a.CuentasCobranzas, 1) {
		assert.Equal(t, domain.AnnexAccountRow{
			Percentage: "100",
			Kind:       "Corriente",
			Currency:   "Soles",
			Number:     "193-1234567-0-01",
		}, a.CuentasCobranzas[0])
	}
	assert.Empty(t, a.CuentasComisiones)
}

func TestToRecaudacionAnnexNoExclusivityChoice(t *testing.T) {
	f := domain.NewRecaudacionForm()
	a := ToRecaudacionAnnex(f, testNow)
	assert.False(t, a.RecaudacionExclusiva)
	assert.False(t, a.RecaudacionCompartida)
}
