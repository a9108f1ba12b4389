package mapper

import (
	"strings"
	"time"

	"anexos/internal/domain"
)

// ToRecaudacionAnnex flattens a Recaudación form. Every enum choice becomes
// the pair (or trio) of checkbox booleans the annex prints, and the email
// lists are joined for the fixed-width boxes.
func ToRecaudacionAnnex(f *domain.RecaudacionForm, now time.Time) *domain.RecaudacionAnnex {
	return &domain.RecaudacionAnnex{
		CodigoUnico:   f.CodigoUnico,
		PuntoServicio: f.PuntoServicio,
		RazonSocial:   f.RazonSocial,
		TaxID:         f.TaxID,
		GiroEmpresa:   f.GiroEmpresa,

		IsNuevo:         f.RequestKind == domain.RequestNuevo,
		IsModificacion:  f.RequestKind == domain.RequestModificacion,
		NombreComercial: f.NombreComercial,
		NumeroServicio:  f.NumeroServicio,
		NombreServicio:  f.NombreServicio,

		EnvioSFTP:          f.FileDelivery == domain.DeliverySFTP,
		EnvioCorreo:        f.FileDelivery == domain.DeliveryCorreo,
		Carga9PM:           f.LoadIndicator == domain.Load9PM,
		Carga24Horas:       f.LoadIndicator == domain.Load24Hours,
		HorarioRecaudacion: f.HorarioRecaudacion,

		MonedaSoles:              f.MonedaSoles,
		MonedaDolares:            f.MonedaDolares,
		CanalAppBanca:            f.CanalAppBanca,
		CanalAgenteLima:          f.CanalAgenteLima,
		CanalAgenteProvincias:    f.CanalAgenteProvincias,
		CanalAgenteSupermercados: f.CanalAgenteSupermercados,
		CanalOtros:               f.CanalOtros,

		AbonoLineaDetallado:      f.DepositKind == domain.DepositLineaDetallado,
		AbonoLineaConsolidado:    f.DepositKind == domain.DepositLineaConsolidado,
		AbonoFinalDiaConsolidado: f.DepositKind == domain.DepositFinalDiaConsolidado,

		AceptaPagosVencidos:  f.Policy.AcceptsOverdue,
		ObligaPagosSucesivos: f.Policy.RequiresSequential,
		AceptaPagosParciales: f.Policy.AcceptsPartial,

		CodigoIdentificadorDeudor: f.CodigoIdentificadorDeudor,
		NumeroCaracteresDeudor:    f.NumeroCaracteresDeudor,

		ComisionAgenteEmpresaSoles:       f.ComisionAgenteEmpresaSoles,
		ComisionAgenteEmpresaDolares:     f.ComisionAgenteEmpresaDolares,
		ComisionAgenteUsuarioLima:        f.ComisionAgenteUsuarioLima,
		ComisionElectronicosEmpresaSoles: f.ComisionElectronicosEmpresaSoles,
		ComisionElectronicosOtro1:        f.ComisionElectronicosOtro1,
		ComisionElectronicosOtro2:        f.ComisionElectronicosOtro2,

		CuentasCobranzas:  accountRows(f.CuentasCobranzas),
		CuentasComisiones: accountRows(f.CuentasComisiones),

		CorreosConsolidacion: strings.Join(f.CorreosConsolidacion, ", "),
		CorreosConfirmacion:  strings.Join(f.CorreosConfirmacion, ", "),
		NombreContacto:       f.NombreContacto,
		CorreoContacto:       f.CorreoContacto,
		TelefonoContacto:     f.TelefonoContacto,

		RecaudacionExclusiva:    f.TipoRecaudacion == domain.CollectionExclusiva,
		RecaudacionCompartida:   f.TipoRecaudacion == domain.CollectionCompartida,
		NumeroClientes:          f.NumeroClientes,
		RecaudacionAnualSoles:   f.RecaudacionAnualSoles,
		RecaudacionAnualDolares: f.RecaudacionAnualDolares,

		GeneratedAt: now,
	}
}

func accountRows(entries []domain.AccountEntry) []domain.AnnexAccountRow {
	rows := make([]domain.AnnexAccountRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, domain.AnnexAccountRow{
			Percentage: e.Percentage,
			Kind:       accountKindLabel(e.Kind),
			Currency:   currencyLabel(e.Currency),
			Number:     e.Number,
		})
	}
	return rows
}

func accountKindLabel(k domain.AccountKind) string {
	switch k {
	case domain.AccountAhorro:
		return "Ahorros"
	case domain.AccountCorriente:
		return "Corriente"
	}
	return ""
}

func currencyLabel(c domain.Currency) string {
	switch c {
	case domain.CurrencySoles:
		return "Soles"
	case domain.CurrencyDolares:
		return "Dólares"
	}
	return ""
}
