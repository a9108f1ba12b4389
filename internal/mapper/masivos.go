// Package mapper flattens accumulated wizard forms into the canonical annex
// records the renderers consume. Mapping is pure and total: every annex
// field gets a value, empty when the source step was never shown.
package mapper

import (
	"strings"
	"time"

	"anexos/internal/domain"
)

// ToMasivosAnnex flattens a Pagos Masivos form. The primary charge account
// is the Soles account when Soles is selected, otherwise the Dólares one.
func ToMasivosAnnex(f *domain.MasivosForm, now time.Time) *domain.MasivosAnnex {
	a := &domain.MasivosAnnex{
		CompanyName: f.CompanyName,
		TaxID:       f.TaxID,

		ContactName:   f.ContactName,
		ContactPhone:  f.ContactPhone,
		ContactEmail1: f.ContactEmail1,
		ContactEmail2: f.ContactEmail2,

		ServiceList:      serviceList(f.Services),
		IsRemuneraciones: f.Services.Remuneraciones,
		IsProveedores:    f.Services.Proveedores,
		IsPagosVarios:    f.Services.PagosVarios,
		IsNuevo:          f.RequestKind == domain.RequestNuevo,
		IsModificacion:   f.RequestKind == domain.RequestModificacion,

		MaxDaysProveedores:     f.Additional.MaxDaysProveedores,
		MaxDaysVarios:          f.Additional.MaxDaysVarios,
		ConsolidateProveedores: string(f.Additional.ConsolidateProveedores),
		ConsolidateVarios:      string(f.Additional.ConsolidateVarios),

		CommissionEmpresaSoles:     f.Additional.Commission.EmpresaSoles,
		CommissionEmpresaDolares:   f.Additional.Commission.EmpresaDolares,
		CommissionProveedorSoles:   f.Additional.Commission.ProveedorSoles,
		CommissionProveedorDolares: f.Additional.Commission.ProveedorDolares,

		GeneratedAt: now,
	}

	switch {
	case f.Currencies.Soles:
		a.Currency = domain.CurrencySoles
		a.AccountKind = f.AccountSoles.Kind
		a.AccountNumber = f.AccountSoles.Number
	case f.Currencies.Dolares:
		a.Currency = domain.CurrencyDolares
		a.AccountKind = f.AccountDolares.Kind
		a.AccountNumber = f.AccountDolares.Number
	}

	rem := func(cur domain.Currency) domain.AmountControls { return f.Control(domain.ServiceRemuneraciones, cur) }
	prov := func(cur domain.Currency) domain.AmountControls { return f.Control(domain.ServiceProveedores, cur) }
	varios := func(cur domain.Currency) domain.AmountControls { return f.Control(domain.ServicePagosVarios, cur) }

	a.MaxBatchRemuneracionesSoles = rem(domain.CurrencySoles).MaxBatch
	a.MaxBatchRemuneracionesDolares = rem(domain.CurrencyDolares).MaxBatch
	a.MaxPaymentRemuneracionesSoles = rem(domain.CurrencySoles).MaxPayment
	a.MaxPaymentRemuneracionesDolares = rem(domain.CurrencyDolares).MaxPayment

	a.MaxBatchProveedoresSoles = prov(domain.CurrencySoles).MaxBatch
	a.MaxBatchProveedoresDolares = prov(domain.CurrencyDolares).MaxBatch
	a.MaxPaymentProveedoresSoles = prov(domain.CurrencySoles).MaxPayment
	a.MaxPaymentProveedoresDolares = prov(domain.CurrencyDolares).MaxPayment

	a.MaxBatchVariosSoles = varios(domain.CurrencySoles).MaxBatch
	a.MaxBatchVariosDolares = varios(domain.CurrencyDolares).MaxBatch
	a.MaxPaymentVariosSoles = varios(domain.CurrencySoles).MaxPayment
	a.MaxPaymentVariosDolares = varios(domain.CurrencyDolares).MaxPayment

	return a
}

func serviceList(s domain.ServiceSelection) string {
	var parts []string
	for _, k := range domain.ServiceKinds {
		if s.Selected(k) {
			parts = append(parts, string(k))
		}
	}
	return strings.Join(parts, " ")
}
