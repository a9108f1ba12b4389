package domain

import "time"

// ServiceSelection holds the Pagos Masivos service toggles.
type ServiceSelection struct {
	Remuneraciones bool `json:"remuneraciones"`
	Proveedores    bool `json:"proveedores"`
	PagosVarios    bool `json:"pagos_varios"`
}

// Any reports whether at least one service is selected.
func (s ServiceSelection) Any() bool {
	return s.Remuneraciones || s.Proveedores || s.PagosVarios
}

// Selected reports whether the given service kind is toggled on.
func (s ServiceSelection) Selected(k ServiceKind) bool {
	switch k {
	case ServiceRemuneraciones:
		return s.Remuneraciones
	case ServiceProveedores:
		return s.Proveedores
	case ServicePagosVarios:
		return s.PagosVarios
	}
	return false
}

// CurrencySelection holds the independent currency toggles.
type CurrencySelection struct {
	Soles   bool `json:"soles"`
	Dolares bool `json:"dolares"`
}

// Any reports whether at least one currency is selected.
func (c CurrencySelection) Any() bool { return c.Soles || c.Dolares }

// Selected reports whether the given currency is toggled on.
func (c CurrencySelection) Selected(cur Currency) bool {
	if cur == CurrencySoles {
		return c.Soles
	}
	return c.Dolares
}

// Account is a charge account for one currency.
type Account struct {
	Kind   AccountKind `json:"kind"`
	Number string      `json:"number"`
}

// AmountControls is the per-(service, currency) pair of monetary ceilings.
// Values are kept as entered: a numeric literal or the "Sin límites"/"SL"
// sentinel.
type AmountControls struct {
	MaxBatch   string `json:"max_batch"`
	MaxPayment string `json:"max_payment"`
}

// CommissionSplit is the Empresa/Proveedor commission distribution per
// currency. Empty values mean the commission is assumed entirely by the
// client downstream.
type CommissionSplit struct {
	EmpresaSoles     string `json:"empresa_soles"`
	EmpresaDolares   string `json:"empresa_dolares"`
	ProveedorSoles   string `json:"proveedor_soles"`
	ProveedorDolares string `json:"proveedor_dolares"`
}

// AdditionalInfo is the conditional block shown only when Proveedores or
// Pagos Varios is selected.
type AdditionalInfo struct {
	MaxDaysProveedores     string          `json:"max_days_proveedores"`
	MaxDaysVarios          string          `json:"max_days_varios"`
	ConsolidateProveedores YesNo           `json:"consolidate_proveedores"`
	ConsolidateVarios      YesNo           `json:"consolidate_varios"`
	Commission             CommissionSplit `json:"commission"`
}

// MasivosForm is the accumulated Pagos Masivos wizard state. Every field has
// an explicit zero default so validators never see missing values.
type MasivosForm struct {
	CompanyName string `json:"company_name"`
	TaxID       string `json:"tax_id"`

	ContactName   string `json:"contact_name"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail1 string `json:"contact_email1"`
	ContactEmail2 string `json:"contact_email2"`

	Services    ServiceSelection `json:"services"`
	RequestKind RequestKind      `json:"request_kind"`

	Currencies     CurrencySelection `json:"currencies"`
	AccountSoles   Account           `json:"account_soles"`
	AccountDolares Account           `json:"account_dolares"`

	Controls map[ServiceKind]map[Currency]AmountControls `json:"controls"`

	Additional AdditionalInfo `json:"additional"`
}

// NewMasivosForm returns a form with every field initialized, matching the
// wizard's initial state.
func NewMasivosForm() *MasivosForm {
	return &MasivosForm{
		RequestKind: RequestNuevo,
		Controls:    make(map[ServiceKind]map[Currency]AmountControls),
		Additional: AdditionalInfo{
			ConsolidateProveedores: No,
			ConsolidateVarios:      No,
		},
	}
}

// Control returns the amount controls for a (service, currency) pair, zero
// valued when the pair was never filled in.
func (f *MasivosForm) Control(svc ServiceKind, cur Currency) AmountControls {
	return f.Controls[svc][cur]
}

// SetControl stores the amount controls for a (service, currency) pair.
func (f *MasivosForm) SetControl(svc ServiceKind, cur Currency, c AmountControls) {
	if f.Controls == nil {
		f.Controls = make(map[ServiceKind]map[Currency]AmountControls)
	}
	if f.Controls[svc] == nil {
		f.Controls[svc] = make(map[Currency]AmountControls)
	}
	f.Controls[svc][cur] = c
}

// MasivosAnnex is the flat, canonical record the Pagos Masivos renderers
// consume. Produced once at submission and immutable afterwards; every field
// is populated (empty string where the source step was never shown).
type MasivosAnnex struct {
	CompanyName string `json:"company_name"`
	TaxID       string `json:"tax_id"`

	ContactName   string `json:"contact_name"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail1 string `json:"contact_email1"`
	ContactEmail2 string `json:"contact_email2"`

	ServiceList      string `json:"service_list"`
	IsRemuneraciones bool   `json:"is_remuneraciones"`
	IsProveedores    bool   `json:"is_proveedores"`
	IsPagosVarios    bool   `json:"is_pagos_varios"`
	IsNuevo          bool   `json:"is_nuevo"`
	IsModificacion   bool   `json:"is_modificacion"`

	// Primary charge account (Soles preferred over Dólares).
	AccountKind   AccountKind `json:"account_kind"`
	Currency      Currency    `json:"currency"`
	AccountNumber string      `json:"account_number"`

	MaxBatchRemuneracionesSoles     string `json:"max_batch_remuneraciones_soles"`
	MaxBatchRemuneracionesDolares   string `json:"max_batch_remuneraciones_dolares"`
	MaxPaymentRemuneracionesSoles   string `json:"max_payment_remuneraciones_soles"`
	MaxPaymentRemuneracionesDolares string `json:"max_payment_remuneraciones_dolares"`

	MaxBatchProveedoresSoles     string `json:"max_batch_proveedores_soles"`
	MaxBatchProveedoresDolares   string `json:"max_batch_proveedores_dolares"`
	MaxPaymentProveedoresSoles   string `json:"max_payment_proveedores_soles"`
	MaxPaymentProveedoresDolares string `json:"max_payment_proveedores_dolares"`

	MaxBatchVariosSoles     string `json:"max_batch_varios_soles"`
	MaxBatchVariosDolares   string `json:"max_batch_varios_dolares"`
	MaxPaymentVariosSoles   string `json:"max_payment_varios_soles"`
	MaxPaymentVariosDolares string `json:"max_payment_varios_dolares"`

	MaxDaysProveedores     string `json:"max_days_proveedores"`
	MaxDaysVarios          string `json:"max_days_varios"`
	ConsolidateProveedores string `json:"consolidate_proveedores"`
	ConsolidateVarios      string `json:"consolidate_varios"`

	CommissionEmpresaSoles     string `json:"commission_empresa_soles"`
	CommissionEmpresaDolares   string `json:"commission_empresa_dolares"`
	CommissionProveedorSoles   string `json:"commission_proveedor_soles"`
	CommissionProveedorDolares string `json:"commission_proveedor_dolares"`

	GeneratedAt time.Time `json:"generated_at"`
}
