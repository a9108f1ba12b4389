package wizard

import (
	"anexos/internal/domain"
	"anexos/internal/validator/recaudacion"
)

// RecaudacionSteps returns the Recaudación step list. All eleven steps are
// always visible.
func RecaudacionSteps() []Step[domain.RecaudacionForm] {
	return []Step[domain.RecaudacionForm]{
		{ID: "company-info", Title: "Información de la Empresa", Required: true, Validate: recaudacion.ValidateCompanyInfo},
		{ID: "service-config", Title: "Configuración del Servicio", Required: true, Validate: recaudacion.ValidateServiceConfig},
		{ID: "general-characteristics", Title: "Características Generales", Required: true, Validate: recaudacion.ValidateGeneralCharacteristics},
		{ID: "specific-characteristics", Title: "Características Específicas", Required: true, Validate: recaudacion.ValidateSpecificCharacteristics},
		{ID: "payment-types", Title: "Tipos de Pago", Required: true, Validate: recaudacion.ValidatePaymentTypes},
		{ID: "deudor-config", Title: "Configuración del Deudor", Required: true, Validate: recaudacion.ValidateDeudorConfig},
		{ID: "commission-structure", Title: "Estructura de Comisiones", Required: true, Validate: recaudacion.ValidateCommissionStructure},
		{ID: "account-definitions", Title: "Definición de Cuentas", Required: true, Validate: recaudacion.ValidateAccountDefinitions},
		{ID: "contact-info", Title: "Información de Contacto", Required: true, Validate: recaudacion.ValidateContactInfo},
		{ID: "optional-data", Title: "Datos Opcionales", Validate: recaudacion.ValidateOptionalData},
		{ID: StepReview, Title: "Revisión Final", Required: true},
	}
}

// NewRecaudacionMachine starts a fresh Recaudación wizard.
func NewRecaudacionMachine() *Machine[domain.RecaudacionForm] {
	return NewMachine(RecaudacionSteps(), domain.NewRecaudacionForm())
}
