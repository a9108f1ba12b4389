package wizard

import (
	"anexos/internal/domain"
	"anexos/internal/validator/masivos"
)

// MasivosSteps returns the Pagos Masivos step list. The additional-info
// step only appears once Proveedores or Pagos Varios is selected, and its
// validator warns without blocking.
func MasivosSteps() []Step[domain.MasivosForm] {
	return []Step[domain.MasivosForm]{
		{ID: "company-identity", Title: "Empresa", Required: true, Validate: masivos.ValidateCompanyIdentity},
		{ID: "contact-info", Title: "Contacto", Required: true, Validate: masivos.ValidateContactInfo},
		{ID: "services", Title: "Servicios", Required: true, Validate: masivos.ValidateServices},
		{ID: "currency", Title: "Moneda", Required: true, Validate: masivos.ValidateCurrency},
		{ID: "account", Title: "Cuenta", Required: true, Validate: masivos.ValidateAccount},
		{ID: "controls", Title: "Controles", Required: true, Validate: masivos.ValidateControls},
		{
			ID:    "additional",
			Title: "Adicional",
			ShouldShow: func(f *domain.MasivosForm) bool {
				return f.Services.Proveedores || f.Services.PagosVarios
			},
			Validate: masivos.ValidateAdditional,
		},
		{ID: StepReview, Title: "Revisar", Required: true},
	}
}

// NewMasivosMachine starts a fresh Pagos Masivos wizard.
func NewMasivosMachine() *Machine[domain.MasivosForm] {
	return NewMachine(MasivosSteps(), domain.NewMasivosForm())
}
