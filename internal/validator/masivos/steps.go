// Package masivos validates the Pagos Masivos wizard step by step. Error
// maps are keyed by the form field names the client renders against.
package masivos

import (
	"fmt"
	"strings"

	"anexos/internal/domain"
	"anexos/internal/validator"
)

// ValidateCompanyIdentity checks the company name and RUC/DNI step.
func ValidateCompanyIdentity(f *domain.MasivosForm) domain.StepValidation {
	errs := map[string]string{}

	if strings.TrimSpace(f.CompanyName) == "" {
		errs["companyName"] = "Razón Social es requerida"
	}
	if v := validator.ValidateTaxID(f.TaxID); !v.IsValid {
		errs["ruc"] = v.Error
	}

	return domain.StepResult(errs)
}

// ValidateContactInfo checks the contact step. The second email is optional
// and never validated here.
func ValidateContactInfo(f *domain.MasivosForm) domain.StepValidation {
	errs := map[string]string{}

	if strings.TrimSpace(f.ContactName) == "" {
		errs["contactName"] = "Nombre de contacto es requerido"
	}
	if v := validator.ValidatePhone(f.ContactPhone); !v.IsValid {
		errs["contactPhone"] = v.Error
	}
	if v := validator.ValidateEmail(f.ContactEmail1); !v.IsValid {
		errs["contactEmail1"] = v.Error
	}

	return domain.StepResult(errs)
}

// ValidateServices requires at least one payment service.
func ValidateServices(f *domain.MasivosForm) domain.StepValidation {
	errs := map[string]string{}
	if !f.Services.Any() {
		errs["services"] = "Debe seleccionar al menos un servicio"
	}
	return domain.StepResult(errs)
}

// ValidateCurrency requires at least one currency.
func ValidateCurrency(f *domain.MasivosForm) domain.StepValidation {
	errs := map[string]string{}
	if !f.Currencies.Any() {
		errs["currency"] = "Debe seleccionar al menos una moneda"
	}
	return domain.StepResult(errs)
}

// ValidateAccount requires a complete charge account per selected currency.
func ValidateAccount(f *domain.MasivosForm) domain.StepValidation {
	errs := map[string]string{}

	if f.Currencies.Soles {
		if f.AccountSoles.Kind == "" {
			errs["accountSolesType"] = "Seleccione tipo de cuenta en Soles"
		}
		if strings.TrimSpace(f.AccountSoles.Number) == "" {
			errs["accountSolesNumber"] = "Ingrese número de cuenta en Soles"
		}
	}
	if f.Currencies.Dolares {
		if f.AccountDolares.Kind == "" {
			errs["accountDolaresType"] = "Seleccione tipo de cuenta en Dólares"
		}
		if strings.TrimSpace(f.AccountDolares.Number) == "" {
			errs["accountDolaresNumber"] = "Ingrese número de cuenta en Dólares"
		}
	}

	return domain.StepResult(errs)
}

// ValidateControls requires a valid amount pair for every selected
// (service, currency) combination. Missing pairs are keyed
// "<service>_<currency>"; present but inconsistent pairs add a
// "<service>_<currency>_amounts" entry.
func ValidateControls(f *domain.MasivosForm) domain.StepValidation {
	errs := map[string]string{}

	for _, svc := range domain.ServiceKinds {
		if !f.Services.Selected(svc) {
			continue
		}
		for _, cur := range domain.Currencies {
			if !f.Currencies.Selected(cur) {
				continue
			}
			key := fmt.Sprintf("%s_%s", svc, cur)
			c := f.Control(svc, cur)
			if strings.TrimSpace(c.MaxBatch) == "" || strings.TrimSpace(c.MaxPayment) == "" {
				errs[key] = fmt.Sprintf("Complete los controles para %s en %s", svc, currencyLabel(cur))
				continue
			}
			if v := validator.ValidateAmounts(c.MaxBatch, c.MaxPayment); !v.IsValid {
				errs[key+"_amounts"] = v.Error
			}
		}
	}

	return domain.StepResult(errs)
}

// ValidateAdditional checks the conditional extra block. Its findings are
// advisory: day limits outside range are reported but never block Next.
func ValidateAdditional(f *domain.MasivosForm) domain.StepValidation {
	errs := map[string]string{}

	if f.Services.Proveedores && f.Additional.MaxDaysProveedores != "" {
		if v := validator.ValidateMaxDays(f.Additional.MaxDaysProveedores); !v.IsValid {
			errs["maxDaysProviders"] = v.Error
		}
	}
	if f.Services.PagosVarios && f.Additional.MaxDaysVarios != "" {
		if v := validator.ValidateMaxDays(f.Additional.MaxDaysVarios); !v.IsValid {
			errs["maxDaysVarios"] = v.Error
		}
	}

	return domain.StepResultAdvisory(errs)
}

func currencyLabel(cur domain.Currency) string {
	if cur == domain.CurrencySoles {
		return "Soles"
	}
	return "Dólares"
}
