// Package recaudacion validates the Recaudación wizard step by step.
package recaudacion

import (
	"fmt"
	"strings"

	"anexos/internal/domain"
	"anexos/internal/validator"
)

// ValidateCompanyInfo checks the company identification step.
func ValidateCompanyInfo(f *domain.RecaudacionForm) domain.StepValidation {
	errs := map[string]string{}

	if strings.TrimSpace(f.CodigoUnico) == "" {
		errs["codigoUnico"] = "Código único es requerido"
	}
	if strings.TrimSpace(f.PuntoServicio) == "" {
		errs["puntoServicio"] = "Punto de servicio es requerido"
	}
	if strings.TrimSpace(f.RazonSocial) == "" {
		errs["razonSocial"] = "Razón social es requerida"
	}
	if strings.TrimSpace(f.GiroEmpresa) == "" {
		errs["giroEmpresa"] = "Giro de empresa es requerido"
	}
	if v := validator.ValidateTaxID(f.TaxID); !v.IsValid {
		errs["ruc"] = v.Error
	}

	return domain.StepResult(errs)
}

// ValidateServiceConfig checks the service configuration step, including the
// 13-character caps on the printed names.
func ValidateServiceConfig(f *domain.RecaudacionForm) domain.StepValidation {
	errs := map[string]string{}

	if f.RequestKind == "" {
		errs["tipoServicio"] = "Tipo de servicio es requerido"
	}
	if v := validator.ValidateMaxLength(f.NombreComercial, validator.NombreComercialMax, "Nombre comercial"); !v.IsValid {
		errs["nombreComercial"] = v.Error
	}
	if strings.TrimSpace(f.NumeroServicio) == "" {
		errs["numeroServicio"] = "Número de servicio es requerido"
	}
	if v := validator.ValidateMaxLength(f.NombreServicio, validator.NombreServicioMax, "Nombre de servicio"); !v.IsValid {
		errs["nombreServicio"] = v.Error
	}

	return domain.StepResult(errs)
}

// ValidateGeneralCharacteristics checks file delivery, load schedule and
// collection hours.
func ValidateGeneralCharacteristics(f *domain.RecaudacionForm) domain.StepValidation {
	errs := map[string]string{}

	if f.FileDelivery == "" {
		errs["envioArchivo"] = "Método de envío es requerido"
	}
	if f.LoadIndicator == "" {
		errs["indicadorCarga"] = "Indicador de carga es requerido"
	}
	if strings.TrimSpace(f.HorarioRecaudacion) == "" {
		errs["horarioRecaudacion"] = "Horario de recaudación es requerido"
	}

	return domain.StepResult(errs)
}

// ValidateSpecificCharacteristics requires at least one currency, at least
// one collection channel and a deposit modality.
func ValidateSpecificCharacteristics(f *domain.RecaudacionForm) domain.StepValidation {
	errs := map[string]string{}

	if !f.MonedaSoles && !f.MonedaDolares {
		errs["moneda"] = "Debe seleccionar al menos una moneda"
	}

	hasCanal := f.CanalAppBanca || f.CanalAgenteLima || f.CanalAgenteProvincias ||
		f.CanalAgenteSupermercados || strings.TrimSpace(f.CanalOtros) != ""
	if !hasCanal {
		errs["canal"] = "Debe seleccionar al menos un canal de cobro"
	}

	if f.DepositKind == "" {
		errs["tipoAbono"] = "Tipo de abono es requerido"
	}

	return domain.StepResult(errs)
}

// ValidatePaymentTypes rejects the two inconsistent policy combinations.
// The cascade in domain.ApplyPaymentPolicyChange keeps normal flows out of
// these states, but the step check stands on its own.
func ValidatePaymentTypes(f *domain.RecaudacionForm) domain.StepValidation {
	errs := map[string]string{}

	if f.Policy.RequiresSequential && f.Policy.AcceptsPartial {
		errs["paymentLogic"] = "No se puede obligar pagos sucesivos y aceptar pagos parciales simultáneamente"
	}
	if !f.Policy.AcceptsOverdue && !f.Policy.RequiresSequential {
		errs["paymentLogic2"] = "Si no acepta pagos vencidos, debe obligar pagos sucesivos"
	}

	return domain.StepResult(errs)
}

// ValidateDeudorConfig checks the debtor identifier fields, including the
// forbidden '/' and ',' characters.
func ValidateDeudorConfig(f *domain.RecaudacionForm) domain.StepValidation {
	errs := map[string]string{}

	if v := validator.ValidateMaxLength(f.CodigoIdentificadorDeudor, validator.CodigoDeudorMax, "Código identificador"); !v.IsValid {
		errs["codigoIdentificadorDeudor"] = v.Error
	}
	if v := validator.ValidateMaxLength(f.NumeroCaracteresDeudor, validator.NumCaracteresDeudorMax, "Número de caracteres"); !v.IsValid {
		errs["numeroCaracteresDeudor"] = v.Error
	}
	if strings.ContainsAny(f.CodigoIdentificadorDeudor, "/,") {
		errs["codigoIdentificadorDeudor"] = `No debe contener caracteres "/" o ","`
	}

	return domain.StepResult(errs)
}

// ValidateCommissionStructure requires at least one of the four primary
// commission fields. The two "otros" fields alone do not satisfy the step.
func ValidateCommissionStructure(f *domain.RecaudacionForm) domain.StepValidation {
	errs := map[string]string{}

	hasAny := strings.TrimSpace(f.ComisionAgenteEmpresaSoles) != "" ||
		strings.TrimSpace(f.ComisionAgenteEmpresaDolares) != "" ||
		strings.TrimSpace(f.ComisionAgenteUsuarioLima) != "" ||
		strings.TrimSpace(f.ComisionElectronicosEmpresaSoles) != ""
	if !hasAny {
		errs["comisiones"] = "Debe ingresar al menos una comisión"
	}

	return domain.StepResult(errs)
}

// ValidateAccountDefinitions checks both account lists: each list must split
// exactly 100% and every entry needs a number and a positive percentage.
// Per-entry errors are keyed by list and index.
func ValidateAccountDefinitions(f *domain.RecaudacionForm) domain.StepValidation {
	errs := map[string]string{}

	if v := validator.ValidatePercentageSum(f.CuentasCobranzas); !v.IsValid {
		errs["cuentasCobranzas"] = v.Error
	}
	for i, cuenta := range f.CuentasCobranzas {
		if strings.TrimSpace(cuenta.Number) == "" {
			errs[fmt.Sprintf("cuentaCobranza%d", i)] = fmt.Sprintf("Cuenta %d: Número de cuenta requerido", i+1)
		}
		if !validator.PositivePercentage(cuenta.Percentage) {
			errs[fmt.Sprintf("porcentajeCobranza%d", i)] = fmt.Sprintf("Cuenta %d: Porcentaje inválido", i+1)
		}
	}

	if v := validator.ValidatePercentageSum(f.CuentasComisiones); !v.IsValid {
		errs["cuentasComisiones"] = v.Error
	}
	for i, cuenta := range f.CuentasComisiones {
		if strings.TrimSpace(cuenta.Number) == "" {
			errs[fmt.Sprintf("cuentaComision%d", i)] = fmt.Sprintf("Cuenta %d: Número de cuenta requerido", i+1)
		}
		if !validator.PositivePercentage(cuenta.Percentage) {
			errs[fmt.Sprintf("porcentajeComision%d", i)] = fmt.Sprintf("Cuenta %d: Porcentaje inválido", i+1)
		}
	}

	return domain.StepResult(errs)
}

// ValidateContactInfo checks the notification email lists and the contact
// person. The contact phone uses the bounded 7-15 digit rule.
func ValidateContactInfo(f *domain.RecaudacionForm) domain.StepValidation {
	errs := map[string]string{}

	if len(f.CorreosConsolidacion) == 0 {
		errs["correosConsolidacion"] = "Debe agregar al menos un correo para consolidación"
	}
	if len(f.CorreosConfirmacion) == 0 {
		errs["correosConfirmacion"] = "Debe agregar al menos un correo para confirmación"
	}
	if strings.TrimSpace(f.NombreContacto) == "" {
		errs["nombreContacto"] = "Nombre de contacto es requerido"
	}
	switch {
	case strings.TrimSpace(f.CorreoContacto) == "":
		errs["correoContacto"] = "Correo es requerido"
	case !validator.IsEmail(f.CorreoContacto):
		errs["correoContacto"] = "Formato de correo inválido"
	}
	if v := validator.ValidatePhoneBounded(f.TelefonoContacto); !v.IsValid {
		errs["telefonoContacto"] = v.Error
	}

	return domain.StepResult(errs)
}

// ValidateOptionalData always passes; the statistics block is optional.
func ValidateOptionalData(_ *domain.RecaudacionForm) domain.StepValidation {
	return domain.StepResult(nil)
}
