// Package validator holds the pure field-level checks shared by both
// enrollment wizards. Validators never return Go errors: every outcome is a
// domain.FieldValidation value, and empty input is reported as invalid with
// a user-facing message.
package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"anexos/internal/domain"
)

const (
	// MaxDays is the ceiling for cheque / payment-order collection days.
	MaxDays = 120

	// NombreComercialMax and NombreServicioMax cap the printed service
	// identifiers so they fit the fixed boxes on the annex.
	NombreComercialMax = 13
	NombreServicioMax  = 13

	// CodigoDeudorMax and NumCaracteresDeudorMax cap the debtor identifier
	// configuration fields.
	CodigoDeudorMax        = 13
	NumCaracteresDeudorMax = 14
)

// percentTolerance is the absolute tolerance for the 100% account split.
var percentTolerance = decimal.NewFromFloat(0.01)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
	deudorForbidden = regexp.MustCompile(`[/,]`)
)

// DigitsOnly strips every non-digit character.
func DigitsOnly(value string) string {
	return nonDigitPattern.ReplaceAllString(value, "")
}

// TruncateAt hard-caps a value at max characters, mirroring the input-side
// truncation the wizard applies as the user types. The cap counts runes, not
// bytes, so accented input is never cut mid-sequence.
func TruncateAt(value string, max int) string {
	runes := []rune(value)
	if len(runes) > max {
		return string(runes[:max])
	}
	return value
}

// StripDeudorCode removes the characters '/' and ',' which the debtor
// identifier code may not contain. Stripping happens on write; the validator
// still rejects them in case a raw value reaches it.
func StripDeudorCode(value string) string {
	return deudorForbidden.ReplaceAllString(value, "")
}

// IsNoLimit reports whether an amount value is the "no ceiling" sentinel
// ("SL" or "Sin límites", case-insensitive, accent optional).
func IsNoLimit(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == "sl" || v == "sin límites" || v == "sin limites"
}

// ValidateTaxID checks a RUC (11 digits) or DNI (8 digits) after stripping
// non-digits. Below 8 digits the message counts up to a DNI; between 8 and
// 11, up to a RUC.
func ValidateTaxID(value string) domain.FieldValidation {
	if strings.TrimSpace(value) == "" {
		return domain.InvalidField("RUC/DNI es requerido")
	}

	digits := DigitsOnly(value)
	switch {
	case len(digits) == 8:
		return domain.ValidField("DNI válido ✓")
	case len(digits) == 11:
		return domain.ValidField("RUC válido ✓")
	case len(digits) < 8:
		return domain.InvalidField(fmt.Sprintf("Faltan %d dígitos para DNI", 8-len(digits)))
	case len(digits) < 11:
		return domain.InvalidField(fmt.Sprintf("Faltan %d dígitos para RUC", 11-len(digits)))
	default:
		return domain.InvalidField("RUC debe tener 11 dígitos o DNI 8 dígitos")
	}
}

// IsEmail reports whether a value has the local@domain.tld shape. Steps that
// carry their own wording use this instead of ValidateEmail.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ValidateEmail checks the address shape (non-empty, local@domain.tld).
func ValidateEmail(value string) domain.FieldValidation {
	if strings.TrimSpace(value) == "" {
		return domain.InvalidField("Email es requerido")
	}
	if !emailPattern.MatchString(value) {
		return domain.InvalidField("Email no válido")
	}
	return domain.ValidField("Email válido ✓")
}

// ValidatePhone requires at least 7 digits after stripping separators.
func ValidatePhone(value string) domain.FieldValidation {
	if strings.TrimSpace(value) == "" {
		return domain.InvalidField("Teléfono es requerido")
	}
	if len(DigitsOnly(value)) < 7 {
		return domain.InvalidField("Teléfono debe tener al menos 7 dígitos")
	}
	return domain.ValidField("Teléfono válido ✓")
}

// ValidatePhoneBounded requires between 7 and 15 digits; used where the
// Recaudación annex enforces the upper bound.
func ValidatePhoneBounded(value string) domain.FieldValidation {
	digits := DigitsOnly(value)
	if digits == "" {
		return domain.InvalidField("Teléfono es requerido")
	}
	if len(digits) < 7 || len(digits) > 15 {
		return domain.InvalidField("Teléfono debe tener entre 7 y 15 dígitos")
	}
	return domain.ValidField("Teléfono válido ✓")
}

// ValidateMaxLength requires a non-empty value of at most max characters.
// Characters are runes: a 7-letter accented name is 7, whatever it encodes to.
func ValidateMaxLength(value string, max int, fieldName string) domain.FieldValidation {
	if strings.TrimSpace(value) == "" {
		return domain.InvalidField(fieldName + " es requerido")
	}
	if utf8.RuneCountInString(value) > max {
		return domain.InvalidField(fmt.Sprintf("Máximo %d caracteres", max))
	}
	return domain.ValidField("")
}

// ValidateMaxDays accepts an empty value (the ceiling default applies) or an
// integer between 1 and MaxDays.
func ValidateMaxDays(value string) domain.FieldValidation {
	if strings.TrimSpace(value) == "" {
		return domain.ValidField(fmt.Sprintf("Se usará el máximo (%d días)", MaxDays))
	}
	days, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return domain.InvalidField("Debe ser un número")
	}
	if days < 1 || days > MaxDays {
		return domain.InvalidField(fmt.Sprintf("Debe estar entre 1 y %d días", MaxDays))
	}
	return domain.ValidField(fmt.Sprintf("%d días ✓", days))
}

// ValidateAmounts checks a (max batch, max payment) control pair. The
// "Sin límites"/"SL" sentinel on either side bypasses numeric checks; with
// numeric values both must be positive and the payment ceiling strictly
// below the batch ceiling.
func ValidateAmounts(batch, payment string) domain.FieldValidation {
	if strings.TrimSpace(batch) == "" || strings.TrimSpace(payment) == "" {
		return domain.InvalidField("Ambos montos son requeridos")
	}
	if IsNoLimit(batch) || IsNoLimit(payment) {
		return domain.ValidField("✓ Montos válidos")
	}

	batchAmt, errB := decimal.NewFromString(strings.TrimSpace(batch))
	paymentAmt, errP := decimal.NewFromString(strings.TrimSpace(payment))
	if errB != nil || errP != nil {
		return domain.InvalidField("Los montos deben ser números válidos")
	}
	if !batchAmt.IsPositive() || !paymentAmt.IsPositive() {
		return domain.InvalidField("Los montos deben ser mayores a 0")
	}
	if paymentAmt.GreaterThanOrEqual(batchAmt) {
		return domain.InvalidField("El monto por pago debe ser menor al monto por lote")
	}
	return domain.ValidField("✓ Montos válidos")
}

// ValidatePercentageSum checks that a non-empty account list splits exactly
// 100% (within 0.01 absolute). Unparseable percentages count as zero, so the
// sum message always reflects what the user would add up by hand.
func ValidatePercentageSum(entries []domain.AccountEntry) domain.FieldValidation {
	if len(entries) == 0 {
		return domain.InvalidField("Debe agregar al menos una cuenta")
	}

	total := decimal.Zero
	for _, e := range entries {
		if p, err := decimal.NewFromString(strings.TrimSpace(e.Percentage)); err == nil {
			total = total.Add(p)
		}
	}

	if total.Sub(decimal.NewFromInt(100)).Abs().GreaterThan(percentTolerance) {
		return domain.InvalidField(fmt.Sprintf("Los porcentajes deben sumar 100%% (actual: %s%%)", total.StringFixed(2)))
	}
	return domain.ValidField("")
}

// PositivePercentage reports whether a single entry percentage parses to a
// value greater than zero.
func PositivePercentage(value string) bool {
	p, err := decimal.NewFromString(strings.TrimSpace(value))
	return err == nil && p.IsPositive()
}
