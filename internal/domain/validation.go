package domain

// FieldValidation is the result of checking a single raw input value.
// Error is non-empty exactly when IsValid is false; Suggestion is a
// confirmation hint shown next to valid input and is never set on failure
// for empty input.
type FieldValidation struct {
	IsValid    bool   `json:"is_valid"`
	Error      string `json:"error,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ValidField returns a passing result with an optional suggestion.
func ValidField(suggestion string) FieldValidation {
	return FieldValidation{IsValid: true, Suggestion: suggestion}
}

// InvalidField returns a failing result with a user-facing message.
func InvalidField(msg string) FieldValidation {
	return FieldValidation{IsValid: false, Error: msg}
}

// StepValidation aggregates field and business-rule checks for one wizard
// step. Errors is keyed by field so the UI can highlight the offending
// input; CanProceed gates the Next transition.
type StepValidation struct {
	IsValid    bool              `json:"is_valid"`
	Errors     map[string]string `json:"errors"`
	CanProceed bool              `json:"can_proceed"`
}

// StepResult builds a StepValidation from an error map, treating an empty
// map as a pass. Steps that warn without blocking pass canProceed=true
// explicitly via StepResultAdvisory.
func StepResult(errs map[string]string) StepValidation {
	if errs == nil {
		errs = map[string]string{}
	}
	ok := len(errs) == 0
	return StepValidation{IsValid: ok, Errors: errs, CanProceed: ok}
}

// StepResultAdvisory builds a StepValidation whose errors are advisory:
// they are reported but never block advancement.
func StepResultAdvisory(errs map[string]string) StepValidation {
	return StepValidation{IsValid: len(errs) == 0, Errors: errs, CanProceed: true}
}
