package domain

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("wizard session not found")
	ErrUnknownFlow        = errors.New("unknown wizard flow")
	ErrUnknownStep        = errors.New("unknown wizard step")
	ErrStepNotVisited     = errors.New("step has not been visited yet")
	ErrFlowMismatch       = errors.New("operation does not apply to this wizard flow")
	ErrInvalidFormData    = errors.New("form data payload is not valid for this flow")
	ErrSessionLimit       = errors.New("session capacity reached")
	ErrNotAtReview        = errors.New("submit is only allowed from the review step")
	ErrNotSubmitted       = errors.New("session has not been submitted yet")
	ErrDocumentGeneration = errors.New("document generation failed")
)
