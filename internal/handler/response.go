package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"anexos/internal/domain"
	"anexos/internal/service"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response. Details carries the
// field-keyed validation messages when the error is a validation failure.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondValidationError sends a 422 with the field-keyed error map.
func RespondValidationError(c *gin.Context, details interface{}) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    "STEP_VALIDATION_FAILED",
			Message: "the current step has validation errors",
			Details: details,
		},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid access password"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "wizard session not found or expired"
	case errors.Is(err, domain.ErrUnknownFlow):
		return http.StatusBadRequest, "UNKNOWN_FLOW", "flow must be pagos-masivos or recaudacion"
	case errors.Is(err, domain.ErrUnknownStep):
		return http.StatusBadRequest, "UNKNOWN_STEP", "step id is not part of this wizard"
	case errors.Is(err, domain.ErrStepNotVisited):
		return http.StatusBadRequest, "STEP_NOT_VISITED", "cannot jump past the furthest visited step"
	case errors.Is(err, domain.ErrFlowMismatch):
		return http.StatusBadRequest, "FLOW_MISMATCH", "operation does not apply to this wizard flow"
	case errors.Is(err, domain.ErrInvalidFormData):
		return http.StatusBadRequest, "INVALID_FORM_DATA", "form data payload is not valid for this flow"
	case errors.Is(err, domain.ErrNotAtReview):
		return http.StatusConflict, "NOT_AT_REVIEW", "submit is only allowed from the review step"
	case errors.Is(err, domain.ErrNotSubmitted):
		return http.StatusConflict, "NOT_SUBMITTED", "session has not been submitted yet"
	case errors.Is(err, domain.ErrSessionLimit):
		return http.StatusServiceUnavailable, "SESSION_LIMIT", "session capacity reached; retry later"
	case errors.Is(err, domain.ErrDocumentGeneration):
		return http.StatusInternalServerError, "DOCUMENT_GENERATION_FAILED", "document generation failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Submit validation failures carry their per-step error maps through as a
// 422 instead of a mapped code.
func HandleError(c *gin.Context, err error) {
	var sve *service.SubmitValidationError
	if errors.As(err, &sve) {
		RespondValidationError(c, sve.Steps)
		return
	}

	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
