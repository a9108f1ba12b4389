package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anexos/internal/service"
)

// AuthHandler handles the shared-password access gate.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Access handles POST /api/v1/auth/access
func (h *AuthHandler) Access(c *gin.Context) {
	var input service.AccessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.authService.Access(input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
