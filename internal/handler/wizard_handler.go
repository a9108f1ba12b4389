package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anexos/internal/domain"
	"anexos/internal/service"
)

// WizardHandler handles session lifecycle and step transitions.
type WizardHandler struct {
	sessions service.SessionService
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(sessions service.SessionService) *WizardHandler {
	return &WizardHandler{sessions: sessions}
}

type createSessionInput struct {
	Flow domain.Flow `json:"flow" binding:"required"`
}

type jumpInput struct {
	StepID string `json:"step_id" binding:"required"`
}

// Create handles POST /api/v1/sessions
func (h *WizardHandler) Create(c *gin.Context) {
	var input createSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	state, err := h.sessions.Create(input.Flow)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, state)
}

// Get handles GET /api/v1/sessions/:id
func (h *WizardHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	state, err := h.sessions.Get(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// UpdateData handles PUT /api/v1/sessions/:id/data
func (h *WizardHandler) UpdateData(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var input service.UpdateDataInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	state, err := h.sessions.UpdateData(id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// Next handles POST /api/v1/sessions/:id/next
func (h *WizardHandler) Next(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	state, v, err := h.sessions.Next(id)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !v.CanProceed {
		RespondValidationError(c, v.Errors)
		return
	}

	RespondOK(c, state)
}

// Back handles POST /api/v1/sessions/:id/back
func (h *WizardHandler) Back(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	state, err := h.sessions.Back(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// Jump handles POST /api/v1/sessions/:id/jump
func (h *WizardHandler) Jump(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var input jumpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	state, err := h.sessions.Jump(id, input.StepID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// Submit handles POST /api/v1/sessions/:id/submit
func (h *WizardHandler) Submit(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	state, err := h.sessions.Submit(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// sessionID parses the :id path parameter, writing the error response on
// failure.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_SESSION_ID", "session id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
