package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anexos/internal/service"
)

// DocumentHandler serves the rendered targets of a submitted session.
type DocumentHandler struct {
	sessions service.SessionService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(sessions service.SessionService) *DocumentHandler {
	return &DocumentHandler{sessions: sessions}
}

// Preview handles GET /api/v1/sessions/:id/document
func (h *DocumentHandler) Preview(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	doc, err := h.sessions.Document(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// PDF handles GET /api/v1/sessions/:id/document/pdf
func (h *DocumentHandler) PDF(c *gin.Context) {
	h.download(c, h.sessions.RenderPDF)
}

// Print handles GET /api/v1/sessions/:id/document/print
func (h *DocumentHandler) Print(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	dl, err := h.sessions.RenderPrint(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	// The print view opens in a browser tab rather than downloading.
	c.Data(http.StatusOK, dl.ContentType, dl.Content)
}

// XLSX handles GET /api/v1/sessions/:id/document/xlsx
func (h *DocumentHandler) XLSX(c *gin.Context) {
	h.download(c, h.sessions.RenderXLSX)
}

func (h *DocumentHandler) download(c *gin.Context, render func(id uuid.UUID) (*service.Download, error)) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	dl, err := render(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.Filename))
	c.Data(http.StatusOK, dl.ContentType, dl.Content)
}
