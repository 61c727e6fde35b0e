package handler

import (
	"net/http"

	"assistente/internal/model"
	"assistente/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles client feedback about listings
type FeedbackHandler struct {
	engine *service.Engine
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(engine *service.Engine) *FeedbackHandler {
	return &FeedbackHandler{engine: engine}
}

// Submit handles POST /api/v1/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sessionID := h.engine.RegisterFeedback(req.SessionID, req.Code, req.Comment)
	c.JSON(http.StatusOK, gin.H{"success": true, "session_id": sessionID})
}
