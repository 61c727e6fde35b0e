package handler

import (
	"net/http"
	"strings"

	"assistente/internal/model"
	"assistente/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles conversational HTTP requests
type ChatHandler struct {
	engine *service.Engine
}

// NewChatHandler creates a new chat handler
func NewChatHandler(engine *service.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// Ask handles POST /api/v1/perguntar
func (h *ChatHandler) Ask(c *gin.Context) {
	var req model.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A pergunta não pode estar vazia"})
		return
	}

	answer := h.engine.Respond(c.Request.Context(), req.Question, req.SessionID)
	c.JSON(http.StatusOK, answer)
}

// ClearSession handles POST /api/v1/sessao/limpar
func (h *ChatHandler) ClearSession(c *gin.Context) {
	var req model.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	newID := h.engine.ClearSession(req.SessionID)
	c.JSON(http.StatusOK, gin.H{"session_id": newID})
}
