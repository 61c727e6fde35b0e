package handler

import (
	"net/http"

	"assistente/internal/model"
	"assistente/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles the direct criteria search surface
type SearchHandler struct {
	engine *service.Engine
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(engine *service.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

// Search handles POST /api/v1/buscar
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	results := h.engine.Search(req.Criteria())
	c.JSON(http.StatusOK, results)
}
