package handler

import (
	"net/http"
	"strings"

	"assistente/internal/catalog"

	"github.com/gin-gonic/gin"
)

// ImageHandler redirects image requests to their upstream URLs
type ImageHandler struct {
	catalog *catalog.Catalog
}

// NewImageHandler creates a new image handler
func NewImageHandler(cat *catalog.Catalog) *ImageHandler {
	return &ImageHandler{catalog: cat}
}

// Redirect handles GET /imagem/*path. Absolute URLs pass through; relative
// paths are resolved against the listing site before redirecting.
func (h *ImageHandler) Redirect(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	c.Redirect(http.StatusTemporaryRedirect, h.catalog.Absolutize(path))
}
