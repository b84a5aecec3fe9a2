package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// IndexHandler serves the text-entry page
type IndexHandler struct {
	authKey string
}

// NewIndexHandler creates a page handler. The page sends authKey with every
// classification request, so anyone who can load it can classify.
func NewIndexHandler(authKey string) *IndexHandler {
	return &IndexHandler{authKey: authKey}
}

// Index handles GET /
func (h *IndexHandler) Index(c *gin.Context) {
	c.Render(http.StatusOK, render.HTML{
		Template: indexTemplate,
		Name:     "index.html",
		Data:     gin.H{"AuthKey": h.authKey},
	})
}
