package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/text-haptics/api-service/internal/usecase"
)

// ClassifyHandler handles classification HTTP requests
type ClassifyHandler struct {
	classifyUC usecase.ClassifyUsecase
}

// NewClassifyHandler creates a new classify handler
func NewClassifyHandler(classifyUC usecase.ClassifyUsecase) *ClassifyHandler {
	return &ClassifyHandler{classifyUC: classifyUC}
}

// Classify handles POST /classify.
// A successful result is written as a bare object, not wrapped in the envelope.
func (h *ClassifyHandler) Classify(c *gin.Context) {
	var input usecase.ClassifyInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Text == "" {
		HandleInvalidRequest(c, MessageNoText)
		return
	}

	result, err := h.classifyUC.Classify(c.Request.Context(), input.Text)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Taxonomy handles GET /api/v1/taxonomy
func (h *ClassifyHandler) Taxonomy(c *gin.Context) {
	respondSuccess(c, http.StatusOK, h.classifyUC.Taxonomy())
}

// ListClassifications handles GET /api/v1/classifications
func (h *ClassifyHandler) ListClassifications(c *gin.Context) {
	pagination := ParsePagination(c)

	output, err := h.classifyUC.List(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// GetClassification handles GET /api/v1/classifications/:id
func (h *ClassifyHandler) GetClassification(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "classification id")
		return
	}

	output, err := h.classifyUC.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}
