package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/service"
	"github.com/ressKim-io/text-haptics/api-service/internal/usecase"
)

// Messages shared with middleware and clients
const (
	MessageUnauthorized = "Unauthorized access"
	MessageNoText       = "No text provided"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// Upstream and unexpected failures carry the stringified cause.
func MapUsecaseError(err error) ErrorResponse {
	var upstreamErr *service.UpstreamError
	switch {
	case errors.Is(err, usecase.ErrEmptyText):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    MessageNoText,
		}
	case errors.Is(err, usecase.ErrClassificationNotFound):
		return ErrorResponse{
			StatusCode: http.StatusNotFound,
			Code:       "NOT_FOUND",
			Message:    "classification not found",
		}
	case errors.As(err, &upstreamErr):
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "UPSTREAM_ERROR",
			Message:    err.Error(),
		}
	case errors.Is(err, usecase.ErrTaxonomyInconsistent):
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "TAXONOMY_ERROR",
			Message:    err.Error(),
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    err.Error(),
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// HandleInvalidUUID handles an invalid UUID parameter error.
func HandleInvalidUUID(c *gin.Context, paramName string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid "+paramName)
}

// HandleInvalidRequest handles a generic invalid request error.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", message)
}
