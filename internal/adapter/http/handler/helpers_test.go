package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func paginationContext(rawQuery string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/classifications?"+rawQuery, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedLimit  int
		expectedOffset int
	}{
		{"defaults", "", DefaultLimit, DefaultOffset},
		{"explicit values", "limit=50&offset=10", 50, 10},
		{"limit at max", "limit=100", MaxLimit, DefaultOffset},
		{"limit above max is clamped", "limit=200", MaxLimit, DefaultOffset},
		{"zero limit", "limit=0", DefaultLimit, DefaultOffset},
		{"negative limit", "limit=-5", DefaultLimit, DefaultOffset},
		{"negative offset", "offset=-5", DefaultLimit, DefaultOffset},
		{"non-numeric limit", "limit=ten", DefaultLimit, DefaultOffset},
		{"non-numeric offset", "offset=two", DefaultLimit, DefaultOffset},
		{"large offset kept", "offset=5000", DefaultLimit, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pagination := ParsePagination(paginationContext(tt.query))

			assert.Equal(t, tt.expectedLimit, pagination.Limit)
			assert.Equal(t, tt.expectedOffset, pagination.Offset)
		})
	}
}

func TestExtractUUIDParam(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := uuid.New()
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		got, err := ExtractUUIDParam(c, "id")

		assert.NoError(t, err)
		assert.Equal(t, id, got)
	})

	for _, value := range []string{"not-a-uuid", "", "550e8400-e29b-41d4-a716"} {
		t.Run("invalid "+value, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: value}}

			got, err := ExtractUUIDParam(c, "id")

			assert.ErrorContains(t, err, "invalid id")
			assert.Equal(t, uuid.Nil, got)
		})
	}
}
