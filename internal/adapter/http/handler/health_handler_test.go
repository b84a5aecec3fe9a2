package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/text-haptics/api-service/internal/infrastructure/cache"
)

func getHealth(t *testing.T, h *HealthHandler, path string) (*httptest.ResponseRecorder, HealthStatus) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)

	req, _ := http.NewRequest("GET", path, http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var status HealthStatus
	if path == "/health" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	}
	return w, status
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("healthy with in-process cache only", func(t *testing.T) {
		c := cache.NewMemory(10, time.Minute)
		w, status := getHealth(t, NewHealthHandler(nil, nil, c, "hierarchical"), "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "not configured", status.Components["database"])
		assert.Equal(t, "not configured", status.Components["redis"])
		assert.Equal(t, "ok (0 entries)", status.Components["cache"])
		assert.Equal(t, "hierarchical", status.Components["taxonomy"])
	})

	t.Run("redis reachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()

		w, status := getHealth(t, NewHealthHandler(nil, client, cache.NewRedis(client, time.Minute), "flat"), "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", status.Components["redis"])
		assert.Equal(t, "ok", status.Components["cache"])
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
		defer client.Close()
		mr.Close()

		w, status := getHealth(t, NewHealthHandler(nil, client, nil, "flat"), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unhealthy", status.Status)
		assert.Contains(t, status.Components["redis"], "error:")
	})

	t.Run("unhealthy without taxonomy", func(t *testing.T) {
		w, status := getHealth(t, NewHealthHandler(nil, nil, nil, ""), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "not loaded", status.Components["taxonomy"])
	})
}

func TestHealthHandler_Ready(t *testing.T) {
	t.Run("ready without optional dependencies", func(t *testing.T) {
		w, _ := getHealth(t, NewHealthHandler(nil, nil, nil, "hierarchical"), "/ready")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ready")
	})

	t.Run("not ready when redis is down", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
		defer client.Close()
		mr.Close()

		w, _ := getHealth(t, NewHealthHandler(nil, client, nil, "hierarchical"), "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "redis unreachable")
	})
}
