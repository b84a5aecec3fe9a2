package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/repository"
)

const healthCheckTimeout = 5 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db           *gorm.DB
	redis        *redis.Client
	cache        repository.ResultCache
	taxonomyMode string
}

// NewHealthHandler creates a new health handler. db, redis and cache may be nil.
func NewHealthHandler(db *gorm.DB, redis *redis.Client, cache repository.ResultCache, taxonomyMode string) *HealthHandler {
	return &HealthHandler{
		db:           db,
		redis:        redis,
		cache:        cache,
		taxonomyMode: taxonomyMode,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	if err := h.pingDatabase(ctx); err != nil {
		components["database"] = "error: " + err.Error()
		healthy = false
	} else if h.db != nil {
		components["database"] = "ok"
	} else {
		components["database"] = "not configured"
	}

	if err := h.pingRedis(ctx); err != nil {
		components["redis"] = "error: " + err.Error()
		healthy = false
	} else if h.redis != nil {
		components["redis"] = "ok"
	} else {
		components["redis"] = "not configured"
	}

	if h.cache == nil {
		components["cache"] = "not configured"
	} else if n := h.cache.Len(ctx); n < 0 {
		// size unknown for shared backends
		components["cache"] = "ok"
	} else {
		components["cache"] = "ok (" + strconv.Itoa(n) + " entries)"
	}

	if h.taxonomyMode != "" {
		components["taxonomy"] = h.taxonomyMode
	} else {
		components["taxonomy"] = "not loaded"
		healthy = false
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if h.taxonomyMode == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "taxonomy not loaded"})
		return
	}
	if err := h.pingDatabase(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "database unreachable"})
		return
	}
	if err := h.pingRedis(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "redis unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return nil
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (h *HealthHandler) pingRedis(ctx context.Context) error {
	if h.redis == nil {
		return nil
	}
	return h.redis.Ping(ctx).Err()
}
