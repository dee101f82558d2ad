package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/icerikfikri/blog-backend/pkg/cache"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports database and cache reachability
type HealthHandler struct {
	db    *gorm.DB
	cache cache.Service
}

// NewHealthHandler creates a new HealthHandler. cache may be nil when Redis is disabled.
func NewHealthHandler(db *gorm.DB, cache cache.Service) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	status := "ok"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		status = "degraded"
	}

	// redis is optional; a dead one degrades caching only
	redisStatus := "disabled"
	if h.cache != nil {
		redisStatus = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			redisStatus = "unreachable"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"service": "blog-backend",
		"redis":   redisStatus,
		"time":    time.Now().Unix(),
	})
}
