package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/icerikfikri/blog-backend/pkg/logger"
	"github.com/rs/zerolog"
)

const (
	requestIDKey  = "request_id"
	requestLogKey = "request_logger"
)

// health checks and metric scrapes are not logged
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestLogger tags each request with an id, stores a logger carrying that
// id for handlers (see RequestLog) and writes one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.New().String()[:8]
		}
		reqLog := logger.WithRequestID(requestID)
		c.Set(requestIDKey, requestID)
		c.Set(requestLogKey, &reqLog)
		c.Header("X-Request-ID", requestID)

		c.Next()

		if quietPaths[c.Request.URL.Path] {
			return
		}

		status := c.Writer.Status()
		event := reqLog.Info()
		if status >= 500 {
			event = reqLog.Error()
		} else if status >= 400 {
			event = reqLog.Warn()
		}

		if blogID := c.Param("id"); blogID != "" {
			event = event.Str("blog_id", blogID)
		}
		if slug := c.Param("slug"); slug != "" {
			event = event.Str("slug", slug)
		}
		if userID := GetUserID(c); userID != "" {
			event = event.Str("user_id", userID)
		}

		event.
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// RequestLog returns the logger of the current request, or the global one
// outside RequestLogger.
func RequestLog(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(requestLogKey); ok {
		if l, ok := v.(*zerolog.Logger); ok {
			return l
		}
	}
	return logger.GetLogger()
}
