package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/icerikfikri/blog-backend/internal/common"
)

// path prefixes whose responses carry session or draft data
var privatePrefixes = []string{
	"/api/v1/admin",
	"/api/v1/accounts",
}

// SecurityHeaders sets response headers for a JSON API that also serves
// robots.txt, the sitemap and legacy redirects. Nothing it returns is meant
// to be framed or to run scripts.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if isPrivatePath(c.Request.URL.Path) {
			c.Header("Cache-Control", "no-store")
		}

		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

func isPrivatePath(path string) bool {
	for _, p := range privatePrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// markup and schemes that have no business in a slug, an id or a query value
var urlPatterns = []string{
	"<",
	">",
	"javascript:",
	"data:",
	"vbscript:",
}

// InputSanitizer rejects markup in route params (slug, id) and query values.
// Those values end up in redirects, cache keys and log lines. Request bodies
// are not inspected: block content is HTML written by signed-in editors and
// is stored as-is.
func InputSanitizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, p := range c.Params {
			if unsafeURLValue(p.Value) {
				rejectInput(c, p.Key)
				return
			}
		}
		for key, values := range c.Request.URL.Query() {
			for _, v := range values {
				if unsafeURLValue(v) {
					rejectInput(c, key)
					return
				}
			}
		}
		c.Next()
	}
}

func unsafeURLValue(v string) bool {
	lower := strings.ToLower(v)
	for _, pattern := range urlPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	for _, r := range v {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

func rejectInput(c *gin.Context, field string) {
	RequestLog(c).Warn().Str("field", field).Str("path", c.Request.URL.Path).Msg("markup in url rejected")
	common.ErrorResponse(c, http.StatusBadRequest, "Invalid characters in "+field, nil)
	c.Abort()
}
