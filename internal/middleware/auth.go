package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/icerikfikri/blog-backend/internal/common"
	"github.com/icerikfikri/blog-backend/pkg/jwt"
)

// SessionCookie name of the httpOnly cookie carrying the session token
const SessionCookie = "auth_token"

// RequireSession rejects requests without a valid session token.
// The token is read from the session cookie, then from a Bearer header.
func RequireSession(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract token
		tokenString := extractToken(c)
		if tokenString == "" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
			c.Abort()
			return
		}

		// 2. Verify token
		claims, err := jwtManager.VerifyToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, http.StatusUnauthorized, "Session expired", err)
			} else {
				common.ErrorResponse(c, http.StatusUnauthorized, "Invalid session", err)
			}
			c.Abort()
			return
		}

		// 3. Store user info in context
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("nickname", claims.Nickname)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// GetUserID extracts user ID from context
func GetUserID(c *gin.Context) string {
	return getString(c, "userID")
}

// GetNickname extracts nickname from context
func GetNickname(c *gin.Context) string {
	return getString(c, "nickname")
}

func getString(c *gin.Context, key string) string {
	v, exists := c.Get(key)
	if !exists {
		return ""
	}
	if str, ok := v.(string); ok {
		return str
	}
	return ""
}
