package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/icerikfikri/blog-backend/internal/common"
	"github.com/icerikfikri/blog-backend/internal/middleware"
)

var requestValidator = validator.New()

// bindJSON binds and validates a request body; on failure the 400 response
// has been written and false is returned
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	if err := requestValidator.Struct(req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Validation failed", err)
		return false
	}
	return true
}

// respondError maps service errors to HTTP statuses
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, common.ErrBlogNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Blog not found", err)
	case errors.Is(err, common.ErrConcurrentEdit):
		common.ErrorResponse(c, http.StatusConflict, "Blog was changed by someone else, reload and retry", err)
	case errors.Is(err, common.ErrSlugTaken):
		common.ErrorResponse(c, http.StatusConflict, "A blog with this title already exists", err)
	case errors.Is(err, common.ErrUserAlreadyExists):
		common.ErrorResponse(c, http.StatusConflict, "Email already registered", err)
	case errors.Is(err, common.ErrInvalidCredentials):
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password", nil)
	case errors.Is(err, common.ErrUserNotFound):
		common.ErrorResponse(c, http.StatusUnauthorized, "Account not found", nil)
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid input", err)
	default:
		middleware.RequestLog(c).Error().Err(err).Str("path", c.FullPath()).Msg(fallback)
		common.ErrorResponse(c, http.StatusInternalServerError, fallback, nil)
	}
}
