package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/icerikfikri/blog-backend/internal/common"
	"github.com/icerikfikri/blog-backend/internal/domain"
	"github.com/icerikfikri/blog-backend/internal/middleware"
	"github.com/icerikfikri/blog-backend/internal/service"
)

// AccountHandler handles sign-up, login and the session cookie
type AccountHandler struct {
	service      service.AccountService
	secureCookie bool
}

// NewAccountHandler creates a new AccountHandler. secureCookie marks the
// session cookie Secure (off for local http development).
func NewAccountHandler(service service.AccountService, secureCookie bool) *AccountHandler {
	return &AccountHandler{service: service, secureCookie: secureCookie}
}

// SignUp godoc
// @Summary      Create an editor account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request  body  domain.SignUpRequest  true  "account"
// @Success      201  {object}  common.APIResponse{data=domain.AccountResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /accounts/signup [post]
func (h *AccountHandler) SignUp(c *gin.Context) {
	var req domain.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.service.SignUp(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to sign up")
		return
	}
	common.CreatedResponse(c, account)
}

// Login godoc
// @Summary      Log in
// @Description  Sets the session token as an httpOnly cookie and returns it in the body
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request  body  domain.LoginRequest  true  "credentials"
// @Success      200  {object}  common.APIResponse{data=domain.LoginResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /accounts/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	h.setSessionCookie(c, resp.AccessToken, resp.ExpiresIn)
	common.SuccessResponse(c, resp, nil)
}

// Logout godoc
// @Summary      Log out
// @Tags         accounts
// @Success      200  {object}  common.APIResponse
// @Router       /accounts/logout [post]
func (h *AccountHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	common.SuccessResponse(c, gin.H{"message": "logged out"}, nil)
}

// Me godoc
// @Summary      Current account
// @Tags         accounts
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  common.APIResponse{data=domain.AccountResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /accounts/me [get]
func (h *AccountHandler) Me(c *gin.Context) {
	account, err := h.service.Me(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, "Failed to load account")
		return
	}
	common.SuccessResponse(c, account, nil)
}

func (h *AccountHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.secureCookie, true)
}
