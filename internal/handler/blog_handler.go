package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/icerikfikri/blog-backend/internal/common"
	"github.com/icerikfikri/blog-backend/internal/domain"
	"github.com/icerikfikri/blog-backend/internal/middleware"
	"github.com/icerikfikri/blog-backend/internal/service"
	"github.com/icerikfikri/blog-backend/pkg/ginutil"
)

// BlogHandler handles blog metadata and public reads
type BlogHandler struct {
	service service.BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(service service.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// Home godoc
// @Summary      Home page
// @Description  Two newest posts (top), the next ten and the category list
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.HomeResponse}
// @Router       /home [get]
func (h *BlogHandler) Home(c *gin.Context) {
	home, err := h.service.Home(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load home page")
		return
	}
	common.SuccessResponse(c, home, nil)
}

// Detail godoc
// @Summary      Blog detail by slug
// @Tags         blogs
// @Produce      json
// @Param        slug  path  string  true  "blog slug"
// @Success      200  {object}  common.APIResponse{data=domain.BlogResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /blogs/{slug} [get]
func (h *BlogHandler) Detail(c *gin.Context) {
	blog, err := h.service.Detail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to load blog")
		return
	}
	common.SuccessResponse(c, blog, nil)
}

// List godoc
// @Summary      Admin blog list
// @Tags         admin
// @Produce      json
// @Security     CookieAuth
// @Param        page   query  int  false  "page"   default(1)
// @Param        limit  query  int  false  "limit"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.BlogResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	blogs, meta, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err, "Failed to list blogs")
		return
	}
	common.SuccessResponse(c, blogs, meta)
}

// SaveOrUpdate godoc
// @Summary      Create a blog or update its title and description
// @Description  Creates when id is empty (slug from the title), otherwise updates title and description
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request  body  domain.SaveBlogRequest  true  "blog metadata"
// @Success      200  {object}  common.APIResponse{data=domain.BlogResponse}
// @Success      201  {object}  common.APIResponse{data=domain.BlogResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /admin/blogs [post]
func (h *BlogHandler) SaveOrUpdate(c *gin.Context) {
	var req domain.SaveBlogRequest
	if !bindJSON(c, &req) {
		return
	}

	blog, created, err := h.service.SaveOrUpdate(c.Request.Context(), &req, middleware.GetNickname(c))
	if err != nil {
		respondError(c, err, "Failed to save blog")
		return
	}

	if created {
		common.CreatedResponse(c, blog)
		return
	}
	c.JSON(http.StatusOK, common.APIResponse{Success: true, Data: blog})
}
