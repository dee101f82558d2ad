package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/icerikfikri/blog-backend/internal/common"
	"github.com/icerikfikri/blog-backend/internal/service"
)

// disallowed paths advertised in robots.txt
var robotsDisallow = []string{
	"/account/",
	"/admin/",
	"/api/v1/admin/",
	"/api/v1/accounts/",
}

// SitemapHandler serves the sitemap, robots.txt and the legacy blog redirect
type SitemapHandler struct {
	service service.SitemapService
	baseURL string
}

// NewSitemapHandler creates a new SitemapHandler
func NewSitemapHandler(service service.SitemapService, baseURL string) *SitemapHandler {
	return &SitemapHandler{service: service, baseURL: baseURL}
}

// Sitemap godoc
// @Summary      sitemap.xml
// @Tags         seo
// @Produce      xml
// @Success      200  {string}  string  "sitemap document"
// @Router       /sitemap.xml [get]
func (h *SitemapHandler) Sitemap(c *gin.Context) {
	doc, err := h.service.Generate(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build sitemap")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", doc)
}

// Robots godoc
// @Summary      robots.txt
// @Tags         seo
// @Produce      plain
// @Success      200  {string}  string  "robots.txt"
// @Router       /robots.txt [get]
func (h *SitemapHandler) Robots(c *gin.Context) {
	body := "User-agent: *\n"
	for _, p := range robotsDisallow {
		body += "Disallow: " + p + "\n"
	}
	body += fmt.Sprintf("\nSitemap: %ssitemap.xml\n", h.baseURL)

	c.Header("Cache-Control", "public, max-age=86400")
	c.String(http.StatusOK, body)
}

// LegacyBlogRedirect moves /blog/:slug to the canonical post URL
func (h *SitemapHandler) LegacyBlogRedirect(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		common.ErrorResponse(c, http.StatusNotFound, "Blog not found", nil)
		return
	}
	c.Redirect(http.StatusMovedPermanently, h.baseURL+slug)
}
