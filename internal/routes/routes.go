package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/icerikfikri/blog-backend/internal/handler"
	"github.com/icerikfikri/blog-backend/internal/middleware"
	"github.com/icerikfikri/blog-backend/pkg/jwt"
	"github.com/redis/go-redis/v9"
)

// Handlers groups the HTTP handlers wired by Setup
type Handlers struct {
	Blog    *handler.BlogHandler
	Content *handler.ContentHandler
	Sitemap *handler.SitemapHandler
	Account *handler.AccountHandler
}

// Setup configures all site and API routes. redisClient may be nil, which
// turns the login rate limit off.
func Setup(router *gin.Engine, h Handlers, jwtManager *jwt.Manager, redisClient *redis.Client) {
	session := middleware.RequireSession(jwtManager)

	// SEO
	router.GET("/robots.txt", h.Sitemap.Robots)
	router.GET("/sitemap.xml", h.Sitemap.Sitemap)
	router.GET("/sitemap/getsitemap", h.Sitemap.Sitemap) // path used by the previous site
	router.GET("/blog/:slug", h.Sitemap.LegacyBlogRedirect)

	api := router.Group("/api/v1")

	// Public
	api.GET("/home", h.Blog.Home)
	api.GET("/blogs/:slug", h.Blog.Detail)

	// Accounts
	accounts := api.Group("/accounts")
	authLimit := middleware.RateLimit(redisClient, middleware.AuthRateLimitConfig())
	accounts.POST("/signup", authLimit, h.Account.SignUp)
	accounts.POST("/login", authLimit, h.Account.Login)
	accounts.POST("/logout", h.Account.Logout)
	accounts.GET("/me", session, h.Account.Me)

	// Editor (session required)
	admin := api.Group("/admin", session)
	admin.GET("/blogs", h.Blog.List)
	admin.POST("/blogs", h.Blog.SaveOrUpdate)
	admin.GET("/blogs/:id/blocks", h.Content.Blocks)
	admin.POST("/blogs/:id/blocks", h.Content.UpsertBlock)
	admin.PUT("/blogs/:id/blocks/order", h.Content.ReorderBlocks)
}
