package service

import (
	"context"
	"errors"
	"time"

	"github.com/icerikfikri/blog-backend/internal/config"
	"github.com/icerikfikri/blog-backend/internal/metrics"
	"github.com/icerikfikri/blog-backend/internal/repository"
	"github.com/icerikfikri/blog-backend/internal/sitemap"
	"github.com/icerikfikri/blog-backend/pkg/cache"
	"github.com/icerikfikri/blog-backend/pkg/logger"
)

// SitemapService builds the sitemap of active blogs
type SitemapService interface {
	Generate(ctx context.Context) ([]byte, error)
}

type sitemapService struct {
	repo  repository.BlogRepository
	cache cache.Service
	site  config.SiteConfig
	ttl   time.Duration
	now   func() time.Time
}

// NewSitemapService creates a new SitemapService. cacheSvc may be nil.
func NewSitemapService(repo repository.BlogRepository, cacheSvc cache.Service, site config.SiteConfig) SitemapService {
	return &sitemapService{
		repo:  repo,
		cache: cacheSvc,
		site:  site,
		ttl:   time.Duration(site.SitemapTTL) * time.Second,
		now:   time.Now,
	}
}

// Generate returns the cached document, or builds and caches a fresh one.
// Cache errors are logged and never fail the request.
func (s *sitemapService) Generate(ctx context.Context) ([]byte, error) {
	useCache := s.cache != nil && s.cache.IsAvailable()

	if useCache {
		doc, err := s.cache.GetSitemap(ctx)
		if err == nil {
			metrics.SitemapServed(metrics.SourceCache)
			return doc, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			logger.GetLogger().Warn().Err(err).Msg("sitemap cache read failed")
		}
	}

	blogs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entries := make([]sitemap.Entry, 0, len(blogs))
	for _, b := range blogs {
		entries = append(entries, sitemap.NewEntry(
			b.Slug,
			b.UpdatedAt,
			now,
			sitemap.Image{URL: b.ImageURL, Title: b.SeoTitle},
			s.site.PlaceholderImage,
		))
	}

	doc, err := sitemap.BuildFeed(s.site.BaseURL, entries)
	if err != nil {
		return nil, err
	}

	if useCache {
		if err := s.cache.SetSitemap(ctx, doc, s.ttl); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("sitemap cache write failed")
		}
	}

	metrics.SitemapServed(metrics.SourceBuild)
	return doc, nil
}
