package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/icerikfikri/blog-backend/internal/config"
	"github.com/icerikfikri/blog-backend/internal/domain"
	"github.com/icerikfikri/blog-backend/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSite = config.SiteConfig{
	BaseURL:          "https://icerikfikri.com/",
	DefaultAuthor:    "icerikfikri",
	PlaceholderImage: domain.PlaceholderImage,
	SitemapTTL:       3600,
}

func newSitemapSvc(repo *mockBlogRepo, c cache.Service) *sitemapService {
	svc := NewSitemapService(repo, c, testSite).(*sitemapService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func activeBlogs() []*domain.Blog {
	return []*domain.Blog{
		{Slug: "taze", SeoTitle: "Taze", ImageURL: "https://cdn/taze.png", UpdatedAt: fixedNow.Add(-2 * 24 * time.Hour)},
		{Slug: "eski", SeoTitle: "Eski", ImageURL: domain.PlaceholderImage, UpdatedAt: fixedNow.Add(-400 * 24 * time.Hour)},
	}
}

func TestGenerate_BuildsScoredFeed(t *testing.T) {
	repo := new(mockBlogRepo)
	svc := newSitemapSvc(repo, nil)

	repo.On("ListActive", mock.Anything).Return(activeBlogs(), nil)

	doc, err := svc.Generate(context.Background())
	require.NoError(t, err)
	s := string(doc)

	assert.Equal(t, 3, strings.Count(s, "<url>"))
	assert.Less(t, strings.Index(s, "<loc>https://icerikfikri.com/</loc>"), strings.Index(s, "<loc>https://icerikfikri.com/taze</loc>"))
	assert.Less(t, strings.Index(s, "/taze</loc>"), strings.Index(s, "/eski</loc>"))
	assert.Contains(t, s, "<priority>0.9</priority>")
	assert.Contains(t, s, "<priority>0.4</priority>")
	assert.Contains(t, s, "<changefreq>yearly</changefreq>")
	assert.Contains(t, s, "<image:loc>https://cdn/taze.png</image:loc>")
	assert.Equal(t, 1, strings.Count(s, "<image:image>"), "placeholder image must be dropped")
}

func TestGenerate_EmptyStillHasRoot(t *testing.T) {
	repo := new(mockBlogRepo)
	svc := newSitemapSvc(repo, nil)

	repo.On("ListActive", mock.Anything).Return([]*domain.Blog{}, nil)

	doc, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(doc), "<url>"))
	assert.Contains(t, string(doc), "<priority>1.0</priority>")
}

func TestGenerate_CachesAndServesFromCache(t *testing.T) {
	repo := new(mockBlogRepo)
	c, mr := newTestCache(t)
	svc := newSitemapSvc(repo, c)

	repo.On("ListActive", mock.Anything).Return(activeBlogs(), nil).Once()

	first, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.True(t, mr.Exists(cache.KeySitemap))
	assert.Equal(t, time.Hour, mr.TTL(cache.KeySitemap))

	second, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "ListActive", 1)
}

func TestGenerate_CacheDownFallsBackToBuild(t *testing.T) {
	captureLogs(t)
	repo := new(mockBlogRepo)
	c, mr := newTestCache(t)
	svc := newSitemapSvc(repo, c)
	mr.Close()

	repo.On("ListActive", mock.Anything).Return(activeBlogs(), nil)

	doc, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(doc), "/taze</loc>")
}

func TestGenerate_RepoError(t *testing.T) {
	repo := new(mockBlogRepo)
	svc := newSitemapSvc(repo, nil)

	repo.On("ListActive", mock.Anything).Return(nil, errors.New("db down"))

	doc, err := svc.Generate(context.Background())
	assert.Error(t, err)
	assert.Nil(t, doc)
}
