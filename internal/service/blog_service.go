package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/icerikfikri/blog-backend/internal/common"
	"github.com/icerikfikri/blog-backend/internal/config"
	"github.com/icerikfikri/blog-backend/internal/content"
	"github.com/icerikfikri/blog-backend/internal/domain"
	"github.com/icerikfikri/blog-backend/internal/repository"
	"github.com/icerikfikri/blog-backend/pkg/cache"
	"github.com/icerikfikri/blog-backend/pkg/logger"
	"github.com/icerikfikri/blog-backend/pkg/slug"
)

// Home page layout
const (
	homeTopCount      = 2
	homeLatestCount   = 10
	homeCategoryCount = 10
)

// BlogService blog metadata, public reads and the admin list
type BlogService interface {
	SaveOrUpdate(ctx context.Context, req *domain.SaveBlogRequest, author string) (*domain.BlogResponse, bool, error)
	Detail(ctx context.Context, slug string) (*domain.BlogResponse, error)
	List(ctx context.Context, page, limit int) ([]*domain.BlogResponse, *common.Meta, error)
	Home(ctx context.Context) (*domain.HomeResponse, error)
}

type blogService struct {
	repo         repository.BlogRepository
	categoryRepo repository.CategoryRepository
	cache        cache.Service
	site         config.SiteConfig
	now          func() time.Time
}

// NewBlogService creates a new BlogService. cacheSvc may be nil.
func NewBlogService(repo repository.BlogRepository, categoryRepo repository.CategoryRepository, cacheSvc cache.Service, site config.SiteConfig) BlogService {
	return &blogService{
		repo:         repo,
		categoryRepo: categoryRepo,
		cache:        cacheSvc,
		site:         site,
		now:          time.Now,
	}
}

// SaveOrUpdate creates a blog when req.ID is empty, otherwise updates its
// title and description. The bool result reports whether a blog was created.
func (s *blogService) SaveOrUpdate(ctx context.Context, req *domain.SaveBlogRequest, author string) (*domain.BlogResponse, bool, error) {
	if req.ID == "" {
		blog, err := s.create(ctx, req, author)
		if err != nil {
			return nil, false, err
		}
		return blog.ToResponse(), true, nil
	}

	if err := s.repo.UpdateMeta(ctx, req.ID, req.SeoTitle, req.SeoDescription); err != nil {
		return nil, false, err
	}

	blog, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		invalidatePublished(ctx, s.cache)
		return nil, false, err
	}
	invalidatePublished(ctx, s.cache, blog.Slug)
	return blog.ToResponse(), false, nil
}

func (s *blogService) create(ctx context.Context, req *domain.SaveBlogRequest, author string) (*domain.Blog, error) {
	blogSlug := slug.Make(req.SeoTitle)
	if blogSlug == "" {
		return nil, common.ErrInvalidInput
	}

	taken, err := s.repo.ExistsBySlug(ctx, blogSlug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, common.ErrSlugTaken
	}

	if author == "" {
		author = s.site.DefaultAuthor
	}

	now := s.now()
	blog := &domain.Blog{
		ID:             uuid.NewString(),
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
		ImageURL:       s.site.PlaceholderImage,
		Slug:           blogSlug,
		Author:         author,
		IsActive:       true,
		Version:        1,
		CreatedAt:      now,
	}
	if err := blog.ApplyBlocks(content.New(), now); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, err
	}
	invalidatePublished(ctx, s.cache)

	logger.GetLogger().Info().Str("blog_id", blog.ID).Str("slug", blog.Slug).Msg("blog created")
	return blog, nil
}

// Detail returns an active blog by slug, read through the cache
func (s *blogService) Detail(ctx context.Context, slug string) (*domain.BlogResponse, error) {
	key := cache.KeyBlog(slug)

	var cached domain.BlogResponse
	if s.readCache(ctx, key, &cached) {
		return &cached, nil
	}

	blog, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	resp := blog.ToResponse()
	s.writeCache(ctx, key, resp)
	return resp, nil
}

// List returns all blogs for the admin screen, newest first
func (s *blogService) List(ctx context.Context, page, limit int) ([]*domain.BlogResponse, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	blogs, total, err := s.repo.ListAll(ctx, page, limit)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.BlogResponse, len(blogs))
	for i, b := range blogs {
		responses[i] = b.ToSummary()
	}
	return responses, common.NewMeta(page, limit, total), nil
}

// Home returns the two newest posts as "top", the next ten, and categories
func (s *blogService) Home(ctx context.Context) (*domain.HomeResponse, error) {
	var cached domain.HomeResponse
	if s.readCache(ctx, cache.KeyHome, &cached) {
		return &cached, nil
	}

	blogs, err := s.repo.LatestActive(ctx, homeTopCount+homeLatestCount)
	if err != nil {
		return nil, err
	}

	resp := &domain.HomeResponse{
		Top:        []*domain.BlogResponse{},
		Latest:     []*domain.BlogResponse{},
		Categories: []*domain.CategoryResponse{},
	}
	for i, b := range blogs {
		if i < homeTopCount {
			resp.Top = append(resp.Top, b.ToSummary())
		} else {
			resp.Latest = append(resp.Latest, b.ToSummary())
		}
	}

	categories, err := s.categoryRepo.ListTop(ctx, homeCategoryCount)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, c.ToResponse())
	}

	s.writeCache(ctx, cache.KeyHome, resp)
	return resp, nil
}

// readCache reports a hit. Misses and cache errors fall through to the database.
func (s *blogService) readCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil || !s.cache.IsAvailable() {
		return false
	}
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.GetLogger().Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	return false
}

func (s *blogService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil || !s.cache.IsAvailable() {
		return
	}
	if err := s.cache.Set(ctx, key, value, cache.TTLDefault); err != nil {
		logger.GetLogger().Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// invalidatePublished drops every cached rendering a blog change can affect:
// the sitemap, the home page and the posts' detail views.
func invalidatePublished(ctx context.Context, c cache.Service, slugs ...string) {
	if c == nil || !c.IsAvailable() {
		return
	}
	if err := c.InvalidatePublished(ctx, slugs...); err != nil {
		logger.GetLogger().Warn().Err(err).Strs("slugs", slugs).Msg("cache invalidation failed")
	}
}
