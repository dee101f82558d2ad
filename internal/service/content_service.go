package service

import (
	"context"
	"time"

	"github.com/icerikfikri/blog-backend/internal/content"
	"github.com/icerikfikri/blog-backend/internal/domain"
	"github.com/icerikfikri/blog-backend/internal/metrics"
	"github.com/icerikfikri/blog-backend/internal/repository"
	"github.com/icerikfikri/blog-backend/pkg/cache"
	"github.com/icerikfikri/blog-backend/pkg/logger"
)

// ContentService block editing of a blog body
type ContentService interface {
	UpsertBlock(ctx context.Context, blogID string, req *domain.UpsertBlockRequest) (*domain.BlockMutationResponse, error)
	ReorderBlocks(ctx context.Context, blogID string, items []domain.SortedItem) (*domain.BlockMutationResponse, error)
	Blocks(ctx context.Context, blogID string) (*domain.BlocksResponse, error)
}

type contentService struct {
	repo  repository.BlogRepository
	cache cache.Service
	now   func() time.Time
}

// NewContentService creates a new ContentService. cacheSvc may be nil.
func NewContentService(repo repository.BlogRepository, cacheSvc cache.Service) ContentService {
	return &contentService{repo: repo, cache: cacheSvc, now: time.Now}
}

// UpsertBlock appends a block, or replaces the block with req.ContentID
func (s *contentService) UpsertBlock(ctx context.Context, blogID string, req *domain.UpsertBlockRequest) (*domain.BlockMutationResponse, error) {
	blog, err := s.repo.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	c := s.loadBlocks(blog)
	warnUnrenderable(blog.ID, content.Type(req.Type))
	id, replaced := c.Upsert(req.ContentID, content.Type(req.Type), req.Content)

	if err := s.save(ctx, blog, c, metrics.OpUpsert); err != nil {
		return nil, err
	}

	resp := mutationResponse(blog, c)
	resp.BlockID = id
	resp.Replaced = replaced
	return resp, nil
}

// ReorderBlocks replaces the body with items, numbered 1..N in order
func (s *contentService) ReorderBlocks(ctx context.Context, blogID string, items []domain.SortedItem) (*domain.BlockMutationResponse, error) {
	blog, err := s.repo.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	// previous body is discarded; decoding it only reports corruption
	s.loadBlocks(blog)

	rebuilt := make([]content.Item, len(items))
	for i, it := range items {
		rebuilt[i] = content.Item{Content: it.Text, Type: content.Type(it.Type)}
		warnUnrenderable(blog.ID, rebuilt[i].Type)
	}
	c := content.Rebuild(rebuilt)

	if err := s.save(ctx, blog, c, metrics.OpReorder); err != nil {
		return nil, err
	}
	return mutationResponse(blog, c), nil
}

// Blocks returns the decoded body for the editor. Nothing is written.
func (s *contentService) Blocks(ctx context.Context, blogID string) (*domain.BlocksResponse, error) {
	blog, err := s.repo.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	c := s.loadBlocks(blog)
	return &domain.BlocksResponse{
		BlogID:  blog.ID,
		Items:   c.Blocks(),
		HTML:    blog.HTMLContent,
		Version: blog.Version,
	}, nil
}

// loadBlocks decodes the stored body. A body that does not decode is
// logged and replaced by an empty collection.
func (s *contentService) loadBlocks(blog *domain.Blog) *content.Collection {
	c, err := content.Parse(blog.Content)
	if err != nil {
		logger.GetLogger().Warn().
			Err(err).
			Str("blog_id", blog.ID).
			Int("content_len", len(blog.Content)).
			Msg("stored blocks corrupt, starting from empty body")
		metrics.ParseRecovery()
		return content.New()
	}
	return c
}

func (s *contentService) save(ctx context.Context, blog *domain.Blog, c *content.Collection, op string) error {
	if err := blog.ApplyBlocks(c, s.now()); err != nil {
		return err
	}
	if err := s.repo.SaveContent(ctx, blog); err != nil {
		return err
	}
	metrics.BlockMutation(op)

	invalidatePublished(ctx, s.cache, blog.Slug)
	return nil
}

// warnUnrenderable flags a block type the compiler skips. The block is
// still stored so the editor round-trips it.
func warnUnrenderable(blogID string, t content.Type) {
	if t.Known() {
		return
	}
	logger.GetLogger().Warn().
		Str("blog_id", blogID).
		Str("type", string(t)).
		Msg("block type has no renderer, stored but not rendered")
}

func mutationResponse(blog *domain.Blog, c *content.Collection) *domain.BlockMutationResponse {
	return &domain.BlockMutationResponse{
		BlogID:    blog.ID,
		HTML:      blog.HTMLContent,
		Count:     c.Len(),
		Version:   blog.Version,
		UpdatedAt: blog.UpdatedAt,
	}
}
