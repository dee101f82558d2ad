package service

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/icerikfikri/blog-backend/internal/domain"
	"github.com/icerikfikri/blog-backend/pkg/cache"
	"github.com/icerikfikri/blog-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// --- Mock BlogRepository ---

type mockBlogRepo struct {
	mock.Mock
}

func (m *mockBlogRepo) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *mockBlogRepo) FindBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *mockBlogRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *mockBlogRepo) ListAll(ctx context.Context, page, limit int) ([]*domain.Blog, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Blog), args.Get(1).(int64), args.Error(2)
}

func (m *mockBlogRepo) ListActive(ctx context.Context) ([]*domain.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Blog), args.Error(1)
}

func (m *mockBlogRepo) LatestActive(ctx context.Context, limit int) ([]*domain.Blog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Blog), args.Error(1)
}

func (m *mockBlogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *mockBlogRepo) UpdateMeta(ctx context.Context, id, seoTitle, seoDescription string) error {
	return m.Called(ctx, id, seoTitle, seoDescription).Error(0)
}

func (m *mockBlogRepo) SaveContent(ctx context.Context, blog *domain.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

// --- Mock AccountRepository ---

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *mockAccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

// --- Mock CategoryRepository ---

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) ListTop(ctx context.Context, limit int) ([]*domain.Category, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

// --- helpers ---

func newTestCache(t *testing.T) (cache.Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewService(client), mr
}

// captureLogs redirects the global logger for the duration of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })
	return buf
}

// bumpVersion mimics a successful versioned save
func bumpVersion(args mock.Arguments) {
	args.Get(1).(*domain.Blog).Version++
}
