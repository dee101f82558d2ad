package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/icerikfikri/blog-backend/internal/common"
	"github.com/icerikfikri/blog-backend/internal/domain"
	"github.com/icerikfikri/blog-backend/internal/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// :memory: is per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migration.Run(db))
	return db
}

func newBlog(slug string, active bool, createdAt time.Time) *domain.Blog {
	return &domain.Blog{
		ID:        uuid.NewString(),
		SeoTitle:  slug,
		Slug:      slug,
		ImageURL:  domain.PlaceholderImage,
		Content:   `{"Items":[]}`,
		Author:    "icerikfikri",
		IsActive:  active,
		Version:   1,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestBlogRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(setupDB(t))

	b := newBlog("ilk-yazi", true, time.Now())
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "ilk-yazi", got.Slug)
	assert.Equal(t, uint(1), got.Version)

	_, err = repo.FindByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, common.ErrBlogNotFound)
}

func TestBlogRepository_FindBySlugSkipsInactive(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(setupDB(t))

	require.NoError(t, repo.Create(ctx, newBlog("taslak", false, time.Now())))

	_, err := repo.FindBySlug(ctx, "taslak")
	assert.ErrorIs(t, err, common.ErrBlogNotFound)

	exists, err := repo.ExistsBySlug(ctx, "taslak")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBlogRepository_SaveContentBumpsVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(setupDB(t))

	b := newBlog("yazi", true, time.Now().Add(-time.Hour))
	require.NoError(t, repo.Create(ctx, b))

	now := time.Now().UTC().Truncate(time.Second)
	b.Content = `{"Items":[{"Id":1,"Type":"paragraph","Content":"x"}]}`
	b.HTMLContent = "<p>x</p>"
	b.UpdatedAt = now

	require.NoError(t, repo.SaveContent(ctx, b))
	assert.Equal(t, uint(2), b.Version)

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", got.HTMLContent)
	assert.Equal(t, b.Content, got.Content)
	assert.Equal(t, uint(2), got.Version)
	assert.True(t, got.UpdatedAt.Equal(now), "updated_at %v != %v", got.UpdatedAt, now)
}

func TestBlogRepository_SaveContentStaleVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(setupDB(t))

	b := newBlog("yazi", true, time.Now())
	require.NoError(t, repo.Create(ctx, b))

	// two editors read version 1
	first, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)

	first.HTMLContent = "<p>first</p>"
	require.NoError(t, repo.SaveContent(ctx, first))

	second.HTMLContent = "<p>second</p>"
	err = repo.SaveContent(ctx, second)
	assert.ErrorIs(t, err, common.ErrConcurrentEdit)
	assert.Equal(t, uint(1), second.Version)

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "<p>first</p>", got.HTMLContent)
}

func TestBlogRepository_Listing(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(setupDB(t))

	base := time.Now().Add(-72 * time.Hour)
	require.NoError(t, repo.Create(ctx, newBlog("eski", true, base)))
	require.NoError(t, repo.Create(ctx, newBlog("gizli", false, base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newBlog("yeni", true, base.Add(2*time.Hour))))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "yeni", active[0].Slug)
	assert.Equal(t, "eski", active[1].Slug)

	latest, err := repo.LatestActive(ctx, 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, "yeni", latest[0].Slug)

	all, total, err := repo.ListAll(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 2)
	assert.Equal(t, "yeni", all[0].Slug)
	assert.Equal(t, "gizli", all[1].Slug)
}

func TestBlogRepository_UpdateMeta(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(setupDB(t))

	b := newBlog("yazi", true, time.Now())
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.UpdateMeta(ctx, b.ID, "Yeni Başlık", "açıklama"))
	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yeni Başlık", got.SeoTitle)
	assert.Equal(t, "açıklama", got.SeoDescription)
	assert.Equal(t, "yazi", got.Slug, "slug is fixed at creation")

	err = repo.UpdateMeta(ctx, uuid.NewString(), "x", "y")
	assert.ErrorIs(t, err, common.ErrBlogNotFound)
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(setupDB(t))

	acc := &domain.Account{ID: uuid.NewString(), Email: "yazar@example.com", Password: "hash", Nickname: "Yazar"}
	require.NoError(t, repo.Create(ctx, acc))

	exists, err := repo.ExistsByEmail(ctx, "yazar@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.FindByEmail(ctx, "yazar@example.com")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)

	got, err = repo.FindByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yazar", got.Nickname)

	_, err = repo.FindByEmail(ctx, "yok@example.com")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestCategoryRepository_ListTop(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewCategoryRepository(db)

	require.NoError(t, db.Create(&domain.Category{ID: uuid.NewString(), Name: "Popüler", Slug: "populer", Count: 42}).Error)

	cats, err := repo.ListTop(ctx, 2)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "populer", cats[0].Slug)
}
