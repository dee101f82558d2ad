package repository

import (
	"context"
	"errors"

	"github.com/icerikfikri/blog-backend/internal/common"
	"github.com/icerikfikri/blog-backend/internal/domain"
	"gorm.io/gorm"
)

// BlogRepository blog data access interface
type BlogRepository interface {
	// Read operations
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	ListAll(ctx context.Context, page, limit int) ([]*domain.Blog, int64, error)
	ListActive(ctx context.Context) ([]*domain.Blog, error)
	LatestActive(ctx context.Context, limit int) ([]*domain.Blog, error)

	// Write operations
	Create(ctx context.Context, blog *domain.Blog) error
	UpdateMeta(ctx context.Context, id, seoTitle, seoDescription string) error
	SaveContent(ctx context.Context, blog *domain.Blog) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// FindByID finds a blog by id. Missing rows return common.ErrBlogNotFound.
func (r *blogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	var blog domain.Blog
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// FindBySlug finds an active blog by slug
func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	var blog domain.Blog
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// ExistsBySlug checks whether any blog, active or not, uses the slug
func (r *blogRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Blog{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// ListAll returns every blog, newest first (admin list)
func (r *blogRepository) ListAll(ctx context.Context, page, limit int) ([]*domain.Blog, int64, error) {
	var blogs []*domain.Blog
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Blog{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Omit("content").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&blogs).Error
	return blogs, total, err
}

// ListActive returns active blogs without their bodies, newest first (sitemap)
func (r *blogRepository) ListActive(ctx context.Context) ([]*domain.Blog, error) {
	var blogs []*domain.Blog
	err := r.db.WithContext(ctx).
		Select("id", "seo_title", "image_url", "slug", "updated_at", "created_at").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

// LatestActive returns the newest active blogs (home page)
func (r *blogRepository) LatestActive(ctx context.Context, limit int) ([]*domain.Blog, error) {
	var blogs []*domain.Blog
	err := r.db.WithContext(ctx).
		Omit("content", "html_content").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

// Create inserts a blog
func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

// UpdateMeta updates title and description
func (r *blogRepository) UpdateMeta(ctx context.Context, id, seoTitle, seoDescription string) error {
	result := r.db.WithContext(ctx).Model(&domain.Blog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"seo_title":       seoTitle,
			"seo_description": seoDescription,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrBlogNotFound
	}
	return nil
}

// SaveContent writes content, html_content and updated_at in one statement,
// guarded by the version the blog was read at. On success blog.Version is
// bumped; when another writer got there first common.ErrConcurrentEdit is
// returned and nothing is written.
func (r *blogRepository) SaveContent(ctx context.Context, blog *domain.Blog) error {
	result := r.db.WithContext(ctx).Model(&domain.Blog{}).
		Where("id = ? AND version = ?", blog.ID, blog.Version).
		Updates(map[string]interface{}{
			"content":      blog.Content,
			"html_content": blog.HTMLContent,
			"updated_at":   blog.UpdatedAt,
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrConcurrentEdit
	}
	blog.Version++
	return nil
}
