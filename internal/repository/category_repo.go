package repository

import (
	"context"

	"github.com/icerikfikri/blog-backend/internal/domain"
	"gorm.io/gorm"
)

// CategoryRepository category data access interface
type CategoryRepository interface {
	ListTop(ctx context.Context, limit int) ([]*domain.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// ListTop returns categories with the most posts first
func (r *categoryRepository) ListTop(ctx context.Context, limit int) ([]*domain.Category, error) {
	var categories []*domain.Category
	err := r.db.WithContext(ctx).
		Order("count DESC").
		Order("name ASC").
		Limit(limit).
		Find(&categories).Error
	return categories, err
}
