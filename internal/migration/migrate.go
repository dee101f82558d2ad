package migration

import (
	"github.com/google/uuid"
	"github.com/icerikfikri/blog-backend/internal/content"
	"github.com/icerikfikri/blog-backend/internal/domain"
	"github.com/icerikfikri/blog-backend/pkg/logger"
	"github.com/icerikfikri/blog-backend/pkg/slug"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for the blog tables and seeds default categories if empty.
func Run(db *gorm.DB) error {
	// 1. AutoMigrate: create missing tables, add missing columns
	if err := db.AutoMigrate(&domain.Blog{}, &domain.Account{}, &domain.Category{}); err != nil {
		return err
	}

	// 2. Seed: only when categories is empty
	var count int64
	if err := db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return seedCategories(db)
	}

	return nil
}

func seedCategories(db *gorm.DB) error {
	names := []string{"Genel", "Dil Öğrenme", "Teknoloji"}

	categories := make([]domain.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, domain.Category{
			ID:       uuid.NewString(),
			Name:     name,
			Slug:     slug.Make(name),
			SeoTitle: name,
			ImageURL: domain.PlaceholderImage,
		})
	}
	return db.Create(&categories).Error
}

// RecompileHTML rebuilds html_content from the stored blocks of every blog.
// updated_at and version are left alone so sitemap freshness does not move.
// Rows whose body does not decode are skipped and counted.
func RecompileHTML(db *gorm.DB) (updated, skipped int, err error) {
	var blogs []domain.Blog
	if err := db.Select("id", "content", "html_content").Find(&blogs).Error; err != nil {
		return 0, 0, err
	}

	for i := range blogs {
		b := &blogs[i]
		c, perr := content.Parse(b.Content)
		if perr != nil {
			logger.GetLogger().Warn().Err(perr).Str("blog_id", b.ID).Msg("skip recompile: stored blocks do not decode")
			skipped++
			continue
		}

		html := content.Compile(c)
		if html == b.HTMLContent {
			continue
		}
		if err := db.Model(&domain.Blog{}).Where("id = ?", b.ID).
			UpdateColumn("html_content", html).Error; err != nil {
			return updated, skipped, err
		}
		updated++
	}
	return updated, skipped, nil
}
