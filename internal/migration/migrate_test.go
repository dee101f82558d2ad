package migration

import (
	"testing"
	"time"

	"github.com/icerikfikri/blog-backend/internal/domain"
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
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestRun_SeedsCategoriesOnce(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, Run(db))
	require.NoError(t, Run(db))

	var cats []domain.Category
	require.NoError(t, db.Order("name").Find(&cats).Error)
	require.Len(t, cats, 3)
	assert.Equal(t, "dil-ogrenme", cats[0].Slug)
}

func TestRecompileHTML(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, Run(db))

	updatedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := []domain.Blog{
		{ID: "stale", Slug: "stale", Version: 4, UpdatedAt: updatedAt,
			Content:     `{"Items":[{"Id":1,"Type":"h2","Content":"Başlık"}]}`,
			HTMLContent: "<h2>eski</h2>"},
		{ID: "fresh", Slug: "fresh", Version: 1, UpdatedAt: updatedAt,
			Content:     `{"Items":[{"Id":1,"Type":"paragraph","Content":"x"}]}`,
			HTMLContent: "<p>x</p>"},
		{ID: "broken", Slug: "broken", Version: 1, UpdatedAt: updatedAt,
			Content:     "{not json",
			HTMLContent: "<p>keep</p>"},
	}
	require.NoError(t, db.Create(&rows).Error)

	updated, skipped, err := RecompileHTML(db)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, 1, skipped)

	var got domain.Blog
	require.NoError(t, db.First(&got, "id = ?", "stale").Error)
	assert.Equal(t, "<h2>Başlık</h2>", got.HTMLContent)
	assert.Equal(t, uint(4), got.Version)
	assert.True(t, got.UpdatedAt.Equal(updatedAt), "updated_at must not move")

	// fresh struct: gorm adds a non-zero primary key of the destination to the query
	var broken domain.Blog
	require.NoError(t, db.First(&broken, "id = ?", "broken").Error)
	assert.Equal(t, "<p>keep</p>", broken.HTMLContent)

	var fresh domain.Blog
	require.NoError(t, db.First(&fresh, "id = ?", "fresh").Error)
	assert.Equal(t, "<p>x</p>", fresh.HTMLContent)
}
