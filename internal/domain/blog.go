package domain

import (
	"time"

	"github.com/icerikfikri/blog-backend/internal/content"
)

// PlaceholderImage image_url value meaning "no image"
const PlaceholderImage = "/"

// Blog post with its block body and the compiled HTML cache (blogs table)
type Blog struct {
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
	ID             string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	SeoTitle       string    `gorm:"column:seo_title;size:255" json:"seo_title"`
	SeoDescription string    `gorm:"column:seo_description;type:text" json:"seo_description"`
	ImageURL       string    `gorm:"column:image_url;size:500" json:"image_url"`
	Content        string    `gorm:"column:content;type:longtext" json:"-"`
	HTMLContent    string    `gorm:"column:html_content;type:longtext" json:"html_content"`
	Slug           string    `gorm:"column:slug;size:255;uniqueIndex" json:"slug"`
	Author         string    `gorm:"column:author;size:100" json:"author"`
	Version        uint      `gorm:"column:version;not null" json:"version"`
	IsActive       bool      `gorm:"column:is_active;index" json:"is_active"`
}

func (Blog) TableName() string {
	return "blogs"
}

// ApplyBlocks stores c as the body and recompiles the HTML cache.
// Content, HTMLContent and UpdatedAt always change together.
func (b *Blog) ApplyBlocks(c *content.Collection, now time.Time) error {
	raw, err := c.Serialize()
	if err != nil {
		return err
	}
	b.Content = raw
	b.HTMLContent = content.Compile(c)
	b.UpdatedAt = now
	return nil
}

// HasImage reports whether the post carries a real image
func (b *Blog) HasImage() bool {
	return b.ImageURL != "" && b.ImageURL != PlaceholderImage
}

// BlogResponse public view of a post
type BlogResponse struct {
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	ID             string    `json:"id"`
	SeoTitle       string    `json:"seo_title"`
	SeoDescription string    `json:"seo_description"`
	ImageURL       string    `json:"image_url"`
	HTMLContent    string    `json:"html_content,omitempty"`
	Slug           string    `json:"slug"`
	Author         string    `json:"author"`
	Version        uint      `json:"version"`
	IsActive       bool      `json:"is_active"`
}

func (b *Blog) ToResponse() *BlogResponse {
	return &BlogResponse{
		ID:             b.ID,
		SeoTitle:       b.SeoTitle,
		SeoDescription: b.SeoDescription,
		ImageURL:       b.ImageURL,
		HTMLContent:    b.HTMLContent,
		Slug:           b.Slug,
		Author:         b.Author,
		Version:        b.Version,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// ToSummary list view, without the body
func (b *Blog) ToSummary() *BlogResponse {
	resp := b.ToResponse()
	resp.HTMLContent = ""
	return resp
}

// SaveBlogRequest create (empty ID) or update blog metadata
type SaveBlogRequest struct {
	ID             string `json:"id" validate:"omitempty,uuid"`
	SeoTitle       string `json:"seo_title" binding:"required" validate:"required,max=255"`
	SeoDescription string `json:"seo_description" validate:"max=1000"`
}

// UpsertBlockRequest append a block (no content_id) or replace one
type UpsertBlockRequest struct {
	ContentID *int   `json:"content_id"`
	Type      string `json:"type" binding:"required" validate:"required,max=20"`
	Content   string `json:"content"`
}

// SortedItem one entry of a reorder request
type SortedItem struct {
	Text string `json:"text"`
	Type string `json:"type" validate:"required,max=20"`
}

// ReorderBlocksRequest replaces the whole body with items in order
type ReorderBlocksRequest struct {
	Items []SortedItem `json:"items" validate:"dive"`
}

// BlocksResponse editor view of a post body
type BlocksResponse struct {
	BlogID  string          `json:"blog_id"`
	HTML    string          `json:"html"`
	Items   []content.Block `json:"items"`
	Version uint            `json:"version"`
}

// BlockMutationResponse result of an upsert or reorder
type BlockMutationResponse struct {
	BlogID    string    `json:"blog_id"`
	UpdatedAt time.Time `json:"updated_at"`
	HTML      string    `json:"html"`
	BlockID   int       `json:"block_id,omitempty"`
	Count     int       `json:"count"`
	Version   uint      `json:"version"`
	Replaced  bool      `json:"replaced"`
}

// HomeResponse landing page payload
type HomeResponse struct {
	Top        []*BlogResponse     `json:"top"`
	Latest     []*BlogResponse     `json:"latest"`
	Categories []*CategoryResponse `json:"categories"`
}
