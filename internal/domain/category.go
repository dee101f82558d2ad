package domain

// Category listed on the home page (categories table)
type Category struct {
	ID             string `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Name           string `gorm:"column:name;size:100" json:"name"`
	Slug           string `gorm:"column:slug;size:120;uniqueIndex" json:"slug"`
	SeoTitle       string `gorm:"column:seo_title;size:255" json:"seo_title"`
	SeoDescription string `gorm:"column:seo_description;type:text" json:"seo_description"`
	ImageURL       string `gorm:"column:image_url;size:500" json:"image_url"`
	Count          int    `gorm:"column:count" json:"count"`
}

func (Category) TableName() string {
	return "categories"
}

type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"image_url"`
	Count    int    `json:"count"`
}

func (c *Category) ToResponse() *CategoryResponse {
	return &CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ImageURL: c.ImageURL,
		Count:    c.Count,
	}
}
