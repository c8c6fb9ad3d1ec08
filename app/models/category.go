package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category is a catalog node. A nil ParentID marks a root and a nil BrandID
// marks a global category shared by every brand.
type Category struct {
	ID          string            `gorm:"size:36;not null;primary_key" json:"id"`
	Name        string            `gorm:"size:100;not null;index" json:"name"`
	Slug        string            `gorm:"size:100;not null;index:idx_categories_slug_brand" json:"slug"`
	Description *string           `gorm:"type:text" json:"description"`
	ImageURL    *string           `gorm:"size:500" json:"image_url"`
	ParentID    *string           `gorm:"size:36;index" json:"parent_id"`
	BrandID     *string           `gorm:"size:36;index;index:idx_categories_slug_brand" json:"brand_id"`
	Position    int               `gorm:"not null;index" json:"position"`
	IsActive    bool              `gorm:"not null" json:"is_active"`
	Metadata    datatypes.JSONMap `json:"metadata"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`
}

func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

func (c *Category) IsGlobal() bool {
	return c.BrandID == nil
}

// CategoryTree is a root category with its direct children attached.
type CategoryTree struct {
	Category
	Children []Category `json:"children"`
}

// CategoryDetail carries the computed children and parent of a category.
type CategoryDetail struct {
	Category
	Children []Category `json:"children"`
	Parent   *Category  `json:"parent"`
}
