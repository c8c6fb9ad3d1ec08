package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DefaultPrimaryColor   = "#000000"
	DefaultSecondaryColor = "#FFFFFF"
)

type Brand struct {
	ID             string            `gorm:"size:36;not null;primary_key" json:"id"`
	Name           string            `gorm:"size:100;not null;index" json:"name"`
	Slug           string            `gorm:"size:100;not null;index" json:"slug"`
	LogoURL        *string           `gorm:"size:500" json:"logo_url"`
	PrimaryColor   string            `gorm:"size:7;not null" json:"primary_color"`
	SecondaryColor string            `gorm:"size:7;not null" json:"secondary_color"`
	Description    *string           `gorm:"type:text" json:"description"`
	Active         bool              `gorm:"not null" json:"active"`
	Metadata       datatypes.JSONMap `json:"metadata"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`
}
