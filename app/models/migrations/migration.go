package migrations

import (
	"github.com/josuecastillodev/ecommerce/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Brand{}, &models.Category{})
}
