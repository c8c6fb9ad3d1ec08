package seeders

import (
	"context"

	"github.com/josuecastillodev/ecommerce/app/db/fakers"
	"github.com/josuecastillodev/ecommerce/app/repositories"
	"github.com/josuecastillodev/ecommerce/app/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBSeed creates the demo brands and categories through the services, so
// every record passes the same validation as an API request.
func DBSeed(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	categoryRepo := repositories.NewCategoryRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	categorySvc := services.NewCategoryService(categoryRepo, brandRepo, logger)
	brandSvc := services.NewBrandService(brandRepo, categoryRepo, logger)

	if err := seedCategories(ctx, categorySvc, fakers.GlobalCategories(), nil); err != nil {
		return err
	}

	for _, seed := range fakers.Brands() {
		brand, err := brandSvc.CreateBrand(ctx, seed.Input)
		if err != nil {
			return err
		}
		if err := seedCategories(ctx, categorySvc, seed.Categories, &brand.ID); err != nil {
			return err
		}
	}
	return nil
}

func seedCategories(ctx context.Context, svc *services.CategoryService, seeds []fakers.CategorySeed, brandID *string) error {
	for _, seed := range seeds {
		input := seed.Input
		input.BrandID = brandID

		root, err := svc.CreateCategory(ctx, input)
		if err != nil {
			return err
		}
		for _, name := range seed.Children {
			if _, err := svc.CreateCategory(ctx, services.CreateCategoryInput{
				Name:     name,
				ParentID: &root.ID,
				BrandID:  brandID,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
