package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/josuecastillodev/ecommerce/app/helpers"
	"github.com/josuecastillodev/ecommerce/app/models"
	"github.com/josuecastillodev/ecommerce/app/repositories"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const msgBrandNotFound = "Brand not found"

type CreateBrandInput struct {
	Name           string                 `json:"name" validate:"required,min=1,max=100"`
	Slug           string                 `json:"slug" validate:"omitempty,max=100,slug"`
	LogoURL        *string                `json:"logo_url" validate:"omitnil,url"`
	PrimaryColor   string                 `json:"primary_color" validate:"omitempty,len=7,hexcolor"`
	SecondaryColor string                 `json:"secondary_color" validate:"omitempty,len=7,hexcolor"`
	Description    *string                `json:"description" validate:"omitnil,max=1000"`
	Active         *bool                  `json:"active"`
	Metadata       map[string]interface{} `json:"metadata"`
}

type UpdateBrandInput struct {
	Name           *string                                  `json:"name" validate:"omitnil,min=1,max=100"`
	Slug           *string                                  `json:"slug" validate:"omitnil,min=1,max=100,slug"`
	LogoURL        helpers.Optional[string]                 `json:"logo_url" validate:"omitempty,url"`
	PrimaryColor   *string                                  `json:"primary_color" validate:"omitnil,len=7,hexcolor"`
	SecondaryColor *string                                  `json:"secondary_color" validate:"omitnil,len=7,hexcolor"`
	Description    helpers.Optional[string]                 `json:"description" validate:"omitempty,max=1000"`
	Active         *bool                                    `json:"active"`
	Metadata       helpers.Optional[map[string]interface{}] `json:"metadata"`
}

type BrandService struct {
	repo         repositories.BrandRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	logger       *zap.Logger
}

func NewBrandService(repo repositories.BrandRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, logger *zap.Logger) *BrandService {
	return &BrandService{
		repo:         repo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *BrandService) ListBrands(ctx context.Context, filter repositories.BrandFilter) ([]models.Brand, int64, error) {
	brands, count, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if brands == nil {
		brands = []models.Brand{}
	}
	return brands, count, nil
}

// ListActiveBrands is the storefront listing, ordered by name.
func (s *BrandService) ListActiveBrands(ctx context.Context, offset, limit int) ([]models.Brand, int64, error) {
	active := true
	return s.ListBrands(ctx, repositories.BrandFilter{Active: &active, ByName: true, Offset: offset, Limit: limit})
}

func (s *BrandService) GetBrand(ctx context.Context, id string) (*models.Brand, error) {
	brand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load brand %s: %w", id, err)
	}
	if brand == nil {
		return nil, apperr.NotFound(msgBrandNotFound)
	}
	return brand, nil
}

func (s *BrandService) GetBrandBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	brand, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load brand %q: %w", slug, err)
	}
	if brand == nil {
		return nil, apperr.NotFound(msgBrandNotFound)
	}
	return brand, nil
}

// GetActiveBrandBySlug hides inactive brands from the storefront.
func (s *BrandService) GetActiveBrandBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	brand, err := s.GetBrandBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !brand.Active {
		return nil, apperr.NotFound(msgBrandNotFound)
	}
	return brand, nil
}

func (s *BrandService) validateSlug(ctx context.Context, slug, excludeID string) error {
	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to look up brand slug %q: %w", slug, err)
	}
	if existing != nil && existing.ID != excludeID {
		return apperr.Rule("Brand slug %q already exists", slug)
	}
	return nil
}

func (s *BrandService) CreateBrand(ctx context.Context, input CreateBrandInput) (*models.Brand, error) {
	slug := input.Slug
	if slug == "" {
		slug = helpers.GenerateSlug(input.Name)
	}
	if slug == "" {
		return nil, apperr.Rule("A slug is required when the name has no usable characters")
	}
	if err := s.validateSlug(ctx, slug, ""); err != nil {
		return nil, err
	}

	brand := &models.Brand{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Slug:           slug,
		LogoURL:        input.LogoURL,
		PrimaryColor:   models.DefaultPrimaryColor,
		SecondaryColor: models.DefaultSecondaryColor,
		Description:    input.Description,
		Active:         true,
	}
	if input.PrimaryColor != "" {
		brand.PrimaryColor = input.PrimaryColor
	}
	if input.SecondaryColor != "" {
		brand.SecondaryColor = input.SecondaryColor
	}
	if input.Active != nil {
		brand.Active = *input.Active
	}
	if input.Metadata != nil {
		brand.Metadata = datatypes.JSONMap(input.Metadata)
	}

	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	s.logger.Info("brand created", zap.String("brand_id", brand.ID), zap.String("slug", brand.Slug))
	return brand, nil
}

func (s *BrandService) UpdateBrand(ctx context.Context, id string, input UpdateBrandInput) (*models.Brand, error) {
	brand, err := s.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != brand.Slug {
		if err := s.validateSlug(ctx, *input.Slug, brand.ID); err != nil {
			return nil, err
		}
		brand.Slug = *input.Slug
	}
	if input.Name != nil {
		brand.Name = *input.Name
	}
	if input.LogoURL.Set {
		brand.LogoURL = input.LogoURL.Value
	}
	if input.PrimaryColor != nil {
		brand.PrimaryColor = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		brand.SecondaryColor = *input.SecondaryColor
	}
	if input.Description.Set {
		brand.Description = input.Description.Value
	}
	if input.Active != nil {
		brand.Active = *input.Active
	}
	if input.Metadata.Set {
		brand.Metadata = nil
		if input.Metadata.Value != nil {
			brand.Metadata = datatypes.JSONMap(*input.Metadata.Value)
		}
	}

	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to update brand %s: %w", id, err)
	}
	return brand, nil
}

func (s *BrandService) ActivateBrand(ctx context.Context, id string) (*models.Brand, error) {
	active := true
	return s.UpdateBrand(ctx, id, UpdateBrandInput{Active: &active})
}

func (s *BrandService) DeactivateBrand(ctx context.Context, id string) (*models.Brand, error) {
	active := false
	return s.UpdateBrand(ctx, id, UpdateBrandInput{Active: &active})
}

// DeleteBrand refuses to remove a brand that still owns categories.
func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	if _, err := s.GetBrand(ctx, id); err != nil {
		return err
	}

	n, err := s.categoryRepo.CountByBrand(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count categories of brand %s: %w", id, err)
	}
	if n > 0 {
		return apperr.Conflict("Brand still has %d categories. Delete them first.", n)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete brand %s: %w", id, err)
	}

	s.logger.Info("brand deleted", zap.String("brand_id", id))
	return nil
}
