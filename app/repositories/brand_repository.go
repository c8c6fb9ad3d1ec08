package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/josuecastillodev/ecommerce/app/models"
	"gorm.io/gorm"
)

// BrandFilter selects brands for List. Results are newest first unless
// ByName is set.
type BrandFilter struct {
	Active *bool
	Name   string
	ByName bool
	Offset int
	Limit  int
}

type BrandRepositoryImpl interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetByID(ctx context.Context, id string) (*models.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*models.Brand, error)
	List(ctx context.Context, filter BrandFilter) ([]models.Brand, int64, error)
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id string) error
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepositoryImpl {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepository) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (f BrandFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Active != nil {
		db = db.Where("active = ?", *f.Active)
	}
	if f.Name != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	return db
}

func (r *brandRepository) List(ctx context.Context, filter BrandFilter) ([]models.Brand, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Brand{}).Scopes(filter.apply).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	var brands []models.Brand
	q := r.db.WithContext(ctx).Scopes(filter.apply)
	if filter.ByName {
		q = q.Order("name ASC")
	} else {
		q = q.Order("created_at DESC").Order("name ASC")
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Find(&brands).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, count, nil
}

func (r *brandRepository) Update(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *brandRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Brand{}, "id = ?", id).Error
}
