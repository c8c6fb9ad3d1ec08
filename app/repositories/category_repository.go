package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/josuecastillodev/ecommerce/app/models"
	"gorm.io/gorm"
)

const categoryOrder = "position ASC, name ASC"

// NullableID filters a nullable id column. A nil ID matches NULL.
type NullableID struct {
	ID *string
}

func MatchNull() *NullableID {
	return &NullableID{}
}

func MatchID(id string) *NullableID {
	return &NullableID{ID: &id}
}

// MatchScope matches brandID exactly, including the NULL global scope.
func MatchScope(id *string) *NullableID {
	return &NullableID{ID: id}
}

// CategoryFilter selects categories. Nil fields do not filter; a zero Limit
// returns every row.
type CategoryFilter struct {
	BrandID  *NullableID
	ParentID *NullableID
	IsActive *bool
	Offset   int
	Limit    int
}

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string, brandID *string) (*models.Category, error)
	List(ctx context.Context, filter CategoryFilter) ([]models.Category, error)
	Count(ctx context.Context, filter CategoryFilter) (int64, error)
	GetChildren(ctx context.Context, parentID string) ([]models.Category, error)
	CountChildren(ctx context.Context, parentID string) (int64, error)
	NextPosition(ctx context.Context, parentID, brandID *string) (int, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string, parentID *string) error
	CountByBrand(ctx context.Context, brandID string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func nullableEq(column string, f *NullableID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f == nil {
			return db
		}
		if f.ID == nil {
			return db.Where(column + " IS NULL")
		}
		return db.Where(column+" = ?", *f.ID)
	}
}

func (f CategoryFilter) apply(db *gorm.DB) *gorm.DB {
	db = db.Scopes(nullableEq("brand_id", f.BrandID), nullableEq("parent_id", f.ParentID))
	if f.IsActive != nil {
		db = db.Where("is_active = ?", *f.IsActive)
	}
	return db
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetByIDs returns the categories found among ids, in no particular order.
func (r *categoryRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Category, error) {
	var categories []models.Category
	if len(ids) == 0 {
		return categories, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string, brandID *string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Scopes(nullableEq("brand_id", MatchScope(brandID))).
		Where("slug = ?", slug).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, filter CategoryFilter) ([]models.Category, error) {
	var categories []models.Category
	q := filter.apply(r.db.WithContext(ctx).Model(&models.Category{})).Order(categoryOrder)
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) Count(ctx context.Context, filter CategoryFilter) (int64, error) {
	var count int64
	err := filter.apply(r.db.WithContext(ctx).Model(&models.Category{})).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

func (r *categoryRepository) GetChildren(ctx context.Context, parentID string) ([]models.Category, error) {
	return r.List(ctx, CategoryFilter{ParentID: MatchID(parentID)})
}

func (r *categoryRepository) CountChildren(ctx context.Context, parentID string) (int64, error) {
	return r.Count(ctx, CategoryFilter{ParentID: MatchID(parentID)})
}

// NextPosition returns one past the highest position in the sibling group
// (parentID, brandID), or 0 when the group is empty.
func (r *categoryRepository) NextPosition(ctx context.Context, parentID, brandID *string) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Scopes(nullableEq("parent_id", MatchScope(parentID)), nullableEq("brand_id", MatchScope(brandID))).
		Select("COALESCE(MAX(position), -1) + 1").
		Row().
		Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next position: %w", err)
	}
	return next, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete promotes the direct children of id to roots, keeping their
// positions, and soft-deletes id. Both happen in one transaction.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Category{}).
			Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return fmt.Errorf("failed to promote subcategories of %s: %w", id, err)
		}
		if err := tx.Delete(&models.Category{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete category %s: %w", id, err)
		}
		return nil
	})
}

// Reorder assigns positions 0..n-1 in ids order and sets parent_id on all of them.
func (r *categoryRepository) Reorder(ctx context.Context, ids []string, parentID *string) error {
	var parent interface{}
	if parentID != nil {
		parent = *parentID
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			err := tx.Model(&models.Category{}).
				Where("id = ?", id).
				Updates(map[string]interface{}{
					"parent_id": parent,
					"position":  i,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to reorder category %s: %w", id, err)
			}
		}
		return nil
	})
}

func (r *categoryRepository) CountByBrand(ctx context.Context, brandID string) (int64, error) {
	return r.Count(ctx, CategoryFilter{BrandID: MatchID(brandID)})
}
