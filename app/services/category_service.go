package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/josuecastillodev/ecommerce/app/helpers"
	"github.com/josuecastillodev/ecommerce/app/models"
	"github.com/josuecastillodev/ecommerce/app/repositories"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

const msgCategoryNotFound = "Category not found"

type CreateCategoryInput struct {
	Name        string                 `json:"name" validate:"required,min=1,max=100"`
	Slug        string                 `json:"slug" validate:"omitempty,max=100,slug"`
	Description *string                `json:"description" validate:"omitnil,max=1000"`
	ImageURL    *string                `json:"image_url" validate:"omitnil,url"`
	ParentID    *string                `json:"parent_id"`
	BrandID     *string                `json:"brand_id"`
	Position    *int                   `json:"position" validate:"omitnil,min=0"`
	IsActive    *bool                  `json:"is_active"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// UpdateCategoryInput is a partial update. Nil pointers and unset Optionals
// leave the stored value alone; the brand scope cannot be changed.
type UpdateCategoryInput struct {
	Name        *string                                  `json:"name" validate:"omitnil,min=1,max=100"`
	Slug        *string                                  `json:"slug" validate:"omitnil,min=1,max=100,slug"`
	Description helpers.Optional[string]                 `json:"description" validate:"omitempty,max=1000"`
	ImageURL    helpers.Optional[string]                 `json:"image_url" validate:"omitempty,url"`
	ParentID    helpers.Optional[string]                 `json:"parent_id"`
	Position    *int                                     `json:"position" validate:"omitnil,min=0"`
	IsActive    *bool                                    `json:"is_active"`
	Metadata    helpers.Optional[map[string]interface{}] `json:"metadata"`
}

type CategoryService struct {
	repo      repositories.CategoryRepositoryImpl
	brandRepo repositories.BrandRepositoryImpl
	logger    *zap.Logger
}

func NewCategoryService(repo repositories.CategoryRepositoryImpl, brandRepo repositories.BrandRepositoryImpl, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		repo:      repo,
		brandRepo: brandRepo,
		logger:    logger,
	}
}

func (s *CategoryService) getCategory(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category %s: %w", id, err)
	}
	if category == nil {
		return nil, apperr.NotFound(msgCategoryNotFound)
	}
	return category, nil
}

// ListCategories returns one page of categories and the total matching count.
// search is matched against name and slug within the fetched page; when it is
// set the count is the number of matches on that page.
func (s *CategoryService) ListCategories(ctx context.Context, filter repositories.CategoryFilter, search string) ([]models.Category, int64, error) {
	var (
		categories []models.Category
		count      int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.repo.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		countFilter := filter
		countFilter.Offset, countFilter.Limit = 0, 0
		var err error
		count, err = s.repo.Count(gctx, countFilter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		filtered := make([]models.Category, 0, len(categories))
		for _, c := range categories {
			if strings.Contains(strings.ToLower(c.Name), search) || strings.Contains(strings.ToLower(c.Slug), search) {
				filtered = append(filtered, c)
			}
		}
		return filtered, int64(len(filtered)), nil
	}

	return nonNil(categories), count, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*models.CategoryDetail, error) {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, category, false)
}

// GetStoreCategoryBySlug looks the slug up in the brand scope first and falls
// back to global categories. Inactive categories are reported as not found.
func (s *CategoryService) GetStoreCategoryBySlug(ctx context.Context, slug string, brandID *string) (*models.CategoryDetail, error) {
	var category *models.Category
	if brandID != nil {
		found, err := s.repo.GetBySlug(ctx, slug, brandID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up category %q: %w", slug, err)
		}
		category = found
	}
	if category == nil {
		found, err := s.repo.GetBySlug(ctx, slug, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to look up category %q: %w", slug, err)
		}
		category = found
	}

	if category == nil || !category.IsActive {
		return nil, apperr.NotFound(msgCategoryNotFound)
	}
	return s.buildDetail(ctx, category, true)
}

func (s *CategoryService) buildDetail(ctx context.Context, category *models.Category, activeOnly bool) (*models.CategoryDetail, error) {
	detail := &models.CategoryDetail{Category: *category, Children: []models.Category{}}

	if category.IsRoot() {
		children, err := s.repo.GetChildren(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		detail.Children = filterActive(children, activeOnly)
		return detail, nil
	}

	parent, err := s.repo.GetByID(ctx, *category.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load parent of %s: %w", category.ID, err)
	}
	detail.Parent = parent
	return detail, nil
}

// GetCategoryTree returns the roots of one brand scope (nil = global) with
// their direct children.
func (s *CategoryService) GetCategoryTree(ctx context.Context, brandID *string, activeOnly bool) ([]models.CategoryTree, error) {
	filter := repositories.CategoryFilter{
		BrandID:  repositories.MatchScope(brandID),
		ParentID: repositories.MatchNull(),
	}
	if activeOnly {
		filter.IsActive = &activeOnly
	}

	roots, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	tree := make([]models.CategoryTree, 0, len(roots))
	for _, root := range roots {
		children, err := s.repo.GetChildren(ctx, root.ID)
		if err != nil {
			return nil, err
		}
		tree = append(tree, models.CategoryTree{Category: root, Children: filterActive(children, activeOnly)})
	}
	return tree, nil
}

// ListActiveCategories returns every active category of one brand scope
// (nil = global), ordered.
func (s *CategoryService) ListActiveCategories(ctx context.Context, brandID *string) ([]models.Category, error) {
	active := true
	categories, err := s.repo.List(ctx, repositories.CategoryFilter{BrandID: repositories.MatchScope(brandID), IsActive: &active})
	if err != nil {
		return nil, err
	}
	return nonNil(categories), nil
}

// GetCategoriesForBrand returns the active global categories followed by the
// active categories of brandID.
func (s *CategoryService) GetCategoriesForBrand(ctx context.Context, brandID string) ([]models.Category, error) {
	active := true
	var brandCategories, globalCategories []models.Category

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		brandCategories, err = s.repo.List(gctx, repositories.CategoryFilter{BrandID: repositories.MatchID(brandID), IsActive: &active})
		return err
	})
	g.Go(func() error {
		var err error
		globalCategories, err = s.repo.List(gctx, repositories.CategoryFilter{BrandID: repositories.MatchNull(), IsActive: &active})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]models.Category, 0, len(globalCategories)+len(brandCategories))
	all = append(all, globalCategories...)
	return append(all, brandCategories...), nil
}

// GetCategoryTreeForBrand merges the brand and global categories into one
// tree. Global and brand roots are peers ordered by position then name.
func (s *CategoryService) GetCategoryTreeForBrand(ctx context.Context, brandID string) ([]models.CategoryTree, error) {
	all, err := s.GetCategoriesForBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	var roots []models.Category
	childrenByParent := make(map[string][]models.Category)
	for _, c := range all {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		childrenByParent[*c.ParentID] = append(childrenByParent[*c.ParentID], c)
	}
	sortCategories(roots)

	tree := make([]models.CategoryTree, 0, len(roots))
	for _, root := range roots {
		children := nonNil(childrenByParent[root.ID])
		sortCategories(children)
		tree = append(tree, models.CategoryTree{Category: root, Children: children})
	}
	return tree, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	parentID := helpers.NilIfEmpty(input.ParentID)
	brandID := helpers.NilIfEmpty(input.BrandID)

	if brandID != nil {
		brand, err := s.brandRepo.GetByID(ctx, *brandID)
		if err != nil {
			return nil, fmt.Errorf("failed to load brand %s: %w", *brandID, err)
		}
		if brand == nil {
			return nil, apperr.NotFound(msgBrandNotFound)
		}
	}

	id := uuid.New().String()
	slug := input.Slug
	if slug == "" {
		slug = helpers.GenerateSlug(input.Name)
	}
	if slug == "" {
		slug = id
	}

	if err := s.ValidateDepth(ctx, parentID); err != nil {
		return nil, err
	}
	if err := s.ValidateSlugUniqueness(ctx, slug, brandID, ""); err != nil {
		return nil, err
	}

	var position int
	if input.Position != nil {
		position = *input.Position
	} else {
		next, err := s.repo.NextPosition(ctx, parentID, brandID)
		if err != nil {
			return nil, err
		}
		position = next
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	category := &models.Category{
		ID:          id,
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		ParentID:    parentID,
		BrandID:     brandID,
		Position:    position,
		IsActive:    isActive,
	}
	if input.Metadata != nil {
		category.Metadata = datatypes.JSONMap(input.Metadata)
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("category created",
		zap.String("category_id", category.ID),
		zap.String("slug", category.Slug),
		zap.Stringp("brand_id", category.BrandID),
		zap.Stringp("parent_id", category.ParentID),
	)
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	var newParentID *string
	if input.ParentID.Set {
		newParentID = helpers.NilIfEmpty(input.ParentID.Value)
		if !helpers.SameID(newParentID, category.ParentID) {
			if err := s.validateParentChange(ctx, category, newParentID); err != nil {
				return nil, err
			}
		}
	}

	if input.Slug != nil && *input.Slug != category.Slug {
		if err := s.ValidateSlugUniqueness(ctx, *input.Slug, category.BrandID, category.ID); err != nil {
			return nil, err
		}
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Slug != nil {
		category.Slug = *input.Slug
	}
	if input.Description.Set {
		category.Description = input.Description.Value
	}
	if input.ImageURL.Set {
		category.ImageURL = input.ImageURL.Value
	}
	if input.ParentID.Set {
		category.ParentID = newParentID
	}
	if input.Position != nil {
		category.Position = *input.Position
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.Metadata.Set {
		category.Metadata = nil
		if input.Metadata.Value != nil {
			category.Metadata = datatypes.JSONMap(*input.Metadata.Value)
		}
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	return category, nil
}

// DeleteCategory promotes the category's children to roots and deletes it.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.getCategory(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("category deleted", zap.String("category_id", id))
	return nil
}

// ReorderCategories places ids under parentID (nil = root) with positions
// matching their order, and returns them in that order.
func (s *CategoryService) ReorderCategories(ctx context.Context, ids []string, parentID *string) ([]models.Category, error) {
	parentID = helpers.NilIfEmpty(parentID)
	if len(ids) == 0 {
		return nil, apperr.Rule("At least one category ID is required")
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, apperr.Rule("Category %s is listed more than once", id)
		}
		seen[id] = true
	}

	found, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories to reorder: %w", err)
	}
	existing := make(map[string]bool, len(found))
	for _, c := range found {
		existing[c.ID] = true
	}
	for _, id := range ids {
		if !existing[id] {
			return nil, apperr.NotFound("Category %s not found", id)
		}
	}

	if parentID != nil {
		if seen[*parentID] {
			return nil, apperr.Rule(msgSelfParent)
		}

		parent, err := s.repo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent category %s: %w", *parentID, err)
		}
		if parent == nil {
			return nil, apperr.NotFound("Parent category %s not found", *parentID)
		}
		if !parent.IsRoot() {
			return nil, apperr.Rule("Cannot set parent to a subcategory (max depth is 2 levels)")
		}

		for _, id := range ids {
			n, err := s.repo.CountChildren(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("failed to count subcategories of %s: %w", id, err)
			}
			if n > 0 {
				return nil, apperr.Rule(msgChildrenUnderParent)
			}
		}
	}

	if err := s.repo.Reorder(ctx, ids, parentID); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to reload reordered categories: %w", err)
	}
	byID := make(map[string]models.Category, len(updated))
	for _, c := range updated {
		byID[c.ID] = c
	}
	ordered := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}

	s.logger.Info("categories reordered", zap.Int("count", len(ids)), zap.Stringp("parent_id", parentID))
	return ordered, nil
}

// MoveCategory reparents a category and appends it to its new sibling group.
func (s *CategoryService) MoveCategory(ctx context.Context, id string, newParentID *string) (*models.CategoryDetail, error) {
	newParentID = helpers.NilIfEmpty(newParentID)
	if newParentID != nil && *newParentID == id {
		return nil, apperr.Rule(msgSelfParent)
	}

	category, err := s.getCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateParentChange(ctx, category, newParentID); err != nil {
		return nil, err
	}

	position, err := s.repo.NextPosition(ctx, newParentID, category.BrandID)
	if err != nil {
		return nil, err
	}

	category.ParentID = newParentID
	category.Position = position
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to move category %s: %w", id, err)
	}

	s.logger.Info("category moved",
		zap.String("category_id", id),
		zap.Stringp("parent_id", newParentID),
		zap.Int("position", position),
	)
	return s.buildDetail(ctx, category, false)
}

func filterActive(categories []models.Category, activeOnly bool) []models.Category {
	if !activeOnly {
		return nonNil(categories)
	}
	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

func sortCategories(categories []models.Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Position != categories[j].Position {
			return categories[i].Position < categories[j].Position
		}
		return categories[i].Name < categories[j].Name
	})
}

func nonNil(categories []models.Category) []models.Category {
	if categories == nil {
		return []models.Category{}
	}
	return categories
}
