package services

import (
	"context"
	"fmt"

	"github.com/josuecastillodev/ecommerce/app/models"
	"github.com/josuecastillodev/ecommerce/app/utils/apperr"
)

const (
	msgParentNotFound      = "Parent category not found"
	msgMaxDepth            = "Maximum category depth is 2 levels. Cannot create subcategory of a subcategory."
	msgSelfParent          = "Cannot move category to itself"
	msgUnderDescendant     = "Cannot move a category under one of its own subcategories"
	msgChildrenUnderChild  = "Cannot move a category with subcategories under another subcategory"
	msgChildrenUnderParent = "Cannot nest a category that has subcategories. Maximum category depth is 2 levels."
)

// ValidateDepth accepts a nil parent (new root) or an existing root parent.
func (s *CategoryService) ValidateDepth(ctx context.Context, parentID *string) error {
	_, err := s.loadRootParent(ctx, parentID)
	return err
}

func (s *CategoryService) loadRootParent(ctx context.Context, parentID *string) (*models.Category, error) {
	if parentID == nil {
		return nil, nil
	}

	parent, err := s.repo.GetByID(ctx, *parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load parent category %s: %w", *parentID, err)
	}
	if parent == nil {
		return nil, apperr.NotFound(msgParentNotFound)
	}
	if !parent.IsRoot() {
		return nil, apperr.Rule(msgMaxDepth)
	}
	return parent, nil
}

// ValidateSlugUniqueness rejects slug when another category in the same brand
// scope already uses it. excludeID lets a category keep its own slug.
func (s *CategoryService) ValidateSlugUniqueness(ctx context.Context, slug string, brandID *string, excludeID string) error {
	existing, err := s.repo.GetBySlug(ctx, slug, brandID)
	if err != nil {
		return fmt.Errorf("failed to look up slug %q: %w", slug, err)
	}

	if existing != nil && existing.ID != excludeID {
		scope := "global categories"
		if brandID != nil {
			scope = "this brand"
		}
		return apperr.Rule("Slug %q already exists in %s", slug, scope)
	}
	return nil
}

// validateParentChange checks that category can be placed under newParentID.
// Order matters: self and descendant checks run before the depth check.
func (s *CategoryService) validateParentChange(ctx context.Context, category *models.Category, newParentID *string) error {
	if newParentID == nil {
		return nil
	}

	if *newParentID == category.ID {
		return apperr.Rule(msgSelfParent)
	}

	parent, err := s.repo.GetByID(ctx, *newParentID)
	if err != nil {
		return fmt.Errorf("failed to load parent category %s: %w", *newParentID, err)
	}
	if parent == nil {
		return apperr.NotFound(msgParentNotFound)
	}
	if parent.ParentID != nil && *parent.ParentID == category.ID {
		return apperr.Rule(msgUnderDescendant)
	}

	children, err := s.repo.CountChildren(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to count subcategories of %s: %w", category.ID, err)
	}

	if !parent.IsRoot() {
		if children > 0 {
			return apperr.Rule(msgChildrenUnderChild)
		}
		return apperr.Rule(msgMaxDepth)
	}
	if children > 0 {
		return apperr.Rule(msgChildrenUnderParent)
	}
	return nil
}
