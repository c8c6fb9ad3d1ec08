package helpers

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/josuecastillodev/ecommerce/app/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type contextKey string

const (
	ContextKeyBrand contextKey = "brand"
	BrandIDHeader              = "X-Brand-Id"
)

var (
	slugSeparators = regexp.MustCompile(`[\s\p{Z}_]+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashes     = regexp.MustCompile(`-+`)
	SlugPattern    = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// GenerateSlug lowercases s, strips diacritics and reduces it to [a-z0-9-].
// The result is empty when s has no usable characters.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", field)
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", field, err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be %s characters or less.", field, err.Param())
		case "url":
			errorMessages[field] = fmt.Sprintf("%s must be a valid URL.", field)
		case "slug":
			errorMessages[field] = fmt.Sprintf("%s must contain only lowercase letters, numbers, and hyphens.", field)
		case "hexcolor", "len":
			errorMessages[field] = fmt.Sprintf("%s must be a valid hex color like #1A2B3C.", field)
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s must be one of: %s.", field, err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed %s validation.", field, err.Tag())
		}
	}
	return errorMessages
}

// NilIfEmpty treats a blank id as absent.
func NilIfEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func StringPtr(s string) *string {
	return &s
}

// SameID reports whether two nullable ids refer to the same record (or are both nil).
func SameID(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func WithBrand(ctx context.Context, brand *models.Brand) context.Context {
	return context.WithValue(ctx, ContextKeyBrand, brand)
}

// BrandFromContext returns the brand resolved by the brand scope middleware, if any.
func BrandFromContext(ctx context.Context) *models.Brand {
	brand, _ := ctx.Value(ContextKeyBrand).(*models.Brand)
	return brand
}

func BrandIDFromContext(ctx context.Context) *string {
	if brand := BrandFromContext(ctx); brand != nil {
		return &brand.ID
	}
	return nil
}
