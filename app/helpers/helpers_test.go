package helpers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/josuecastillodev/ecommerce/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Éxito  Ñandú_01!", "exito-nandu-01"},
		{"Áéxito  Ñandú_01!", "aexito-nandu-01"},
		{"Ropa de Mujer", "ropa-de-mujer"},
		{"  --Zapatos & Bolsas--  ", "zapatos-bolsas"},
		{"Niños___y   Niñas", "ninos-y-ninas"},
		{"Café Orgánico", "cafe-organico"},
		{"already-a-slug", "already-a-slug"},
		{"!!!", ""},
		{"日本語", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}

func TestGenerateSlugIsStable(t *testing.T) {
	once := GenerateSlug("Electrónica y Cómputo")
	assert.Equal(t, once, GenerateSlug(once))
}

func TestOptionalUnmarshal(t *testing.T) {
	var body struct {
		ParentID    Optional[string] `json:"parent_id"`
		Description Optional[string] `json:"description"`
		ImageURL    Optional[string] `json:"image_url"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"parent_id": null, "description": "hola"}`), &body))

	assert.True(t, body.ParentID.Set)
	assert.Nil(t, body.ParentID.Value)

	assert.True(t, body.Description.Set)
	require.NotNil(t, body.Description.Value)
	assert.Equal(t, "hola", *body.Description.Value)

	assert.False(t, body.ImageURL.Set)
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	type input struct {
		Name     string           `json:"name" validate:"required,max=10"`
		Slug     *string          `json:"slug" validate:"omitnil,slug"`
		ImageURL Optional[string] `json:"image_url" validate:"omitempty,url"`
	}

	t.Run("valid", func(t *testing.T) {
		err := v.Struct(input{Name: "Ropa", Slug: StringPtr("ropa-1"), ImageURL: Some("https://cdn.example.com/a.png")})
		assert.NoError(t, err)
	})

	t.Run("null optional skips", func(t *testing.T) {
		assert.NoError(t, v.Struct(input{Name: "Ropa", ImageURL: Null[string]()}))
	})

	t.Run("errors use json names", func(t *testing.T) {
		err := v.Struct(input{Slug: StringPtr("Bad Slug"), ImageURL: Some("not a url")})
		require.Error(t, err)

		msgs := FormatValidationErrors(err.(validator.ValidationErrors))
		assert.Contains(t, msgs, "name")
		assert.Contains(t, msgs, "slug")
		assert.Contains(t, msgs, "image_url")
		assert.Equal(t, "name is required.", msgs["name"])
	})
}

func TestIDHelpers(t *testing.T) {
	assert.Nil(t, NilIfEmpty(nil))
	assert.Nil(t, NilIfEmpty(StringPtr("  ")))
	assert.Equal(t, "a", *NilIfEmpty(StringPtr("a")))

	assert.True(t, SameID(nil, nil))
	assert.False(t, SameID(StringPtr("a"), nil))
	assert.True(t, SameID(StringPtr("a"), StringPtr("a")))
	assert.False(t, SameID(StringPtr("a"), StringPtr("b")))
}

func TestBrandContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, BrandFromContext(ctx))
	assert.Nil(t, BrandIDFromContext(ctx))

	ctx = WithBrand(ctx, &models.Brand{ID: "b1"})
	assert.Equal(t, "b1", *BrandIDFromContext(ctx))
}
