package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/josuecastillodev/ecommerce/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandRepository(db)
	ctx := context.Background()

	now := time.Now()
	brands := []models.Brand{
		{ID: uuid.New().String(), Name: "Moda Norte", Slug: "moda-norte", Active: true, PrimaryColor: "#000000", SecondaryColor: "#FFFFFF", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New().String(), Name: "Casa Sur", Slug: "casa-sur", Active: true, PrimaryColor: "#000000", SecondaryColor: "#FFFFFF", CreatedAt: now.Add(-time.Hour)},
		{ID: uuid.New().String(), Name: "Moda Vieja", Slug: "moda-vieja", Active: false, PrimaryColor: "#000000", SecondaryColor: "#FFFFFF", CreatedAt: now},
	}
	for i := range brands {
		require.NoError(t, repo.Create(ctx, &brands[i]))
	}

	t.Run("GetBySlug", func(t *testing.T) {
		got, err := repo.GetBySlug(ctx, "casa-sur")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, brands[1].ID, got.ID)

		missing, err := repo.GetBySlug(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("List newest first with count", func(t *testing.T) {
		list, count, err := repo.List(ctx, BrandFilter{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		require.Len(t, list, 2)
		assert.Equal(t, brands[2].ID, list[0].ID)
		assert.Equal(t, brands[1].ID, list[1].ID)
	})

	t.Run("List filters", func(t *testing.T) {
		active := true
		list, count, err := repo.List(ctx, BrandFilter{Active: &active, Name: "MODA"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		require.Len(t, list, 1)
		assert.Equal(t, "moda-norte", list[0].Slug)
	})

	t.Run("Update and Delete", func(t *testing.T) {
		b := brands[0]
		b.Active = false
		require.NoError(t, repo.Update(ctx, &b))

		got, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.False(t, got.Active)

		require.NoError(t, repo.Delete(ctx, b.ID))
		got, err = repo.GetByID(ctx, b.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
