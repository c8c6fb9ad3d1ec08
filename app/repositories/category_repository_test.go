package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/josuecastillodev/ecommerce/app/models"
	"github.com/josuecastillodev/ecommerce/app/models/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migrations.AutoMigrate(testDB))
	return testDB
}

func seedCategory(t *testing.T, db *gorm.DB, name string, position int, parentID, brandID *string) models.Category {
	c := models.Category{
		ID:       uuid.New().String(),
		Name:     name,
		Slug:     name,
		Position: position,
		ParentID: parentID,
		BrandID:  brandID,
		IsActive: true,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func TestCategoryRepositoryList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()
	brand := "brand-1"

	b := seedCategory(t, db, "b", 1, nil, nil)
	a := seedCategory(t, db, "a", 1, nil, nil)
	z := seedCategory(t, db, "z", 0, nil, nil)
	seedCategory(t, db, "branded", 0, nil, &brand)
	seedCategory(t, db, "child", 0, &z.ID, nil)

	t.Run("orders by position then name", func(t *testing.T) {
		roots, err := repo.List(ctx, CategoryFilter{BrandID: MatchNull(), ParentID: MatchNull()})
		require.NoError(t, err)
		require.Len(t, roots, 3)
		assert.Equal(t, []string{z.ID, a.ID, b.ID}, []string{roots[0].ID, roots[1].ID, roots[2].ID})
	})

	t.Run("brand filter", func(t *testing.T) {
		branded, err := repo.List(ctx, CategoryFilter{BrandID: MatchID(brand)})
		require.NoError(t, err)
		require.Len(t, branded, 1)
		assert.Equal(t, "branded", branded[0].Name)
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		count, err := repo.Count(ctx, CategoryFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := repo.List(ctx, CategoryFilter{BrandID: MatchNull(), ParentID: MatchNull(), Offset: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, a.ID, page[0].ID)
	})

	t.Run("active filter", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Category{}).Where("id = ?", a.ID).Update("is_active", false).Error)
		inactive := false
		list, err := repo.List(ctx, CategoryFilter{IsActive: &inactive})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, a.ID, list[0].ID)
	})
}

func TestCategoryRepositoryGetBySlugScope(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()
	brand := "brand-1"

	global := seedCategory(t, db, "ropa", 0, nil, nil)
	branded := seedCategory(t, db, "ropa", 0, nil, &brand)

	got, err := repo.GetBySlug(ctx, "ropa", nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, global.ID, got.ID)

	got, err = repo.GetBySlug(ctx, "ropa", &brand)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, branded.ID, got.ID)

	got, err = repo.GetBySlug(ctx, "missing", nil)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCategoryRepositoryNextPosition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()
	brand := "brand-1"

	next, err := repo.NextPosition(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	root := seedCategory(t, db, "root", 4, nil, nil)
	seedCategory(t, db, "other-brand", 9, nil, &brand)

	next, err = repo.NextPosition(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, next)

	next, err = repo.NextPosition(ctx, &root.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestCategoryRepositoryDeletePromotesChildren(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	parent := seedCategory(t, db, "parent", 0, nil, nil)
	c1 := seedCategory(t, db, "c1", 3, &parent.ID, nil)
	c2 := seedCategory(t, db, "c2", 7, &parent.ID, nil)

	require.NoError(t, repo.Delete(ctx, parent.ID))

	gone, err := repo.GetByID(ctx, parent.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	for _, want := range []models.Category{c1, c2} {
		got, err := repo.GetByID(ctx, want.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.ParentID)
		assert.Equal(t, want.Position, got.Position)
		assert.Equal(t, want.Name, got.Name)
	}

	// soft-deleted rows stay in the table but free their slug
	var raw int64
	db.Unscoped().Model(&models.Category{}).Where("id = ?", parent.ID).Count(&raw)
	assert.Equal(t, int64(1), raw)

	bySlug, err := repo.GetBySlug(ctx, "parent", nil)
	require.NoError(t, err)
	assert.Nil(t, bySlug)
}

func TestCategoryRepositoryReorder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	p1 := seedCategory(t, db, "p1", 0, nil, nil)
	c1 := seedCategory(t, db, "c1", 5, nil, nil)
	c2 := seedCategory(t, db, "c2", 2, nil, nil)
	c3 := seedCategory(t, db, "c3", 9, nil, nil)

	require.NoError(t, repo.Reorder(ctx, []string{c1.ID, c2.ID, c3.ID}, &p1.ID))

	children, err := repo.GetChildren(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, children, 3)
	for i, want := range []string{c1.ID, c2.ID, c3.ID} {
		assert.Equal(t, want, children[i].ID)
		assert.Equal(t, i, children[i].Position)
	}

	n, err := repo.CountChildren(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	require.NoError(t, repo.Reorder(ctx, []string{c2.ID}, nil))
	got, err := repo.GetByID(ctx, c2.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ParentID)
	assert.Equal(t, 0, got.Position)
}

func TestCategoryRepositoryGetByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	a := seedCategory(t, db, "a", 0, nil, nil)
	b := seedCategory(t, db, "b", 1, nil, nil)

	found, err := repo.GetByIDs(ctx, []string{a.ID, b.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	empty, err := repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
