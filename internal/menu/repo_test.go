package menu

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	"github.com/polattozlu/munch-gokhan/pkg/enums"
)

func setupMenuTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS menu_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  restaurant_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL,
  image TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL,
  is_available INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, restaurantID int64, name string, category enums.MenuCategory, available bool) *models.MenuItem {
	t.Helper()

	row := &models.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        decimal.RequireFromString("45.00"),
		Category:     category,
		IsAvailable:  available,
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func TestRepositoryListByRestaurantSkipsUnavailable(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	seedMenuItem(t, db, 1, "Klasik Burger", enums.MenuCategoryMain, true)
	seedMenuItem(t, db, 1, "Sezar Salata", enums.MenuCategorySalad, true)
	seedMenuItem(t, db, 1, "Tükenen Menü", enums.MenuCategoryMain, false)
	seedMenuItem(t, db, 2, "Margherita", enums.MenuCategoryMain, true)

	rows, err := repo.ListByRestaurant(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Klasik Burger", rows[0].Name)
	assert.Equal(t, "Sezar Salata", rows[1].Name)
}

func TestRepositoryListByRestaurantAndCategory(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	seedMenuItem(t, db, 1, "Klasik Burger", enums.MenuCategoryMain, true)
	seedMenuItem(t, db, 1, "Sezar Salata", enums.MenuCategorySalad, true)
	seedMenuItem(t, db, 1, "Cheesecake", enums.MenuCategoryDessert, true)

	rows, err := repo.ListByRestaurantAndCategory(context.Background(), 1, enums.MenuCategorySalad)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Sezar Salata", rows[0].Name)
}

func TestRepositoryFindByIDExcludesUnavailable(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	available := seedMenuItem(t, db, 1, "Klasik Burger", enums.MenuCategoryMain, true)
	unavailable := seedMenuItem(t, db, 1, "Tükenen Menü", enums.MenuCategoryMain, false)

	found, err := repo.FindByID(context.Background(), available.ID)
	require.NoError(t, err)
	assert.Equal(t, "Klasik Burger", found.Name)

	_, err = repo.FindByID(context.Background(), unavailable.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
