package restaurants

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
)

func setupRestaurantsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS restaurants (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  cuisine TEXT NOT NULL,
  image TEXT NOT NULL DEFAULT '',
  rating REAL NOT NULL DEFAULT 0,
  total_reviews INTEGER NOT NULL DEFAULT 0,
  delivery_time TEXT NOT NULL DEFAULT '',
  delivery_fee NUMERIC NOT NULL DEFAULT 0,
  description TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, name, cuisine string, active bool) *models.Restaurant {
	t.Helper()

	row := &models.Restaurant{
		Name:         name,
		Cuisine:      cuisine,
		Rating:       4.5,
		TotalReviews: 10,
		DeliveryTime: "20-30 dk",
		DeliveryFee:  decimal.RequireFromString("5.00"),
		IsActive:     active,
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func TestRepositoryListActiveFiltersInactive(t *testing.T) {
	db := setupRestaurantsTestDB(t)
	repo := NewRepository(db)

	seedRestaurant(t, db, "Kebap Ustası", "Türk", true)
	seedRestaurant(t, db, "Pizza Köşesi", "İtalyan", true)
	seedRestaurant(t, db, "Kapalı Mutfak", "Türk", false)

	rows, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Kebap Ustası", rows[0].Name)
	assert.Equal(t, "Pizza Köşesi", rows[1].Name)
}

func TestRepositorySearchMatchesNameAndCuisine(t *testing.T) {
	db := setupRestaurantsTestDB(t)
	repo := NewRepository(db)

	seedRestaurant(t, db, "Kebap Ustası", "Türk", true)
	seedRestaurant(t, db, "Pizza Köşesi", "İtalyan", true)
	seedRestaurant(t, db, "Sushi Evi", "Japon", true)

	byName, err := repo.Search(context.Background(), "pizza")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Pizza Köşesi", byName[0].Name)

	byCuisine, err := repo.Search(context.Background(), "japon")
	require.NoError(t, err)
	require.Len(t, byCuisine, 1)
	assert.Equal(t, "Sushi Evi", byCuisine[0].Name)

	none, err := repo.Search(context.Background(), "sokak lezzeti")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepositoryFindActiveByID(t *testing.T) {
	db := setupRestaurantsTestDB(t)
	repo := NewRepository(db)

	active := seedRestaurant(t, db, "Kebap Ustası", "Türk", true)
	inactive := seedRestaurant(t, db, "Kapalı Mutfak", "Türk", false)

	found, err := repo.FindActiveByID(context.Background(), active.ID)
	require.NoError(t, err)
	assert.Equal(t, active.Name, found.Name)

	_, err = repo.FindActiveByID(context.Background(), inactive.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryUpdateRating(t *testing.T) {
	db := setupRestaurantsTestDB(t)
	repo := NewRepository(db)

	row := seedRestaurant(t, db, "Kebap Ustası", "Türk", true)
	require.NoError(t, repo.UpdateRating(context.Background(), row.ID, 4.8, 11))

	reloaded, err := repo.FindActiveByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.8, reloaded.Rating)
	assert.Equal(t, 11, reloaded.TotalReviews)
}
