package menu

import (
	"context"

	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	"github.com/polattozlu/munch-gokhan/pkg/enums"
)

// Repository reads the menu item rows.
type Repository interface {
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]models.MenuItem, error)
	ListByRestaurantAndCategory(ctx context.Context, restaurantID int64, category enums.MenuCategory) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id int64) (*models.MenuItem, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a menu repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]models.MenuItem, error) {
	var rows []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListByRestaurantAndCategory(ctx context.Context, restaurantID int64, category enums.MenuCategory) ([]models.MenuItem, error) {
	var rows []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND category = ? AND is_available = ?", restaurantID, category, true).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var row models.MenuItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_available = ?", id, true).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
