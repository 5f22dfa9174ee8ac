package delivery

import (
	"context"

	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
)

// LocationRepository reads the static restaurant reference coordinates.
type LocationRepository interface {
	GetByID(ctx context.Context, restaurantID int64) (*models.RestaurantLocation, error)
	GetByIDs(ctx context.Context, restaurantIDs []int64) (map[int64]models.RestaurantLocation, error)
	ListIDs(ctx context.Context) ([]int64, error)
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository builds a location repository bound to the provided DB.
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) GetByID(ctx context.Context, restaurantID int64) (*models.RestaurantLocation, error) {
	var location models.RestaurantLocation
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) GetByIDs(ctx context.Context, restaurantIDs []int64) (map[int64]models.RestaurantLocation, error) {
	out := make(map[int64]models.RestaurantLocation, len(restaurantIDs))
	if len(restaurantIDs) == 0 {
		return out, nil
	}

	var rows []models.RestaurantLocation
	err := r.db.WithContext(ctx).
		Where("restaurant_id IN ?", restaurantIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.RestaurantID] = row
	}
	return out, nil
}

func (r *locationRepository) ListIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&models.RestaurantLocation{}).
		Order("restaurant_id ASC").
		Pluck("restaurant_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
