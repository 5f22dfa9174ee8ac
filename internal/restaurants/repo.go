package restaurants

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
)

// Repository reads and writes the restaurant listing rows.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListActive(ctx context.Context) ([]models.Restaurant, error)
	Search(ctx context.Context, query string) ([]models.Restaurant, error)
	FindActiveByID(ctx context.Context, id int64) (*models.Restaurant, error)
	Create(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error)
	UpdateRating(ctx context.Context, id int64, rating float64, totalReviews int) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a restaurants repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListActive(ctx context.Context) ([]models.Restaurant, error) {
	var rows []models.Restaurant
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Search(ctx context.Context, query string) ([]models.Restaurant, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var rows []models.Restaurant
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(cuisine) LIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindActiveByID(ctx context.Context, id int64) (*models.Restaurant, error) {
	var row models.Restaurant
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Create(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	if err := r.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (r *repository) UpdateRating(ctx context.Context, id int64, rating float64, totalReviews int) error {
	return r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":        rating,
			"total_reviews": totalReviews,
		}).Error
}
