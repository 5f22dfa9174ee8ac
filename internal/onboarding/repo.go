package onboarding

import (
	"context"

	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	"github.com/polattozlu/munch-gokhan/pkg/enums"
)

// Repository reads and writes restaurant applications.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, application *models.RestaurantApplication) (*models.RestaurantApplication, error)
	FindByID(ctx context.Context, id int64) (*models.RestaurantApplication, error)
	List(ctx context.Context, status enums.ApplicationStatus) ([]models.RestaurantApplication, error)
	UpdateStatus(ctx context.Context, id int64, status enums.ApplicationStatus) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an onboarding repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, application *models.RestaurantApplication) (*models.RestaurantApplication, error) {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		return nil, err
	}
	return application, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.RestaurantApplication, error) {
	var row models.RestaurantApplication
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) List(ctx context.Context, status enums.ApplicationStatus) ([]models.RestaurantApplication, error) {
	query := r.db.WithContext(ctx).Model(&models.RestaurantApplication{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var rows []models.RestaurantApplication
	if err := query.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status enums.ApplicationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.RestaurantApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
