package reviews

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	"github.com/polattozlu/munch-gokhan/pkg/pagination"
)

// listReviewsParams configures the keyset page a list query returns.
type listReviewsParams struct {
	RestaurantID int64
	Limit        int
	After        *reviewCursor
}

// reviewCursor is the decoded keyset position within a restaurant's reviews.
type reviewCursor struct {
	CreatedAt time.Time
	ID        int64
}

// Repository reads and writes review rows.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListByRestaurant(ctx context.Context, params listReviewsParams) ([]models.Review, *reviewCursor, error)
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	AggregateForRestaurant(ctx context.Context, restaurantID int64) (sum int64, count int64, err error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a reviews repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListByRestaurant(ctx context.Context, params listReviewsParams) ([]models.Review, *reviewCursor, error) {
	limit := pagination.LimitWithBuffer(params.Limit)
	normalized := pagination.NormalizeLimit(params.Limit)

	query := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("restaurant_id = ?", params.RestaurantID)
	if params.After != nil {
		query = query.Where(
			"created_at < ? OR (created_at = ? AND id < ?)",
			params.After.CreatedAt, params.After.CreatedAt, params.After.ID,
		)
	}

	var rows []models.Review
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	if len(rows) > normalized {
		next := rows[normalized]
		rows = rows[:normalized]
		return rows, &reviewCursor{CreatedAt: next.CreatedAt, ID: next.ID}, nil
	}
	return rows, nil, nil
}

func (r *repository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (r *repository) AggregateForRestaurant(ctx context.Context, restaurantID int64) (int64, int64, error) {
	var agg struct {
		Sum   int64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(SUM(rating), 0) AS sum, COUNT(*) AS count").
		Where("restaurant_id = ?", restaurantID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}
	return agg.Sum, agg.Count, nil
}
