package reviews

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
	"github.com/polattozlu/munch-gokhan/pkg/pagination"
)

// ratingUpdater writes the recomputed aggregate back onto the restaurant row.
type ratingUpdater interface {
	GetByID(ctx context.Context, id int64) (*models.Restaurant, error)
	UpdateRatingTx(ctx context.Context, tx *gorm.DB, id int64, rating float64, totalReviews int) error
}

// transactor runs fn inside a database transaction.
type transactor interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// AddReviewInput carries a new customer review.
type AddReviewInput struct {
	RestaurantID int64
	UserID       string
	UserName     string
	Rating       int
	Comment      string
}

// ListResult wraps one page of reviews and the cursor for the next page.
// Cursor is empty when there are no further pages.
type ListResult struct {
	Items  []models.Review `json:"items"`
	Cursor string          `json:"cursor"`
}

// Service exposes restaurant reviews and keeps the restaurant's aggregate
// rating in step with them.
type Service interface {
	ListByRestaurant(ctx context.Context, restaurantID int64, params pagination.Params) (*ListResult, error)
	Add(ctx context.Context, input AddReviewInput) (*models.Review, error)
}

type service struct {
	repo        Repository
	restaurants ratingUpdater
	tx          transactor
	logger      *logger.Logger
}

// NewService builds the reviews service.
func NewService(repo Repository, restaurants ratingUpdater, tx transactor, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reviews repository required")
	}
	if restaurants == nil {
		return nil, fmt.Errorf("restaurants service required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transactor required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, restaurants: restaurants, tx: tx, logger: logg}, nil
}

// ListByRestaurant returns a page of a restaurant's reviews, newest first.
func (s *service) ListByRestaurant(ctx context.Context, restaurantID int64, params pagination.Params) (*ListResult, error) {
	if restaurantID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required")
	}
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	query := listReviewsParams{RestaurantID: restaurantID, Limit: params.Limit}
	if params.Cursor != "" {
		after, err := parseReviewCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		query.After = after
	}

	rows, next, err := s.repo.ListByRestaurant(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}

	cursor := ""
	if next != nil {
		cursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: next.CreatedAt,
			ID:        strconv.FormatInt(next.ID, 10),
		})
	}
	return &ListResult{Items: rows, Cursor: cursor}, nil
}

func parseReviewCursor(raw string) (*reviewCursor, error) {
	decoded, err := pagination.ParseCursor(raw)
	if err != nil || decoded == nil {
		return nil, err
	}
	id, err := strconv.ParseInt(decoded.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cursor id must be numeric")
	}
	return &reviewCursor{CreatedAt: decoded.CreatedAt, ID: id}, nil
}

// Add stores a review and recomputes the restaurant's rating as the average
// of all its reviews, rounded to one decimal.
func (s *service) Add(ctx context.Context, input AddReviewInput) (*models.Review, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := s.restaurants.GetByID(ctx, input.RestaurantID); err != nil {
		return nil, err
	}

	review := &models.Review{
		RestaurantID: input.RestaurantID,
		UserID:       input.UserID,
		UserName:     strings.TrimSpace(input.UserName),
		Rating:       input.Rating,
		Comment:      strings.TrimSpace(input.Comment),
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.Create(ctx, review); err != nil {
			return err
		}
		sum, count, err := repo.AggregateForRestaurant(ctx, input.RestaurantID)
		if err != nil {
			return err
		}
		rating := roundTo1(float64(sum) / float64(count))
		return s.restaurants.UpdateRatingTx(ctx, tx, input.RestaurantID, rating, int(count))
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store review")
	}

	logCtx := s.logger.WithFields(ctx, map[string]any{
		"restaurant_id": input.RestaurantID,
		"review_id":     review.ID,
		"rating":        input.Rating,
	})
	s.logger.Info(logCtx, "review stored")
	return review, nil
}

func validateInput(input AddReviewInput) error {
	if input.RestaurantID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5").
			WithDetails(map[string]any{"rating": input.Rating})
	}
	if strings.TrimSpace(input.UserName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "reviewer name is required")
	}
	return nil
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
