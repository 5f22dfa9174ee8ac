package restaurants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
)

// Service exposes the restaurant directory used by listings, the cart's
// switch prompt, and the onboarding approval flow.
type Service interface {
	List(ctx context.Context) ([]models.Restaurant, error)
	Search(ctx context.Context, query string) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*models.Restaurant, error)
	GetName(ctx context.Context, restaurantID int64) (string, error)
	UpdateRatingTx(ctx context.Context, tx *gorm.DB, id int64, rating float64, totalReviews int) error
	CreateTx(ctx context.Context, tx *gorm.DB, restaurant *models.Restaurant) (*models.Restaurant, error)
}

type service struct {
	repo Repository
}

// NewService builds the restaurants service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("restaurants repository required")
	}
	return &service{repo: repo}, nil
}

// List returns all active restaurants in their natural order.
func (s *service) List(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list restaurants")
	}
	return rows, nil
}

// Search matches active restaurants by name or cuisine, case-insensitive.
// A blank query behaves like List.
func (s *service) Search(ctx context.Context, query string) ([]models.Restaurant, error) {
	if strings.TrimSpace(query) == "" {
		return s.List(ctx)
	}
	rows, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search restaurants")
	}
	return rows, nil
}

// GetByID returns an active restaurant or not-found.
func (s *service) GetByID(ctx context.Context, id int64) (*models.Restaurant, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required")
	}
	row, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "restaurant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load restaurant")
	}
	return row, nil
}

// GetName resolves a display name for the cart's switch prompt. Lookup
// failures surface as errors so the caller can fall back to a placeholder.
func (s *service) GetName(ctx context.Context, restaurantID int64) (string, error) {
	row, err := s.repo.FindActiveByID(ctx, restaurantID)
	if err != nil {
		return "", err
	}
	return row.Name, nil
}

// UpdateRatingTx writes a recomputed review aggregate inside the caller's
// transaction so the review row and the aggregate land together.
func (s *service) UpdateRatingTx(ctx context.Context, tx *gorm.DB, id int64, rating float64, totalReviews int) error {
	return s.repo.WithTx(tx).UpdateRating(ctx, id, rating, totalReviews)
}

// CreateTx opens a restaurant row inside the caller's transaction. Used by
// the onboarding approval flow.
func (s *service) CreateTx(ctx context.Context, tx *gorm.DB, restaurant *models.Restaurant) (*models.Restaurant, error) {
	return s.repo.WithTx(tx).Create(ctx, restaurant)
}
