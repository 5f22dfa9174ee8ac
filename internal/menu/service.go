package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	"github.com/polattozlu/munch-gokhan/pkg/enums"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
)

// restaurantChecker verifies the target restaurant exists and is active.
type restaurantChecker interface {
	GetByID(ctx context.Context, id int64) (*models.Restaurant, error)
}

// Service exposes a restaurant's menu to the storefront.
type Service interface {
	ListForRestaurant(ctx context.Context, restaurantID int64, category string) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
}

type service struct {
	repo        Repository
	restaurants restaurantChecker
}

// NewService builds the menu service.
func NewService(repo Repository, restaurants restaurantChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("menu repository required")
	}
	if restaurants == nil {
		return nil, fmt.Errorf("restaurants service required")
	}
	return &service{repo: repo, restaurants: restaurants}, nil
}

// ListForRestaurant returns the available items for a restaurant, optionally
// narrowed to one category. A blank category or the all-items pseudo-category
// returns everything.
func (s *service) ListForRestaurant(ctx context.Context, restaurantID int64, category string) ([]models.MenuItem, error) {
	if restaurantID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required")
	}
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(category)
	if trimmed == "" || trimmed == enums.MenuCategoryAll {
		rows, err := s.repo.ListByRestaurant(ctx, restaurantID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
		}
		return rows, nil
	}

	parsed, err := enums.ParseMenuCategory(trimmed)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown menu category").
			WithDetails(map[string]any{"category": trimmed})
	}
	rows, err := s.repo.ListByRestaurantAndCategory(ctx, restaurantID, parsed)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
	}
	return rows, nil
}

// GetByID returns a single available menu item or not-found.
func (s *service) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu item id is required")
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
	}
	return row, nil
}
