package delivery

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
	"github.com/polattozlu/munch-gokhan/pkg/types"
)

// RankedRestaurant is one row of the distance-sorted listing. Display fields
// carry the storefront's Turkish formatting ("km", "dk", lira sign).
type RankedRestaurant struct {
	RestaurantID int64   `json:"restaurantId"`
	Distance     string  `json:"distance"`
	DeliveryTime string  `json:"deliveryTime"`
	DeliveryFee  string  `json:"deliveryFee"`
	SortOrder    float64 `json:"sortOrder"`
}

// Service turns a user location and a restaurant set into delivery quotes
// and a stable nearest-first ranking, and resolves user locations.
type Service interface {
	Estimate(origin, destination types.Location) Estimate
	Rank(ctx context.Context, user types.Location, restaurantIDs []int64) ([]RankedRestaurant, error)
	ResolveLocation(ctx context.Context, latitude, longitude *float64) *types.Location
	Geocode(ctx context.Context, address string) *types.Location
}

type service struct {
	estimator *Estimator
	geocoder  *Geocoder
	locations LocationRepository
	logger    *logger.Logger
}

// NewService wires the estimator, the simulated geocoder, and the reference
// location source into the ranking service.
func NewService(estimator *Estimator, geocoder *Geocoder, locations LocationRepository, logg *logger.Logger) (Service, error) {
	if estimator == nil {
		return nil, fmt.Errorf("estimator required")
	}
	if geocoder == nil {
		return nil, fmt.Errorf("geocoder required")
	}
	if locations == nil {
		return nil, fmt.Errorf("location repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		estimator: estimator,
		geocoder:  geocoder,
		locations: locations,
		logger:    logg,
	}, nil
}

// Estimate quotes the delivery between two points.
func (s *service) Estimate(origin, destination types.Location) Estimate {
	return s.estimator.Calculate(origin, destination)
}

// Rank computes estimates for every restaurant with a known reference
// location and sorts nearest first. Restaurants without a reference
// location are omitted, consistently across all callers.
func (s *service) Rank(ctx context.Context, user types.Location, restaurantIDs []int64) ([]RankedRestaurant, error) {
	if len(restaurantIDs) == 0 {
		ids, err := s.locations.ListIDs(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list restaurant locations")
		}
		restaurantIDs = ids
	}

	references, err := s.locations.GetByIDs(ctx, restaurantIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load restaurant locations")
	}

	ranked := make([]RankedRestaurant, 0, len(restaurantIDs))
	for _, id := range restaurantIDs {
		reference, ok := references[id]
		if !ok {
			continue
		}
		estimate := s.estimator.Calculate(user, types.Location{
			Latitude:  reference.Latitude,
			Longitude: reference.Longitude,
		})
		ranked = append(ranked, RankedRestaurant{
			RestaurantID: id,
			Distance:     formatNumber(estimate.DistanceKm) + " km",
			DeliveryTime: strconv.Itoa(estimate.DurationMinutes) + " dk",
			DeliveryFee:  "₺" + formatNumber(estimate.DeliveryFee),
			SortOrder:    estimate.DistanceKm,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SortOrder < ranked[j].SortOrder
	})
	return ranked, nil
}

// ResolveLocation handles the device-location path. Missing coordinates are
// a soft "no location" result, never an error; present coordinates are
// reverse geocoded to an approximate address.
func (s *service) ResolveLocation(ctx context.Context, latitude, longitude *float64) *types.Location {
	if latitude == nil || longitude == nil {
		s.logger.Info(ctx, "location resolve without coordinates")
		return nil
	}
	resolved := s.geocoder.ReverseGeocode(*latitude, *longitude)
	return &resolved
}

// Geocode simulates forward geocoding of free-text input.
func (s *service) Geocode(ctx context.Context, address string) *types.Location {
	location := s.geocoder.Geocode(address)
	if location == nil {
		s.logger.Info(ctx, "geocode resolved no location")
	}
	return location
}

// formatNumber renders a float the way the storefront did: no trailing
// zeros, so 0.42 stays "0.42" and 5 becomes "5".
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
