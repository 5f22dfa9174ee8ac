package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/polattozlu/munch-gokhan/api/responses"
	"github.com/polattozlu/munch-gokhan/api/validators"
	deliverysvc "github.com/polattozlu/munch-gokhan/internal/delivery"
	restaurantsvc "github.com/polattozlu/munch-gokhan/internal/restaurants"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
	"github.com/polattozlu/munch-gokhan/pkg/types"
)

// RestaurantList returns active restaurants, optionally filtered by ?search=.
func RestaurantList(svc restaurantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "restaurants service unavailable"))
			return
		}

		query := validators.SanitizeString(r.URL.Query().Get("search"), 120)
		rows, err := svc.Search(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// RestaurantDetail returns a single active restaurant.
func RestaurantDetail(svc restaurantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "restaurants service unavailable"))
			return
		}

		id, err := validators.ParsePathID(chi.URLParam(r, "restaurantId"), "restaurantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

type rankedRequest struct {
	Location struct {
		Latitude  float64 `json:"latitude" validate:"required"`
		Longitude float64 `json:"longitude" validate:"required"`
		Address   string  `json:"address"`
		District  string  `json:"district"`
		City      string  `json:"city"`
	} `json:"location" validate:"required"`
	IDs []int64 `json:"ids"`
}

// RestaurantsRanked estimates distance, time, and fee for the user's location
// and returns restaurants ordered nearest first.
func RestaurantsRanked(svc deliverysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		var payload rankedRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user := types.Location{
			Latitude:  payload.Location.Latitude,
			Longitude: payload.Location.Longitude,
			Address:   payload.Location.Address,
			District:  payload.Location.District,
			City:      payload.Location.City,
		}
		ranked, err := svc.Rank(r.Context(), user, payload.IDs)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ranked)
	}
}
