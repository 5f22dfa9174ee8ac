package controllers

import (
	"net/http"

	"github.com/polattozlu/munch-gokhan/api/responses"
	"github.com/polattozlu/munch-gokhan/api/validators"
	deliverysvc "github.com/polattozlu/munch-gokhan/internal/delivery"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
)

type resolveLocationRequest struct {
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lng"`
}

// LocationResolve turns device coordinates into a district address. Missing
// coordinates yield a null location, never an error.
func LocationResolve(svc deliverysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		var payload resolveLocationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.ResolveLocation(r.Context(), payload.Latitude, payload.Longitude))
	}
}

type geocodeRequest struct {
	Address string `json:"address"`
}

// LocationGeocode resolves a free-text address into simulated coordinates. A
// blank address yields a null location.
func LocationGeocode(svc deliverysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		var payload geocodeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Geocode(r.Context(), payload.Address))
	}
}
