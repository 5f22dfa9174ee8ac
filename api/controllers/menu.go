package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/polattozlu/munch-gokhan/api/responses"
	"github.com/polattozlu/munch-gokhan/api/validators"
	menusvc "github.com/polattozlu/munch-gokhan/internal/menu"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
)

// RestaurantMenu returns a restaurant's available items, optionally narrowed
// by ?category=.
func RestaurantMenu(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}

		id, err := validators.ParsePathID(chi.URLParam(r, "restaurantId"), "restaurantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category := validators.SanitizeString(r.URL.Query().Get("category"), 40)
		rows, err := svc.ListForRestaurant(r.Context(), id, category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}
