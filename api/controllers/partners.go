package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/polattozlu/munch-gokhan/api/responses"
	"github.com/polattozlu/munch-gokhan/api/validators"
	onboardingsvc "github.com/polattozlu/munch-gokhan/internal/onboarding"
	"github.com/polattozlu/munch-gokhan/pkg/enums"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
)

type partnerApplicationRequest struct {
	RestaurantName string `json:"restaurantName" validate:"required,min=2"`
	OwnerName      string `json:"ownerName" validate:"required,min=2"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Address        string `json:"address" validate:"required,min=10"`
	Cuisine        string `json:"cuisine" validate:"required"`
	Description    string `json:"description" validate:"max=2000"`
}

// PartnerApplicationSubmit receives a restaurant onboarding application.
func PartnerApplicationSubmit(svc onboardingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "onboarding service unavailable"))
			return
		}

		var payload partnerApplicationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		application, err := svc.Submit(r.Context(), onboardingsvc.SubmitInput{
			RestaurantName: payload.RestaurantName,
			OwnerName:      payload.OwnerName,
			Phone:          payload.Phone,
			Email:          payload.Email,
			Address:        payload.Address,
			Cuisine:        payload.Cuisine,
			Description:    payload.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, application)
	}
}

// PartnerApplicationList returns applications, optionally filtered by ?status=.
func PartnerApplicationList(svc onboardingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "onboarding service unavailable"))
			return
		}

		rows, err := svc.List(r.Context(), enums.ApplicationStatus(validators.SanitizeString(r.URL.Query().Get("status"), 20)))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

type applicationDecisionRequest struct {
	Approve bool `json:"approve"`
}

// PartnerApplicationDecision approves or rejects a pending application.
func PartnerApplicationDecision(svc onboardingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "onboarding service unavailable"))
			return
		}

		id, err := validators.ParsePathID(chi.URLParam(r, "applicationId"), "applicationId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload applicationDecisionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		application, err := svc.Decide(r.Context(), id, payload.Approve)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, application)
	}
}
