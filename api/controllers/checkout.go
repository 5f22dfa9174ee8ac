package controllers

import (
	"net/http"

	"github.com/polattozlu/munch-gokhan/api/middleware"
	"github.com/polattozlu/munch-gokhan/api/responses"
	"github.com/polattozlu/munch-gokhan/api/validators"
	ordersvc "github.com/polattozlu/munch-gokhan/internal/orders"
	"github.com/polattozlu/munch-gokhan/pkg/enums"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/iyzico"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
	"github.com/polattozlu/munch-gokhan/pkg/types"
)

type checkoutRequest struct {
	UserID          string                `json:"userId" validate:"required"`
	CustomerName    string                `json:"customerName"`
	CustomerEmail   string                `json:"customerEmail" validate:"omitempty,email"`
	DeliveryAddress types.DeliveryAddress `json:"deliveryAddress" validate:"required"`
	PaymentMethod   string                `json:"paymentMethod" validate:"required"`
	Card            *checkoutCard         `json:"card"`
}

type checkoutCard struct {
	HolderName string `json:"holderName"`
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

// Checkout places an order from the session cart. The cart survives every
// failure and is emptied only once the order is stored.
func Checkout(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParsePaymentMethod(payload.PaymentMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method").
					WithDetails(map[string]any{"paymentMethod": payload.PaymentMethod}))
			return
		}

		input := ordersvc.CheckoutInput{
			CartKey:         middleware.CartKeyFromContext(r.Context()),
			UserID:          payload.UserID,
			CustomerName:    payload.CustomerName,
			CustomerEmail:   payload.CustomerEmail,
			DeliveryAddress: payload.DeliveryAddress,
			PaymentMethod:   method,
		}
		if payload.Card != nil {
			input.Card = &iyzico.PaymentCard{
				CardHolderName: payload.Card.HolderName,
				CardNumber:     payload.Card.Number,
				CVC:            payload.Card.CVC,
			}
			input.CardExpiry = payload.Card.Expiry
		}

		order, err := svc.Checkout(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
