package orders

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/polattozlu/munch-gokhan/internal/cart"
	"github.com/polattozlu/munch-gokhan/pkg/db/models"
	"github.com/polattozlu/munch-gokhan/pkg/enums"
	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/iyzico"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
	"github.com/polattozlu/munch-gokhan/pkg/types"
)

// The storefront promises delivery half an hour out. Per-restaurant travel
// time is already reflected in the listing estimates.
const defaultDeliveryWindow = 30 * time.Minute

// cartReader is the slice of the cart service checkout needs.
type cartReader interface {
	Get(ctx context.Context, key string) (*cart.Snapshot, error)
	Clear(ctx context.Context, key string) error
}

// restaurantFinder verifies the cart's restaurant still exists and is active.
type restaurantFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Restaurant, error)
}

// paymentGateway charges a card for an order. Cash orders never touch it.
type paymentGateway interface {
	CreatePayment(ctx context.Context, request iyzico.PaymentRequest) (*iyzico.PaymentResponse, error)
}

// CheckoutInput is the placement payload assembled by the checkout endpoint.
type CheckoutInput struct {
	CartKey         string
	UserID          string
	CustomerName    string
	CustomerEmail   string
	DeliveryAddress types.DeliveryAddress
	PaymentMethod   enums.PaymentMethod
	Card            *iyzico.PaymentCard
	CardExpiry      string
}

// Service places and tracks orders.
type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, next enums.OrderStatus) (*models.Order, error)
}

type service struct {
	repo        Repository
	carts       cartReader
	restaurants restaurantFinder
	payments    paymentGateway
	logger      *logger.Logger

	now     func() time.Time
	randInt func(n int) int
}

// Option overrides a service collaborator, used by tests.
type Option func(*service)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithRandInt replaces the order id randomness source.
func WithRandInt(fn func(n int) int) Option {
	return func(s *service) { s.randInt = fn }
}

// NewService builds the orders service.
func NewService(repo Repository, carts cartReader, restaurants restaurantFinder, payments paymentGateway, logg *logger.Logger, opts ...Option) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if restaurants == nil {
		return nil, fmt.Errorf("restaurants service required")
	}
	if payments == nil {
		return nil, fmt.Errorf("payment gateway required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	svc := &service{
		repo:        repo,
		carts:       carts,
		restaurants: restaurants,
		payments:    payments,
		logger:      logg,
		now:         time.Now,
		randInt:     rand.Intn,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Checkout snapshots the cart, validates the payment input, charges the card
// when one is given, and persists the order. The cart is cleared only after
// the order row is stored.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	if err := validateCheckout(input); err != nil {
		return nil, err
	}

	snapshot, err := s.carts.Get(ctx, input.CartKey)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 || snapshot.RestaurantID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}
	if _, err := s.restaurants.GetByID(ctx, *snapshot.RestaurantID); err != nil {
		return nil, err
	}

	order := s.buildOrder(input, snapshot)

	if input.PaymentMethod == enums.PaymentMethodCard {
		if err := s.chargeCard(ctx, order, input); err != nil {
			return nil, err
		}
	}

	if _, err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store order")
	}

	// Placement already succeeded. A failed cart clear only leaves a stale
	// cart behind, so log it instead of failing the order.
	if err := s.carts.Clear(ctx, input.CartKey); err != nil {
		s.logger.Error(ctx, "clear cart after checkout", err)
	}

	logCtx := s.logger.WithFields(ctx, map[string]any{
		"order_id":       order.ID,
		"restaurant_id":  order.RestaurantID,
		"payment_method": order.PaymentMethod.String(),
		"total":          order.Total.StringFixed(2),
	})
	s.logger.Info(logCtx, "order placed")
	return order, nil
}

// GetByID returns a single order with its items.
func (s *service) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return row, nil
}

// ListByUser returns a user's orders, newest first.
func (s *service) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return rows, nil
}

// UpdateStatus moves an order along its lifecycle, rejecting transitions the
// status machine disallows.
func (s *service) UpdateStatus(ctx context.Context, id string, next enums.OrderStatus) (*models.Order, error) {
	if !next.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status").
			WithDetails(map[string]any{"status": next.String()})
	}
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order status transition disallowed").
			WithDetails(map[string]any{
				"from": order.Status.String(),
				"to":   next.String(),
			})
	}
	if err := s.repo.UpdateStatus(ctx, id, next.String()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	order.Status = next
	return order, nil
}

func (s *service) buildOrder(input CheckoutInput, snapshot *cart.Snapshot) *models.Order {
	placedAt := s.now()
	items := make([]models.OrderItem, 0, len(snapshot.Items))
	for _, line := range snapshot.Items {
		items = append(items, models.OrderItem{
			MenuItemID: line.ItemID,
			Name:       line.Name,
			Price:      line.UnitPrice,
			Quantity:   line.Quantity,
		})
	}

	return &models.Order{
		ID:                s.newOrderID(placedAt),
		UserID:            input.UserID,
		RestaurantID:      *snapshot.RestaurantID,
		Items:             items,
		Total:             snapshot.TotalPrice,
		Status:            enums.OrderStatusPreparing,
		PaymentMethod:     input.PaymentMethod,
		DeliveryAddress:   input.DeliveryAddress,
		OrderDate:         placedAt,
		EstimatedDelivery: placedAt.Add(defaultDeliveryWindow),
	}
}

func (s *service) chargeCard(ctx context.Context, order *models.Order, input CheckoutInput) error {
	if input.Card == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "card details are required for card payment")
	}
	if err := iyzico.ValidateCard(*input.Card, input.CardExpiry, s.now()); err != nil {
		return err
	}
	card := *input.Card
	card.ExpireMonth, card.ExpireYear = iyzico.SplitExpiry(input.CardExpiry)

	buyer := iyzico.Buyer{
		ID:      input.UserID,
		Name:    input.CustomerName,
		Email:   input.CustomerEmail,
		Phone:   input.DeliveryAddress.Phone,
		City:    input.DeliveryAddress.City,
		Country: "Turkey",
		Address: input.DeliveryAddress.FullAddress,
		ZipCode: input.DeliveryAddress.ZipCode,
	}
	shipping := iyzico.Address{
		ContactName: input.CustomerName,
		City:        input.DeliveryAddress.City,
		Country:     "Turkey",
		Description: input.DeliveryAddress.FullAddress,
		ZipCode:     input.DeliveryAddress.ZipCode,
	}

	response, err := s.payments.CreatePayment(ctx, iyzico.BuildPaymentRequest(order, card, buyer, shipping))
	if err != nil {
		return err
	}
	if !response.Succeeded() {
		return pkgerrors.New(pkgerrors.CodeDependency, "payment was not accepted")
	}
	return nil
}

func validateCheckout(input CheckoutInput) error {
	if strings.TrimSpace(input.CartKey) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart key is required")
	}
	if strings.TrimSpace(input.UserID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if !input.PaymentMethod.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method").
			WithDetails(map[string]any{"paymentMethod": input.PaymentMethod.String()})
	}
	missing := make([]string, 0, 4)
	if strings.TrimSpace(input.DeliveryAddress.FullAddress) == "" {
		missing = append(missing, "fullAddress")
	}
	if strings.TrimSpace(input.DeliveryAddress.District) == "" {
		missing = append(missing, "district")
	}
	if strings.TrimSpace(input.DeliveryAddress.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(input.DeliveryAddress.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "delivery address is incomplete").
			WithDetails(map[string]any{"missing": missing})
	}
	return nil
}

func (s *service) newOrderID(placedAt time.Time) string {
	return fmt.Sprintf("SIP-%s-%06d", placedAt.Format("20060102"), s.randInt(1_000_000))
}
