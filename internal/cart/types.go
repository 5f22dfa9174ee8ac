package cart

import (
	"github.com/shopspring/decimal"
)

// Fallback display names used when the restaurant directory cannot resolve
// a name for the switch prompt.
const (
	FallbackCurrentRestaurantName = "Mevcut Restoran"
	FallbackNewRestaurantName     = "Yeni Restoran"
)

// Line is a single cart entry. The JSON shape doubles as the persisted
// layout: a stored cart is a JSON array of these objects.
type Line struct {
	ItemID       int64           `json:"id"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	RestaurantID int64           `json:"restaurantId"`
	Image        string          `json:"image,omitempty"`
	Category     string          `json:"category,omitempty"`
}

func (l Line) valid() bool {
	return l.ItemID != 0 &&
		l.Name != "" &&
		l.RestaurantID != 0 &&
		l.UnitPrice.IsPositive() &&
		l.Quantity > 0
}

// PendingSwitch is the transient conflict record created when an add targets
// a different restaurant than the current cart. It is never persisted.
type PendingSwitch struct {
	CurrentRestaurantName string `json:"currentRestaurantName"`
	NewRestaurantName     string `json:"newRestaurantName"`
	PendingItem           Line   `json:"pendingItem"`
}

// Snapshot is the full cart view returned from every operation. A non-nil
// Switch together with ConfirmationRequired signals the interactive
// restaurant-switch flow; it is a first-class response field, not an error.
type Snapshot struct {
	Items                []Line          `json:"items"`
	TotalItems           int             `json:"totalItems"`
	TotalPrice           decimal.Decimal `json:"totalPrice"`
	RestaurantID         *int64          `json:"restaurantId"`
	ConfirmationRequired bool            `json:"confirmationRequired"`
	Switch               *PendingSwitch  `json:"pendingSwitch,omitempty"`
}

func totalItems(lines []Line) int {
	sum := 0
	for _, line := range lines {
		sum += line.Quantity
	}
	return sum
}

func totalPrice(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum
}

func itemQuantity(lines []Line, itemID int64) int {
	for _, line := range lines {
		if line.ItemID == itemID {
			return line.Quantity
		}
	}
	return 0
}

func cartRestaurantID(lines []Line) *int64 {
	if len(lines) == 0 {
		return nil
	}
	id := lines[0].RestaurantID
	return &id
}
