package cart

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
)

type directoryFunc func(ctx context.Context, restaurantID int64) (string, error)

func (fn directoryFunc) GetName(ctx context.Context, restaurantID int64) (string, error) {
	return fn(ctx, restaurantID)
}

func newTestService(t *testing.T, store Store, names map[int64]string) Service {
	t.Helper()
	if store == nil {
		store = NewMemoryStore()
	}
	logg := logger.New(logger.Options{ServiceName: "cart-test", Output: io.Discard})
	svc, err := NewService(store, directoryFunc(func(_ context.Context, id int64) (string, error) {
		if name, ok := names[id]; ok {
			return name, nil
		}
		return "", nil
	}), logg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func line(itemID, restaurantID int64, name, price string) Line {
	return Line{
		ItemID:       itemID,
		Name:         name,
		UnitPrice:    decimal.RequireFromString(price),
		RestaurantID: restaurantID,
	}
}

func TestAddItemSameRestaurantAccumulates(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("repeat add: %v", err)
	}
	snap, err := svc.AddItem(ctx, "sess", line(2, 5, "Ayran", "12.00"), "")
	if err != nil {
		t.Fatalf("second item: %v", err)
	}

	if snap.TotalItems != 3 {
		t.Fatalf("expected 3 total items, got %d", snap.TotalItems)
	}
	if snap.ConfirmationRequired {
		t.Fatal("same-restaurant adds must not raise a switch prompt")
	}
	if snap.RestaurantID == nil || *snap.RestaurantID != 5 {
		t.Fatalf("unexpected cart restaurant %v", snap.RestaurantID)
	}
}

func TestAddItemConflictLeavesCartUntouched(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, map[int64]string{5: "Kebapçı Halil", 6: "Pizza Roma"})
	ctx := context.Background()

	before, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), "")
	if err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	snap, err := svc.AddItem(ctx, "sess", line(9, 6, "Margherita", "80.00"), "")
	if err != nil {
		t.Fatalf("conflicting add: %v", err)
	}

	if !snap.ConfirmationRequired || snap.Switch == nil {
		t.Fatal("expected a switch prompt")
	}
	if snap.Switch.CurrentRestaurantName != "Kebapçı Halil" {
		t.Fatalf("unexpected current name %q", snap.Switch.CurrentRestaurantName)
	}
	if snap.Switch.NewRestaurantName != "Pizza Roma" {
		t.Fatalf("unexpected new name %q", snap.Switch.NewRestaurantName)
	}
	if snap.TotalItems != before.TotalItems {
		t.Fatalf("committed cart changed: %d items", snap.TotalItems)
	}
	if snap.RestaurantID == nil || *snap.RestaurantID != 5 {
		t.Fatalf("cart restaurant changed to %v", snap.RestaurantID)
	}
}

func TestAddItemConflictFallbackNames(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	snap, err := svc.AddItem(ctx, "sess", line(9, 6, "Margherita", "80.00"), "")
	if err != nil {
		t.Fatalf("conflicting add: %v", err)
	}

	if snap.Switch.CurrentRestaurantName != FallbackCurrentRestaurantName {
		t.Fatalf("unexpected fallback %q", snap.Switch.CurrentRestaurantName)
	}
	if snap.Switch.NewRestaurantName != FallbackNewRestaurantName {
		t.Fatalf("unexpected fallback %q", snap.Switch.NewRestaurantName)
	}
}

func TestConfirmSwitchReplacesCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	if _, err := svc.AddItem(ctx, "sess", line(9, 6, "Margherita", "80.00"), "Pizza Roma"); err != nil {
		t.Fatalf("conflicting add: %v", err)
	}

	snap, err := svc.ConfirmSwitch(ctx, "sess")
	if err != nil {
		t.Fatalf("confirm switch: %v", err)
	}
	if len(snap.Items) != 1 || snap.Items[0].ItemID != 9 || snap.Items[0].Quantity != 1 {
		t.Fatalf("unexpected cart after confirm: %+v", snap.Items)
	}
	if snap.RestaurantID == nil || *snap.RestaurantID != 6 {
		t.Fatalf("unexpected restaurant after confirm: %v", snap.RestaurantID)
	}
	if snap.ConfirmationRequired {
		t.Fatal("confirmation flag must clear after confirm")
	}
}

func TestConfirmSwitchWithoutPending(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	_, err := svc.ConfirmSwitch(context.Background(), "sess")
	if err == nil {
		t.Fatal("expected state conflict")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCancelSwitchPreservesCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	before, err := svc.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}

	if _, err := svc.AddItem(ctx, "sess", line(9, 6, "Margherita", "80.00"), ""); err != nil {
		t.Fatalf("conflicting add: %v", err)
	}
	after, err := svc.CancelSwitch(ctx, "sess")
	if err != nil {
		t.Fatalf("cancel switch: %v", err)
	}

	if after.ConfirmationRequired || after.Switch != nil {
		t.Fatal("confirmation flag must clear after cancel")
	}
	beforeJSON, _ := json.Marshal(before.Items)
	afterJSON, _ := json.Marshal(after.Items)
	if string(beforeJSON) != string(afterJSON) {
		t.Fatalf("cart changed on cancel: %s vs %s", beforeJSON, afterJSON)
	}
}

func TestAddItemMissingRestaurantIDIsNoop(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	snap, err := svc.AddItem(ctx, "sess", Line{ItemID: 1, Name: "Adana Kebap", UnitPrice: decimal.RequireFromString("45.00")}, "")
	if err != nil {
		t.Fatalf("add without restaurant: %v", err)
	}
	if len(snap.Items) != 0 || snap.ConfirmationRequired {
		t.Fatalf("expected untouched empty cart, got %+v", snap)
	}
}

func TestRemoveItemIdempotentAtZero(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	snap, err := svc.RemoveItem(ctx, "sess", 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(snap.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", snap.Items)
	}

	snap, err = svc.RemoveItem(ctx, "sess", 1)
	if err != nil {
		t.Fatalf("repeat remove: %v", err)
	}
	if len(snap.Items) != 0 || snap.TotalItems != 0 {
		t.Fatalf("repeat remove mutated cart: %+v", snap)
	}
}

func TestRemoveItemDecrementsFirst(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("repeat add: %v", err)
	}

	snap, err := svc.RemoveItem(ctx, "sess", 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(snap.Items) != 1 || snap.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %+v", snap.Items)
	}
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	snap, err := svc.UpdateQuantity(ctx, "sess", 1, 4)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if snap.Items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", snap.Items[0].Quantity)
	}

	snap, err = svc.UpdateQuantity(ctx, "sess", 1, 0)
	if err != nil {
		t.Fatalf("zero quantity: %v", err)
	}
	if len(snap.Items) != 0 {
		t.Fatalf("expected removal at zero, got %+v", snap.Items)
	}
}

func TestTotalPrice(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	snap, err := svc.UpdateQuantity(ctx, "sess", 1, 2)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}

	if !snap.TotalPrice.Equal(decimal.RequireFromString("90.00")) {
		t.Fatalf("expected 90.00, got %s", snap.TotalPrice)
	}
}

func TestItemQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	qty, err := svc.ItemQuantity(ctx, "sess", 1)
	if err != nil {
		t.Fatalf("item quantity: %v", err)
	}
	if qty != 1 {
		t.Fatalf("expected 1, got %d", qty)
	}

	qty, err = svc.ItemQuantity(ctx, "sess", 42)
	if err != nil {
		t.Fatalf("absent item: %v", err)
	}
	if qty != 0 {
		t.Fatalf("expected 0 for absent item, got %d", qty)
	}
}

func TestLoadDropsInvalidEntries(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	payload := `[{"id":1,"name":"Adana Kebap","price":"45.00","quantity":2,"restaurantId":5},` +
		`{"id":2,"name":"Ayran","price":"12.00","quantity":1}]`
	if err := store.Save(context.Background(), "sess", []byte(payload)); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	svc := newTestService(t, store, nil)
	snap, err := svc.Get(context.Background(), "sess")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(snap.Items) != 1 || snap.Items[0].ItemID != 1 {
		t.Fatalf("expected invalid entry dropped, got %+v", snap.Items)
	}
}

func TestLoadDiscardsCorruptPayload(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()
	if err := store.Save(ctx, "sess", []byte("{not json")); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	svc := newTestService(t, store, nil)
	snap, err := svc.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(snap.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", snap.Items)
	}

	data, err := store.Load(ctx, "sess")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if data != nil {
		t.Fatalf("expected corrupt entry removed, got %q", data)
	}
}

func TestClearErasesPersistedState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	svc := newTestService(t, store, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", line(1, 5, "Adana Kebap", "45.00"), ""); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	if err := svc.Clear(ctx, "sess"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	data, err := store.Load(ctx, "sess")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if data != nil {
		t.Fatalf("expected stored entry removed, got %q", data)
	}
}

func TestMissingCartKeyRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil)
	_, err := svc.Get(context.Background(), " ")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}
