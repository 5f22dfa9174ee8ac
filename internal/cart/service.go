package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
)

type restaurantDirectory interface {
	GetName(ctx context.Context, restaurantID int64) (string, error)
}

// Service owns the per-session cart state: the ordered line collection, the
// single-restaurant invariant, and the transient switch confirmation.
type Service interface {
	Get(ctx context.Context, key string) (*Snapshot, error)
	AddItem(ctx context.Context, key string, item Line, restaurantName string) (*Snapshot, error)
	RemoveItem(ctx context.Context, key string, itemID int64) (*Snapshot, error)
	UpdateQuantity(ctx context.Context, key string, itemID int64, quantity int) (*Snapshot, error)
	Clear(ctx context.Context, key string) error
	ItemQuantity(ctx context.Context, key string, itemID int64) (int, error)
	ConfirmSwitch(ctx context.Context, key string) (*Snapshot, error)
	CancelSwitch(ctx context.Context, key string) (*Snapshot, error)
}

type service struct {
	store     Store
	directory restaurantDirectory
	logger    *logger.Logger

	mu      sync.Mutex
	pending map[string]*PendingSwitch
}

// NewService builds the cart manager backed by the provided store.
func NewService(store Store, directory restaurantDirectory, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if directory == nil {
		return nil, fmt.Errorf("restaurant directory required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		store:     store,
		directory: directory,
		logger:    logg,
		pending:   map[string]*PendingSwitch{},
	}, nil
}

// Get returns the committed cart plus any pending switch prompt.
func (s *service) Get(ctx context.Context, key string) (*Snapshot, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	lines, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.snapshot(key, lines), nil
}

// AddItem appends or increments a line. When the item belongs to a different
// restaurant than the current cart, the committed cart stays untouched and a
// pending switch is recorded instead. A missing restaurant id is a logged
// no-op, matching the storefront's silent rejection.
func (s *service) AddItem(ctx context.Context, key string, item Line, restaurantName string) (*Snapshot, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	lines, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}

	if item.RestaurantID == 0 {
		ctx = s.logger.WithCartKey(ctx, key)
		s.logger.Warn(ctx, "add item skipped: missing restaurant id")
		return s.snapshot(key, lines), nil
	}

	if current := cartRestaurantID(lines); current != nil && *current != item.RestaurantID {
		prompt := &PendingSwitch{
			CurrentRestaurantName: s.resolveName(ctx, *current, "", FallbackCurrentRestaurantName),
			NewRestaurantName:     s.resolveName(ctx, item.RestaurantID, restaurantName, FallbackNewRestaurantName),
			PendingItem:           item,
		}
		s.mu.Lock()
		s.pending[key] = prompt
		s.mu.Unlock()
		return s.snapshot(key, lines), nil
	}

	updated := false
	for i := range lines {
		if lines[i].ItemID == item.ItemID {
			lines[i].Quantity++
			updated = true
			break
		}
	}
	if !updated {
		item.Quantity = 1
		lines = append(lines, item)
	}

	if err := s.save(ctx, key, lines); err != nil {
		return nil, err
	}
	return s.snapshot(key, lines), nil
}

// RemoveItem decrements the line's quantity, removing the line at one.
// Absent items are a no-op.
func (s *service) RemoveItem(ctx context.Context, key string, itemID int64) (*Snapshot, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	lines, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}

	changed := false
	out := lines[:0]
	for _, line := range lines {
		if line.ItemID == itemID {
			changed = true
			if line.Quantity > 1 {
				line.Quantity--
				out = append(out, line)
			}
			continue
		}
		out = append(out, line)
	}
	if !changed {
		return s.snapshot(key, lines), nil
	}

	if err := s.save(ctx, key, out); err != nil {
		return nil, err
	}
	return s.snapshot(key, out), nil
}

// UpdateQuantity sets a line's quantity directly; zero or less removes it.
func (s *service) UpdateQuantity(ctx context.Context, key string, itemID int64, quantity int) (*Snapshot, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	lines, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}

	changed := false
	out := lines[:0]
	for _, line := range lines {
		if line.ItemID == itemID {
			changed = true
			if quantity > 0 {
				line.Quantity = quantity
				out = append(out, line)
			}
			continue
		}
		out = append(out, line)
	}
	if !changed {
		return s.snapshot(key, lines), nil
	}

	if err := s.save(ctx, key, out); err != nil {
		return nil, err
	}
	return s.snapshot(key, out), nil
}

// Clear empties the cart and erases the persisted entry.
func (s *service) Clear(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := s.store.Clear(ctx, key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	s.dropPending(key)
	return nil
}

// ItemQuantity reports the quantity held for an item, zero when absent.
func (s *service) ItemQuantity(ctx context.Context, key string, itemID int64) (int, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}
	lines, err := s.load(ctx, key)
	if err != nil {
		return 0, err
	}
	return itemQuantity(lines, itemID), nil
}

// ConfirmSwitch applies the pending switch: the cart becomes a single line
// holding the pending item at quantity one.
func (s *service) ConfirmSwitch(ctx context.Context, key string) (*Snapshot, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	s.mu.Lock()
	prompt, ok := s.pending[key]
	if ok {
		delete(s.pending, key)
	}
	s.mu.Unlock()

	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "no pending restaurant switch to confirm")
	}

	item := prompt.PendingItem
	item.Quantity = 1
	lines := []Line{item}
	if err := s.save(ctx, key, lines); err != nil {
		return nil, err
	}
	return s.snapshot(key, lines), nil
}

// CancelSwitch discards the pending switch and leaves the committed cart
// untouched. Cancelling with nothing pending is a no-op.
func (s *service) CancelSwitch(ctx context.Context, key string) (*Snapshot, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	s.dropPending(key)

	lines, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.snapshot(key, lines), nil
}

func (s *service) snapshot(key string, lines []Line) *Snapshot {
	s.mu.Lock()
	prompt := s.pending[key]
	s.mu.Unlock()

	if lines == nil {
		lines = []Line{}
	}
	return &Snapshot{
		Items:                lines,
		TotalItems:           totalItems(lines),
		TotalPrice:           totalPrice(lines),
		RestaurantID:         cartRestaurantID(lines),
		ConfirmationRequired: prompt != nil,
		Switch:               prompt,
	}
}

// load deserializes the stored cart. A corrupt payload is discarded and the
// key removed rather than failing the request; invalid entries are dropped.
func (s *service) load(ctx context.Context, key string) ([]Line, error) {
	data, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	if len(data) == 0 {
		return nil, nil
	}

	var stored []Line
	if err := json.Unmarshal(data, &stored); err != nil {
		ctx = s.logger.WithCartKey(ctx, key)
		s.logger.Warn(ctx, "discarding unparseable stored cart")
		if clearErr := s.store.Clear(ctx, key); clearErr != nil {
			s.logger.Error(ctx, "clearing corrupt cart entry", clearErr)
		}
		return nil, nil
	}

	lines := stored[:0]
	for _, line := range stored {
		if line.valid() {
			lines = append(lines, line)
		}
	}
	if len(lines) < len(stored) {
		ctx = s.logger.WithCartKey(ctx, key)
		s.logger.Warn(ctx, fmt.Sprintf("dropped %d invalid cart entries", len(stored)-len(lines)))
	}
	return lines, nil
}

func (s *service) save(ctx context.Context, key string, lines []Line) error {
	if len(lines) == 0 {
		if err := s.store.Clear(ctx, key); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}
		return nil
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialize cart")
	}
	if err := s.store.Save(ctx, key, data); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

func (s *service) dropPending(key string) {
	s.mu.Lock()
	delete(s.pending, key)
	s.mu.Unlock()
}

func (s *service) resolveName(ctx context.Context, restaurantID int64, provided, fallback string) string {
	if trimmed := strings.TrimSpace(provided); trimmed != "" {
		return trimmed
	}
	name, err := s.directory.GetName(ctx, restaurantID)
	if err != nil || strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session key is required")
	}
	return nil
}
