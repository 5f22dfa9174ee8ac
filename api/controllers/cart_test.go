package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/polattozlu/munch-gokhan/api/middleware"
	cartsvc "github.com/polattozlu/munch-gokhan/internal/cart"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
	"github.com/polattozlu/munch-gokhan/pkg/types"
)

type directoryFunc func(ctx context.Context, restaurantID int64) (string, error)

func (f directoryFunc) GetName(ctx context.Context, restaurantID int64) (string, error) {
	return f(ctx, restaurantID)
}

func newCartRouter(t *testing.T) http.Handler {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "controllers-test", Output: io.Discard})
	directory := directoryFunc(func(ctx context.Context, restaurantID int64) (string, error) {
		if restaurantID == 1 {
			return "Kebap Ustası", nil
		}
		return "Pizza Köşesi", nil
	})
	svc, err := cartsvc.NewService(cartsvc.NewMemoryStore(), directory, logg)
	if err != nil {
		t.Fatalf("new cart service: %v", err)
	}

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.CartSession(logg))
		r.Route("/api/v1/cart", func(r chi.Router) {
			r.Get("/", CartFetch(svc, logg))
			r.Post("/items", CartAddItem(svc, logg))
			r.Delete("/items/{itemId}", CartRemoveItem(svc, logg))
			r.Post("/switch/confirm", CartConfirmSwitch(svc, logg))
			r.Post("/switch/cancel", CartCancelSwitch(svc, logg))
		})
	})
	return r
}

func doCartRequest(t *testing.T, router http.Handler, method, path, sessionKey, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if sessionKey != "" {
		req.Header.Set("X-Cart-Session", sessionKey)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeCartSnapshot(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	snapshot, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data shape %T", envelope.Data)
	}
	return snapshot
}

func TestCartAddItemReturnsSnapshot(t *testing.T) {
	router := newCartRouter(t)

	w := doCartRequest(t, router, http.MethodPost, "/api/v1/cart/items", "session-1",
		`{"id":1,"name":"Adana Kebap","price":90,"restaurantId":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	snapshot := decodeCartSnapshot(t, w)
	if snapshot["totalItems"].(float64) != 1 {
		t.Fatalf("expected 1 item, got %v", snapshot["totalItems"])
	}
	if snapshot["confirmationRequired"].(bool) {
		t.Fatal("same-restaurant add must not prompt")
	}
	if got := w.Header().Get("X-Cart-Session"); got != "session-1" {
		t.Fatalf("session header not echoed: %q", got)
	}
}

func TestCartMintsSessionKeyWhenHeaderMissing(t *testing.T) {
	router := newCartRouter(t)

	w := doCartRequest(t, router, http.MethodGet, "/api/v1/cart", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Cart-Session") == "" {
		t.Fatal("expected a minted session key in the response header")
	}
}

func TestCartCrossRestaurantAddPromptsWithoutTouchingCart(t *testing.T) {
	router := newCartRouter(t)

	doCartRequest(t, router, http.MethodPost, "/api/v1/cart/items", "session-2",
		`{"id":1,"name":"Adana Kebap","price":90,"restaurantId":1}`)
	w := doCartRequest(t, router, http.MethodPost, "/api/v1/cart/items", "session-2",
		`{"id":9,"name":"Margherita","price":75,"restaurantId":2,"restaurantName":"Pizza Köşesi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	snapshot := decodeCartSnapshot(t, w)
	if !snapshot["confirmationRequired"].(bool) {
		t.Fatal("expected a switch prompt")
	}
	if snapshot["totalItems"].(float64) != 1 {
		t.Fatalf("committed cart must stay untouched, got %v items", snapshot["totalItems"])
	}
	prompt := snapshot["pendingSwitch"].(map[string]any)
	if prompt["currentRestaurantName"] != "Kebap Ustası" || prompt["newRestaurantName"] != "Pizza Köşesi" {
		t.Fatalf("unexpected prompt names: %v", prompt)
	}
}

func TestCartConfirmSwitchReplacesCart(t *testing.T) {
	router := newCartRouter(t)

	doCartRequest(t, router, http.MethodPost, "/api/v1/cart/items", "session-3",
		`{"id":1,"name":"Adana Kebap","price":90,"restaurantId":1}`)
	doCartRequest(t, router, http.MethodPost, "/api/v1/cart/items", "session-3",
		`{"id":9,"name":"Margherita","price":75,"restaurantId":2}`)

	w := doCartRequest(t, router, http.MethodPost, "/api/v1/cart/switch/confirm", "session-3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	snapshot := decodeCartSnapshot(t, w)
	if snapshot["confirmationRequired"].(bool) {
		t.Fatal("prompt must be consumed by confirm")
	}
	items := snapshot["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 item after switch, got %d", len(items))
	}
	line := items[0].(map[string]any)
	if line["id"].(float64) != 9 || line["restaurantId"].(float64) != 2 {
		t.Fatalf("unexpected line after switch: %v", line)
	}
}

func TestCartConfirmSwitchWithoutPromptFails(t *testing.T) {
	router := newCartRouter(t)

	w := doCartRequest(t, router, http.MethodPost, "/api/v1/cart/switch/confirm", "session-4", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Error.Code != "STATE_CONFLICT" {
		t.Fatalf("unexpected error code %q", envelope.Error.Code)
	}
}
