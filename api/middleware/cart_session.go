package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/polattozlu/munch-gokhan/pkg/logger"
)

const cartSessionHeader = "X-Cart-Session"

type cartKeyCtxKey struct{}

// CartSession resolves the caller's cart key from the X-Cart-Session header,
// minting a fresh one when the header is absent. The key is echoed back so
// the storefront can persist it.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(cartSessionHeader)
			if key == "" {
				key = uuid.NewString()
			}

			w.Header().Set(cartSessionHeader, key)

			ctx := context.WithValue(r.Context(), cartKeyCtxKey{}, key)
			if logg != nil {
				ctx = logg.WithCartKey(ctx, key)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartKeyFromContext returns the cart key resolved by CartSession.
func CartKeyFromContext(ctx context.Context) string {
	key, _ := ctx.Value(cartKeyCtxKey{}).(string)
	return key
}
