package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/polattozlu/munch-gokhan/api/controllers"
	"github.com/polattozlu/munch-gokhan/api/middleware"
	cartsvc "github.com/polattozlu/munch-gokhan/internal/cart"
	deliverysvc "github.com/polattozlu/munch-gokhan/internal/delivery"
	menusvc "github.com/polattozlu/munch-gokhan/internal/menu"
	onboardingsvc "github.com/polattozlu/munch-gokhan/internal/onboarding"
	ordersvc "github.com/polattozlu/munch-gokhan/internal/orders"
	restaurantsvc "github.com/polattozlu/munch-gokhan/internal/restaurants"
	reviewsvc "github.com/polattozlu/munch-gokhan/internal/reviews"
	"github.com/polattozlu/munch-gokhan/pkg/config"
	"github.com/polattozlu/munch-gokhan/pkg/logger"
	"github.com/polattozlu/munch-gokhan/pkg/metrics"
)

type Services struct {
	Restaurants restaurantsvc.Service
	Menu        menusvc.Service
	Reviews     reviewsvc.Service
	Delivery    deliverysvc.Service
	Cart        cartsvc.Service
	Orders      ordersvc.Service
	Onboarding  onboardingsvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger controllers.Pinger,
	redisPinger controllers.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	services Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbPinger, redisPinger))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/", controllers.RestaurantList(services.Restaurants, logg))
			r.Post("/ranked", controllers.RestaurantsRanked(services.Delivery, logg))
			r.Route("/{restaurantId}", func(r chi.Router) {
				r.Get("/", controllers.RestaurantDetail(services.Restaurants, logg))
				r.Get("/menu", controllers.RestaurantMenu(services.Menu, logg))
				r.Get("/reviews", controllers.ReviewList(services.Reviews, logg))
				r.Post("/reviews", controllers.ReviewCreate(services.Reviews, logg))
			})
		})

		r.Route("/location", func(r chi.Router) {
			r.Post("/resolve", controllers.LocationResolve(services.Delivery, logg))
			r.Post("/geocode", controllers.LocationGeocode(services.Delivery, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(services.Cart, logg))
				r.Delete("/", controllers.CartClear(services.Cart, logg))
				r.Post("/items", controllers.CartAddItem(services.Cart, logg))
				r.Put("/items/{itemId}", controllers.CartUpdateQuantity(services.Cart, logg))
				r.Delete("/items/{itemId}", controllers.CartRemoveItem(services.Cart, logg))
				r.Post("/switch/confirm", controllers.CartConfirmSwitch(services.Cart, logg))
				r.Post("/switch/cancel", controllers.CartCancelSwitch(services.Cart, logg))
			})

			r.Post("/checkout", controllers.Checkout(services.Orders, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(services.Orders, logg))
			r.Get("/{orderId}", controllers.OrderDetail(services.Orders, logg))
			r.Post("/{orderId}/status", controllers.OrderStatusUpdate(services.Orders, logg))
		})

		r.Route("/partners/applications", func(r chi.Router) {
			r.Post("/", controllers.PartnerApplicationSubmit(services.Onboarding, logg))
			r.Get("/", controllers.PartnerApplicationList(services.Onboarding, logg))
			r.Post("/{applicationId}/decision", controllers.PartnerApplicationDecision(services.Onboarding, logg))
		})
	})

	return r
}
