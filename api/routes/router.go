package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pricepulse-au/pricepulse-backend/api/controllers"
	"github.com/pricepulse-au/pricepulse-backend/api/middleware"
	"github.com/pricepulse-au/pricepulse-backend/internal/catalog"
	"github.com/pricepulse-au/pricepulse-backend/pkg/config"
	"github.com/pricepulse-au/pricepulse-backend/pkg/logger"
)

// NewRouter wires the full HTTP surface. The fixture provider backs the
// showcase catalog routes; the feed provider backs the TV comparison routes.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	fixtureProvider catalog.Provider,
	feedProvider catalog.Provider,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, fixtureProvider, feedProvider))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/retailers", controllers.ListRetailers())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(fixtureProvider, logg))
			r.Post("/search", controllers.SearchProducts(fixtureProvider, logg))
			r.Get("/{id}", controllers.GetProduct(fixtureProvider, logg))
		})

		r.Get("/deals/hot", controllers.HotDeals(fixtureProvider, logg, cfg.Deals.Limit))

		r.Route("/tvs", func(r chi.Router) {
			r.Get("/", controllers.ListTVs(feedProvider, logg))
			r.Get("/deals", controllers.TVDeals(feedProvider, logg, cfg.Deals.Limit))
			r.Get("/{id}", controllers.GetTV(feedProvider, logg))
		})
	})

	return r
}
