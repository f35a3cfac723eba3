package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lucvieira/gamedeals-backend/api/controllers"
	"github.com/lucvieira/gamedeals-backend/api/middleware"
	"github.com/lucvieira/gamedeals-backend/internal/deals"
	"github.com/lucvieira/gamedeals-backend/pkg/config"
	"github.com/lucvieira/gamedeals-backend/pkg/logger"
	"github.com/lucvieira/gamedeals-backend/pkg/metrics"
	"github.com/lucvieira/gamedeals-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	catalog deals.Service,
	resolver controllers.StoreResolver,
	redisPinger redis.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisPinger))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/deals", controllers.ListDeals(catalog, cfg.Catalog, logg))
		r.Get("/deals/{dealKey}", controllers.GetDeal(catalog, logg))
		r.Get("/deals/{dealKey}/redirect", controllers.RedirectDeal(catalog, logg))
		r.Get("/stores", controllers.ListStores(resolver, logg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
