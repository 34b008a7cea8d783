package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/invoicing-backend/api/controllers"
	quotecontrollers "github.com/angelmondragon/invoicing-backend/api/controllers/quotes"
	"github.com/angelmondragon/invoicing-backend/api/middleware"
	quotesvc "github.com/angelmondragon/invoicing-backend/internal/quotes"
	"github.com/angelmondragon/invoicing-backend/pkg/config"
	"github.com/angelmondragon/invoicing-backend/pkg/logger"
	"github.com/angelmondragon/invoicing-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	quoteService quotesvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
		r.Route("/v1/quotes", func(r chi.Router) {
			r.Post("/", quotecontrollers.QuoteCreate(quoteService, logg))
		})
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
