package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/discoverrwanda/discover-rwanda-api/pkg/middleware"
	"github.com/discoverrwanda/discover-rwanda-api/pkg/observability"
)

// SetupRouter configures all routes and returns the HTTP service
func SetupRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	registerAPIRoutes(mux, deps)
	registerUtilityRoutes(mux, deps)

	var handler http.Handler = mux
	if deps.Config.Observability.MetricsEnabled {
		handler = observability.NewMetricsMiddleware()(handler)
	}
	if deps.Config.Server.RateLimitPerSecond > 0 && deps.Config.Server.RateLimitBurst > 0 {
		limiter := middleware.NewRateLimiter(
			deps.Config.Server.RateLimitPerSecond,
			deps.Config.Server.RateLimitBurst,
		)
		handler = limiter.Middleware(handler)
	}
	handler = middleware.Logging(deps.Logger)(handler)
	handler = middleware.Recovery(deps.Logger)(handler)
	handler = middleware.RequestID(handler)

	// Enable CORS for the browser frontend
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: deps.Config.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept-Encoding",
			"Content-Type",
			middleware.RequestIDHeader,
		},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	return corsHandler.Handler(handler)
}

// registerAPIRoutes registers the JSON API endpoints
func registerAPIRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("GET /api/v1/attractions", deps.CatalogHandler.ListAttractions)
	mux.HandleFunc("GET /api/v1/attractions/featured", deps.CatalogHandler.ListFeatured)
	mux.HandleFunc("GET /api/v1/attractions/{slug}", deps.CatalogHandler.GetAttraction)
	mux.HandleFunc("GET /api/v1/attractions/{slug}/reviews", deps.ReviewHandler.List)
	mux.HandleFunc("POST /api/v1/attractions/{slug}/reviews", deps.ReviewHandler.Submit)

	mux.HandleFunc("GET /api/v1/dining", deps.CatalogHandler.ListDining)
	mux.HandleFunc("GET /api/v1/dining/{slug}", deps.CatalogHandler.GetDining)

	mux.HandleFunc("GET /api/v1/events", deps.CatalogHandler.ListEvents)
	mux.HandleFunc("GET /api/v1/events/upcoming", deps.CatalogHandler.ListUpcomingEvents)
	mux.HandleFunc("GET /api/v1/events/{slug}", deps.CatalogHandler.GetEvent)

	mux.HandleFunc("GET /api/v1/gallery", deps.GalleryHandler.Fetch)
	mux.HandleFunc("GET /api/v1/gallery/categories", deps.GalleryHandler.Categories)

	mux.HandleFunc("GET /api/v1/bookings/options", deps.BookingHandler.ListOptions)
	mux.HandleFunc("GET /api/v1/bookings/resolve", deps.BookingHandler.Resolve)
	mux.HandleFunc("POST /api/v1/bookings", deps.BookingHandler.Submit)

	deps.Logger.Info("API routes configured")
}

// registerUtilityRoutes registers health check, metrics, and other utility routes
func registerUtilityRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	deps.Logger.Info("registered health check", "path", "/health")

	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})
	deps.Logger.Info("registered readiness check", "path", "/ready")

	if deps.Config.Observability.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
		deps.Logger.Info("registered metrics endpoint", "path", "/metrics")
	}
}
