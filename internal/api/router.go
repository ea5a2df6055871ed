package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/etfview/etf-analyzer-backend/internal/api/handlers"
	custommiddleware "github.com/etfview/etf-analyzer-backend/internal/api/middleware"
	"github.com/etfview/etf-analyzer-backend/internal/config"
	"github.com/etfview/etf-analyzer-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	uploadService *service.UploadService,
	portfolioService *service.PortfolioService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	uploadHandler := handlers.NewUploadHandler(uploadService)
	pricesHandler := handlers.NewPricesHandler(portfolioService)
	holdingsHandler := handlers.NewHoldingsHandler(portfolioService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/upload", func(r chi.Router) {
			r.Post("/etf", uploadHandler.UploadETF)
			r.Post("/prices", uploadHandler.UploadPrices)
		})

		r.Route("/prices", func(r chi.Router) {
			r.Get("/", pricesHandler.Prices)
			r.Get("/latest", pricesHandler.LatestPrices)
		})

		r.Route("/holdings", func(r chi.Router) {
			r.Get("/enriched", holdingsHandler.Enriched)
			r.Get("/top", holdingsHandler.Top)
		})

		r.Get("/etf-price-series", holdingsHandler.Series)

		r.Get("/uploads", uploadHandler.Uploads)
	})

	// Raw persisted prices file, outside the /api namespace
	r.Get("/prices.csv", uploadHandler.PricesCSV)

	return r
}
