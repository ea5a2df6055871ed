package handlers

import (
	"net/http"

	"github.com/etfview/etf-analyzer-backend/internal/api/response"
	"github.com/etfview/etf-analyzer-backend/internal/service"
)

// PricesHandler handles HTTP requests for the price-panel views.
// It serves as the HTTP layer adapter, delegating to the PortfolioService.
type PricesHandler struct {
	portfolioService *service.PortfolioService
}

// NewPricesHandler creates a new PricesHandler with the provided service dependency.
func NewPricesHandler(portfolioService *service.PortfolioService) *PricesHandler {
	return &PricesHandler{
		portfolioService: portfolioService,
	}
}

// Prices returns the current price-panel snapshot.
//
// Endpoint: GET /api/prices
// Response: 200 OK with the parsed panel
// Error: 404 Not Found when no prices have been uploaded
func (h *PricesHandler) Prices(w http.ResponseWriter, r *http.Request) {
	panel, err := h.portfolioService.Prices()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, panel)
}

// LatestPrices returns the most recent price per constituent.
//
// Endpoint: GET /api/prices/latest
// Response: 200 OK with {latestPrices: {constituent: price}}
// Error: 404 Not Found when no prices have been uploaded
func (h *PricesHandler) LatestPrices(w http.ResponseWriter, r *http.Request) {
	latest, err := h.portfolioService.LatestPrices()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{"latestPrices": latest})
}
