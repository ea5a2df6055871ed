package handlers

import (
	"net/http"

	"github.com/etfview/etf-analyzer-backend/internal/analysis"
	"github.com/etfview/etf-analyzer-backend/internal/api/request"
	"github.com/etfview/etf-analyzer-backend/internal/api/response"
	"github.com/etfview/etf-analyzer-backend/internal/service"
)

// HoldingsHandler handles HTTP requests for the derived holdings views:
// enriched holdings, the valuation series, and the top-N ranking.
type HoldingsHandler struct {
	portfolioService *service.PortfolioService
}

// NewHoldingsHandler creates a new HoldingsHandler with the provided service dependency.
func NewHoldingsHandler(portfolioService *service.PortfolioService) *HoldingsHandler {
	return &HoldingsHandler{
		portfolioService: portfolioService,
	}
}

// Enriched returns holdings joined with their latest price and dollar
// size, sorted by the requested field. Invalid sort/order values fall
// back to constituent/asc.
//
// Endpoint: GET /api/holdings/enriched?sort=&order=
// Response: 200 OK with {holdings: [...]}
// Error: 404 Not Found when either snapshot is missing
func (h *HoldingsHandler) Enriched(w http.ResponseWriter, r *http.Request) {
	sortField, order := analysis.NormalizeSort(
		r.URL.Query().Get("sort"),
		r.URL.Query().Get("order"),
	)

	holdings, err := h.portfolioService.EnrichedHoldings(sortField, order)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{"holdings": holdings})
}

// Series returns the date-ordered portfolio valuation series.
//
// Endpoint: GET /api/etf-price-series
// Response: 200 OK with {series: [{date, price}]}
// Error: 404 Not Found when either snapshot is missing
func (h *HoldingsHandler) Series(w http.ResponseWriter, r *http.Request) {
	series, err := h.portfolioService.PriceSeries()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{"series": series})
}

// Top returns the n largest holdings by dollar size. n defaults to 5
// and is clamped to [1, 100].
//
// Endpoint: GET /api/holdings/top?n=
// Response: 200 OK with {top: [{name, size}]}
// Error: 404 Not Found when either snapshot is missing
func (h *HoldingsHandler) Top(w http.ResponseWriter, r *http.Request) {
	n := request.ParseTopN(r.URL.Query().Get("n"), analysis.DefaultTopN, analysis.MaxTopN)

	top, err := h.portfolioService.TopHoldings(n)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{"top": top})
}
