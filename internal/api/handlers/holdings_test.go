package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etfview/etf-analyzer-backend/internal/api/handlers"
	"github.com/etfview/etf-analyzer-backend/internal/service"
	"github.com/etfview/etf-analyzer-backend/internal/store"
	"github.com/etfview/etf-analyzer-backend/internal/testutil"
)

// Weights are binary-exact fractions so the unrounded holding sizes in
// the enriched view compare cleanly.
func loadedSnapshots() *store.Snapshots {
	snapshots := store.NewSnapshots()
	snapshots.SetHoldings(testutil.HoldingsSnapshot(
		testutil.Holding("AAPL", 0.75),
		testutil.Holding("MSFT", 0.25),
	))
	snapshots.SetPrices(testutil.PanelSnapshot(
		testutil.Observation("2024-01-01", "AAPL", 10),
		testutil.Observation("2024-01-01", "MSFT", 20),
		testutil.Observation("2024-01-02", "AAPL", 12),
	))
	return snapshots
}

// TestHoldingsHandler_Enriched tests GET /api/holdings/enriched.
//
// WHY: The holdings table is the main frontend view; it depends on the
// 404-before-upload contract and on sort parameters being applied
// server side.
func TestHoldingsHandler_Enriched(t *testing.T) {
	t.Run("returns 404 when holdings are missing", func(t *testing.T) {
		handler := handlers.NewHoldingsHandler(service.NewPortfolioService(store.NewSnapshots()))

		req := httptest.NewRequest(http.MethodGet, "/api/holdings/enriched", nil)
		w := httptest.NewRecorder()

		handler.Enriched(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("returns sorted enriched holdings", func(t *testing.T) {
		handler := handlers.NewHoldingsHandler(service.NewPortfolioService(loadedSnapshots()))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/holdings/enriched",
			map[string]string{"sort": "weight", "order": "desc"})
		w := httptest.NewRecorder()

		handler.Enriched(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response struct {
			Holdings []struct {
				Constituent string   `json:"constituent"`
				Weight      float64  `json:"weight"`
				LatestPrice *float64 `json:"latestPrice"`
				HoldingSize *float64 `json:"holdingSize"`
			} `json:"holdings"`
		}
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response.Holdings) != 2 {
			t.Fatalf("Expected 2 holdings, got %d", len(response.Holdings))
		}
		if response.Holdings[0].Constituent != "AAPL" {
			t.Errorf("Expected AAPL first by weight desc, got %q", response.Holdings[0].Constituent)
		}
		if response.Holdings[0].LatestPrice == nil || *response.Holdings[0].LatestPrice != 12 {
			t.Errorf("Expected latest price 12, got %v", response.Holdings[0].LatestPrice)
		}
		if response.Holdings[0].HoldingSize == nil || *response.Holdings[0].HoldingSize != 9 {
			t.Errorf("Expected holding size 9, got %v", response.Holdings[0].HoldingSize)
		}
	})
}

// TestHoldingsHandler_Series tests GET /api/etf-price-series.
func TestHoldingsHandler_Series(t *testing.T) {
	t.Run("returns 404 when either snapshot is missing", func(t *testing.T) {
		snapshots := store.NewSnapshots()
		snapshots.SetHoldings(testutil.HoldingsSnapshot(testutil.Holding("AAPL", 1)))
		handler := handlers.NewHoldingsHandler(service.NewPortfolioService(snapshots))

		req := httptest.NewRequest(http.MethodGet, "/api/etf-price-series", nil)
		w := httptest.NewRecorder()

		handler.Series(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("returns the valuation series ordered by date", func(t *testing.T) {
		handler := handlers.NewHoldingsHandler(service.NewPortfolioService(loadedSnapshots()))

		req := httptest.NewRequest(http.MethodGet, "/api/etf-price-series", nil)
		w := httptest.NewRecorder()

		handler.Series(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response struct {
			Series []struct {
				Date  string  `json:"date"`
				Price float64 `json:"price"`
			} `json:"series"`
		}
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response.Series) != 2 {
			t.Fatalf("Expected 2 points, got %d", len(response.Series))
		}
		if response.Series[0].Date != "2024-01-01" || response.Series[0].Price != 12.5 {
			t.Errorf("Unexpected first point: %+v", response.Series[0])
		}
		// MSFT has no 2024-01-02 price and contributes zero.
		if response.Series[1].Price != 9 {
			t.Errorf("Expected zero-filled value 9, got %v", response.Series[1].Price)
		}
	})
}

// TestHoldingsHandler_Top tests GET /api/holdings/top.
func TestHoldingsHandler_Top(t *testing.T) {
	t.Run("n defaults to 5 for a non-numeric parameter", func(t *testing.T) {
		handler := handlers.NewHoldingsHandler(service.NewPortfolioService(loadedSnapshots()))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/holdings/top",
			map[string]string{"n": "lots"})
		w := httptest.NewRecorder()

		handler.Top(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response struct {
			Top []struct {
				Name string  `json:"name"`
				Size float64 `json:"size"`
			} `json:"top"`
		}
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		// Only two holdings exist, so the default of 5 returns both.
		if len(response.Top) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(response.Top))
		}
		if response.Top[0].Name != "AAPL" || response.Top[0].Size != 9 {
			t.Errorf("Expected AAPL with size 9 first, got %+v", response.Top[0])
		}
	})

	t.Run("n=1 truncates the ranking", func(t *testing.T) {
		handler := handlers.NewHoldingsHandler(service.NewPortfolioService(loadedSnapshots()))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/holdings/top",
			map[string]string{"n": "1"})
		w := httptest.NewRecorder()

		handler.Top(w, req)

		var response struct {
			Top []struct {
				Name string `json:"name"`
			} `json:"top"`
		}
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response.Top) != 1 {
			t.Errorf("Expected 1 entry, got %d", len(response.Top))
		}
	})
}
