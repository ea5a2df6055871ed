package analysis_test

import (
	"testing"

	"github.com/etfview/etf-analyzer-backend/internal/analysis"
	"github.com/etfview/etf-analyzer-backend/internal/model"
	"github.com/etfview/etf-analyzer-backend/internal/testutil"
)

// TestEnrich tests the holdings/latest-price left join.
//
// WHY: The join's invariant is that latest price and holding size are
// present together or absent together, and size is exactly price times
// weight with no rounding. The table view and the ranker both build on
// this.
func TestEnrich(t *testing.T) {
	t.Run("size present iff price present and equals price times weight", func(t *testing.T) {
		holdings := []model.Holding{
			testutil.Holding("AAPL", 0.6),
			testutil.Holding("MSFT", 0.4),
			testutil.Holding("UNPRICED", 0.1),
			testutil.Holding("SHORT", -0.05),
		}
		latest := analysis.LatestPrices([]model.PriceObservation{
			testutil.Observation("2024-01-02", "AAPL", 185.5),
			testutil.Observation("2024-01-02", "MSFT", 402.125),
			testutil.Observation("2024-01-02", "SHORT", 10),
		})

		enriched := analysis.Enrich(holdings, latest)

		for _, e := range enriched {
			if (e.LatestPrice == nil) != (e.HoldingSize == nil) {
				t.Errorf("%s: price and size must be present together", e.Constituent)
			}
			if e.LatestPrice != nil && *e.HoldingSize != *e.LatestPrice*e.Weight {
				t.Errorf("%s: expected size %v, got %v", e.Constituent, *e.LatestPrice*e.Weight, *e.HoldingSize)
			}
		}

		if enriched[2].LatestPrice != nil {
			t.Error("Expected UNPRICED to have no latest price")
		}

		// No clamping: a negative weight yields a negative size.
		if *enriched[3].HoldingSize >= 0 {
			t.Errorf("Expected negative size for short position, got %v", *enriched[3].HoldingSize)
		}
	})

	t.Run("preserves holding order", func(t *testing.T) {
		holdings := []model.Holding{
			testutil.Holding("ZZZ", 0.5),
			testutil.Holding("AAA", 0.5),
		}

		enriched := analysis.Enrich(holdings, nil)

		if enriched[0].Constituent != "ZZZ" || enriched[1].Constituent != "AAA" {
			t.Errorf("Expected input order preserved, got %+v", enriched)
		}
	})

	t.Run("empty holdings yield an empty slice", func(t *testing.T) {
		enriched := analysis.Enrich(nil, nil)
		if len(enriched) != 0 {
			t.Errorf("Expected empty result, got %+v", enriched)
		}
	})
}
