package analysis_test

import (
	"testing"

	"github.com/etfview/etf-analyzer-backend/internal/analysis"
	"github.com/etfview/etf-analyzer-backend/internal/model"
	"github.com/etfview/etf-analyzer-backend/internal/testutil"
)

func names(enriched []model.EnrichedHolding) []string {
	out := make([]string, len(enriched))
	for i, e := range enriched {
		out[i] = e.Constituent
	}
	return out
}

func equalNames(got []model.EnrichedHolding, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, e := range got {
		if e.Constituent != want[i] {
			return false
		}
	}
	return true
}

// TestSortHoldings tests the multi-field holdings sorter.
//
// WHY: The table view relies on a stable sort with fixed fallbacks, and
// on missing prices sorting as zero. Breaking stability would reorder
// equal rows between requests and flake the frontend's snapshot tests.
func TestSortHoldings(t *testing.T) {
	enrich := func(holdings []model.Holding, observations ...model.PriceObservation) []model.EnrichedHolding {
		return analysis.Enrich(holdings, analysis.LatestPrices(observations))
	}

	t.Run("sorts by constituent ascending by default", func(t *testing.T) {
		enriched := enrich([]model.Holding{
			testutil.Holding("MSFT", 0.3),
			testutil.Holding("aapl", 0.4),
			testutil.Holding("GOOG", 0.3),
		})

		sorted := analysis.SortHoldings(enriched, "", "")

		// Collation is case-insensitive English ordering, unlike a raw
		// byte compare which would put the lowercase name last.
		if !equalNames(sorted, "aapl", "GOOG", "MSFT") {
			t.Errorf("Unexpected order: %v", names(sorted))
		}
	})

	t.Run("invalid field and order fall back to constituent asc", func(t *testing.T) {
		enriched := enrich([]model.Holding{
			testutil.Holding("B", 0.1),
			testutil.Holding("A", 0.2),
		})

		sorted := analysis.SortHoldings(enriched, "bogus", "sideways")

		if !equalNames(sorted, "A", "B") {
			t.Errorf("Unexpected order: %v", names(sorted))
		}
	})

	t.Run("sorts by weight descending", func(t *testing.T) {
		enriched := enrich([]model.Holding{
			testutil.Holding("SMALL", 0.1),
			testutil.Holding("BIG", 0.7),
			testutil.Holding("MID", 0.2),
		})

		sorted := analysis.SortHoldings(enriched, "weight", "desc")

		if !equalNames(sorted, "BIG", "MID", "SMALL") {
			t.Errorf("Unexpected order: %v", names(sorted))
		}
	})

	t.Run("missing latest price sorts as zero on price field", func(t *testing.T) {
		enriched := enrich(
			[]model.Holding{
				testutil.Holding("PRICED", 0.5),
				testutil.Holding("UNPRICED", 0.5),
				testutil.Holding("FREE", 0.5),
			},
			testutil.Observation("d1", "PRICED", 50),
			testutil.Observation("d1", "FREE", 0),
		)

		sorted := analysis.SortHoldings(enriched, "price", "desc")

		// UNPRICED counts as 0, tying with the actual zero price; the
		// tie keeps input order (UNPRICED before FREE).
		if !equalNames(sorted, "PRICED", "UNPRICED", "FREE") {
			t.Errorf("Unexpected order: %v", names(sorted))
		}
	})

	t.Run("descending sort keeps ties in input order", func(t *testing.T) {
		enriched := enrich([]model.Holding{
			testutil.Holding("FIRST", 0.5),
			testutil.Holding("SECOND", 0.5),
			testutil.Holding("LIGHT", 0.1),
		})

		sorted := analysis.SortHoldings(enriched, "weight", "desc")

		if !equalNames(sorted, "FIRST", "SECOND", "LIGHT") {
			t.Errorf("Expected stable ties, got %v", names(sorted))
		}
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		enriched := enrich([]model.Holding{
			testutil.Holding("B", 0.1),
			testutil.Holding("A", 0.2),
		})

		_ = analysis.SortHoldings(enriched, "constituent", "asc")

		if !equalNames(enriched, "B", "A") {
			t.Errorf("Input slice was reordered: %v", names(enriched))
		}
	})
}
