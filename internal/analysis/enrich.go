package analysis

import "github.com/etfview/etf-analyzer-backend/internal/model"

// Enrich left-joins holdings against the latest-price index, preserving
// holding order. A holding whose constituent is not in the index keeps
// nil LatestPrice and HoldingSize; otherwise HoldingSize is latest
// price times weight, unrounded. Rounding happens only at the ranking
// and series boundaries.
func Enrich(holdings []model.Holding, latest map[string]model.DatedPrice) []model.EnrichedHolding {
	enriched := make([]model.EnrichedHolding, 0, len(holdings))
	for _, h := range holdings {
		e := model.EnrichedHolding{Constituent: h.Constituent, Weight: h.Weight}
		if dp, ok := latest[h.Constituent]; ok {
			price := dp.Price
			size := price * h.Weight
			e.LatestPrice = &price
			e.HoldingSize = &size
		}
		enriched = append(enriched, e)
	}
	return enriched
}
