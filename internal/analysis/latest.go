// Package analysis derives views over the holdings and price-panel
// snapshots: the latest-price index, enriched holdings, the portfolio
// valuation series, the top-N ranking, and holdings sorting.
//
// Every function here is a pure computation over its inputs; snapshots
// are never mutated, so callers can run these concurrently against a
// snapshot taken at the start of a request.
package analysis

import "github.com/etfview/etf-analyzer-backend/internal/model"

// LatestPrices reduces a price-observation sequence to the most recent
// price per constituent, comparing dates lexically. An entry is only
// replaced on a strictly greater date, so among observations sharing
// the maximum date the first one in input order wins.
func LatestPrices(observations []model.PriceObservation) map[string]model.DatedPrice {
	latest := make(map[string]model.DatedPrice)
	for _, obs := range observations {
		current, ok := latest[obs.Constituent]
		if !ok || obs.Date > current.Date {
			latest[obs.Constituent] = model.DatedPrice{Date: obs.Date, Price: obs.Price}
		}
	}
	return latest
}

// LatestPriceMap flattens the latest-price index to constituent →
// price, the shape served by GET /api/prices/latest.
func LatestPriceMap(observations []model.PriceObservation) map[string]float64 {
	latest := LatestPrices(observations)
	prices := make(map[string]float64, len(latest))
	for constituent, dp := range latest {
		prices[constituent] = dp.Price
	}
	return prices
}
