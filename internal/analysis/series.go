package analysis

import (
	"math"
	"sort"

	"github.com/etfview/etf-analyzer-backend/internal/model"
)

type dateConstituent struct {
	date        string
	constituent string
}

// Series computes the portfolio valuation time series: for every
// distinct date in the observations, the sum over holdings of weight
// times that day's price, rounded to two decimals. A constituent
// without a price on a given date contributes zero, which understates
// the value on dates with partial coverage; that zero-fill is the
// documented behavior, not an accident. Duplicate (date, constituent)
// observations resolve last-write-wins in input order.
//
// Cost is O(len(observations) + len(dates)*len(holdings)), fine for the
// few thousand rows this service targets.
func Series(holdings []model.Holding, observations []model.PriceObservation) []model.ValuationPoint {
	prices := make(map[dateConstituent]float64, len(observations))
	seen := map[string]bool{}
	dates := []string{}
	for _, obs := range observations {
		prices[dateConstituent{obs.Date, obs.Constituent}] = obs.Price
		if !seen[obs.Date] {
			seen[obs.Date] = true
			dates = append(dates, obs.Date)
		}
	}
	sort.Strings(dates)

	series := make([]model.ValuationPoint, 0, len(dates))
	for _, date := range dates {
		var value float64
		for _, h := range holdings {
			value += prices[dateConstituent{date, h.Constituent}] * h.Weight
		}
		series = append(series, model.ValuationPoint{Date: date, Value: round2(value)})
	}
	return series
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
