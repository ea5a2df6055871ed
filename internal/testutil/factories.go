package testutil

import (
	"time"

	"github.com/etfview/etf-analyzer-backend/internal/model"
)

// Holding builds a model.Holding for tests.
func Holding(constituent string, weight float64) model.Holding {
	return model.Holding{Constituent: constituent, Weight: weight}
}

// Observation builds a model.PriceObservation for tests.
func Observation(date, constituent string, price float64) model.PriceObservation {
	return model.PriceObservation{Date: date, Constituent: constituent, Price: price}
}

// HoldingsSnapshot wraps holdings in an upload snapshot the way a
// successful POST /api/upload/etf would.
func HoldingsSnapshot(holdings ...model.Holding) *model.HoldingsUpload {
	return &model.HoldingsUpload{
		Holdings:   holdings,
		Filename:   "holdings.csv",
		UploadedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// PanelSnapshot wraps observations in a price-panel snapshot, deriving
// the constituent list and date range the way the parser would.
func PanelSnapshot(observations ...model.PriceObservation) *model.PricePanel {
	panel := &model.PricePanel{
		Prices:       observations,
		Constituents: []string{},
	}

	seen := map[string]bool{}
	for _, obs := range observations {
		if !seen[obs.Constituent] {
			seen[obs.Constituent] = true
			panel.Constituents = append(panel.Constituents, obs.Constituent)
		}
		if panel.DateRange.Min == "" || obs.Date < panel.DateRange.Min {
			panel.DateRange.Min = obs.Date
		}
		if obs.Date > panel.DateRange.Max {
			panel.DateRange.Max = obs.Date
		}
	}

	return panel
}
