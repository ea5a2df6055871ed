package service

import (
	"github.com/etfview/etf-analyzer-backend/internal/analysis"
	"github.com/etfview/etf-analyzer-backend/internal/apperrors"
	"github.com/etfview/etf-analyzer-backend/internal/model"
	"github.com/etfview/etf-analyzer-backend/internal/store"
)

// PortfolioService derives read views from the current snapshots. Every
// method dereferences the snapshots once at entry and computes over
// that consistent pair; nothing is cached, so each request reflects the
// latest successful uploads.
type PortfolioService struct {
	snapshots *store.Snapshots
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(snapshots *store.Snapshots) *PortfolioService {
	return &PortfolioService{snapshots: snapshots}
}

// Prices returns the current price-panel snapshot.
func (s *PortfolioService) Prices() (*model.PricePanel, error) {
	panel := s.snapshots.Prices()
	if panel == nil {
		return nil, apperrors.ErrNoPricesData
	}
	return panel, nil
}

// LatestPrices returns the most recent price per constituent.
func (s *PortfolioService) LatestPrices() (map[string]float64, error) {
	panel, err := s.Prices()
	if err != nil {
		return nil, err
	}
	return analysis.LatestPriceMap(panel.Prices), nil
}

// EnrichedHoldings joins holdings against the latest prices and sorts
// the result. Both snapshots must be present.
func (s *PortfolioService) EnrichedHoldings(sortField, order string) ([]model.EnrichedHolding, error) {
	holdings, panel, err := s.both()
	if err != nil {
		return nil, err
	}

	enriched := analysis.Enrich(holdings.Holdings, analysis.LatestPrices(panel.Prices))
	return analysis.SortHoldings(enriched, sortField, order), nil
}

// PriceSeries returns the date-ordered portfolio valuation series.
func (s *PortfolioService) PriceSeries() ([]model.ValuationPoint, error) {
	holdings, panel, err := s.both()
	if err != nil {
		return nil, err
	}
	return analysis.Series(holdings.Holdings, panel.Prices), nil
}

// TopHoldings returns the n largest holdings by dollar size.
func (s *PortfolioService) TopHoldings(n int) ([]model.RankedEntry, error) {
	holdings, panel, err := s.both()
	if err != nil {
		return nil, err
	}
	return analysis.TopN(holdings.Holdings, analysis.LatestPrices(panel.Prices), n), nil
}

// both loads the snapshot pair for views that need holdings and prices
// together. The holdings check runs first, so a request missing both
// reports the missing holdings.
func (s *PortfolioService) both() (*model.HoldingsUpload, *model.PricePanel, error) {
	holdings := s.snapshots.Holdings()
	if holdings == nil {
		return nil, nil, apperrors.ErrNoHoldingsData
	}
	panel := s.snapshots.Prices()
	if panel == nil {
		return nil, nil, apperrors.ErrNoPricesData
	}
	return holdings, panel, nil
}
