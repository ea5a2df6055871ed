// Package store owns the two process-wide data snapshots and the
// on-disk copy of the most recent prices CSV.
package store

import (
	"sync/atomic"

	"github.com/etfview/etf-analyzer-backend/internal/model"
)

// Snapshots holds the holdings and price-panel state. Each slot is a
// single atomic pointer: a successful upload replaces the whole
// snapshot in one swap, so a concurrent reader observes either the old
// or the new value, never a mix. Racing uploads of the same kind
// resolve last-write-wins with no merge; that is the contract, not a
// bug. Snapshots are immutable once set — derive, never mutate.
type Snapshots struct {
	holdings atomic.Pointer[model.HoldingsUpload]
	prices   atomic.Pointer[model.PricePanel]
}

// NewSnapshots returns an empty store; both snapshots start absent.
func NewSnapshots() *Snapshots {
	return &Snapshots{}
}

// Holdings returns the current holdings snapshot, or nil if no ETF file
// has been uploaded yet.
func (s *Snapshots) Holdings() *model.HoldingsUpload {
	return s.holdings.Load()
}

// SetHoldings swaps in a new holdings snapshot.
func (s *Snapshots) SetHoldings(h *model.HoldingsUpload) {
	s.holdings.Store(h)
}

// Prices returns the current price-panel snapshot, or nil if no prices
// file has been uploaded or restored from disk.
func (s *Snapshots) Prices() *model.PricePanel {
	return s.prices.Load()
}

// SetPrices swaps in a new price-panel snapshot.
func (s *Snapshots) SetPrices(p *model.PricePanel) {
	s.prices.Store(p)
}
