package analysis

import (
	"sort"

	"github.com/etfview/etf-analyzer-backend/internal/model"
)

// TopN clamp bounds and default, shared with the request parser.
const (
	DefaultTopN = 5
	MaxTopN     = 100
)

// ClampTopN normalizes a requested ranking size into [1, MaxTopN].
// Zero and negative requests fall back to DefaultTopN.
func ClampTopN(n int) int {
	if n <= 0 {
		n = DefaultTopN
	}
	if n > MaxTopN {
		n = MaxTopN
	}
	return n
}

// TopN ranks holdings by holding size: enrich against the latest-price
// index, keep only sizes strictly greater than zero, sort descending
// with ties preserving input order, truncate to n, and round sizes to
// two decimals at this boundary. n is clamped via ClampTopN.
func TopN(holdings []model.Holding, latest map[string]model.DatedPrice, n int) []model.RankedEntry {
	n = ClampTopN(n)

	type sized struct {
		name string
		size float64
	}

	candidates := []sized{}
	for _, e := range Enrich(holdings, latest) {
		if e.HoldingSize != nil && *e.HoldingSize > 0 {
			candidates = append(candidates, sized{name: e.Constituent, size: *e.HoldingSize})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].size > candidates[j].size
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}

	top := make([]model.RankedEntry, 0, len(candidates))
	for _, c := range candidates {
		top = append(top, model.RankedEntry{Name: c.name, Size: round2(c.size)})
	}
	return top
}
