package analysis

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/etfview/etf-analyzer-backend/internal/model"
)

// Sort fields and orders accepted by SortHoldings. Anything else falls
// back to sorting by constituent ascending.
const (
	SortByConstituent = "constituent"
	SortByWeight      = "weight"
	SortByPrice       = "price"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// NormalizeSort maps arbitrary query values onto a valid (field, order)
// pair.
func NormalizeSort(field, order string) (string, string) {
	switch field {
	case SortByConstituent, SortByWeight, SortByPrice:
	default:
		field = SortByConstituent
	}
	switch order {
	case OrderAsc, OrderDesc:
	default:
		order = OrderAsc
	}
	return field, order
}

// SortHoldings returns enriched holdings ordered by the given field and
// direction. Constituent names compare with locale-aware collation, the
// same ordering the browser's localeCompare gives the table view.
// A holding without a latest price sorts as if its price were zero.
// The sort is stable: equal keys keep their input order.
func SortHoldings(enriched []model.EnrichedHolding, field, order string) []model.EnrichedHolding {
	field, order = NormalizeSort(field, order)

	sorted := make([]model.EnrichedHolding, len(enriched))
	copy(sorted, enriched)

	var less func(a, b model.EnrichedHolding) bool
	switch field {
	case SortByWeight:
		less = func(a, b model.EnrichedHolding) bool { return a.Weight < b.Weight }
	case SortByPrice:
		less = func(a, b model.EnrichedHolding) bool { return priceOrZero(a) < priceOrZero(b) }
	default:
		coll := collate.New(language.English)
		less = func(a, b model.EnrichedHolding) bool {
			return coll.CompareString(a.Constituent, b.Constituent) < 0
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == OrderDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

func priceOrZero(e model.EnrichedHolding) float64 {
	if e.LatestPrice == nil {
		return 0
	}
	return *e.LatestPrice
}
