package model

import "time"

// Holding represents a single ETF constituent and its portfolio weight.
// Weight is a fraction; it is not validated to sum to 1 across a file.
type Holding struct {
	Constituent string  `json:"constituent"`
	Weight      float64 `json:"weight"`
}

// HoldingsUpload is the process-wide holdings snapshot: the parsed
// holdings together with metadata about the upload that produced them.
type HoldingsUpload struct {
	Holdings   []Holding `json:"holdings"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// EnrichedHolding is a Holding joined against the latest-price index.
// LatestPrice and HoldingSize are both nil when the constituent has no
// price observation; HoldingSize is latest price times weight, unrounded.
type EnrichedHolding struct {
	Constituent string   `json:"constituent"`
	Weight      float64  `json:"weight"`
	LatestPrice *float64 `json:"latestPrice,omitempty"`
	HoldingSize *float64 `json:"holdingSize,omitempty"`
}

// RankedEntry is one row of the top-N holdings ranking.
// Size is the holding size rounded to two decimal places.
type RankedEntry struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}
