package model

import "time"

// Upload kinds recorded in the audit trail.
const (
	UploadKindETF    = "etf"
	UploadKindPrices = "prices"
)

// Upload is one row of the upload audit trail.
type Upload struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Filename    string    `json:"filename"`
	SizeBytes   int64     `json:"sizeBytes"`
	RecordCount int       `json:"recordCount"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
