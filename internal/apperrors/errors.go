package apperrors

import "errors"

// Missing prerequisite data errors. A query that needs a snapshot that
// has not been uploaded yet fails with one of these, naming which
// snapshot is absent.
var (
	// ErrNoHoldingsData indicates no ETF holdings file has been uploaded.
	ErrNoHoldingsData = errors.New("no ETF holdings data available")

	// ErrNoPricesData indicates no prices file has been uploaded or
	// restored from disk.
	ErrNoPricesData = errors.New("no prices data available")

	// ErrPriceFileNotFound indicates no raw prices CSV has been persisted.
	ErrPriceFileNotFound = errors.New("prices.csv not found")
)

// Malformed input errors. These reject an upload before any state
// mutation; row-level defects inside a structurally valid CSV are
// dropped silently instead and never surface here.
var (
	// ErrInvalidCSVFile indicates a missing upload part or a filename
	// without a .csv extension.
	ErrInvalidCSVFile = errors.New("invalid CSV file")

	// ErrMalformedCSV indicates the CSV structure itself could not be
	// parsed.
	ErrMalformedCSV = errors.New("malformed CSV")
)

// Operation failure errors represent system-level failures when
// retrieving or storing data.
var (
	// ErrFailedToRetrieveUploads indicates the upload audit trail could
	// not be read.
	ErrFailedToRetrieveUploads = errors.New("failed to retrieve uploads")

	// ErrFailedToPersistPrices indicates the raw prices CSV could not be
	// written to durable storage.
	ErrFailedToPersistPrices = errors.New("failed to persist prices file")
)
