package testutil

import (
	"database/sql"
	"testing"

	"github.com/etfview/etf-analyzer-backend/internal/repository"
	"github.com/etfview/etf-analyzer-backend/internal/service"
	"github.com/etfview/etf-analyzer-backend/internal/store"
)

// NewTestUploadService wires an UploadService against the given test
// database, a fresh snapshot store, and a temp-dir price file.
func NewTestUploadService(t *testing.T, db *sql.DB, snapshots *store.Snapshots) *service.UploadService {
	t.Helper()

	priceFile, err := store.NewPriceFile(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create price file store: %v", err)
	}

	return service.NewUploadService(
		snapshots,
		priceFile,
		repository.NewUploadRepository(db),
	)
}

// NewTestPortfolioService returns a PortfolioService reading from the
// given snapshot store.
func NewTestPortfolioService(t *testing.T, snapshots *store.Snapshots) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(snapshots)
}
