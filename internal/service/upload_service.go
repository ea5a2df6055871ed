package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/etfview/etf-analyzer-backend/internal/apperrors"
	"github.com/etfview/etf-analyzer-backend/internal/csvparse"
	"github.com/etfview/etf-analyzer-backend/internal/model"
	"github.com/etfview/etf-analyzer-backend/internal/repository"
	"github.com/etfview/etf-analyzer-backend/internal/store"
)

// MaxUploadBytes is the upload size limit for both CSV endpoints.
const MaxUploadBytes = 10 << 20 // 10MB

// UploadService ingests CSV uploads: it validates the file, parses it,
// swaps the parsed snapshot into the store, persists the raw prices
// file, and records an audit row. The snapshot swap is the commit
// point; a failed parse mutates nothing.
type UploadService struct {
	snapshots  *store.Snapshots
	priceFile  *store.PriceFile
	uploadRepo *repository.UploadRepository
}

// NewUploadService creates a new UploadService.
func NewUploadService(
	snapshots *store.Snapshots,
	priceFile *store.PriceFile,
	uploadRepo *repository.UploadRepository,
) *UploadService {
	return &UploadService{
		snapshots:  snapshots,
		priceFile:  priceFile,
		uploadRepo: uploadRepo,
	}
}

// ValidateFilename rejects anything that is not a .csv upload.
func ValidateFilename(filename string) error {
	if !strings.HasSuffix(filename, ".csv") {
		return apperrors.ErrInvalidCSVFile
	}
	return nil
}

// UploadETF parses a holdings CSV and, on success, replaces the
// holdings snapshot wholesale. Holdings are held in memory only and
// never persisted across restarts.
func (s *UploadService) UploadETF(filename string, data []byte) (*model.HoldingsUpload, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}

	holdings, err := csvparse.ParseHoldings(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedCSV, err)
	}

	snapshot := &model.HoldingsUpload{
		Holdings:   holdings,
		Filename:   filename,
		UploadedAt: time.Now().UTC(),
	}
	s.snapshots.SetHoldings(snapshot)

	s.audit(model.UploadKindETF, filename, int64(len(data)), len(holdings))

	return snapshot, nil
}

// UploadPrices parses a price-panel CSV and, on success, replaces the
// price snapshot and writes the raw bytes to durable storage so the
// panel can be restored at next start.
func (s *UploadService) UploadPrices(filename string, data []byte) (*model.PricePanel, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}

	panel, err := csvparse.ParsePricePanel(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedCSV, err)
	}

	s.snapshots.SetPrices(panel)

	if err := s.priceFile.Write(data); err != nil {
		return nil, errors.Join(apperrors.ErrFailedToPersistPrices, err)
	}

	s.audit(model.UploadKindPrices, filename, int64(len(data)), len(panel.Prices))

	return panel, nil
}

// RestorePrices reloads the persisted prices CSV at process start, if
// one exists. A file that no longer parses is logged and skipped.
func (s *UploadService) RestorePrices() error {
	data, ok, err := s.priceFile.Read()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	panel, err := csvparse.ParsePricePanel(data)
	if err != nil {
		log.Printf("Failed to parse persisted prices file: %v", err)
		return nil
	}

	s.snapshots.SetPrices(panel)
	log.Printf("Loaded prices data from disk (%d records)", len(panel.Prices))

	return nil
}

// PriceFilePath returns the fixed path the raw prices CSV is served from.
func (s *UploadService) PriceFilePath() string {
	return s.priceFile.Path()
}

// ListUploads returns the most recent audit rows, newest first.
func (s *UploadService) ListUploads(limit int) ([]model.Upload, error) {
	uploads, err := s.uploadRepo.List(limit)
	if err != nil {
		return nil, errors.Join(apperrors.ErrFailedToRetrieveUploads, err)
	}
	return uploads, nil
}

// PruneAudit deletes audit rows older than the retention window.
// It never touches the snapshots or the persisted prices file.
func (s *UploadService) PruneAudit(retention time.Duration) (int64, error) {
	return s.uploadRepo.DeleteOlderThan(time.Now().Add(-retention))
}

// audit records a successful upload. Audit failures are logged, never
// surfaced: the snapshot swap already happened and stays valid.
func (s *UploadService) audit(kind, filename string, sizeBytes int64, recordCount int) {
	err := s.uploadRepo.Insert(model.Upload{
		ID:          uuid.NewString(),
		Kind:        kind,
		Filename:    filename,
		SizeBytes:   sizeBytes,
		RecordCount: recordCount,
		UploadedAt:  time.Now().UTC(),
	})
	if err != nil {
		log.Printf("Failed to record %s upload audit row: %v", kind, err)
	}
}
