package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const priceFileName = "prices.csv"

// PriceFile persists the most recently uploaded prices CSV verbatim at
// a fixed path so the panel survives a restart. Holdings are
// intentionally never persisted.
type PriceFile struct {
	path string
}

// NewPriceFile creates the data directory if needed and returns a
// PriceFile rooted there.
func NewPriceFile(dataDir string) (*PriceFile, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return &PriceFile{path: filepath.Join(dataDir, priceFileName)}, nil
}

// Path returns the fixed on-disk location of the persisted file.
func (f *PriceFile) Path() string {
	return f.path
}

// Write stores the raw uploaded bytes, replacing any previous file.
func (f *PriceFile) Write(data []byte) error {
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to persist prices file: %w", err)
	}
	return nil
}

// Read returns the persisted bytes, or (nil, false, nil) when no file
// has been persisted yet.
func (f *PriceFile) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read prices file: %w", err)
	}
	return data, true, nil
}
