// Package csvparse converts raw CSV uploads into typed records.
//
// Parsing is deliberately lenient at the row level: rows with a missing
// identifier or an unparsable numeric cell are dropped without being
// reported, because real-world holdings and price exports are messy and
// downstream consumers rely on partial-success parsing. Only structural
// CSV failures surface as errors.
package csvparse

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/etfview/etf-analyzer-backend/internal/model"
)

// ParseHoldings parses an ETF holdings CSV. The header must contain a
// "weight" column (case-sensitive) and an identifier column named
// "name" or "constituent". Extra columns are ignored. Rows whose
// trimmed identifier is empty or whose weight cell is not a finite
// number are skipped.
func ParseHoldings(data []byte) ([]model.Holding, error) {
	rows, header, err := readAll(data)
	if err != nil {
		return nil, err
	}

	nameIdx := columnIndex(header, "name")
	constituentIdx := columnIndex(header, "constituent")
	weightIdx := columnIndex(header, "weight")

	holdings := []model.Holding{}
	for _, row := range rows {
		raw := cell(row, nameIdx)
		if raw == "" {
			raw = cell(row, constituentIdx)
		}
		name := strings.TrimSpace(raw)

		weight, ok := parseNumber(cell(row, weightIdx))
		if name == "" || !ok {
			continue
		}

		holdings = append(holdings, model.Holding{Constituent: name, Weight: weight})
	}

	return holdings, nil
}

// ParsePricePanel parses a wide-format price CSV: one "DATE" (or
// "date") column plus one column per constituent. Every cell that
// parses as a finite number becomes a PriceObservation. Rows without a
// date are dropped whole; non-numeric cells are skipped individually.
// The returned date range spans every row that carried a date, even
// rows where no cell parsed.
func ParsePricePanel(data []byte) (*model.PricePanel, error) {
	rows, header, err := readAll(data)
	if err != nil {
		return nil, err
	}

	dateIdx := columnIndex(header, "DATE")
	if dateIdx < 0 {
		dateIdx = columnIndex(header, "date")
	}

	panel := &model.PricePanel{
		Prices:       []model.PriceObservation{},
		Constituents: []string{},
	}

	seen := map[string]bool{}
	dates := []string{}

	for _, row := range rows {
		date := strings.TrimSpace(cell(row, dateIdx))
		if date == "" {
			continue
		}

		for i, name := range header {
			if name == "DATE" || name == "date" {
				continue
			}

			price, ok := parseNumber(cell(row, i))
			if !ok {
				continue
			}

			constituent := strings.TrimSpace(name)
			panel.Prices = append(panel.Prices, model.PriceObservation{
				Date:        date,
				Constituent: constituent,
				Price:       price,
			})
			if !seen[constituent] {
				seen[constituent] = true
				panel.Constituents = append(panel.Constituents, constituent)
			}
		}

		dates = append(dates, date)
	}

	if len(dates) > 0 {
		sort.Strings(dates)
		panel.DateRange = model.DateRange{Min: dates[0], Max: dates[len(dates)-1]}
	}

	return panel, nil
}

// readAll reads the entire CSV, returning the data rows and the trimmed
// header. Ragged rows are allowed; structural failures are returned as
// errors with no partial result.
func readAll(data []byte) ([][]string, []string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // rows may be ragged, cells are bounds-checked

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return rows, header, nil
}

// cell returns the trimmed-at-source cell at idx, or "" when the column
// is absent or the row is too short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// columnIndex returns the index of the first header cell equal to name,
// or -1. Matching is case-sensitive.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// parseNumber parses a cell as a finite float64.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
