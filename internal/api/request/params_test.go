package request_test

import (
	"testing"

	"github.com/etfview/etf-analyzer-backend/internal/api/request"
)

func TestParseTopN(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"empty defaults", "", 5},
		{"non-numeric defaults", "lots", 5},
		{"zero defaults", "0", 5},
		{"negative defaults", "-3", 5},
		{"valid value passes through", "7", 7},
		{"clamped to max", "250", 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := request.ParseTopN(tc.raw, 5, 100); got != tc.want {
				t.Errorf("ParseTopN(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	if got := request.ParseLimit("", 50, 500); got != 50 {
		t.Errorf("Expected default 50, got %d", got)
	}
	if got := request.ParseLimit("25", 50, 500); got != 25 {
		t.Errorf("Expected 25, got %d", got)
	}
	if got := request.ParseLimit("9999", 50, 500); got != 500 {
		t.Errorf("Expected cap 500, got %d", got)
	}
}
