// Package request parses and normalizes query parameters for the API
// handlers. Invalid values never fail a request here; they fall back to
// documented defaults, matching the forgiving behavior the frontend
// expects.
package request

import "strconv"

// ParseTopN parses the ?n= parameter for the top-holdings ranking.
// Non-numeric or non-positive values default to def; the result is
// clamped to [1, max].
func ParseTopN(raw string, def, max int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		n = def
	}
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	return n
}

// ParseLimit parses a ?limit= parameter with a default and a cap.
func ParseLimit(raw string, def, max int) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return limit
}
