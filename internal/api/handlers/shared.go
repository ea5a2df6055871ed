package handlers

import (
	"errors"
	"net/http"

	"github.com/etfview/etf-analyzer-backend/internal/apperrors"
	"github.com/etfview/etf-analyzer-backend/internal/api/response"
)

// respondServiceError maps service-layer errors onto HTTP statuses.
// Missing-snapshot errors become 404s naming the missing data; anything
// unexpected becomes a generic 500 with no partial state exposed.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoHoldingsData),
		errors.Is(err, apperrors.ErrNoPricesData):
		response.RespondError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, apperrors.ErrInvalidCSVFile),
		errors.Is(err, apperrors.ErrMalformedCSV):
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.RespondError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}
