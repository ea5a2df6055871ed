package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/etfview/etf-analyzer-backend/internal/api/request"
	"github.com/etfview/etf-analyzer-backend/internal/api/response"
	"github.com/etfview/etf-analyzer-backend/internal/apperrors"
	"github.com/etfview/etf-analyzer-backend/internal/service"
)

// UploadHandler handles HTTP requests for the CSV upload endpoints and
// the upload audit trail. It serves as the HTTP layer adapter, reading
// the multipart payload and delegating parsing and state changes to the
// UploadService.
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler creates a new UploadHandler with the provided service dependency.
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// UploadETF handles ETF holdings uploads.
//
// Endpoint: POST /api/upload/etf (multipart field "file", .csv, <=10MB)
// Response: 200 OK echoing the parsed holdings snapshot
// Error: 400 Bad Request on a missing/invalid/unparsable file
func (h *UploadHandler) UploadETF(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := readUpload(w, r)
	if !ok {
		return
	}

	snapshot, err := h.uploadService.UploadETF(filename, data)
	if err != nil {
		respondUploadError(w, err, "Failed to parse ETF CSV file")
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "ETF file uploaded successfully",
		"data":    snapshot,
	})
}

// UploadPrices handles price-panel uploads. A successful upload also
// persists the raw file so the panel survives a restart.
//
// Endpoint: POST /api/upload/prices (multipart field "file", .csv, <=10MB)
// Response: 200 OK echoing the parsed panel
// Error: 400 Bad Request on a missing/invalid/unparsable file
func (h *UploadHandler) UploadPrices(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := readUpload(w, r)
	if !ok {
		return
	}

	panel, err := h.uploadService.UploadPrices(filename, data)
	if err != nil {
		respondUploadError(w, err, "Failed to parse prices CSV file")
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Prices file uploaded successfully",
		"data":    panel,
	})
}

// PricesCSV serves the last persisted raw prices file.
//
// Endpoint: GET /prices.csv
// Response: 200 OK with text/csv
// Error: 404 Not Found when no file has been persisted
func (h *UploadHandler) PricesCSV(w http.ResponseWriter, r *http.Request) {
	path := h.uploadService.PriceFilePath()

	// Probe first so a missing file yields the JSON 404 the frontend
	// expects instead of http.ServeFile's plain-text one.
	if !fileExists(path) {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrPriceFileNotFound.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	http.ServeFile(w, r, path)
}

// Uploads lists the most recent upload audit rows.
//
// Endpoint: GET /api/uploads?limit=
// Response: 200 OK with {uploads: [...]}
// Error: 500 Internal Server Error if the audit trail cannot be read
func (h *UploadHandler) Uploads(w http.ResponseWriter, r *http.Request) {
	limit := request.ParseLimit(r.URL.Query().Get("limit"), 50, 500)

	uploads, err := h.uploadService.ListUploads(limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveUploads.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{"uploads": uploads})
}

// readUpload extracts the multipart "file" part, enforcing the size
// limit. On failure it writes the 400 response and returns ok=false.
func readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadBytes)

	if err := r.ParseMultipartForm(service.MaxUploadBytes); err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCSVFile.Error(), nil)
		return "", nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCSVFile.Error(), nil)
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCSVFile.Error(), nil)
		return "", nil, false
	}

	return header.Filename, data, true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// respondUploadError maps upload-service errors, keeping the parse
// failure message endpoint-specific.
func respondUploadError(w http.ResponseWriter, err error, parseMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCSVFile):
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCSVFile.Error(), nil)
	case errors.Is(err, apperrors.ErrMalformedCSV):
		response.RespondError(w, http.StatusBadRequest, parseMessage, err.Error())
	default:
		log.Printf("upload failed: %v", err)
		response.RespondError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}
