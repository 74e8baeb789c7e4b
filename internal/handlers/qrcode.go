package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
)

// GetRecordQRCode: GET /api/v1/records/{id}/qrcode
// Encodes the public record URL as a PNG QR code.
func GetRecordQRCode(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "id")
	if recordID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	data := strings.TrimRight(baseURL, "/") + "/api/v1/records/" + recordID

	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
