package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"veridoc/internal/db"
	"veridoc/internal/models"
)

// ListRecords: GET /api/v1/records
func ListRecords(w http.ResponseWriter, r *http.Request) {
	var rows []models.VerificationRecord
	if err := db.DB.Order("processed_at desc").Limit(50).Find(&rows).Error; err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}
	writeJSONResp(w, http.StatusOK, rows)
}

// GetRecord: GET /api/v1/records/{id}
func GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var row models.VerificationRecord
	err := db.DB.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeJSONResp(w, http.StatusNotFound, map[string]string{"error": "record not found"})
		return
	} else if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}
	writeJSONResp(w, http.StatusOK, row)
}

// DeleteRecord: DELETE /api/v1/records/{id}
// Removes the stored record; the processing result itself is immutable.
func DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := db.DB.Where("id = ?", id).Delete(&models.VerificationRecord{})
	if res.Error != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}
	if res.RowsAffected == 0 {
		writeJSONResp(w, http.StatusNotFound, map[string]string{"error": "record not found"})
		return
	}
	writeJSONResp(w, http.StatusOK, map[string]string{"message": "record deleted"})
}
