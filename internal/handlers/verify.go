package handlers

import (
	"io"
	"log"
	"net/http"

	"veridoc/internal/db"
	"veridoc/internal/models"
	"veridoc/internal/pipeline"
)

// VerifyDocument: POST /api/v1/verify-document
// multipart/form-data with file field "document"
func VerifyDocument(w http.ResponseWriter, r *http.Request) {
	// Limit body to 10MB
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "failed to parse form or file too large"})
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		// Frontends disagree on the field name; try the usual suspects and
		// finally fall back to the first file field present.
		if r.MultipartForm != nil && r.MultipartForm.File != nil {
			keys := make([]string, 0, len(r.MultipartForm.File))
			for k := range r.MultipartForm.File {
				keys = append(keys, k)
			}
			alts := []string{"file", "upload", "image", "certificate", "doc", "document[]", "files[]"}
			for _, a := range alts {
				if f2, h2, err2 := r.FormFile(a); err2 == nil {
					file, header, err = f2, h2, nil
					log.Println("verify: using alternative file field:", a)
					break
				}
			}
			if err != nil && len(keys) > 0 {
				if f2, h2, err2 := r.FormFile(keys[0]); err2 == nil {
					file, header, err = f2, h2, nil
					log.Println("verify: falling back to first file field:", keys[0])
				}
			}
		}
		if err != nil {
			writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "missing file field 'document' (send multipart/form-data with field name 'document')"})
			return
		}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "failed to read uploaded file"})
		return
	}

	rec, err := proc.Process(r.Context(), header.Filename, data, func(p pipeline.Progress) {
		log.Printf("verify: %3d%% %s", p.Percent, p.Stage)
	})
	if err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": err.Error()})
		return
	}

	row := models.NewVerificationRecord(rec)
	if err := db.DB.Create(&row).Error; err != nil {
		log.Println("verify: failed to store record:", err)
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "failed to store verification record"})
		return
	}

	writeJSONResp(w, http.StatusOK, map[string]any{
		"status": "Processed",
		"record": rec,
	})
}
