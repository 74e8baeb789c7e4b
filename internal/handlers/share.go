package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"veridoc/internal/db"
	"veridoc/internal/models"
)

type shareClaims struct {
	RecordID string `json:"record_id"`
	jwt.RegisteredClaims
}

func getShareSecret() ([]byte, error) {
	if shareSecret != "" {
		return []byte(shareSecret), nil
	}
	return nil, errors.New("missing SHARE_TOKEN_SECRET")
}

// GenerateShareLink: POST /api/v1/records/generate-share-link
// Body: {"record_id": "...", "expires_in_hours": 24}
func GenerateShareLink(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	recordID := ""
	if v, ok := payload["record_id"].(string); ok {
		recordID = strings.TrimSpace(v)
	} else if v, ok := payload["recordId"].(string); ok { // camelCase fallback
		recordID = strings.TrimSpace(v)
	}
	if recordID == "" {
		writeJSONResp(w, http.StatusBadRequest, map[string]string{"error": "record_id is required"})
		return
	}

	// expires_in_hours may come as number or string
	expires := 0
	for _, k := range []string{"expires_in_hours", "expiresInHours", "duration"} {
		if v, ok := payload[k]; ok {
			switch t := v.(type) {
			case float64:
				expires = int(t)
			case string:
				if i, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
					expires = i
				}
			}
			break
		}
	}
	// Enforce 1..168 hours to avoid immediately-expired tokens
	if expires < 1 || expires > 168 {
		writeJSONResp(w, http.StatusBadRequest, map[string]string{"error": "expires_in_hours must be between 1 and 168"})
		return
	}

	var row models.VerificationRecord
	if err := db.DB.Where("id = ?", recordID).First(&row).Error; err != nil {
		writeJSONResp(w, http.StatusNotFound, map[string]string{"error": "record not found"})
		return
	}

	secret, err := getShareSecret()
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]string{"error": "server misconfigured"})
		return
	}

	exp := time.Now().Add(time.Duration(expires) * time.Hour)
	claims := shareClaims{
		RecordID: recordID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(secret)
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]string{"error": "failed to sign share token"})
		return
	}

	url := fmt.Sprintf("%s/api/v1/record-info/%s?token=%s", strings.TrimRight(baseURL, "/"), recordID, signed)
	writeJSONResp(w, http.StatusOK, map[string]string{"shareable_url": url})
}

// GetRecordInfo: GET /api/v1/record-info/{id}?token=...
func GetRecordInfo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONResp(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		writeJSONResp(w, http.StatusUnauthorized, map[string]string{"error": "This verification link is invalid or has expired."})
		return
	}

	secret, err := getShareSecret()
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]string{"error": "server misconfigured"})
		return
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &shareClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		writeJSONResp(w, http.StatusUnauthorized, map[string]string{"error": "This verification link is invalid or has expired."})
		return
	}
	claims, ok := parsed.Claims.(*shareClaims)
	if !ok || claims.RecordID == "" || claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		writeJSONResp(w, http.StatusUnauthorized, map[string]string{"error": "This verification link is invalid or has expired."})
		return
	}
	if claims.RecordID != id {
		writeJSONResp(w, http.StatusForbidden, map[string]string{"error": "forbidden: id mismatch"})
		return
	}

	var row models.VerificationRecord
	err = db.DB.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeJSONResp(w, http.StatusNotFound, map[string]string{"error": "record not found"})
		return
	} else if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]string{"error": "database error"})
		return
	}

	writeJSONResp(w, http.StatusOK, map[string]any{
		"record":      row,
		"valid_until": claims.ExpiresAt.Time,
	})
}
