package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"veridoc/internal/handlers"
	"veridoc/internal/middleware"
)

func RegisterRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	// Document verification (public)
	r.Post("/api/v1/verify-document", handlers.VerifyDocument)

	// Processed records (caller-held list: list, inspect, delete)
	r.Get("/api/v1/records", handlers.ListRecords)
	r.Get("/api/v1/records/{id}", handlers.GetRecord)
	r.Delete("/api/v1/records/{id}", handlers.DeleteRecord)
	r.Get("/api/v1/records/{id}/qrcode", handlers.GetRecordQRCode)

	// Short-lived share links for records
	r.Post("/api/v1/records/generate-share-link", handlers.GenerateShareLink)
	r.Get("/api/v1/record-info/{id}", handlers.GetRecordInfo)

	// Matching roster
	r.Get("/api/v1/roster", handlers.ListRoster)

	return r
}
