package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"veridoc/internal/cache"
	"veridoc/internal/config"
	"veridoc/internal/db"
	"veridoc/internal/handlers"
	"veridoc/internal/models"
	"veridoc/internal/ocr"
	"veridoc/internal/pipeline"
	"veridoc/internal/roster"
	"veridoc/internal/router"
)

func main() {
	cfg := config.Load()

	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal("connection to db failed: ", err)
	}

	profiles, err := loadRoster(cfg)
	if err != nil {
		log.Fatal("roster load failed: ", err)
	}
	log.Printf("roster loaded: %d profiles (%d active)", len(profiles), len(roster.Active(profiles)))

	ctx := context.Background()
	visionSrc, err := ocr.NewVisionSource(ctx)
	if err != nil {
		log.Fatal("vision client init failed: ", err)
	}
	var source ocr.TextSource = &ocr.Composite{Image: visionSrc, PDF: ocr.NewPDFSource()}
	defer source.Close()

	if cfg.RedisURL != "" {
		c, err := cache.New(cfg.RedisURL)
		if err != nil {
			log.Println("Warning: redis unavailable, OCR cache disabled:", err)
		} else {
			defer c.Close()
			source = &cache.CachingSource{Inner: source, Cache: c}
			log.Println("OCR cache enabled")
		}
	}

	proc := pipeline.New(source, profiles)
	handlers.Setup(proc, profiles, cfg.ShareSecret, cfg.BaseURL)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.RegisterRouter(),
	}

	go func() {
		log.Println("listening on :" + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("forced shutdown:", err)
	}
}

// loadRoster prefers a roster file when configured and seeds the DB table
// from it; otherwise the table itself is the roster.
func loadRoster(cfg *config.Config) ([]roster.Profile, error) {
	if cfg.RosterFile != "" {
		profiles, err := roster.Load(cfg.RosterFile)
		if err != nil {
			return nil, err
		}
		seedRoster(profiles)
		return profiles, nil
	}

	var rows []models.IdentityProfile
	if err := db.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	profiles := make([]roster.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, row.ToProfile())
	}
	return profiles, nil
}

func seedRoster(profiles []roster.Profile) {
	for _, p := range profiles {
		row := models.FromProfile(p)
		var count int64
		db.DB.Model(&models.IdentityProfile{}).Where("employee_id = ?", row.EmployeeID).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.DB.Create(&row).Error; err != nil {
			log.Println("Warning: failed to seed roster profile:", err)
		}
	}
}
