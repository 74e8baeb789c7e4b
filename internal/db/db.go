package db

import (
	"errors"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"veridoc/internal/models"
)

var DB *gorm.DB

// Init connects to Postgres and migrates the tables the service owns.
func Init(dsn string) error {
	if dsn == "" {
		return errors.New("missing database DSN (set DATABASE_URL)")
	}
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	log.Println("connected to database")

	if err = DB.AutoMigrate(&models.IdentityProfile{}); err != nil {
		return err
	}
	if err = DB.AutoMigrate(&models.VerificationRecord{}); err != nil {
		return err
	}
	return nil
}
