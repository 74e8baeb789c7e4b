package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string // empty disables the OCR cache
	RosterFile  string // YAML roster; seeds the DB table when set
	ShareSecret string
	BaseURL     string // public base URL used in share links and QR codes
}

// Load reads .env if present and falls back to plain environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:" + port
	}

	return &Config{
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		RosterFile:  os.Getenv("ROSTER_FILE"),
		ShareSecret: os.Getenv("SHARE_TOKEN_SECRET"),
		BaseURL:     base,
	}
}
