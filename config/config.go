package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment.
type Config struct {
	Port   string
	DBPath string
}

// Load reads .env when present and applies defaults suitable for a local
// single-tenant install.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %v", err)
	}

	return Config{
		Port:   getEnv("PORT", "3000"),
		DBPath: getEnv("DB_PATH", "database.db"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
