package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
// MongoURI may be empty: the service then runs in sample-only mode.
type Config struct {
	Port          string
	MongoURI      string
	AllowedOrigin string
	LogLevel      string
	LogFormat     string
}

// Load reads a .env file when present, then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8000"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
