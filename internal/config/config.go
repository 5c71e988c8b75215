package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the API server.
type Config struct {
	Port   string
	DBPath string
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "purpoise.db"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
