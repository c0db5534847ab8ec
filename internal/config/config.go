package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, read from the environment.
type Config struct {
	Port     string
	DBPath   string
	Password string
	LogLevel string

	// S3-compatible blob storage for completion photos and audio clips.
	S3Endpoint  string
	S3Bucket    string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("ZOZNAMY_PORT", "8080"),
		DBPath:   getEnv("ZOZNAMY_DB_PATH", "zoznamy.db"),
		Password: getEnv("ZOZNAMY_PASSWORD", ""),
		LogLevel: getEnv("ZOZNAMY_LOG_LEVEL", "info"),

		S3Endpoint:  getEnv("ZOZNAMY_S3_ENDPOINT", ""),
		S3Bucket:    getEnv("ZOZNAMY_S3_BUCKET", ""),
		S3Region:    getEnv("ZOZNAMY_S3_REGION", "auto"),
		S3AccessKey: getEnv("ZOZNAMY_S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("ZOZNAMY_S3_SECRET_KEY", ""),
		S3PublicURL: getEnv("ZOZNAMY_S3_PUBLIC_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
