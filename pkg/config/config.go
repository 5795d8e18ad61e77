package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	DatabaseDSN string

	JWTSecret string
	JWTExpiry time.Duration

	UploadDir       string
	MaxUploadBytes  int64
	MaxPhotosPerReq int
	DownloadTimeout time.Duration
}

// IsProduction reports whether the service runs with production settings.
// Controls the Secure attribute on the auth cookie.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtExpiry := time.Hour
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			jwtExpiry = parsed
		}
	}

	downloadTimeout := 15 * time.Second
	if t := os.Getenv("DOWNLOAD_TIMEOUT"); t != "" {
		if parsed, err := time.ParseDuration(t); err == nil {
			downloadTimeout = parsed
		}
	}

	maxUpload := int64(10 << 20) // 10 MiB per file
	if m := os.Getenv("MAX_UPLOAD_BYTES"); m != "" {
		if parsed, err := strconv.ParseInt(m, 10, 64); err == nil && parsed > 0 {
			maxUpload = parsed
		}
	}

	maxPhotos := 10
	if m := os.Getenv("MAX_PHOTOS_PER_REQUEST"); m != "" {
		if parsed, err := strconv.Atoi(m); err == nil && parsed > 0 {
			maxPhotos = parsed
		}
	}

	return &Config{
		Port:            getEnv("PORT", "4000"),
		AppEnv:          getEnv("APP_ENV", "development"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=stayhub port=5432 sslmode=disable"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:       jwtExpiry,
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:  maxUpload,
		MaxPhotosPerReq: maxPhotos,
		DownloadTimeout: downloadTimeout,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
