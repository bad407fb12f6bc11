package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries everything the service reads from the environment.
type Config struct {
	Port         string
	DatabasePath string
	UploadDir    string
	UploadPrefix string

	AdminPassword string
	SessionSecret string

	// MaxUploadBytes caps the request body on every endpoint; multipart
	// product uploads are the only large payloads.
	MaxUploadBytes int64

	Env string
}

func Load() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		DatabasePath:   getenv("DATABASE_PATH", "database/shop.db"),
		UploadDir:      getenv("UPLOAD_DIR", "static/images/products"),
		UploadPrefix:   getenv("UPLOAD_PREFIX", "/static/images/products"),
		AdminPassword:  getenv("ADMIN_PASSWORD", "123123"),
		SessionSecret:  getenv("SESSION_SECRET", "your-secret-key-here-123456"),
		MaxUploadBytes: getint64("MAX_UPLOAD_BYTES", 8<<20),
		Env:            strings.ToLower(getenv("ENV", "development")),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getint64(key string, def int64) int64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil && v > 0 {
			return v
		}
	}
	return def
}
