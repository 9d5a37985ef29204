package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment leaves them unset.
const (
	DefaultBucket   = "vendor-inquiries"
	DefaultMaxDepth = 6
)

// Config is the full runtime configuration, built once at startup and passed
// down explicitly. Core packages never read the environment themselves.
type Config struct {
	StorageType string // "minio" or "s3"
	Endpoint    string
	AccessKey   string
	SecretKey   string
	Region      string
	UseSSL      bool
	Bucket      string
	Prefix      string

	DatabaseURL string
}

// NotConfiguredError reports every missing required setting at once, so the
// operator fixes the environment in one pass.
type NotConfiguredError struct {
	Missing []string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("not configured: missing %s", strings.Join(e.Missing, ", "))
}

// Load reads .env (if present) and the environment, and validates required
// settings. A NotConfiguredError here is fatal to the run: the caller must
// halt before any storage or database access.
func Load() (*Config, error) {
	// .env is optional, plain environment variables are fine
	_ = godotenv.Load()

	cfg := &Config{
		StorageType: getenvDefault("STORAGE_TYPE", "minio"),
		Endpoint:    os.Getenv("STORAGE_ENDPOINT"),
		AccessKey:   os.Getenv("STORAGE_ACCESS_KEY"),
		SecretKey:   os.Getenv("STORAGE_SECRET_KEY"),
		Region:      os.Getenv("STORAGE_REGION"),
		UseSSL:      os.Getenv("STORAGE_USE_SSL") == "true",
		Bucket:      getenvDefault("STORAGE_BUCKET", DefaultBucket),
		Prefix:      os.Getenv("STORAGE_PREFIX"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	var missing []string
	if cfg.Endpoint == "" {
		missing = append(missing, "STORAGE_ENDPOINT")
	}
	if cfg.AccessKey == "" {
		missing = append(missing, "STORAGE_ACCESS_KEY")
	}
	if cfg.SecretKey == "" {
		missing = append(missing, "STORAGE_SECRET_KEY")
	}
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return nil, &NotConfiguredError{Missing: missing}
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
