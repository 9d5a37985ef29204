package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setFullEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_ENDPOINT", "localhost:9000")
	t.Setenv("STORAGE_ACCESS_KEY", "minioadmin")
	t.Setenv("STORAGE_SECRET_KEY", "minioadmin")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/invoices")
}

func TestLoad_Defaults(t *testing.T) {
	setFullEnv(t)
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("STORAGE_PREFIX", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "minio", cfg.StorageType)
	assert.Equal(t, DefaultBucket, cfg.Bucket)
	assert.Empty(t, cfg.Prefix)
	assert.False(t, cfg.UseSSL)
}

func TestLoad_Overrides(t *testing.T) {
	setFullEnv(t)
	t.Setenv("STORAGE_TYPE", "s3")
	t.Setenv("STORAGE_BUCKET", "ap-inbox")
	t.Setenv("STORAGE_PREFIX", "inquiries/2024")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3", cfg.StorageType)
	assert.Equal(t, "ap-inbox", cfg.Bucket)
	assert.Equal(t, "inquiries/2024", cfg.Prefix)
	assert.True(t, cfg.UseSSL)
}

func TestLoad_MissingReportsAll(t *testing.T) {
	t.Setenv("STORAGE_ENDPOINT", "")
	t.Setenv("STORAGE_ACCESS_KEY", "")
	t.Setenv("STORAGE_SECRET_KEY", "x")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)

	var ncErr *NotConfiguredError
	require.True(t, errors.As(err, &ncErr))
	assert.Contains(t, ncErr.Missing, "STORAGE_ENDPOINT")
	assert.Contains(t, ncErr.Missing, "STORAGE_ACCESS_KEY")
	assert.Contains(t, ncErr.Missing, "DATABASE_URL")
	assert.NotContains(t, ncErr.Missing, "STORAGE_SECRET_KEY")
	assert.Contains(t, err.Error(), "not configured")
}
