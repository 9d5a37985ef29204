package storage

import (
	"context"
	"fmt"

	"github.com/feichai0017/inquiry-reader/config"
	"github.com/feichai0017/inquiry-reader/pkg/logger"
	"github.com/feichai0017/inquiry-reader/pkg/storage/minio"
	"github.com/feichai0017/inquiry-reader/pkg/storage/s3"
	"github.com/feichai0017/inquiry-reader/pkg/storage/types"
)

// StorageType selects a backend implementation.
type StorageType string

const (
	StorageTypeS3    StorageType = "s3"
	StorageTypeMinio StorageType = "minio"
)

// Entry is one item of a single-level listing.
type Entry = types.Entry

// Storage is the object-store capability consumed by the scanner: list one
// directory level, download one object. Backends paginate internally.
type Storage interface {
	// ListLevel lists a single level under prefix. Empty or "/" means the
	// bucket root.
	ListLevel(ctx context.Context, prefix string) ([]Entry, error)
	// Download fetches one object's bytes.
	Download(ctx context.Context, path string) ([]byte, error)
}

// NewStorage is the factory method for storage backends.
func NewStorage(storageType StorageType, cfg *config.Config, log logger.Logger) (Storage, error) {
	switch storageType {
	case StorageTypeS3:
		return s3.NewStorage(cfg, log)
	case StorageTypeMinio:
		return minio.NewStorage(cfg, log)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}
