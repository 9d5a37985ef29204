package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/feichai0017/inquiry-reader/config"
	"github.com/feichai0017/inquiry-reader/pkg/logger"
	"github.com/feichai0017/inquiry-reader/pkg/storage/types"
)

type MinioStorage struct {
	client     *minio.Client
	bucketName string
	logger     logger.Logger
}

func NewStorage(cfg *config.Config, log logger.Logger) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinioStorage{
		client:     client,
		bucketName: cfg.Bucket,
		logger:     log,
	}, nil
}

// ListLevel implements Storage.ListLevel. A non-recursive listing returns
// objects directly under the prefix plus directory placeholders (keys ending
// in "/").
func (m *MinioStorage) ListLevel(ctx context.Context, prefix string) ([]types.Entry, error) {
	p := normalizePrefix(prefix)

	var entries []types.Entry
	objectCh := m.client.ListObjects(ctx, m.bucketName, minio.ListObjectsOptions{
		Prefix:    p,
		Recursive: false,
	})

	for obj := range objectCh {
		if obj.Err != nil {
			m.logger.Error("Failed to list objects from MinIO",
				logger.String("bucket", m.bucketName),
				logger.String("prefix", p),
				logger.Error(obj.Err),
			)
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}

		name := strings.TrimPrefix(obj.Key, p)
		if name == "" {
			continue
		}

		if strings.HasSuffix(name, "/") {
			entries = append(entries, types.Entry{Name: strings.TrimSuffix(name, "/")})
			continue
		}

		size := obj.Size
		entries = append(entries, types.Entry{
			Name:     name,
			ID:       obj.ETag,
			SizeHint: &size,
		})
	}

	return entries, nil
}

// Download implements Storage.Download.
func (m *MinioStorage) Download(ctx context.Context, path string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucketName, path, minio.GetObjectOptions{})
	if err != nil {
		m.logger.Error("Failed to get file from MinIO",
			logger.String("bucket", m.bucketName),
			logger.String("key", path),
			logger.Error(err),
		)
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return data, nil
}

// normalizePrefix maps root spellings (empty, "/") to the bucket root and
// ensures directory prefixes end with a slash.
func normalizePrefix(prefix string) string {
	if prefix == "" || prefix == "/" {
		return ""
	}
	return strings.TrimSuffix(prefix, "/") + "/"
}
