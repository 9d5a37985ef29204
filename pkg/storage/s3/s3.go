package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/feichai0017/inquiry-reader/config"
	"github.com/feichai0017/inquiry-reader/pkg/logger"
	"github.com/feichai0017/inquiry-reader/pkg/storage/types"
)

type S3Storage struct {
	client     *s3.Client
	bucketName string
	logger     logger.Logger
}

func NewStorage(cfg *config.Config, log logger.Logger) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:     client,
		bucketName: cfg.Bucket,
		logger:     log,
	}, nil
}

// ListLevel implements Storage.ListLevel. The "/" delimiter gives one level:
// Contents are objects, CommonPrefixes are directories.
func (s *S3Storage) ListLevel(ctx context.Context, prefix string) ([]types.Entry, error) {
	p := normalizePrefix(prefix)

	input := &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucketName),
		Prefix:    aws.String(p),
		Delimiter: aws.String("/"),
	}

	var entries []types.Entry
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			s.logger.Error("Failed to list objects from S3",
				logger.String("bucket", s.bucketName),
				logger.String("prefix", p),
				logger.Error(err),
			)
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), p)
			if name == "" {
				// the prefix placeholder object itself
				continue
			}
			entries = append(entries, types.Entry{
				Name:     name,
				ID:       strings.Trim(aws.ToString(obj.ETag), `"`),
				SizeHint: obj.Size,
			})
		}

		for _, cp := range page.CommonPrefixes {
			name := strings.TrimPrefix(aws.ToString(cp.Prefix), p)
			entries = append(entries, types.Entry{Name: strings.TrimSuffix(name, "/")})
		}
	}

	return entries, nil
}

// Download implements Storage.Download.
func (s *S3Storage) Download(ctx context.Context, path string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(path),
	})
	if err != nil {
		s.logger.Error("Failed to get file from S3",
			logger.String("bucket", s.bucketName),
			logger.String("key", path),
			logger.Error(err),
		)
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return data, nil
}

func normalizePrefix(prefix string) string {
	if prefix == "" || prefix == "/" {
		return ""
	}
	return strings.TrimSuffix(prefix, "/") + "/"
}
