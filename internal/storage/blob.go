package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/WebArtifcatsind/my-project-backend/internal/config"
)

// BlobStore writes uploaded files to object storage and returns public URLs.
// Upload must complete before any database row points at the returned URL.
type BlobStore interface {
	Upload(ctx context.Context, folder, originalName string, data []byte) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

type s3BlobStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
	logger  *zap.Logger
}

// NewS3BlobStore builds an S3-backed store from config.
func NewS3BlobStore(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (BlobStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &s3BlobStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Upload stores the buffer under folder/<uuid>_<original name> with public
// read access and returns the resolvable URL.
func (s *s3BlobStore) Upload(ctx context.Context, folder, originalName string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%s_%s", folder, uuid.NewString(), sanitizeName(originalName))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
		ACL:    types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		s.logger.Error("blob upload failed", zap.String("key", key), zap.Error(err))
		return "", err
	}

	return s.baseURL + "/" + key, nil
}

// Delete removes the object behind a previously returned URL. The database
// row delete is a separate step; the two are not transactional.
func (s *s3BlobStore) Delete(ctx context.Context, fileURL string) error {
	key := strings.TrimPrefix(strings.TrimPrefix(fileURL, s.baseURL), "/")
	if key == "" || key == fileURL {
		return fmt.Errorf("url %q not under managed base", fileURL)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("blob delete failed", zap.String("key", key), zap.Error(err))
	}
	return err
}

func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ReplaceAll(name, " ", "_")
}
