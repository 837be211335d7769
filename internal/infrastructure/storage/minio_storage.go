package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rafabene/contactpro-backend/internal/domain/ports"
	"github.com/rafabene/contactpro-backend/internal/infrastructure/config"
)

// MinioStorage implementa ports.ObjectStorage sobre qualquer storage
// compatível com S3 (MinIO, AWS S3, Supabase Storage via gateway S3)
type MinioStorage struct {
	client *minio.Client
	bucket string
	log    ports.Logger
}

// NewMinioStorage cria um novo cliente para o bucket configurado
func NewMinioStorage(cfg *config.StorageConfig, log ports.Logger) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	log.Info("object storage client ready",
		"endpoint", cfg.Endpoint,
		"bucket", cfg.Bucket,
	)

	return &MinioStorage{
		client: client,
		bucket: cfg.Bucket,
		log:    log,
	}, nil
}

// PresignedPut emite uma URL pré-assinada de PUT para a key informada.
// O Content-Type não entra na assinatura; o cliente o envia no PUT.
func (s *MinioStorage) PresignedPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	url, err := s.client.PresignedPutObject(ctx, s.bucket, key, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign put for %s: %w", key, err)
	}
	return url.String(), nil
}

// Remove deleta o objeto do bucket
func (s *MinioStorage) Remove(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
