package media

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Storage publica imagens normalizadas num bucket S3 e devolve a URL
// pública persistida nos modelos.
type Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

type StorageConfig struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	// URL base pública (CDN ou endpoint do bucket).
	PublicURL string
}

func NewStorage(cfg StorageConfig) *Storage {
	if cfg.Bucket == "" || cfg.AccessKey == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	})

	baseURL := cfg.PublicURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &Storage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}
}

// Upload grava a imagem sob um nome aleatório e retorna a URL pública.
func (s *Storage) Upload(ctx context.Context, folder string, data []byte) (string, error) {
	if s == nil {
		return "", fmt.Errorf("media storage not configured")
	}

	key := fmt.Sprintf("%s/%s.webp", folder, uuid.NewString())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}
