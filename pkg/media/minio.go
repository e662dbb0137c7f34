package media

import (
	"context"
	"fmt"

	"Vidtube/config"
	"Vidtube/pkg/log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type MinioStore struct {
	Client     *minio.Client
	BucketName string
	BaseURL    string
}

var _ Store = (*MinioStore)(nil)

// NewMinioStore connects and creates the bucket when it is missing.
func NewMinioStore(ctx context.Context, cfg *config.Minio, baseURL string) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket error: %w", err)
		}
		log.L.Info("minio bucket created", zap.String("bucket", cfg.Bucket))
	}

	return &MinioStore{Client: client, BucketName: cfg.Bucket, BaseURL: baseURL}, nil
}

func (s *MinioStore) Upload(ctx context.Context, in UploadInput) (*Object, error) {
	key := objectKey(in.Folder, in.Ext)
	_, err := s.Client.FPutObject(ctx, s.BucketName, key, in.LocalPath, minio.PutObjectOptions{
		ContentType: in.ContentType,
	})
	if err != nil {
		return nil, err
	}
	return &Object{URL: publicURL(s.BaseURL, key), PublicID: key}, nil
}

func (s *MinioStore) Destroy(ctx context.Context, publicID string) error {
	err := s.Client.RemoveObject(ctx, s.BucketName, publicID, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return nil
	}
	return err
}
