package media

import (
	"context"
	"errors"
	"net/http"

	"Vidtube/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

type OssStore struct {
	Client     *oss.Client
	BucketName string
	BaseURL    string
}

var _ Store = (*OssStore)(nil)

func NewOssStore(cfg *config.OssConfig, baseURL string) *OssStore {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	return &OssStore{
		Client:     oss.NewClient(ossCfg),
		BucketName: cfg.Bucket,
		BaseURL:    baseURL,
	}
}

// Upload 上传本地文件
func (s *OssStore) Upload(ctx context.Context, in UploadInput) (*Object, error) {
	key := objectKey(in.Folder, in.Ext)
	_, err := s.Client.PutObjectFromFile(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.BucketName),
		Key:         oss.Ptr(key),
		ContentType: oss.Ptr(in.ContentType),
	}, in.LocalPath)
	if err != nil {
		return nil, err
	}
	return &Object{URL: publicURL(s.BaseURL, key), PublicID: key}, nil
}

// Destroy 删除对象
func (s *OssStore) Destroy(ctx context.Context, publicID string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(publicID),
	})
	var serr *oss.ServiceError
	if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}
