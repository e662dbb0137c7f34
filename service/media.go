package service

import (
	"context"

	"Vidtube/config"
	"Vidtube/pkg/log"
	"Vidtube/pkg/media"
	"Vidtube/pkg/response"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ IMediaService = (*MediaService)(nil)

type IMediaService interface {
	// UploadImage 校验并上传图片
	UploadImage(ctx context.Context, localPath, folder string) (*media.Object, error)
	// UploadVideo 校验并上传视频，返回时长(秒)
	UploadVideo(ctx context.Context, localPath string) (*media.Object, float64, error)
	// Destroy removes the objects, logging instead of failing.
	Destroy(ctx context.Context, publicIDs ...string)
	// DestroyStrict stops at the first object that could not be removed.
	DestroyStrict(ctx context.Context, publicIDs ...string) error
}

type MediaService struct {
	Store  media.Store
	Conf   *config.Upload
	Prober media.Prober
}

func (s *MediaService) UploadImage(ctx context.Context, localPath, folder string) (*media.Object, error) {
	info, err := s.inspect(localPath, media.KindImage, s.Conf.MaxImageBytes)
	if err != nil {
		return nil, err
	}
	obj, err := s.Store.Upload(ctx, media.UploadInput{
		LocalPath:   localPath,
		Folder:      folder,
		ContentType: info.ContentType,
		Ext:         info.Ext,
	})
	if err != nil {
		return nil, errors.Wrap(err, "upload image")
	}
	return obj, nil
}

func (s *MediaService) UploadVideo(ctx context.Context, localPath string) (*media.Object, float64, error) {
	info, err := s.inspect(localPath, media.KindVideo, s.Conf.MaxVideoBytes)
	if err != nil {
		return nil, 0, err
	}

	// 时长探测失败不阻断上传
	duration, err := s.Prober.Duration(ctx, localPath)
	if err != nil {
		log.L.Warn("probe video duration", zap.String("path", localPath), zap.Error(err))
		duration = 0
	}

	obj, err := s.Store.Upload(ctx, media.UploadInput{
		LocalPath:   localPath,
		Folder:      media.FolderVideo,
		ContentType: info.ContentType,
		Ext:         info.Ext,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "upload video")
	}
	return obj, duration, nil
}

func (s *MediaService) Destroy(ctx context.Context, publicIDs ...string) {
	for _, id := range publicIDs {
		if id == "" {
			continue
		}
		if err := s.Store.Destroy(ctx, id); err != nil {
			log.L.Error("destroy media", zap.String("public_id", id), zap.Error(err))
		}
	}
}

func (s *MediaService) DestroyStrict(ctx context.Context, publicIDs ...string) error {
	for _, id := range publicIDs {
		if id == "" {
			continue
		}
		if err := s.Store.Destroy(ctx, id); err != nil {
			return errors.Wrapf(err, "destroy media %s", id)
		}
	}
	return nil
}

func (s *MediaService) inspect(localPath string, kind media.Kind, maxBytes int64) (*media.FileInfo, error) {
	info, err := media.Inspect(localPath, kind, maxBytes)
	if errors.Is(err, media.ErrInvalidFile) {
		return nil, response.InvalidArgument(err.Error())
	}
	if err != nil {
		return nil, errors.Wrap(err, "inspect upload")
	}
	return info, nil
}
