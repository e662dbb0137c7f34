package service

import (
	"context"
	"strings"

	"Vidtube/dao"
	"Vidtube/models"
	"Vidtube/pkg/media"
	"Vidtube/pkg/response"
	"Vidtube/pkg/snowflake"
	"Vidtube/types"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var _ IVideoService = (*VideoService)(nil)

type IVideoService interface {
	List(ctx context.Context, viewerID, ownerID int64, q *types.PageQuery) (*types.PageResult[*types.VideoResponse], error)
	Publish(ctx context.Context, ownerID int64, in *PublishVideoInput) (*types.VideoResponse, error)
	Get(ctx context.Context, viewerID, videoID int64) (*types.VideoResponse, error)
	Update(ctx context.Context, viewerID, videoID int64, in *UpdateVideoInput) (*types.VideoResponse, error)
	Delete(ctx context.Context, viewerID, videoID int64) error
	TogglePublish(ctx context.Context, viewerID, videoID int64) (*types.PublishStatus, error)
}

type PublishVideoInput struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// UpdateVideoInput 为 nil 的字段保持不变，路径为空表示不替换文件
type UpdateVideoInput struct {
	Title         *string
	Description   *string
	VideoPath     string
	ThumbnailPath string
}

type VideoService struct {
	VideoRepo *dao.VideoDAO
	UsersRepo *dao.Users
	Media     IMediaService
}

func (s *VideoService) List(ctx context.Context, viewerID, ownerID int64, q *types.PageQuery) (*types.PageResult[*types.VideoResponse], error) {
	spec, err := videoListing.resolve(q)
	if err != nil {
		return nil, err
	}
	exists, err := s.UsersRepo.IsExist(ctx, "id = ?", ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "check owner")
	}
	if !exists {
		return nil, response.NotFound("user not found")
	}

	items, total, err := s.VideoRepo.Paginate(ctx, dao.ByOwner(ownerID, viewerID == ownerID), spec.Page)
	if err != nil {
		return nil, errors.Wrap(err, "list videos")
	}
	return videoPage(ctx, s.UsersRepo, items, total, spec)
}

// Publish 上传视频
func (s *VideoService) Publish(ctx context.Context, ownerID int64, in *PublishVideoInput) (*types.VideoResponse, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return nil, response.InvalidArgument("title and description are required")
	}
	if in.VideoPath == "" || in.ThumbnailPath == "" {
		return nil, response.InvalidArgument("video file and thumbnail are required")
	}

	file, duration, err := s.Media.UploadVideo(ctx, in.VideoPath)
	if err != nil {
		return nil, err
	}
	thumb, err := s.Media.UploadImage(ctx, in.ThumbnailPath, media.FolderThumbnail)
	if err != nil {
		s.Media.Destroy(ctx, file.PublicID)
		return nil, err
	}

	video := &models.Video{
		ID:                snowflake.GenID(),
		OwnerID:           ownerID,
		Title:             title,
		Description:       description,
		VideoURL:          file.URL,
		VideoPublicID:     file.PublicID,
		ThumbnailURL:      thumb.URL,
		ThumbnailPublicID: thumb.PublicID,
		Duration:          duration,
		IsPublished:       true,
	}
	if err := s.VideoRepo.Create(ctx, video); err != nil {
		s.Media.Destroy(ctx, file.PublicID, thumb.PublicID)
		return nil, errors.Wrap(err, "create video")
	}
	return s.respond(ctx, video.ID)
}

// Get returns the video and counts a view the first time viewerID sees it.
// Unpublished videos are reported missing to everyone but the owner.
func (s *VideoService) Get(ctx context.Context, viewerID, videoID int64) (*types.VideoResponse, error) {
	video, err := s.visible(ctx, viewerID, videoID)
	if err != nil {
		return nil, err
	}

	counted, err := s.VideoRepo.RecordView(ctx, viewerID, videoID)
	if err != nil {
		return nil, errors.Wrap(err, "record view")
	}
	if counted {
		video.Views++
	}

	owners, err := ownersOf(ctx, s.UsersRepo, []int64{video.OwnerID})
	if err != nil {
		return nil, err
	}
	return toVideoResponse(video, owners[video.OwnerID]), nil
}

// Update 更新视频
// New files are uploaded before the record changes and old files are destroyed
// only after it has; a failed upload leaves the video untouched.
func (s *VideoService) Update(ctx context.Context, viewerID, videoID int64, in *UpdateVideoInput) (*types.VideoResponse, error) {
	data := make(map[string]any)
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, response.InvalidArgument("title must not be empty")
		}
		data["title"] = title
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, response.InvalidArgument("description must not be empty")
		}
		data["description"] = description
	}
	if len(data) == 0 && in.VideoPath == "" && in.ThumbnailPath == "" {
		return nil, response.InvalidArgument("nothing to update")
	}

	video, err := s.owned(ctx, viewerID, videoID)
	if err != nil {
		return nil, err
	}

	var uploaded, replaced []string
	if in.VideoPath != "" {
		file, duration, err := s.Media.UploadVideo(ctx, in.VideoPath)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, file.PublicID)
		replaced = append(replaced, video.VideoPublicID)
		data["video_url"] = file.URL
		data["video_public_id"] = file.PublicID
		data["duration"] = duration
	}
	if in.ThumbnailPath != "" {
		thumb, err := s.Media.UploadImage(ctx, in.ThumbnailPath, media.FolderThumbnail)
		if err != nil {
			s.Media.Destroy(ctx, uploaded...)
			return nil, err
		}
		uploaded = append(uploaded, thumb.PublicID)
		replaced = append(replaced, video.ThumbnailPublicID)
		data["thumbnail_url"] = thumb.URL
		data["thumbnail_public_id"] = thumb.PublicID
	}

	n, err := s.VideoRepo.UpdateWhere(ctx, data, "id = ? AND owner_id = ?", videoID, viewerID)
	if err != nil || n == 0 {
		s.Media.Destroy(ctx, uploaded...)
		if err != nil {
			return nil, errors.Wrap(err, "update video")
		}
		return nil, response.NotFound("video not found")
	}

	s.Media.Destroy(ctx, replaced...)
	return s.respond(ctx, videoID)
}

// Delete 删除视频
// Existence and ownership are settled before the media store is touched.
// The media goes first so a failed destroy keeps the record for a retry. The
// thumbnail is removed before the video so a partial failure leaves the
// record still playable.
func (s *VideoService) Delete(ctx context.Context, viewerID, videoID int64) error {
	video, err := s.owned(ctx, viewerID, videoID)
	if err != nil {
		return err
	}
	if err := s.Media.DestroyStrict(ctx, video.ThumbnailPublicID, video.VideoPublicID); err != nil {
		return err
	}
	if err := s.VideoRepo.DeleteCascade(ctx, videoID); err != nil {
		return errors.Wrap(err, "delete video")
	}
	return nil
}

func (s *VideoService) TogglePublish(ctx context.Context, viewerID, videoID int64) (*types.PublishStatus, error) {
	if _, err := s.owned(ctx, viewerID, videoID); err != nil {
		return nil, err
	}
	ok, err := s.VideoRepo.TogglePublish(ctx, videoID, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "toggle publish")
	}
	if !ok {
		return nil, response.NotFound("video not found")
	}
	video, err := s.find(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return &types.PublishStatus{IsPublished: video.IsPublished}, nil
}

func (s *VideoService) find(ctx context.Context, videoID int64) (*models.Video, error) {
	return findVideo(ctx, s.VideoRepo, videoID)
}

func (s *VideoService) visible(ctx context.Context, viewerID, videoID int64) (*models.Video, error) {
	return findVisibleVideo(ctx, s.VideoRepo, viewerID, videoID)
}

func (s *VideoService) owned(ctx context.Context, viewerID, videoID int64) (*models.Video, error) {
	video, err := s.find(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != viewerID {
		return nil, response.Forbidden("you are not the owner of this video")
	}
	return video, nil
}

func (s *VideoService) respond(ctx context.Context, videoID int64) (*types.VideoResponse, error) {
	video, err := s.find(ctx, videoID)
	if err != nil {
		return nil, err
	}
	owners, err := ownersOf(ctx, s.UsersRepo, []int64{video.OwnerID})
	if err != nil {
		return nil, err
	}
	return toVideoResponse(video, owners[video.OwnerID]), nil
}

func findVideo(ctx context.Context, repo *dao.VideoDAO, videoID int64) (*models.Video, error) {
	video, err := repo.FindById(ctx, videoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("video not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find video")
	}
	return video, nil
}

// findVisibleVideo reports unpublished videos as missing to everyone but the owner.
func findVisibleVideo(ctx context.Context, repo *dao.VideoDAO, viewerID, videoID int64) (*models.Video, error) {
	video, err := findVideo(ctx, repo, videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, response.NotFound("video not found")
	}
	return video, nil
}
