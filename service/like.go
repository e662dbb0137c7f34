package service

import (
	"context"
	"net/http"

	"Vidtube/dao"
	"Vidtube/models"
	"Vidtube/pkg/response"
	"Vidtube/types"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	// Toggle 点赞/取消点赞
	Toggle(ctx context.Context, uid int64, subject models.LikeSubject, subjectID int64) (*types.LikeStatus, error)
	LikedVideos(ctx context.Context, uid int64, q *types.PageQuery) (*types.PageResult[*types.VideoResponse], error)
}

type LikeService struct {
	LikeDAO     *dao.LikeDAO
	VideoRepo   *dao.VideoDAO
	CommentRepo *dao.Comment
	TweetRepo   *dao.TweetDAO
	UsersRepo   *dao.Users
}

func (s *LikeService) Toggle(ctx context.Context, uid int64, subject models.LikeSubject, subjectID int64) (*types.LikeStatus, error) {
	if err := s.checkSubject(ctx, uid, subject, subjectID); err != nil {
		return nil, err
	}
	liked, err := s.LikeDAO.Toggle(ctx, subject, subjectID, uid)
	if err != nil {
		return nil, errors.Wrap(err, "toggle like")
	}
	return &types.LikeStatus{IsLiked: liked}, nil
}

func (s *LikeService) checkSubject(ctx context.Context, uid int64, subject models.LikeSubject, subjectID int64) error {
	var (
		exists bool
		err    error
	)
	switch subject {
	case models.LikeSubjectVideo:
		_, err = findVisibleVideo(ctx, s.VideoRepo, uid, subjectID)
		return err
	case models.LikeSubjectComment:
		// comments on hidden videos are as hidden as the video
		comment, err := s.CommentRepo.FindById(ctx, subjectID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("comment not found")
		}
		if err != nil {
			return errors.Wrap(err, "check comment")
		}
		if _, err := findVisibleVideo(ctx, s.VideoRepo, uid, comment.VideoID); err != nil {
			if response.IsCode(err, http.StatusNotFound) {
				return response.NotFound("comment not found")
			}
			return err
		}
		return nil
	case models.LikeSubjectTweet:
		exists, err = s.TweetRepo.IsExist(ctx, "id = ?", subjectID)
	default:
		return response.InvalidArgument("unknown like subject")
	}
	if err != nil {
		return errors.Wrapf(err, "check %s", subject)
	}
	if !exists {
		return response.NotFound(string(subject) + " not found")
	}
	return nil
}

// LikedVideos pages over the user's likes whose video still exists, newest
// like first.
func (s *LikeService) LikedVideos(ctx context.Context, uid int64, q *types.PageQuery) (*types.PageResult[*types.VideoResponse], error) {
	spec, err := likedListing.resolve(q)
	if err != nil {
		return nil, err
	}
	scope := func(db *gorm.DB) *gorm.DB {
		return db.Scopes(dao.LikedBy(uid), dao.VisibleTo(uid))
	}
	items, total, err := s.VideoRepo.Paginate(ctx, scope, spec.Page)
	if err != nil {
		return nil, errors.Wrap(err, "list liked videos")
	}
	return videoPage(ctx, s.UsersRepo, items, total, spec)
}
