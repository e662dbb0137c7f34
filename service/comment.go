package service

import (
	"context"
	"strings"

	"Vidtube/dao"
	"Vidtube/models"
	"Vidtube/pkg/response"
	"Vidtube/pkg/snowflake"
	"Vidtube/types"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	List(ctx context.Context, viewerID, videoID int64, q *types.PageQuery) (*types.PageResult[*types.CommentResponse], error)
	Add(ctx context.Context, uid, videoID int64, content string) (*types.CommentResponse, error)
	Update(ctx context.Context, uid, commentID int64, content string) (*types.CommentResponse, error)
	Delete(ctx context.Context, uid, commentID int64) error
}

type CommentService struct {
	CommentRepo *dao.Comment
	VideoRepo   *dao.VideoDAO
	UsersRepo   *dao.Users
}

// List 视频评论列表
func (s *CommentService) List(ctx context.Context, viewerID, videoID int64, q *types.PageQuery) (*types.PageResult[*types.CommentResponse], error) {
	spec, err := commentListing.resolve(q)
	if err != nil {
		return nil, err
	}
	if _, err := findVisibleVideo(ctx, s.VideoRepo, viewerID, videoID); err != nil {
		return nil, err
	}

	items, total, err := s.CommentRepo.Paginate(ctx, dao.OnVideo(videoID), spec.Page)
	if err != nil {
		return nil, errors.Wrap(err, "list comments")
	}

	ids := make([]int64, 0, len(items))
	for _, c := range items {
		ids = append(ids, c.OwnerID)
	}
	owners, err := ownersOf(ctx, s.UsersRepo, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*types.CommentResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCommentResponse(c, owners[c.OwnerID]))
	}
	return types.NewPageResult(out, total, spec.page, spec.limit), nil
}

func (s *CommentService) Add(ctx context.Context, uid, videoID int64, content string) (*types.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, response.InvalidArgument("content is required")
	}
	if _, err := findVisibleVideo(ctx, s.VideoRepo, uid, videoID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:      snowflake.GenID(),
		VideoID: videoID,
		OwnerID: uid,
		Content: content,
	}
	if err := s.CommentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "create comment")
	}
	return s.respond(ctx, comment.ID)
}

func (s *CommentService) Update(ctx context.Context, uid, commentID int64, content string) (*types.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, response.InvalidArgument("content is required")
	}
	comment, err := s.find(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID != uid {
		return nil, response.Forbidden("you are not the owner of this comment")
	}

	n, err := s.CommentRepo.UpdateWhere(ctx, map[string]any{"content": content}, "id = ? AND owner_id = ?", commentID, uid)
	if err != nil {
		return nil, errors.Wrap(err, "update comment")
	}
	if n == 0 {
		return nil, response.NotFound("comment not found")
	}
	return s.respond(ctx, commentID)
}

// Delete 删除评论
// Allowed for the author and for the owner of the commented video.
func (s *CommentService) Delete(ctx context.Context, uid, commentID int64) error {
	comment, err := s.find(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.OwnerID != uid {
		video, err := s.VideoRepo.FindById(ctx, comment.VideoID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(err, "find video")
		}
		if video == nil || video.OwnerID != uid {
			return response.Forbidden("you are not allowed to delete this comment")
		}
	}
	if err := s.CommentRepo.DeleteCascade(ctx, commentID); err != nil {
		return errors.Wrap(err, "delete comment")
	}
	return nil
}

func (s *CommentService) find(ctx context.Context, commentID int64) (*models.Comment, error) {
	comment, err := s.CommentRepo.FindById(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("comment not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find comment")
	}
	return comment, nil
}

func (s *CommentService) respond(ctx context.Context, commentID int64) (*types.CommentResponse, error) {
	comment, err := s.find(ctx, commentID)
	if err != nil {
		return nil, err
	}
	owners, err := ownersOf(ctx, s.UsersRepo, []int64{comment.OwnerID})
	if err != nil {
		return nil, err
	}
	return toCommentResponse(comment, owners[comment.OwnerID]), nil
}
