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

var _ ITweetService = (*TweetService)(nil)

type ITweetService interface {
	Create(ctx context.Context, uid int64, content string) (*types.TweetResponse, error)
	ListByUser(ctx context.Context, userID int64, q *types.PageQuery) (*types.PageResult[*types.TweetResponse], error)
	Update(ctx context.Context, uid, tweetID int64, content string) (*types.TweetResponse, error)
	Delete(ctx context.Context, uid, tweetID int64) error
}

type TweetService struct {
	TweetRepo *dao.TweetDAO
	UsersRepo *dao.Users
}

func (s *TweetService) Create(ctx context.Context, uid int64, content string) (*types.TweetResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, response.InvalidArgument("content is required")
	}
	tweet := &models.Tweet{ID: snowflake.GenID(), OwnerID: uid, Content: content}
	if err := s.TweetRepo.Create(ctx, tweet); err != nil {
		return nil, errors.Wrap(err, "create tweet")
	}
	return s.respond(ctx, tweet.ID)
}

func (s *TweetService) ListByUser(ctx context.Context, userID int64, q *types.PageQuery) (*types.PageResult[*types.TweetResponse], error) {
	spec, err := tweetListing.resolve(q)
	if err != nil {
		return nil, err
	}
	owners, err := ownersOf(ctx, s.UsersRepo, []int64{userID})
	if err != nil {
		return nil, err
	}
	owner, ok := owners[userID]
	if !ok {
		return nil, response.NotFound("user not found")
	}

	items, total, err := s.TweetRepo.Paginate(ctx, dao.TweetsOf(userID), spec.Page)
	if err != nil {
		return nil, errors.Wrap(err, "list tweets")
	}
	out := make([]*types.TweetResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toTweetResponse(t, owner))
	}
	return types.NewPageResult(out, total, spec.page, spec.limit), nil
}

func (s *TweetService) Update(ctx context.Context, uid, tweetID int64, content string) (*types.TweetResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, response.InvalidArgument("content is required")
	}
	if _, err := s.owned(ctx, uid, tweetID); err != nil {
		return nil, err
	}
	n, err := s.TweetRepo.UpdateWhere(ctx, map[string]any{"content": content}, "id = ? AND owner_id = ?", tweetID, uid)
	if err != nil {
		return nil, errors.Wrap(err, "update tweet")
	}
	if n == 0 {
		return nil, response.NotFound("tweet not found")
	}
	return s.respond(ctx, tweetID)
}

func (s *TweetService) Delete(ctx context.Context, uid, tweetID int64) error {
	if _, err := s.owned(ctx, uid, tweetID); err != nil {
		return err
	}
	if err := s.TweetRepo.DeleteCascade(ctx, tweetID); err != nil {
		return errors.Wrap(err, "delete tweet")
	}
	return nil
}

func (s *TweetService) owned(ctx context.Context, uid, tweetID int64) (*models.Tweet, error) {
	tweet, err := s.TweetRepo.FindById(ctx, tweetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("tweet not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find tweet")
	}
	if tweet.OwnerID != uid {
		return nil, response.Forbidden("you are not the owner of this tweet")
	}
	return tweet, nil
}

func (s *TweetService) respond(ctx context.Context, tweetID int64) (*types.TweetResponse, error) {
	tweet, err := s.TweetRepo.FindById(ctx, tweetID)
	if err != nil {
		return nil, errors.Wrap(err, "reload tweet")
	}
	owners, err := ownersOf(ctx, s.UsersRepo, []int64{tweet.OwnerID})
	if err != nil {
		return nil, err
	}
	return toTweetResponse(tweet, owners[tweet.OwnerID]), nil
}
