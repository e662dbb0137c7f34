package service

import (
	"context"

	"Vidtube/dao"
	"Vidtube/pkg/response"
	"Vidtube/types"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var _ ISubscriptionService = (*SubscriptionService)(nil)

type ISubscriptionService interface {
	Toggle(ctx context.Context, uid, channelID int64) (*types.SubscriptionStatus, error)
	Subscribers(ctx context.Context, channelID int64, q *types.PageQuery) (*types.PageResult[*types.OwnerSummary], error)
	SubscribedChannels(ctx context.Context, subscriberID int64, q *types.PageQuery) (*types.PageResult[*types.OwnerSummary], error)
}

type SubscriptionService struct {
	SubscriptionRepo *dao.SubscriptionDAO
	UsersRepo        *dao.Users
}

// Toggle 订阅/取消订阅
func (s *SubscriptionService) Toggle(ctx context.Context, uid, channelID int64) (*types.SubscriptionStatus, error) {
	if uid == channelID {
		return nil, response.InvalidArgument("you cannot subscribe to your own channel")
	}
	if err := s.mustExist(ctx, channelID, "channel not found"); err != nil {
		return nil, err
	}
	on, err := s.SubscriptionRepo.Toggle(ctx, uid, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "toggle subscription")
	}
	return &types.SubscriptionStatus{IsSubscribed: on}, nil
}

func (s *SubscriptionService) Subscribers(ctx context.Context, channelID int64, q *types.PageQuery) (*types.PageResult[*types.OwnerSummary], error) {
	if err := s.mustExist(ctx, channelID, "channel not found"); err != nil {
		return nil, err
	}
	return s.page(ctx, dao.SubscribersOf(channelID), q)
}

func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID int64, q *types.PageQuery) (*types.PageResult[*types.OwnerSummary], error) {
	if err := s.mustExist(ctx, subscriberID, "user not found"); err != nil {
		return nil, err
	}
	return s.page(ctx, dao.ChannelsOf(subscriberID), q)
}

func (s *SubscriptionService) page(ctx context.Context, scope func(*gorm.DB) *gorm.DB, q *types.PageQuery) (*types.PageResult[*types.OwnerSummary], error) {
	spec, err := subscriptionListing.resolve(q)
	if err != nil {
		return nil, err
	}
	items, total, err := s.UsersRepo.Paginate(ctx, scope, spec.Page)
	if err != nil {
		return nil, errors.Wrap(err, "list subscriptions")
	}
	out := make([]*types.OwnerSummary, 0, len(items))
	for _, u := range items {
		out = append(out, userToOwner(u))
	}
	return types.NewPageResult(out, total, spec.page, spec.limit), nil
}

func (s *SubscriptionService) mustExist(ctx context.Context, uid int64, msg string) error {
	ok, err := s.UsersRepo.IsExist(ctx, "id = ?", uid)
	if err != nil {
		return errors.Wrap(err, "check user")
	}
	if !ok {
		return response.NotFound(msg)
	}
	return nil
}

