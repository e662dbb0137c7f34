package dao

import (
	"context"

	"Vidtube/models"
	"Vidtube/pkg/snowflake"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionDAO struct {
	Repo[models.Subscription]
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{Repo: NewRepo[models.Subscription](db)}
}

// Toggle works like LikeDAO.Toggle over the unique (subscriber_id, channel_id) index.
func (d *SubscriptionDAO) Toggle(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&models.Subscription{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	err := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Subscription{
			ID:           snowflake.GenID(),
			SubscriberID: subscriberID,
			ChannelID:    channelID,
		}).Error
	return err == nil, err
}

func (d *SubscriptionDAO) IsSubscribed(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	return d.IsExist(ctx, "subscriber_id = ? AND channel_id = ?", subscriberID, channelID)
}

func (d *SubscriptionDAO) CountSubscribers(ctx context.Context, channelID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

func (d *SubscriptionDAO) CountSubscribedTo(ctx context.Context, subscriberID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Subscription{}).Where("subscriber_id = ?", subscriberID).Count(&count).Error
	return count, err
}

// SubscribersOf joins subscriptions so users subscribed to channelID match.
func SubscribersOf(channelID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN subscriptions ON subscriptions.subscriber_id = users.id").
			Where("subscriptions.channel_id = ?", channelID)
	}
}

// ChannelsOf joins subscriptions so channels subscriberID follows match.
func ChannelsOf(subscriberID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN subscriptions ON subscriptions.channel_id = users.id").
			Where("subscriptions.subscriber_id = ?", subscriberID)
	}
}
