package models

import "time"

// Subscription subscriber 订阅了 channel
type Subscription struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	SubscriberID int64     `gorm:"column:subscriber_id;not null;uniqueIndex:uk_subscriber_channel,priority:1" json:"subscriber_id"`
	ChannelID    int64     `gorm:"column:channel_id;not null;uniqueIndex:uk_subscriber_channel,priority:2;index:idx_subscriptions_channel" json:"channel_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
