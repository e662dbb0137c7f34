package models

import "time"

type Tweet struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	OwnerID   int64     `gorm:"column:owner_id;not null;index:idx_tweets_owner_created,priority:1" json:"owner_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_tweets_owner_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Tweet) TableName() string {
	return "tweets"
}
