package models

import "time"

type Comment struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	VideoID   int64     `gorm:"column:video_id;not null;index:idx_comments_video_created,priority:1" json:"video_id"`
	OwnerID   int64     `gorm:"column:owner_id;not null;index:idx_comments_owner" json:"owner_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_comments_video_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
