package models

import "time"

type Video struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	OwnerID           int64     `gorm:"column:owner_id;not null;index:idx_videos_owner_created,priority:1" json:"owner_id"`
	Title             string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description       string    `gorm:"column:description;type:text" json:"description"`
	VideoURL          string    `gorm:"column:video_url;type:varchar(512);not null" json:"video_url"`
	VideoPublicID     string    `gorm:"column:video_public_id;type:varchar(255);not null" json:"-"`
	ThumbnailURL      string    `gorm:"column:thumbnail_url;type:varchar(512);not null" json:"thumbnail_url"`
	ThumbnailPublicID string    `gorm:"column:thumbnail_public_id;type:varchar(255);not null" json:"-"`
	Duration          float64   `gorm:"column:duration;not null;default:0" json:"duration"` // 秒
	Views             int64     `gorm:"column:views;not null;default:0" json:"views"`
	IsPublished       bool      `gorm:"column:is_published;not null" json:"is_published"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime;index:idx_videos_owner_created,priority:2" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}
