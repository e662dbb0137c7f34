package models

import "time"

// WatchHistory 观看记录，每个用户每个视频一行
type WatchHistory struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_video,priority:1" json:"user_id"`
	VideoID   int64     `gorm:"column:video_id;not null;uniqueIndex:uk_user_video,priority:2;index:idx_watch_histories_video" json:"video_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WatchHistory) TableName() string {
	return "watch_histories"
}
