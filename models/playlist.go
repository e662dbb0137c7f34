package models

import "time"

type Playlist struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	OwnerID     int64     `gorm:"column:owner_id;not null;index:idx_playlists_owner" json:"owner_id"`
	Name        string    `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Playlist) TableName() string {
	return "playlists"
}

type PlaylistVideo struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	PlaylistID int64     `gorm:"column:playlist_id;not null;uniqueIndex:uk_playlist_video,priority:1" json:"playlist_id"`
	VideoID    int64     `gorm:"column:video_id;not null;uniqueIndex:uk_playlist_video,priority:2;index:idx_playlist_videos_video" json:"video_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
