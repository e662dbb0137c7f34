package types

import "time"

type VideoResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	VideoFile   string        `json:"videoFile"`
	Thumbnail   string        `json:"thumbnail"`
	Duration    float64       `json:"duration"`
	Views       int64         `json:"views"`
	IsPublished bool          `json:"isPublished"`
	Owner       *OwnerSummary `json:"owner"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// VideoListQuery 视频列表查询
type VideoListQuery struct {
	PageQuery
	UserID string `form:"userId"`
}

type PublishStatus struct {
	IsPublished bool `json:"isPublished"`
}
