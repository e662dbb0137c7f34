package types

import "time"

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdatePlaylistRequest 只更新传入的字段
type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type PlaylistResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Owner       *OwnerSummary `json:"owner"`
	TotalVideos int64         `json:"totalVideos"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type PlaylistDetail struct {
	PlaylistResponse
	Videos *PageResult[*VideoResponse] `json:"videos"`
}
