package types

import "time"

type ContentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	VideoID   string        `json:"video"`
	Owner     *OwnerSummary `json:"owner"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type TweetResponse struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Owner     *OwnerSummary `json:"owner"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type LikeStatus struct {
	IsLiked bool `json:"isLiked"`
}

type SubscriptionStatus struct {
	IsSubscribed bool `json:"isSubscribed"`
}
