package server

import (
	"Vidtube/handler"
)

type Handlers struct {
	Health       *handler.Health
	User         *handler.User
	Video        *handler.Video
	Comment      *handler.Comment
	Like         *handler.Like
	Tweet        *handler.Tweet
	Playlist     *handler.Playlist
	Subscription *handler.Subscription
}
