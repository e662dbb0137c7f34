package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewVideoDAO,
	NewComment,
	NewLikeDAO,
	NewTweetDAO,
	NewPlaylistDAO,
	NewSubscriptionDAO,
)
