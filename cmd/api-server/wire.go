//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"Vidtube/config"
	"Vidtube/dao"
	"Vidtube/dao/cache"
	"Vidtube/handler"
	"Vidtube/middleware"
	"Vidtube/pkg/client"
	"Vidtube/pkg/database"
	"Vidtube/pkg/media"
	"Vidtube/pkg/server"
	"Vidtube/service"

	"github.com/google/wire"
)

func InitServer(ctx context.Context, cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		media.NewStore,
		media.ProvideProber,
		config.ProvideMediaConfig,
		config.ProvideUploadConfig,
		config.ProvideJwtConfig,
		config.ProvideRateLimitConfig,
		middleware.NewRateLimiter,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Health), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Video), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Tweet), "*"),
		wire.Struct(new(handler.Playlist), "*"),
		wire.Struct(new(handler.Subscription), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil
}
