package main

import (
	"fmt"
	"os"

	"Vidtube/config"
	"Vidtube/models"
	"Vidtube/pkg/database"
	"Vidtube/pkg/idcodec"
	"Vidtube/pkg/log"
	"Vidtube/pkg/server"
	"Vidtube/pkg/snowflake"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env 可选
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "video sharing api",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
				Usage:   "path of the yaml config",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg, err := setup(ctx.String("config"))
					if err != nil {
						return err
					}
					appProvider, err := InitServer(ctx.Context, cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					cfg, err := setup(ctx.String("config"))
					if err != nil {
						return err
					}
					db, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					if err := db.WithContext(ctx.Context).AutoMigrate(models.All()...); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.Int("tables", len(models.All())))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server exited", zap.Error(err))
	}
}

// setup loads the config and initialises the process-wide helpers that
// depend on it.
func setup(path string) (*config.Config, error) {
	cfg := config.New(path)
	log.Setup(cfg.Log)
	if cfg.Jwt.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required")
	}
	if err := idcodec.SetSalt(cfg.App.HashSalt); err != nil {
		return nil, err
	}
	if err := snowflake.SetNode(cfg.App.NodeID); err != nil {
		return nil, err
	}
	return cfg, nil
}
