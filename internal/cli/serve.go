package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/linesgame/linesim/internal/api"
	"github.com/linesgame/linesim/internal/factory"
	redisstorage "github.com/linesgame/linesim/internal/storage/redis"
)

func newServeCmd() *cobra.Command {
	var (
		host        string
		port        int
		storageType string
		redisURL    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the simulation API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			slog.SetDefault(logger)

			cfg := factory.Config{
				Logger:      logger,
				StorageType: storageType,
			}
			if storageType == factory.StorageTypeRedis {
				redisCfg := redisstorage.DefaultConfig()
				if redisURL != "" {
					redisCfg.URL = redisURL
				}
				cfg.RedisConfig = &redisCfg
			}

			app, err := factory.New(cfg)
			if err != nil {
				return err
			}

			router := api.NewRouter(api.RouterConfig{
				Logger:            logger,
				SessionController: app.SessionController,
				BotService:        app.BotService,
			})

			serverConfig := api.DefaultServerConfig()
			serverConfig.Host = host
			serverConfig.Port = port
			server := api.NewServer(router, serverConfig, logger)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				logger.Info("shutdown signal received")
				cancel()
			}()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				return server.Shutdown(context.Background())
			}
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host")
	cmd.Flags().IntVar(&port, "port", 8080, "Listen port")
	cmd.Flags().StringVar(&storageType, "storage", factory.StorageTypeMemory, "Storage backend: memory, redis (env: LINESIM_STORAGE)")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis connection URL (env: LINESIM_REDIS_URL)")

	if v := os.Getenv("LINESIM_STORAGE"); v != "" {
		storageType = v
	}
	if v := os.Getenv("LINESIM_REDIS_URL"); v != "" {
		redisURL = v
	}

	return cmd
}
