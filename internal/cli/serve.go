package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shoockrates/casinosim/internal/api"
	"github.com/shoockrates/casinosim/internal/factory"
	redisstorage "github.com/shoockrates/casinosim/internal/storage/redis"
)

func newServeCmd() *cobra.Command {
	serverCfg := api.DefaultServerConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve runs the session API: each session holds its own game state and
accepts commands over HTTP. Storage is selected with STORAGE_TYPE (memory or
redis); redis requires REDIS_URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}))
			slog.SetDefault(logger)

			cfg := factory.Config{
				Logger:      logger,
				StorageType: os.Getenv("STORAGE_TYPE"),
			}

			if cfg.StorageType == factory.StorageTypeRedis {
				redisURL := os.Getenv("REDIS_URL")
				if redisURL == "" {
					return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
				}
				redisCfg := redisstorage.DefaultConfig()
				redisCfg.URL = redisURL
				cfg.RedisConfig = &redisCfg
			}

			app, err := factory.New(cfg)
			if err != nil {
				return err
			}

			router := api.NewRouter(api.RouterConfig{
				Logger:   logger,
				Sessions: app.Sessions,
			})
			server := api.NewServer(router, serverCfg, logger)

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

			logger.Info("server started", slog.String("addr", server.Addr()))

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				if err := server.Shutdown(context.Background()); err != nil {
					return err
				}
			}

			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().IntVar(&serverCfg.Port, "port", serverCfg.Port, "Listen port")
	cmd.Flags().StringVar(&serverCfg.Host, "host", serverCfg.Host, "Listen host")

	return cmd
}
