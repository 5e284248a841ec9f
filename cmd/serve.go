package main

import (
	"context"
	"fmt"
	"time"

	"github.com/arzan03/DrugHouse/internal/config"
	"github.com/arzan03/DrugHouse/internal/db"
	"github.com/arzan03/DrugHouse/internal/events"
	"github.com/arzan03/DrugHouse/internal/logger"
	"github.com/arzan03/DrugHouse/internal/metrics"
	"github.com/arzan03/DrugHouse/internal/server"
	"github.com/arzan03/DrugHouse/internal/services"
	"github.com/arzan03/DrugHouse/internal/storage"
	"github.com/arzan03/DrugHouse/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	client, err := db.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()
	log.Info("Connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	database := client.Database(cfg.Mongo.Database)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Warn("Failed to ensure indexes", zap.Error(err))
	}

	var pub services.EventPublisher = events.Nop{}
	if cfg.NATS.URL != "" {
		p, err := events.NewPublisher(cfg.NATS.URL)
		if err != nil {
			log.Warn("NATS unavailable, events disabled", zap.Error(err))
		} else {
			defer p.Close()
			pub = p
		}
	}

	objects, err := storage.NewMinioStore(ctx, storage.MinioConfig{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		UseSSL:    cfg.MinIO.UseSSL,
		Region:    cfg.MinIO.Region,
		Bucket:    cfg.MinIO.Bucket,
	}, log)
	if err != nil {
		return fmt.Errorf("init minio: %w", err)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	users := store.NewUserStore(database, cfg.Mongo.Timeout)
	products := store.NewProductStore(database, cfg.Mongo.Timeout)

	app := server.New(server.Deps{
		Tokens:    services.NewTokenService(cfg.Auth.Secret, cfg.Auth.TokenTTL),
		Users:     services.NewUserService(users, pub, m, cfg.Location(), log),
		Products:  services.NewProductService(products, pub, m, log),
		Catalog:   services.NewCatalogService(store.NewCatalogStore(database, cfg.Mongo.Timeout)),
		Carts:     services.NewCartService(store.NewCartStore(database, cfg.Mongo.Timeout), products),
		Images:    services.NewImageService(products, objects, log),
		Metrics:   m,
		Log:       log,
		StaticDir: cfg.StaticDir,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening", zap.String("port", cfg.Port))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("Shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	}
}
