// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"club-booking/cmd"
	"club-booking/internal/data/repository"
	"club-booking/internal/wire"
	"club-booking/pkg/apiclient"
	"club-booking/pkg/cache"
	"club-booking/pkg/clock"
	"club-booking/pkg/database"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(config, logger); err != nil {
		logger.Error("Application stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(config *utils.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("upstream", config.Upstream.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	opts := repository.Options{ProfileTTL: config.Redis.ProfileTTL, CacheSecret: config.JWT.Secret}

	// Database opsional: tanpa DB_HOST draft disimpan di memori
	if config.Database.Enabled() {
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(ctx, db, repository.DraftSchema...); err != nil {
			return err
		}
		opts.DB = db
		logger.Info("Database connected successfully")
	} else {
		logger.Info("DB_HOST not set, booking drafts are kept in memory")
	}

	if config.Redis.Enabled() {
		rdb, err := cache.InitRedis(ctx, config.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close() //nolint:errcheck

		opts.Redis = rdb
		logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
	}

	client, err := apiclient.New(config.Upstream, logger, apiclient.WithCookieName(config.JWT.CookieName))
	if err != nil {
		return err
	}

	// Initialize all repositories
	repos := repository.NewRepository(client, opts, logger)

	// Wire all dependencies
	app, err := wire.Wiring(repos, config, clock.NewRealClock(), logger)
	if err != nil {
		return err
	}

	go cmd.DraftJanitor(ctx, app.Service.Booking, config.Booking, logger)

	return cmd.APIServer(ctx, app.Router, config.App, logger)
}
