package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/monsterwith/monstermedia/internal/api"
	"github.com/monsterwith/monstermedia/internal/core/service"
	"github.com/monsterwith/monstermedia/internal/infrastructure/config"
	"github.com/monsterwith/monstermedia/internal/infrastructure/db/mongo"
	"github.com/monsterwith/monstermedia/internal/infrastructure/db/postgres"
	"github.com/monsterwith/monstermedia/internal/infrastructure/db/redis"
	"github.com/monsterwith/monstermedia/internal/infrastructure/notify"
	"github.com/monsterwith/monstermedia/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	pg, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := postgres.Migrate(ctx, pg); err != nil {
		return err
	}

	mongoClient, mongoDB, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Repositories ---
	users := postgres.NewUserRepository(pg)
	vipRequests := postgres.NewVipRequestRepository(pg)
	interactions := postgres.NewInteractionRepository(pg)
	themes := postgres.NewThemeRepository(pg)
	catalog := mongo.NewContentRepository(mongoDB)
	sessions := redis.NewSessionStore(rdb, cfg.SessionTTL)

	if err := catalog.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Notifications ---
	dispatcher := notify.NewDispatcher(0, notify.NewLogSink(log), log)
	dispatcher.Start(ctx)

	// --- Services ---
	entitlements := service.NewEntitlementService(users, log)

	deps := api.Dependencies{
		Log:            log,
		AuthService:    service.NewAuthService(users, sessions, log),
		VipService:     service.NewVipService(vipRequests, dispatcher, log),
		UserService:    service.NewUserService(users, entitlements, log),
		ThemeService:   service.NewThemeService(themes),
		ContentService: service.NewContentService(catalog, interactions, log),
		Sessions:       sessions,
		Users:          users,
		Postgres:       pg,
		Mongo:          mongoDB,
		Redis:          rdb,
	}

	e := api.NewRouter(deps)

	// --- Serve ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
