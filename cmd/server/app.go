package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tasknest/tasknest-api/internal/config"
	"github.com/tasknest/tasknest-api/internal/platform/logger"
	"github.com/tasknest/tasknest-api/internal/platform/postgres"
	"github.com/tasknest/tasknest-api/internal/platform/redis"
	"github.com/tasknest/tasknest-api/internal/service/auth"
	"github.com/tasknest/tasknest-api/internal/service/taskcache"
	"github.com/tasknest/tasknest-api/internal/store"
)

// application holds the wired dependencies for the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	db    *sql.DB
	cache *redis.Cache

	userStore store.UserStore
	bookStore store.BookStore

	jwtService   auth.JWTService
	passwordAuth *auth.BcryptVerifier
	sessionGuard *auth.SessionGuard

	taskService *taskcache.Service
}

// newApplication loads configuration and wires every component: logger,
// database with migrations, cache, stores, and services.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server.LogLevel)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := postgres.RunMigrations(ctx, db, log); err != nil {
		return nil, err
	}

	// The cache is best-effort: a failed ping is logged but does not
	// block startup, the service degrades to store-only reads.
	cache := redis.New(cfg.Cache, log)
	if err := cache.Ping(ctx); err != nil {
		log.Warn("cache unreachable at startup, continuing without it", "error", err)
	}

	userStore := postgres.NewUserStore(db, log)
	taskStore := postgres.NewTaskStore(db, log)
	bookStore := postgres.NewBookStore(db, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	passwordAuth := auth.NewBcryptVerifier(cfg.Auth.BcryptCost)
	sessionGuard := auth.NewSessionGuard(jwtService, userStore, log)

	taskCache := taskcache.New(
		cache,
		time.Duration(cfg.Cache.DefaultTTLSeconds)*time.Second,
		log,
	)
	taskService := taskcache.NewService(taskStore, taskCache, log)

	return &application{
		config:       cfg,
		logger:       log,
		db:           db,
		cache:        cache,
		userStore:    userStore,
		bookStore:    bookStore,
		jwtService:   jwtService,
		passwordAuth: passwordAuth,
		sessionGuard: sessionGuard,
		taskService:  taskService,
	}, nil
}

// cleanup releases held resources. Safe to call after a partial
// initialization failure.
func (app *application) cleanup() {
	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			app.logger.Error("failed to close cache connection", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
