package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/config"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/stats"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/vacation"
	appHTTP "github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/cache"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/repository/sqlite"
)

// repositories is the storage backend selected by DB_DRIVER.
type repositories struct {
	tx        database.Transactor
	users     user.UserRepository
	punches   punch.PunchRepository
	vacations vacation.VacationRepository
	db        appHTTP.Pinger
	migrate   func(ctx context.Context) error
	close     func()
}

// loadConfig reads the configuration and installs the default logger.
func loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(appHTTP.NewLogger(os.Stdout, level, cfg.App.Env, version))
	return cfg, nil
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &repositories{
			tx:        postgresql.NewTransactor(db),
			users:     postgresql.NewUserRepository(db),
			punches:   postgresql.NewPunchRepository(db),
			vacations: postgresql.NewVacationRepository(db),
			db:        db,
			migrate:   func(ctx context.Context) error { return postgresql.Migrate(ctx, db) },
			close:     db.Close,
		}, nil

	case config.DriverSQLite:
		store, err := sqlite.New(cfg.Database.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return &repositories{
			tx:        store,
			users:     store.Users(),
			punches:   store.Punches(),
			vacations: store.Vacations(),
			db:        store,
			migrate:   store.Migrate,
			close: func() {
				if err := store.Close(); err != nil {
					slog.Warn("failed to close sqlite database", "error", err)
				}
			},
		}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
}

// openCache returns the Redis cache when REDIS_ADDR is set. The returned
// close func is never nil.
func openCache(ctx context.Context, cfg *config.Config) (stats.Cache, func(), error) {
	if cfg.Redis.Addr == "" {
		slog.Info("REDIS_ADDR not set, team stats are computed on every request")
		return cache.Noop{}, func() {}, nil
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}, nil
}
