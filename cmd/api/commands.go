package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
	appHTTP "github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/worktime"
	authService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/auth"
	punchService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/punch"
	statsService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/stats"
	vacationService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/vacation"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 30 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "run the HTTP API",
		Action: serve,
		Description: `
Environment variables:
	APP_PORT                    (default: 8080)
	APP_ENV                     (default: development)
	APP_LOG_LEVEL               (default: info)
	APP_TIMEZONE                (default: UTC)
	APP_CORS_ORIGINS            (default: http://localhost:3000)
	DB_DRIVER                   (postgres or sqlite, default: postgres)
	DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSL_MODE
	DB_SQLITE_PATH              (default: timetracker.db)
	JWT_SECRET_KEY              (required)
	JWT_ACCESS_EXPIRATION_TIME  (default: 24h)
	REDIS_ADDR                  (optional, enables the team stats cache)
	REDIS_PASSWORD, REDIS_DB, REDIS_TTL
	REDIS_WARM_INTERVAL         (default: 1m)
	VACATION_LIMIT_DAYS         (default: 14)
`,
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create the database schema",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}

			repos, err := openRepositories(ctx, cfg)
			if err != nil {
				return err
			}
			defer repos.close()

			if err := repos.migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			slog.Info("database schema is up to date", "driver", cfg.Database.Driver)
			return nil
		},
	}
}

func createUserCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-user",
		Usage: "register a user that can obtain tokens",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "username",
				Aliases:  []string{"u"},
				Usage:    "login name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "password, at least 8 characters",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}

			repos, err := openRepositories(ctx, cfg)
			if err != nil {
				return err
			}
			defer repos.close()

			if err := repos.migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
			created, err := authService.NewAuthService(repos.users, jwtSvc).CreateUser(ctx, user.CreateUserRequest{
				Username: cmd.String("username"),
				Password: cmd.String("password"),
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			slog.Info("user created", "user_id", created.ID, "username", created.Username)
			return nil
		},
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.close()

	if err := repos.migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	statsCache, closeCache, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	calculator := worktime.NewCalculator(cfg.Location())
	policy := worktime.Policy{Limit: cfg.Vacation.LimitDays, RestDays: worktime.DefaultRestDays}
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(repos.users, JWTService)
	punchSvc := punchService.NewPunchService(repos.tx, repos.users, repos.punches, calculator, statsCache, nil)
	vacationSvc := vacationService.NewVacationService(repos.tx, repos.users, repos.vacations, policy)
	statsSvc := statsService.NewStatsService(repos.users, repos.punches, calculator, statsCache)

	if cfg.Redis.Addr != "" {
		scheduler := cron.NewScheduler()
		cron.NewStatsJobs(statsSvc, cfg.Redis.WarmInterval).RegisterJobs(scheduler)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(JWTService, slog.Default(), cfg.App.CORSOrigins, appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authSvc),
		Punch:    appHTTP.NewPunchHandler(punchSvc),
		Vacation: appHTTP.NewVacationHandler(vacationSvc),
		Stats:    appHTTP.NewStatsHandler(statsSvc),
		Health:   appHTTP.NewHealthHandler(repos.db),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "address", server.Addr, "driver", cfg.Database.Driver, "timezone", cfg.App.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
