package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig      `env:", prefix=APP_"`
	Database DatabaseConfig `env:", prefix=DB_"`
	JWT      JWTConfig      `env:", prefix=JWT_"`
	Redis    RedisConfig    `env:", prefix=REDIS_"`
	Vacation VacationConfig `env:", prefix=VACATION_"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int      `env:"PORT, default=8080"`
	Env         string   `env:"ENV, default=development"`
	LogLevel    string   `env:"LOG_LEVEL, default=info"`
	Timezone    string   `env:"TIMEZONE, default=UTC"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000"`
}

type DatabaseConfig struct {
	Driver     string `env:"DRIVER, default=postgres"`
	Host       string `env:"HOST, default=localhost"`
	Port       int    `env:"PORT, default=5432"`
	User       string `env:"USER, default=postgres"`
	Password   string `env:"PASSWORD"`
	Name       string `env:"NAME, default=timetracker"`
	SSLMode    string `env:"SSL_MODE, default=disable"`
	SQLitePath string `env:"SQLITE_PATH, default=timetracker.db"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string `env:"SECRET_KEY"`
	AccessExpiration string `env:"ACCESS_EXPIRATION_TIME, default=24h"`
}

// RedisConfig enables the stats cache when Addr is set.
type RedisConfig struct {
	Addr         string        `env:"ADDR"`
	Password     string        `env:"PASSWORD"`
	DB           int           `env:"DB, default=0"`
	TTL          time.Duration `env:"TTL, default=5m"`
	WarmInterval time.Duration `env:"WARM_INTERVAL, default=1m"`
}

type VacationConfig struct {
	LimitDays int `env:"LIMIT_DAYS, default=14"`
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var config Config
	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 {
		return fmt.Errorf("APP_PORT must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("invalid APP_LOG_LEVEL %q: %w", c.App.LogLevel, err)
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("DB_SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	if c.Redis.Addr != "" && c.Redis.WarmInterval <= 0 {
		return fmt.Errorf("REDIS_WARM_INTERVAL must be positive")
	}

	if c.Vacation.LimitDays <= 0 {
		return fmt.Errorf("VACATION_LIMIT_DAYS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the time zone used for calendar days.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.ToUpper(c.App.LogLevel)))
	return level, err
}
