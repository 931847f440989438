package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"   // File-backed SQLite database (default)
	DriverPostgres Driver = "postgres" // PostgreSQL via pgx
)

type (
	Config struct {
		HTTP
		Global
		Database
		Log
		RateLimit
	}

	HTTP struct {
		Port         int32
		Host         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		IdleTimeout  time.Duration

		// TrustedProxies are the proxy IPs/CIDRs whose X-Forwarded-For is
		// believed. Empty means the client IP is always the peer address.
		TrustedProxies []string
	}
	Global struct {
		Environment              string // development, production or test
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver       Driver
		DSN          string // File path for sqlite, connection string for postgres
		MaxOpenConns int
		MaxIdleConns int
		LogLevel     string // silent, error, warn or info
	}
	Log struct {
		Level string
	}
	RateLimit struct {
		Enabled bool
		RPS     float64 // Sustained requests per second per client IP
		Burst   int
	}
)

// IsProduction reports whether the service runs with production settings.
func (g Global) IsProduction() bool {
	return g.Environment == "production"
}

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment variables
// take precedence over it.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("http_read_timeout", "10s")
	v.SetDefault("http_write_timeout", "10s")
	v.SetDefault("http_idle_timeout", "60s")
	v.SetDefault("trusted_proxies", "")
	v.SetDefault("app_env", "development")
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_dsn", DefaultDatabasePath)
	v.SetDefault("database_max_open_conns", 10)
	v.SetDefault("database_max_idle_conns", 5)
	v.SetDefault("database_log_level", "warn")

	v.SetDefault("log_level", "info")

	v.SetDefault("rate_limit_enabled", true)
	v.SetDefault("rate_limit_rps", 10)
	v.SetDefault("rate_limit_burst", 20)

	return &Config{
		HTTP: HTTP{
			Port:         v.GetInt32("PORT"),
			Host:         v.GetString("HOST"),
			ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("HTTP_IDLE_TIMEOUT"),

			TrustedProxies: splitList(v.GetString("TRUSTED_PROXIES")),
		},
		Global: Global{
			Environment:              v.GetString("APP_ENV"),
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:       Driver(v.GetString("DATABASE_DRIVER")),
			DSN:          v.GetString("DATABASE_DSN"),
			MaxOpenConns: v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			LogLevel:     v.GetString("DATABASE_LOG_LEVEL"),
		},
		Log: Log{
			Level: v.GetString("LOG_LEVEL"),
		},
		RateLimit: RateLimit{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
	}
}

// splitList parses a comma separated environment value, dropping blanks.
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
