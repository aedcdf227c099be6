package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Analytics host configuration
	Analytics AnalyticsConfig

	// Database configuration
	Database DatabaseConfig

	// Redis configuration
	Redis RedisConfig

	// API server configuration
	API APIConfig

	// Logging configuration
	Log LogConfig
}

// AnalyticsConfig holds settings for the external analytics host that
// serves the per-wallet data sources.
type AnalyticsConfig struct {
	BaseURL        string        `envconfig:"ANALYTICS_BASE_URL" default:"http://localhost:8085"`
	RequestTimeout time.Duration `envconfig:"ANALYTICS_REQUEST_TIMEOUT" default:"8s"`
	SourceTimeout  time.Duration `envconfig:"ANALYTICS_SOURCE_TIMEOUT" default:"10s"`
	MaxRetries     int           `envconfig:"ANALYTICS_MAX_RETRIES" default:"1"`
	RetryDelay     time.Duration `envconfig:"ANALYTICS_RETRY_DELAY" default:"250ms"`
	RateLimitRPS   float64       `envconfig:"ANALYTICS_RATE_LIMIT_RPS" default:"50"`
	RateLimitBurst int           `envconfig:"ANALYTICS_RATE_LIMIT_BURST" default:"100"`
}

// DatabaseConfig holds PostgreSQL connection settings for the registry store
type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"scorer"`
	Password        string        `envconfig:"DB_PASSWORD" default:"scorer"`
	Name            string        `envconfig:"DB_NAME" default:"wallet_scorer"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// APIConfig holds API server settings
type APIConfig struct {
	Host            string        `envconfig:"API_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"API_PORT" default:"8081"`
	ReadTimeout     time.Duration `envconfig:"API_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"API_SHUTDOWN_TIMEOUT" default:"30s"`
	RateLimitRPS    int           `envconfig:"API_RATE_LIMIT_RPS" default:"100"`
	ScoreCacheTTL   time.Duration `envconfig:"API_SCORE_CACHE_TTL" default:"30s"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}
