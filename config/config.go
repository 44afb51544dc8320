package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/yyu399/goal-model-v3.1/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
	Evaluation EvaluationConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Environment     string        `mapstructure:"environment"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// CacheConfig holds result cache configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "none", "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
	Burst int `mapstructure:"burst"`
}

// EvaluationConfig holds evaluation request limits and presentation defaults
type EvaluationConfig struct {
	MaxBatchSize int    `mapstructure:"max_batch_size"` // 0 means unbounded
	DefaultLang  string `mapstructure:"default_lang"`
}

// Load loads configuration from a .env file, environment variables and
// config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/inplay-analyzer/")

	// INPLAY_SERVER_PORT -> server.port
	v.SetEnvPrefix("INPLAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env if present. Variables already set in the
// environment win.
func loadEnvFile() error {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})
	v.SetDefault("server.shutdown_timeout", "10s")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "5m")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 120)
	v.SetDefault("ratelimit.burst", 20)

	// Evaluation defaults: the original entry form offered 1 to 10 matches
	v.SetDefault("evaluation.max_batch_size", 10)
	v.SetDefault("evaluation.default_lang", "en")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required (set INPLAY_SERVER_PORT)")
	}

	switch config.Cache.Type {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("cache type must be 'none', 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("redis URL is required when cache type is 'redis'")
	}

	if config.RateLimit.PerIP < 0 || config.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}

	if config.Evaluation.MaxBatchSize < 0 {
		return fmt.Errorf("max batch size must not be negative, got: %d", config.Evaluation.MaxBatchSize)
	}

	if _, err := domain.ParseLocale(config.Evaluation.DefaultLang); err != nil {
		return err
	}

	return nil
}
