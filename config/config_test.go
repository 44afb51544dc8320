package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

var configEnvVars = []string{
	"INPLAY_SERVER_PORT",
	"INPLAY_SERVER_ENVIRONMENT",
	"INPLAY_SERVER_ALLOWED_ORIGINS",
	"INPLAY_SERVER_SHUTDOWN_TIMEOUT",
	"INPLAY_LOG_LEVEL",
	"INPLAY_LOG_FORMAT",
	"INPLAY_CACHE_TYPE",
	"INPLAY_CACHE_REDIS_URL",
	"INPLAY_CACHE_TTL",
	"INPLAY_RATELIMIT_PER_IP",
	"INPLAY_RATELIMIT_BURST",
	"INPLAY_EVALUATION_MAX_BATCH_SIZE",
	"INPLAY_EVALUATION_DEFAULT_LANG",
}

// clearConfigEnv unsets every config variable for the duration of the test
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Server.ShutdownTimeout != 10*time.Second {
			t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
		}
		if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
			t.Errorf("Log = %+v, want info/text", cfg.Log)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 5*time.Minute {
			t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 120 {
			t.Errorf("RateLimit.PerIP = %d, want 120", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Burst != 20 {
			t.Errorf("RateLimit.Burst = %d, want 20", cfg.RateLimit.Burst)
		}
		if cfg.Evaluation.MaxBatchSize != 10 {
			t.Errorf("Evaluation.MaxBatchSize = %d, want 10", cfg.Evaluation.MaxBatchSize)
		}
		if cfg.Evaluation.DefaultLang != "en" {
			t.Errorf("Evaluation.DefaultLang = %s, want en", cfg.Evaluation.DefaultLang)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("INPLAY_SERVER_PORT", "9090")
		t.Setenv("INPLAY_SERVER_ENVIRONMENT", "production")
		t.Setenv("INPLAY_SERVER_ALLOWED_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("INPLAY_LOG_LEVEL", "debug")
		t.Setenv("INPLAY_LOG_FORMAT", "json")
		t.Setenv("INPLAY_CACHE_TYPE", "redis")
		t.Setenv("INPLAY_CACHE_REDIS_URL", "redis://localhost:6379")
		t.Setenv("INPLAY_CACHE_TTL", "1m")
		t.Setenv("INPLAY_RATELIMIT_PER_IP", "30")
		t.Setenv("INPLAY_EVALUATION_MAX_BATCH_SIZE", "0")
		t.Setenv("INPLAY_EVALUATION_DEFAULT_LANG", "zh")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if strings.Join(cfg.Server.AllowedOrigins, "|") != "https://a.example|https://b.example" {
			t.Errorf("Server.AllowedOrigins = %v", cfg.Server.AllowedOrigins)
		}
		if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
			t.Errorf("Log = %+v, want debug/json", cfg.Log)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisURL != "redis://localhost:6379" {
			t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379", cfg.Cache.RedisURL)
		}
		if cfg.Cache.TTL != time.Minute {
			t.Errorf("Cache.TTL = %v, want 1m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 30 {
			t.Errorf("RateLimit.PerIP = %d, want 30", cfg.RateLimit.PerIP)
		}
		if cfg.Evaluation.MaxBatchSize != 0 {
			t.Errorf("Evaluation.MaxBatchSize = %d, want 0", cfg.Evaluation.MaxBatchSize)
		}
		if cfg.Evaluation.DefaultLang != "zh" {
			t.Errorf("Evaluation.DefaultLang = %s, want zh", cfg.Evaluation.DefaultLang)
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("INPLAY_CACHE_TYPE", "invalid")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails validation when redis URL missing for redis cache", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("INPLAY_CACHE_TYPE", "redis")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing Redis URL")
		}
		if !strings.HasPrefix(err.Error(), "invalid configuration:") {
			t.Errorf("Load() error = %v, want invalid configuration prefix", err)
		}
	})

	t.Run("fails validation for unknown language", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("INPLAY_EVALUATION_DEFAULT_LANG", "fr")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for unsupported language")
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	// chdir into a temp dir holding the .env under test
	inTempDir := func(t *testing.T, envContent string) {
		t.Helper()
		originalDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(originalDir) })

		tempDir := t.TempDir()
		if err := os.Chdir(tempDir); err != nil {
			t.Fatalf("Chdir() error = %v", err)
		}
		if envContent != "" {
			if err := os.WriteFile(".env", []byte(envContent), 0644); err != nil {
				t.Fatalf("Failed to create test .env file: %v", err)
			}
		}
	}

	t.Run("returns nil when .env file doesn't exist", func(t *testing.T) {
		inTempDir(t, "")

		if err := loadEnvFile(); err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil when file doesn't exist", err)
		}
	})

	t.Run("loads variables and skips comments", func(t *testing.T) {
		inTempDir(t, `
# Comment line
TEST_VAR_1=value1

TEST_VAR_2=value2
# TEST_COMMENTED=should_not_load
`)
		for _, key := range []string{"TEST_VAR_1", "TEST_VAR_2", "TEST_COMMENTED"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_VAR_1") != "value1" {
			t.Errorf("TEST_VAR_1 = %s, want value1", os.Getenv("TEST_VAR_1"))
		}
		if os.Getenv("TEST_VAR_2") != "value2" {
			t.Errorf("TEST_VAR_2 = %s, want value2", os.Getenv("TEST_VAR_2"))
		}
		if os.Getenv("TEST_COMMENTED") != "" {
			t.Errorf("TEST_COMMENTED should not be loaded from comment")
		}
	})

	t.Run("doesn't override existing environment variables", func(t *testing.T) {
		inTempDir(t, "TEST_OVERRIDE=new-value")
		t.Setenv("TEST_OVERRIDE", "existing-value")

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_OVERRIDE") != "existing-value" {
			t.Errorf("TEST_OVERRIDE = %s, want existing-value (should not override)", os.Getenv("TEST_OVERRIDE"))
		}
	})

	t.Run("feeds Load", func(t *testing.T) {
		clearConfigEnv(t)
		inTempDir(t, "INPLAY_SERVER_PORT=7070\n")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Port != "7070" {
			t.Errorf("Server.Port = %s, want 7070 from .env", cfg.Server.Port)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:     ServerConfig{Port: "8080"},
			Cache:      CacheConfig{Type: "memory"},
			Evaluation: EvaluationConfig{MaxBatchSize: 10, DefaultLang: "en"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid memory config", mutate: func(c *Config) {}},
		{name: "cache disabled", mutate: func(c *Config) { c.Cache.Type = "none" }},
		{name: "redis with URL", mutate: func(c *Config) {
			c.Cache.Type = "redis"
			c.Cache.RedisURL = "redis://localhost:6379"
		}},
		{name: "redis without URL", mutate: func(c *Config) { c.Cache.Type = "redis" }, wantErr: true},
		{name: "invalid cache type", mutate: func(c *Config) { c.Cache.Type = "invalid-type" }, wantErr: true},
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
		{name: "negative rate limit", mutate: func(c *Config) { c.RateLimit.PerIP = -1 }, wantErr: true},
		{name: "negative batch size", mutate: func(c *Config) { c.Evaluation.MaxBatchSize = -1 }, wantErr: true},
		{name: "empty language means english", mutate: func(c *Config) { c.Evaluation.DefaultLang = "" }},
		{name: "unknown language", mutate: func(c *Config) { c.Evaluation.DefaultLang = "de" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
