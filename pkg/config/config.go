package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. Strategy parameters (weights,
// windows, filters) live in the strategy YAML, not here.
type Config struct {
	// Server (serve mode)
	Port string
	Env  string // development, staging, production

	// Providers
	FMP     FMPConfig
	Polygon PolygonConfig
	FinViz  FinVizConfig

	// Shared request budget, requests per minute across all providers.
	RateLimitPerMin int

	// HTTP
	HTTPTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// FMPConfig holds Financial Modeling Prep API configuration.
type FMPConfig struct {
	APIKey  string
	BaseURL string
}

// PolygonConfig holds Polygon.io API configuration (options data).
type PolygonConfig struct {
	APIKey  string
	BaseURL string
}

// FinVizConfig holds FinViz configuration (short interest scrape).
type FinVizConfig struct {
	BaseURL string
}

// Load reads configuration from environment variables. Only this function
// calls os.Getenv.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8087"),
		Env:  getEnv("ENV", "development"),

		FMP: FMPConfig{
			APIKey:  getEnv("FMP_API_KEY", ""),
			BaseURL: getEnv("FMP_BASE_URL", "https://financialmodelingprep.com/api/v3"),
		},
		Polygon: PolygonConfig{
			APIKey:  getEnv("POLYGON_API_KEY", ""),
			BaseURL: getEnv("POLYGON_BASE_URL", "https://api.polygon.io"),
		},
		FinViz: FinVizConfig{
			BaseURL: getEnv("FINVIZ_BASE_URL", "https://finviz.com"),
		},

		RateLimitPerMin: getEnvAsInt("RATE_LIMIT_PER_MIN", 300),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", "30s"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks required configuration values.
func (c *Config) validate() error {
	if c.FMP.APIKey == "" {
		return fmt.Errorf("FMP_API_KEY is required")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}
	if c.RateLimitPerMin <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MIN must be > 0")
	}
	return nil
}

// OptionsEnabled reports whether the Polygon options adapter can run.
func (c *Config) OptionsEnabled() bool {
	return c.Polygon.APIKey != ""
}

// loadEnvFile tries to load .env from multiple locations.
func loadEnvFile() {
	paths := []string{
		".env",
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
