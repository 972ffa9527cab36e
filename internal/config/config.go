package config

import (
	"os"
	"strconv"
)

// UpstreamConfig holds settings for the public market-data APIs the
// dashboard aggregates. Base URLs are overridable so tests can point the
// clients at a local server.
type UpstreamConfig struct {
	BinanceBaseURL   string
	FearGreedBaseURL string
	TimeoutSec       int
}

// DatabaseConfig holds PostgreSQL connection settings for the optional
// alert store. An empty Host means no database is configured and the
// dashboard serves its built-in sample alerts.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database host was provided.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// AppConfig is the centralized configuration struct for the dashboard.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	// Port is the listen port. The cloud runtime injects PORT; when it is
	// unset or empty the server falls back to 8080.
	Port          string
	GridConfigDir string
	Upstream      UpstreamConfig
	Database      DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:          getEnv("PORT", "8080"),
		GridConfigDir: getEnv("GRID_CONFIG_DIR", "config/grid"),
		Upstream: UpstreamConfig{
			BinanceBaseURL:   getEnv("BINANCE_BASE_URL", "https://fapi.binance.com"),
			FearGreedBaseURL: getEnv("FNG_BASE_URL", "https://api.alternative.me"),
			TimeoutSec:       getEnvInt("UPSTREAM_TIMEOUT_SEC", 15),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
	}
}

// ListenAddr returns the address handed to the server: a bare ":port",
// which binds the wildcard interface (all interfaces, not just loopback).
func (c *AppConfig) ListenAddr() string {
	return ":" + c.Port
}

// The getEnv helpers treat an empty variable the same as an unset one,
// so PORT="" still resolves to the default.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
