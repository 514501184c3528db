// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the feed, server, logging and snapshot store

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// DefaultFeedURL is the public test feed used when FEED_URL is not set
const DefaultFeedURL = "https://essentialdeveloper.com/feed-case-study/test-api/feed"

// Config holds all application configuration
type Config struct {
	// Feed contains the remote feed settings
	Feed FeedConfig

	// Server contains HTTP server configuration
	Server ServerConfig

	// Log contains logging configuration
	Log LogConfig

	// Store contains snapshot store configuration
	Store StoreConfig
}

// FeedConfig holds remote feed configuration
type FeedConfig struct {
	// URL is the feed resource to load
	URL string

	// TimeoutSeconds bounds a single round trip
	TimeoutSeconds int

	// DecodePolicy is "abort" or "skip"
	DecodePolicy string
}

// Timeout returns the round trip timeout as a duration
func (f FeedConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the sustained requests per second allowed per client IP
	RateLimit int

	// RateBurst is the token bucket size per client IP
	RateBurst int

	// TrustProxyHeaders identifies clients by X-Forwarded-For / X-Real-IP.
	// Enable only behind a reverse proxy that sets those headers.
	TrustProxyHeaders bool
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string

	// Format is text or json
	Format string

	// File, when set, redirects output to a rotated log file
	File string
}

// StoreConfig holds snapshot store backend configuration
type StoreConfig struct {
	// Type specifies the store backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Feed: FeedConfig{
			URL:            getEnvOrDefault("FEED_URL", DefaultFeedURL),
			TimeoutSeconds: getEnvAsIntOrDefault("HTTP_TIMEOUT_SECONDS", 30),
			DecodePolicy:   getEnvOrDefault("DECODE_POLICY", "abort"),
		},
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 5),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 10),

			TrustProxyHeaders: getEnvAsBoolOrDefault("TRUST_PROXY_HEADERS", false),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		Store: StoreConfig{
			Type: getEnvOrDefault("STORE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "snapshots.db"),
			},
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	u, err := url.Parse(c.Feed.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("feed url %q must be an absolute URL", c.Feed.URL)
	}

	if c.Feed.TimeoutSeconds < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	if c.Feed.DecodePolicy != "abort" && c.Feed.DecodePolicy != "skip" {
		return errors.New("decode policy must be 'abort' or 'skip'")
	}

	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 || c.Server.RateBurst < 1 {
		return errors.New("rate limit and burst must be at least 1")
	}

	switch c.Store.Type {
	case "memory":
	case "redis":
		if c.Store.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis store")
		}
	case "sqlite":
		if c.Store.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite store")
		}
	default:
		return errors.New("store type must be 'memory', 'redis' or 'sqlite'")
	}

	return nil
}
