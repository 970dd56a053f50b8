package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	apperrors "github.com/kapu/creator-insight-go/pkg/errors"
)

type Config struct {
	YouTube   YouTubeConfig
	Redis     RedisConfig
	Postgres  PostgresConfig
	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Collector CollectorConfig
	Trending  TrendingConfig
	Logging   LoggingConfig
}

type YouTubeConfig struct {
	APIKey     string
	ChannelIDs []string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey         string
	Model          string
	EnableFallback bool
}

type CollectorConfig struct {
	Interval       time.Duration
	VideosPerBatch int64
	Concurrency    int
}

type TrendingConfig struct {
	BaseURL string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		YouTube: YouTubeConfig{
			APIKey:     getEnv("YOUTUBE_API_KEY", ""),
			ChannelIDs: parseCommaSeparated(getEnv("YOUTUBE_CHANNEL_IDS", "")),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "insight"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "creator_insight"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(getEnvInt("POSTGRES_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute,
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			Model:          getEnv("OPENAI_MODEL", "gpt-5-mini"),
			EnableFallback: getEnvBool("OPENAI_ENABLE_FALLBACK", true),
		},
		Collector: CollectorConfig{
			Interval:       time.Duration(getEnvInt("COLLECTOR_INTERVAL_MINUTES", 360)) * time.Minute,
			VideosPerBatch: int64(getEnvInt("COLLECTOR_VIDEOS_PER_BATCH", 25)),
			Concurrency:    getEnvInt("COLLECTOR_CONCURRENCY", 4),
		},
		Trending: TrendingConfig{
			BaseURL: getEnv("TRENDING_BASE_URL", "https://best-hashtags.com/hashtag"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.YouTube.APIKey == "" {
		return apperrors.NewValidationError("YOUTUBE_API_KEY is required", "YOUTUBE_API_KEY", "")
	}
	if len(c.YouTube.ChannelIDs) == 0 {
		return apperrors.NewValidationError("YOUTUBE_CHANNEL_IDS is required (comma-separated channel IDs)", "YOUTUBE_CHANNEL_IDS", "")
	}
	if c.Gemini.APIKey == "" {
		return apperrors.NewValidationError("GEMINI_API_KEY is required", "GEMINI_API_KEY", "")
	}
	if c.Collector.Interval < time.Minute {
		return apperrors.NewValidationError("COLLECTOR_INTERVAL_MINUTES must be at least 1", "COLLECTOR_INTERVAL_MINUTES", c.Collector.Interval)
	}
	if c.Collector.Concurrency < 1 {
		return apperrors.NewValidationError("COLLECTOR_CONCURRENCY must be at least 1", "COLLECTOR_CONCURRENCY", c.Collector.Concurrency)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
