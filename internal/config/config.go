package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	LogMode       string

	RateLimitWindow time.Duration
	RateLimitMax    int
}

func Load() *Config {
	return &Config{
		Port:            GetEnvAsString("PORT", "8080"),
		DatabaseDSN:     GetEnvAsString("DATABASE_DSN", ""),
		RedisAddr:       GetEnvAsString("REDIS_ADDR", ""),
		RedisPassword:   GetEnvAsString("REDIS_PASSWORD", ""),
		LogMode:         GetEnvAsString("LOG_MODE", "dev"),
		RateLimitWindow: GetEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMax:    GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 300),
	}
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
