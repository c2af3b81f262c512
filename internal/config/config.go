package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Env         string
	LogLevel    string
	HTTPPort    string
	BotToken    string
	AdminChatID int64
	DatabaseURL string
	PollTimeout int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		BotToken:    getEnv("BOT_TOKEN", ""),
		AdminChatID: getEnvAsInt64("ADMIN_CHAT_ID", 0),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		PollTimeout: getEnvAsInt("POLL_TIMEOUT", 30),
	}
}

// Validate checks that the settings the bot cannot run without are present.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return errors.New("config: BOT_TOKEN is required")
	}
	if c.AdminChatID == 0 {
		return errors.New("config: ADMIN_CHAT_ID is required")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
