// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	DocDB     DocDBConfig
	Assistant AssistantConfig
	SMTP      SMTPConfig
	Analytics AnalyticsConfig
	Log       LogConfig

	// EncryptionKey protects stored email credentials at rest.
	EncryptionKey string
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CacheConfig holds cache-related configuration.
type CacheConfig struct {
	Type     string
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// DocDBConfig holds document database configuration.
type DocDBConfig struct {
	Type     string
	URI      string
	Database string
}

// AssistantConfig holds the LLM assistant configuration.
type AssistantConfig struct {
	APIKey       string
	Model        string
	SystemPrompt string
	MaxTokens    int
}

// SMTPConfig holds outbound email configuration.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// ContactRecipient receives contact-form submissions.
	ContactRecipient string
}

// Address returns the SMTP server address in host:port format.
func (c SMTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AnalyticsConfig holds analytics endpoint configuration.
type AnalyticsConfig struct {
	// WindowDays is how far back the analytics query reaches.
	WindowDays int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnvAsInt("SERVER_PORT", 8080),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Cache: CacheConfig{
			Type:     getEnv("CACHE_TYPE", "redis"),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 180)) * time.Second,
		},
		DocDB: DocDBConfig{
			Type:     getEnv("DOCDB_TYPE", "mongodb"),
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "supportgenie"),
		},
		Assistant: AssistantConfig{
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			Model:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			SystemPrompt: getEnv("ASSISTANT_SYSTEM_PROMPT", "You are a helpful AI assistant. Please respond to the user's message."),
			MaxTokens:    getEnvAsInt("ASSISTANT_MAX_TOKENS", 1024),
		},
		SMTP: SMTPConfig{
			Host:             getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:             getEnvAsInt("SMTP_PORT", 587),
			Username:         getEnv("SMTP_USERNAME", ""),
			Password:         getEnv("SMTP_PASSWORD", ""),
			From:             getEnv("SMTP_FROM", "SupportGenie <support@supportgenie.io>"),
			ContactRecipient: getEnv("CONTACT_RECIPIENT", ""),
		},
		Analytics: AnalyticsConfig{
			WindowDays: getEnvAsInt("ANALYTICS_WINDOW_DAYS", 30),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		EncryptionKey: getEnv("SECRETS_ENCRYPTION_KEY", ""),
	}

	return cfg, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
