package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	DatabaseURL string

	// Backend CRM API (lead lookup, credentials resolution)
	CRMBaseURL string
	CRMAPIKey  string

	// Calendar provider endpoints. Empty values fall back to the
	// providers' production endpoints.
	CalAPIBaseURL       string
	HighLevelBaseURL    string
	HighLevelAPIVersion string

	// Availability search policies
	CalSearchWindowDays       int
	CalSearchMaxAttempts      int
	HighLevelSearchWindowDays int
	HighLevelSearchAttempts   int
	HighLevelSearchDelay      time.Duration

	// Automation event delivery
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
	AutomationQueueURL  string
	OutboxBatchSize     int
	OutboxPollInterval  time.Duration

	RedisAddr        string
	RedisPassword    string
	TimezoneCacheTTL time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		CRMBaseURL: getEnv("CRM_BASE_URL", ""),
		CRMAPIKey:  getEnv("CRM_API_KEY", ""),

		CalAPIBaseURL:       getEnv("CALAPI_BASE_URL", ""),
		HighLevelBaseURL:    getEnv("HIGHLEVEL_BASE_URL", ""),
		HighLevelAPIVersion: getEnv("HIGHLEVEL_API_VERSION", "2021-04-15"),

		CalSearchWindowDays:       getEnvAsInt("CAL_SEARCH_WINDOW_DAYS", 2),
		CalSearchMaxAttempts:      getEnvAsInt("CAL_SEARCH_MAX_ATTEMPTS", 3),
		HighLevelSearchWindowDays: getEnvAsInt("HIGHLEVEL_SEARCH_WINDOW_DAYS", 1),
		HighLevelSearchAttempts:   getEnvAsInt("HIGHLEVEL_SEARCH_MAX_ATTEMPTS", 3),
		HighLevelSearchDelay:      getEnvAsDuration("HIGHLEVEL_SEARCH_DELAY", 500*time.Millisecond),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
		AutomationQueueURL:  getEnv("AUTOMATION_QUEUE_URL", ""),
		OutboxBatchSize:     getEnvAsInt("OUTBOX_BATCH_SIZE", 25),
		OutboxPollInterval:  getEnvAsDuration("OUTBOX_POLL_INTERVAL", 2*time.Second),

		RedisAddr:        getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		TimezoneCacheTTL: getEnvAsDuration("TIMEZONE_CACHE_TTL", 12*time.Hour),
	}
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
