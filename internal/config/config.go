package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// IngredientCacheSize bounds the in-memory ingredient lookup cache
	IngredientCacheSize int
	// IngredientCacheTTL is how long a cached ingredient snapshot stays valid
	IngredientCacheTTL time.Duration

	// EventDeadLetterPath is where undeliverable events are appended
	EventDeadLetterPath string
	// EventMaxRetries caps background redelivery attempts; 0 uses the default
	EventMaxRetries int
	// EventRetryDelay is the base delay between redelivery attempts
	EventRetryDelay time.Duration

	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is honored
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		Environment:         getEnv("ENVIRONMENT", "dev"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBName:              getEnv("DB_NAME", "pantryline"),
		EventDeadLetterPath: getEnv("EVENT_DEAD_LETTER_PATH", "logs/event_deadletter.jsonl"),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cacheSize, err := getEnvInt("INGREDIENT_CACHE_SIZE", 512)
	if err != nil {
		return nil, err
	}
	cfg.IngredientCacheSize = cacheSize

	cacheTTL, err := getEnvInt("INGREDIENT_CACHE_TTL_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.IngredientCacheTTL = time.Duration(cacheTTL) * time.Second

	maxRetries, err := getEnvInt("EVENT_MAX_RETRIES", 0)
	if err != nil {
		return nil, err
	}
	cfg.EventMaxRetries = maxRetries

	retryDelay, err := getEnvInt("EVENT_RETRY_DELAY_SECONDS", 0)
	if err != nil {
		return nil, err
	}
	cfg.EventRetryDelay = time.Duration(retryDelay) * time.Second

	if raw := getEnv("TRUSTED_PROXIES", ""); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
