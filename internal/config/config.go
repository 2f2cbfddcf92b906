package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingCredential indicates the OpenRouter API key was not provided.
// Every code path that talks to the oracle is unusable without it.
var ErrMissingCredential = errors.New("OPENROUTER_API_KEY is required")

type Config struct {
	Port        string
	DBPath      string
	APIKey      string
	OracleURL   string
	MoodModel   string
	PromptModel string

	// OracleTimeout bounds each outbound oracle call. The remote service is
	// untrusted and has no SLA.
	OracleTimeout time.Duration

	// CoordinateFallback, when non-empty, makes the coordinate mapper return
	// this emotion instead of surfacing oracle failures. Off by default:
	// the coordinate picker is best-effort-when-the-service-is-up, while the
	// prompt generator always falls back locally.
	CoordinateFallback string
}

func Load() (*Config, error) {
	// Optional .env file for local development. Missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("MOOD_PORT", "8080"),
		DBPath:             getEnv("MOOD_DB_PATH", "journal.db"),
		APIKey:             getEnv("OPENROUTER_API_KEY", ""),
		OracleURL:          getEnv("MOOD_ORACLE_URL", "https://openrouter.ai/api/v1"),
		MoodModel:          getEnv("MOOD_MODEL", "anthropic/claude-3-opus-20240229"),
		PromptModel:        getEnv("MOOD_PROMPT_MODEL", "anthropic/claude-3-haiku:beta"),
		OracleTimeout:      getDurationEnv("MOOD_ORACLE_TIMEOUT_SECONDS", 30*time.Second),
		CoordinateFallback: getEnv("MOOD_COORDINATE_FALLBACK", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return ErrMissingCredential
	}
	if c.DBPath == "" {
		return fmt.Errorf("MOOD_DB_PATH must not be empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(val)
	if err != nil || secs <= 0 {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
