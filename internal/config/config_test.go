package config

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("OPENROUTER_API_KEY", "test_key")
	os.Setenv("MOOD_DB_PATH", "/tmp/test.db")
	defer func() {
		os.Unsetenv("OPENROUTER_API_KEY")
		os.Unsetenv("MOOD_DB_PATH")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.APIKey != "test_key" {
		t.Errorf("expected api key test_key, got %s", cfg.APIKey)
	}

	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("expected db path /tmp/test.db, got %s", cfg.DBPath)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}

	if cfg.OracleURL != "https://openrouter.ai/api/v1" {
		t.Errorf("expected default oracle URL, got %s", cfg.OracleURL)
	}
}

func TestLoadConfigMissingCredential(t *testing.T) {
	os.Unsetenv("OPENROUTER_API_KEY")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when API key is missing")
	}

	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	os.Setenv("OPENROUTER_API_KEY", "k")
	defer os.Unsetenv("OPENROUTER_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.MoodModel != "anthropic/claude-3-opus-20240229" {
		t.Errorf("unexpected default mood model %s", cfg.MoodModel)
	}
	if cfg.PromptModel != "anthropic/claude-3-haiku:beta" {
		t.Errorf("unexpected default prompt model %s", cfg.PromptModel)
	}
	if cfg.DBPath != "journal.db" {
		t.Errorf("default db path should be journal.db, got %s", cfg.DBPath)
	}
	if cfg.OracleTimeout != 30*time.Second {
		t.Errorf("default oracle timeout should be 30s, got %v", cfg.OracleTimeout)
	}
	if cfg.CoordinateFallback != "" {
		t.Errorf("coordinate fallback should default to disabled")
	}
}

func TestOracleTimeoutOverride(t *testing.T) {
	os.Setenv("OPENROUTER_API_KEY", "k")
	os.Setenv("MOOD_ORACLE_TIMEOUT_SECONDS", "10")
	defer func() {
		os.Unsetenv("OPENROUTER_API_KEY")
		os.Unsetenv("MOOD_ORACLE_TIMEOUT_SECONDS")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.OracleTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.OracleTimeout)
	}
}
