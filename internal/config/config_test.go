package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.CalSearchWindowDays != 2 {
		t.Errorf("CalSearchWindowDays = %d, want 2", cfg.CalSearchWindowDays)
	}
	if cfg.HighLevelSearchWindowDays != 1 {
		t.Errorf("HighLevelSearchWindowDays = %d, want 1", cfg.HighLevelSearchWindowDays)
	}
	if cfg.HighLevelSearchDelay != 500*time.Millisecond {
		t.Errorf("HighLevelSearchDelay = %v, want 500ms", cfg.HighLevelSearchDelay)
	}
	if cfg.HighLevelAPIVersion != "2021-04-15" {
		t.Errorf("HighLevelAPIVersion = %s", cfg.HighLevelAPIVersion)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CAL_SEARCH_MAX_ATTEMPTS", "5")
	t.Setenv("HIGHLEVEL_SEARCH_DELAY", "250ms")
	t.Setenv("TIMEZONE_CACHE_TTL", "1h")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.CalSearchMaxAttempts != 5 {
		t.Errorf("CalSearchMaxAttempts = %d, want 5", cfg.CalSearchMaxAttempts)
	}
	if cfg.HighLevelSearchDelay != 250*time.Millisecond {
		t.Errorf("HighLevelSearchDelay = %v, want 250ms", cfg.HighLevelSearchDelay)
	}
	if cfg.TimezoneCacheTTL != time.Hour {
		t.Errorf("TimezoneCacheTTL = %v, want 1h", cfg.TimezoneCacheTTL)
	}
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("OUTBOX_BATCH_SIZE", "not-a-number")
	cfg := Load()
	if cfg.OutboxBatchSize != 25 {
		t.Errorf("OutboxBatchSize = %d, want default 25", cfg.OutboxBatchSize)
	}
}
