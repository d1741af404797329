package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BOT_TOKEN", "LOG_LEVEL", "FETCH_LIMIT", "POLL_TIMEOUT_SEC",
		"CHANNEL_CAPACITY", "RATE_LIMIT_RPS", "OFFSET_STORE_PATH", "DROP_PENDING_UPDATES",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_RequiresBotToken(t *testing.T) {
	clearEnv(t)
	if _, err := Load("testdata-does-not-exist.env"); err == nil {
		t.Fatalf("expected an error when BOT_TOKEN is unset")
	}
}

func TestLoad_AppliesDefaultsAndWarns(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Load("testdata-does-not-exist.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want default %q", cfg.Env.LogLevel, defaultLogLevel)
	}
	if cfg.Env.FetchLimit != defaultFetchLimit {
		t.Fatalf("FetchLimit = %d, want default %d", cfg.Env.FetchLimit, defaultFetchLimit)
	}
	if len(cfg.Warnings()) == 0 {
		t.Fatalf("expected warnings for every omitted variable, got none")
	}
}

func TestLoad_InvalidLogLevelFallsBackWithWarning(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("LOG_LEVEL", "verbose")

	cfg, err := Load("testdata-does-not-exist.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want fallback to default %q", cfg.Env.LogLevel, defaultLogLevel)
	}
}
