// Package config adapts the teacher's internal/infra/config/config.go
// warnings-accumulation style to this module's own environment variables
// (SPEC_FULL.md "AMBIENT STACK — Configuration"): read once via godotenv,
// normalize with defaults, and keep a non-fatal warnings list for anything
// that had to fall back rather than crashing a long-running bot process.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds the normalized environment-derived settings a tgcore-based bot
// process needs at startup.
type Env struct {
	BotToken        string
	LogLevel        string
	FetchLimit      int
	PollTimeoutSec  int
	ChannelCapacity int
	RateLimitRPS    int
	OffsetStorePath string
	DropPending     bool
}

const (
	defaultLogLevel        = "info"
	defaultFetchLimit      = 100
	defaultPollTimeoutSec  = 30
	defaultChannelCapacity = 100
	defaultRateLimitRPS    = 30
	defaultOffsetStorePath = "data/offsets.db"
)

// Config is the immutable result of Load, plus the warnings accumulated
// while normalizing it.
type Config struct {
	Env      Env
	warnings []string
}

// Load reads envPath (if it exists; a missing .env file is not an error,
// matching godotenv.Load's behaviour for processes configured purely via
// real environment variables in production) and returns a normalized
// Config. BOT_TOKEN is the only required variable; every numeric,
// log-level and path variable falls back to a documented default with a
// recorded warning, and DROP_PENDING_UPDATES is false unless set to
// "true", with no warning.
func Load(envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load %s: %w", envPath, err)
	}

	token := strings.TrimSpace(os.Getenv("BOT_TOKEN"))
	if token == "" {
		return nil, fmt.Errorf("config: env BOT_TOKEN must be set")
	}

	var warnings []string
	env := Env{
		BotToken:        token,
		LogLevel:        sanitizeLogLevel(os.Getenv("LOG_LEVEL"), &warnings),
		FetchLimit:      parseIntDefault("FETCH_LIMIT", defaultFetchLimit, greaterThanZero, &warnings),
		PollTimeoutSec:  parseIntDefault("POLL_TIMEOUT_SEC", defaultPollTimeoutSec, nonNegative, &warnings),
		ChannelCapacity: parseIntDefault("CHANNEL_CAPACITY", defaultChannelCapacity, greaterThanZero, &warnings),
		RateLimitRPS:    parseIntDefault("RATE_LIMIT_RPS", defaultRateLimitRPS, greaterThanZero, &warnings),
		OffsetStorePath: sanitizeFile("OFFSET_STORE_PATH", os.Getenv("OFFSET_STORE_PATH"), defaultOffsetStorePath, &warnings),
		DropPending:     strings.EqualFold(strings.TrimSpace(os.Getenv("DROP_PENDING_UPDATES")), "true"),
	}

	return &Config{Env: env, warnings: warnings}, nil
}

// Warnings returns a copy of the warnings accumulated while normalizing
// the environment, for the caller to log at startup.
func (c *Config) Warnings() []string {
	out := make([]string, len(c.warnings))
	copy(out, c.warnings)
	return out
}

func appendWarningf(warnings *[]string, format string, args ...any) {
	*warnings = append(*warnings, fmt.Sprintf(format, args...))
}

func greaterThanZero(v int) bool { return v > 0 }
func nonNegative(v int) bool     { return v >= 0 }

func parseIntDefault(name string, defaultVal int, validator func(int) bool, warnings *[]string) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		appendWarningf(warnings, "env %s is not set; using default %d", name, defaultVal)
		return defaultVal
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		appendWarningf(warnings, "env %s value %q is not a valid integer; using default %d", name, value, defaultVal)
		return defaultVal
	}
	if validator != nil && !validator(v) {
		appendWarningf(warnings, "env %s value %d does not satisfy constraints; using default %d", name, v, defaultVal)
		return defaultVal
	}
	return v
}

func sanitizeLogLevel(level string, warnings *[]string) string {
	lvl := strings.ToLower(strings.TrimSpace(level))
	if lvl == "" {
		appendWarningf(warnings, "env LOG_LEVEL is not set; using default %q", defaultLogLevel)
		return defaultLogLevel
	}
	switch lvl {
	case "debug", "info", "warn", "error":
		return lvl
	default:
		appendWarningf(warnings, "env LOG_LEVEL value %q is invalid; using default %q", level, defaultLogLevel)
		return defaultLogLevel
	}
}

func sanitizeFile(name, value, fallback string, warnings *[]string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		appendWarningf(warnings, "env %s is not set; using default %q", name, fallback)
		return fallback
	}
	return v
}
