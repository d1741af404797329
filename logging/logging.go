// Package logging adapts the teacher's internal/infra/logger/logger.go to
// this module's ambient logging needs (SPEC_FULL.md "AMBIENT STACK —
// Logging"): a zap-based logger with a console encoder, colored level,
// short caller, and an atomic level that can be changed at runtime.
//
// Unlike the teacher, this package exports no mutable package-level
// singleton: tgcore is a library, and each Dispatcher/Router/HTTPSession
// is handed its own *Logger explicitly.
package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kurtskinny/tgcore/bot"
)

// Logger wraps a *zap.Logger behind a level that can be changed after
// construction, matching the teacher's rebuildLoggerLocked approach.
type Logger struct {
	mu     sync.Mutex
	level  zap.AtomicLevel
	base   *zap.Logger
	stdout zapcore.WriteSyncer
	stderr zapcore.WriteSyncer
}

// Option configures a Logger at construction time.
type Option func(*Logger)

// WithFileOutput adds a rotating file sink via lumberjack alongside the
// console output, for long-running polling processes that log to disk.
func WithFileOutput(path string, maxSizeMB, maxBackups, maxAgeDays int) Option {
	return func(l *Logger) {
		sink := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		l.stdout = zapcore.NewMultiWriteSyncer(l.stdout, zapcore.AddSync(sink))
	}
}

func defaultEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// New builds a Logger at the given level ("debug", "warn", "error", else
// "info"), matching the teacher's Init(level string) sanitation.
func New(level string, opts ...Option) *Logger {
	l := &Logger{
		level:  zap.NewAtomicLevelAt(parseLevel(level)),
		stdout: zapcore.Lock(zapcore.AddSync(os.Stdout)),
		stderr: zapcore.Lock(zapcore.AddSync(os.Stderr)),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.rebuild()
	return l
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) rebuild() {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(defaultEncoderConfig()), l.stdout, l.level)
	l.base = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.ErrorOutput(l.stderr))
}

// SetLevel changes the active level without rebuilding sinks.
func (l *Logger) SetLevel(level string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level.SetLevel(parseLevel(level))
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.base.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.base.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.base.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.base.Error(msg, fields...) }

// Sync flushes buffered log entries; call before process exit.
func (l *Logger) Sync() error { return l.base.Sync() }

// BotField is the one sanctioned way to put a bot's identity into a log
// record: it always renders the hidden token, never the raw one
// (SPEC_FULL.md §3.2, testable property "Token redaction" in §8).
func BotField(b *bot.Bot) zap.Field {
	return zap.String("bot", b.String())
}
