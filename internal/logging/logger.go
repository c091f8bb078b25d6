// Package logging wraps zap for the handful of structured log lines the
// Integration Loop and Synthesis Mechanism emit.
package logging

import (
	"strings"

	"go.uber.org/zap"
)

// Logger is a thin wrapper around a zap SugaredLogger.
type Logger struct {
	sugared *zap.SugaredLogger
}

// New builds a Logger for the given mode ("prod"/"production" selects
// zap's production config; anything else, including "", selects the
// development config with debug-level output).
func New(mode string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{sugared: z.Sugar()}, nil
}

// Noop returns a Logger backed by zap's no-op core, safe to use as a
// default when the caller doesn't care about log output (e.g. in tests).
func Noop() *Logger {
	return &Logger{sugared: zap.NewNop().Sugar()}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() {
	_ = l.sugared.Sync()
}

func (l *Logger) Debugw(msg string, keysAndValues ...interface{}) {
	l.sugared.Debugw(msg, keysAndValues...)
}

func (l *Logger) Infow(msg string, keysAndValues ...interface{}) {
	l.sugared.Infow(msg, keysAndValues...)
}

func (l *Logger) Warnw(msg string, keysAndValues ...interface{}) {
	l.sugared.Warnw(msg, keysAndValues...)
}

func (l *Logger) Errorw(msg string, keysAndValues ...interface{}) {
	l.sugared.Errorw(msg, keysAndValues...)
}

func (l *Logger) Fatalw(msg string, keysAndValues ...interface{}) {
	l.sugared.Fatalw(msg, keysAndValues...)
}

// With returns a child Logger carrying the given key/value pairs on
// every subsequent call.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugared: l.sugared.With(keysAndValues...)}
}
