// Package logger provides a simple logging interface for vfetch components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
//
// Log output always goes to stderr: stdout is the surface the panel is
// painted on, and a stray log line there would land in the middle of it.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnvVar enables debug output when set to any non-empty value.
const DebugEnvVar = "VFETCH_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// zapLogger implements Logger on top of a zap sugared logger.
type zapLogger struct {
	prefix string
	sugar  *zap.SugaredLogger
}

// NewEnvLogger creates a stderr logger that respects the VFETCH_DEBUG environment variable.
// The prefix is prepended to all log messages (e.g., "[probe]" or "[render]").
func NewEnvLogger(prefix string) Logger {
	return New(os.Stderr, prefix, os.Getenv(DebugEnvVar) != "")
}

// New creates a logger writing to w. Debug messages are dropped unless debug is true.
func New(w io.Writer, prefix string, debug bool) Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)

	return &zapLogger{prefix: prefix, sugar: zap.New(core).Sugar()}
}

func (l *zapLogger) format(format string) string {
	if l.prefix == "" {
		return format
	}
	return l.prefix + " " + format
}

func (l *zapLogger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(l.format(format), args...)
}

func (l *zapLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(l.format(format), args...)
}

func (l *zapLogger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(l.format(format), args...)
}

func (l *zapLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(l.format(format), args...)
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("")

// Default returns the package-level logger.
func Default() Logger {
	return defaultLogger
}

// SetDefault replaces the package-level logger, e.g. when --verbose is given.
func SetDefault(l Logger) {
	defaultLogger = l
}
