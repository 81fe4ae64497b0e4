// Package logger provides a leveled logging facade for the module.
// The default logger writes through the standard library log package;
// use [SetDefault] with a [SlogLogger] to emit structured slog records
// instead, or with a [NoOpLogger] to silence the module entirely.
package logger

import (
	"log"
	"os"
	"sync"
)

// Logger is an interface for handling structured log records at different
// severity levels. Trailing args are alternating key/value pairs.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoOpLogger satisfies the Logger interface and discards all log messages.
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

func (NoOpLogger) Trace(_ string, _ ...any) {}
func (NoOpLogger) Debug(_ string, _ ...any) {}
func (NoOpLogger) Info(_ string, _ ...any)  {}
func (NoOpLogger) Warn(_ string, _ ...any)  {}
func (NoOpLogger) Error(_ string, _ ...any) {}

type loggerValue struct {
	sync.RWMutex
	logger Logger
}

func (l *loggerValue) getLogger() Logger {
	l.RLock()
	defer l.RUnlock()
	return l.logger
}

func (l *loggerValue) setLogger(new Logger) {
	l.Lock()
	defer l.Unlock()
	l.logger = new
}

var defaultLogger = loggerValue{
	logger: NewSimpleLogger(
		log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile),
		LevelInfo,
	),
}

// Default returns the default Logger.
func Default() Logger {
	return defaultLogger.getLogger()
}

// SetDefault makes l the default Logger.
func SetDefault(l Logger) {
	defaultLogger.setLogger(l)
}

// Trace logs at LevelTrace via the default Logger.
func Trace(msg string, args ...any) {
	Default().Trace(msg, args...)
}

// Debug logs at LevelDebug via the default Logger.
func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

// Info logs at LevelInfo via the default Logger.
func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

// Warn logs at LevelWarn via the default Logger.
func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

// Error logs at LevelError via the default Logger.
func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}
