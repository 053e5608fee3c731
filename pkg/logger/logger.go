// Package logger provides structured logging for the hookwire CLI.
// The parse path never logs; only the host-side command does.
package logger

import (
	"io"
	"log/slog"
)

// LogFilePermissions defines the file permissions for log files (owner
// read/write only).
const LogFilePermissions = 0o600

// Logger provides the structured logging interface.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// SlogLogger implements Logger on top of log/slog with the package's
// custom line handler.
type SlogLogger struct {
	slog *slog.Logger
}

// NewFileLogger creates a logger appending to the log file at path.
func NewFileLogger(path string, level Level) (*SlogLogger, error) {
	handler, err := NewFileHandler(path, level)
	if err != nil {
		return nil, err
	}

	return &SlogLogger{slog: slog.New(handler)}, nil
}

// NewWriterLogger creates a logger writing to w, mainly for tests.
func NewWriterLogger(w io.Writer, level Level) *SlogLogger {
	return &SlogLogger{slog: slog.New(NewWriterHandler(w, level))}
}

// Debug logs debug-level messages.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.slog.Debug(msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.slog.Info(msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.slog.Error(msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *SlogLogger) With(keysAndValues ...any) Logger {
	return &SlogLogger{slog: l.slog.With(keysAndValues...)}
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *NoOpLogger) With(...any) Logger { return l }
