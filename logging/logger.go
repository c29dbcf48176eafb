// Package logging defines the leveled logger used by rghost and a no-op
// implementation for when logging is disabled.
package logging

import (
	"context"
	"maps"
)

// Logger is the leveled logger rghost writes to. Arguments after msg are
// key/value pairs. The gologger package backs it with go-logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// Provider exposes named loggers.
type Provider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for attaching persistent structured
// fields to a logger.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}

// WithFields attaches fields to logger when it supports FieldsLogger.
// Other loggers are returned unchanged.
func WithFields(logger Logger, fields map[string]any) Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	if fl, ok := logger.(FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fl.WithFields(copied)
	}
	return logger
}

// Named returns the provider's logger for name with a "component" field, or
// a no-op logger when provider is nil.
func Named(provider Provider, name string) Logger {
	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(name); provided != nil {
			logger = provided
		}
	}
	return WithFields(logger, map[string]any{"component": name})
}

// OrNoOp returns logger, or a no-op logger when logger is nil.
func OrNoOp(logger Logger) Logger {
	if logger == nil {
		return NoOp()
	}
	return logger
}

// NoOp returns a logger that drops every entry.
func NoOp() Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ Logger = noopLogger{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) Logger {
	return n
}
