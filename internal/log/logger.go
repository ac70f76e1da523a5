// Package log wraps log/slog with a component field and the structured
// field names used across the module.
package log

import (
	"log/slog"
	"os"
)

// Logger carries a component name that is attached to every record.
type Logger struct {
	*slog.Logger
	component string
}

// New builds a text-handler logger at the given level and component.
func New(level slog.Level, component string) *Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(handler).With(FieldComponent, component),
		component: component,
	}
}

// WithComponent returns a logger scoped to a different component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(FieldComponent, component),
		component: component,
	}
}

// With returns a logger with extra attributes attached.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// SetDefault installs the logger as the process-wide slog default, so
// packages logging through slog directly pick it up.
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
