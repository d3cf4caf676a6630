package logger

import (
	"io"
	"log/slog"
	"os"
)

// Interface is the logger handed to use cases, handlers and repositories.
// The *w variants take alternating key/value pairs.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)
}

type slogAdapter struct {
	log *slog.Logger
}

// NewLogger returns an Interface backed by the process-wide logger.
func NewLogger() Interface {
	return &slogAdapter{log: Get()}
}

// NewNopLogger discards everything; used by tests.
func NewNopLogger() Interface {
	return &slogAdapter{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *slogAdapter) Debug(msg string, args ...any) { l.log.Debug(msg, args...) }
func (l *slogAdapter) Info(msg string, args ...any)  { l.log.Info(msg, args...) }
func (l *slogAdapter) Warn(msg string, args ...any)  { l.log.Warn(msg, args...) }
func (l *slogAdapter) Error(msg string, args ...any) { l.log.Error(msg, args...) }

func (l *slogAdapter) Fatal(msg string, args ...any) {
	l.log.Error(msg, args...)
	os.Exit(1)
}

func (l *slogAdapter) With(args ...any) Interface {
	return &slogAdapter{log: l.log.With(args...)}
}

func (l *slogAdapter) Named(name string) Interface {
	return &slogAdapter{log: l.log.With("logger", name)}
}

func (l *slogAdapter) Debugw(msg string, kv ...any) { l.log.Debug(msg, kv...) }
func (l *slogAdapter) Infow(msg string, kv ...any)  { l.log.Info(msg, kv...) }
func (l *slogAdapter) Warnw(msg string, kv ...any)  { l.log.Warn(msg, kv...) }
func (l *slogAdapter) Errorw(msg string, kv ...any) { l.log.Error(msg, kv...) }

func (l *slogAdapter) Fatalw(msg string, kv ...any) {
	l.log.Error(msg, kv...)
	os.Exit(1)
}
