// Package logger holds the process-wide diagnostic logger. Diagnostics never
// go to stdout, which carries the scan report.
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance. It discards all output by default.
// Call Init() to enable logging.
var L *slog.Logger = slog.New(slog.DiscardHandler)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // Text records go to Writer
	Writer  io.Writer  // Text output when Enabled. Default: os.Stderr
	LogFile string     // If set, JSON records are appended here as well
	Level   slog.Level // Minimum level for both outputs (zero value is LevelInfo)
}

// Init configures logging. Call before any log calls. With neither Enabled
// nor LogFile set, all logging is discarded. The returned func closes the log
// file, if one was opened.
func Init(opts Options) (func() error, error) {
	noop := func() error { return nil }
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var handlers []slog.Handler
	closer := noop

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return noop, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
		closer = f.Close
	}

	if opts.Enabled {
		w := opts.Writer
		if w == nil {
			w = os.Stderr
		}
		handlers = append(handlers, slog.NewTextHandler(w, handlerOpts))
	}

	switch len(handlers) {
	case 0:
		L = slog.New(slog.DiscardHandler)
	case 1:
		L = slog.New(handlers[0])
	default:
		L = slog.New(teeHandler(handlers))
	}
	return closer, nil
}

// teeHandler sends each record to every handler that accepts its level.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
