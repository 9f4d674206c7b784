// Package logger provides a context-carried [slog.Logger] with a tint handler.
//
// Diagnostic output only; check results are rendered by package render.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

type ctxKey string

const loggerKey ctxKey = "logger"

var discard = slog.New(slog.DiscardHandler)

// Options configure New.
type Options struct {
	// Verbose enables debug level.
	Verbose bool
	// NoColor forces plain output even on a terminal.
	NoColor bool
}

// New returns a logger writing tinted records to w.
// Colour is used only when w is a terminal and opts.NoColor is false.
func New(w io.Writer, opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor || !IsTerminal(w),
	}))
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Put returns a new context carrying l.
func Put(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Get retrieves the logger from ctx.
//
// If the context has no logger, it returns one that discards all records.
func Get(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return discard
}

// Debug logs a debug message.
func Debug(ctx context.Context, msg string, args ...any) {
	Get(ctx).DebugContext(ctx, msg, args...)
}

// Info logs an info message.
func Info(ctx context.Context, msg string, args ...any) {
	Get(ctx).InfoContext(ctx, msg, args...)
}

// Warn logs a warning message.
func Warn(ctx context.Context, msg string, args ...any) {
	Get(ctx).WarnContext(ctx, msg, args...)
}
