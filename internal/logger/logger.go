// Package logger is a thin leveled wrapper around log/slog whose output and
// level can be switched at runtime.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	levelVar   slog.LevelVar
	loggerMu   sync.RWMutex
	baseLogger *slog.Logger
)

func init() {
	levelVar.Set(slog.LevelInfo)
	baseLogger = newLogger(os.Stderr)
}

func newLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: &levelVar})
	return slog.New(handler)
}

// SetOutput redirects all subsequent log lines to w.
func SetOutput(w io.Writer) {
	loggerMu.Lock()
	baseLogger = newLogger(w)
	loggerMu.Unlock()
}

// SetLevel accepts debug, info, warn/warning or error. Anything else means info.
func SetLevel(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		levelVar.Set(slog.LevelDebug)
	case "warn", "warning":
		levelVar.Set(slog.LevelWarn)
	case "error":
		levelVar.Set(slog.LevelError)
	default:
		levelVar.Set(slog.LevelInfo)
	}
}

// Level reports the active level.
func Level() slog.Level {
	return levelVar.Level()
}

func activeLogger() *slog.Logger {
	loggerMu.RLock()
	l := baseLogger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if baseLogger == nil {
		baseLogger = newLogger(os.Stderr)
	}
	return baseLogger
}

func Debugf(format string, v ...any) {
	activeLogger().Debug(fmt.Sprintf(format, v...))
}

func Infof(format string, v ...any) {
	activeLogger().Info(fmt.Sprintf(format, v...))
}

func Warnf(format string, v ...any) {
	activeLogger().Warn(fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...any) {
	activeLogger().Error(fmt.Sprintf(format, v...))
}

// Entry logs with a fixed set of slog attributes attached to every line.
type Entry struct {
	attrs []any
}

// With returns an Entry carrying the given key/value pairs.
func With(args ...any) Entry {
	return Entry{attrs: append([]any(nil), args...)}
}

// With extends e with more key/value pairs.
func (e Entry) With(args ...any) Entry {
	attrs := make([]any, 0, len(e.attrs)+len(args))
	attrs = append(attrs, e.attrs...)
	return Entry{attrs: append(attrs, args...)}
}

func (e Entry) logger() *slog.Logger {
	l := activeLogger()
	if len(e.attrs) == 0 {
		return l
	}
	return l.With(e.attrs...)
}

func (e Entry) Debugf(format string, v ...any) {
	e.logger().Debug(fmt.Sprintf(format, v...))
}

func (e Entry) Infof(format string, v ...any) {
	e.logger().Info(fmt.Sprintf(format, v...))
}

func (e Entry) Warnf(format string, v ...any) {
	e.logger().Warn(fmt.Sprintf(format, v...))
}

func (e Entry) Errorf(format string, v ...any) {
	e.logger().Error(fmt.Sprintf(format, v...))
}

type entryKey struct{}

// NewContext returns ctx carrying the attributes of FromContext(ctx) plus args.
func NewContext(ctx context.Context, args ...any) context.Context {
	return context.WithValue(ctx, entryKey{}, FromContext(ctx).With(args...))
}

// FromContext returns the Entry stored by NewContext, or a bare Entry.
func FromContext(ctx context.Context) Entry {
	if ctx == nil {
		return Entry{}
	}
	if e, ok := ctx.Value(entryKey{}).(Entry); ok {
		return e
	}
	return Entry{}
}
