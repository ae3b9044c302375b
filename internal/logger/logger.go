package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is a scoped slog logger. Scopes are values, so deriving a
// Function or File logger never mutates the parent.
type Logger struct {
	pkg  string
	file string
	fn   string
}

func New(pkg string) Logger {
	return Logger{pkg: pkg}
}

func (l Logger) File(name string) Logger {
	l.file = name
	return l
}

func (l Logger) Function(name string) Logger {
	l.fn = name
	return l
}

// Setup installs the process-wide slog handler.
func Setup(level string, json bool) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l Logger) attrs(args []any) []any {
	scoped := make([]any, 0, len(args)+6)
	scoped = append(scoped, "package", l.pkg)
	if l.file != "" {
		scoped = append(scoped, "file", l.file)
	}
	if l.fn != "" {
		scoped = append(scoped, "function", l.fn)
	}
	return append(scoped, args...)
}

func (l Logger) log(level slog.Level, msg string, args ...any) {
	slog.Default().Log(context.Background(), level, msg, l.attrs(args)...)
}

func (l Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

func (l Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Er logs err without returning it.
func (l Logger) Er(msg string, err error, args ...any) {
	l.log(slog.LevelError, msg, append(args, "error", err)...)
}

func (l Logger) ErMsg(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

// Err logs err and returns it wrapped with msg. The original error stays
// reachable through errors.Is / errors.As.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.Er(msg, err, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs msg with args and returns it as a new error.
func (l Logger) Error(msg string, args ...any) error {
	l.log(slog.LevelError, msg, args...)
	return errors.New(msg)
}

func (l Logger) ErrMsg(msg string) error {
	l.log(slog.LevelError, msg)
	return errors.New(msg)
}
