package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLogger_ScopesAreIndependent(t *testing.T) {
	base := New("repositories")
	scoped := base.File("member").Function("Create")

	assert.Equal(t, "", base.fn)
	assert.Equal(t, "Create", scoped.fn)
	assert.Equal(t, "member", scoped.file)
}

func TestLogger_ErrWrapsCause(t *testing.T) {
	buf := captureDefault(t)
	cause := errors.New("disk full")

	err := New("database").Function("Save").Err("failed to save", cause, "id", 7)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save: disk full", err.Error())
	assert.Contains(t, buf.String(), `"function":"Save"`)
	assert.Contains(t, buf.String(), `"id":7`)
}

func TestLogger_Error(t *testing.T) {
	buf := captureDefault(t)

	err := New("app").Error("database is nil", "component", "db")

	assert.EqualError(t, err, "database is nil")
	assert.Contains(t, buf.String(), `"component":"db"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(input))
		})
	}
}
