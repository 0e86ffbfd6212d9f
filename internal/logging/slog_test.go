package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		kv    string
	}{
		{"DEBUG", "dbg", "a=1"},
		{"INFO", "inf", "b=2"},
		{"WARN", "wrn", "c=3"},
		{"ERROR", "err", "d=4"},
	}

	for _, tc := range tests {
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, "msg="+tc.msg)
		assert.Contains(t, out, tc.kv)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("request_id", "123", "path", "/prospects").Info(context.Background(), "hello", "k", "v")

	for _, s := range []string{"level=INFO", "msg=hello", "request_id=123", "path=/prospects", "k=v"} {
		assert.Contains(t, buf.String(), s)
	}
}

func TestNew_Backends(t *testing.T) {
	t.Run("slog respects level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("slog", "warn", &buf)
		require.NoError(t, err)

		l.Info(context.Background(), "hidden")
		l.Warn(context.Background(), "shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("zap writes key values", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("zap", "debug", &buf)
		require.NoError(t, err)

		l.With("component", "api").Debug(context.Background(), "request", "status", 401)

		out := buf.String()
		assert.Contains(t, out, "debug")
		assert.Contains(t, out, "request")
		assert.True(t, strings.Contains(out, `"status": 401`), out)
		assert.Contains(t, out, `"component": "api"`)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := New("logrus", "info", &bytes.Buffer{})
		require.Error(t, err)
	})
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.Error(context.TODO(), "ignored", "k", "v")
	l.With("a", 1).Info(context.TODO(), "ignored")
}
