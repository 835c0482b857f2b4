package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewSlogLogger(l), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newBufLogger()
	ctx := context.Background()

	log.Debug(ctx, "dbg")
	log.Info(ctx, "inf")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err")

	out := buf.String()
	for _, want := range []string{"dbg", "inf", "wrn", "err"} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	log, buf := newBufLogger()

	child := log.With("component", "session")
	child.Info(context.Background(), "hello")

	require.Contains(t, buf.String(), "component=session")
}

func TestNew_FormatSelection(t *testing.T) {
	assert.NotNil(t, New("json"))
	assert.NotNil(t, New("text"))
	assert.NotNil(t, New("whatever"))
}

func TestNewDiscard_DoesNotPanic(t *testing.T) {
	log := NewDiscard()
	log.Info(context.Background(), "dropped", "k", "v")
	log.Error(context.Background(), "also dropped")
}
