package slog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isobit/argparse"
)

func TestOptionsRegister(t *testing.T) {
	ctx := argparse.Context{ErrWriter: io.Discard}
	p := ctx.New("test", "")

	opts := &Options{}
	require.NoError(t, opts.Register(p))

	require.NoError(t, p.ParseArgs([]string{"--log-level", "warn", "--log-json"}))
	assert.Equal(t, slog.LevelWarn, opts.LogLevel)
	assert.True(t, opts.LogJSON)
}

func TestOptionsDefaults(t *testing.T) {
	ctx := argparse.Context{ErrWriter: io.Discard}
	p := ctx.New("test", "")

	opts := &Options{}
	require.NoError(t, opts.Register(p))

	require.NoError(t, p.ParseArgs(nil))
	assert.Equal(t, slog.LevelInfo, opts.LogLevel)
	assert.False(t, opts.LogJSON)
}

func TestConfigure(t *testing.T) {
	opts := &Options{LogLevel: slog.LevelDebug, LogJSON: true}
	opts.ConfigureWithHandlerOptions(io.Discard, nil)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
