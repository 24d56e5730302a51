// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/recipectl/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{
			name: "context with logger",
			ctx:  New(context.Background(), custom),
			want: custom,
		},
		{
			name: "context without logger",
			ctx:  context.Background(),
			want: DefaultLogger,
		},
		{
			name: "nil logger falls back to default",
			ctx:  New(context.Background(), nil),
			want: DefaultLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, Logger(tt.ctx))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{" Info ", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelWarn},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestEnvNameFor(t *testing.T) {
	assert.Equal(t, "RECIPECTL_LOG_LEVEL", envNameFor("/usr/local/bin/recipectl"))
	assert.Equal(t, "RECIPECTL_LOG_LEVEL", envNameFor(`recipectl.exe`))
	assert.Equal(t, "RECIPE_CTL_LOG_LEVEL", envNameFor("recipe-ctl"))
}

func TestHelpersUseContextLogger(t *testing.T) {
	prev := color.SetEnabled(false)
	t.Cleanup(func() { color.SetEnabled(prev) })

	buf := &bytes.Buffer{}
	logger := slog.New(NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := New(context.Background(), logger)

	Debug(ctx, "d")
	Info(ctx, "i")
	Warn(ctx, "w")
	Error(ctx, "e", "code", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "DEBUG: d")
	assert.Contains(t, lines[1], "INFO: i")
	assert.Contains(t, lines[2], "WARN: w")
	assert.Contains(t, lines[3], "ERROR: e")
	assert.Contains(t, lines[3], `"code"`)
}
