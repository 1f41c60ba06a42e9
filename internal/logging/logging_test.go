package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		override    string
		want        slog.Level
		wantInvalid bool
	}{
		{name: "default is warn", want: slog.LevelWarn},
		{name: "verbose is debug", verbose: true, want: slog.LevelDebug},
		{name: "override wins over verbose", verbose: true, override: "error", want: slog.LevelError},
		{name: "override info", override: "info", want: slog.LevelInfo},
		{name: "unknown override keeps flag level", verbose: true, override: "trace", want: slog.LevelDebug, wantInvalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, invalid := Level(tt.verbose, tt.override)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantInvalid, invalid)
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown", "path", "/run/systemd/generator")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "path=/run/systemd/generator")
}

func TestNewNilWriter(t *testing.T) {
	logger := New(nil, slog.LevelDebug)
	logger.Debug("dropped")
	Discard().Error("dropped")
}
