package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"loud", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}
}

func TestSetupJSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logger := Setup(&buf, "info", "json")
	logger.Debug("hidden")
	logger.Info("rewrote file", "file", "a.csv")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug entry should be filtered at info level: %s", out)
	}
	if !strings.Contains(out, `"msg":"rewrote file"`) || !strings.Contains(out, `"file":"a.csv"`) {
		t.Errorf("Expected JSON entry, got %s", out)
	}
}
