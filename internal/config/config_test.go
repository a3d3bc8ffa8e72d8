package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.SkipLines != 2 {
		t.Errorf("SkipLines = %d; want 2", cfg.SkipLines)
	}
	if cfg.Level() != "warn" {
		t.Errorf("Level() = %s; want warn", cfg.Level())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		content   string
		wantSkip  int
		wantLevel string
		wantErr   bool
	}{
		{"Overrides skip", "skip_lines: 0\n", 0, "warn", false},
		{"Keeps defaults", "locale: de_DE.UTF-8\n", 2, "warn", false},
		{"Verbose means debug", "verbose: true\nlog_level: error\n", 2, "debug", false},
		{"Negative skip", "skip_lines: -1\n", 0, "", true},
		{"Bad format", "log_format: xml\n", 0, "", true},
		{"Bad yaml", "skip_lines: [\n", 0, "", true},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "config"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.SkipLines != tt.wantSkip {
				t.Errorf("SkipLines = %d; want %d", cfg.SkipLines, tt.wantSkip)
			}
			if cfg.Level() != tt.wantLevel {
				t.Errorf("Level() = %s; want %s", cfg.Level(), tt.wantLevel)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}
