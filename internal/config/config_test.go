package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.Format.Default != "" {
		t.Errorf("Expected empty default format, got %q", cfg.Format.Default)
	}
	if cfg.Loader.AllowMissingElevation {
		t.Error("Expected missing elevation to be rejected by default")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "log:\n  level: debug\nformat:\n  default: gpx_track\nmetrics:\n  textfile: /tmp/groute.prom\n"
	if err := os.WriteFile(filepath.Join(dir, "groute.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	t.Setenv("GROUTE_LOG_FORMAT", "json")
	t.Setenv("GROUTE_LOADER_ALLOW_MISSING_ELEVATION", "true")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level from file, got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Expected log format from env, got %q", cfg.Log.Format)
	}
	if cfg.Format.Default != "gpx_track" {
		t.Errorf("Expected default format gpx_track, got %q", cfg.Format.Default)
	}
	if !cfg.Loader.AllowMissingElevation {
		t.Error("Expected allow_missing_elevation from env")
	}
	if cfg.Metrics.Textfile != "/tmp/groute.prom" {
		t.Errorf("Unexpected metrics textfile %q", cfg.Metrics.Textfile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"ok", Config{Log: LogConfig{Level: "warn", Format: "json"}}, ""},
		{"bad level", Config{Log: LogConfig{Level: "loud", Format: "json"}}, "log.level"},
		{"bad log format", Config{Log: LogConfig{Level: "info", Format: "xml"}}, "log.format"},
		{"bad track format", Config{Log: LogConfig{Level: "info", Format: "text"}, Format: FormatConfig{Default: "kml"}}, "format.default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	t.Setenv("GROUTE_LOG_LEVEL", "verbose")

	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Expected an error for an unknown log level")
	}
}
