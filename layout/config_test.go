package layout

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	data := []byte("epsilon = 0.5\nmax_depth = 32\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.Epsilon != 0.5 {
		t.Errorf("Epsilon = %v, want 0.5", cfg.Epsilon)
	}
	if cfg.MaxDepth != 32 {
		t.Errorf("MaxDepth = %v, want 32", cfg.MaxDepth)
	}
	// Unset keys keep their defaults.
	def := DefaultConfig()
	if cfg.MaxFillIterations != def.MaxFillIterations {
		t.Errorf("MaxFillIterations = %v, want default %v", cfg.MaxFillIterations, def.MaxFillIterations)
	}
	if cfg.LogLevel != def.LogLevel {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, def.LogLevel)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("epsilon = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestConfigWithDefaults(t *testing.T) {
	got := Config{}.withDefaults()
	if got != DefaultConfig() {
		t.Errorf("withDefaults() = %+v, want %+v", got, DefaultConfig())
	}
}
