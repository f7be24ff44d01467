package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/dvholsteijn/couplingviz/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "couplingviz.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Extension != ".java" {
		t.Errorf("Extension = %q, want .java", cfg.Extension)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
exclude   = ["java", "javax"]
output    = "out"
title     = "My project"
workers   = 3
check_dot = true
json      = "graph.json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(cfg.Exclude, []string{"java", "javax"}) {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
	if cfg.Output != "out" || cfg.Title != "My project" || cfg.JSON != "graph.json" {
		t.Errorf("Output=%q Title=%q JSON=%q", cfg.Output, cfg.Title, cfg.JSON)
	}
	if cfg.Workers != 3 || !cfg.CheckDOT {
		t.Errorf("Workers=%d CheckDOT=%v", cfg.Workers, cfg.CheckDOT)
	}
	if cfg.Extension != ".java" {
		t.Errorf("Extension = %q, want default .java", cfg.Extension)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "exclude = [\n"},
		{"unknown key", "exclusions = [\"java\"]\n"},
		{"wrong type", "workers = \"four\"\n"},
		{"zero workers", "workers = 0\n"},
		{"bad extension", "extension = \"java\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
