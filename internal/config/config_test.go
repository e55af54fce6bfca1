package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Load() created %s, want nothing written", dir)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[window]
title = "Pocket"
width = 400

[palette]
operator_bg = "#123456"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window.Title != "Pocket" {
		t.Errorf("Title = %q, want Pocket", cfg.Window.Title)
	}
	if cfg.Window.Width != 400 {
		t.Errorf("Width = %d, want 400", cfg.Window.Width)
	}
	if cfg.Window.Height != 480 {
		t.Errorf("Height = %d, want default 480", cfg.Window.Height)
	}
	if cfg.Palette.OperatorBg != "#123456" {
		t.Errorf("OperatorBg = %q, want #123456", cfg.Palette.OperatorBg)
	}
	if cfg.Palette.ClearBg != "#d4d4d4" {
		t.Errorf("ClearBg = %q, want default", cfg.Palette.ClearBg)
	}
}

func TestLoadInvalidFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[window\ntitle="},
		{"bad color", "[palette]\nbutton_bg = \"red\"\n"},
		{"tiny window", "[window]\nwidth = 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if cfg != Default() {
				t.Errorf("Load() = %+v, want defaults on error", cfg)
			}
		})
	}
}

func TestLoadEncodedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := Default()
	want.Window.FixedSize = false
	want.Palette.EqualsBg = "#00aa00"

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(want); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}
