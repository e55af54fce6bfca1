// Package config loads the calculator's TOML settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Window controls the main window geometry.
type Window struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	FixedSize bool   `toml:"fixed_size"`
}

// Palette holds the widget colors as #rrggbb strings.
type Palette struct {
	Background string `toml:"background"`
	DisplayFg  string `toml:"display_fg"`
	ButtonBg   string `toml:"button_bg"`
	ButtonFg   string `toml:"button_fg"`
	OperatorBg string `toml:"operator_bg"`
	OperatorFg string `toml:"operator_fg"`
	EqualsBg   string `toml:"equals_bg"`
	EqualsFg   string `toml:"equals_fg"`
	ClearBg    string `toml:"clear_bg"`
}

// Config is the top-level settings file.
type Config struct {
	Window  Window  `toml:"window"`
	Palette Palette `toml:"palette"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "Aesthetic Calculator",
			Width:     320,
			Height:    480,
			FixedSize: true,
		},
		Palette: Palette{
			Background: "#f5f5f5",
			DisplayFg:  "#000000",
			ButtonBg:   "#ffffff",
			ButtonFg:   "#000000",
			OperatorBg: "#f59e0b",
			OperatorFg: "#ffffff",
			EqualsBg:   "#f59e0b",
			EqualsFg:   "#ffffff",
			ClearBg:    "#d4d4d4",
		},
	}
}

var validHex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks the window geometry and every palette entry.
func (c *Config) Validate() error {
	if c.Window.Title == "" {
		return fmt.Errorf("window title is required")
	}
	if c.Window.Width < 200 || c.Window.Width > 4096 {
		return fmt.Errorf("window width must be between 200 and 4096, got %d", c.Window.Width)
	}
	if c.Window.Height < 300 || c.Window.Height > 4096 {
		return fmt.Errorf("window height must be between 300 and 4096, got %d", c.Window.Height)
	}
	for name, v := range c.Palette.entries() {
		if !validHex.MatchString(v) {
			return fmt.Errorf("palette %s must be #rrggbb, got %q", name, v)
		}
	}
	return nil
}

func (p *Palette) entries() map[string]string {
	return map[string]string{
		"background":  p.Background,
		"display_fg":  p.DisplayFg,
		"button_bg":   p.ButtonBg,
		"button_fg":   p.ButtonFg,
		"operator_bg": p.OperatorBg,
		"operator_fg": p.OperatorFg,
		"equals_bg":   p.EqualsBg,
		"equals_fg":   p.EqualsFg,
		"clear_bg":    p.ClearBg,
	}
}

// DefaultPath returns <UserConfigDir>/calc-tool/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "calc-tool", "config.toml"), nil
}

// Load reads the settings file at path. A missing file yields the defaults
// and nothing is written. On any other error the defaults are returned with
// the error.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
