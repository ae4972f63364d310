package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the tab strip's behavioral configuration.
type Config struct {
	Vertical      bool
	Align         string // left|center|right|justify
	Breakpoint    int    // cells; below this the strip forces justify
	Arrows        string // desktop|always|never
	OutsideArrows bool
	RightToLeft   bool
	Dense         bool
	Shrink        bool
	Stretch       bool

	ActiveColor    string
	ActiveBgColor  string
	IndicatorColor string
}

const (
	defaultConfigPath = "~/.config/quasar/config.toml"
	defaultAlign      = "left"
	defaultArrows     = "desktop"
	defaultBreakpoint = 60
)

var alignValues = map[string]struct{}{
	"left": {}, "center": {}, "right": {}, "justify": {},
}

var arrowValues = map[string]struct{}{
	"desktop": {}, "always": {}, "never": {},
}

// Load locates and parses the config, falling back to defaults when the
// file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Align:      defaultAlign,
		Arrows:     defaultArrows,
		Breakpoint: defaultBreakpoint,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Vertical       bool   `toml:"vertical"`
		Align          string `toml:"align"`
		Breakpoint     int    `toml:"breakpoint"`
		Arrows         string `toml:"arrows"`
		OutsideArrows  bool   `toml:"outside_arrows"`
		RightToLeft    bool   `toml:"right_to_left"`
		Dense          bool   `toml:"dense"`
		Shrink         bool   `toml:"shrink"`
		Stretch        bool   `toml:"stretch"`
		ActiveColor    string `toml:"active_color"`
		ActiveBgColor  string `toml:"active_bg_color"`
		IndicatorColor string `toml:"indicator_color"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Vertical = raw.Vertical
	cfg.OutsideArrows = raw.OutsideArrows
	cfg.RightToLeft = raw.RightToLeft
	cfg.Dense = raw.Dense
	cfg.Shrink = raw.Shrink
	cfg.Stretch = raw.Stretch
	cfg.ActiveColor = strings.TrimSpace(raw.ActiveColor)
	cfg.ActiveBgColor = strings.TrimSpace(raw.ActiveBgColor)
	cfg.IndicatorColor = strings.TrimSpace(raw.IndicatorColor)

	if align := strings.TrimSpace(strings.ToLower(raw.Align)); align != "" {
		if _, ok := alignValues[align]; !ok {
			return Config{}, fmt.Errorf("invalid align %q", raw.Align)
		}
		cfg.Align = align
	}
	if arrows := strings.TrimSpace(strings.ToLower(raw.Arrows)); arrows != "" {
		if _, ok := arrowValues[arrows]; !ok {
			return Config{}, fmt.Errorf("invalid arrows %q", raw.Arrows)
		}
		cfg.Arrows = arrows
	}
	if raw.Breakpoint > 0 {
		cfg.Breakpoint = raw.Breakpoint
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
