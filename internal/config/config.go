package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ColorMode selects when ANSI colors are written.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether m is a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

type Config struct {
	Path     string     // CLASSKIT_CONFIG (default ~/.config/classkit/config.toml)
	LogLevel slog.Level // CLASSKIT_LOG_LEVEL or log_level (default "warn")
	Color    ColorMode  // CLASSKIT_COLOR or color (default "auto")
}

// fileConfig mirrors the TOML file. Empty fields fall through to defaults.
type fileConfig struct {
	LogLevel string `toml:"log_level"`
	Color    string `toml:"color"`
}

// Load reads the optional TOML file and then applies environment overrides.
// A missing file is not an error.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	fc, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	levelStr, levelSrc := setting("CLASSKIT_LOG_LEVEL", path, "log_level", fc.LogLevel)
	if levelStr == "" {
		levelStr = "warn"
	}
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", levelSrc, err)
	}

	colorStr, colorSrc := setting("CLASSKIT_COLOR", path, "color", fc.Color)
	color := ColorMode(strings.ToLower(colorStr))
	if color == "" {
		color = ColorAuto
	}
	if !color.IsValid() {
		return nil, fmt.Errorf("%s: invalid mode %q (must be auto, always or never)", colorSrc, color)
	}

	return &Config{Path: path, LogLevel: level, Color: color}, nil
}

// ParseLevel converts a level name such as "debug" or "WARN" to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, err
	}
	return l, nil
}

func configPath() (string, error) {
	if p := os.Getenv("CLASSKIT_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config path: %w", err)
	}
	return filepath.Join(home, ".config", "classkit", "config.toml"), nil
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return fc, nil
}

// setting returns the env value for envKey if set, else the file value, along
// with a label naming where the value came from for error messages.
func setting(envKey, path, fileKey, fileVal string) (string, string) {
	if v := os.Getenv(envKey); v != "" {
		return v, envKey
	}
	return fileVal, fmt.Sprintf("config file %s: %s", path, fileKey)
}
