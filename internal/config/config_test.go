package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearAllEnv isolates Load from the developer's environment and home directory.
func clearAllEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CLASSKIT_CONFIG", "CLASSKIT_LOG_LEVEL", "CLASSKIT_COLOR"} {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearAllEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelWarn)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", "classkit", "config.toml"); cfg.Path != want {
		t.Errorf("Path = %q, want %q", cfg.Path, want)
	}
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name      string
		file      string
		env       map[string]string
		wantErr   string
		wantLevel slog.Level
		wantColor ColorMode
	}{
		{
			name:      "FileOnly",
			file:      "log_level = \"debug\"\ncolor = \"never\"\n",
			wantLevel: slog.LevelDebug,
			wantColor: ColorNever,
		},
		{
			name:      "EnvOverridesFile",
			file:      "log_level = \"debug\"\ncolor = \"never\"\n",
			env:       map[string]string{"CLASSKIT_LOG_LEVEL": "error", "CLASSKIT_COLOR": "always"},
			wantLevel: slog.LevelError,
			wantColor: ColorAlways,
		},
		{
			name:      "EnvOnly",
			env:       map[string]string{"CLASSKIT_LOG_LEVEL": "INFO", "CLASSKIT_COLOR": "Never"},
			wantLevel: slog.LevelInfo,
			wantColor: ColorNever,
		},
		{
			name:    "InvalidLevel",
			env:     map[string]string{"CLASSKIT_LOG_LEVEL": "loud"},
			wantErr: "CLASSKIT_LOG_LEVEL",
		},
		{
			name:    "InvalidColor",
			env:     map[string]string{"CLASSKIT_COLOR": "rainbow"},
			wantErr: "CLASSKIT_COLOR",
		},
		{
			name:    "InvalidLevelInFile",
			file:    "log_level = \"loud\"\n",
			wantErr: "config.toml: log_level:",
		},
		{
			name:    "InvalidColorInFile",
			file:    "color = \"rainbow\"\n",
			wantErr: "config.toml: color: invalid mode",
		},
		{
			name:    "UnknownKey",
			file:    "log_level = \"info\"\nroster = \"students.csv\"\n",
			wantErr: "unknown keys: roster",
		},
		{
			name:    "MalformedFile",
			file:    "log_level = \n",
			wantErr: "config file",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clearAllEnv(t)
			if tc.file != "" {
				t.Setenv("CLASSKIT_CONFIG", writeConfig(t, tc.file))
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tc.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Errorf("error = %q, want it to contain %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.LogLevel != tc.wantLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tc.wantLevel)
			}
			if cfg.Color != tc.wantColor {
				t.Errorf("Color = %q, want %q", cfg.Color, tc.wantColor)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("CLASSKIT_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelWarn)
	}
}

func TestColorMode_IsValid(t *testing.T) {
	for _, tc := range []struct {
		mode ColorMode
		want bool
	}{
		{ColorAuto, true},
		{ColorAlways, true},
		{ColorNever, true},
		{ColorMode(""), false},
		{ColorMode("sometimes"), false},
	} {
		if got := tc.mode.IsValid(); got != tc.want {
			t.Errorf("ColorMode(%q).IsValid() = %v, want %v", tc.mode, got, tc.want)
		}
	}
}

func TestSetting(t *testing.T) {
	for _, tc := range []struct {
		name    string
		envVal  string
		fileVal string
		want    string
		wantSrc string
	}{
		{"EnvWins", "debug", "info", "debug", "TEST_SETTING"},
		{"FileFallback", "", "info", "info", "config file /etc/c.toml: log_level"},
		{"NeitherSet", "", "", "", "config file /etc/c.toml: log_level"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_SETTING", tc.envVal)
			got, src := setting("TEST_SETTING", "/etc/c.toml", "log_level", tc.fileVal)
			if got != tc.want {
				t.Errorf("setting value = %q, want %q", got, tc.want)
			}
			if src != tc.wantSrc {
				t.Errorf("setting source = %q, want %q", src, tc.wantSrc)
			}
		})
	}
}
