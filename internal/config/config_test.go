//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/llehouerou/spindle/internal/playlist"
)

// isolate points HOME and the working directory at fresh temp dirs so that
// no real config file is picked up. It returns the working directory.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd := t.TempDir()
	t.Chdir(wd)
	return wd
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("could not create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/.local/share/spindle/spindle.db",
			expected: filepath.Join(home, ".local", "share", "spindle", "spindle.db"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/spindle.log",
			expected: "/var/log/spindle.log",
		},
		{
			name:     "relative path unchanged",
			input:    "data/spindle.db",
			expected: "data/spindle.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "spindle", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MaxTracks != DefaultMaxTracks {
		t.Errorf("MaxTracks = %d, want %d", cfg.MaxTracks, DefaultMaxTracks)
	}
	if cfg.RepeatCycle != "off-all-one" {
		t.Errorf("RepeatCycle = %q, want off-all-one", cfg.RepeatCycle)
	}
	if !cfg.Persist {
		t.Error("Persist should default to true")
	}
	if cfg.DBPath != "" || cfg.LogFile != "" {
		t.Errorf("DBPath = %q, LogFile = %q, want empty", cfg.DBPath, cfg.LogFile)
	}
	if !cfg.Artwork.Enabled || cfg.Artwork.Size != DefaultArtworkSize {
		t.Errorf("Artwork = %+v, want enabled with size %d", cfg.Artwork, DefaultArtworkSize)
	}
	if !cfg.MPRIS || cfg.Notifications {
		t.Errorf("MPRIS = %v, Notifications = %v, want true, false", cfg.MPRIS, cfg.Notifications)
	}
}

func TestLoad_EmptyConfig(t *testing.T) {
	wd := isolate(t)
	writeConfig(t, filepath.Join(wd, "config.toml"), "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxTracks != DefaultMaxTracks {
		t.Errorf("MaxTracks = %d, want %d", cfg.MaxTracks, DefaultMaxTracks)
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	wd := isolate(t)
	writeConfig(t, filepath.Join(wd, "config.toml"), `
max_tracks = 30
repeat_cycle = "off-one-all"
persist = false
db_path = "~/music/spindle.db"
icons = "nerd"
log_level = "debug"
mpris = false
notifications = true

[artwork]
enabled = false
size = 64
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MaxTracks != 30 {
		t.Errorf("MaxTracks = %d, want 30", cfg.MaxTracks)
	}
	if cfg.Persist {
		t.Error("Persist = true, want false")
	}
	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "nerd")
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "music", "spindle.db"); cfg.DBPath != want {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, want)
	}
	if cfg.MPRIS || !cfg.Notifications {
		t.Errorf("MPRIS = %v, Notifications = %v, want false, true", cfg.MPRIS, cfg.Notifications)
	}
	if cfg.Artwork.Enabled || cfg.Artwork.Size != 64 {
		t.Errorf("Artwork = %+v, want disabled with size 64", cfg.Artwork)
	}

	cycle, err := cfg.Cycle()
	if err != nil {
		t.Fatalf("Cycle() error = %v", err)
	}
	if cycle.String() != playlist.CycleOffOneAll.String() {
		t.Errorf("Cycle() = %v, want off-one-all", cycle)
	}

	lvl, err := cfg.Level()
	if err != nil {
		t.Fatalf("Level() error = %v", err)
	}
	if lvl != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", lvl)
	}
}

func TestLoad_LastFileWins(t *testing.T) {
	wd := isolate(t)
	home, _ := os.UserHomeDir()
	writeConfig(t, filepath.Join(home, ".config", "spindle", "config.toml"), `
max_tracks = 10
icons = "unicode"
`)
	writeConfig(t, filepath.Join(wd, "config.toml"), "max_tracks = 15\n")
	extra := filepath.Join(t.TempDir(), "extra.toml")
	writeConfig(t, extra, "max_tracks = 25\n")

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.MaxTracks != 15 || cfg.Icons != "unicode" {
		t.Errorf("got max_tracks=%d icons=%q, want 15 and unicode", cfg.MaxTracks, cfg.Icons)
	}

	cfg, err = LoadFrom(extra)
	if err != nil {
		t.Fatalf("LoadFrom(extra) error = %v", err)
	}
	if cfg.MaxTracks != 25 || cfg.Icons != "unicode" {
		t.Errorf("got max_tracks=%d icons=%q, want 25 and unicode", cfg.MaxTracks, cfg.Icons)
	}
}

func TestLoadFrom_MissingExtra(t *testing.T) {
	isolate(t)

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFrom() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	wd := isolate(t)
	writeConfig(t, filepath.Join(wd, "config.toml"), "invalid = [[[")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for invalid TOML, got nil")
	}
	if !strings.Contains(err.Error(), "config.toml") {
		t.Errorf("error %q should name the file", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero max tracks", func(c *Config) { c.MaxTracks = 0 }, true},
		{"negative max tracks", func(c *Config) { c.MaxTracks = -3 }, true},
		{"unknown repeat cycle", func(c *Config) { c.RepeatCycle = "all-off" }, true},
		{"empty repeat cycle", func(c *Config) { c.RepeatCycle = "" }, false},
		{"unknown icons", func(c *Config) { c.Icons = "emoji" }, true},
		{"empty icons", func(c *Config) { c.Icons = "" }, false},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"warn log level", func(c *Config) { c.LogLevel = "warn" }, false},
		{"zero artwork size", func(c *Config) { c.Artwork.Size = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
