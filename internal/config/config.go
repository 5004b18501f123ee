package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/spindle/internal/icons"
	"github.com/llehouerou/spindle/internal/playlist"
)

const (
	DefaultMaxTracks   = 20
	DefaultArtworkSize = 128
)

type Config struct {
	MaxTracks   int    `koanf:"max_tracks"`   // playlist capacity
	RepeatCycle string `koanf:"repeat_cycle"` // "off-all-one" or "off-one-all"
	Persist     bool   `koanf:"persist"`      // mirror the playlist into SQLite
	DBPath      string `koanf:"db_path"`      // empty means the XDG data dir
	Icons       string `koanf:"icons"`        // "nerd", "unicode", or "none"
	LogLevel    string `koanf:"log_level"`    // debug, info, warn, error
	LogFile     string `koanf:"log_file"`     // empty means the XDG state dir

	MPRIS         bool `koanf:"mpris"`         // register on the session bus
	Notifications bool `koanf:"notifications"` // desktop notification per track

	Artwork ArtworkConfig `koanf:"artwork"`
}

// ArtworkConfig controls embedded cover art lookup.
type ArtworkConfig struct {
	Enabled bool `koanf:"enabled"`
	Size    int  `koanf:"size"` // thumbnail bounding box in pixels
}

// Default returns the configuration used when no file sets a key.
func Default() *Config {
	return &Config{
		MaxTracks:   DefaultMaxTracks,
		RepeatCycle: playlist.CycleOffAllOne.String(),
		Persist:     true,
		Icons:       "none",
		LogLevel:    "info",
		MPRIS:       true,
		Artwork: ArtworkConfig{
			Enabled: true,
			Size:    DefaultArtworkSize,
		},
	}
}

func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads the standard config files, then extra if it is not empty.
// Unlike the standard files, extra must exist.
func LoadFrom(extra string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	if extra != "" {
		extra = expandPath(extra)
		if err := k.Load(file.Provider(extra), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", extra, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.LogFile = expandPath(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/spindle/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "spindle", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.MaxTracks < 1 {
		return fmt.Errorf("max_tracks must be positive, got %d", c.MaxTracks)
	}
	if _, err := c.Cycle(); err != nil {
		return err
	}
	if !icons.Valid(c.Icons) {
		return fmt.Errorf("icons must be nerd, unicode or none, got %q", c.Icons)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Artwork.Size < 1 {
		return fmt.Errorf("artwork.size must be positive, got %d", c.Artwork.Size)
	}
	return nil
}

// Cycle returns the parsed repeat_cycle.
func (c *Config) Cycle() (playlist.RepeatCycle, error) {
	return playlist.ParseRepeatCycle(c.RepeatCycle)
}

// Level returns the parsed log_level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
