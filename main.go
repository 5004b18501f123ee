package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/spindle/internal/artwork"
	"github.com/llehouerou/spindle/internal/config"
	"github.com/llehouerou/spindle/internal/errmsg"
	"github.com/llehouerou/spindle/internal/icons"
	"github.com/llehouerou/spindle/internal/logging"
	"github.com/llehouerou/spindle/internal/mpris"
	"github.com/llehouerou/spindle/internal/notify"
	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/player"
	"github.com/llehouerou/spindle/internal/source"
	"github.com/llehouerou/spindle/internal/state"
	"github.com/llehouerou/spindle/internal/stderr"
	"github.com/llehouerou/spindle/internal/ui"
)

// stderrBuffer bounds the captured lines waiting for the view.
const stderrBuffer = 32

type rootFlags struct {
	configFile  string
	noPersist   bool
	maxTracks   int
	repeatCycle string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "spindle [paths...]",
		Short: "Terminal MP3 playlist player",
		Long: `Play a small playlist of MP3 files from the terminal.

Paths may be files or directories; directories are walked recursively and
their files added in path order. Files that are not MP3 are skipped.

The playlist and repeat/shuffle modes are kept between runs unless
--no-persist is given.

Examples:
  spindle ~/music/album
  spindle --repeat-cycle off-one-all a.mp3 b.mp3
  spindle --no-persist --max-tracks 50 ~/music`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(flags.configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}
			return run(cfg, args)
		},
	}

	cmd.Flags().StringVar(&flags.configFile, "config", "", "extra TOML config file, applied last")
	cmd.Flags().BoolVar(&flags.noPersist, "no-persist", false, "do not restore or save the playlist")
	cmd.Flags().IntVar(&flags.maxTracks, "max-tracks", config.DefaultMaxTracks, "playlist capacity")
	cmd.Flags().StringVar(&flags.repeatCycle, "repeat-cycle", "", "repeat key order: off-all-one or off-one-all")

	return cmd
}

// apply overrides cfg with the flags set on the command line.
func (f *rootFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if f.noPersist {
		cfg.Persist = false
	}
	if cmd.Flags().Changed("max-tracks") {
		cfg.MaxTracks = f.maxTracks
	}
	if cmd.Flags().Changed("repeat-cycle") {
		cfg.RepeatCycle = f.repeatCycle
	}
	return cfg.Validate()
}

func run(cfg *config.Config, paths []string) error {
	icons.Init(cfg.Icons)

	logger, logCloser, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Collect before taking over the terminal so a bad path is reported
	// on the real stderr.
	candidates, err := source.Collect(paths...)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpPathRead, err))
	}

	lines := make(chan string, stderrBuffer)
	capture, err := stderr.Start(func(line string) {
		logger.Warn("stderr", "line", line)
		select {
		case lines <- line:
		default:
		}
	})
	if err != nil {
		logger.Warn("stderr capture unavailable", "error", err)
	}

	cycle, _ := cfg.Cycle() // validated
	opts := []playback.Option{
		playback.WithLogger(logger),
		playback.WithMaxTracks(cfg.MaxTracks),
		playback.WithRepeatCycle(cycle),
	}
	if cfg.Artwork.Enabled {
		opts = append(opts, playback.WithArtwork(artwork.NewResolver(cfg.Artwork.Size)))
	}

	var store *state.Manager
	if cfg.Persist {
		store, err = openStore(cfg, logger)
		if err != nil {
			stopCapture(capture)
			return errors.New(errmsg.Format(errmsg.OpInitialize, err))
		}
		opts = append(opts, playback.WithStore(store))
	}

	ctrl := playback.New(player.New(), opts...)
	if err := ctrl.Hydrate(); err != nil {
		logger.Error("restore playlist", "error", err)
	}

	stopDesktop := startDesktop(cfg, ctrl, logger)

	// Subscribe before adding so start-up errors reach the status line.
	model := ui.New(ctrl, ui.WithLogger(logger), ui.WithStderr(lines))
	if len(candidates) > 0 {
		if _, err := ctrl.AddTracks(candidates); err != nil {
			logger.Warn("add command-line paths", "error", err)
		}
	}

	_, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()

	stopDesktop()
	if err := ctrl.Close(); err != nil {
		logger.Error("close controller", "error", err)
	}
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Error("close store", "error", err)
		}
	}
	stopCapture(capture)

	return runErr
}

func openLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, _ := cfg.Level() // validated
	path := cfg.LogFile
	if path == "" {
		var err error
		if path, err = logging.DefaultPath(); err != nil {
			return nil, nil, fmt.Errorf("log path: %w", err)
		}
	}
	logger, closer, err := logging.Open(path, level)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return logger, closer, nil
}

func openStore(cfg *config.Config, logger *slog.Logger) (*state.Manager, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		if path, err = state.DefaultPath(); err != nil {
			return nil, err
		}
	}
	store, err := state.Open(path)
	if err != nil {
		return nil, err
	}
	store.OnSaveError(func(err error) {
		logger.Warn("save modes", "error", err)
	})
	return store, nil
}

// startDesktop registers the session bus integrations and returns the
// function releasing them. The notification watcher ends by itself when
// the controller closes.
func startDesktop(cfg *config.Config, ctrl *playback.Controller, logger *slog.Logger) func() {
	stop := func() {}
	if cfg.MPRIS {
		adapter, err := mpris.New(ctrl, mpris.NewCoverCache(mpris.DefaultCoverDir()), logger)
		if err != nil {
			logger.Warn("mpris unavailable", "error", err)
		} else {
			stop = func() {
				if err := adapter.Close(); err != nil {
					logger.Warn("close mpris", "error", err)
				}
			}
		}
	}
	if cfg.Notifications {
		n, err := notify.New()
		if err != nil {
			logger.Warn("notifications unavailable", "error", err)
			return stop
		}
		go notify.Watch(ctrl.Subscribe(), n, logger)
	}
	return stop
}

func stopCapture(c *stderr.Capture) {
	if c != nil {
		c.Stop()
	}
}
