package playback

import (
	"log/slog"
	"math/rand/v2"

	"github.com/llehouerou/spindle/internal/artwork"
	"github.com/llehouerou/spindle/internal/playlist"
	"github.com/llehouerou/spindle/internal/source"
	"github.com/llehouerou/spindle/internal/state"
)

// DefaultMaxTracks is the playlist capacity when none is configured.
const DefaultMaxTracks = 20

// ArtworkResolver produces a track's embedded artwork.
type ArtworkResolver interface {
	Resolve(src source.Source) (*artwork.Image, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithStore mirrors the playlist and its modes into s.
func WithStore(s state.Store) Option {
	return func(c *Controller) { c.store = s }
}

// WithArtwork resolves artwork for tracks as they become current.
func WithArtwork(r ArtworkResolver) Option {
	return func(c *Controller) { c.art = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMaxTracks sets the playlist capacity. Values below 1 are ignored.
func WithMaxTracks(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxTracks = n
		}
	}
}

func WithRepeatCycle(cycle playlist.RepeatCycle) Option {
	return func(c *Controller) { c.cycle = cycle }
}

// WithRand seeds shuffling, for reproducible orders in tests.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}
