package playback

import (
	"github.com/llehouerou/spindle/internal/playlist"
	"github.com/llehouerou/spindle/internal/source"
)

// Service defines the playlist controller contract.
type Service interface {
	// Playlist contents
	AddTracks(candidates []source.Candidate) (int, error)
	RemoveTrack(index int) error
	ClearAll() error
	Hydrate() error

	// Selection and transport
	SelectTrack(index int) bool
	Next()
	Prev()
	TogglePlayPause() error
	Stop()

	// Player notifications
	OnTrackEnded()
	OnPlayStateChanged(playing bool)

	// Mode control
	RepeatMode() playlist.RepeatMode
	SetRepeatMode(mode playlist.RepeatMode)
	CycleRepeatMode() playlist.RepeatMode
	Shuffle() bool
	SetShuffle(enabled bool)
	ToggleShuffle() bool

	// State queries
	Snapshot() Snapshot
	Current() *Track
	State() State
	Len() int

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
