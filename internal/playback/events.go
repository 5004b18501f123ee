package playback

import (
	"github.com/llehouerou/spindle/internal/artwork"
	"github.com/llehouerou/spindle/internal/playlist"
)

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when a different track is loaded for playback.
//
// Emitted by SelectTrack, Next, Prev, TogglePlayPause and automatic
// advancement at the end of a track. A repeat-one replay reloads the
// same track and does not emit. Current is nil when the end of the
// playlist is reached with repeat off.
type TrackChange struct {
	Previous *Track
	Current  *Track
	Index    int
}

// QueueChange is emitted when the play order or the selection changes
// outside of track loads: ingestion, removal, clear, shuffle, hydration.
type QueueChange struct {
	Tracks []Track
	Index  int
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	RepeatMode playlist.RepeatMode
	Shuffle    bool
}

// ArtworkChange is emitted when a track's embedded artwork is resolved.
type ArtworkChange struct {
	TrackID int64
	Artwork *artwork.Image
}

// ErrorEvent is emitted when an operation fails.
type ErrorEvent struct {
	Operation string // e.g. "add", "play"
	Track     string // track name if applicable
	Err       error
}
