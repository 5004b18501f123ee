package playback

import (
	"github.com/llehouerou/spindle/internal/artwork"
	"github.com/llehouerou/spindle/internal/playlist"
)

// Snapshot is everything a view needs to render the controller.
type Snapshot struct {
	Tracks     []Track // play order
	Index      int     // selection, playlist.NoSelection if none
	State      State
	RepeatMode playlist.RepeatMode
	Shuffle    bool
	MaxTracks  int

	// ControlsEnabled is false while the playlist is empty.
	ControlsEnabled bool
	// Title is the selected track's display title, empty if none.
	Title   string
	Artwork *artwork.Image
}

// Snapshot returns a copy of the controller state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Tracks:          tracksFrom(c.queue.Tracks()),
		Index:           c.queue.CurrentIndex(),
		State:           c.state,
		RepeatMode:      c.queue.RepeatMode(),
		Shuffle:         c.queue.Shuffle(),
		MaxTracks:       c.maxTracks,
		ControlsEnabled: !c.queue.IsEmpty(),
	}
	if cur := c.queue.Current(); cur != nil {
		snap.Title = cur.Display()
		snap.Artwork = cur.Artwork
	}
	return snap
}
