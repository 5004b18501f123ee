package playlist

import (
	"github.com/llehouerou/spindle/internal/artwork"
	"github.com/llehouerou/spindle/internal/source"
)

// Track is a single entry of the playlist.
// Records are shared by pointer between the base and play orders.
type Track struct {
	ID        int64
	Name      string // file base name
	Title     string // from tags; empty when untagged
	MediaType string
	Source    source.Source
	Artwork   *artwork.Image // nil until resolved
}

// Display returns the tag title, or the name for untagged tracks.
func (t *Track) Display() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

// Playlist holds tracks in insertion order, unique by ID.
type Playlist struct {
	tracks []*Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]*Track, 0),
	}
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...*Track) {
	p.tracks = append(p.tracks, tracks...)
}

// RemoveID removes the track with the given ID.
// Returns false if no such track exists.
func (p *Playlist) RemoveID(id int64) bool {
	i := p.IndexOf(id)
	if i < 0 {
		return false
	}
	p.tracks = append(p.tracks[:i], p.tracks[i+1:]...)
	return true
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	clear(p.tracks)
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of the track slice.
func (p *Playlist) Tracks() []*Track {
	result := make([]*Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return p.tracks[index]
}

// IndexOf returns the position of the track with the given ID, or -1.
func (p *Playlist) IndexOf(id int64) int {
	for i, t := range p.tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}
