package playback

import "github.com/llehouerou/spindle/internal/playlist"

// Track is a copy of a playlist entry's display data.
// It does not reference the playlist.Track it was taken from.
type Track struct {
	ID         int64
	Name       string
	Title      string
	MediaType  string
	Location   string
	Size       int64
	HasArtwork bool
}

// Display returns the title, or the name for untagged tracks.
func (t Track) Display() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

func trackFrom(t *playlist.Track) Track {
	v := Track{
		ID:         t.ID,
		Name:       t.Name,
		Title:      t.Title,
		MediaType:  t.MediaType,
		Size:       -1,
		HasArtwork: t.Artwork != nil,
	}
	if t.Source != nil {
		v.Location = t.Source.Location()
		v.Size = t.Source.Size()
	}
	return v
}

func tracksFrom(ts []*playlist.Track) []Track {
	result := make([]Track, len(ts))
	for i, t := range ts {
		result[i] = trackFrom(t)
	}
	return result
}
