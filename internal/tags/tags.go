// Package tags reads ID3 metadata and embedded pictures from MP3 data.
package tags

import (
	"io"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
)

// Info holds the descriptive tags of a track.
type Info struct {
	Title  string
	Artist string
	Album  string
}

// Display returns "Artist - Title", the title alone, or fallback when no
// title is tagged.
func (i Info) Display(fallback string) string {
	switch {
	case i.Title == "":
		return fallback
	case i.Artist == "":
		return i.Title
	default:
		return i.Artist + " - " + i.Title
	}
}

// Read reads descriptive tags.
// dhowden/tag is tried first; some UTF-16 ID3 tags only parse with id3v2.
func Read(r io.ReadSeeker) (*Info, error) {
	m, err := tag.ReadFrom(r)
	if err == nil {
		return &Info{Title: m.Title(), Artist: m.Artist(), Album: m.Album()}, nil
	}

	if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil {
		return nil, err
	}
	id3tag, id3Err := id3v2.ParseReader(r, id3v2.Options{Parse: true})
	if id3Err != nil {
		return nil, err
	}
	return &Info{
		Title:  id3tag.Title(),
		Artist: id3tag.Artist(),
		Album:  id3tag.Album(),
	}, nil
}
