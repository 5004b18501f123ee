package source

import (
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MediaTypeMPEG is the declared type accepted for MP3 audio.
const MediaTypeMPEG = "audio/mpeg"

// Candidate is a file offered for ingestion, before any filtering.
type Candidate struct {
	Name      string // display name (base name of the file)
	MediaType string // declared MIME type, may be empty
	Source    Source
}

// IsMP3 reports whether the candidate is accepted audio: declared
// audio/mpeg, or a name ending in .mp3.
func (c Candidate) IsMP3() bool {
	mt := c.MediaType
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	if strings.EqualFold(strings.TrimSpace(mt), MediaTypeMPEG) {
		return true
	}
	return strings.EqualFold(filepath.Ext(c.Name), ".mp3")
}

// DetectMediaType returns the MIME type registered for the file extension.
func DetectMediaType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".mp3" {
		return MediaTypeMPEG
	}
	return mime.TypeByExtension(ext)
}

// FromPath builds a candidate for a single file.
func FromPath(path string) (Candidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Candidate{}, err
	}
	name := filepath.Base(path)
	return Candidate{
		Name:      name,
		MediaType: DetectMediaType(name),
		Source:    NewFile(path, info.Size()),
	}, nil
}

// Collect builds candidates for the given paths.
// Directories are walked recursively; their files are sorted by path.
// Unreadable entries inside a directory are skipped.
func Collect(paths ...string) ([]Candidate, error) {
	var out []Candidate
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			c, err := FromPath(p)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
			continue
		}

		var files []string
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil //nolint:nilerr // skip unreadable entries
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(files)
		for _, f := range files {
			c, err := FromPath(f)
			if err != nil {
				continue
			}
			out = append(out, c)
		}
	}
	return out, nil
}
