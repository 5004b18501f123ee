package mpris

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/llehouerou/spindle/internal/artwork"
)

// coverNames lists folder cover file names in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// FindAlbumArt looks for a cover file in the track's directory.
// Returns "" if none exists.
func FindAlbumArt(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// CoverCache writes embedded covers to disk so MPRIS clients can load
// them by URL. Files are named after a hash of the picture bytes.
type CoverCache struct {
	dir string
}

// NewCoverCache stores covers in dir.
func NewCoverCache(dir string) *CoverCache {
	return &CoverCache{dir: dir}
}

// DefaultCoverDir returns the XDG cache directory for covers.
func DefaultCoverDir() string {
	return filepath.Join(xdg.CacheHome, "spindle", "covers")
}

// Path returns the file holding img, writing it on first use.
func (c *CoverCache) Path(img *artwork.Image) (string, error) {
	if img == nil || len(img.Data) == 0 {
		return "", artwork.ErrNoArtwork
	}

	h := fnv.New64a()
	h.Write(img.Data)
	path := filepath.Join(c.dir, fmt.Sprintf("%016x%s", h.Sum64(), extension(img.MIMEType)))

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, img.Data, 0o600); err != nil {
		return "", err
	}
	return path, os.Rename(tmp, path)
}

func extension(mimeType string) string {
	if mimeType == "image/png" {
		return ".png"
	}
	return ".jpg"
}
