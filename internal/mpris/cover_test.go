package mpris

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/spindle/internal/artwork"
	"github.com/llehouerou/spindle/internal/playback"
)

func TestCoverCache_Path(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "covers")
	cache := NewCoverCache(dir)
	img := &artwork.Image{Data: []byte("png bytes"), MIMEType: "image/png"}

	path, err := cache.Path(img)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".png", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, img.Data, data)

	again, err := cache.Path(&artwork.Image{Data: []byte("png bytes"), MIMEType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, path, again, "same bytes share a file")

	other, err := cache.Path(&artwork.Image{Data: []byte("jpeg bytes"), MIMEType: "image/jpeg"})
	require.NoError(t, err)
	assert.NotEqual(t, path, other)
	assert.Equal(t, ".jpg", filepath.Ext(other))
}

func TestCoverCache_NoData(t *testing.T) {
	cache := NewCoverCache(t.TempDir())

	_, err := cache.Path(nil)
	assert.ErrorIs(t, err, artwork.ErrNoArtwork)

	_, err = cache.Path(&artwork.Image{})
	assert.ErrorIs(t, err, artwork.ErrNoArtwork)
}

func TestPlayerAdapter_EmbeddedArtURL(t *testing.T) {
	p, _ := newTestAdapter(t)
	img := &artwork.Image{Data: []byte("jpeg"), MIMEType: "image/jpeg"}

	url := p.artURL(playback.Track{ID: 1}, playback.Snapshot{Artwork: img})

	require.NotEmpty(t, url)
	assert.FileExists(t, url[len("file://"):])
}
