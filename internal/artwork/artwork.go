// Package artwork resolves embedded cover images for tracks.
package artwork

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	"github.com/nfnt/resize"

	"github.com/llehouerou/spindle/internal/source"
	"github.com/llehouerou/spindle/internal/tags"
)

// DefaultSize is the thumbnail bounding box edge in pixels.
const DefaultSize = 128

// ErrNoArtwork is returned when the source carries no embedded picture.
var ErrNoArtwork = errors.New("no embedded artwork")

// Image is a resolved cover picture.
type Image struct {
	Data     []byte // original encoded picture
	MIMEType string
	Width    int // original dimensions
	Height   int
	Thumb    image.Image // scaled to fit the resolver's bounding box
}

// Resolver extracts and thumbnails embedded artwork.
type Resolver struct {
	size uint
}

// NewResolver creates a resolver producing thumbnails within size x size.
func NewResolver(size int) *Resolver {
	if size <= 0 {
		size = DefaultSize
	}
	return &Resolver{size: uint(size)} //nolint:gosec // size checked positive
}

// Resolve reads the embedded picture of src.
// Returns ErrNoArtwork when none is present.
func (r *Resolver) Resolve(src source.Source) (*Image, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer rc.Close()

	data, mimeType, err := tags.ExtractCoverArt(rc)
	if err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}
	if data == nil {
		return nil, ErrNoArtwork
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode picture: %w", err)
	}

	bounds := img.Bounds()
	return &Image{
		Data:     data,
		MIMEType: mimeType,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Thumb:    resize.Thumbnail(r.size, r.size, img, resize.Lanczos3),
	}, nil
}
