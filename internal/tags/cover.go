package tags

import (
	"io"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
)

const (
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
)

// ExtractCoverArt reads the embedded picture of an MP3 stream.
// Returns nil data and no error when the stream carries no picture.
func ExtractCoverArt(r io.ReadSeeker) (data []byte, mimeType string, err error) {
	m, err := tag.ReadFrom(r)
	if err == nil {
		if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
			return pic.Data, normalizeMIME(pic.MIMEType, pic.Ext), nil
		}
	}

	// dhowden/tag rejects some tags id3v2 accepts; retry there before giving up.
	if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil {
		return nil, "", seekErr
	}
	data, mimeType, id3Err := extractAPIC(r)
	if id3Err != nil {
		if err != nil {
			return nil, "", err
		}
		return nil, "", nil
	}
	return data, mimeType, nil
}

// extractAPIC returns the front cover APIC frame, or the first one if no
// frame is typed as front cover.
func extractAPIC(r io.Reader) ([]byte, string, error) {
	id3tag, err := id3v2.ParseReader(r, id3v2.Options{
		Parse:       true,
		ParseFrames: []string{"Attached picture"},
	})
	if err != nil {
		return nil, "", err
	}

	var chosen *id3v2.PictureFrame
	for _, f := range id3tag.GetFrames(id3tag.CommonID("Attached picture")) {
		pic, ok := f.(id3v2.PictureFrame)
		if !ok || len(pic.Picture) == 0 {
			continue
		}
		if chosen == nil || pic.PictureType == id3v2.PTFrontCover {
			chosen = &pic
		}
		if pic.PictureType == id3v2.PTFrontCover {
			break
		}
	}
	if chosen == nil {
		return nil, "", nil
	}
	return chosen.Picture, normalizeMIME(chosen.MimeType, ""), nil
}

func normalizeMIME(mimeType, ext string) string {
	switch mimeType {
	case "image/jpg", "JPG", "jpg":
		return mimeJPEG
	case "PNG", "png":
		return mimePNG
	case "":
		switch ext {
		case "jpg", "jpeg":
			return mimeJPEG
		case "png":
			return mimePNG
		}
		return "application/octet-stream"
	}
	return mimeType
}
