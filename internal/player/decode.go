package player

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep/v2"
	beepmp3 "github.com/gopxl/beep/v2/mp3"
	gomp3 "github.com/llehouerou/go-mp3"
)

// decodeMP3 decodes rc with go-mp3, falling back to beep's decoder for
// streams go-mp3 rejects. The returned streamer owns rc.
func decodeMP3(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	s, format, err := newMP3Stream(rc)
	if err == nil {
		return s, format, nil
	}

	if _, seekErr := rc.Seek(0, io.SeekStart); seekErr != nil {
		rc.Close()
		return nil, beep.Format{}, fmt.Errorf("mp3: %w", err)
	}
	streamer, format, fallbackErr := beepmp3.Decode(rc)
	if fallbackErr != nil {
		rc.Close()
		return nil, beep.Format{}, fmt.Errorf("mp3: %w", errors.Join(err, fallbackErr))
	}
	return streamer, format, nil
}

// mp3Stream adapts a go-mp3 decoder to beep.StreamSeekCloser.
// go-mp3 emits interleaved 16-bit little-endian stereo PCM.
type mp3Stream struct {
	dec    *gomp3.Decoder
	closer io.Closer
	err    error
	buf    []byte
}

const bytesPerFrame = 4 // two channels, 16 bits each

func newMP3Stream(rc io.ReadSeekCloser) (*mp3Stream, beep.Format, error) {
	dec, err := gomp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if dec.SampleRate() == 0 {
		return nil, beep.Format{}, errors.New("invalid sample rate")
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(dec.SampleRate()),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Stream{dec: dec, closer: rc, buf: make([]byte, 8192)}, format, nil
}

func (s *mp3Stream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}
	need := len(samples) * bytesPerFrame
	if len(s.buf) < need {
		s.buf = make([]byte, need)
	}

	read, err := io.ReadFull(s.dec, s.buf[:need])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}

	n := read / bytesPerFrame
	for i := range n {
		off := i * bytesPerFrame
		left := int16(binary.LittleEndian.Uint16(s.buf[off:]))    //nolint:gosec // PCM sample
		right := int16(binary.LittleEndian.Uint16(s.buf[off+2:])) //nolint:gosec // PCM sample
		samples[i][0] = float64(left) / 32768
		samples[i][1] = float64(right) / 32768
	}
	return n, n > 0
}

func (s *mp3Stream) Err() error { return s.err }

func (s *mp3Stream) Len() int {
	if c := s.dec.SampleCount(); c > 0 {
		return int(c)
	}
	return 0
}

func (s *mp3Stream) Position() int { return int(s.dec.SamplePosition()) }

func (s *mp3Stream) Seek(p int) error {
	p = max(0, min(p, s.Len()))
	if err := s.dec.SeekToSample(int64(p)); err != nil {
		return err
	}
	s.err = nil
	return nil
}

func (s *mp3Stream) Close() error { return s.closer.Close() }
