package playback

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is matched by *CapacityError.
	ErrCapacityExceeded = errors.New("playlist capacity exceeded")
	// ErrEmptyPlaylist is returned by play/pause on an empty playlist.
	ErrEmptyPlaylist = errors.New("playlist is empty")
	// ErrClosed is returned by operations on a closed controller.
	ErrClosed = errors.New("controller closed")
)

// CapacityError reports a rejected batch. No track of the batch was added.
type CapacityError struct {
	Current int
	Adding  int
	Max     int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("playlist capacity exceeded: %d tracks + %d new > %d",
		e.Current, e.Adding, e.Max)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
