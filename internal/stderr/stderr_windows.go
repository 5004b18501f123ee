//go:build windows

// Package stderr provides a no-op implementation for Windows.
// Windows audio output does not write to fd 2 behind Go's back.
package stderr

import "os"

// Capture is a no-op on Windows.
type Capture struct{}

// Start is a no-op on Windows.
func Start(func(line string)) (*Capture, error) {
	return &Capture{}, nil
}

// WriteOriginal writes to stderr.
func (*Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func (*Capture) Stop() {}
