//go:build !linux

// Package mpris is a no-op outside Linux.
package mpris

import (
	"log/slog"

	"github.com/llehouerou/spindle/internal/playback"
)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(playback.Service, *CoverCache, *slog.Logger) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
