//go:build linux

// Package mpris exposes the playlist controller on the session bus so
// desktop media keys and widgets can drive it.
package mpris

import (
	"log/slog"

	"github.com/quarckster/go-mpris-server/pkg/server"

	"github.com/llehouerou/spindle/internal/playback"
)

// Adapter serves the MPRIS interfaces for a controller.
type Adapter struct {
	server *server.Server
}

// New registers the controller on the session bus.
// The server runs until Close.
func New(service playback.Service, covers *CoverCache, log *slog.Logger) (*Adapter, error) {
	player := &playerAdapter{service: service, covers: covers, log: log}
	a := &Adapter{
		server: server.NewServer("spindle", &rootAdapter{}, player),
	}

	go func() {
		if err := a.server.Listen(); err != nil {
			log.Warn("mpris server stopped", "error", err)
		}
	}()

	return a, nil
}

// Close releases the bus name.
func (a *Adapter) Close() error {
	return a.server.Stop()
}
