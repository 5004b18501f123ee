// internal/player/interface.go
package player

import "github.com/llehouerou/spindle/internal/source"

// Interface defines the player contract for dependency injection and testing.
//
// Callbacks registered with OnFinished and OnStateChange are never invoked
// from inside a call to one of the player's own methods, so callers may hold
// their own locks while commanding the player.
type Interface interface {
	// Load stops any current playback and prepares src. The player is
	// Stopped afterwards.
	Load(src source.Source) error
	Play()
	Pause()
	Stop()
	State() State
	// OnFinished registers fn to run when a loaded source plays to its end.
	// fn receives that source; by the time it runs another Load or Stop may
	// already have replaced it.
	OnFinished(fn func(src source.Source))
	// OnStateChange registers fn to run when the state changes for reasons
	// other than a method call (end of stream, device errors).
	OnStateChange(fn func(State))
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
