// internal/player/state.go
package player

// State represents the playback state machine.
//
//	┌──────────┐  load + play   ┌──────────┐
//	│  Stopped │ ──────────────▶│  Playing │
//	└──────────┘                └──────────┘
//	     ▲                         │    ▲
//	     │ stop / load       pause │    │ play
//	     │                         ▼    │
//	     │                      ┌──────────┐
//	     └──────────────────────│  Paused  │
//	                            └──────────┘
//
// Load always lands in Stopped with the new source ready. Play on a
// Stopped player with no source loaded is ignored, as are Pause while not
// Playing and Play while already Playing.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}
