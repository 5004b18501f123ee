// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playlist operations
	OpTrackAdd        Op = "add tracks"
	OpTrackRemove     Op = "remove track"
	OpPlaylistClear   Op = "clear playlist"
	OpPlaylistRestore Op = "restore playlist"

	// Playback operations
	OpPlaybackStart Op = "start playback"

	// File operations
	OpPathRead Op = "read path"

	// Initialization
	OpInitialize Op = "initialize application"
)

// ForOperation maps a playback error event's operation name to an Op.
// Track loads ("play", "next", "select", ...) map to OpPlaybackStart.
func ForOperation(name string) Op {
	switch name {
	case "add":
		return OpTrackAdd
	case "remove":
		return OpTrackRemove
	case "clear":
		return OpPlaylistClear
	default:
		return OpPlaybackStart
	}
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
