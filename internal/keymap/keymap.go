package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "playlist"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionStop, []string{"x"}, "Stop", "playback"},
	{ActionNextTrack, []string{"n"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p"}, "Previous track", "playback"},
	{ActionCycleRepeat, []string{"r"}, "Cycle repeat mode", "playback"},
	{ActionToggleShuffle, []string{"s"}, "Toggle shuffle", "playback"},

	// Playlist
	{ActionMoveDown, []string{"j", "down"}, "Move down", "playlist"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "playlist"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "playlist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "playlist"},
	{ActionSelect, []string{"enter"}, "Play/pause track", "playlist"},
	{ActionAdd, []string{"a"}, "Add files", "playlist"},
	{ActionDelete, []string{"d", "delete"}, "Remove track", "playlist"},
	{ActionClear, []string{"C"}, "Clear playlist", "playlist"},
}

// Contexts lists binding contexts in help display order.
var Contexts = []string{"playback", "playlist", "global"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyBinding converts b for use with the bubbles help component.
// The literal space key is shown as "space".
func (b Binding) KeyBinding() key.Binding {
	help := b.Keys[0]
	if help == " " && len(b.Keys) > 1 {
		help = b.Keys[1]
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(help, b.Description),
	)
}
