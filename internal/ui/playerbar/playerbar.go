// Package playerbar renders the now-playing bar.
package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spindle/internal/icons"
	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/playlist"
	"github.com/llehouerou/spindle/internal/ui/render"
	"github.com/llehouerou/spindle/internal/ui/styles"
)

// Height is the rendered height: top border, content, bottom border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Status     playback.State
	Title      string
	Position   int // 1-based, 0 when nothing is selected
	Total      int
	Max        int
	RepeatMode playlist.RepeatMode
	Shuffle    bool
	// ArtworkSize is "WxH" of the resolved cover, empty if none.
	ArtworkSize string
	Enabled     bool
}

// NewState builds the bar state from a controller snapshot.
func NewState(snap playback.Snapshot) State {
	s := State{
		Status:     snap.State,
		Title:      snap.Title,
		Total:      len(snap.Tracks),
		Max:        snap.MaxTracks,
		RepeatMode: snap.RepeatMode,
		Shuffle:    snap.Shuffle,
		Enabled:    snap.ControlsEnabled,
	}
	if snap.Index != playlist.NoSelection {
		s.Position = snap.Index + 1
	}
	if snap.Artwork != nil {
		s.ArtworkSize = fmt.Sprintf("%dx%d", snap.Artwork.Width, snap.Artwork.Height)
	}
	return s
}

// Render returns the bordered bar for the given outer width.
func Render(s State, width int) string {
	st := styles.T().S()
	inner := max(width-2, 0)

	right := renderModes(s)
	rightWidth := lipgloss.Width(right)
	leftWidth := max(inner-rightWidth-1, 0)

	left := statusIcon(s.Status) + " "
	title := s.Title
	if title == "" {
		title = "No track selected"
	}
	left = render.TruncateAndPad(left+title, leftWidth)

	var content string
	switch {
	case !s.Enabled:
		content = st.Disabled.Render(left)
	case s.Status == playback.StatePlaying:
		content = st.Playing.Render(left)
	default:
		content = st.Base.Render(left)
	}
	content = render.Row(content, right, inner)

	return st.Panel.Width(inner).Render(content)
}

func statusIcon(st playback.State) string {
	switch st {
	case playback.StatePlaying:
		return icons.Play()
	case playback.StatePaused:
		return icons.Pause()
	default:
		return icons.Stop()
	}
}

// renderModes renders the counter and mode markers on the right side.
func renderModes(s State) string {
	st := styles.T().S()
	parts := []string{st.Muted.Render(fmt.Sprintf("%d/%d", s.Position, s.Total))}

	if s.Max > 0 && s.Total >= s.Max {
		parts = append(parts, st.Warning.Render("full"))
	}
	if s.ArtworkSize != "" {
		parts = append(parts, st.Subtle.Render(icons.Artwork()+" "+s.ArtworkSize))
	}
	if s.Shuffle {
		parts = append(parts, st.Playing.Render(icons.Shuffle()))
	}
	switch s.RepeatMode {
	case playlist.RepeatOff:
	case playlist.RepeatAll:
		parts = append(parts, st.Playing.Render(icons.RepeatAll()))
	case playlist.RepeatOne:
		parts = append(parts, st.Playing.Render(icons.RepeatOne()))
	}
	return strings.Join(parts, "  ")
}
