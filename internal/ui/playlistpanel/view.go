package playlistpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spindle/internal/icons"
	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/ui/render"
	"github.com/llehouerou/spindle/internal/ui/styles"
)

const playingMarker = "\u25B6"

// View renders the panel.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	st := styles.T().S()
	inner := max(m.width-2, 0)

	header := st.Title.Render(render.TruncateAndPad(
		fmt.Sprintf("Playlist (%d/%d)", len(m.tracks), m.max), inner))

	content := header + "\n" + st.Subtle.Render(render.Separator(inner)) + "\n" + m.renderList(inner)
	return st.Panel.Width(inner).Render(content)
}

func (m Model) renderList(width int) string {
	height := m.listHeight()
	lines := make([]string, 0, height)

	for i := range height {
		idx := m.offset + i
		switch {
		case len(m.tracks) == 0 && i == 0:
			lines = append(lines, styles.T().S().Muted.Render(
				render.TruncateAndPad("Empty. Press a to add MP3 files.", width)))
		case idx < len(m.tracks):
			lines = append(lines, m.renderLine(m.tracks[idx], idx, width))
		default:
			lines = append(lines, strings.Repeat(" ", width))
		}
	}
	return strings.Join(lines, "\n")
}

// renderLine renders "▶ 3. name ... 4.2 MB *".
func (m Model) renderLine(t playback.Track, idx, width int) string {
	prefix := "  "
	if idx == m.playing {
		prefix = playingMarker + " "
	}
	prefix += fmt.Sprintf("%2d. ", idx+1)

	var suffix string
	if size := render.Size(t.Size); size != "" {
		suffix = " " + size
	}
	if t.HasArtwork {
		suffix += " " + icons.Artwork()
	}
	suffix += " "

	nameWidth := max(width-lipgloss.Width(prefix)-lipgloss.Width(suffix), 0)
	line := prefix + render.TruncateAndPad(icons.FormatAudio(t.Display()), nameWidth) + suffix

	return m.lineStyle(idx).Render(line)
}

func (m Model) lineStyle(idx int) lipgloss.Style {
	st := styles.T().S()
	isCursor := idx == m.cursor
	isPlaying := idx == m.playing

	switch {
	case isCursor && isPlaying:
		return st.Cursor.Inherit(st.Playing)
	case isCursor:
		return st.Cursor
	case isPlaying:
		return st.Playing
	default:
		return st.Base
	}
}
