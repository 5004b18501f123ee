// Package playlistpanel renders the playlist and tracks the list cursor.
package playlistpanel

import (
	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/playlist"
)

// Overhead is the vertical space taken by the border, header and separator.
const Overhead = 4

// scrollMargin is the number of rows kept visible above and below the cursor.
const scrollMargin = 2

// Model holds the panel state. The cursor is independent of the
// controller's selection: moving it never changes what plays.
type Model struct {
	tracks  []playback.Track
	playing int
	max     int

	cursor int
	offset int

	width, height int
}

// New creates an empty panel.
func New() Model {
	return Model{playing: playlist.NoSelection}
}

// SetSize sets the outer panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetSnapshot replaces the rendered tracks.
// The cursor is clamped when the list shrinks.
func (m *Model) SetSnapshot(snap playback.Snapshot) {
	m.tracks = snap.Tracks
	m.playing = snap.Index
	m.max = snap.MaxTracks
	m.clamp()
}

// Cursor returns the cursor position, 0 on an empty list.
func (m Model) Cursor() int {
	return m.cursor
}

// Len returns the number of tracks shown.
func (m Model) Len() int {
	return len(m.tracks)
}

// Move moves the cursor by delta rows.
func (m *Model) Move(delta int) {
	m.Jump(m.cursor + delta)
}

// Jump puts the cursor at pos, clamped to the list.
func (m *Model) Jump(pos int) {
	m.cursor = pos
	m.clamp()
}

// JumpStart moves the cursor to the first track.
func (m *Model) JumpStart() {
	m.Jump(0)
}

// JumpEnd moves the cursor to the last track.
func (m *Model) JumpEnd() {
	m.Jump(len(m.tracks) - 1)
}

func (m *Model) clamp() {
	if len(m.tracks) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = min(max(m.cursor, 0), len(m.tracks)-1)
	m.ensureVisible()
}

func (m Model) listHeight() int {
	return max(m.height-Overhead, 0)
}

// ensureVisible scrolls so the cursor stays inside the margin.
func (m *Model) ensureVisible() {
	height := m.listHeight()
	if height <= 0 || len(m.tracks) == 0 {
		return
	}
	margin := min(scrollMargin, (height-1)/2)

	if m.cursor < m.offset+margin {
		m.offset = max(m.cursor-margin, 0)
	}
	if m.cursor >= m.offset+height-margin {
		m.offset = m.cursor - height + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.tracks)-height, 0))
}
