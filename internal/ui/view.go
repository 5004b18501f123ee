package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spindle/internal/ui/playerbar"
	"github.com/llehouerou/spindle/internal/ui/render"
	"github.com/llehouerou/spindle/internal/ui/styles"
)

// View renders the player bar, the playlist, the status line and help.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	parts := []string{
		playerbar.Render(playerbar.NewState(m.snap), m.width),
		m.panel.View(),
		m.statusLine(),
		m.help.View(m.keys),
	}
	return strings.Join(parts, "\n")
}

// chromeHeight is the number of rows not given to the playlist panel.
func (m Model) chromeHeight() int {
	return playerbar.Height + 1 + lipgloss.Height(m.help.View(m.keys))
}

func (m Model) statusLine() string {
	st := styles.T().S()
	if m.adding {
		return m.input.View()
	}
	if m.status == "" {
		return render.Pad("", m.width)
	}
	text := render.TruncateAndPad(m.status, m.width)
	if m.statusErr {
		return st.Error.Render(text)
	}
	return st.Muted.Render(text)
}
