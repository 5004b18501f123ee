package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spindle/internal/errmsg"
	"github.com/llehouerou/spindle/internal/keymap"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 0)
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)

	case StateChangedMsg, TrackChangedMsg, QueueChangedMsg, ModeChangedMsg, ArtworkChangedMsg:
		m.refresh()
		return m, WatchServiceEvents(m.sub)

	case ErrorMsg:
		m.refresh()
		text := errmsg.FormatWith(errmsg.ForOperation(msg.Operation), msg.Track, msg.Err)
		return m, tea.Batch(m.setStatus(text, true), WatchServiceEvents(m.sub))

	case ServiceClosedMsg:
		return m, nil

	case StderrMsg:
		cmd := m.setStatus("stderr: "+strings.TrimSpace(string(msg)), true)
		return m, tea.Batch(cmd, WatchStderr(m.stderr))

	case TracksAddedMsg:
		m.refresh()
		return m, m.handleTracksAdded(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg.String())
	if action == "" {
		return m, nil
	}
	if needsTracks(action) && !m.snap.ControlsEnabled {
		return m, nil
	}

	var cmd tea.Cmd
	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case keymap.ActionPlayPause:
		if err := m.svc.TogglePlayPause(); err != nil {
			cmd = m.fail(errmsg.OpPlaybackStart, "", err)
		}
	case keymap.ActionStop:
		m.svc.Stop()
	case keymap.ActionNextTrack:
		m.svc.Next()
	case keymap.ActionPrevTrack:
		m.svc.Prev()
	case keymap.ActionCycleRepeat:
		m.svc.CycleRepeatMode()
	case keymap.ActionToggleShuffle:
		m.svc.ToggleShuffle()

	case keymap.ActionMoveDown:
		m.panel.Move(1)
		return m, nil
	case keymap.ActionMoveUp:
		m.panel.Move(-1)
		return m, nil
	case keymap.ActionJumpStart:
		m.panel.JumpStart()
		return m, nil
	case keymap.ActionJumpEnd:
		m.panel.JumpEnd()
		return m, nil

	case keymap.ActionSelect:
		m.svc.SelectTrack(m.panel.Cursor())
	// Store failures come back as an ErrorMsg.
	case keymap.ActionDelete:
		_ = m.svc.RemoveTrack(m.panel.Cursor())
	case keymap.ActionClear:
		_ = m.svc.ClearAll()

	case keymap.ActionAdd:
		m.adding = true
		m.input.Reset()
		return m, m.input.Focus()
	}

	m.refresh()
	return m, cmd
}

// needsTracks reports whether action is disabled on an empty playlist.
func needsTracks(action keymap.Action) bool {
	switch action {
	case keymap.ActionPlayPause, keymap.ActionStop, keymap.ActionNextTrack,
		keymap.ActionPrevTrack, keymap.ActionSelect, keymap.ActionDelete,
		keymap.ActionClear:
		return true
	}
	return false
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // other keys go to the input
	case tea.KeyEsc:
		m.adding = false
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		m.adding = false
		m.input.Blur()
		path := expandHome(strings.TrimSpace(m.input.Value()))
		if path == "" {
			return m, nil
		}
		return m, AddPathCmd(m.svc, path)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleTracksAdded(msg TracksAddedMsg) tea.Cmd {
	switch {
	case msg.ReadErr != nil:
		return m.fail(errmsg.OpPathRead, msg.Path, msg.ReadErr)
	case msg.Err != nil:
		// Already shown through the ErrorMsg the controller emitted.
		m.log.Debug("add rejected", "path", msg.Path, "error", msg.Err)
		return nil
	case msg.Added == 0:
		return m.setStatus("No MP3 files in "+msg.Path, true)
	case msg.Added < msg.Found:
		return m.setStatus(fmt.Sprintf("Added %d tracks, skipped %d unsupported files", msg.Added, msg.Found-msg.Added), false)
	default:
		return m.setStatus(fmt.Sprintf("Added %d tracks", msg.Added), false)
	}
}

// fail logs err and shows it in the status line.
func (m *Model) fail(op errmsg.Op, context string, err error) tea.Cmd {
	m.log.Error(string(op), "context", context, "error", err)
	return m.setStatus(errmsg.FormatWith(op, context, err), true)
}

// layout resizes the playlist panel to the space left by the fixed rows.
func (m *Model) layout() {
	m.panel.SetSize(m.width, max(m.height-m.chromeHeight(), 0))
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
