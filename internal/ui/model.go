// Package ui implements the terminal view of the playlist controller.
// It renders controller snapshots and forwards key presses as
// controller calls; it never touches playlist state directly.
package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spindle/internal/keymap"
	"github.com/llehouerou/spindle/internal/logging"
	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/ui/playlistpanel"
)

// Option configures the model.
type Option func(*Model)

// WithLogger sets the logger used for view-level errors.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithStderr shows lines captured from stderr in the status line.
func WithStderr(lines <-chan string) Option {
	return func(m *Model) {
		m.stderr = lines
	}
}

// Model is the root bubbletea model.
type Model struct {
	svc    playback.Service
	sub    *playback.Subscription
	keys   *keymap.Resolver
	log    *slog.Logger
	stderr <-chan string

	snap  playback.Snapshot
	panel playlistpanel.Model
	help  help.Model

	input  textinput.Model
	adding bool

	status    string
	statusErr bool
	statusSeq int

	width, height int
}

// New creates the model and subscribes it to svc.
func New(svc playback.Service, opts ...Option) Model {
	input := textinput.New()
	input.Prompt = "Add: "
	input.Placeholder = "file or directory"
	input.CharLimit = 4096

	m := Model{
		svc:   svc,
		sub:   svc.Subscribe(),
		keys:  keymap.NewResolver(keymap.Bindings),
		log:   logging.Discard(),
		panel: playlistpanel.New(),
		help:  help.New(),
		input: input,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refresh()
	return m
}

// Init starts the event watchers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(WatchServiceEvents(m.sub), WatchStderr(m.stderr))
}

// refresh re-reads the controller state.
func (m *Model) refresh() {
	m.snap = m.svc.Snapshot()
	m.panel.SetSnapshot(m.snap)
}

// setStatus shows msg and schedules its removal.
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = msg
	m.statusErr = isErr
	return clearStatusAfter(m.statusSeq)
}
