package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/source"
)

// statusTimeout is how long a status message stays on screen.
const statusTimeout = 5 * time.Second

// Controller events, converted to bubbletea messages.
type (
	StateChangedMsg   playback.StateChange
	TrackChangedMsg   playback.TrackChange
	QueueChangedMsg   playback.QueueChange
	ModeChangedMsg    playback.ModeChange
	ArtworkChangedMsg playback.ArtworkChange
	ErrorMsg          playback.ErrorEvent
)

// ServiceClosedMsg is sent once the controller has been closed.
type ServiceClosedMsg struct{}

// StderrMsg carries a line the audio backend wrote to stderr.
type StderrMsg string

// TracksAddedMsg reports the result of adding a path.
type TracksAddedMsg struct {
	Path    string
	Found   int
	Added   int
	ReadErr error // collecting the path failed
	Err     error // the controller rejected the batch
}

type clearStatusMsg struct {
	seq int
}

// WatchServiceEvents waits for the next controller event.
// The returned command must be re-issued after each message.
func WatchServiceEvents(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.QueueChanged:
			return QueueChangedMsg(e)
		case e := <-sub.ModeChanged:
			return ModeChangedMsg(e)
		case e := <-sub.ArtworkChanged:
			return ArtworkChangedMsg(e)
		case e := <-sub.Error:
			return ErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// WatchStderr waits for the next captured stderr line.
func WatchStderr(lines <-chan string) tea.Cmd {
	if lines == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return nil
		}
		return StderrMsg(line)
	}
}

// AddPathCmd collects the MP3 candidates under path and hands them to the
// controller. It runs off the UI goroutine since tag reads hit the disk.
func AddPathCmd(svc playback.Service, path string) tea.Cmd {
	return func() tea.Msg {
		candidates, err := source.Collect(path)
		if err != nil {
			return TracksAddedMsg{Path: path, ReadErr: err}
		}
		n, err := svc.AddTracks(candidates)
		return TracksAddedMsg{Path: path, Found: len(candidates), Added: n, Err: err}
	}
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
