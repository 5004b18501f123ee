// internal/player/mock.go
package player

import (
	"sync"

	"github.com/llehouerou/spindle/internal/source"
)

// Mock is a test double for Player.
type Mock struct {
	mu         sync.Mutex
	state      State
	loaded     source.Source
	loadErr    error
	loadCalls  []source.Source
	playCalls  int
	pauseCalls int
	stopCalls  int
	onFinished func(source.Source)
	onState    func(State)
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped}
}

func (m *Mock) Load(src source.Source) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, src)
	m.state = Stopped
	if m.loadErr != nil {
		m.loaded = nil
		return m.loadErr
	}
	m.loaded = src
	return nil
}

func (m *Mock) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.loaded != nil {
		m.state = Playing
	}
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopCalls++
	m.state = Stopped
	m.loaded = nil
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) OnFinished(fn func(source.Source)) {
	m.mu.Lock()
	m.onFinished = fn
	m.mu.Unlock()
}

func (m *Mock) OnStateChange(fn func(State)) {
	m.mu.Lock()
	m.onState = fn
	m.mu.Unlock()
}

// Test helpers

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	m.loadErr = err
	m.mu.Unlock()
}

// Loaded returns the currently loaded source, or nil.
func (m *Mock) Loaded() source.Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

func (m *Mock) LoadCalls() []source.Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]source.Source, len(m.loadCalls))
	copy(out, m.loadCalls)
	return out
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) StopCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalls
}

// SimulateFinished plays the loaded source to its end and fires the
// finished callback, as the real player does from its own goroutine.
func (m *Mock) SimulateFinished() {
	m.mu.Lock()
	src := m.loaded
	m.state = Stopped
	m.loaded = nil
	fn := m.onFinished
	m.mu.Unlock()
	if fn != nil {
		fn(src)
	}
}

// FinishedCallback returns the registered finished callback so tests can
// deliver it late, after other calls have changed the player.
func (m *Mock) FinishedCallback() func(source.Source) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.onFinished
}

// SimulateStateChange changes state from outside, e.g. a device error.
func (m *Mock) SimulateStateChange(s State) {
	m.mu.Lock()
	m.state = s
	fn := m.onState
	m.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
