// internal/state/mock.go
package state

import "sync"

// Mock is an in-memory Store for testing.
type Mock struct {
	mu      sync.Mutex
	nextID  int64
	records []TrackRecord
	modes   *Modes
	closed  bool

	addErr    error
	listErr   error
	deleteErr error
	clearErr  error
	saves     int
}

// NewMock creates a new empty mock store.
func NewMock() *Mock {
	return &Mock{nextID: 1}
}

func (m *Mock) Add(rec TrackRecord) (int64, error) {
	ids, err := m.AddAll([]TrackRecord{rec})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

func (m *Mock) AddAll(recs []TrackRecord) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.addErr != nil {
		return nil, m.addErr
	}
	ids := make([]int64, len(recs))
	for i, r := range recs {
		r.ID = m.nextID
		m.nextID++
		m.records = append(m.records, r)
		ids[i] = r.ID
	}
	return ids, nil
}

func (m *Mock) ListAll() ([]TrackRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]TrackRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *Mock) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Mock) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	m.records = nil
	return nil
}

func (m *Mock) SaveModes(modes Modes) {
	m.mu.Lock()
	m.modes = &modes
	m.saves++
	m.mu.Unlock()
}

func (m *Mock) GetModes() (*Modes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.modes == nil {
		return nil, nil //nolint:nilnil // nothing saved
	}
	mm := *m.modes
	return &mm, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

// Test helpers

func (m *Mock) SetAddError(err error) {
	m.mu.Lock()
	m.addErr = err
	m.mu.Unlock()
}

func (m *Mock) SetListError(err error) {
	m.mu.Lock()
	m.listErr = err
	m.mu.Unlock()
}

func (m *Mock) SetDeleteError(err error) {
	m.mu.Lock()
	m.deleteErr = err
	m.mu.Unlock()
}

func (m *Mock) SetClearError(err error) {
	m.mu.Lock()
	m.clearErr = err
	m.mu.Unlock()
}

// Records returns a copy of the stored records.
func (m *Mock) Records() []TrackRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]TrackRecord, len(m.records))
	copy(out, m.records)
	return out
}

// Saves returns how many times SaveModes was called.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Store at compile time.
var _ Store = (*Mock)(nil)
