// Package state persists the playlist and its modes in SQLite.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "spindle"
	dbFileName   = "spindle.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Modes
	saveErr   func(error)
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Open opens (creating if needed) the database at path.
// An empty path uses DefaultPath.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// OnSaveError registers fn to receive errors from debounced mode saves.
func (m *Manager) OnSaveError(fn func(error)) {
	m.saveMu.Lock()
	m.saveErr = fn
	m.saveMu.Unlock()
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		_ = saveModes(m.db, *pending)
	}

	return m.db.Close()
}

func (m *Manager) Add(rec TrackRecord) (int64, error) {
	ids, err := addTracks(m.db, []TrackRecord{rec})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

func (m *Manager) AddAll(recs []TrackRecord) ([]int64, error) {
	return addTracks(m.db, recs)
}

func (m *Manager) ListAll() ([]TrackRecord, error) {
	return listTracks(m.db)
}

func (m *Manager) Delete(id int64) error {
	return deleteTrack(m.db, id)
}

func (m *Manager) Clear() error {
	return clearTracks(m.db)
}

func (m *Manager) GetModes() (*Modes, error) {
	return getModes(m.db)
}

// SaveModes stores the modes after a short quiet period; rapid toggles
// collapse into one write.
func (m *Manager) SaveModes(modes Modes) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &modes

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		onErr := m.saveErr
		m.saveMu.Unlock()

		if pending == nil {
			return
		}
		if err := saveModes(m.db, *pending); err != nil && onErr != nil {
			onErr(err)
		}
	})
}
