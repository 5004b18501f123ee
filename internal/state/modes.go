package state

import (
	"database/sql"
	"errors"
)

// Modes is the saved repeat/shuffle state.
type Modes struct {
	RepeatMode int
	Shuffle    bool
}

func getModes(db *sql.DB) (*Modes, error) {
	var m Modes
	err := db.QueryRow(`SELECT repeat_mode, shuffle FROM mode_state WHERE id = 1`).
		Scan(&m.RepeatMode, &m.Shuffle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // nothing saved yet is valid on first run
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func saveModes(db *sql.DB, m Modes) error {
	_, err := db.Exec(`
		INSERT INTO mode_state (id, repeat_mode, shuffle)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			repeat_mode = excluded.repeat_mode,
			shuffle = excluded.shuffle
	`, m.RepeatMode, m.Shuffle)
	return err
}
