// internal/state/interface.go
package state

// Store is the record store the playlist is mirrored into.
type Store interface {
	Add(rec TrackRecord) (int64, error)
	// AddAll stores the batch atomically and returns ids in input order.
	AddAll(recs []TrackRecord) ([]int64, error)
	ListAll() ([]TrackRecord, error)
	Delete(id int64) error
	Clear() error
	SaveModes(modes Modes)
	GetModes() (*Modes, error)
	Close() error
}

// Verify Manager implements Store at compile time.
var _ Store = (*Manager)(nil)
