package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/spindle/internal/db"
)

// TrackRecord is a persisted playlist entry.
// ID is assigned by the store and becomes the track's identity.
type TrackRecord struct {
	ID        int64
	Name      string
	MediaType string
	Location  string // file path the source is reopened from
	AddedAt   time.Time
}

const insertTrack = `
	INSERT INTO playlist_tracks (name, media_type, location, added_at)
	VALUES (?, ?, ?, ?)
`

func addTracks(sqlDB *sql.DB, recs []TrackRecord) ([]int64, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	now := time.Now().Unix()
	args := make([][]any, len(recs))
	for i, r := range recs {
		added := now
		if !r.AddedAt.IsZero() {
			added = r.AddedAt.Unix()
		}
		args[i] = []any{r.Name, dbutil.NullString(r.MediaType), r.Location, added}
	}

	var ids []int64
	err := dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		var err error
		ids, err = dbutil.ExecEach(tx, insertTrack, args)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// listTracks returns records in insertion order.
func listTracks(db *sql.DB) ([]TrackRecord, error) {
	rows, err := db.Query(`
		SELECT id, name, media_type, location, added_at
		FROM playlist_tracks
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []TrackRecord
	for rows.Next() {
		var r TrackRecord
		var mediaType sql.NullString
		var addedAt int64
		if err := rows.Scan(&r.ID, &r.Name, &mediaType, &r.Location, &addedAt); err != nil {
			return nil, err
		}
		r.MediaType = dbutil.NullStringValue(mediaType)
		r.AddedAt = time.Unix(addedAt, 0)
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func deleteTrack(db *sql.DB, id int64) error {
	_, err := db.Exec(`DELETE FROM playlist_tracks WHERE id = ?`, id)
	return err
}

func clearTracks(db *sql.DB) error {
	_, err := db.Exec(`DELETE FROM playlist_tracks`)
	return err
}
