package database

import (
	"database/sql"
	"time"
)

// scanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...interface{}) error
}

// nullTime scans RFC3339 text timestamps, tolerating NULL and
// unparseable values from patched legacy rows.
type nullTime struct {
	Time time.Time
}

func (n *nullTime) Scan(value interface{}) error {
	var s sql.NullString
	if err := s.Scan(value); err != nil {
		return err
	}
	if !s.Valid {
		n.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		n.Time = time.Time{}
		return nil
	}
	n.Time = t
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
