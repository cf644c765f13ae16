package entities

import "time"

// Meeting is one calendar entry for a given date. Time is a plain
// HH:MM string and Date an ISO calendar date; no ordering or overlap
// invariant is enforced.
type Meeting struct {
	ID        int64     `json:"id" db:"id"`
	Time      string    `json:"time" db:"time"`
	Title     string    `json:"title" db:"title"`
	Location  string    `json:"location" db:"location"`
	Brief     string    `json:"brief" db:"brief"`
	Critical  bool      `json:"critical" db:"critical"`
	Date      string    `json:"date" db:"date"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}
