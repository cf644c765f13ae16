package entities

import "time"

// Protocol is a singleton row of engagement flags and notes. The
// singleton is identified by first-row lookup, not a uniqueness
// constraint.
type Protocol struct {
	ID        int64     `json:"id" db:"id"`
	Gov       bool      `json:"gov" db:"gov"`
	Intl      bool      `json:"intl" db:"intl"`
	Notes     string    `json:"notes" db:"notes"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}
