package entities

import "time"

// Priority is a single free-text top priority for the day.
type Priority struct {
	ID        int64     `json:"id" db:"id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}
