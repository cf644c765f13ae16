package entities

import "time"

// Project tracks one project's health, current risk and next action.
type Project struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Health    int       `json:"health" db:"health"`
	Risk      string    `json:"risk" db:"risk"`
	Action    string    `json:"action" db:"action"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}
