package entities

import "time"

// TimeSplit is a singleton row of time-allocation target percentages.
// The four values are not required to sum to 100.
type TimeSplit struct {
	ID        int64     `json:"id" db:"id"`
	BD        int       `json:"BD" db:"bd"`
	Internal  int       `json:"Internal" db:"internal"`
	Strategy  int       `json:"Strategy" db:"strategy"`
	Admin     int       `json:"Admin" db:"admin"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}
