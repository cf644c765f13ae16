package entities

import "time"

// LearningMemory is one (context, correction, category) triple from
// the append-only corrections log. Recent entries are fed back into
// the brief synthesizer as few-shot context.
type LearningMemory struct {
	ID         int64     `json:"id" db:"id"`
	Context    string    `json:"context" db:"context"`
	Correction string    `json:"correction" db:"correction"`
	Category   string    `json:"category" db:"category"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
