package entities

import "time"

// DailyBrief holds one synthesized brief per calendar date. Section
// fields are nullable: an upsert overwrites every section with the
// supplied value, absent sections become NULL.
type DailyBrief struct {
	ID                int64     `json:"id" db:"id"`
	Date              string    `json:"date" db:"date"`
	BriefContent      string    `json:"brief_content" db:"brief_content"`
	DecisionsRequired *string   `json:"decisions_required" db:"decisions_required"`
	Drafts            *string   `json:"drafts" db:"drafts"`
	Followups         *string   `json:"followups" db:"followups"`
	Risks             *string   `json:"risks" db:"risks"`
	NextActions       *string   `json:"next_actions" db:"next_actions"`
	ProtonUpdate      *string   `json:"proton_update" db:"proton_update"`
	CreatedAt         time.Time `json:"-" db:"created_at"`
}
