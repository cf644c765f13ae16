package entities

// BriefSections is the parsed output of one brief synthesis: the
// brief text plus the five named sections. A section whose marker was
// absent from the model response is an empty string, not an error.
type BriefSections struct {
	Brief             string `json:"brief"`
	DecisionsRequired string `json:"decisions_required"`
	Drafts            string `json:"drafts"`
	Followups         string `json:"followups"`
	Risks             string `json:"risks"`
	NextActions       string `json:"next_actions"`
}
