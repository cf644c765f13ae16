package entities

// InboxItem is one summarized message in an inbox snapshot.
type InboxItem struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Sender   string `json:"sender"`
	Received string `json:"received"`
	Summary  string `json:"summary"`
}

// InboxSnapshot is the per-message summaries plus the newline-joined
// digest over all of them.
type InboxSnapshot struct {
	Snapshot string      `json:"snapshot"`
	Items    []InboxItem `json:"items"`
}
