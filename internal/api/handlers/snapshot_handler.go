package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/simonindia/office-assistant/internal/api/session"
	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/providers"
)

// InboxSnapshotter condenses a mail window into one-line summaries.
type InboxSnapshotter interface {
	Snapshot(ctx context.Context, token string, window providers.Window) (*entities.InboxSnapshot, error)
}

// SnapshotHandler handles inbox-snapshot HTTP requests.
type SnapshotHandler struct {
	sessions *session.Manager
	snapshot InboxSnapshotter
	location *time.Location
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(sessions *session.Manager, snapshot InboxSnapshotter, location *time.Location) *SnapshotHandler {
	return &SnapshotHandler{
		sessions: sessions,
		snapshot: snapshot,
		location: location,
	}
}

// Snapshot handles POST /api/inbox/snapshot?hours=. Without hours the
// window is the current local day.
func (h *SnapshotHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	now := time.Now().In(h.location)
	window := providers.DayWindow(now, h.location)
	if hours := r.URL.Query().Get("hours"); hours != "" {
		window = providers.TrailingWindow(now, providers.ClampHours(hours))
	}

	token := ""
	if cred, ok := h.sessions.Credential(r); ok && !cred.Expired(time.Now()) {
		token = cred.AccessToken
	}

	snapshot, err := h.snapshot.Snapshot(r.Context(), token, window)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, snapshot)
}
