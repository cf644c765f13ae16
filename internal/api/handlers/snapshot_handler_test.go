package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/simonindia/office-assistant/internal/api/handlers"
	"github.com/simonindia/office-assistant/internal/api/session"
	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/providers"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

type stubSnapshotter struct {
	snapshot  *entities.InboxSnapshot
	err       error
	gotToken  string
	gotWindow providers.Window
}

func (s *stubSnapshotter) Snapshot(ctx context.Context, token string, window providers.Window) (*entities.InboxSnapshot, error) {
	s.gotToken = token
	s.gotWindow = window
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

func TestSnapshotHandler_MissingAPIKey(t *testing.T) {
	snapshotter := &stubSnapshotter{
		err: apperrors.NewConfigurationError("GEMINI_API_KEY is not configured on the server."),
	}
	handler := handlers.NewSnapshotHandler(session.NewManager("test-secret"), snapshotter, time.UTC)

	req := httptest.NewRequest("POST", "/api/inbox/snapshot", nil)
	w := httptest.NewRecorder()
	handler.Snapshot(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"GEMINI_API_KEY is not configured on the server."}`, w.Body.String())
}

func TestSnapshotHandler_NotAuthenticated(t *testing.T) {
	snapshotter := &stubSnapshotter{err: apperrors.NewUnauthorizedError("User not authenticated.")}
	handler := handlers.NewSnapshotHandler(session.NewManager("test-secret"), snapshotter, time.UTC)

	req := httptest.NewRequest("POST", "/api/inbox/snapshot", nil)
	w := httptest.NewRecorder()
	handler.Snapshot(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, snapshotter.gotToken, "no session means an empty token is passed through")
}

func TestSnapshotHandler_Snapshot(t *testing.T) {
	sessions := session.NewManager("test-secret")
	snapshotter := &stubSnapshotter{
		snapshot: &entities.InboxSnapshot{
			Snapshot: "FAT schedule — Vendor proposes FAT on 5 Sep. (Vendor A, 2026-08-28 10:00 AM)",
			Items: []entities.InboxItem{
				{ID: "m1", Subject: "FAT schedule", Sender: "Vendor A"},
			},
		},
	}
	handler := handlers.NewSnapshotHandler(sessions, snapshotter, time.UTC)

	req := authedRequest(t, sessions, "POST", "/api/inbox/snapshot?hours=8")
	w := httptest.NewRecorder()
	handler.Snapshot(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"snapshot":"FAT schedule`)
	assert.Contains(t, w.Body.String(), `"id":"m1"`)
	assert.Equal(t, "tok-123", snapshotter.gotToken)
	assert.Equal(t, 8*time.Hour, snapshotter.gotWindow.End.Sub(snapshotter.gotWindow.Start))
}

func TestSnapshotHandler_MalformedHoursFallsBackToDefault(t *testing.T) {
	snapshotter := &stubSnapshotter{snapshot: &entities.InboxSnapshot{Items: []entities.InboxItem{}}}
	handler := handlers.NewSnapshotHandler(session.NewManager("test-secret"), snapshotter, time.UTC)

	req := httptest.NewRequest("POST", "/api/inbox/snapshot?hours=2.5", nil)
	w := httptest.NewRecorder()
	handler.Snapshot(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 24*time.Hour, snapshotter.gotWindow.End.Sub(snapshotter.gotWindow.Start))
}

func TestSnapshotHandler_DefaultWindowIsCurrentDay(t *testing.T) {
	snapshotter := &stubSnapshotter{snapshot: &entities.InboxSnapshot{Items: []entities.InboxItem{}}}
	handler := handlers.NewSnapshotHandler(session.NewManager("test-secret"), snapshotter, time.UTC)

	req := httptest.NewRequest("POST", "/api/inbox/snapshot", nil)
	w := httptest.NewRecorder()
	handler.Snapshot(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, snapshotter.gotWindow.Start.Hour())
	assert.Equal(t, 23, snapshotter.gotWindow.End.Hour())
}
