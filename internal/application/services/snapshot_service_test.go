package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonindia/office-assistant/internal/application/services"
	"github.com/simonindia/office-assistant/internal/domain/providers"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

type stubMailProvider struct {
	payload json.RawMessage
	err     error
}

func (s *stubMailProvider) ListEvents(ctx context.Context, token string, window providers.Window) (json.RawMessage, error) {
	return nil, nil
}

func (s *stubMailProvider) ListMail(ctx context.Context, token string) (json.RawMessage, error) {
	return nil, nil
}

func (s *stubMailProvider) ListMailWindow(ctx context.Context, token string, window providers.Window) (json.RawMessage, error) {
	return s.payload, s.err
}

func (s *stubMailProvider) GetMessage(ctx context.Context, token, id string) (json.RawMessage, error) {
	return nil, nil
}

func ist(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func mailPayload(t *testing.T, messages ...map[string]interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{"value": messages})
	require.NoError(t, err)
	return raw
}

func TestSnapshot_NilModelIsConfigurationError(t *testing.T) {
	svc := services.NewSnapshotService(&stubMailProvider{}, nil, ist(t))

	_, err := svc.Snapshot(context.Background(), "tok", providers.Window{})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeConfiguration, appErr.Type)
}

func TestSnapshot_ProviderErrorPassesThrough(t *testing.T) {
	mail := &stubMailProvider{err: apperrors.NewUnauthorizedError("User not authenticated.")}
	svc := services.NewSnapshotService(mail, &stubTextModel{}, ist(t))

	_, err := svc.Snapshot(context.Background(), "", providers.Window{})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestSnapshot_SummarizesAndBuildsDigest(t *testing.T) {
	mail := &stubMailProvider{payload: mailPayload(t,
		map[string]interface{}{
			"id":      "m1",
			"subject": "FAT schedule",
			"from": map[string]interface{}{
				"emailAddress": map[string]interface{}{"name": "Vendor A"},
			},
			"receivedDateTime": "2026-08-28T04:30:00Z",
			"bodyPreview":      "Proposed FAT date is 5 Sep.",
		},
	)}
	model := &stubTextModel{response: "Vendor proposes FAT on 5 Sep."}
	svc := services.NewSnapshotService(mail, model, ist(t))

	snapshot, err := svc.Snapshot(context.Background(), "tok", providers.Window{})

	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	item := snapshot.Items[0]
	assert.Equal(t, "m1", item.ID)
	assert.Equal(t, "FAT schedule", item.Subject)
	assert.Equal(t, "Vendor A", item.Sender)
	// 04:30 UTC is 10:00 IST.
	assert.Equal(t, "2026-08-28 10:00 AM", item.Received)
	assert.Equal(t, "Vendor proposes FAT on 5 Sep.", item.Summary)
	assert.Equal(t, "FAT schedule — Vendor proposes FAT on 5 Sep. (Vendor A, 2026-08-28 10:00 AM)", snapshot.Snapshot)

	// The per-message prompt carries subject and preview.
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Summarize this email in one short line (<=20 words).")
	assert.Contains(t, model.prompts[0], "Subject: FAT schedule")
	assert.Contains(t, model.prompts[0], "BodyPreview: Proposed FAT date is 5 Sep.")
}

func TestSnapshot_SkipsEmptySubjects(t *testing.T) {
	mail := &stubMailProvider{payload: mailPayload(t,
		map[string]interface{}{"id": "m1", "subject": "  ", "bodyPreview": "noise"},
		map[string]interface{}{"id": "m2", "subject": "Real mail", "bodyPreview": "content"},
	)}
	model := &stubTextModel{response: "Summary."}
	svc := services.NewSnapshotService(mail, model, ist(t))

	snapshot, err := svc.Snapshot(context.Background(), "tok", providers.Window{})

	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "m2", snapshot.Items[0].ID)
	assert.Len(t, model.prompts, 1, "skipped messages must not reach the model")
}

func TestSnapshot_ModelFailureFallsBackToPreview(t *testing.T) {
	longPreview := strings.Repeat("x", 200)
	mail := &stubMailProvider{payload: mailPayload(t,
		map[string]interface{}{"id": "m1", "subject": "Mail", "bodyPreview": longPreview},
	)}
	model := &stubTextModel{err: errors.New("model down")}
	svc := services.NewSnapshotService(mail, model, ist(t))

	snapshot, err := svc.Snapshot(context.Background(), "tok", providers.Window{})

	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, strings.Repeat("x", 160), snapshot.Items[0].Summary)
}

func TestSnapshot_UnparseableTimestampPassesThrough(t *testing.T) {
	mail := &stubMailProvider{payload: mailPayload(t,
		map[string]interface{}{"id": "m1", "subject": "Mail", "receivedDateTime": "yesterday-ish", "bodyPreview": "p"},
	)}
	svc := services.NewSnapshotService(mail, &stubTextModel{response: "S."}, ist(t))

	snapshot, err := svc.Snapshot(context.Background(), "tok", providers.Window{})

	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "yesterday-ish", snapshot.Items[0].Received)
}

// Offset-less timestamps are taken as UTC; a fractional second is
// accepted by the parser even though the layout omits it.
func TestSnapshot_OffsetlessTimestampWithFractionalSeconds(t *testing.T) {
	mail := &stubMailProvider{payload: mailPayload(t,
		map[string]interface{}{"id": "m1", "subject": "Mail", "receivedDateTime": "2026-08-28T04:30:00.1234567", "bodyPreview": "p"},
	)}
	svc := services.NewSnapshotService(mail, &stubTextModel{response: "S."}, ist(t))

	snapshot, err := svc.Snapshot(context.Background(), "tok", providers.Window{})

	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "2026-08-28 10:00 AM", snapshot.Items[0].Received)
}

func TestSnapshot_EmptyWindowYieldsEmptyDigest(t *testing.T) {
	mail := &stubMailProvider{payload: json.RawMessage(`{"value":[]}`)}
	svc := services.NewSnapshotService(mail, &stubTextModel{}, ist(t))

	snapshot, err := svc.Snapshot(context.Background(), "tok", providers.Window{})

	require.NoError(t, err)
	assert.Empty(t, snapshot.Snapshot)
	assert.Empty(t, snapshot.Items)
}
