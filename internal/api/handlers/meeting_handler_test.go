package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonindia/office-assistant/internal/api/handlers"
	"github.com/simonindia/office-assistant/internal/domain/entities"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

type stubMeetingRepo struct {
	meetings    []entities.Meeting
	nextID      int64
	gotListDate string
}

func (s *stubMeetingRepo) ListByDate(ctx context.Context, date string) ([]entities.Meeting, error) {
	s.gotListDate = date
	out := []entities.Meeting{}
	for _, m := range s.meetings {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMeetingRepo) GetByID(ctx context.Context, id int64) (*entities.Meeting, error) {
	for i := range s.meetings {
		if s.meetings[i].ID == id {
			m := s.meetings[i]
			return &m, nil
		}
	}
	return nil, apperrors.NewNotFoundError("meeting not found")
}

func (s *stubMeetingRepo) Create(ctx context.Context, meeting *entities.Meeting) error {
	s.nextID++
	meeting.ID = s.nextID
	s.meetings = append(s.meetings, *meeting)
	return nil
}

func (s *stubMeetingRepo) Update(ctx context.Context, meeting *entities.Meeting) error {
	for i := range s.meetings {
		if s.meetings[i].ID == meeting.ID {
			s.meetings[i] = *meeting
			return nil
		}
	}
	return apperrors.NewNotFoundError("meeting not found")
}

func (s *stubMeetingRepo) Delete(ctx context.Context, id int64) error {
	for i := range s.meetings {
		if s.meetings[i].ID == id {
			s.meetings = append(s.meetings[:i], s.meetings[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("meeting not found")
}

func TestMeetingHandler_ListDefaultsToToday(t *testing.T) {
	repo := &stubMeetingRepo{}
	handler := handlers.NewMeetingHandler(repo, time.UTC)

	req := httptest.NewRequest("GET", "/api/meetings", nil)
	w := httptest.NewRecorder()
	handler.ListMeetings(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), repo.gotListDate)
}

func TestMeetingHandler_ListBadDate(t *testing.T) {
	handler := handlers.NewMeetingHandler(&stubMeetingRepo{}, time.UTC)

	req := httptest.NewRequest("GET", "/api/meetings?date=28-08-2026", nil)
	w := httptest.NewRecorder()
	handler.ListMeetings(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid date"}`, w.Body.String())
}

func TestMeetingHandler_ListByDate(t *testing.T) {
	repo := &stubMeetingRepo{meetings: []entities.Meeting{
		{ID: 1, Title: "MoU signing", Date: "2026-09-05"},
		{ID: 2, Title: "Weekly ops", Date: "2026-09-06"},
	}}
	handler := handlers.NewMeetingHandler(repo, time.UTC)

	req := httptest.NewRequest("GET", "/api/meetings?date=2026-09-05", nil)
	w := httptest.NewRecorder()
	handler.ListMeetings(w, req)

	var resp []entities.Meeting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "MoU signing", resp[0].Title)
}

func TestMeetingHandler_CreateRequiresTitle(t *testing.T) {
	handler := handlers.NewMeetingHandler(&stubMeetingRepo{}, time.UTC)

	for _, body := range []string{`{}`, `{"title":""}`, `not json`} {
		req := httptest.NewRequest("POST", "/api/meetings", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.CreateMeeting(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Meeting title is required"}`, w.Body.String())
	}
}

func TestMeetingHandler_CreateAppliesDefaults(t *testing.T) {
	repo := &stubMeetingRepo{}
	handler := handlers.NewMeetingHandler(repo, time.UTC)

	req := httptest.NewRequest("POST", "/api/meetings", strings.NewReader(`{"title":"Vendor FAT review"}`))
	w := httptest.NewRecorder()
	handler.CreateMeeting(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp entities.Meeting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "09:00", resp.Time)
	assert.Equal(t, "VC", resp.Location)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.Date)
	assert.False(t, resp.Critical)
}

func TestMeetingHandler_CreateBadDate(t *testing.T) {
	handler := handlers.NewMeetingHandler(&stubMeetingRepo{}, time.UTC)

	body := `{"title":"Board prep","date":"tomorrow"}`
	req := httptest.NewRequest("POST", "/api/meetings", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateMeeting(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid date"}`, w.Body.String())
}

func TestMeetingHandler_UpdateMergesFields(t *testing.T) {
	repo := &stubMeetingRepo{}
	repo.Create(context.Background(), &entities.Meeting{
		Time: "09:00", Title: "Weekly ops", Location: "VC", Date: "2026-09-06",
	})
	handler := handlers.NewMeetingHandler(repo, time.UTC)

	req := httptest.NewRequest("PUT", "/api/meetings/1", strings.NewReader(`{"critical":true,"time":"14:30"}`))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.UpdateMeeting(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp entities.Meeting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Critical)
	assert.Equal(t, "14:30", resp.Time)
	assert.Equal(t, "Weekly ops", resp.Title, "absent fields keep stored values")
}

func TestMeetingHandler_UpdateMissing(t *testing.T) {
	handler := handlers.NewMeetingHandler(&stubMeetingRepo{}, time.UTC)

	req := httptest.NewRequest("PUT", "/api/meetings/9", strings.NewReader(`{"title":"ghost"}`))
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	handler.UpdateMeeting(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMeetingHandler_Delete(t *testing.T) {
	repo := &stubMeetingRepo{}
	repo.Create(context.Background(), &entities.Meeting{Title: "Temp", Date: "2026-09-06"})
	handler := handlers.NewMeetingHandler(repo, time.UTC)

	req := httptest.NewRequest("DELETE", "/api/meetings/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.DeleteMeeting(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Meeting deleted"}`, w.Body.String())
	assert.Empty(t, repo.meetings)
}
