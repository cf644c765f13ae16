package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
)

const dateLayout = "2006-01-02"

// MeetingHandler handles meeting-related HTTP requests
type MeetingHandler struct {
	meetingRepo repositories.MeetingRepository
	location    *time.Location
}

// NewMeetingHandler creates a new meeting handler. The location
// resolves "today" for date defaults.
func NewMeetingHandler(meetingRepo repositories.MeetingRepository, location *time.Location) *MeetingHandler {
	return &MeetingHandler{
		meetingRepo: meetingRepo,
		location:    location,
	}
}

// ListMeetings handles GET /api/meetings?date=YYYY-MM-DD, defaulting
// to today.
func (h *MeetingHandler) ListMeetings(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().In(h.location).Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid date")
		return
	}

	meetings, err := h.meetingRepo.ListByDate(r.Context(), date)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, meetings)
}

// CreateMeeting handles POST /api/meetings
func (h *MeetingHandler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Time     *string `json:"time"`
		Title    string  `json:"title"`
		Location *string `json:"location"`
		Brief    *string `json:"brief"`
		Critical *bool   `json:"critical"`
		Date     *string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		respondWithError(w, http.StatusBadRequest, "Meeting title is required")
		return
	}

	meeting := &entities.Meeting{
		Time:     "09:00",
		Title:    req.Title,
		Location: "VC",
		Date:     time.Now().In(h.location).Format(dateLayout),
	}
	if req.Time != nil {
		meeting.Time = *req.Time
	}
	if req.Location != nil {
		meeting.Location = *req.Location
	}
	if req.Brief != nil {
		meeting.Brief = *req.Brief
	}
	if req.Critical != nil {
		meeting.Critical = *req.Critical
	}
	if req.Date != nil {
		if _, err := time.Parse(dateLayout, *req.Date); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid date")
			return
		}
		meeting.Date = *req.Date
	}

	if err := h.meetingRepo.Create(r.Context(), meeting); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, meeting)
}

// UpdateMeeting handles PUT /api/meetings/{id}. Absent payload fields
// keep their stored values.
func (h *MeetingHandler) UpdateMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid meeting id")
		return
	}

	var req struct {
		Time     *string `json:"time"`
		Title    *string `json:"title"`
		Location *string `json:"location"`
		Brief    *string `json:"brief"`
		Critical *bool   `json:"critical"`
		Date     *string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	meeting, err := h.meetingRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if req.Time != nil {
		meeting.Time = *req.Time
	}
	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.Location != nil {
		meeting.Location = *req.Location
	}
	if req.Brief != nil {
		meeting.Brief = *req.Brief
	}
	if req.Critical != nil {
		meeting.Critical = *req.Critical
	}
	if req.Date != nil {
		if _, err := time.Parse(dateLayout, *req.Date); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid date")
			return
		}
		meeting.Date = *req.Date
	}

	if err := h.meetingRepo.Update(r.Context(), meeting); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, meeting)
}

// DeleteMeeting handles DELETE /api/meetings/{id}
func (h *MeetingHandler) DeleteMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid meeting id")
		return
	}

	if err := h.meetingRepo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Meeting deleted"})
}
