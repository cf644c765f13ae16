package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

// DailyBriefHandler handles stored-brief HTTP requests.
type DailyBriefHandler struct {
	briefRepo repositories.DailyBriefRepository
	location  *time.Location
}

// NewDailyBriefHandler creates a new daily brief handler
func NewDailyBriefHandler(briefRepo repositories.DailyBriefRepository, location *time.Location) *DailyBriefHandler {
	return &DailyBriefHandler{
		briefRepo: briefRepo,
		location:  location,
	}
}

// GetDailyBrief handles GET /api/daily-briefs?date=YYYY-MM-DD,
// defaulting to today.
func (h *DailyBriefHandler) GetDailyBrief(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().In(h.location).Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid date")
		return
	}

	brief, err := h.briefRepo.GetByDate(r.Context(), date)
	if apperrors.IsNotFoundError(err) {
		respondWithJSON(w, http.StatusNotFound, map[string]string{"message": "No brief found for this date"})
		return
	}
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, brief)
}

// SaveDailyBrief handles POST /api/daily-briefs. An existing brief for
// the date is overwritten section by section; absent sections become
// null.
func (h *DailyBriefHandler) SaveDailyBrief(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date              string  `json:"date"`
		BriefContent      string  `json:"brief_content"`
		DecisionsRequired *string `json:"decisions_required"`
		Drafts            *string `json:"drafts"`
		Followups         *string `json:"followups"`
		Risks             *string `json:"risks"`
		NextActions       *string `json:"next_actions"`
		ProtonUpdate      *string `json:"proton_update"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BriefContent == "" {
		respondWithError(w, http.StatusBadRequest, "Brief content is required")
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().In(h.location).Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid date")
		return
	}

	brief := &entities.DailyBrief{
		Date:              date,
		BriefContent:      req.BriefContent,
		DecisionsRequired: req.DecisionsRequired,
		Drafts:            req.Drafts,
		Followups:         req.Followups,
		Risks:             req.Risks,
		NextActions:       req.NextActions,
		ProtonUpdate:      req.ProtonUpdate,
	}
	if err := h.briefRepo.Upsert(r.Context(), brief); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]string{"message": "Brief saved successfully"})
}
