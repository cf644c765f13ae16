package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

// TimeSplitHandler handles the time-split singleton's HTTP requests.
type TimeSplitHandler struct {
	timeSplitRepo repositories.TimeSplitRepository
}

// NewTimeSplitHandler creates a new time-split handler
func NewTimeSplitHandler(timeSplitRepo repositories.TimeSplitRepository) *TimeSplitHandler {
	return &TimeSplitHandler{
		timeSplitRepo: timeSplitRepo,
	}
}

// GetTimeSplit handles GET /api/time-split, creating the default
// allocation on first read.
func (h *TimeSplitHandler) GetTimeSplit(w http.ResponseWriter, r *http.Request) {
	split, err := h.timeSplitRepo.First(r.Context())
	if apperrors.IsNotFoundError(err) {
		split = &entities.TimeSplit{BD: 40, Internal: 35, Strategy: 15, Admin: 10}
		err = h.timeSplitRepo.Create(r.Context(), split)
	}
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, split)
}

// UpdateTimeSplit handles PUT /api/time-split. Absent payload fields
// keep their stored (or default) values; a missing row is created.
func (h *TimeSplitHandler) UpdateTimeSplit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BD       *int `json:"BD"`
		Internal *int `json:"Internal"`
		Strategy *int `json:"Strategy"`
		Admin    *int `json:"Admin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	split, err := h.timeSplitRepo.First(r.Context())
	creating := false
	if apperrors.IsNotFoundError(err) {
		split = &entities.TimeSplit{BD: 40, Internal: 35, Strategy: 15, Admin: 10}
		creating = true
	} else if err != nil {
		respondWithAppError(w, err)
		return
	}

	if req.BD != nil {
		split.BD = *req.BD
	}
	if req.Internal != nil {
		split.Internal = *req.Internal
	}
	if req.Strategy != nil {
		split.Strategy = *req.Strategy
	}
	if req.Admin != nil {
		split.Admin = *req.Admin
	}

	if creating {
		err = h.timeSplitRepo.Create(r.Context(), split)
	} else {
		err = h.timeSplitRepo.Update(r.Context(), split)
	}
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, split)
}
