package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/simonindia/office-assistant/internal/application/services"
	"github.com/simonindia/office-assistant/internal/domain/entities"
)

// BriefGenerator synthesizes a structured brief from a day snapshot.
type BriefGenerator interface {
	GenerateBrief(ctx context.Context, req services.BriefRequest) (*entities.BriefSections, error)
}

// BriefingHandler handles brief-synthesis HTTP requests.
type BriefingHandler struct {
	briefing BriefGenerator
}

// NewBriefingHandler creates a new briefing handler
func NewBriefingHandler(briefing BriefGenerator) *BriefingHandler {
	return &BriefingHandler{
		briefing: briefing,
	}
}

// GenerateBrief handles POST /api/generate_brief
func (h *BriefingHandler) GenerateBrief(w http.ResponseWriter, r *http.Request) {
	var req services.BriefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	sections, err := h.briefing.GenerateBrief(r.Context(), req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sections)
}
