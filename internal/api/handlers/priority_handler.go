package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
)

// PriorityHandler handles priority-related HTTP requests
type PriorityHandler struct {
	priorityRepo repositories.PriorityRepository
}

// NewPriorityHandler creates a new priority handler
func NewPriorityHandler(priorityRepo repositories.PriorityRepository) *PriorityHandler {
	return &PriorityHandler{
		priorityRepo: priorityRepo,
	}
}

// ListPriorities handles GET /api/priorities
func (h *PriorityHandler) ListPriorities(w http.ResponseWriter, r *http.Request) {
	priorities, err := h.priorityRepo.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, priorities)
}

// CreatePriority handles POST /api/priorities
func (h *PriorityHandler) CreatePriority(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		respondWithError(w, http.StatusBadRequest, "Priority text is required")
		return
	}

	priority := &entities.Priority{Text: req.Text}
	if err := h.priorityRepo.Create(r.Context(), priority); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, priority)
}

// DeletePriority handles DELETE /api/priorities/{id}
func (h *PriorityHandler) DeletePriority(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid priority id")
		return
	}

	if err := h.priorityRepo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Priority deleted"})
}
