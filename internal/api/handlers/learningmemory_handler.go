package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
)

// listMemoryLimit caps a corrections listing.
const listMemoryLimit = 50

// LearningMemoryHandler handles corrections-log HTTP requests.
type LearningMemoryHandler struct {
	memoryRepo repositories.LearningMemoryRepository
}

// NewLearningMemoryHandler creates a new learning memory handler
func NewLearningMemoryHandler(memoryRepo repositories.LearningMemoryRepository) *LearningMemoryHandler {
	return &LearningMemoryHandler{
		memoryRepo: memoryRepo,
	}
}

// ListMemories handles GET /api/learning-memory?category=, newest
// first. An unknown category yields an empty list, not an error.
func (h *LearningMemoryHandler) ListMemories(w http.ResponseWriter, r *http.Request) {
	memories, err := h.memoryRepo.List(r.Context(), r.URL.Query().Get("category"), listMemoryLimit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, memories)
}

// CreateMemory handles POST /api/learning-memory
func (h *LearningMemoryHandler) CreateMemory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Context    string `json:"context"`
		Correction string `json:"correction"`
		Category   string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Context == "" || req.Correction == "" || req.Category == "" {
		respondWithError(w, http.StatusBadRequest, "Context, correction, and category are required")
		return
	}

	memory := &entities.LearningMemory{
		Context:    req.Context,
		Correction: req.Correction,
		Category:   req.Category,
	}
	if err := h.memoryRepo.Create(r.Context(), memory); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, memory)
}
