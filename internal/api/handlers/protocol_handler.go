package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

const defaultProtocolNotes = "Prep MoU protocol pack for Japanese delegation (Givery): seating, plaques, flag, photo-op)."

// ProtocolHandler handles the protocol singleton's HTTP requests.
type ProtocolHandler struct {
	protocolRepo repositories.ProtocolRepository
}

// NewProtocolHandler creates a new protocol handler
func NewProtocolHandler(protocolRepo repositories.ProtocolRepository) *ProtocolHandler {
	return &ProtocolHandler{
		protocolRepo: protocolRepo,
	}
}

// GetProtocol handles GET /api/protocol, creating the default row on
// first read.
func (h *ProtocolHandler) GetProtocol(w http.ResponseWriter, r *http.Request) {
	protocol, err := h.protocolRepo.First(r.Context())
	if apperrors.IsNotFoundError(err) {
		protocol = &entities.Protocol{Gov: false, Intl: true, Notes: defaultProtocolNotes}
		err = h.protocolRepo.Create(r.Context(), protocol)
	}
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, protocol)
}

// UpdateProtocol handles PUT /api/protocol. Absent payload fields keep
// their stored (or default) values; a missing row is created.
func (h *ProtocolHandler) UpdateProtocol(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Gov   *bool   `json:"gov"`
		Intl  *bool   `json:"intl"`
		Notes *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	protocol, err := h.protocolRepo.First(r.Context())
	creating := false
	if apperrors.IsNotFoundError(err) {
		protocol = &entities.Protocol{Gov: false, Intl: true, Notes: ""}
		creating = true
	} else if err != nil {
		respondWithAppError(w, err)
		return
	}

	if req.Gov != nil {
		protocol.Gov = *req.Gov
	}
	if req.Intl != nil {
		protocol.Intl = *req.Intl
	}
	if req.Notes != nil {
		protocol.Notes = *req.Notes
	}

	if creating {
		err = h.protocolRepo.Create(r.Context(), protocol)
	} else {
		err = h.protocolRepo.Update(r.Context(), protocol)
	}
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, protocol)
}
