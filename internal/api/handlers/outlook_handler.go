package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/simonindia/office-assistant/internal/api/session"
	"github.com/simonindia/office-assistant/internal/domain/providers"
)

// OutlookHandler drives the delegated OAuth flow and proxies calendar
// and mail reads with the caller's session token.
type OutlookHandler struct {
	sessions *session.Manager
	oauth    *oauth2.Config
	mail     providers.MailProvider
	location *time.Location
}

// NewOutlookHandler creates a new outlook handler
func NewOutlookHandler(sessions *session.Manager, oauth *oauth2.Config, mail providers.MailProvider, location *time.Location) *OutlookHandler {
	return &OutlookHandler{
		sessions: sessions,
		oauth:    oauth,
		mail:     mail,
		location: location,
	}
}

// token returns the caller's delegated token, or "" when none is
// stored or it has expired. The provider client turns "" into a 401
// without a network call.
func (h *OutlookHandler) token(r *http.Request) string {
	cred, ok := h.sessions.Credential(r)
	if !ok || cred.Expired(time.Now()) {
		return ""
	}
	return cred.AccessToken
}

// Auth handles GET /api/outlook/auth: stores a state nonce in the
// session and redirects to the identity provider's consent page.
func (h *OutlookHandler) Auth(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	if err := h.sessions.SetState(w, r, state); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to start authentication")
		return
	}
	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusFound)
}

// Callback handles GET /api/outlook/callback: validates the state
// nonce, exchanges the code and stores the token in the session.
func (h *OutlookHandler) Callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("state") != h.sessions.State(r) {
		respondWithError(w, http.StatusBadRequest, "State does not match.")
		return
	}
	if errParam := query.Get("error"); errParam != "" {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Error: %s", errParam))
		return
	}
	code := query.Get("code")
	if code == "" {
		respondWithError(w, http.StatusBadRequest, "Authentication failed.")
		return
	}

	token, err := h.oauth.Exchange(r.Context(), code)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Authentication failed. %v", err))
		return
	}
	if err := h.sessions.StoreCredential(w, r, token.AccessToken, token.Expiry); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to store credential")
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Status handles GET /api/outlook/status
func (h *OutlookHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]bool{"connected": h.token(r) != ""})
}

// Events handles GET /api/outlook/events?date=&hours=. A non-empty
// hours parameter wins over the date.
func (h *OutlookHandler) Events(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	window, err := providers.WindowFromQuery(query.Get("date"), query.Get("hours"), time.Now(), h.location)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid date")
		return
	}

	payload, err := h.mail.ListEvents(r.Context(), h.token(r), window)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithRawJSON(w, http.StatusOK, payload)
}

// Mails handles GET /api/outlook/mails: the ten newest messages.
func (h *OutlookHandler) Mails(w http.ResponseWriter, r *http.Request) {
	payload, err := h.mail.ListMail(r.Context(), h.token(r))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithRawJSON(w, http.StatusOK, payload)
}

// Message handles GET /api/outlook/message?id=: one full message.
func (h *OutlookHandler) Message(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing id")
		return
	}

	payload, err := h.mail.GetMessage(r.Context(), h.token(r), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithRawJSON(w, http.StatusOK, payload)
}
