package session

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "assistant_session"

	keyAccessToken = "access_token"
	keyExpiresAt   = "expires_at"
	keyState       = "state"
)

// Credential is the delegated Graph token held in the caller's
// session cookie together with its absolute expiry instant. There is
// no refresh: once expired, Graph rejects the token with a 401 and
// the user must re-authenticate interactively.
type Credential struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Expired reports whether the credential's expiry has passed.
func (c Credential) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Manager reads and writes the signed session cookie.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager creates a session manager signing cookies with the given
// secret. Lax same-site, non-secure cookies match the dev setup this
// serves.
func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Credential returns the stored token, or false when none is present.
func (m *Manager) Credential(r *http.Request) (Credential, bool) {
	s, _ := m.store.Get(r, sessionName)

	token, ok := s.Values[keyAccessToken].(string)
	if !ok || token == "" {
		return Credential{}, false
	}

	cred := Credential{AccessToken: token}
	if unix, ok := s.Values[keyExpiresAt].(int64); ok {
		cred.ExpiresAt = time.Unix(unix, 0)
	}
	return cred, true
}

// StoreCredential persists the token and its absolute expiry into the
// session cookie.
func (m *Manager) StoreCredential(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) error {
	s, _ := m.store.Get(r, sessionName)
	s.Values[keyAccessToken] = token
	s.Values[keyExpiresAt] = expiresAt.Unix()
	return s.Save(r, w)
}

// State returns the stored OAuth state nonce.
func (m *Manager) State(r *http.Request) string {
	s, _ := m.store.Get(r, sessionName)
	state, _ := s.Values[keyState].(string)
	return state
}

// SetState stores the OAuth state nonce for the consent round trip.
func (m *Manager) SetState(w http.ResponseWriter, r *http.Request, state string) error {
	s, _ := m.store.Get(r, sessionName)
	s.Values[keyState] = state
	return s.Save(r, w)
}
