package security

import (
	"crypto/rand"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName  = "directory_session"
	adminIDValue = "admin_id"
)

// SessionStore keeps the logged-in admin id in a signed cookie.
type SessionStore struct {
	store *sessions.CookieStore
}

// NewSessionStore signs cookies with secret. An empty secret gets a random
// key, which invalidates every session on restart.
func NewSessionStore(secret []byte, secure bool) *SessionStore {
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			panic(err)
		}
	}

	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: store}
}

func (s *SessionStore) Login(w http.ResponseWriter, r *http.Request, adminID string) error {
	// A stale or tampered cookie still yields a fresh session to write into.
	session, _ := s.store.Get(r, sessionName)
	session.Values[adminIDValue] = adminID
	return session.Save(r, w)
}

// AdminID returns the admin id stored in the request's session cookie.
func (s *SessionStore) AdminID(r *http.Request) (string, bool) {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return "", false
	}
	id, ok := session.Values[adminIDValue].(string)
	return id, ok && id != ""
}

func (s *SessionStore) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, sessionName)
	delete(session.Values, adminIDValue)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
