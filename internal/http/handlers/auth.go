package handlers

import (
	"context"
	"log"
	"net/http"

	"glutools-directory/internal/models"
	"glutools-directory/internal/security"
)

type callerKey struct{}

type AuthHandler struct {
	gate     *security.Gate
	sessions *security.SessionStore
}

func NewAuthHandler(gate *security.Gate, sessions *security.SessionStore) *AuthHandler {
	return &AuthHandler{
		gate:     gate,
		sessions: sessions,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "log in", err)
		return
	}

	admin, err := h.gate.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, "log in", err)
		return
	}

	if err := h.sessions.Login(w, r, admin.ID); err != nil {
		writeError(w, "log in", err)
		return
	}

	log.Printf("Admin %s logged in", admin.Email)
	writeJSON(w, http.StatusOK, envelope{"success": true, "admin": admin.Profile()})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		writeError(w, "log out", err)
		return
	}
	writeJSON(w, http.StatusOK, success())
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		writeError(w, "fetch current admin", security.ErrUnauthenticated)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"admin": caller.Profile()})
}

// RequireAdmin rejects requests without a session for an existing admin and
// passes the admin record on in the request context.
func (h *AuthHandler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := h.sessions.AdminID(r)

		caller, err := h.gate.Caller(r.Context(), id)
		if err != nil {
			writeError(w, "authenticate", err)
			return
		}

		ctx := context.WithValue(r.Context(), callerKey{}, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func CallerFromContext(ctx context.Context) (models.Admin, bool) {
	caller, ok := ctx.Value(callerKey{}).(models.Admin)
	return caller, ok
}
