package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"glutools-directory/internal/repository"
	"glutools-directory/internal/security"
)

type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps known error kinds to their status codes. Anything else is
// logged and reported as "Failed to <action>".
func writeError(w http.ResponseWriter, action string, err error) {
	var (
		verr      *repository.ValidationError
		nf        *repository.NotFoundError
		conflict  *repository.ConflictError
		forbidden *repository.ForbiddenError
	)

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, envelope{"error": verr.Error()})
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, envelope{"error": nf.Error()})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusBadRequest, envelope{"error": conflict.Error()})
	case errors.As(err, &forbidden):
		writeJSON(w, http.StatusForbidden, envelope{"error": forbidden.Error()})
	case errors.Is(err, security.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, envelope{"error": "Invalid credentials"})
	case errors.Is(err, security.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, envelope{"error": "Authentication required"})
	default:
		log.Printf("Error trying to %s: %v", action, err)
		writeJSON(w, http.StatusInternalServerError, envelope{"error": "Failed to " + action})
	}
}

// decodeJSON reads the request body into dst. Malformed bodies are
// validation errors.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var verr *repository.ValidationError
		if errors.As(err, &verr) {
			return verr
		}
		return &repository.ValidationError{Msg: "Invalid request body"}
	}
	return nil
}

func success() envelope {
	return envelope{"success": true}
}
