package handlers

import (
	"net/http"

	"glutools-directory/internal/models"
	"glutools-directory/internal/repository"
	"glutools-directory/internal/security"

	"github.com/gorilla/mux"
)

// AdminHandler manages admin accounts. Every route runs behind
// AuthHandler.RequireAdmin, and the permission rules are checked against
// the caller's stored record.
type AdminHandler struct {
	admins *repository.Admins
	gate   *security.Gate
}

func NewAdminHandler(admins *repository.Admins, gate *security.Gate) *AdminHandler {
	return &AdminHandler{admins: admins, gate: gate}
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.admins.List(r.Context())
	if err != nil {
		writeError(w, "fetch admins", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"admins": models.Profiles(admins)})
}

func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		writeError(w, "create admin", security.ErrUnauthenticated)
		return
	}

	var req repository.AdminInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "create admin", err)
		return
	}

	admin, err := h.gate.CreateAdmin(r.Context(), caller, req)
	if err != nil {
		writeError(w, "create admin", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"admin": admin.Profile()})
}

func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		writeError(w, "update admin", security.ErrUnauthenticated)
		return
	}

	var req repository.AdminUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "update admin", err)
		return
	}

	admin, err := h.gate.UpdateAdmin(r.Context(), caller, mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, "update admin", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"admin": admin.Profile()})
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		writeError(w, "delete admin", security.ErrUnauthenticated)
		return
	}

	if err := h.gate.DeleteAdmin(r.Context(), caller, mux.Vars(r)["id"]); err != nil {
		writeError(w, "delete admin", err)
		return
	}
	writeJSON(w, http.StatusOK, success())
}
