package handlers

import (
	"net/http"

	"glutools-directory/internal/repository"
)

type ContactHandler struct {
	contacts *repository.Contacts
}

func NewContactHandler(contacts *repository.Contacts) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req repository.ContactInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "submit contact form", err)
		return
	}

	if _, err := h.contacts.Create(r.Context(), req); err != nil {
		writeError(w, "submit contact form", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Contact form submitted successfully",
	})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.contacts.List(r.Context())
	if err != nil {
		writeError(w, "fetch contact submissions", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"submissions": submissions})
}
