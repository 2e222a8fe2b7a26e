package handlers

import (
	"net/http"

	"glutools-directory/internal/repository"

	"github.com/gorilla/mux"
)

type ReviewHandler struct {
	reviews *repository.Reviews
}

func NewReviewHandler(reviews *repository.Reviews) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) ListForTool(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListByTool(r.Context(), mux.Vars(r)["toolId"])
	if err != nil {
		writeError(w, "fetch reviews", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"reviews": reviews})
}

func (h *ReviewHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.List(r.Context())
	if err != nil {
		writeError(w, "fetch reviews", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"reviews": reviews})
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req repository.ReviewInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "create review", err)
		return
	}

	review, err := h.reviews.Create(r.Context(), req)
	if err != nil {
		writeError(w, "create review", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"review": review})
}

func (h *ReviewHandler) MarkHelpful(w http.ResponseWriter, r *http.Request) {
	if _, err := h.reviews.MarkHelpful(r.Context(), mux.Vars(r)["reviewId"]); err != nil {
		writeError(w, "mark review as helpful", err)
		return
	}
	writeJSON(w, http.StatusOK, success())
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reviews.Delete(r.Context(), mux.Vars(r)["reviewId"]); err != nil {
		writeError(w, "delete review", err)
		return
	}
	writeJSON(w, http.StatusOK, success())
}
