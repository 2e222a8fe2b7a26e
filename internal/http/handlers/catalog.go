package handlers

import (
	"fmt"
	"net/http"

	"glutools-directory/internal/models"
	"glutools-directory/internal/repository"
	"glutools-directory/internal/search"

	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	subjects *repository.Subjects
	tools    *repository.Tools
	catalog  []models.AITool
}

// NewCatalogHandler serves subjects and tools. catalog is the fixed set of
// tools added by a bulk import.
func NewCatalogHandler(subjects *repository.Subjects, tools *repository.Tools, catalog []models.AITool) *CatalogHandler {
	return &CatalogHandler{
		subjects: subjects,
		tools:    tools,
		catalog:  catalog,
	}
}

func (h *CatalogHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.subjects.List(r.Context())
	if err != nil {
		writeError(w, "fetch subjects", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"subjects": subjects})
}

func (h *CatalogHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.tools.List(r.Context())
	if err != nil {
		writeError(w, "fetch AI tools", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"tools": tools})
}

func (h *CatalogHandler) ListToolsBySubject(w http.ResponseWriter, r *http.Request) {
	tools, err := h.tools.ListBySubject(r.Context(), mux.Vars(r)["subjectId"])
	if err != nil {
		writeError(w, "fetch AI tools", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"tools": tools})
}

func (h *CatalogHandler) CreateTool(w http.ResponseWriter, r *http.Request) {
	var req repository.ToolInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "create AI tool", err)
		return
	}

	tool, err := h.tools.Create(r.Context(), req)
	if err != nil {
		writeError(w, "create AI tool", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"tool": tool})
}

func (h *CatalogHandler) UpdateTool(w http.ResponseWriter, r *http.Request) {
	var req repository.ToolInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "update AI tool", err)
		return
	}

	tool, err := h.tools.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, "update AI tool", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"tool": tool})
}

func (h *CatalogHandler) DeleteTool(w http.ResponseWriter, r *http.Request) {
	if err := h.tools.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, "delete AI tool", err)
		return
	}
	writeJSON(w, http.StatusOK, success())
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	tools, err := h.tools.List(r.Context())
	if err != nil {
		writeError(w, "search AI tools", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"tools": search.Tools(tools, r.URL.Query().Get("q"))})
}

func (h *CatalogHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	added, total, err := h.tools.AppendMissing(r.Context(), h.catalog)
	if err != nil {
		writeError(w, "bulk import tools", err)
		return
	}

	if added == 0 {
		writeJSON(w, http.StatusOK, envelope{
			"message": "All tools already exist in database",
			"added":   0,
		})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": fmt.Sprintf("Successfully added %d new AI tools", added),
		"added":   added,
		"total":   total,
	})
}
