package handlers

import (
	"errors"
	"net/http"

	"glutools-directory/internal/repository"

	"github.com/gorilla/mux"
)

// FileHandler records student uploads. Only metadata is kept; the file
// content is read for its size and type and then discarded.
type FileHandler struct {
	uploads     *repository.Uploads
	maxFileSize int64
}

func NewFileHandler(uploads *repository.Uploads, maxFileSize int64) *FileHandler {
	if maxFileSize <= 0 {
		maxFileSize = 10 * 1024 * 1024 // 10MB
	}
	return &FileHandler{
		uploads:     uploads,
		maxFileSize: maxFileSize,
	}
}

func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	// Leave room for the other form fields next to the file part.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+1<<20)

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, envelope{"error": "File is too large"})
			return
		}
		writeError(w, "create upload", &repository.ValidationError{Msg: "Missing required fields"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "create upload", &repository.ValidationError{Msg: "Missing required fields"})
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		writeJSON(w, http.StatusRequestEntityTooLarge, envelope{"error": "File is too large"})
		return
	}

	upload, err := h.uploads.Create(r.Context(), repository.UploadInput{
		ToolID:     r.FormValue("tool_id"),
		FileName:   header.Filename,
		FileType:   header.Header.Get("Content-Type"),
		FileSize:   header.Size,
		AuthorName: r.FormValue("author_name"),
	})
	if err != nil {
		writeError(w, "create upload", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"upload": upload})
}

func (h *FileHandler) ListForTool(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.uploads.ListByTool(r.Context(), mux.Vars(r)["toolId"])
	if err != nil {
		writeError(w, "fetch uploads", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"uploads": uploads})
}

func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.uploads.List(r.Context())
	if err != nil {
		writeError(w, "fetch uploads", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"uploads": uploads})
}

func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	if err := h.uploads.Delete(r.Context(), mux.Vars(r)["uploadId"]); err != nil {
		writeError(w, "delete upload", err)
		return
	}
	writeJSON(w, http.StatusOK, success())
}
