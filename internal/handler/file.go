package handler

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/SKirov82/data-room-application-mvp/internal/config"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/services"
	"github.com/SKirov82/data-room-application-mvp/internal/httputil"
)

// FileHandler handles file HTTP requests
type FileHandler struct {
	fileService services.FileService
	logger      *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService services.FileService, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		logger:      logger,
	}
}

// Upload stores a new file from a multipart form (field "upload")
// POST /api/files?folder_id=...
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	folderID := r.URL.Query().Get("folder_id")
	if folderID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "missing folder_id query parameter")
		return
	}
	if _, err := uuid.Parse(folderID); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid folder ID")
		return
	}

	// Bound the whole request; the service re-checks the exact part size.
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes+(1<<20))

	part, header, err := r.FormFile("upload")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer part.Close()

	file, err := h.fileService.Upload(r.Context(), ownerID, &services.UploadRequest{
		FolderID: folderID,
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Content:  part,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, file)
}

// Get returns file metadata
// GET /api/files/{id}
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "file")
	if !ok {
		return
	}

	file, err := h.fileService.Get(r.Context(), ownerID, id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// Download streams the stored bytes with the display name as the
// suggested filename, never the opaque storage key
// GET /api/files/{id}/download
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "file")
	if !ok {
		return
	}

	file, content, err := h.fileService.Download(r.Context(), ownerID, id)
	if err != nil {
		handleError(w, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", file.MimeType)
	w.Header().Set("Content-Length", strconv.FormatInt(file.SizeBytes, 10))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": file.Name,
	}))

	if _, err := io.Copy(w, content); err != nil {
		// Headers are gone; all we can do is record it.
		h.logger.Warn("download stream interrupted",
			"file_id", file.ID,
			"error", fmt.Sprintf("%v", err),
		)
	}
}

// Rename changes a file's display name
// PATCH /api/files/{id}
func (h *FileHandler) Rename(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "file")
	if !ok {
		return
	}

	var req services.RenameRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	file, err := h.fileService.Rename(r.Context(), ownerID, id, req.Name)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// Delete removes a file and its stored content
// DELETE /api/files/{id}
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "file")
	if !ok {
		return
	}

	if err := h.fileService.Delete(r.Context(), ownerID, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
