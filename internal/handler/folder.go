package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/SKirov82/data-room-application-mvp/internal/domain/services"
	"github.com/SKirov82/data-room-application-mvp/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	treeService services.TreeService
	logger      *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(treeService services.TreeService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		treeService: treeService,
		logger:      logger,
	}
}

// GetRoot resolves the root folder of a dataroom. Without a dataroom_id
// it falls back to the caller's oldest dataroom, provisioning a default
// one on first contact.
// GET /api/folders/root?dataroom_id=...
func (h *FolderHandler) GetRoot(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var dataroomID *string
	if id := r.URL.Query().Get("dataroom_id"); id != "" {
		if _, err := uuid.Parse(id); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "invalid dataroom ID")
			return
		}
		dataroomID = &id
	}

	root, err := h.treeService.ResolveRoot(r.Context(), ownerID, dataroomID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, root.Summary())
}

// GetContents lists one page of child folders and one page of files
// GET /api/folders/{id}/contents
func (h *FolderHandler) GetContents(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "folder")
	if !ok {
		return
	}

	folderPage, err := parsePageParams(r, "folder")
	if err != nil {
		handleError(w, err)
		return
	}
	filePage, err := parsePageParams(r, "file")
	if err != nil {
		handleError(w, err)
		return
	}

	contents, err := h.treeService.ListChildren(r.Context(), ownerID, id, folderPage, filePage)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, contents)
}

// CreateFolder creates a new folder under an existing parent
// POST /api/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req services.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	folder, err := h.treeService.CreateFolder(r.Context(), ownerID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder.Summary())
}

// RenameFolder renames a non-root folder
// PATCH /api/folders/{id}
func (h *FolderHandler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "folder")
	if !ok {
		return
	}

	var req services.RenameRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	folder, err := h.treeService.RenameFolder(r.Context(), ownerID, id, req.Name)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder.Summary())
}

// DeleteFolder cascade-deletes a non-root folder
// DELETE /api/folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "folder")
	if !ok {
		return
	}

	if err := h.treeService.DeleteFolder(r.Context(), ownerID, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
