package handler

import (
	"log/slog"
	"net/http"

	"github.com/SKirov82/data-room-application-mvp/internal/domain/services"
	"github.com/SKirov82/data-room-application-mvp/internal/httputil"
)

// DataroomHandler handles dataroom (root folder) HTTP requests
type DataroomHandler struct {
	treeService services.TreeService
	logger      *slog.Logger
}

// NewDataroomHandler creates a new dataroom handler
func NewDataroomHandler(treeService services.TreeService, logger *slog.Logger) *DataroomHandler {
	return &DataroomHandler{
		treeService: treeService,
		logger:      logger,
	}
}

// ListDatarooms lists the caller's dataroom roots
// GET /api/datarooms
func (h *DataroomHandler) ListDatarooms(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	rooms, err := h.treeService.ListDatarooms(r.Context(), ownerID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, rooms)
}

// CreateDataroom creates a new dataroom (an independent tree)
// POST /api/datarooms
func (h *DataroomHandler) CreateDataroom(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req services.CreateDataroomRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	room, err := h.treeService.CreateDataroom(r.Context(), ownerID, req.Name)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, room.Summary())
}
