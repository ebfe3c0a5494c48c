package handler

import (
	"log/slog"
	"net/http"

	"github.com/SKirov82/data-room-application-mvp/internal/domain/services"
	"github.com/SKirov82/data-room-application-mvp/internal/httputil"
)

// SearchHandler handles name search HTTP requests
type SearchHandler struct {
	searchService services.SearchService
	logger        *slog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService services.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Search finds folders and files by name substring
// GET /api/search?q=...
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	results, err := h.searchService.Search(r.Context(), ownerID, r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, results)
}
