package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/SKirov82/data-room-application-mvp/internal/domain"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/services"
)

// parsePageParams reads pagination for one collection from the query
// string. Collection-specific parameters (folder_page, file_page_size,
// ...) win over the shared page/page_size fallbacks. Zero values mean
// "caller didn't say"; the tree engine applies defaults and clamps.
// Non-numeric input is a validation error, not a silent default.
func parsePageParams(r *http.Request, collection string) (services.PageParams, error) {
	var p services.PageParams

	page, err := intQueryParam(r, collection+"_page", "page")
	if err != nil {
		return p, err
	}
	size, err := intQueryParam(r, collection+"_page_size", "page_size")
	if err != nil {
		return p, err
	}

	p.Page = page
	p.PageSize = size
	return p, nil
}

// intQueryParam returns the first present query parameter of the given
// names parsed as an int, or 0 when none is set.
func intQueryParam(r *http.Request, names ...string) (int, error) {
	for _, name := range names {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
		}
		return v, nil
	}
	return 0, nil
}
