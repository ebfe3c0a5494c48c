package services

import (
	"context"

	"github.com/SKirov82/data-room-application-mvp/internal/domain/models"
)

// SearchService finds folders and files by name across everything the
// owner can see. Blank queries return empty result sets.
type SearchService interface {
	Search(ctx context.Context, ownerID, query string) (*models.SearchResults, error)
}
