package repositories

import (
	"context"

	"github.com/SKirov82/data-room-application-mvp/internal/domain/models"
)

// FolderRepository defines data access operations for folders.
// Every read and write is scoped by owner ID; a scope miss is
// indistinguishable from absence (both return ErrNotFound).
type FolderRepository interface {
	// Create inserts a new folder and fills in the generated ID and timestamps.
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder by ID within the owner's scope.
	GetByID(ctx context.Context, id, ownerID string) (*models.Folder, error)

	// Update persists name and parent changes.
	Update(ctx context.Context, folder *models.Folder) error

	// DeleteBatch removes a set of folders in one statement.
	DeleteBatch(ctx context.Context, ids []string, ownerID string) error

	// ListChildren returns one page of immediate child folders, ordered by
	// (created_at, id) ascending.
	ListChildren(ctx context.Context, parentID, ownerID string, limit, offset int) ([]models.Folder, error)

	// CountChildren returns the total number of immediate child folders.
	CountChildren(ctx context.Context, parentID, ownerID string) (int, error)

	// ListChildIDs returns the IDs of all immediate child folders.
	// Used by the cascade-delete worklist.
	ListChildIDs(ctx context.Context, parentID, ownerID string) ([]string, error)

	// ListRoots returns the owner's dataroom roots, oldest first.
	ListRoots(ctx context.Context, ownerID string) ([]models.Folder, error)

	// SearchByName returns folders whose name matches the ILIKE pattern.
	SearchByName(ctx context.Context, ownerID, pattern string, limit int) ([]models.Folder, error)
}
