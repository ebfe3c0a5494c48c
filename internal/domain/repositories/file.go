package repositories

import (
	"context"

	"github.com/SKirov82/data-room-application-mvp/internal/domain/models"
)

// FileRepository defines data access operations for file metadata.
// Blob bytes live in the content store; this layer only sees content keys.
type FileRepository interface {
	// Create inserts a new file record and fills in the generated ID and
	// timestamps.
	Create(ctx context.Context, file *models.File) error

	// GetByID retrieves a file by ID within the owner's scope.
	GetByID(ctx context.Context, id, ownerID string) (*models.File, error)

	// Update persists name changes.
	Update(ctx context.Context, file *models.File) error

	// Delete removes a single file record.
	Delete(ctx context.Context, id, ownerID string) error

	// DeleteBatch removes a set of file records in one statement.
	DeleteBatch(ctx context.Context, ids []string, ownerID string) error

	// ListByFolder returns one page of files in a folder, ordered by
	// (created_at, id) ascending.
	ListByFolder(ctx context.Context, folderID, ownerID string, limit, offset int) ([]models.File, error)

	// CountByFolder returns the total number of files in a folder.
	CountByFolder(ctx context.Context, folderID, ownerID string) (int, error)

	// ListByFolders returns every file contained in any of the given
	// folders. Used by the cascade delete to collect victims.
	ListByFolders(ctx context.Context, folderIDs []string, ownerID string) ([]models.File, error)

	// SearchByName returns files whose name matches the ILIKE pattern.
	SearchByName(ctx context.Context, ownerID, pattern string, limit int) ([]models.File, error)
}
