package services

import (
	"context"

	"github.com/SKirov82/data-room-application-mvp/internal/domain/models"
)

// TreeService is the hierarchical storage engine: it owns the tree
// invariants (single root per dataroom, no cycles, root immutability),
// breadcrumb resolution, cascade deletion and child pagination.
// It is stateless between calls; every traversal re-reads the repository.
type TreeService interface {
	// ListDatarooms returns the owner's dataroom roots.
	ListDatarooms(ctx context.Context, ownerID string) ([]models.FolderSummary, error)

	// CreateDataroom creates a new root folder (an independent tree).
	CreateDataroom(ctx context.Context, ownerID, name string) (*models.Folder, error)

	// ResolveRoot returns the root folder for a dataroom. With a nil
	// dataroomID it returns the owner's oldest root, lazily provisioning
	// a default dataroom if the owner has none.
	ResolveRoot(ctx context.Context, ownerID string, dataroomID *string) (*models.Folder, error)

	// CreateFolder creates a folder under an existing parent.
	CreateFolder(ctx context.Context, ownerID string, req *CreateFolderRequest) (*models.Folder, error)

	// RenameFolder renames a non-root folder.
	RenameFolder(ctx context.Context, ownerID, folderID, name string) (*models.Folder, error)

	// DeleteFolder removes a non-root folder and every descendant folder
	// and file, metadata atomically and blobs best-effort.
	DeleteFolder(ctx context.Context, ownerID, folderID string) error

	// ListChildren returns one page of child folders and one page of files,
	// paginated independently, plus breadcrumbs and full totals.
	ListChildren(ctx context.Context, ownerID, folderID string, folderPage, filePage PageParams) (*models.FolderContents, error)

	// Breadcrumbs returns the root-first path of folder summaries from the
	// dataroom root down to the given folder, both ends inclusive.
	Breadcrumbs(ctx context.Context, ownerID, folderID string) ([]models.FolderSummary, error)
}

// CreateFolderRequest is a folder creation request.
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

// RenameRequest is a folder or file rename request.
type RenameRequest struct {
	Name string `json:"name"`
}

// CreateDataroomRequest is a dataroom creation request.
type CreateDataroomRequest struct {
	Name string `json:"name"`
}

// PageParams selects one page of a child collection.
type PageParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
