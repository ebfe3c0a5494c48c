package models

import (
	"time"
)

// Folder is a node in a dataroom tree. A folder with a nil ParentID is a
// dataroom root: it anchors an independent tree, cannot be renamed or
// deleted, and is what dataroom endpoints hand out.
type Folder struct {
	ID        string    `json:"id" db:"id"`
	OwnerID   string    `json:"-" db:"owner_id"`
	ParentID  *string   `json:"parent_id" db:"parent_id"` // NULL = dataroom root
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsRoot reports whether the folder is a dataroom root.
func (f *Folder) IsRoot() bool {
	return f.ParentID == nil
}

// Summary returns the compact representation used in breadcrumbs and
// child listings.
func (f *Folder) Summary() FolderSummary {
	return FolderSummary{
		ID:        f.ID,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
	}
}

// FolderSummary is the wire shape for a folder inside listings,
// breadcrumbs and search results.
type FolderSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// FolderContents is the folder listing response. Folders and files are
// paginated independently; totals cover the whole folder, not the page.
type FolderContents struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Breadcrumbs    []FolderSummary `json:"breadcrumbs"`
	Folders        []FolderSummary `json:"folders"`
	Files          []File          `json:"files"`
	TotalFolders   int             `json:"total_folders"`
	TotalFiles     int             `json:"total_files"`
	FolderPage     int             `json:"folder_page"`
	FolderPageSize int             `json:"folder_page_size"`
	FilePage       int             `json:"file_page"`
	FilePageSize   int             `json:"file_page_size"`
}
