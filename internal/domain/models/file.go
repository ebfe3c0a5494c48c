package models

import (
	"time"
)

// File is an uploaded document inside a folder. ContentKey is the opaque
// reference into the content store; it is generated at upload time and
// immutable afterwards, and never leaves the backend.
type File struct {
	ID         string    `json:"id" db:"id"`
	OwnerID    string    `json:"-" db:"owner_id"`
	FolderID   string    `json:"folder_id" db:"folder_id"`
	Name       string    `json:"name" db:"name"`
	MimeType   string    `json:"mime_type" db:"mime_type"`
	SizeBytes  int64     `json:"size_bytes" db:"size_bytes"`
	ContentKey string    `json:"-" db:"content_key"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// SearchResults holds name matches across a user's datarooms.
type SearchResults struct {
	Folders []FolderSummary `json:"folders"`
	Files   []File          `json:"files"`
}
