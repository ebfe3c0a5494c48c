package services

import (
	"context"
	"io"

	"github.com/SKirov82/data-room-application-mvp/internal/domain/models"
)

// FileService handles file lifecycle: upload, download, rename, delete.
// Metadata is the user-visible contract; blob cleanup is best-effort.
type FileService interface {
	// Upload validates and stores the content, then records metadata.
	Upload(ctx context.Context, ownerID string, req *UploadRequest) (*models.File, error)

	// Get returns file metadata.
	Get(ctx context.Context, ownerID, fileID string) (*models.File, error)

	// Download returns metadata plus a stream of the stored bytes.
	// The caller must close the stream.
	Download(ctx context.Context, ownerID, fileID string) (*models.File, io.ReadCloser, error)

	// Rename changes the display name.
	Rename(ctx context.Context, ownerID, fileID, name string) (*models.File, error)

	// Delete removes the metadata record and best-effort deletes the blob.
	Delete(ctx context.Context, ownerID, fileID string) error
}

// UploadRequest carries one upload. Size must be the exact content
// length; the service rejects empty and oversized uploads before
// touching the content store.
type UploadRequest struct {
	FolderID string
	Name     string
	MimeType string
	Size     int64
	Content  io.Reader
}
