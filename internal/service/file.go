package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SKirov82/data-room-application-mvp/internal/config"
	"github.com/SKirov82/data-room-application-mvp/internal/domain"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/models"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/repositories"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/services"
)

type fileService struct {
	fileRepo   repositories.FileRepository
	folderRepo repositories.FolderRepository
	blobs      services.BlobStore
	pdfOnly    bool
	logger     *slog.Logger
}

// NewFileService creates the file lifecycle service. When pdfOnly is set
// uploads are restricted to application/pdf.
func NewFileService(
	fileRepo repositories.FileRepository,
	folderRepo repositories.FolderRepository,
	blobs services.BlobStore,
	pdfOnly bool,
	logger *slog.Logger,
) services.FileService {
	return &fileService{
		fileRepo:   fileRepo,
		folderRepo: folderRepo,
		blobs:      blobs,
		pdfOnly:    pdfOnly,
		logger:     logger,
	}
}

// Upload validates the upload, stores the blob, then records metadata.
// The blob goes first: if the metadata insert fails the worst case is an
// orphaned blob, never a metadata row pointing at nothing.
func (s *fileService) Upload(ctx context.Context, ownerID string, req *services.UploadRequest) (*models.File, error) {
	if req.FolderID == "" {
		return nil, fmt.Errorf("%w: folder_id is required", domain.ErrValidation)
	}
	if req.Size <= 0 {
		return nil, fmt.Errorf("%w: empty file not allowed", domain.ErrValidation)
	}
	if req.Size > config.MaxUploadBytes {
		return nil, fmt.Errorf("file of %d bytes exceeds limit: %w", req.Size, domain.ErrTooLarge)
	}
	if s.pdfOnly && req.MimeType != config.AllowedUploadMime {
		return nil, fmt.Errorf("%q: %w", req.MimeType, domain.ErrUnsupportedType)
	}

	// Destination folder must resolve within the caller's scope.
	folder, err := s.folderRepo.GetByID(ctx, req.FolderID, ownerID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Untitled"
	}
	if len(name) > config.MaxFileNameLength {
		return nil, fmt.Errorf("%w: name too long", domain.ErrValidation)
	}

	key, err := s.blobs.Put(ctx, req.Content, req.Size, req.MimeType)
	if err != nil {
		return nil, fmt.Errorf("store content: %w", err)
	}

	now := time.Now()
	file := &models.File{
		OwnerID:    ownerID,
		FolderID:   folder.ID,
		Name:       name,
		MimeType:   req.MimeType,
		SizeBytes:  req.Size,
		ContentKey: key,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		// Metadata failed; try not to leave the blob behind.
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.logger.Warn("orphaned blob after failed upload",
				"content_key", key,
				"error", delErr,
			)
		}
		return nil, err
	}

	s.logger.Info("file uploaded",
		"id", file.ID,
		"name", file.Name,
		"folder_id", folder.ID,
		"size_bytes", file.SizeBytes,
	)

	return file, nil
}

// Get returns file metadata
func (s *fileService) Get(ctx context.Context, ownerID, fileID string) (*models.File, error) {
	return s.fileRepo.GetByID(ctx, fileID, ownerID)
}

// Download returns metadata plus a stream of the stored bytes
func (s *fileService) Download(ctx context.Context, ownerID, fileID string) (*models.File, io.ReadCloser, error) {
	file, err := s.fileRepo.GetByID(ctx, fileID, ownerID)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.blobs.Get(ctx, file.ContentKey)
	if err != nil {
		if isNotFound(err) {
			// Metadata exists but the bytes are gone.
			return nil, nil, fmt.Errorf("file %s: %w", fileID, domain.ErrContentMissing)
		}
		return nil, nil, err
	}

	return file, content, nil
}

// Rename changes the display name
func (s *fileService) Rename(ctx context.Context, ownerID, fileID, name string) (*models.File, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	file, err := s.fileRepo.GetByID(ctx, fileID, ownerID)
	if err != nil {
		return nil, err
	}

	file.Name = name
	file.UpdatedAt = time.Now()

	if err := s.fileRepo.Update(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("file renamed", "id", file.ID, "name", file.Name)

	return file, nil
}

// Delete removes the metadata record, then best-effort deletes the blob.
// A blob delete failure is logged, not surfaced: the row is already gone
// and that is the contract users see.
func (s *fileService) Delete(ctx context.Context, ownerID, fileID string) error {
	file, err := s.fileRepo.GetByID(ctx, fileID, ownerID)
	if err != nil {
		return err
	}

	if err := s.fileRepo.Delete(ctx, fileID, ownerID); err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, file.ContentKey); err != nil {
		s.logger.Warn("blob delete failed",
			"file_id", fileID,
			"content_key", file.ContentKey,
			"error", err,
		)
	}

	s.logger.Info("file deleted", "id", fileID, "name", file.Name)

	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
