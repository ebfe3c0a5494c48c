package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/SKirov82/data-room-application-mvp/internal/config"
	"github.com/SKirov82/data-room-application-mvp/internal/domain"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/models"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/repositories"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/services"
)

type treeService struct {
	folderRepo repositories.FolderRepository
	fileRepo   repositories.FileRepository
	blobs      services.BlobStore
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewTreeService creates the tree engine. It holds no tree state of its
// own; every call re-reads the repository so concurrent mutation is
// never observed through a stale cache.
func NewTreeService(
	folderRepo repositories.FolderRepository,
	fileRepo repositories.FileRepository,
	blobs services.BlobStore,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.TreeService {
	return &treeService{
		folderRepo: folderRepo,
		fileRepo:   fileRepo,
		blobs:      blobs,
		txManager:  txManager,
		logger:     logger,
	}
}

// ListDatarooms returns the owner's dataroom roots
func (s *treeService) ListDatarooms(ctx context.Context, ownerID string) ([]models.FolderSummary, error) {
	roots, err := s.folderRepo.ListRoots(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.FolderSummary, 0, len(roots))
	for i := range roots {
		summaries = append(summaries, roots[i].Summary())
	}

	return summaries, nil
}

// CreateDataroom creates a new root folder anchoring an independent tree
func (s *treeService) CreateDataroom(ctx context.Context, ownerID, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	root := &models.Folder{
		OwnerID:   ownerID,
		ParentID:  nil,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.folderRepo.Create(ctx, root); err != nil {
		return nil, err
	}

	s.logger.Info("dataroom created", "id", root.ID, "name", root.Name, "owner", ownerID)

	return root, nil
}

// ResolveRoot returns the root folder for a dataroom. With a nil
// dataroomID it falls back to the owner's oldest root, provisioning a
// default dataroom on first contact so callers never see a rootless tree.
func (s *treeService) ResolveRoot(ctx context.Context, ownerID string, dataroomID *string) (*models.Folder, error) {
	if dataroomID != nil {
		root, err := s.folderRepo.GetByID(ctx, *dataroomID, ownerID)
		if err != nil {
			return nil, err
		}
		if !root.IsRoot() {
			// Not a dataroom; indistinguishable from absence.
			return nil, fmt.Errorf("dataroom %s: %w", *dataroomID, domain.ErrNotFound)
		}
		return root, nil
	}

	roots, err := s.folderRepo.ListRoots(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(roots) > 0 {
		return &roots[0], nil
	}

	// Two concurrent first contacts can both reach this insert and each
	// provision a root. Every later resolve picks the oldest, so the
	// answer stays stable; the extra room remains listed and deletable
	// like any other dataroom.
	root, err := s.CreateDataroom(ctx, ownerID, config.DefaultDataroomName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("default dataroom provisioned", "id", root.ID, "owner", ownerID)

	return root, nil
}

// CreateFolder creates a folder under an existing parent
func (s *treeService) CreateFolder(ctx context.Context, ownerID string, req *services.CreateFolderRequest) (*models.Folder, error) {
	if req.ParentID == nil || *req.ParentID == "" {
		return nil, fmt.Errorf("%w: parent_id is required", domain.ErrValidation)
	}

	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Parent must resolve within the caller's scope.
	parent, err := s.folderRepo.GetByID(ctx, *req.ParentID, ownerID)
	if err != nil {
		return nil, err
	}

	// Sibling name duplicates are allowed: each folder is a flat
	// namespace keyed by id, not by name.
	now := time.Now()
	folder := &models.Folder{
		OwnerID:   ownerID,
		ParentID:  &parent.ID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", parent.ID,
		"owner", ownerID,
	)

	return folder, nil
}

// RenameFolder renames a non-root folder
func (s *treeService) RenameFolder(ctx context.Context, ownerID, folderID, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	folder, err := s.folderRepo.GetByID(ctx, folderID, ownerID)
	if err != nil {
		return nil, err
	}
	if folder.IsRoot() {
		return nil, fmt.Errorf("dataroom root cannot be renamed: %w", domain.ErrForbidden)
	}

	folder.Name = name
	folder.UpdatedAt = time.Now()

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed", "id", folder.ID, "name", folder.Name)

	return folder, nil
}

// DeleteFolder removes a non-root folder and everything beneath it.
// All metadata rows go in one transaction; blobs are deleted afterwards,
// best-effort, because metadata consistency is the user-visible contract.
func (s *treeService) DeleteFolder(ctx context.Context, ownerID, folderID string) error {
	folder, err := s.folderRepo.GetByID(ctx, folderID, ownerID)
	if err != nil {
		return err
	}
	if folder.IsRoot() {
		return fmt.Errorf("dataroom root cannot be deleted: %w", domain.ErrForbidden)
	}

	var orphanKeys []string
	var folderCount, fileCount int

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		// Worklist traversal instead of recursion: collect the whole
		// subtree before deleting anything, guarded against cycles.
		subtree := []string{folderID}
		seen := map[string]bool{folderID: true}
		for i := 0; i < len(subtree); i++ {
			children, err := s.folderRepo.ListChildIDs(txCtx, subtree[i], ownerID)
			if err != nil {
				return err
			}
			for _, child := range children {
				if seen[child] {
					return fmt.Errorf("folder %s reachable twice: %w", child, domain.ErrInvariant)
				}
				seen[child] = true
				subtree = append(subtree, child)
			}
		}

		files, err := s.fileRepo.ListByFolders(txCtx, subtree, ownerID)
		if err != nil {
			return err
		}

		fileIDs := make([]string, 0, len(files))
		keys := make([]string, 0, len(files))
		for i := range files {
			fileIDs = append(fileIDs, files[i].ID)
			keys = append(keys, files[i].ContentKey)
		}

		// Files first so no row ever references a deleted folder.
		if err := s.fileRepo.DeleteBatch(txCtx, fileIDs, ownerID); err != nil {
			return err
		}
		if err := s.folderRepo.DeleteBatch(txCtx, subtree, ownerID); err != nil {
			return err
		}

		orphanKeys = keys
		folderCount = len(subtree)
		fileCount = len(fileIDs)
		return nil
	})
	if err != nil {
		return err
	}

	// Metadata is committed; blob cleanup failures only leave orphaned
	// blobs, which a reconciliation sweep can pick up later.
	for _, key := range orphanKeys {
		if err := s.blobs.Delete(ctx, key); err != nil {
			s.logger.Warn("blob delete failed during cascade",
				"content_key", key,
				"error", err,
			)
		}
	}

	s.logger.Info("folder deleted",
		"id", folderID,
		"folders_removed", folderCount,
		"files_removed", fileCount,
	)

	return nil
}

// ListChildren returns one page of child folders and one page of files,
// with breadcrumbs and full totals so callers can render "N of M".
func (s *treeService) ListChildren(ctx context.Context, ownerID, folderID string, folderPage, filePage services.PageParams) (*models.FolderContents, error) {
	folder, err := s.folderRepo.GetByID(ctx, folderID, ownerID)
	if err != nil {
		return nil, err
	}

	folderPage = clampPageParams(folderPage)
	filePage = clampPageParams(filePage)

	breadcrumbs, err := s.breadcrumbsFor(ctx, ownerID, folder)
	if err != nil {
		return nil, err
	}

	totalFolders, err := s.folderRepo.CountChildren(ctx, folder.ID, ownerID)
	if err != nil {
		return nil, err
	}
	totalFiles, err := s.fileRepo.CountByFolder(ctx, folder.ID, ownerID)
	if err != nil {
		return nil, err
	}

	childFolders, err := s.folderRepo.ListChildren(ctx, folder.ID, ownerID, folderPage.PageSize, folderPage.Offset())
	if err != nil {
		return nil, err
	}
	files, err := s.fileRepo.ListByFolder(ctx, folder.ID, ownerID, filePage.PageSize, filePage.Offset())
	if err != nil {
		return nil, err
	}

	folderSummaries := make([]models.FolderSummary, 0, len(childFolders))
	for i := range childFolders {
		folderSummaries = append(folderSummaries, childFolders[i].Summary())
	}
	if files == nil {
		files = []models.File{}
	}

	return &models.FolderContents{
		ID:             folder.ID,
		Name:           folder.Name,
		Breadcrumbs:    breadcrumbs,
		Folders:        folderSummaries,
		Files:          files,
		TotalFolders:   totalFolders,
		TotalFiles:     totalFiles,
		FolderPage:     folderPage.Page,
		FolderPageSize: folderPage.PageSize,
		FilePage:       filePage.Page,
		FilePageSize:   filePage.PageSize,
	}, nil
}

// Breadcrumbs returns the root-first path from the dataroom root down to
// the given folder
func (s *treeService) Breadcrumbs(ctx context.Context, ownerID, folderID string) ([]models.FolderSummary, error) {
	folder, err := s.folderRepo.GetByID(ctx, folderID, ownerID)
	if err != nil {
		return nil, err
	}
	return s.breadcrumbsFor(ctx, ownerID, folder)
}

// breadcrumbsFor walks parent references up to the root and reverses.
// Cost is O(depth). A reappearing folder id means the parent chain is
// cyclic, which is corrupted state, not a user error.
func (s *treeService) breadcrumbsFor(ctx context.Context, ownerID string, folder *models.Folder) ([]models.FolderSummary, error) {
	crumbs := []models.FolderSummary{folder.Summary()}
	seen := map[string]bool{folder.ID: true}

	current := folder
	for current.ParentID != nil {
		parent, err := s.folderRepo.GetByID(ctx, *current.ParentID, ownerID)
		if err != nil {
			return nil, err
		}
		if seen[parent.ID] {
			return nil, fmt.Errorf("cyclic parent chain at folder %s: %w", parent.ID, domain.ErrInvariant)
		}
		seen[parent.ID] = true
		crumbs = append(crumbs, parent.Summary())
		current = parent
	}

	// Walked leaf-to-root; callers want root-first.
	for i, j := 0, len(crumbs)-1; i < j; i, j = i+1, j-1 {
		crumbs[i], crumbs[j] = crumbs[j], crumbs[i]
	}

	return crumbs, nil
}

// validateName rejects blank and oversized names.
func validateName(name string) error {
	return validation.Validate(name,
		validation.Required.Error("name must not be blank"),
		validation.Length(1, config.MaxFolderNameLength),
	)
}

// clampPageParams applies defaults and bounds so a single listing
// response stays bounded no matter what the caller sends.
func clampPageParams(p services.PageParams) services.PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = config.DefaultPageSize
	}
	if p.PageSize < config.MinPageSize {
		p.PageSize = config.MinPageSize
	}
	if p.PageSize > config.MaxPageSize {
		p.PageSize = config.MaxPageSize
	}
	return p
}
