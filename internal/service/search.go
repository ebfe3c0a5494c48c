package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SKirov82/data-room-application-mvp/internal/config"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/models"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/repositories"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/services"
)

type searchService struct {
	folderRepo repositories.FolderRepository
	fileRepo   repositories.FileRepository
	logger     *slog.Logger
}

// NewSearchService creates the name search engine.
func NewSearchService(
	folderRepo repositories.FolderRepository,
	fileRepo repositories.FileRepository,
	logger *slog.Logger,
) services.SearchService {
	return &searchService{
		folderRepo: folderRepo,
		fileRepo:   fileRepo,
		logger:     logger,
	}
}

// Search runs a case-insensitive substring match on folder and file
// names across everything the owner can see. A blank query yields empty
// result sets rather than the entire tree.
func (s *searchService) Search(ctx context.Context, ownerID, query string) (*models.SearchResults, error) {
	results := &models.SearchResults{
		Folders: []models.FolderSummary{},
		Files:   []models.File{},
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return results, nil
	}

	pattern := "%" + escapeLike(query) + "%"

	folders, err := s.folderRepo.SearchByName(ctx, ownerID, pattern, config.MaxSearchResults)
	if err != nil {
		return nil, err
	}
	for i := range folders {
		results.Folders = append(results.Folders, folders[i].Summary())
	}

	files, err := s.fileRepo.SearchByName(ctx, ownerID, pattern, config.MaxSearchResults)
	if err != nil {
		return nil, err
	}
	results.Files = append(results.Files, files...)

	s.logger.Debug("search completed",
		"owner", ownerID,
		"folders", len(results.Folders),
		"files", len(results.Files),
	)

	return results, nil
}

// escapeLike neutralizes LIKE wildcards in user input so "100%" matches
// the literal string, not everything.
func escapeLike(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(q)
}
