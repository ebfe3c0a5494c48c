package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SKirov82/data-room-application-mvp/internal/domain"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/models"
	"github.com/SKirov82/data-room-application-mvp/internal/domain/repositories"
)

// PostgresFileRepository implements the FileRepository interface
type PostgresFileRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFileRepository creates a new file repository
func NewFileRepository(config *RepositoryConfig) repositories.FileRepository {
	return &PostgresFileRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const fileColumns = "id, owner_id, folder_id, name, mime_type, size_bytes, content_key, created_at, updated_at"

func scanFile(row interface{ Scan(dest ...any) error }, file *models.File) error {
	return row.Scan(
		&file.ID,
		&file.OwnerID,
		&file.FolderID,
		&file.Name,
		&file.MimeType,
		&file.SizeBytes,
		&file.ContentKey,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
}

// Create inserts a new file record
func (r *PostgresFileRepository) Create(ctx context.Context, file *models.File) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (owner_id, folder_id, name, mime_type, size_bytes, content_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, r.tables.Files)

	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		file.OwnerID,
		file.FolderID,
		file.Name,
		file.MimeType,
		file.SizeBytes,
		file.ContentKey,
		file.CreatedAt,
		file.UpdatedAt,
	).Scan(&file.ID, &file.CreatedAt, &file.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	return nil
}

// GetByID retrieves a file by ID within the owner's scope
func (r *PostgresFileRepository) GetByID(ctx context.Context, id, ownerID string) (*models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND owner_id = $2
	`, fileColumns, r.tables.Files)

	var file models.File
	err := scanFile(GetExecutor(ctx, r.pool).QueryRow(ctx, query, id, ownerID), &file)
	if err != nil {
		if isPgNoRowsError(err) || isPgInvalidTextError(err) {
			return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get file: %w", err)
	}

	return &file, nil
}

// Update persists name changes
func (r *PostgresFileRepository) Update(ctx context.Context, file *models.File) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4
	`, r.tables.Files)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query,
		file.Name,
		file.UpdatedAt,
		file.ID,
		file.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update file: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("file %s: %w", file.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a single file record
func (r *PostgresFileRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Files)

	result, err := GetExecutor(ctx, r.pool).Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteBatch removes a set of file records in one statement. Unlike the
// folder batch it does not compare RowsAffected: the cascade collects
// file ids and deletes them in the same transaction, so a shortfall can
// only mean the row was already gone, which is the desired end state.
func (r *PostgresFileRepository) DeleteBatch(ctx context.Context, ids []string, ownerID string) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = ANY($1) AND owner_id = $2
	`, r.tables.Files)

	if _, err := GetExecutor(ctx, r.pool).Exec(ctx, query, ids, ownerID); err != nil {
		return fmt.Errorf("delete files: %w", err)
	}

	return nil
}

// ListByFolder returns one page of files ordered by (created_at, id)
func (r *PostgresFileRepository) ListByFolder(ctx context.Context, folderID, ownerID string, limit, offset int) ([]models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE folder_id = $1 AND owner_id = $2
		ORDER BY created_at ASC, id ASC
		LIMIT $3 OFFSET $4
	`, fileColumns, r.tables.Files)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, folderID, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		var file models.File
		if err := scanFile(rows, &file); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}

	return files, nil
}

// CountByFolder returns the total number of files in a folder
func (r *PostgresFileRepository) CountByFolder(ctx context.Context, folderID, ownerID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE folder_id = $1 AND owner_id = $2
	`, r.tables.Files)

	var count int
	if err := GetExecutor(ctx, r.pool).QueryRow(ctx, query, folderID, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count files: %w", err)
	}

	return count, nil
}

// ListByFolders returns every file contained in any of the given folders
func (r *PostgresFileRepository) ListByFolders(ctx context.Context, folderIDs []string, ownerID string) ([]models.File, error) {
	if len(folderIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE folder_id = ANY($1) AND owner_id = $2
	`, fileColumns, r.tables.Files)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, folderIDs, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list files by folders: %w", err)
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		var file models.File
		if err := scanFile(rows, &file); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}

	return files, nil
}

// SearchByName returns files whose name matches the ILIKE pattern
func (r *PostgresFileRepository) SearchByName(ctx context.Context, ownerID, pattern string, limit int) ([]models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE owner_id = $1 AND name ILIKE $2 ESCAPE '\'
		ORDER BY created_at ASC, id ASC
		LIMIT $3
	`, fileColumns, r.tables.Files)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, ownerID, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search files: %w", err)
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		var file models.File
		if err := scanFile(rows, &file); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}

	return files, nil
}
