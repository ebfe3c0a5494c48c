package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the dataroom tables if they do not exist yet.
// Run at startup so a fresh database is immediately usable.
//
// Referential integrity notes:
//   - folders.parent_id references folders(id) without ON DELETE CASCADE;
//     the tree engine performs cascade deletion itself inside one
//     transaction, so a dangling child would fail the statement instead
//     of silently disappearing.
//   - files.folder_id is NOT NULL: a file always lives in a folder.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	stmts := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
				owner_id text NOT NULL,
				parent_id uuid REFERENCES %s(id),
				name text NOT NULL,
				created_at timestamptz NOT NULL DEFAULT now(),
				updated_at timestamptz NOT NULL DEFAULT now()
			)`, tables.Folders, tables.Folders),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_parent_idx
				ON %s (owner_id, parent_id, created_at, id)`,
			tables.Folders, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
				owner_id text NOT NULL,
				folder_id uuid NOT NULL REFERENCES %s(id),
				name text NOT NULL,
				mime_type text NOT NULL,
				size_bytes bigint NOT NULL,
				content_key text NOT NULL UNIQUE,
				created_at timestamptz NOT NULL DEFAULT now(),
				updated_at timestamptz NOT NULL DEFAULT now()
			)`, tables.Files, tables.Folders),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_folder_idx
				ON %s (owner_id, folder_id, created_at, id)`,
			tables.Files, tables.Files),
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
