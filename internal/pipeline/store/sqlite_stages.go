package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"talentdeck/internal/pipeline/models"
)

// SQLiteStages persists pipeline stages in sqlite. Seeding runs inside a
// transaction with an in-transaction recount, so the insert-if-absent is safe
// under concurrent first-time callers.
type SQLiteStages struct {
	db *sql.DB
}

// NewSQLiteStages wraps an existing database handle and initializes the schema.
func NewSQLiteStages(db *sql.DB) (*SQLiteStages, error) {
	s := &SQLiteStages{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStages) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS pipeline_stages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			workspace_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			stage_type TEXT NOT NULL,
			position INTEGER NOT NULL,
			win_probability REAL NOT NULL DEFAULT 0,
			UNIQUE(workspace_id, position)
		)`)
	if err != nil {
		return fmt.Errorf("init pipeline_stages schema: %w", err)
	}
	return nil
}

// ListStages returns the workspace's stages ordered by position.
func (s *SQLiteStages) ListStages(ctx context.Context, workspaceID int64) ([]*models.PipelineStage, error) {
	query := `
		SELECT id, workspace_id, name, stage_type, position, win_probability
		FROM pipeline_stages
		WHERE workspace_id = ?
		ORDER BY position ASC
	`
	rows, err := s.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()

	var out []*models.PipelineStage
	for rows.Next() {
		var st models.PipelineStage
		if err := rows.Scan(&st.ID, &st.WorkspaceID, &st.Name, &st.StageType, &st.Position, &st.WinProbability); err != nil {
			return nil, fmt.Errorf("scan stage: %w", err)
		}
		out = append(out, &st)
	}
	return out, rows.Err()
}

// SeedDefaults creates the fixed six-stage set for a workspace with no stages.
// The count is re-checked inside the transaction before inserting.
func (s *SQLiteStages) SeedDefaults(ctx context.Context, workspaceID int64) ([]*models.PipelineStage, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pipeline_stages WHERE workspace_id = ?`, workspaceID,
	).Scan(&count); err != nil {
		return nil, fmt.Errorf("recount stages: %w", err)
	}
	if count == 0 {
		for _, seed := range models.DefaultStages {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO pipeline_stages (workspace_id, name, stage_type, position, win_probability)
				VALUES (?, ?, ?, ?, ?)`,
				workspaceID, seed.Name, seed.StageType, seed.Position, seed.WinProbability,
			)
			if err != nil {
				return nil, fmt.Errorf("seed stage %q: %w", seed.Name, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit seed tx: %w", err)
	}

	return s.ListStages(ctx, workspaceID)
}
