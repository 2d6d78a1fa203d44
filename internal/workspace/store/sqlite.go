package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"talentdeck/internal/sentinel"
	"talentdeck/internal/workspace/models"
)

// SQLite persists workspaces in an embedded sqlite database via database/sql.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and initializes) a sqlite-backed workspace store.
// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
func OpenSQLite(path string) (*SQLite, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite typically wants a single writer
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	s := &SQLite{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLite wraps an existing database handle.
func NewSQLite(db *sql.DB) (*SQLite, error) {
	s := &SQLite{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLite) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS workspaces (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL,
			type TEXT NOT NULL,
			timezone TEXT NOT NULL DEFAULT 'UTC',
			default_currency TEXT NOT NULL DEFAULT 'USD',
			intake_email TEXT NOT NULL DEFAULT '',
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("init workspaces schema: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle so sibling stores can share one database.
func (s *SQLite) DB() *sql.DB {
	return s.db
}

// Save inserts or replaces a workspace row.
func (s *SQLite) Save(ctx context.Context, w *models.Workspace) error {
	query := `
		INSERT INTO workspaces (id, name, slug, type, timezone, default_currency, intake_email, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, slug = excluded.slug, type = excluded.type,
			timezone = excluded.timezone, default_currency = excluded.default_currency,
			intake_email = excluded.intake_email, is_active = excluded.is_active,
			updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		w.ID, w.Name, w.Slug, w.Type, w.Timezone, w.DefaultCurrency,
		w.IntakeEmail, boolToInt(w.IsActive), w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save workspace: %w", err)
	}
	return nil
}

const workspaceColumns = `id, name, slug, type, timezone, default_currency, intake_email, is_active, created_at, updated_at`

// FindByID retrieves a workspace by id.
func (s *SQLite) FindByID(ctx context.Context, id int64) (*models.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE id = ?`
	w, err := scanWorkspace(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find workspace: %w", err)
	}
	return w, nil
}

// FindCurrent returns the most-recently-updated active agency/recruiter workspace.
func (s *SQLite) FindCurrent(ctx context.Context) (*models.Workspace, error) {
	query := `
		SELECT ` + workspaceColumns + `
		FROM workspaces
		WHERE is_active = 1 AND type IN (?, ?)
		ORDER BY updated_at DESC, id ASC
		LIMIT 1
	`
	w, err := scanWorkspace(s.db.QueryRowContext(ctx, query, models.TypeAgency, models.TypeRecruiter))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find current workspace: %w", err)
	}
	return w, nil
}

// ListEligible returns active agency/recruiter workspaces, most recently updated first.
func (s *SQLite) ListEligible(ctx context.Context) ([]*models.Workspace, error) {
	query := `
		SELECT ` + workspaceColumns + `
		FROM workspaces
		WHERE is_active = 1 AND type IN (?, ?)
		ORDER BY updated_at DESC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, models.TypeAgency, models.TypeRecruiter)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	var out []*models.Workspace
	for rows.Next() {
		w, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkspace(row rowScanner) (*models.Workspace, error) {
	var w models.Workspace
	var active int
	err := row.Scan(&w.ID, &w.Name, &w.Slug, &w.Type, &w.Timezone,
		&w.DefaultCurrency, &w.IntakeEmail, &active, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	w.IsActive = active != 0
	return &w, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
