package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/parallax-labs/meetlens/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// override and analysis store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.meetlens/data/meetlens.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".meetlens", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "meetlens.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// OverrideStore returns an OverrideStore interface backed by this store.
func (s *Store) OverrideStore() driven.OverrideStore {
	return &overrideStore{store: s}
}

// AnalysisStore returns an AnalysisStore interface backed by this store.
func (s *Store) AnalysisStore() driven.AnalysisStore {
	return &analysisStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Override Store ====================

// overrideStore implements driven.OverrideStore.
type overrideStore struct {
	store *Store
}

var _ driven.OverrideStore = (*overrideStore)(nil)

// Get retrieves the override for a meeting.
func (s *overrideStore) Get(ctx context.Context, meetingID string) (*domain.OverrideSetting, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT meeting_id, is_portfolio_relevant, description, updated_at
		FROM overrides WHERE meeting_id = ?
	`, meetingID)

	var setting domain.OverrideSetting
	var relevant int
	var updatedAt sql.NullTime
	if err := row.Scan(&setting.MeetingID, &relevant, &setting.Description, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning override: %w", err)
	}

	setting.IsPortfolioRelevant = relevant != 0
	if updatedAt.Valid {
		setting.UpdatedAt = updatedAt.Time
	}

	return &setting, nil
}

// Put stores or replaces the override for a meeting.
func (s *overrideStore) Put(ctx context.Context, setting domain.OverrideSetting) error {
	if setting.MeetingID == "" {
		return domain.ErrInvalidInput
	}

	if setting.UpdatedAt.IsZero() {
		setting.UpdatedAt = time.Now().UTC()
	}

	relevant := 0
	if setting.IsPortfolioRelevant {
		relevant = 1
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO overrides (meeting_id, is_portfolio_relevant, description, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(meeting_id) DO UPDATE SET
			is_portfolio_relevant = excluded.is_portfolio_relevant,
			description = excluded.description,
			updated_at = excluded.updated_at
	`, setting.MeetingID, relevant, setting.Description, setting.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving override: %w", err)
	}
	return nil
}

// List returns all persisted overrides.
func (s *overrideStore) List(ctx context.Context) ([]domain.OverrideSetting, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT meeting_id, is_portfolio_relevant, description, updated_at
		FROM overrides ORDER BY meeting_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying overrides: %w", err)
	}
	defer rows.Close()

	var settings []domain.OverrideSetting //nolint:prealloc // size unknown from query
	for rows.Next() {
		var setting domain.OverrideSetting
		var relevant int
		var updatedAt sql.NullTime
		if err := rows.Scan(&setting.MeetingID, &relevant, &setting.Description, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning override: %w", err)
		}
		setting.IsPortfolioRelevant = relevant != 0
		if updatedAt.Valid {
			setting.UpdatedAt = updatedAt.Time
		}
		settings = append(settings, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating overrides: %w", err)
	}

	return settings, nil
}

// ==================== Analysis Store ====================

// analysisStore implements driven.AnalysisStore.
type analysisStore struct {
	store *Store
}

var _ driven.AnalysisStore = (*analysisStore)(nil)

// Get retrieves the cached insights for a meeting.
func (s *analysisStore) Get(ctx context.Context, meetingID string) (*domain.MeetingInsights, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT insights FROM analyses WHERE meeting_id = ?
	`, meetingID)

	var insightsJSON string
	if err := row.Scan(&insightsJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}

	var insights domain.MeetingInsights
	if err := json.Unmarshal([]byte(insightsJSON), &insights); err != nil {
		return nil, fmt.Errorf("analysis for %s: %w: %w", meetingID, domain.ErrMalformedPayload, err)
	}

	return &insights, nil
}

// Put stores or replaces the insights for a meeting.
func (s *analysisStore) Put(ctx context.Context, meetingID string, insights domain.MeetingInsights) error {
	if meetingID == "" {
		return domain.ErrInvalidInput
	}

	insightsJSON, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("marshalling insights: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO analyses (meeting_id, insights, analyzed_at)
		VALUES (?, ?, ?)
		ON CONFLICT(meeting_id) DO UPDATE SET
			insights = excluded.insights,
			analyzed_at = excluded.analyzed_at
	`, meetingID, string(insightsJSON), insights.AnalyzedAt)

	if err != nil {
		return fmt.Errorf("saving analysis: %w", err)
	}
	return nil
}

// Delete removes the cached insights for a meeting.
func (s *analysisStore) Delete(ctx context.Context, meetingID string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM analyses WHERE meeting_id = ?", meetingID)
	if err != nil {
		return fmt.Errorf("deleting analysis: %w", err)
	}
	return nil
}
