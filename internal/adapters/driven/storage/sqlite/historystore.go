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

	"github.com/growlaw/growlaw-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
)

// HistoryStore is a SQLite-backed cache of completed document gradings.
type HistoryStore struct {
	db   *sql.DB
	path string
}

var _ driven.HistoryStore = (*HistoryStore)(nil)

// NewHistoryStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.growlaw/data/history.db.
func NewHistoryStore(dataDir string) (*HistoryStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".growlaw", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &HistoryStore{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *HistoryStore) Path() string {
	return s.path
}

// SaveAnalysis inserts or replaces a grading by id.
func (s *HistoryStore) SaveAnalysis(ctx context.Context, analysis *domain.DocumentAnalysis) error {
	if analysis == nil || analysis.ID == "" {
		return domain.ErrInvalidInput
	}

	suggestionsJSON, err := json.Marshal(analysis.Suggestions)
	if err != nil {
		return fmt.Errorf("marshalling suggestions: %w", err)
	}
	breakdownJSON, err := json.Marshal(analysis.Analysis)
	if err != nil {
		return fmt.Errorf("marshalling breakdown: %w", err)
	}

	createdAt := analysis.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, score, feedback, suggestions, breakdown, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			score = excluded.score,
			feedback = excluded.feedback,
			suggestions = excluded.suggestions,
			breakdown = excluded.breakdown,
			created_at = excluded.created_at
	`, analysis.ID, analysis.Score, analysis.Feedback,
		string(suggestionsJSON), string(breakdownJSON), createdAt)

	if err != nil {
		return fmt.Errorf("saving analysis: %w", err)
	}
	return nil
}

// ListAnalyses returns cached gradings, newest first.
func (s *HistoryStore) ListAnalyses(ctx context.Context) ([]domain.DocumentAnalysis, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, score, feedback, suggestions, breakdown, created_at
		FROM analyses
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	var analyses []domain.DocumentAnalysis //nolint:prealloc // size unknown from query
	for rows.Next() {
		analysis, err := scanAnalysisRows(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *analysis)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}

	return analyses, nil
}

// GetAnalysis fetches a cached grading by id.
func (s *HistoryStore) GetAnalysis(ctx context.Context, id string) (*domain.DocumentAnalysis, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, score, feedback, suggestions, breakdown, created_at
		FROM analyses WHERE id = ?
	`, id)

	return scanAnalysis(row)
}

// migrate runs all pending migrations.
func (s *HistoryStore) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
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
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// scanAnalysis scans a single analysis row.
func scanAnalysis(row *sql.Row) (*domain.DocumentAnalysis, error) {
	var analysis domain.DocumentAnalysis
	var suggestionsJSON, breakdownJSON string
	var createdAt sql.NullTime

	if err := row.Scan(&analysis.ID, &analysis.Score, &analysis.Feedback,
		&suggestionsJSON, &breakdownJSON, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}

	if err := decodeAnalysisJSON(&analysis, suggestionsJSON, breakdownJSON); err != nil {
		return nil, err
	}
	if createdAt.Valid {
		analysis.Timestamp = createdAt.Time
	}

	return &analysis, nil
}

// scanAnalysisRows scans an analysis from *sql.Rows.
func scanAnalysisRows(rows *sql.Rows) (*domain.DocumentAnalysis, error) {
	var analysis domain.DocumentAnalysis
	var suggestionsJSON, breakdownJSON string
	var createdAt sql.NullTime

	if err := rows.Scan(&analysis.ID, &analysis.Score, &analysis.Feedback,
		&suggestionsJSON, &breakdownJSON, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}

	if err := decodeAnalysisJSON(&analysis, suggestionsJSON, breakdownJSON); err != nil {
		return nil, err
	}
	if createdAt.Valid {
		analysis.Timestamp = createdAt.Time
	}

	return &analysis, nil
}

func decodeAnalysisJSON(analysis *domain.DocumentAnalysis, suggestionsJSON, breakdownJSON string) error {
	if suggestionsJSON != "" {
		if err := json.Unmarshal([]byte(suggestionsJSON), &analysis.Suggestions); err != nil {
			return fmt.Errorf("unmarshaling suggestions: %w", err)
		}
	}
	if breakdownJSON != "" {
		if err := json.Unmarshal([]byte(breakdownJSON), &analysis.Analysis); err != nil {
			return fmt.Errorf("unmarshaling breakdown: %w", err)
		}
	}
	return nil
}
