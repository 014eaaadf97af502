package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrRunNotFound is returned when a run ID is not in the store
var ErrRunNotFound = errors.New("run not found")

// RunRecord represents a single persisted recognition run
type RunRecord struct {
	ID         string    `json:"id"`
	Grammar    string    `json:"grammar"`
	Goal       string    `json:"goal"`
	Input      string    `json:"input"`
	Accepted   bool      `json:"accepted"`
	Cursor     int       `json:"cursor"`
	TokenCount int       `json:"token_count"`
	Steps      int       `json:"steps"`
	MaxDepth   int       `json:"max_depth"`
	DurationMS float64   `json:"duration_ms"`
	FailReason string    `json:"fail_reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// RunFilter defines criteria for filtering runs
type RunFilter struct {
	Grammar      string
	AcceptedOnly bool
	Since        time.Time
	Limit        int
	Offset       int
}

// RunStore defines the interface for run-history persistence
type RunStore interface {
	SaveRun(ctx context.Context, record *RunRecord) error
	GetRun(ctx context.Context, id string) (*RunRecord, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]*RunRecord, error)
	CountRuns(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (map[string]interface{}, error)

	// Maintenance
	Ping(ctx context.Context) error
	Vacuum(ctx context.Context) error
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRunStore implements RunStore using SQLite
type SQLiteRunStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteRunConfig holds configuration for the SQLite store
type SQLiteRunConfig struct {
	Path string
}

// DefaultRunConfig returns default configuration
func DefaultRunConfig() SQLiteRunConfig {
	return SQLiteRunConfig{
		Path: "./data/runs.db",
	}
}

// NewSQLiteRunStore creates a new SQLite-based run store
func NewSQLiteRunStore(cfg SQLiteRunConfig) (*SQLiteRunStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteRunStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteRunStore) initSchema() error {
	schema := `
	-- Recognition run history
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		grammar TEXT NOT NULL,
		goal TEXT NOT NULL,
		input TEXT NOT NULL,
		accepted INTEGER NOT NULL,
		cursor INTEGER NOT NULL,
		token_count INTEGER NOT NULL,
		steps INTEGER NOT NULL,
		max_depth INTEGER NOT NULL,
		duration_ms REAL NOT NULL,
		fail_reason TEXT,
		created_at DATETIME NOT NULL
	);

	-- Indices for efficient querying
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_grammar ON runs(grammar);
	CREATE INDEX IF NOT EXISTS idx_runs_accepted ON runs(accepted);
	CREATE INDEX IF NOT EXISTS idx_runs_grammar_accepted ON runs(grammar, accepted);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveRun persists a recognition run
func (s *SQLiteRunStore) SaveRun(ctx context.Context, record *RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, grammar, goal, input, accepted, cursor, token_count,
			steps, max_depth, duration_ms, fail_reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.Grammar, record.Goal, record.Input, record.Accepted,
		record.Cursor, record.TokenCount, record.Steps, record.MaxDepth,
		record.DurationMS, record.FailReason, record.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// GetRun retrieves a single run by ID
func (s *SQLiteRunStore) GetRun(ctx context.Context, id string) (*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, grammar, goal, input, accepted, cursor, token_count,
			steps, max_depth, duration_ms, fail_reason, created_at
		FROM runs WHERE id = ?
	`, id)

	record, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	return record, nil
}

// ListRuns retrieves runs based on filter criteria
func (s *SQLiteRunStore) ListRuns(ctx context.Context, filter RunFilter) ([]*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, grammar, goal, input, accepted, cursor, token_count,
			steps, max_depth, duration_ms, fail_reason, created_at
		FROM runs WHERE 1=1`
	var args []interface{}

	if filter.Grammar != "" {
		query += " AND grammar = ?"
		args = append(args, filter.Grammar)
	}
	if filter.AcceptedOnly {
		query += " AND accepted = 1"
	}
	if !filter.Since.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, filter.Since)
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// SQLite requires a LIMIT clause before OFFSET, -1 means no limit
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []*RunRecord
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// CountRuns returns the total number of stored runs
func (s *SQLiteRunStore) CountRuns(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return total, nil
}

// Stats returns run-history statistics
func (s *SQLiteRunStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})

	var total, accepted int64
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&total)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE accepted = 1`).Scan(&accepted)
	stats["total_runs"] = total
	stats["accepted_runs"] = accepted
	if total > 0 {
		stats["acceptance_rate"] = float64(accepted) / float64(total) * 100
	}

	// Runs by grammar
	grammarCounts := make(map[string]int64)
	rows, _ := s.db.QueryContext(ctx, `SELECT grammar, COUNT(*) FROM runs GROUP BY grammar`)
	if rows != nil {
		defer rows.Close()
		for rows.Next() {
			var grammar string
			var count int64
			rows.Scan(&grammar, &count)
			grammarCounts[grammar] = count
		}
	}
	stats["runs_by_grammar"] = grammarCounts

	// Last run time. Selecting the column directly keeps the declared
	// DATETIME type, which an aggregate like MAX would strip.
	var lastRun sql.NullTime
	s.db.QueryRowContext(ctx, `SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`).Scan(&lastRun)
	if lastRun.Valid {
		stats["last_run"] = lastRun.Time
	}

	return stats, nil
}

// Ping verifies the database connection
func (s *SQLiteRunStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Vacuum optimizes the database
func (s *SQLiteRunStore) Vacuum(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `VACUUM`)
	return err
}

// Prune removes runs older than the specified duration
func (s *SQLiteRunStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}

	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteRunStore) Close() error {
	return s.db.Close()
}

// scanner abstracts sql.Row and sql.Rows for shared scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRun reads one run row
func scanRun(row scanner) (*RunRecord, error) {
	var record RunRecord
	var failReason sql.NullString

	if err := row.Scan(&record.ID, &record.Grammar, &record.Goal, &record.Input,
		&record.Accepted, &record.Cursor, &record.TokenCount, &record.Steps,
		&record.MaxDepth, &record.DurationMS, &failReason, &record.CreatedAt); err != nil {
		return nil, err
	}

	if failReason.Valid {
		record.FailReason = failReason.String
	}

	return &record, nil
}

// MemoryRunStore is an in-memory implementation for testing
type MemoryRunStore struct {
	mu   sync.RWMutex
	runs []*RunRecord
}

// NewMemoryRunStore creates a new in-memory run store
func NewMemoryRunStore() *MemoryRunStore {
	return &MemoryRunStore{
		runs: make([]*RunRecord, 0),
	}
}

// SaveRun persists a recognition run
func (s *MemoryRunStore) SaveRun(ctx context.Context, record *RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	s.runs = append(s.runs, record)
	return nil
}

// GetRun retrieves a single run by ID
func (s *MemoryRunStore) GetRun(ctx context.Context, id string) (*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.runs {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, ErrRunNotFound
}

// ListRuns retrieves runs based on filter criteria, newest first
func (s *MemoryRunStore) ListRuns(ctx context.Context, filter RunFilter) ([]*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*RunRecord
	for i := len(s.runs) - 1; i >= 0; i-- {
		record := s.runs[i]
		if filter.Grammar != "" && record.Grammar != filter.Grammar {
			continue
		}
		if filter.AcceptedOnly && !record.Accepted {
			continue
		}
		if !filter.Since.IsZero() && record.CreatedAt.Before(filter.Since) {
			continue
		}
		results = append(results, record)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(results) {
			return nil, nil
		}
		results = results[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(results) {
		results = results[:filter.Limit]
	}

	return results, nil
}

// CountRuns returns the total number of stored runs
func (s *MemoryRunStore) CountRuns(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.runs)), nil
}

// Stats returns run-history statistics
func (s *MemoryRunStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var accepted int64
	grammarCounts := make(map[string]int64)
	for _, record := range s.runs {
		if record.Accepted {
			accepted++
		}
		grammarCounts[record.Grammar]++
	}

	stats := map[string]interface{}{
		"total_runs":      int64(len(s.runs)),
		"accepted_runs":   accepted,
		"runs_by_grammar": grammarCounts,
	}
	if len(s.runs) > 0 {
		stats["acceptance_rate"] = float64(accepted) / float64(len(s.runs)) * 100
	}

	return stats, nil
}

// Ping is a no-op for the memory store
func (s *MemoryRunStore) Ping(ctx context.Context) error {
	return nil
}

// Vacuum is a no-op for the memory store
func (s *MemoryRunStore) Vacuum(ctx context.Context) error {
	return nil
}

// Prune removes runs older than the specified duration
func (s *MemoryRunStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var deleted int64

	kept := make([]*RunRecord, 0, len(s.runs))
	for _, record := range s.runs {
		if record.CreatedAt.After(cutoff) {
			kept = append(kept, record)
		} else {
			deleted++
		}
	}
	s.runs = kept

	return deleted, nil
}

// Close is a no-op for the memory store
func (s *MemoryRunStore) Close() error {
	return nil
}
