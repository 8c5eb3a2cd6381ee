package run

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

const createRunsTableSQL = `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		strategy TEXT NOT NULL,
		games INTEGER NOT NULL,
		starting_bankroll REAL NOT NULL,
		final_bankroll REAL NOT NULL,
		rows TEXT NOT NULL,  -- JSON array of result rows
		completed_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_runs_completed ON runs(completed_at)`

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Ensure the directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err := db.Exec(createRunsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating runs table: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveRun stores one completed run
func (r *SQLiteRepository) SaveRun(ctx context.Context, result *entities.RunResult) error {
	rowsJSON, err := json.Marshal(result.Rows)
	if err != nil {
		return types.WrapError(types.ErrStorage, "encoding result rows", err)
	}

	query := `
		INSERT INTO runs (id, strategy, games, starting_bankroll, final_bankroll, rows, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		result.ID,
		result.Strategy,
		result.Games,
		result.StartingBankroll,
		result.FinalBankroll,
		string(rowsJSON),
		result.CompletedAt,
	)
	if err != nil {
		return types.WrapError(types.ErrStorage, "saving run", err)
	}

	return nil
}

// GetRun retrieves a run by id
func (r *SQLiteRepository) GetRun(ctx context.Context, id string) (*entities.RunResult, error) {
	query := `
		SELECT id, strategy, games, starting_bankroll, final_bankroll, rows, completed_at
		FROM runs WHERE id = ?`

	result, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, types.NewSimError(types.ErrStorage, "run not found: "+id)
	}
	if err != nil {
		return nil, types.WrapError(types.ErrStorage, "loading run", err)
	}
	return result, nil
}

// ListRuns retrieves the most recent runs, newest first
func (r *SQLiteRepository) ListRuns(ctx context.Context, limit int) ([]*entities.RunResult, error) {
	query := `
		SELECT id, strategy, games, starting_bankroll, final_bankroll, rows, completed_at
		FROM runs ORDER BY completed_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, types.WrapError(types.ErrStorage, "listing runs", err)
	}
	defer rows.Close()

	results := make([]*entities.RunResult, 0, limit)
	for rows.Next() {
		result, err := scanRun(rows)
		if err != nil {
			return nil, types.WrapError(types.ErrStorage, "scanning run", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrStorage, "listing runs", err)
	}

	return results, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*entities.RunResult, error) {
	var result entities.RunResult
	var rowsJSON string

	if err := row.Scan(
		&result.ID,
		&result.Strategy,
		&result.Games,
		&result.StartingBankroll,
		&result.FinalBankroll,
		&rowsJSON,
		&result.CompletedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(rowsJSON), &result.Rows); err != nil {
		return nil, err
	}
	return &result, nil
}
