package run

import (
	"context"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_run

// Repository defines storage operations for completed simulation runs.
// Only aggregate result rows are persisted, never individual hands.
type Repository interface {
	// SaveRun stores one completed run
	SaveRun(ctx context.Context, result *entities.RunResult) error

	// GetRun retrieves a run by id
	GetRun(ctx context.Context, id string) (*entities.RunResult, error)

	// ListRuns retrieves the most recent runs, newest first
	ListRuns(ctx context.Context, limit int) ([]*entities.RunResult, error)

	// Close closes any resources used by the repository
	Close() error
}
