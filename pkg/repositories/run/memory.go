package run

import (
	"context"
	"sync"

	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of run ID to result
	runs map[string]*entities.RunResult
	// Insertion order, oldest first
	order []string
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		runs: make(map[string]*entities.RunResult),
	}
}

// SaveRun stores one completed run
func (r *MemoryRepository) SaveRun(ctx context.Context, result *entities.RunResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[result.ID]; !exists {
		r.order = append(r.order, result.ID)
	}
	r.runs[result.ID] = result
	return nil
}

// GetRun retrieves a run by id
func (r *MemoryRepository) GetRun(ctx context.Context, id string) (*entities.RunResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, exists := r.runs[id]
	if !exists {
		return nil, types.NewSimError(types.ErrStorage, "run not found: "+id)
	}
	return result, nil
}

// ListRuns retrieves the most recent runs, newest first
func (r *MemoryRepository) ListRuns(ctx context.Context, limit int) ([]*entities.RunResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*entities.RunResult, 0, limit)
	for i := len(r.order) - 1; i >= 0 && len(results) < limit; i-- {
		results = append(results, r.runs[r.order[i]])
	}
	return results, nil
}

// Close is a no-op for the memory repository
func (r *MemoryRepository) Close() error {
	return nil
}
