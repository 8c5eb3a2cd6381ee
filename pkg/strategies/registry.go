package strategies

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/services/blackjack"
)

// Info describes a registered strategy
type Info struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Registry maps strategy ids to factories. The engine never touches
// it; callers resolve a factory here and inject it into the simulator.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]blackjack.StrategyFactory
	infos     map[string]Info
}

// NewRegistry creates an empty strategy registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]blackjack.StrategyFactory),
		infos:     make(map[string]Info),
	}
}

// Register adds a strategy factory under an id
func (r *Registry) Register(id, description string, factory blackjack.StrategyFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		return types.NewSimError(types.ErrConfiguration, fmt.Sprintf("strategy %s is already registered", id))
	}

	r.factories[id] = factory
	r.infos[id] = Info{ID: id, Description: description}
	return nil
}

// Get returns the factory for a given strategy id
func (r *Registry) Get(id string) (blackjack.StrategyFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[id]
	if !exists {
		return nil, types.NewSimError(types.ErrStrategyNotFound, fmt.Sprintf("strategy %s not found", id))
	}

	return factory, nil
}

// List returns the registered strategies sorted by id
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.infos))
	for _, info := range r.infos {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// DefaultRegistry returns a registry with every built-in strategy
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("basic", "Basic strategy playing rules while betting the minimum on each hand.",
		func() blackjack.Strategy { return NewBasic() })
	r.Register("hilo", "Use a hi lo count and bet the minimum times twice the true count.",
		func() blackjack.Strategy { return NewHiLo() })
	r.Register("ace_five", "Use an ace five count and bet the spread once at +2.",
		func() blackjack.Strategy { return NewAceFive() })
	r.Register("martingale", "Bet double your last loss otherwise bet the minimum.",
		func() blackjack.Strategy { return NewMartingale() })
	r.Register("antimartingale50", "Bet your last win plus half of the profit, otherwise bet the min.",
		func() blackjack.Strategy { return NewAntiMartingale50() })

	return r
}
