// Package montecarlo runs many independent simulations in parallel and
// aggregates their final bankrolls. Each run gets its own simulator and
// a seed derived from the batch seed, so a fixed batch seed reproduces
// every run bit-for-bit regardless of scheduling.
package montecarlo

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/services/blackjack"
)

// Summary aggregates the outcomes of a batch of runs
type Summary struct {
	Runs         int
	TotalGames   int
	MeanBankroll float64
	StdDev       float64
	MinBankroll  float64
	MaxBankroll  float64
	// Ruined counts runs that ended unable to cover the minimum bet
	Ruined int
}

// Runner executes a batch of independent simulation runs
type Runner struct {
	cfg      blackjack.Config
	strategy string
	factory  blackjack.StrategyFactory
	runs     int
	seed     int64
	workers  int
}

// NewRunner creates a batch runner. strategy is the registry id used
// to label persisted results; seed 0 picks a time-based seed; workers
// caps concurrent simulations (0 means one per run).
func NewRunner(cfg blackjack.Config, strategy string, factory blackjack.StrategyFactory, runs int, seed int64, workers int) *Runner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Runner{
		cfg:      cfg,
		strategy: strategy,
		factory:  factory,
		runs:     runs,
		seed:     seed,
		workers:  workers,
	}
}

// Run plays every simulation to completion and returns the batch
// summary along with the individual run results, in run order.
func (r *Runner) Run(ctx context.Context) (*Summary, []*entities.RunResult, error) {
	results := make([]*entities.RunResult, r.runs)

	g, ctx := errgroup.WithContext(ctx)
	if r.workers > 0 {
		g.SetLimit(r.workers)
	}

	var mu sync.Mutex
	summary := &Summary{
		Runs:        r.runs,
		MinBankroll: math.Inf(1),
		MaxBankroll: math.Inf(-1),
	}
	sum := 0.0
	sumSquares := 0.0

	for i := 0; i < r.runs; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(r.seed + int64(i)))
			sim, err := blackjack.NewSimulator(r.cfg, r.factory, rng)
			if err != nil {
				return err
			}
			if err := sim.Play(); err != nil {
				return err
			}

			bankroll := sim.Player().Bankroll()
			results[i] = &entities.RunResult{
				ID:               uuid.NewString(),
				Strategy:         r.strategy,
				Games:            sim.Games(),
				StartingBankroll: r.cfg.Bankroll,
				FinalBankroll:    bankroll,
				Rows:             sim.Results(),
				CompletedAt:      time.Now().UTC(),
			}

			mu.Lock()
			defer mu.Unlock()
			summary.TotalGames += sim.Games()
			summary.MinBankroll = math.Min(summary.MinBankroll, bankroll)
			summary.MaxBankroll = math.Max(summary.MaxBankroll, bankroll)
			if !sim.Player().CanBet(r.cfg.BetMin) {
				summary.Ruined++
			}
			sum += bankroll
			sumSquares += bankroll * bankroll
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if r.runs > 0 {
		summary.MeanBankroll = sum / float64(r.runs)
	}
	if r.runs > 1 {
		mean := summary.MeanBankroll
		variance := (sumSquares - float64(r.runs)*mean*mean) / float64(r.runs-1)
		if variance > 0 {
			summary.StdDev = math.Sqrt(variance)
		}
	}

	return summary, results, nil
}
