package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/fadedpez/blackjacksim/internal/config"
	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/services/blackjack"
	"github.com/fadedpez/blackjacksim/pkg/services/montecarlo"
	"github.com/fadedpez/blackjacksim/pkg/strategies"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type RunCmd struct {
	Strategy    string   `short:"s" help:"Strategy id (see the strategies command)"`
	Games       *int     `help:"Maximum number of games to play"`
	Bankroll    *float64 `help:"Starting bankroll"`
	Decks       *int     `help:"Number of decks in the shoe"`
	Penetration *float64 `help:"Shoe penetration before a reshuffle, in (0, 1]"`
	BetMin      *float64 `help:"Table minimum bet"`
	BetMax      *float64 `help:"Table maximum bet"`
	Spread      *int     `help:"Bet spread for counting strategies"`
	HitSoft17   *bool    `help:"Dealer hits soft 17"`
	Payout      *float64 `help:"Blackjack payout multiplier"`
	MaxHands    *int     `help:"Maximum hands per game after splits"`

	Runs    int   `default:"1" help:"Number of independent runs (Monte Carlo batch when > 1)"`
	Seed    int64 `help:"RNG seed (0 for random)"`
	Workers int   `help:"Concurrent runs in batch mode (0 for unbounded)"`
	Save    bool  `help:"Persist results to the configured run store"`
}

// apply overlays the command line flags on the loaded configuration
func (r *RunCmd) apply(cfg *config.Config) {
	if r.Strategy != "" {
		cfg.Player.Strategy = r.Strategy
	}
	if r.Games != nil {
		cfg.Player.MaxGames = *r.Games
	}
	if r.Bankroll != nil {
		cfg.Player.Bankroll = *r.Bankroll
	}
	if r.Decks != nil {
		cfg.Shoe.Decks = *r.Decks
	}
	if r.Penetration != nil {
		cfg.Shoe.Penetration = *r.Penetration
	}
	if r.BetMin != nil {
		cfg.Game.BetMin = *r.BetMin
	}
	if r.BetMax != nil {
		cfg.Game.BetMax = *r.BetMax
	}
	if r.Spread != nil {
		cfg.Player.Spread = *r.Spread
	}
	if r.HitSoft17 != nil {
		cfg.Dealer.HitSoft17 = *r.HitSoft17
	}
	if r.Payout != nil {
		cfg.Game.BlackjackPayout = *r.Payout
	}
	if r.MaxHands != nil {
		cfg.Game.MaxHandsPerGame = *r.MaxHands
	}
}

func (r *RunCmd) Run(cli *CLI) error {
	logger := newLogger(cli.Verbose)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	r.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	registry := strategies.DefaultRegistry()
	factory, err := registry.Get(cfg.Player.Strategy)
	if err != nil {
		return err
	}

	if r.Runs > 1 {
		return r.runBatch(cfg, factory, logger)
	}
	return r.runSingle(cfg, factory, logger)
}

func (r *RunCmd) runSingle(cfg *config.Config, factory blackjack.StrategyFactory, logger *log.Logger) error {
	var rng *rand.Rand
	if r.Seed != 0 {
		rng = rand.New(rand.NewSource(r.Seed))
	}

	sim, err := blackjack.NewSimulator(cfg.Simulation(), factory, rng)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := sim.Play(); err != nil {
		return err
	}
	logger.Debug("run complete", "games", sim.Games(), "elapsed", time.Since(start))

	result := &entities.RunResult{
		ID:               uuid.NewString(),
		Strategy:         cfg.Player.Strategy,
		Games:            sim.Games(),
		StartingBankroll: cfg.Player.Bankroll,
		FinalBankroll:    sim.Player().Bankroll(),
		Rows:             sim.Results(),
		CompletedAt:      time.Now().UTC(),
	}

	fmt.Println(renderRows(result.Strategy, result.Rows))

	if r.Save {
		if err := r.save(cfg, logger, result); err != nil {
			return err
		}
	}
	return nil
}

func (r *RunCmd) runBatch(cfg *config.Config, factory blackjack.StrategyFactory, logger *log.Logger) error {
	runner := montecarlo.NewRunner(cfg.Simulation(), cfg.Player.Strategy, factory, r.Runs, r.Seed, r.Workers)

	start := time.Now()
	summary, results, err := runner.Run(context.Background())
	if err != nil {
		return err
	}
	logger.Debug("batch complete", "runs", r.Runs, "elapsed", time.Since(start))

	rows := []entities.ResultRow{
		{Label: "Runs", Value: fmt.Sprintf("%d", summary.Runs)},
		{Label: "Total games", Value: fmt.Sprintf("%d", summary.TotalGames)},
		{Label: "Mean bankroll", Value: fmt.Sprintf("%.2f", summary.MeanBankroll)},
		{Label: "Std. deviation", Value: fmt.Sprintf("%.2f", summary.StdDev)},
		{Label: "Min. bankroll", Value: fmt.Sprintf("%.2f", summary.MinBankroll)},
		{Label: "Max. bankroll", Value: fmt.Sprintf("%.2f", summary.MaxBankroll)},
		{Label: "Ruined", Value: fmt.Sprintf("%d", summary.Ruined)},
	}
	fmt.Println(renderRows(cfg.Player.Strategy, rows))

	if r.Save {
		if err := r.save(cfg, logger, results...); err != nil {
			return err
		}
	}
	return nil
}

func (r *RunCmd) save(cfg *config.Config, logger *log.Logger, results ...*entities.RunResult) error {
	repo, err := openRepository(cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	for _, result := range results {
		if err := repo.SaveRun(context.Background(), result); err != nil {
			return err
		}
		logger.Info("saved run", "id", result.ID)
	}
	return nil
}

// renderRows draws a two column results table
func renderRows(title string, rows []entities.ResultRow) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return labelStyle.Padding(0, 1)
			}
			return valueStyle.Padding(0, 1)
		})

	for _, row := range rows {
		t.Row(row.Label, row.Value)
	}

	return headerStyle.Render(title) + "\n" + t.Render()
}
