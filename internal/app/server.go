// Package app wires the HTTP surface: a small JSON API for running
// simulations and browsing stored results, plus an HTML results page.
package app

import (
	"fmt"
	"html"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fadedpez/blackjacksim/internal/config"
	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/repositories/run"
	"github.com/fadedpez/blackjacksim/pkg/services/blackjack"
	"github.com/fadedpez/blackjacksim/pkg/strategies"
)

type Server struct {
	cfg      *config.Config
	registry *strategies.Registry
	repo     run.Repository
	logger   *log.Logger
	app      *fiber.App
}

func NewServer(cfg *config.Config, registry *strategies.Registry, repo run.Repository, logger *log.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		registry: registry,
		repo:     repo,
		logger:   logger,
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/simulate", s.handleSimulatePage)

	api := app.Group("/api")
	api.Get("/simulate", s.handleSimulate)
	api.Get("/strategies", s.handleStrategies)
	api.Get("/runs", s.handleListRuns)
	api.Get("/runs/:id", s.handleGetRun)

	s.app = app
	return s
}

func (s *Server) Start() error {
	s.logger.Info("listening", "addr", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// simulate runs one simulation using the configured settings with any
// query overrides applied, persists the result, and returns it.
func (s *Server) simulate(c *fiber.Ctx) (*entities.RunResult, error) {
	simCfg := s.cfg.Simulation()
	strategyID := s.cfg.Player.Strategy

	if v := c.Query("strategy"); v != "" {
		strategyID = v
	}
	if v := c.QueryInt("games"); v > 0 {
		simCfg.MaxGames = v
	}
	if v := c.QueryFloat("bankroll"); v > 0 {
		simCfg.Bankroll = v
	}
	if v := c.QueryInt("decks"); v > 0 {
		simCfg.Decks = v
	}

	factory, err := s.registry.Get(strategyID)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if seed := c.QueryInt("seed"); seed != 0 {
		rng = rand.New(rand.NewSource(int64(seed)))
	}

	sim, err := blackjack.NewSimulator(simCfg, factory, rng)
	if err != nil {
		return nil, err
	}
	if err := sim.Play(); err != nil {
		return nil, err
	}

	result := &entities.RunResult{
		ID:               uuid.NewString(),
		Strategy:         strategyID,
		Games:            sim.Games(),
		StartingBankroll: simCfg.Bankroll,
		FinalBankroll:    sim.Player().Bankroll(),
		Rows:             sim.Results(),
		CompletedAt:      time.Now().UTC(),
	}

	if err := s.repo.SaveRun(c.Context(), result); err != nil {
		// A storage failure should not hide the simulation outcome.
		s.logger.Error("saving run", "id", result.ID, "error", err)
	}

	s.logger.Info("run complete",
		"id", result.ID,
		"strategy", result.Strategy,
		"games", result.Games,
		"bankroll", result.FinalBankroll)

	return result, nil
}

func (s *Server) handleSimulate(c *fiber.Ctx) error {
	result, err := s.simulate(c)
	if err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(result)
}

// handleSimulatePage renders the result rows as an HTML table with a
// link to rerun the same simulation.
func (s *Server) handleSimulatePage(c *fiber.Ctx) error {
	result, err := s.simulate(c)
	if err != nil {
		return errorStatus(c, err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>Blackjack simulation</title></head><body>")
	fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(result.Strategy))
	b.WriteString("<table border=\"1\" cellpadding=\"4\">")
	for _, row := range result.Rows {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>",
			html.EscapeString(row.Label), html.EscapeString(row.Value))
	}
	b.WriteString("</table>")

	rerun := "/simulate"
	if q := string(c.Request().URI().QueryString()); q != "" {
		rerun += "?" + q
	}
	fmt.Fprintf(&b, "<p><a href=\"%s\">Run again</a></p>", html.EscapeString(rerun))
	b.WriteString("</body></html>")

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(b.String())
}

func (s *Server) handleStrategies(c *fiber.Ctx) error {
	return c.JSON(s.registry.List())
}

func (s *Server) handleListRuns(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	results, err := s.repo.ListRuns(c.Context(), limit)
	if err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(results)
}

func (s *Server) handleGetRun(c *fiber.Ctx) error {
	result, err := s.repo.GetRun(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// errorStatus maps domain errors onto HTTP statuses
func errorStatus(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case types.IsSimError(err, types.ErrStrategyNotFound):
		status = fiber.StatusNotFound
	case types.IsSimError(err, types.ErrConfiguration):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
