package main

import (
	"github.com/fadedpez/blackjacksim/internal/app"
	"github.com/fadedpez/blackjacksim/internal/config"
	"github.com/fadedpez/blackjacksim/pkg/strategies"
)

type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}

func (s *ServeCmd) Run(cli *CLI) error {
	logger := newLogger(cli.Verbose)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if s.Addr != "" {
		cfg.Server.Addr = s.Addr
	}

	repo, err := openRepository(cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	server := app.NewServer(cfg, strategies.DefaultRegistry(), repo, logger)
	return server.Start()
}
