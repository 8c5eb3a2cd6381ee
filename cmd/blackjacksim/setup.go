package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/fadedpez/blackjacksim/internal/config"
	"github.com/fadedpez/blackjacksim/pkg/repositories/run"
)

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}

// openRepository builds the run store the config asks for, wrapping it
// in the Elasticsearch decorator when indexing is enabled.
func openRepository(cfg *config.Config, logger *log.Logger) (run.Repository, error) {
	var repo run.Repository

	switch cfg.Storage.Driver {
	case "sqlite":
		sqliteRepo, err := run.NewSQLiteRepository(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		logger.Debug("using sqlite run store", "path", cfg.Storage.Path)
		repo = sqliteRepo
	default:
		repo = run.NewMemoryRepository()
	}

	if cfg.Storage.Elasticsearch.Enabled {
		esRepo, err := run.NewElasticsearchRepository(repo, &run.ElasticsearchConfig{
			URL:         cfg.Storage.Elasticsearch.URL,
			Username:    cfg.Storage.Elasticsearch.Username,
			Password:    cfg.Storage.Elasticsearch.Password,
			IndexPrefix: cfg.Storage.Elasticsearch.IndexPrefix,
		})
		if err != nil {
			return nil, err
		}
		logger.Debug("indexing runs to elasticsearch", "url", cfg.Storage.Elasticsearch.URL)
		repo = esRepo
	}

	return repo, nil
}
