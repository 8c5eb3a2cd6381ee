package run

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// ElasticsearchConfig holds configuration options for the
// Elasticsearch repository
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
}

// DefaultElasticsearchConfig returns a default configuration for
// Elasticsearch
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:         "http://localhost:9200",
		IndexPrefix: "blackjacksim",
	}
}

// ElasticsearchRepository decorates another repository, indexing every
// saved run into Elasticsearch for external analysis. Reads are served
// by the wrapped repository.
type ElasticsearchRepository struct {
	baseRepo Repository
	client   *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a new Elasticsearch repository
// wrapping baseRepo
func NewElasticsearchRepository(baseRepo Repository, config *ElasticsearchConfig) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	if config.IndexPrefix == "" {
		config.IndexPrefix = "blackjacksim"
	}

	repo := &ElasticsearchRepository{
		baseRepo: baseRepo,
		client:   client,
		index:    config.IndexPrefix + "_runs",
	}

	if err := repo.initIndex(context.Background()); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}

	return repo, nil
}

// initIndex creates the runs index if it doesn't exist
func (r *ElasticsearchRepository) initIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index})
	if err != nil {
		return fmt.Errorf("error checking if runs index exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 404 {
		return nil
	}

	mapping := `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"strategy": { "type": "keyword" },
				"games": { "type": "integer" },
				"starting_bankroll": { "type": "double" },
				"final_bankroll": { "type": "double" },
				"rows": {
					"type": "nested",
					"properties": {
						"label": { "type": "keyword" },
						"value": { "type": "keyword" }
					}
				},
				"completed_at": { "type": "date" }
			}
		}
	}`

	req := esapi.IndicesCreateRequest{
		Index: r.index,
		Body:  bytes.NewReader([]byte(mapping)),
	}

	createRes, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating runs index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("error creating runs index: %s", createRes.String())
	}

	return nil
}

// SaveRun stores the run in the base repository and indexes it
func (r *ElasticsearchRepository) SaveRun(ctx context.Context, result *entities.RunResult) error {
	if err := r.baseRepo.SaveRun(ctx, result); err != nil {
		return err
	}

	doc, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error encoding run: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: result.ID,
		Body:       bytes.NewReader(doc),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error indexing run: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing run: %s", res.String())
	}

	return nil
}

// GetRun retrieves a run from the base repository
func (r *ElasticsearchRepository) GetRun(ctx context.Context, id string) (*entities.RunResult, error) {
	return r.baseRepo.GetRun(ctx, id)
}

// ListRuns retrieves recent runs from the base repository
func (r *ElasticsearchRepository) ListRuns(ctx context.Context, limit int) ([]*entities.RunResult, error) {
	return r.baseRepo.ListRuns(ctx, limit)
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.baseRepo.Close()
}
