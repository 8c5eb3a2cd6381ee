// Package config loads the simulator settings from an optional YAML
// file with environment variable overrides. An .env file at the
// working directory is honored the same way environment variables are.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/services/blackjack"
)

// Config holds all configuration for the application
type Config struct {
	Shoe struct {
		Decks       int     `yaml:"decks"`
		Penetration float64 `yaml:"penetration"`
	} `yaml:"shoe"`

	Game struct {
		BetMin          float64 `yaml:"bet_min"`
		BetMax          float64 `yaml:"bet_max"`
		MaxHandsPerGame int     `yaml:"max_hands_per_game"`
		BlackjackPayout float64 `yaml:"blackjack_payout"`
	} `yaml:"game"`

	Player struct {
		Strategy string  `yaml:"strategy"`
		Bankroll float64 `yaml:"bankroll"`
		Spread   int     `yaml:"spread"`
		MaxGames int     `yaml:"max_games"`
	} `yaml:"player"`

	Dealer struct {
		HitSoft17 bool `yaml:"hit_soft_17"`
	} `yaml:"dealer"`

	Storage struct {
		// Driver is one of "memory" or "sqlite"
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`

		Elasticsearch struct {
			Enabled     bool   `yaml:"enabled"`
			URL         string `yaml:"url"`
			Username    string `yaml:"username"`
			Password    string `yaml:"password"`
			IndexPrefix string `yaml:"index_prefix"`
		} `yaml:"elasticsearch"`
	} `yaml:"storage"`

	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}

// Default returns the configuration used when no file or environment
// overrides are present: a six-deck shoe played with basic strategy.
func Default() *Config {
	cfg := &Config{}
	cfg.Shoe.Decks = 6
	cfg.Shoe.Penetration = 0.75
	cfg.Game.BetMin = 10
	cfg.Game.BetMax = 500
	cfg.Game.MaxHandsPerGame = 4
	cfg.Game.BlackjackPayout = 1.5
	cfg.Player.Strategy = "basic"
	cfg.Player.Bankroll = 1000
	cfg.Player.Spread = 10
	cfg.Player.MaxGames = 1000
	cfg.Dealer.HitSoft17 = false
	cfg.Storage.Driver = "memory"
	cfg.Storage.Path = "data/blackjacksim.db"
	cfg.Storage.Elasticsearch.URL = "http://localhost:9200"
	cfg.Storage.Elasticsearch.IndexPrefix = "blackjacksim"
	cfg.Server.Addr = ":8080"
	return cfg
}

// Load reads the configuration. Precedence, lowest to highest:
// defaults, the YAML file at path (skipped when empty or missing),
// then BLACKJACK_* environment variables.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, types.WrapError(types.ErrConfiguration, "parsing config file", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields from BLACKJACK_* environment variables
func (c *Config) applyEnv() {
	c.Shoe.Decks = getEnvInt("BLACKJACK_DECKS", c.Shoe.Decks)
	c.Shoe.Penetration = getEnvFloat("BLACKJACK_PENETRATION", c.Shoe.Penetration)
	c.Game.BetMin = getEnvFloat("BLACKJACK_BET_MIN", c.Game.BetMin)
	c.Game.BetMax = getEnvFloat("BLACKJACK_BET_MAX", c.Game.BetMax)
	c.Game.MaxHandsPerGame = getEnvInt("BLACKJACK_MAX_HANDS_PER_GAME", c.Game.MaxHandsPerGame)
	c.Game.BlackjackPayout = getEnvFloat("BLACKJACK_PAYOUT", c.Game.BlackjackPayout)
	c.Player.Strategy = getEnvWithDefault("BLACKJACK_STRATEGY", c.Player.Strategy)
	c.Player.Bankroll = getEnvFloat("BLACKJACK_BANKROLL", c.Player.Bankroll)
	c.Player.Spread = getEnvInt("BLACKJACK_SPREAD", c.Player.Spread)
	c.Player.MaxGames = getEnvInt("BLACKJACK_MAX_GAMES", c.Player.MaxGames)
	c.Dealer.HitSoft17 = getEnvBool("BLACKJACK_HIT_SOFT_17", c.Dealer.HitSoft17)
	c.Storage.Driver = getEnvWithDefault("BLACKJACK_STORAGE_DRIVER", c.Storage.Driver)
	c.Storage.Path = getEnvWithDefault("BLACKJACK_STORAGE_PATH", c.Storage.Path)
	c.Storage.Elasticsearch.Enabled = getEnvBool("BLACKJACK_ES_ENABLED", c.Storage.Elasticsearch.Enabled)
	c.Storage.Elasticsearch.URL = getEnvWithDefault("BLACKJACK_ES_URL", c.Storage.Elasticsearch.URL)
	c.Storage.Elasticsearch.Username = getEnvWithDefault("BLACKJACK_ES_USERNAME", c.Storage.Elasticsearch.Username)
	c.Storage.Elasticsearch.Password = getEnvWithDefault("BLACKJACK_ES_PASSWORD", c.Storage.Elasticsearch.Password)
	c.Storage.Elasticsearch.IndexPrefix = getEnvWithDefault("BLACKJACK_ES_INDEX_PREFIX", c.Storage.Elasticsearch.IndexPrefix)
	c.Server.Addr = getEnvWithDefault("BLACKJACK_SERVER_ADDR", c.Server.Addr)
}

// Validate checks the loaded configuration. Simulation settings are
// validated again by the engine at simulator construction.
func (c *Config) Validate() error {
	if err := c.Simulation().Validate(); err != nil {
		return err
	}
	if c.Player.Strategy == "" {
		return types.NewSimError(types.ErrConfiguration, "player.strategy is required")
	}
	switch c.Storage.Driver {
	case "memory", "sqlite":
	default:
		return types.NewSimError(types.ErrConfiguration, fmt.Sprintf("unknown storage driver %q", c.Storage.Driver))
	}
	return nil
}

// Simulation maps the loaded settings onto the engine configuration
func (c *Config) Simulation() blackjack.Config {
	return blackjack.Config{
		Decks:           c.Shoe.Decks,
		Penetration:     c.Shoe.Penetration,
		BetMin:          c.Game.BetMin,
		BetMax:          c.Game.BetMax,
		MaxGames:        c.Player.MaxGames,
		MaxHandsPerGame: c.Game.MaxHandsPerGame,
		BlackjackPayout: c.Game.BlackjackPayout,
		Bankroll:        c.Player.Bankroll,
		BetSpread:       c.Player.Spread,
		HitSoft17:       c.Dealer.HitSoft17,
	}
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
