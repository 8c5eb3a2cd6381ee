package blackjack

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// Config holds the scalar settings for one simulation run. The engine
// treats these as immutable for the duration of the run.
type Config struct {
	Decks           int
	Penetration     float64
	BetMin          float64
	BetMax          float64
	MaxGames        int
	MaxHandsPerGame int
	BlackjackPayout float64
	Bankroll        float64
	BetSpread       int
	HitSoft17       bool
}

// Validate reports configuration errors before a run starts rather
// than letting them surface mid-run.
func (c Config) Validate() error {
	if c.Decks < 1 {
		return types.NewSimError(types.ErrConfiguration, "decks must be at least 1")
	}
	if c.Penetration <= 0 || c.Penetration > 1 {
		return types.NewSimError(types.ErrConfiguration, "penetration must be in (0, 1]")
	}
	if c.BetMin <= 0 {
		return types.NewSimError(types.ErrConfiguration, "bet_min must be positive")
	}
	if c.BetMin > c.BetMax {
		return types.NewSimError(types.ErrConfiguration, "bet_min must not exceed bet_max")
	}
	if c.MaxGames < 1 {
		return types.NewSimError(types.ErrConfiguration, "max_games must be at least 1")
	}
	if c.MaxHandsPerGame < 1 {
		return types.NewSimError(types.ErrConfiguration, "max_hands_per_game must be at least 1")
	}
	if c.BlackjackPayout <= 0 {
		return types.NewSimError(types.ErrConfiguration, "blackjack_payout must be positive")
	}
	if c.Bankroll <= 0 {
		return types.NewSimError(types.ErrConfiguration, "bankroll must be positive")
	}
	if c.BetSpread < 1 {
		return types.NewSimError(types.ErrConfiguration, "spread must be at least 1")
	}
	return nil
}

// Simulator composes one shoe, one player, and one dealer, and runs
// the game loop until the player cannot cover the minimum bet, the
// game cap is reached, or the strategy calls a stop.
type Simulator struct {
	cfg         Config
	newStrategy StrategyFactory
	rng         *rand.Rand

	shoe   *Shoe
	player *Player
	dealer *Dealer
	games  int
}

// NewSimulator validates the configuration and builds a ready-to-play
// simulator. Pass a seeded rng to reproduce an identical sequence of
// games; nil uses a time-based seed.
func NewSimulator(cfg Config, newStrategy StrategyFactory, rng *rand.Rand) (*Simulator, error) {
	s := &Simulator{
		cfg:         cfg,
		newStrategy: newStrategy,
		rng:         rng,
	}

	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset rebuilds all owned components from configuration and zeroes
// the game counter. The strategy instance is constructed once here and
// shared between the player and the shoe.
func (s *Simulator) Reset() error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	strategy := s.newStrategy()
	strategy.SetBetMin(s.cfg.BetMin)
	strategy.SetBetMax(s.cfg.BetMax)
	strategy.SetBetSpread(s.cfg.BetSpread)
	strategy.SetStartingBankroll(s.cfg.Bankroll)

	s.shoe = NewShoe(s.cfg.Decks, s.cfg.Penetration, strategy, s.rng)
	s.player = NewPlayer(s.cfg.Bankroll, strategy)
	s.dealer = NewDealer(s.cfg.HitSoft17)
	s.games = 0

	return nil
}

// Play runs games until a stop condition is hit
func (s *Simulator) Play() error {
	for s.player.CanBet(s.cfg.BetMin) && s.games < s.cfg.MaxGames && !s.player.Stop() {
		s.games++

		s.initBet()
		if err := s.deal(); err != nil {
			return err
		}

		dealerHand := s.dealer.Hand()
		playerHand := s.player.Hands()[0]

		if !dealerHand.IsBlackjack() && !playerHand.IsBlackjack() {
			upcard, _ := dealerHand.Upcard()
			if err := s.player.Play(s.shoe, s.cfg.MaxHandsPerGame, upcard); err != nil {
				return err
			}

			if !s.player.IsBusted() {
				if err := s.dealer.Play(s.shoe); err != nil {
					return err
				}
			}
		}

		s.player.EndGame(dealerHand, s.cfg.BlackjackPayout, s.shoe.Remaining())
		s.dealer.EndGame()
	}

	return nil
}

// initBet asks the player to bet, then clamps the wager to the table
// limits and the bankroll and floors it to a whole unit.
func (s *Simulator) initBet() float64 {
	bet := s.player.Bet()

	bet = math.Max(s.cfg.BetMin, math.Min(bet, math.Min(s.cfg.BetMax, s.player.Bankroll())))
	bet = math.Floor(bet)

	return s.player.SetBet(bet)
}

// deal alternates two cards each to a fresh player hand and a fresh
// dealer hand.
func (s *Simulator) deal() error {
	playerHand := NewHand(s.player.bet)
	dealerHand := NewHand(0)

	for i := 0; i < 2; i++ {
		if err := playerHand.AddCard(s.shoe.Deal()); err != nil {
			return fmt.Errorf("dealing to player: %w", err)
		}
		if err := dealerHand.AddCard(s.shoe.Deal()); err != nil {
			return fmt.Errorf("dealing to dealer: %w", err)
		}
	}

	s.player.AddHand(playerHand)
	s.dealer.SetHand(dealerHand)
	return nil
}

// Games returns the count of games played so far
func (s *Simulator) Games() int {
	return s.games
}

// Player returns the simulator's player
func (s *Simulator) Player() *Player {
	return s.player
}

// Dealer returns the simulator's dealer
func (s *Simulator) Dealer() *Dealer {
	return s.dealer
}

// Shoe returns the simulator's shoe
func (s *Simulator) Shoe() *Shoe {
	return s.shoe
}

// Results concatenates the run summary with each component's rows in a
// fixed order. It is a read-only projection; calling it twice without
// an intervening Play yields identical output.
func (s *Simulator) Results() []entities.ResultRow {
	rows := []entities.ResultRow{
		{Label: "Games", Value: strconv.Itoa(s.games)},
		{Label: "Min. bet", Value: strconv.FormatFloat(s.cfg.BetMin, 'f', -1, 64)},
		{Label: "Max. bet", Value: strconv.FormatFloat(s.cfg.BetMax, 'f', -1, 64)},
	}

	rows = append(rows, s.shoe.Results()...)
	rows = append(rows, s.player.Results()...)
	rows = append(rows, s.dealer.Results()...)
	return rows
}
