package blackjack

import "github.com/fadedpez/blackjacksim/pkg/entities"

// Action represents a playing decision for a single hand
type Action string

const (
	ActionHit    Action = "HIT"
	ActionStand  Action = "STAND"
	ActionDouble Action = "DOUBLE"
	ActionSplit  Action = "SPLIT"
)

// Strategy drives betting, playing decisions, and card counting for a
// simulation run. One instance is shared between the Player (betting,
// acting, counting) and the Shoe (shuffle notification); it is the only
// component whose state survives a shuffle.
type Strategy interface {
	// Count observes one dealt card after a game concludes, with the
	// number of cards left in the shoe for true-count normalization.
	Count(card entities.Card, remaining int)

	// Bet returns the wager for the next game given the current
	// bankroll and the net outcome of the previous game.
	Bet(bankroll, lastOutcome float64) float64

	// Shuffle is invoked whenever the shoe is shuffled. Running
	// counts reset; accumulated betting tallies do not.
	Shuffle()

	// Act decides what to do with a hand against the dealer's upcard.
	// canDouble and canSplit reflect both the table rules and the
	// player's bankroll.
	Act(hand *Hand, dealerUpcard entities.Card, canDouble, canSplit bool) Action

	// Stop reports whether the player walks away before the next game.
	Stop(bankroll float64) bool

	// Results returns the strategy's configuration and accumulated
	// statistics as label/value rows.
	Results() []entities.ResultRow

	SetBetMin(value float64)
	SetBetMax(value float64)
	SetBetSpread(value int)
	SetStartingBankroll(value float64)
}

// StrategyFactory produces a fresh, unconfigured strategy instance.
// The engine depends only on this and the Strategy interface, never on
// how implementations are registered or discovered.
type StrategyFactory func() Strategy
