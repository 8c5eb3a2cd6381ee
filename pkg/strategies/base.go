// Package strategies provides the concrete betting/playing strategies
// selectable by id through the Registry. All of them embed Base, which
// carries the betting configuration and the counting accumulators and
// defaults to betting the minimum, always standing, and never stopping.
package strategies

import (
	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/services/blackjack"
)

// Base is the default strategy behavior. Concrete strategies embed it
// and override selectively, appending to its results rows.
type Base struct {
	name string

	betMin           float64
	betMax           float64
	betSpread        int
	startingBankroll float64

	// Running count state. The count resets on shuffle; the bet
	// tallies and observed extremes persist for the whole run.
	count          int
	highestCount   int
	lowestCount    int
	betsInCount    int
	betsOutOfCount int
}

// Count records the extremes of the running count. Base itself never
// moves the count; counting variants do that before calling here.
func (s *Base) Count(card entities.Card, remaining int) {
	s.highestCount = max(s.highestCount, s.count)
	s.lowestCount = min(s.lowestCount, s.count)
}

// Bet wagers the table minimum
func (s *Base) Bet(bankroll, lastOutcome float64) float64 {
	return s.betMin
}

// Shuffle resets the running count
func (s *Base) Shuffle() {
	s.count = 0
}

// Act always stands
func (s *Base) Act(hand *blackjack.Hand, dealerUpcard entities.Card, canDouble, canSplit bool) blackjack.Action {
	return blackjack.ActionStand
}

// Stop never stops
func (s *Base) Stop(bankroll float64) bool {
	return false
}

// Results returns the strategy name row
func (s *Base) Results() []entities.ResultRow {
	return []entities.ResultRow{
		{Label: "Strategy", Value: s.name},
	}
}

// SetBetMin sets the minimum bet amount
func (s *Base) SetBetMin(value float64) {
	s.betMin = value
}

// SetBetMax sets the maximum bet amount
func (s *Base) SetBetMax(value float64) {
	s.betMax = value
}

// SetBetSpread sets the bet spread
func (s *Base) SetBetSpread(value int) {
	s.betSpread = value
}

// SetStartingBankroll sets the starting bankroll
func (s *Base) SetStartingBankroll(value float64) {
	s.startingBankroll = value
}
