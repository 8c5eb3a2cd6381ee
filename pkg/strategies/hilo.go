package strategies

import (
	"math"
	"strconv"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// HiLo plays basic strategy with a balanced hi-lo count: 2 through 6
// raise the running count, tens and aces lower it. The true count
// normalizes by the decks left in the shoe; bets scale to betMin * 2 *
// trueCount whenever the true count is positive.
type HiLo struct {
	Basic

	trueCount        int
	highestTrueCount int
	lowestTrueCount  int
}

// NewHiLo creates a hi-lo counting strategy instance
func NewHiLo() *HiLo {
	s := &HiLo{}
	s.name = "Hi Lo"
	return s
}

// Bet scales the wager with the true count once it goes positive
func (s *HiLo) Bet(bankroll, lastOutcome float64) float64 {
	if s.trueCount > 0 {
		s.betsInCount++
		return s.betMin * 2 * float64(s.trueCount)
	}

	s.betsOutOfCount++
	return s.betMin
}

// Count updates the running count, derives the true count from the
// remaining deck fraction, and tracks the extremes of both.
func (s *HiLo) Count(card entities.Card, remaining int) {
	switch card.Rank {
	case entities.Two, entities.Three, entities.Four, entities.Five, entities.Six:
		s.count++
	case entities.Ten, entities.Jack, entities.Queen, entities.King, entities.Ace:
		s.count--
	}

	// math.Round matches the half-away-from-zero rounding that the
	// bet sizing expects. An empty shoe leaves the true count as is.
	if decksLeft := float64(remaining) / 52; decksLeft > 0 {
		s.trueCount = int(math.Round(float64(s.count) / decksLeft))
	}

	s.highestTrueCount = max(s.highestTrueCount, s.trueCount)
	s.lowestTrueCount = min(s.lowestTrueCount, s.trueCount)
	s.Base.Count(card, remaining)
}

// Results appends the counting statistics to the parent rows
func (s *HiLo) Results() []entities.ResultRow {
	return append(s.Basic.Results(),
		entities.ResultRow{Label: "Bets in count", Value: strconv.Itoa(s.betsInCount)},
		entities.ResultRow{Label: "Bets out of count", Value: strconv.Itoa(s.betsOutOfCount)},
		entities.ResultRow{Label: "Highest count", Value: strconv.Itoa(s.highestCount)},
		entities.ResultRow{Label: "Highest true count", Value: strconv.Itoa(s.highestTrueCount)},
		entities.ResultRow{Label: "Lowest count", Value: strconv.Itoa(s.lowestCount)},
		entities.ResultRow{Label: "Lowest true count", Value: strconv.Itoa(s.lowestTrueCount)},
	)
}
