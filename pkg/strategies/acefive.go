package strategies

import (
	"strconv"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// AceFive plays basic strategy with the simplest practical count: aces
// lower it, fives raise it. Once the count reaches +2 the bet jumps to
// the minimum times the configured spread.
type AceFive struct {
	Basic
}

// NewAceFive creates an ace-five counting strategy instance
func NewAceFive() *AceFive {
	s := &AceFive{}
	s.name = "Ace Five"
	return s
}

// Bet wagers the spread once the count reaches +2
func (s *AceFive) Bet(bankroll, lastOutcome float64) float64 {
	if s.count < 2 {
		s.betsOutOfCount++
		return s.betMin
	}

	s.betsInCount++
	return s.betMin * float64(s.betSpread)
}

// Count moves the running count on aces and fives only
func (s *AceFive) Count(card entities.Card, remaining int) {
	if card.IsAce() {
		s.count--
	}

	if card.Rank == entities.Five {
		s.count++
	}

	s.Base.Count(card, remaining)
}

// Results appends the counting statistics to the parent rows
func (s *AceFive) Results() []entities.ResultRow {
	return append(s.Basic.Results(),
		entities.ResultRow{Label: "Bets in count", Value: strconv.Itoa(s.betsInCount)},
		entities.ResultRow{Label: "Bets out of count", Value: strconv.Itoa(s.betsOutOfCount)},
		entities.ResultRow{Label: "Highest count", Value: strconv.Itoa(s.highestCount)},
		entities.ResultRow{Label: "Lowest count", Value: strconv.Itoa(s.lowestCount)},
		entities.ResultRow{Label: "Bet spread", Value: strconv.Itoa(s.betSpread)},
	)
}
