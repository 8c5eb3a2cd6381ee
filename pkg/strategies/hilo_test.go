package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

func TestHiLoRunningCount(t *testing.T) {
	tests := []struct {
		rank entities.Rank
		want int
	}{
		{entities.Two, 1},
		{entities.Three, 1},
		{entities.Four, 1},
		{entities.Five, 1},
		{entities.Six, 1},
		{entities.Seven, 0},
		{entities.Eight, 0},
		{entities.Nine, 0},
		{entities.Ten, -1},
		{entities.Jack, -1},
		{entities.Queen, -1},
		{entities.King, -1},
		{entities.Ace, -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.rank), func(t *testing.T) {
			s := NewHiLo()
			s.Count(card(tt.rank), 104)
			assert.Equal(t, tt.want, s.count)
		})
	}
}

func TestHiLoTrueCount(t *testing.T) {
	s := NewHiLo()

	// Running count +3 with two decks left gives a true count of +2
	// after rounding half away from zero.
	s.Count(card(entities.Two), 104)
	s.Count(card(entities.Three), 104)
	s.Count(card(entities.Four), 104)

	assert.Equal(t, 3, s.count)
	assert.Equal(t, 2, s.trueCount)
}

func TestHiLoTrueCountRoundsHalfAwayFromZero(t *testing.T) {
	s := NewHiLo()

	// +1 with two decks left is 0.5, which rounds up to 1.
	s.Count(card(entities.Two), 104)
	assert.Equal(t, 1, s.trueCount)

	// -1 with two decks left is -0.5, which rounds down to -1.
	s = NewHiLo()
	s.Count(card(entities.King), 104)
	assert.Equal(t, -1, s.trueCount)
}

func TestHiLoTrueCountWithEmptyShoe(t *testing.T) {
	s := NewHiLo()
	s.Count(card(entities.Two), 52)
	require.Equal(t, 1, s.trueCount)

	// No cards left keeps the previous true count instead of dividing
	// by zero.
	s.Count(card(entities.Three), 0)
	assert.Equal(t, 2, s.count)
	assert.Equal(t, 1, s.trueCount)
}

func TestHiLoBetScalesWithTrueCount(t *testing.T) {
	s := NewHiLo()
	s.SetBetMin(10)

	// Neutral count bets the minimum.
	assert.Equal(t, 10.0, s.Bet(1000, 0))
	assert.Equal(t, 1, s.betsOutOfCount)

	s.trueCount = 3
	assert.Equal(t, 60.0, s.Bet(1000, 0))
	assert.Equal(t, 1, s.betsInCount)

	s.trueCount = -2
	assert.Equal(t, 10.0, s.Bet(1000, 0))
	assert.Equal(t, 2, s.betsOutOfCount)
}

func TestHiLoShuffleResetsRunningCountOnly(t *testing.T) {
	s := NewHiLo()
	s.SetBetMin(10)

	s.Count(card(entities.Two), 104)
	s.Count(card(entities.Three), 104)
	s.Bet(1000, 0)
	require.Equal(t, 1, s.betsInCount)

	s.Shuffle()

	assert.Equal(t, 0, s.count)
	// Betting tallies and observed extremes survive the shuffle.
	assert.Equal(t, 1, s.betsInCount)
	assert.Equal(t, 1, s.highestTrueCount)
}

func TestHiLoTracksExtremes(t *testing.T) {
	s := NewHiLo()

	s.Count(card(entities.Two), 26)
	s.Count(card(entities.Three), 26)
	s.Count(card(entities.King), 26)
	s.Count(card(entities.Queen), 26)
	s.Count(card(entities.Jack), 26)

	assert.Equal(t, 2, s.highestCount)
	assert.Equal(t, -1, s.lowestCount)
	assert.Equal(t, 4, s.highestTrueCount)
	assert.Equal(t, -2, s.lowestTrueCount)
}

func TestHiLoResultsRows(t *testing.T) {
	s := NewHiLo()
	rows := s.Results()

	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	assert.Equal(t, []string{
		"Strategy", "Bets in count", "Bets out of count", "Highest count",
		"Highest true count", "Lowest count", "Lowest true count",
	}, labels)
	assert.Equal(t, "Hi Lo", rows[0].Value)
}
