package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

func TestAceFiveCount(t *testing.T) {
	s := NewAceFive()

	s.Count(card(entities.Five), 104)
	assert.Equal(t, 1, s.count)

	s.Count(card(entities.Ace), 104)
	assert.Equal(t, 0, s.count)

	// Everything else leaves the count alone.
	for _, rank := range []entities.Rank{entities.Two, entities.Nine, entities.Ten, entities.King} {
		s.Count(card(rank), 104)
	}
	assert.Equal(t, 0, s.count)
}

func TestAceFiveBetSpread(t *testing.T) {
	s := NewAceFive()
	s.SetBetMin(10)
	s.SetBetSpread(8)

	// Below +2 bets the minimum.
	assert.Equal(t, 10.0, s.Bet(1000, 0))
	s.count = 1
	assert.Equal(t, 10.0, s.Bet(1000, 0))
	assert.Equal(t, 2, s.betsOutOfCount)

	// At +2 and beyond the full spread goes out.
	s.count = 2
	assert.Equal(t, 80.0, s.Bet(1000, 0))
	s.count = 5
	assert.Equal(t, 80.0, s.Bet(1000, 0))
	assert.Equal(t, 2, s.betsInCount)
}

func TestAceFiveShuffleResetsCount(t *testing.T) {
	s := NewAceFive()
	s.Count(card(entities.Five), 104)
	s.Count(card(entities.Five), 104)

	s.Shuffle()
	assert.Equal(t, 0, s.count)
}

func TestAceFiveResultsRows(t *testing.T) {
	s := NewAceFive()
	s.SetBetSpread(8)

	rows := s.Results()
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	assert.Equal(t, []string{
		"Strategy", "Bets in count", "Bets out of count",
		"Highest count", "Lowest count", "Bet spread",
	}, labels)
	assert.Equal(t, "Ace Five", rows[0].Value)
	assert.Equal(t, "8", rows[5].Value)
}
