package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMartingaleBet(t *testing.T) {
	s := NewMartingale()
	s.SetBetMin(10)

	// First bet and bets after wins or pushes are the minimum.
	assert.Equal(t, 10.0, s.Bet(1000, 0))
	assert.Equal(t, 10.0, s.Bet(1000, 25))

	// A loss doubles on the next wager, and losses compound.
	assert.Equal(t, 20.0, s.Bet(1000, -10))
	assert.Equal(t, 40.0, s.Bet(1000, -20))
	assert.Equal(t, 160.0, s.Bet(1000, -80))
}

func TestAntiMartingale50Bet(t *testing.T) {
	s := NewAntiMartingale50()
	s.SetBetMin(10)

	// First bet and bets after losses or pushes are the minimum.
	assert.Equal(t, 10.0, s.Bet(1000, 0))
	assert.Equal(t, 10.0, s.Bet(1000, -50))

	// A win presses half the profit onto the minimum.
	assert.Equal(t, 15.0, s.Bet(1000, 10))
	assert.Equal(t, 60.0, s.Bet(1000, 100))
}

func TestMartingaleNames(t *testing.T) {
	assert.Equal(t, "Martingale", NewMartingale().Results()[0].Value)
	assert.Equal(t, "Anti-Martingale 50%", NewAntiMartingale50().Results()[0].Value)
}
