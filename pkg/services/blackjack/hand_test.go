package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/entities"
)

func TestHandValuation(t *testing.T) {
	tests := []struct {
		name      string
		ranks     []entities.Rank
		value     int
		handType  HandType
		blackjack bool
		busted    bool
	}{
		{"soft twenty", []entities.Rank{entities.Ace, entities.Nine}, 20, TypeSoft, false, false},
		{"natural", []entities.Rank{entities.Ace, entities.King}, 21, TypeSoft, true, false},
		{"hard sixteen", []entities.Rank{entities.Ten, entities.Six}, 16, TypeHard, false, false},
		{"pair of aces", []entities.Rank{entities.Ace, entities.Ace}, 12, TypeSoft, false, false},
		{"ace ace nine", []entities.Rank{entities.Ace, entities.Ace, entities.Nine}, 21, TypeSoft, false, false},
		{"three aces", []entities.Rank{entities.Ace, entities.Ace, entities.Ace}, 13, TypeSoft, false, false},
		{"hard bust", []entities.Rank{entities.Ten, entities.Ten, entities.Five}, 25, TypeHard, false, true},
		{"ace drops to hard", []entities.Rank{entities.Ace, entities.Six, entities.Nine}, 16, TypeHard, false, false},
		{"twenty one on three cards", []entities.Rank{entities.Seven, entities.Seven, entities.Seven}, 21, TypeHard, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handOf(10, tt.ranks...)

			assert.Equal(t, tt.value, h.Value())
			assert.Equal(t, tt.handType, h.Type())
			assert.Equal(t, tt.blackjack, h.IsBlackjack())
			assert.Equal(t, tt.busted, h.IsBusted())
		})
	}
}

func TestHandAddCardToDoneHand(t *testing.T) {
	h := handOf(10, entities.Ten, entities.Six)
	h.Stand()

	err := h.AddCard(card(entities.Two))
	require.Error(t, err)
	assert.True(t, types.IsSimError(err, types.ErrInvalidState))
	assert.Equal(t, 16, h.Value())
}

func TestHandAddInvalidCard(t *testing.T) {
	h := NewHand(10)

	err := h.AddCard(entities.Card{Suit: entities.Spades, Rank: "JOKER"})
	require.Error(t, err)
	assert.True(t, types.IsSimError(err, types.ErrInvalidCard))
	assert.Empty(t, h.Cards())
}

func TestHandDoneIsSticky(t *testing.T) {
	h := handOf(10, entities.Ten, entities.Five)
	assert.False(t, h.IsDone())

	h.Stand()
	assert.True(t, h.IsDone())

	// Nothing un-does a stood hand.
	require.Error(t, h.AddCard(card(entities.Two)))
	assert.True(t, h.IsDone())
}

func TestHandBlackjackIsDone(t *testing.T) {
	h := handOf(10, entities.Ace, entities.Queen)
	assert.True(t, h.IsBlackjack())
	assert.True(t, h.IsDone())
}

func TestHandBustIsDone(t *testing.T) {
	h := handOf(10, entities.Ten, entities.Six, entities.King)
	assert.True(t, h.IsBusted())
	assert.True(t, h.IsDone())
}

func TestHandDoubleDoneAfterThirdCard(t *testing.T) {
	h := handOf(10, entities.Five, entities.Six)
	h.Double()

	assert.Equal(t, 20.0, h.Bet())
	assert.True(t, h.IsDoubled())
	assert.False(t, h.IsDone())

	require.NoError(t, h.AddCard(card(entities.Nine)))
	assert.True(t, h.IsDone())
	assert.Equal(t, 20, h.Value())
}

func TestHandSplitMovesLastCard(t *testing.T) {
	h := handOf(10, entities.Eight, entities.Eight)

	moved, ok := h.Split()
	require.True(t, ok)
	assert.Equal(t, entities.Eight, moved.Rank)
	assert.Len(t, h.Cards(), 1)
	assert.True(t, h.IsSplit())
}

func TestHandSplitEmptyHand(t *testing.T) {
	h := NewHand(10)

	_, ok := h.Split()
	assert.False(t, ok)
	assert.True(t, h.IsSplit())
}

func TestHandSplitAcesGetOneCard(t *testing.T) {
	h := handOf(10, entities.Ace, entities.Eight)
	h.Split()

	// An ace-led split hand is done as soon as its second card lands.
	require.NoError(t, h.AddCard(card(entities.Eight)))
	assert.True(t, h.IsDone())
}

func TestHandSplitTwentyOneIsNotBlackjack(t *testing.T) {
	h := NewHand(10)
	h.Split()

	require.NoError(t, h.AddCard(card(entities.Ace)))
	require.NoError(t, h.AddCard(card(entities.King)))

	assert.Equal(t, 21, h.Value())
	assert.False(t, h.IsBlackjack())
}

func TestHandIsSplittable(t *testing.T) {
	tests := []struct {
		name       string
		ranks      []entities.Rank
		splittable bool
	}{
		{"pair of eights", []entities.Rank{entities.Eight, entities.Eight}, true},
		{"king and queen", []entities.Rank{entities.King, entities.Queen}, true},
		{"ten and jack", []entities.Rank{entities.Ten, entities.Jack}, true},
		{"mixed values", []entities.Rank{entities.Nine, entities.Eight}, false},
		{"single card", []entities.Rank{entities.Eight}, false},
		{"three cards", []entities.Rank{entities.Four, entities.Four, entities.Four}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.splittable, handOf(10, tt.ranks...).IsSplittable())
		})
	}
}

func TestHandIsSplittableAfterStand(t *testing.T) {
	h := handOf(10, entities.Eight, entities.Eight)
	h.Stand()
	assert.False(t, h.IsSplittable())
}

func TestHandIsDoubleable(t *testing.T) {
	assert.True(t, handOf(10, entities.Five, entities.Six).IsDoubleable())
	assert.False(t, handOf(10, entities.Five, entities.Six, entities.Two).IsDoubleable())

	natural := handOf(10, entities.Ace, entities.King)
	assert.False(t, natural.IsDoubleable())
}

func TestHandUpcard(t *testing.T) {
	h := handOf(0, entities.Six, entities.Ten)

	upcard, ok := h.Upcard()
	require.True(t, ok)
	assert.Equal(t, entities.Six, upcard.Rank)

	_, ok = NewHand(0).Upcard()
	assert.False(t, ok)
}

func TestHandString(t *testing.T) {
	h := handOf(10, entities.Ace, entities.Nine)
	assert.Equal(t, "A-9 (20)", h.String())
}
