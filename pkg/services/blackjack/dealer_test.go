package blackjack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// riggedShoe builds a shoe whose first cards are known
func riggedShoe(t *testing.T, ranks ...entities.Rank) *Shoe {
	t.Helper()

	shoe := NewShoe(1, 1, newStubStrategy(10), rand.New(rand.NewSource(1)))
	shoe.Shuffle()

	cards := make([]entities.Card, 0, len(ranks))
	for _, rank := range ranks {
		cards = append(cards, card(rank))
	}
	shoe.cards = append(cards, shoe.cards...)
	return shoe
}

func TestDealerStandsOnSeventeen(t *testing.T) {
	d := NewDealer(false)
	d.SetHand(handOf(0, entities.Ten, entities.Seven))

	require.NoError(t, d.Play(riggedShoe(t)))
	assert.Equal(t, 17, d.Hand().Value())
	assert.Len(t, d.Hand().Cards(), 2)
}

func TestDealerHitsBelowSeventeen(t *testing.T) {
	d := NewDealer(false)
	d.SetHand(handOf(0, entities.Ten, entities.Six))

	require.NoError(t, d.Play(riggedShoe(t, entities.Four)))
	assert.Equal(t, 20, d.Hand().Value())
	assert.Len(t, d.Hand().Cards(), 3)
}

func TestDealerStandsOnSoftSeventeen(t *testing.T) {
	d := NewDealer(false)
	d.SetHand(handOf(0, entities.Ace, entities.Six))

	require.NoError(t, d.Play(riggedShoe(t)))
	assert.Equal(t, 17, d.Hand().Value())
	assert.Equal(t, TypeSoft, d.Hand().Type())
	assert.Len(t, d.Hand().Cards(), 2)
}

func TestDealerHitsSoftSeventeen(t *testing.T) {
	d := NewDealer(true)
	d.SetHand(handOf(0, entities.Ace, entities.Six))

	require.NoError(t, d.Play(riggedShoe(t, entities.Three)))
	assert.Equal(t, 20, d.Hand().Value())
	assert.Len(t, d.Hand().Cards(), 3)
}

func TestDealerStandsOnHardSeventeenWithHitSoft17(t *testing.T) {
	d := NewDealer(true)
	d.SetHand(handOf(0, entities.Ten, entities.Seven))

	require.NoError(t, d.Play(riggedShoe(t)))
	assert.Len(t, d.Hand().Cards(), 2)
}

func TestDealerBusts(t *testing.T) {
	d := NewDealer(false)
	d.SetHand(handOf(0, entities.Ten, entities.Six))

	require.NoError(t, d.Play(riggedShoe(t, entities.King)))
	assert.True(t, d.Hand().IsBusted())
}

func TestDealerEndGameTallies(t *testing.T) {
	d := NewDealer(false)

	d.SetHand(handOf(0, entities.Ace, entities.King))
	d.EndGame()

	d.SetHand(handOf(0, entities.Ten, entities.Six, entities.King))
	d.EndGame()

	assert.Nil(t, d.Hand())

	rows := d.Results()
	require.Len(t, rows, 3)
	assert.Equal(t, entities.ResultRow{Label: "Dealer blackjacks", Value: "1"}, rows[0])
	assert.Equal(t, entities.ResultRow{Label: "Dealer busts", Value: "1"}, rows[1])
	assert.Equal(t, entities.ResultRow{Label: "Dealer hit on soft 17", Value: "No"}, rows[2])
}
