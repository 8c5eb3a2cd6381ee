package blackjack

import (
	"fmt"
	"strconv"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// Dealer plays one hand per game with the fixed house algorithm: hit
// below 17, stand at 17 or better, with soft 17 decided by table rule.
type Dealer struct {
	hand       *Hand
	busts      int
	blackjacks int
	hitSoft17  bool
}

// NewDealer creates a dealer with the given soft-17 rule
func NewDealer(hitSoft17 bool) *Dealer {
	return &Dealer{hitSoft17: hitSoft17}
}

// SetHand assigns the dealer's hand for the current game
func (d *Dealer) SetHand(hand *Hand) {
	d.hand = hand
}

// Hand returns the dealer's current hand
func (d *Dealer) Hand() *Hand {
	return d.hand
}

// Play runs the house algorithm until the hand is done
func (d *Dealer) Play(shoe *Shoe) error {
	for !d.hand.IsDone() {
		if d.hand.Value() == 17 && d.hand.Type() == TypeSoft {
			if !d.hitSoft17 {
				d.hand.Stand()
			} else if err := d.hand.AddCard(shoe.Deal()); err != nil {
				return fmt.Errorf("dealer hitting soft 17: %w", err)
			}
		} else if d.hand.Value() >= 17 {
			d.hand.Stand()
		} else if err := d.hand.AddCard(shoe.Deal()); err != nil {
			return fmt.Errorf("dealer hitting: %w", err)
		}
	}

	return nil
}

// EndGame tallies the finished hand and discards it
func (d *Dealer) EndGame() {
	if d.hand.IsBusted() {
		d.busts++
	}

	if d.hand.IsBlackjack() {
		d.blackjacks++
	}

	d.hand = nil
}

// Results returns the dealer's results rows
func (d *Dealer) Results() []entities.ResultRow {
	hitSoft17 := "No"
	if d.hitSoft17 {
		hitSoft17 = "Yes"
	}

	return []entities.ResultRow{
		{Label: "Dealer blackjacks", Value: strconv.Itoa(d.blackjacks)},
		{Label: "Dealer busts", Value: strconv.Itoa(d.busts)},
		{Label: "Dealer hit on soft 17", Value: hitSoft17},
	}
}
