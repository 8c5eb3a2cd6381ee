package blackjack

import (
	"fmt"
	"strings"

	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// HandType represents whether a hand is counting an ace as eleven
type HandType string

const (
	TypeHard HandType = "hard"
	TypeSoft HandType = "soft"
)

// Hand represents one blackjack hand: its cards, the bet riding on it,
// and the valuation derived after every card added.
type Hand struct {
	cards []entities.Card
	bet   float64

	value     int
	handType  HandType
	blackjack bool
	busted    bool

	split   bool
	doubled bool
	done    bool
}

// NewHand creates an empty hand with a bet riding on it
func NewHand(bet float64) *Hand {
	return &Hand{
		cards:    make([]entities.Card, 0, 4),
		bet:      bet,
		handType: TypeHard,
	}
}

// Bet returns the amount bet on this hand
func (h *Hand) Bet() float64 {
	return h.bet
}

// SetBet sets the bet amount for this hand
func (h *Hand) SetBet(bet float64) {
	h.bet = bet
}

// AddCard appends a card and re-evaluates the hand. Adding to a done
// hand or adding a card with an illegal rank is a caller defect.
func (h *Hand) AddCard(card entities.Card) error {
	if h.done {
		return types.NewSimError(types.ErrInvalidState, "unable to add cards to a done hand")
	}
	if !card.IsValid() {
		return types.NewSimError(types.ErrInvalidCard, fmt.Sprintf("invalid card added to hand: %q", card.Rank))
	}

	h.cards = append(h.cards, card)
	h.evaluate()
	return nil
}

// evaluate recomputes the value, hand type, blackjack, busted, and
// done states after a card is added.
func (h *Hand) evaluate() {
	h.value = 0
	h.handType = TypeHard

	aces := 0
	for _, card := range h.cards {
		if card.IsAce() {
			aces++
			h.handType = TypeSoft
		}
		h.value += card.Value()
	}

	// Over 21 with aces at 11: demote aces one at a time, in card
	// order, stopping as soon as the total is 21 or less. The hand
	// turns hard only when the last ace is demoted.
	if h.value > 21 && h.handType == TypeSoft {
		for x := 0; x < aces; x++ {
			h.value -= 10
			if aces-x == 1 {
				h.handType = TypeHard
			}
			if h.value <= 21 {
				break
			}
		}
	}

	// A split hand totaling 21 on two cards is a 21, not a blackjack.
	h.blackjack = len(h.cards) == 2 && h.value == 21 && !h.split
	h.busted = h.value > 21

	if h.blackjack ||
		h.busted ||
		(h.doubled && len(h.cards) == 3) ||
		(h.split && len(h.cards) == 2 && h.cards[0].IsAce()) {
		h.done = true
	}
}

// Split marks the hand as split and removes its last card, which the
// caller moves into the newly created sibling hand. The removed card
// and false are returned when the hand holds no cards.
func (h *Hand) Split() (entities.Card, bool) {
	h.split = true

	if len(h.cards) == 0 {
		return entities.Card{}, false
	}

	card := h.cards[len(h.cards)-1]
	h.cards = h.cards[:len(h.cards)-1]
	return card, true
}

// IsSplit checks if this hand was split or is the result of a split
func (h *Hand) IsSplit() bool {
	return h.split
}

// Double doubles the bet and marks the hand as doubled
func (h *Hand) Double() {
	h.bet *= 2
	h.doubled = true
}

// IsDoubled checks if this hand was doubled
func (h *Hand) IsDoubled() bool {
	return h.doubled
}

// Stand marks the hand as done being played. Done is sticky.
func (h *Hand) Stand() {
	h.done = true
}

// IsDone checks if this hand is done being played
func (h *Hand) IsDone() bool {
	return h.done
}

// IsBlackjack checks if the hand is a natural blackjack
func (h *Hand) IsBlackjack() bool {
	return h.blackjack
}

// IsBusted checks if the hand is over 21
func (h *Hand) IsBusted() bool {
	return h.busted
}

// Value returns the hand's best total
func (h *Hand) Value() int {
	return h.value
}

// Type returns whether the hand is hard or soft
func (h *Hand) Type() HandType {
	return h.handType
}

// Cards returns the cards in the hand
func (h *Hand) Cards() []entities.Card {
	return h.cards
}

// Upcard returns the first card in the hand
func (h *Hand) Upcard() (entities.Card, bool) {
	if len(h.cards) == 0 {
		return entities.Card{}, false
	}
	return h.cards[0], true
}

// IsSplittable checks that the hand holds exactly two cards of equal
// face value and is not already done
func (h *Hand) IsSplittable() bool {
	if len(h.cards) != 2 {
		return false
	}
	if h.cards[0].Value() != h.cards[1].Value() {
		return false
	}
	return !h.done
}

// IsDoubleable checks that the hand holds exactly two cards and is
// not already done
func (h *Hand) IsDoubleable() bool {
	return len(h.cards) == 2 && !h.done
}

// String returns the hand in a printable format, e.g. "A-9 (20)"
func (h *Hand) String() string {
	ranks := make([]string, len(h.cards))
	for i, card := range h.cards {
		ranks[i] = string(card.Rank)
	}
	return fmt.Sprintf("%s (%d)", strings.Join(ranks, "-"), h.value)
}
