package entities

import (
	"fmt"
	"strconv"
)

// Suit represents a card suit
type Suit string

const (
	Hearts   Suit = "HEARTS"
	Diamonds Suit = "DIAMONDS"
	Clubs    Suit = "CLUBS"
	Spades   Suit = "SPADES"
)

// Suits lists all four suits in a standard deck
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Rank represents a card rank
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks lists the 13 legal ranks in deck order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		Suit: suit,
		Rank: rank,
	}
}

// String returns the string representation of the card
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Value returns the blackjack value of the card. Aces count as 11,
// face cards as 10. Returns 0 for a card with an unknown rank.
func (c Card) Value() int {
	switch c.Rank {
	case Ace:
		return 11
	case Jack, Queen, King:
		return 10
	default:
		val, _ := strconv.Atoi(string(c.Rank))
		if val < 2 || val > 10 {
			return 0
		}
		return val
	}
}

// IsAce checks if the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsValid checks that the card carries one of the 13 legal ranks
func (c Card) IsValid() bool {
	return c.Value() != 0
}
