package blackjack

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// CardsPerDeck is the size of one standard deck
const CardsPerDeck = 52

// Shoe is the multi-deck card source dealt from during a run. Once the
// configured penetration has been dealt, the next deal forces a
// reshuffle, which may land between two cards of the same hand.
type Shoe struct {
	decks       int
	penetration float64
	strategy    Strategy
	cards       []entities.Card
	shuffles    int
	rng         *rand.Rand
}

// NewShoe creates a shoe of decks standard decks. The strategy is
// notified on every shuffle so it can reset its running count. Pass a
// seeded rng for reproducible runs; nil falls back to a time-based seed.
func NewShoe(decks int, penetration float64, strategy Strategy, rng *rand.Rand) *Shoe {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Shoe{
		decks:       decks,
		penetration: penetration,
		strategy:    strategy,
		rng:         rng,
	}
}

// Shuffle rebuilds the full shoe, randomizes the order, and notifies
// the strategy.
func (s *Shoe) Shuffle() {
	s.cards = make([]entities.Card, 0, s.decks*CardsPerDeck)
	s.shuffles++

	for d := 0; d < s.decks; d++ {
		for _, suit := range entities.Suits {
			for _, rank := range entities.Ranks {
				s.cards = append(s.cards, entities.NewCard(suit, rank))
			}
		}
	}

	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})

	s.strategy.Shuffle()
}

// Deal removes and returns the front card, shuffling first if needed
func (s *Shoe) Deal() entities.Card {
	if s.ShuffleNeeded() {
		s.Shuffle()
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card
}

// Remaining returns the count of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// ShuffleNeeded checks if the shoe is empty or past its penetration
func (s *Shoe) ShuffleNeeded() bool {
	if len(s.cards) == 0 {
		return true
	}
	return float64(len(s.cards)) < float64(s.decks*CardsPerDeck)*(1-s.penetration)
}

// Shuffles returns how many times the shoe has been shuffled
func (s *Shoe) Shuffles() int {
	return s.shuffles
}

// Results returns the shoe's results rows
func (s *Shoe) Results() []entities.ResultRow {
	return []entities.ResultRow{
		{Label: "Shuffles", Value: strconv.Itoa(s.shuffles)},
	}
}
