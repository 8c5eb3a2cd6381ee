package blackjack

import "github.com/fadedpez/blackjacksim/pkg/entities"

// stubStrategy plays a fixed script of actions and bets a fixed amount.
// Once the script is exhausted it stands.
type stubStrategy struct {
	bet      float64
	actions  []Action
	shuffles int
	counted  []entities.Card
	stop     bool
}

func newStubStrategy(bet float64, actions ...Action) *stubStrategy {
	return &stubStrategy{bet: bet, actions: actions}
}

func (s *stubStrategy) Count(card entities.Card, remaining int) {
	s.counted = append(s.counted, card)
}

func (s *stubStrategy) Bet(bankroll, lastOutcome float64) float64 {
	return s.bet
}

func (s *stubStrategy) Shuffle() {
	s.shuffles++
}

func (s *stubStrategy) Act(hand *Hand, dealerUpcard entities.Card, canDouble, canSplit bool) Action {
	if len(s.actions) == 0 {
		return ActionStand
	}
	action := s.actions[0]
	s.actions = s.actions[1:]
	return action
}

func (s *stubStrategy) Stop(bankroll float64) bool {
	return s.stop
}

func (s *stubStrategy) Results() []entities.ResultRow {
	return []entities.ResultRow{{Label: "Strategy", Value: "stub"}}
}

func (s *stubStrategy) SetBetMin(value float64)           {}
func (s *stubStrategy) SetBetMax(value float64)           {}
func (s *stubStrategy) SetBetSpread(value int)            {}
func (s *stubStrategy) SetStartingBankroll(value float64) {}

func card(rank entities.Rank) entities.Card {
	return entities.NewCard(entities.Spades, rank)
}

func handOf(bet float64, ranks ...entities.Rank) *Hand {
	h := NewHand(bet)
	for _, rank := range ranks {
		if err := h.AddCard(card(rank)); err != nil {
			panic(err)
		}
	}
	return h
}
