package strategies

// Martingale plays basic strategy and doubles the previous loss on the
// next wager, falling back to the minimum after a win or push.
type Martingale struct {
	Basic
}

// NewMartingale creates a martingale betting strategy instance
func NewMartingale() *Martingale {
	s := &Martingale{}
	s.name = "Martingale"
	return s
}

// Bet doubles the previous loss, otherwise bets the minimum
func (s *Martingale) Bet(bankroll, lastOutcome float64) float64 {
	if lastOutcome < 0 {
		return lastOutcome * -2
	}

	return s.betMin
}
