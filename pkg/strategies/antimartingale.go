package strategies

// AntiMartingale50 plays basic strategy and presses after wins: the
// next wager is the minimum plus half of the previous game's profit.
type AntiMartingale50 struct {
	Basic
}

// NewAntiMartingale50 creates an anti-martingale betting strategy instance
func NewAntiMartingale50() *AntiMartingale50 {
	s := &AntiMartingale50{}
	s.name = "Anti-Martingale 50%"
	return s
}

// Bet adds half the previous profit to the minimum after a win
func (s *AntiMartingale50) Bet(bankroll, lastOutcome float64) float64 {
	if lastOutcome > 0 {
		return s.betMin + lastOutcome*0.5
	}

	return s.betMin
}
