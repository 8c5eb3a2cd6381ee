package strategies

import (
	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/services/blackjack"
)

// Rule tables keyed by player total (or pair card value, for splits)
// mapping to the dealer upcards the action applies against. Face cards
// are normalized to 10 and aces to 11 before lookup.
var (
	rulesSplit = map[int][]int{
		11: {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		2:  {2, 3, 4, 5, 6, 7},
		3:  {2, 3, 4, 5, 6, 7},
		4:  {5, 6},
		5:  {},
		6:  {2, 3, 4, 5, 6},
		7:  {2, 3, 4, 5, 6, 7},
		8:  {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		9:  {2, 3, 4, 5, 6, 8, 9},
		10: {},
	}

	rulesDoubleHard = map[int][]int{
		9:  {3, 4, 5, 6},
		10: {2, 3, 4, 5, 6, 7, 8, 9},
		11: {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}

	rulesDoubleSoft = map[int][]int{
		13: {5, 6},
		14: {5, 6},
		15: {4, 5, 6},
		16: {4, 5, 6},
		17: {3, 4, 5, 6},
		18: {2, 3, 4, 5, 6},
		19: {6},
	}

	rulesHitHard = map[int][]int{
		4:  {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		5:  {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		6:  {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		7:  {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		8:  {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		9:  {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		10: {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		11: {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		12: {2, 3, 7, 8, 9, 10, 11},
		13: {7, 8, 9, 10, 11},
		14: {7, 8, 9, 10, 11},
		15: {7, 8, 9, 10, 11},
		16: {7, 8, 9, 10, 11},
	}

	rulesHitSoft = map[int][]int{
		13: {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		14: {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		15: {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		16: {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		17: {2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		18: {9, 10, 11},
	}
)

// Basic plays textbook basic strategy from static lookup tables while
// betting the minimum on every hand.
type Basic struct {
	Base
}

// NewBasic creates a basic strategy instance
func NewBasic() *Basic {
	return &Basic{Base: Base{name: "Basic strategy"}}
}

// Act checks split eligibility first, then doubles, then hits, and
// falls back to standing.
func (s *Basic) Act(hand *blackjack.Hand, dealerUpcard entities.Card, canDouble, canSplit bool) blackjack.Action {
	if canSplit {
		if upcard, ok := hand.Upcard(); ok {
			if containsUpcard(rulesSplit[upcard.Value()], dealerUpcard) {
				return blackjack.ActionSplit
			}
		}
	}

	if canDouble {
		if inRulesByHandType(hand, dealerUpcard, rulesDoubleHard, rulesDoubleSoft) {
			return blackjack.ActionDouble
		}
	}

	if inRulesByHandType(hand, dealerUpcard, rulesHitHard, rulesHitSoft) {
		return blackjack.ActionHit
	}

	return blackjack.ActionStand
}

// inRulesByHandType checks the hand's total against the hard or soft
// rule table, picked by the hand's type.
func inRulesByHandType(hand *blackjack.Hand, dealerUpcard entities.Card, hardRules, softRules map[int][]int) bool {
	rules := softRules
	if hand.Type() == blackjack.TypeHard {
		rules = hardRules
	}
	return containsUpcard(rules[hand.Value()], dealerUpcard)
}

func containsUpcard(upcards []int, dealerUpcard entities.Card) bool {
	for _, value := range upcards {
		if value == dealerUpcard.Value() {
			return true
		}
	}
	return false
}
