package blackjack

import (
	"fmt"
	"strconv"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// Player owns the bankroll, the active strategy, and the hands of the
// current game. The hand list starts at one and grows on splits; the
// bankroll moves only through win/lose accounting at settlement.
type Player struct {
	startingBankroll float64
	bankroll         float64
	strategy         Strategy
	bet              float64
	hands            []*Hand

	handsPlayed int
	wins        int
	losses      int
	pushes      int
	doubles     int
	splits      float64
	busts       int
	blackjacks  int

	lastOutcome float64
}

// NewPlayer creates a player with a starting bankroll and a strategy
func NewPlayer(bankroll float64, strategy Strategy) *Player {
	return &Player{
		startingBankroll: bankroll,
		bankroll:         bankroll,
		strategy:         strategy,
	}
}

// Bankroll returns the player's current bankroll
func (p *Player) Bankroll() float64 {
	return p.bankroll
}

// Stop asks the strategy whether to walk away before the next game
func (p *Player) Stop() bool {
	return p.strategy.Stop(p.bankroll)
}

// Bet asks the strategy for the next game's wager and records it
func (p *Player) Bet() float64 {
	return p.SetBet(p.strategy.Bet(p.bankroll, p.lastOutcome))
}

// SetBet records the initial bet for the next game. This is only the
// initial bet, not the total riding on the current game.
func (p *Player) SetBet(bet float64) float64 {
	p.bet = bet
	return p.bet
}

// CurrentBet returns the total bet across all hands in this game
func (p *Player) CurrentBet() float64 {
	total := 0.0
	for _, hand := range p.hands {
		total += hand.Bet()
	}
	return total
}

// AddHand appends a hand to the current game
func (p *Player) AddHand(hand *Hand) {
	p.hands = append(p.hands, hand)
}

// Hands returns the hands of the current game
func (p *Player) Hands() []*Hand {
	return p.hands
}

// IsBusted checks if every one of the player's hands is busted
func (p *Player) IsBusted() bool {
	for _, hand := range p.hands {
		if !hand.IsBusted() {
			return false
		}
	}
	return true
}

// IsDone checks if every one of the player's hands is done
func (p *Player) IsDone() bool {
	for _, hand := range p.hands {
		if !hand.IsDone() {
			return false
		}
	}
	return true
}

// CanBet checks the bankroll against the bets already riding plus the
// proposed amount
func (p *Player) CanBet(amount float64) bool {
	return p.bankroll >= p.CurrentBet()+amount
}

// Play drives every hand to completion. Splits append to the hand list
// mid-loop, so the scan is index-based and re-checks the length each
// pass; a freshly split hand may itself split again.
func (p *Player) Play(shoe *Shoe, maxHands int, dealerUpcard entities.Card) error {
	for i := 0; i < len(p.hands); i++ {
		hand := p.hands[i]

		for !hand.IsDone() {
			canSplit := hand.IsSplittable() && p.CanBet(p.bet) && len(p.hands) < maxHands
			canDouble := hand.IsDoubleable() && p.CanBet(p.bet)

			switch p.strategy.Act(hand, dealerUpcard, canDouble, canSplit) {
			case ActionStand:
				hand.Stand()

			case ActionDouble:
				hand.Double()
				if err := hand.AddCard(shoe.Deal()); err != nil {
					return fmt.Errorf("doubling hand: %w", err)
				}

			case ActionHit:
				if err := hand.AddCard(shoe.Deal()); err != nil {
					return fmt.Errorf("hitting hand: %w", err)
				}

			case ActionSplit:
				moved, ok := hand.Split()
				if err := hand.AddCard(shoe.Deal()); err != nil {
					return fmt.Errorf("replacing split card: %w", err)
				}

				newHand := NewHand(p.bet)
				newHand.Split()
				if ok {
					if err := newHand.AddCard(moved); err != nil {
						return fmt.Errorf("moving split card: %w", err)
					}
				}
				if err := newHand.AddCard(shoe.Deal()); err != nil {
					return fmt.Errorf("dealing to split hand: %w", err)
				}
				p.AddHand(newHand)
			}
		}
	}

	return nil
}

// EndGame settles every hand against the dealer's, feeds all dealt
// cards to the strategy's counting hook, and discards the hands.
// lastOutcome accumulates the net of this game's wins and losses.
func (p *Player) EndGame(dealerHand *Hand, blackjackPayout float64, shoeRemaining int) {
	p.lastOutcome = 0

	for _, hand := range p.hands {
		p.handsPlayed++

		if hand.IsDoubled() {
			p.doubles++
		}

		// Both halves of a split register here, so add a half each.
		if hand.IsSplit() {
			p.splits += 0.5
		}

		if hand.IsBusted() {
			p.busts++
			p.lose(hand.Bet())
		} else if hand.IsBlackjack() {
			p.blackjacks++
			if !dealerHand.IsBlackjack() {
				p.win(hand.Bet() * blackjackPayout)
			} else {
				p.pushes++
			}
		} else if dealerHand.IsBusted() || hand.Value() > dealerHand.Value() {
			p.win(hand.Bet())
		} else if hand.Value() < dealerHand.Value() {
			p.lose(hand.Bet())
		} else {
			p.pushes++
		}

		for _, card := range hand.Cards() {
			p.strategy.Count(card, shoeRemaining)
		}
	}

	for _, card := range dealerHand.Cards() {
		p.strategy.Count(card, shoeRemaining)
	}

	p.hands = nil
}

// win adds a won bet to the bankroll
func (p *Player) win(bet float64) {
	p.wins++
	p.bankroll += bet
	p.lastOutcome += bet
}

// lose subtracts a lost bet from the bankroll
func (p *Player) lose(bet float64) {
	p.losses++
	p.bankroll -= bet
	p.lastOutcome -= bet
}

// HandsPlayed returns the cumulative count of settled hands
func (p *Player) HandsPlayed() int {
	return p.handsPlayed
}

// LastOutcome returns the net result of the previous game
func (p *Player) LastOutcome() float64 {
	return p.lastOutcome
}

// Results returns the player's results rows followed by the
// strategy's own rows
func (p *Player) Results() []entities.ResultRow {
	total := float64(p.handsPlayed)

	rows := []entities.ResultRow{
		{Label: "Starting bankroll", Value: fmt.Sprintf("%.2f", p.startingBankroll)},
		{Label: "Bankroll", Value: formatWithPercentage(p.bankroll, p.startingBankroll)},
		{Label: "Change", Value: formatWithPercentage(p.bankroll-p.startingBankroll, p.startingBankroll)},
		{Label: "Hands", Value: strconv.Itoa(p.handsPlayed)},
		{Label: "Wins", Value: formatWithPercentage(float64(p.wins), total)},
		{Label: "Loses", Value: formatWithPercentage(float64(p.losses), total)},
		{Label: "Pushes", Value: formatWithPercentage(float64(p.pushes), total)},
		{Label: "Doubles", Value: formatWithPercentage(float64(p.doubles), total)},
		{Label: "Splits", Value: formatWithPercentage(p.splits, total)},
		{Label: "Blackjacks", Value: formatWithPercentage(float64(p.blackjacks), total)},
		{Label: "Busts", Value: formatWithPercentage(float64(p.busts), total)},
	}

	return append(rows, p.strategy.Results()...)
}

// formatWithPercentage renders a value alongside the percentage it is
// of a total, e.g. 5 of 10 renders "5 (50.00%)". A zero total renders
// "n/a" instead of dividing by zero.
func formatWithPercentage(value, total float64) string {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if total == 0 {
		return fmt.Sprintf("%s (n/a)", formatted)
	}
	return fmt.Sprintf("%s (%.2f%%)", formatted, value*100/total)
}
