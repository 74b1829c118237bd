package holdem

import "chatpoker-holdem/pkg/deck"

// Participant represents an individual player seated in the hand
// Seats are fixed for the duration of the hand; folded players stay in their
// seat with the folded flag set so blind rotation and turn order hold up.
type Participant struct {
	PlayerID int64

	stack  int
	cards  deck.Hand
	folded bool
	acted  bool

	// bet is the total the participant has put in during the current betting round
	bet int
}

func newParticipant(id int64, stack int) *Participant {
	return &Participant{
		PlayerID: id,
		stack:    stack,
		cards:    make(deck.Hand, 0, 2),
	}
}

// Stack returns the participant's remaining chips
func (p *Participant) Stack() int {
	return p.stack
}

// Folded returns true if the participant folded this hand
func (p *Participant) Folded() bool {
	return p.folded
}

// betTo ensures the participant's current-round contribution reaches amount
// The value returned is what was newly taken from the stack. For example, if
// a player already has 100 in and bets to 150, this method returns 50.
func (p *Participant) betTo(amount int) int {
	diff := amount - p.bet
	p.bet = amount
	p.stack -= diff

	return diff
}

// newRound resets the participant for the next betting round
func (p *Participant) newRound() {
	p.bet = 0
	p.acted = false
}

type participantJSON struct {
	PlayerID  int64     `json:"playerId"`
	Stack     int       `json:"stack"`
	Folded    bool      `json:"folded"`
	HasActed  bool      `json:"hasActed"`
	Bet       int       `json:"currentBet"`
	HoleCards deck.Hand `json:"holeCards,omitempty"`
	Payout    int       `json:"payout,omitempty"`
}

func (p *Participant) participantJSON(g *Game, reveal bool) *participantJSON {
	var cards deck.Hand
	if reveal {
		cards = p.cards.Clone()
	}

	return &participantJSON{
		PlayerID:  p.PlayerID,
		Stack:     p.stack,
		Folded:    p.folded,
		HasActed:  p.acted,
		Bet:       p.bet,
		HoleCards: cards,
		Payout:    g.payouts[p.PlayerID],
	}
}
