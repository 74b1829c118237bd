package holdem

import "chatpoker-holdem/pkg/deck"

// ActionOption is a legal action along with a suggested amount
// Call carries the amount owed; Bet and Raise carry a suggested increment
// (the big blind, or double the current bet).
type ActionOption struct {
	Action Action `json:"action"`
	Amount int    `json:"amount,omitempty"`
}

// GameState is a read-only snapshot of the hand for the presentation layer
// Hole cards are only populated for the player the snapshot was built for,
// and for everyone still in at a contested showdown.
type GameState struct {
	ID           string             `json:"id"`
	Stage        Stage              `json:"stage"`
	Pot          int                `json:"pot"`
	CurrentBet   int                `json:"currentBet"`
	Community    deck.Hand          `json:"community"`
	DealerID     int64              `json:"dealerId"`
	CurrentTurn  int64              `json:"currentTurn"`
	Participants []*participantJSON `json:"participants"`
	Actions      []ActionOption     `json:"actions"`
	Winners      []int64            `json:"winners,omitempty"`
	Payouts      map[int64]int      `json:"payouts,omitempty"`
	Finished     bool               `json:"finished"`
}

// State returns the snapshot of the game as seen by the given player
func (g *Game) State(playerID int64) *GameState {
	participants := make([]*participantJSON, len(g.participantOrder))
	for i, id := range g.participantOrder {
		p := g.participants[id]
		reveal := id == playerID || (g.showdownReached && !p.folded)
		participants[i] = p.participantJSON(g, reveal)
	}

	var currentTurn int64
	if turn, ok := g.CurrentTurn(); ok {
		currentTurn = turn
	}

	return &GameState{
		ID:           g.id,
		Stage:        g.stage,
		Pot:          g.pot,
		CurrentBet:   g.currentBet,
		Community:    g.community.Clone(),
		DealerID:     g.DealerID(),
		CurrentTurn:  currentTurn,
		Participants: participants,
		Actions:      g.ActionsForParticipant(playerID),
		Winners:      g.winners,
		Payouts:      g.Payouts(),
		Finished:     g.finished,
	}
}

// ActionsForParticipant returns the actions the player may take right now
// Returns nil unless it is the player's turn. Fold is always legal; check is
// legal only with the current bet matched, otherwise call for the owed
// amount; a bet or raise is offered whenever the stack can still exceed the
// current bet.
func (g *Game) ActionsForParticipant(playerID int64) []ActionOption {
	turn, ok := g.CurrentTurn()
	if !ok || turn != playerID {
		return nil
	}

	p := g.participants[playerID]

	actions := make([]ActionOption, 0, 3)
	if p.bet == g.currentBet {
		actions = append(actions, ActionOption{Action: Check})
	} else {
		actions = append(actions, ActionOption{Action: Call, Amount: g.currentBet - p.bet})
	}

	if maxBet := p.bet + p.stack; maxBet > g.currentBet {
		if g.currentBet == 0 {
			suggested := g.options.BigBlind()
			if suggested > maxBet {
				suggested = maxBet
			}

			actions = append(actions, ActionOption{Action: Bet, Amount: suggested})
		} else {
			suggested := g.currentBet * 2
			if suggested > maxBet {
				suggested = maxBet
			}

			actions = append(actions, ActionOption{Action: Raise, Amount: suggested})
		}
	}

	return append(actions, ActionOption{Action: Fold})
}

// DefaultAction is what the turn-timeout driver plays on the player's behalf
// Fold when chips are owed, otherwise check.
func (g *Game) DefaultAction(playerID int64) (Action, error) {
	if g.finished {
		return "", ErrHandOver
	}

	p, ok := g.participants[playerID]
	if !ok {
		return "", ErrPlayerNotFound
	}

	if p.bet < g.currentBet {
		return Fold, nil
	}

	return Check, nil
}
