package holdem

import (
	"errors"
	"fmt"
)

// ErrInsufficientPlayers is returned when a game is started with fewer than two players
var ErrInsufficientPlayers = errors.New("at least two players are required")

// ErrNotPlayersTurn is returned when a player acts out of turn
var ErrNotPlayersTurn = errors.New("it is not your turn")

// ErrPlayerNotFound is returned when the player is not seated in the game
var ErrPlayerNotFound = errors.New("player not found")

// ErrPlayerAlreadyFolded is returned when a folded player attempts an action
var ErrPlayerAlreadyFolded = errors.New("player has already folded")

// ErrIllegalCheck is returned when a player checks with an outstanding bet
var ErrIllegalCheck = errors.New("cannot check with an active bet")

// ErrIllegalCall is returned when a player calls with nothing owed
var ErrIllegalCall = errors.New("there is no bet to call")

// ErrIllegalRaiseAmount is returned when a bet or raise does not exceed the current bet
var ErrIllegalRaiseAmount = errors.New("amount must be greater than the current bet")

// ErrInsufficientChips is returned when a player cannot cover the chips required
var ErrInsufficientChips = errors.New("insufficient chips")

// ErrHandOver is returned when an action is attempted after the hand finished
var ErrHandOver = errors.New("the hand is over")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", p.Min, p.Max, p.Got)
}
