package room

import "errors"

// ErrGameInProgress is returned when the table already has a live game
var ErrGameInProgress = errors.New("a game is already in progress at this table")

// ErrNoActiveGame is returned when the table has no live game
var ErrNoActiveGame = errors.New("no active game at this table")
