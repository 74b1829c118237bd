package room

import (
	"sync"

	"chatpoker-holdem/internal/config"
	"chatpoker-holdem/pkg/holdem"

	"github.com/sirupsen/logrus"
)

// Floor keeps every table in the room
// Each table holds either a lobby of joined players or a live game, never
// both. All game mutations for a table run under that table's lock, so an
// interactive action and a turn-timeout firing at the same instant cannot
// both advance the same turn.
type Floor struct {
	logger  logrus.FieldLogger
	options holdem.Options

	lock   sync.Mutex
	tables map[string]*table
}

type table struct {
	lock  sync.Mutex
	lobby []int64
	game  *holdem.Game
}

// NewFloor returns a floor using the hold'em options from the configuration
func NewFloor(logger logrus.FieldLogger) *Floor {
	cfg := config.Instance()

	return NewFloorWithOptions(logger, holdem.Options{
		SmallBlind:    cfg.Holdem.SmallBlind,
		StartingStack: cfg.Holdem.StartingStack,
	})
}

// NewFloorWithOptions returns a floor with explicit hold'em options
func NewFloorWithOptions(logger logrus.FieldLogger, options holdem.Options) *Floor {
	return &Floor{
		logger:  logger,
		options: options,
		tables:  make(map[string]*table),
	}
}

func (f *Floor) table(tableID string, create bool) *table {
	f.lock.Lock()
	defer f.lock.Unlock()

	t, ok := f.tables[tableID]
	if !ok && create {
		t = &table{}
		f.tables[tableID] = t
	}

	return t
}

// Join adds the player to the table's lobby and returns the members
// Joining twice is a no-op. Fails with ErrGameInProgress once a game started.
func (f *Floor) Join(tableID string, playerID int64) ([]int64, error) {
	t := f.table(tableID, true)

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.game != nil {
		return nil, ErrGameInProgress
	}

	found := false
	for _, id := range t.lobby {
		if id == playerID {
			found = true
			break
		}
	}

	if !found {
		t.lobby = append(t.lobby, playerID)
	}

	f.logger.WithFields(logrus.Fields{
		"table":  tableID,
		"player": playerID,
	}).Debug("player joined")

	return t.members(), nil
}

// members must be called with the table lock held
func (t *table) members() []int64 {
	members := make([]int64, len(t.lobby))
	copy(members, t.lobby)

	return members
}

// Members returns a snapshot of the table's lobby
func (f *Floor) Members(tableID string) []int64 {
	t := f.table(tableID, false)
	if t == nil {
		return []int64{}
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	return t.members()
}

// StartGame deals a hand to the lobby members and replaces the lobby with it
func (f *Floor) StartGame(tableID string) (*holdem.Game, error) {
	t := f.table(tableID, false)
	if t == nil {
		return nil, holdem.ErrInsufficientPlayers
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.game != nil {
		return nil, ErrGameInProgress
	}

	if len(t.lobby) < 2 {
		return nil, holdem.ErrInsufficientPlayers
	}

	game, err := holdem.NewGame(f.logger.WithField("table", tableID), t.lobby, f.options)
	if err != nil {
		return nil, err
	}

	t.game = game
	t.lobby = nil

	return game, nil
}

// Game returns the live game at the table, if any
func (f *Floor) Game(tableID string) (*holdem.Game, bool) {
	t := f.table(tableID, false)
	if t == nil {
		return nil, false
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.game == nil {
		return nil, false
	}

	return t.game, true
}

// EndGame removes the table entirely
// Any timer still referencing the table becomes a no-op when it fires.
func (f *Floor) EndGame(tableID string) {
	f.lock.Lock()
	defer f.lock.Unlock()

	delete(f.tables, tableID)
}

// Apply performs a player action against the table's live game
// This is the choke-point the interactive caller and the timeout driver
// share; calls for the same table are serialized by the table lock.
func (f *Floor) Apply(tableID string, playerID int64, action holdem.Action, amount int) (*holdem.GameState, error) {
	t := f.table(tableID, false)
	if t == nil {
		return nil, ErrNoActiveGame
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.game == nil {
		return nil, ErrNoActiveGame
	}

	if err := t.game.Apply(playerID, action, amount); err != nil {
		return nil, err
	}

	return t.game.State(playerID), nil
}

// ApplyTimeout plays the default action for the player if they are still on the clock
// A stale timer (table gone, game over, or the player already acted) is a
// no-op and returns a nil state.
func (f *Floor) ApplyTimeout(tableID string, playerID int64) (*holdem.GameState, error) {
	t := f.table(tableID, false)
	if t == nil {
		return nil, nil
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.game == nil {
		return nil, nil
	}

	turn, ok := t.game.CurrentTurn()
	if !ok || turn != playerID {
		return nil, nil
	}

	action, err := t.game.DefaultAction(playerID)
	if err != nil {
		return nil, err
	}

	f.logger.WithFields(logrus.Fields{
		"table":  tableID,
		"player": playerID,
		"action": action,
	}).Debug("turn timed out")

	if err := t.game.Apply(playerID, action, 0); err != nil {
		return nil, err
	}

	return t.game.State(playerID), nil
}
