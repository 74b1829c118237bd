package holdem

import (
	"testing"

	"chatpoker-holdem/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// zeroGenerator always returns 0: the deck "shuffle" is a no-op permutation
// and the dealer button lands on seat 0
type zeroGenerator struct{}

func (zeroGenerator) Intn(n int) int {
	return 0
}

func testGame(t *testing.T, playerIDs []int64) *Game {
	t.Helper()

	g, err := newGame(logrus.StandardLogger(), playerIDs, DefaultOptions(), zeroGenerator{})
	assert.NoError(t, err)
	assert.NotNil(t, g)

	return g
}

// chipTotal is Σ(stacks) + pot, which must not change across any action
func chipTotal(g *Game) int {
	total := g.pot
	for _, p := range g.participants {
		total += p.stack
	}

	return total
}

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, []int64{1, 2})

	// scenario: 10000 stacks, 100/200 blinds
	a.Equal(300, g.Pot())
	a.Equal(200, g.CurrentBet())
	a.Equal(StagePreFlop, g.Stage())

	for _, id := range []int64{1, 2} {
		cards, err := g.HoleCards(id)
		a.NoError(err)
		a.Equal(2, len(cards))
	}

	// dealer on seat 0: seat 1 posts the small blind, seat 0 the big blind
	a.Equal(int64(1), g.DealerID())
	a.Equal(9900, g.participants[2].Stack())
	a.Equal(9800, g.participants[1].Stack())

	// heads-up, the seat after the big blind is the small blind again
	turn, ok := g.CurrentTurn()
	a.True(ok)
	a.Equal(int64(2), turn)

	a.Equal(48, g.deck.CardsLeft())
	a.Equal(10000*2, chipTotal(g))
}

func TestNewGame_errors(t *testing.T) {
	a := assert.New(t)

	logger := logrus.StandardLogger()

	g, err := NewGame(logger, []int64{1}, DefaultOptions())
	a.Equal(ErrInsufficientPlayers, err)
	a.Nil(g)

	tooMany := make([]int64, 23)
	for i := range tooMany {
		tooMany[i] = int64(i + 1)
	}
	g, err = NewGame(logger, tooMany, DefaultOptions())
	a.EqualError(err, "expected 2–22 players, got 23")
	a.Nil(g)

	g, err = NewGame(logger, []int64{1, 2, 1}, DefaultOptions())
	a.EqualError(err, "duplicate player: 1")
	a.Nil(g)

	g, err = NewGame(logger, []int64{1, 2}, Options{SmallBlind: 0, StartingStack: 1000})
	a.EqualError(err, "small blind must be > 0")
	a.Nil(g)

	g, err = NewGame(logger, []int64{1, 2}, Options{SmallBlind: 600, StartingStack: 1000})
	a.EqualError(err, "starting stack must cover the big blind")
	a.Nil(g)
}

func TestNewGame_threeHanded(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, []int64{10, 20, 30})

	// dealer seat 0: small blind seat 1, big blind seat 2, UTG back at seat 0
	a.Equal(int64(10), g.DealerID())
	a.Equal(9900, g.participants[20].Stack())
	a.Equal(9800, g.participants[30].Stack())

	turn, ok := g.CurrentTurn()
	a.True(ok)
	a.Equal(int64(10), turn)

	a.Equal(46, g.deck.CardsLeft())
}

func TestGame_Apply_preconditions(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, []int64{1, 2, 3})

	a.Equal(ErrPlayerNotFound, g.Apply(99, Check, 0))
	a.Equal(ErrNotPlayersTurn, g.Apply(2, Call, 0))

	// UTG is seat 0 (player 1) and owes the big blind
	a.Equal(ErrIllegalCheck, g.Apply(1, Check, 0))
	a.Equal(ErrIllegalRaiseAmount, g.Apply(1, Raise, 200))
	a.Equal(ErrIllegalRaiseAmount, g.Apply(1, Raise, 150))
	a.Equal(ErrInsufficientChips, g.Apply(1, Raise, 20000))

	// nothing was mutated by the failed attempts
	a.Equal(300, g.Pot())
	a.Equal(200, g.CurrentBet())
	turn, _ := g.CurrentTurn()
	a.Equal(int64(1), turn)

	a.NoError(g.Apply(1, Fold, 0))
	a.Equal(ErrPlayerAlreadyFolded, g.Apply(1, Check, 0))
}

func TestGame_Apply_callAndCheckAdvancesStage(t *testing.T) {
	a := assert.New(t)

	// heads-up: player 2 is the small blind and acts first
	g := testGame(t, []int64{1, 2})

	a.Equal(ErrIllegalCheck, g.Apply(2, Check, 0))

	total := chipTotal(g)
	a.NoError(g.Apply(2, Call, 0))
	a.Equal(400, g.Pot())
	a.Equal(StagePreFlop, g.Stage())
	a.Equal(total, chipTotal(g))

	// big blind already matches the bet, so calling is illegal but checking ends the round
	a.Equal(ErrIllegalCall, g.Apply(1, Call, 0))
	a.NoError(g.Apply(1, Check, 0))

	a.Equal(StageFlop, g.Stage())
	a.Equal(3, len(g.Community()))
	a.Equal(0, g.CurrentBet())
	for _, p := range g.participants {
		a.Equal(0, p.bet)
		a.False(p.acted)
	}

	// one burn plus three cards
	a.Equal(44, g.deck.CardsLeft())
	a.Equal(total, chipTotal(g))
}

func TestGame_Apply_foldEndsHand(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, []int64{1, 2})
	total := chipTotal(g)

	// small blind raises, big blind folds: pot goes over uncontested
	a.NoError(g.Apply(2, Raise, 400))
	a.NoError(g.Apply(1, Fold, 0))

	a.True(g.Finished())
	a.Equal(StageShowdown, g.Stage())
	a.Equal([]int64{2}, g.Winners())
	a.Equal(map[int64]int{2: 600}, g.Payouts())
	a.Equal(0, g.Pot())
	a.Equal(10200, g.participants[2].Stack())
	a.Equal(total, chipTotal(g))

	// no more actions once the pot is paid
	a.Equal(ErrHandOver, g.Apply(2, Check, 0))

	_, ok := g.CurrentTurn()
	a.False(ok)

	// an uncontested win reveals no hole cards to the table
	state := g.State(1)
	for _, p := range state.Participants {
		if p.PlayerID != 1 {
			a.Nil(p.HoleCards)
		}
	}
}

func TestGame_Apply_raiseReopensAction(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, []int64{1, 2, 3})

	// UTG (player 1) calls, small blind (player 2) raises
	a.NoError(g.Apply(1, Call, 0))
	a.NoError(g.Apply(2, Raise, 600))
	a.Equal(600, g.CurrentBet())

	// players 1 and 3 must act again
	a.False(g.participants[1].acted)
	a.False(g.participants[3].acted)
	a.True(g.participants[2].acted)

	a.NoError(g.Apply(3, Call, 0))
	a.Equal(StagePreFlop, g.Stage())
	a.NoError(g.Apply(1, Call, 0))

	a.Equal(StageFlop, g.Stage())
	a.Equal(1800, g.Pot())
	a.Equal(10000*3, chipTotal(g))
}

func TestGame_Apply_turnSkipsFolded(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, []int64{1, 2, 3, 4})

	// dealer seat 0; UTG is seat 3 (player 4)
	turn, _ := g.CurrentTurn()
	a.Equal(int64(4), turn)

	a.NoError(g.Apply(4, Fold, 0))
	turn, _ = g.CurrentTurn()
	a.Equal(int64(1), turn)

	a.NoError(g.Apply(1, Call, 0))
	a.NoError(g.Apply(2, Call, 0))
	a.NoError(g.Apply(3, Check, 0))

	// flop: turn moved past the folded seat
	a.Equal(StageFlop, g.Stage())
	turn, _ = g.CurrentTurn()
	a.Equal(int64(1), turn)

	for g.Stage() == StageFlop {
		turn, _ := g.CurrentTurn()
		a.NotEqual(int64(4), turn, "folded player must never be on the clock")
		a.NoError(g.Apply(turn, Check, 0))
	}

	a.Equal(StageTurn, g.Stage())
	a.Equal(4, len(g.Community()))
}

func TestGame_fullHandToShowdown(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, []int64{1, 2, 3})
	total := chipTotal(g)

	// pre-flop: UTG calls, small blind calls, big blind checks
	a.NoError(g.Apply(1, Call, 0))
	a.NoError(g.Apply(2, Call, 0))
	a.NoError(g.Apply(3, Check, 0))
	a.Equal(StageFlop, g.Stage())
	a.Equal(600, g.Pot())

	for _, stage := range []Stage{StageTurn, StageRiver, StageShowdown} {
		for i := 0; i < 3; i++ {
			turn, ok := g.CurrentTurn()
			a.True(ok)
			a.NoError(g.Apply(turn, Check, 0))
		}

		a.Equal(stage, g.Stage())
	}

	a.True(g.Finished())
	a.Equal(5, len(g.Community()))
	a.NotEmpty(g.Winners())
	a.Equal(0, g.Pot())
	a.Equal(total, chipTotal(g))

	paid := 0
	for _, amount := range g.Payouts() {
		paid += amount
	}
	a.Equal(600, paid)

	// a contested showdown reveals the remaining hands
	state := g.State(1)
	for _, p := range state.Participants {
		a.Equal(2, len(p.HoleCards))
	}
}

func TestGame_communityMonotonic(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, []int64{1, 2})
	a.Equal(0, len(g.Community()))

	a.NoError(g.Apply(2, Call, 0))
	a.NoError(g.Apply(1, Check, 0))
	a.Equal(3, len(g.Community()))

	flop := g.Community().String()

	// post-flop the turn moved to the seat after the last pre-flop actor
	a.NoError(g.Apply(2, Check, 0))
	a.NoError(g.Apply(1, Check, 0))
	a.Equal(4, len(g.Community()))
	a.Equal(flop, g.Community()[0:3].String())

	a.NoError(g.Apply(2, Check, 0))
	a.NoError(g.Apply(1, Check, 0))
	a.Equal(5, len(g.Community()))
}

func TestGame_deckIntegrity(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, []int64{1, 2, 3, 4})

	seen := make(map[string]bool)
	record := func(cards deck.Hand) {
		for _, c := range cards {
			key := deck.CardToString(c)
			a.False(seen[key], "card %s dealt twice", key)
			seen[key] = true
		}
	}

	for _, id := range []int64{1, 2, 3, 4} {
		cards, err := g.HoleCards(id)
		a.NoError(err)
		record(cards)
	}

	a.NoError(g.Apply(4, Call, 0))
	a.NoError(g.Apply(1, Call, 0))
	a.NoError(g.Apply(2, Call, 0))
	a.NoError(g.Apply(3, Check, 0))

	record(g.Community())
	a.Equal(8+3, len(seen))
}
