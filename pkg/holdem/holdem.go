package holdem

import (
	"errors"
	"fmt"

	"chatpoker-holdem/internal/rng"
	"chatpoker-holdem/pkg/deck"
	"chatpoker-holdem/pkg/poker"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxPlayers keeps two hole cards each, three burns, and five community cards
// within a single 52-card deck
const maxPlayers = 22

// Options configures how a hand of Texas Hold'em is played
type Options struct {
	SmallBlind    int
	StartingStack int
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind:    100,
		StartingStack: 10000,
	}
}

// BigBlind is always twice the small blind
func (o Options) BigBlind() int {
	return o.SmallBlind * 2
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.StartingStack < opts.BigBlind() {
		return errors.New("starting stack must cover the big blind")
	}

	return nil
}

// Game is a single hand of Texas Hold'em
// A Game performs no synchronization of its own; the caller must serialize
// all calls for a given table.
type Game struct {
	id      string
	logger  logrus.FieldLogger
	options Options

	deck             *deck.Deck
	participants     map[int64]*Participant
	participantOrder []int64
	dealerIndex      int
	currentIndex     int
	stage            Stage
	pot              int
	currentBet       int
	community        deck.Hand

	winners         []int64
	payouts         map[int64]int
	showdownReached bool
	finished        bool
}

// NewGame deals a new hand of Texas Hold'em to the given players
// Seat order follows the order of playerIDs and is fixed for the hand. The
// dealer button lands on a uniformly random seat, blinds post from the two
// seats after it, and the seat after the big blind acts first.
func NewGame(logger logrus.FieldLogger, playerIDs []int64, opts Options) (*Game, error) {
	return newGame(logger, playerIDs, opts, rng.Crypto{})
}

func newGame(logger logrus.FieldLogger, playerIDs []int64, opts Options, random rng.Generator) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(playerIDs) < 2 {
		return nil, ErrInsufficientPlayers
	}

	if len(playerIDs) > maxPlayers {
		return nil, PlayerCountError{Min: 2, Max: maxPlayers, Got: len(playerIDs)}
	}

	d := deck.New(random)
	d.Shuffle()

	participants := make(map[int64]*Participant, len(playerIDs))
	participantOrder := make([]int64, len(playerIDs))
	copy(participantOrder, playerIDs)

	for _, id := range participantOrder {
		if _, ok := participants[id]; ok {
			return nil, fmt.Errorf("duplicate player: %d", id)
		}

		participants[id] = newParticipant(id, opts.StartingStack)
	}

	g := &Game{
		id:               uuid.New().String(),
		options:          opts,
		deck:             d,
		participants:     participants,
		participantOrder: participantOrder,
		stage:            StagePreFlop,
		community:        make(deck.Hand, 0, 5),
		payouts:          make(map[int64]int),
	}
	g.logger = logger.WithField("game", g.id)

	n := len(participantOrder)
	g.dealerIndex = random.Intn(n)

	// two passes in seat order, one card at a time
	for i := 0; i < 2; i++ {
		for _, id := range g.participantOrder {
			card, err := g.deck.Draw()
			if err != nil {
				return nil, err
			}

			g.participants[id].cards.AddCard(card)
		}
	}

	smallBlind := g.participants[participantOrder[(g.dealerIndex+1)%n]]
	bigBlind := g.participants[participantOrder[(g.dealerIndex+2)%n]]

	g.pot += smallBlind.betTo(opts.SmallBlind)
	g.pot += bigBlind.betTo(opts.BigBlind())
	g.currentBet = opts.BigBlind()

	// under the gun
	g.currentIndex = (g.dealerIndex + 3) % n

	g.logger.WithFields(logrus.Fields{
		"players": n,
		"dealer":  participantOrder[g.dealerIndex],
	}).Debug("hand started")

	return g, nil
}

// Apply performs the action for the player and advances the hand
// This is the single entry point for all state changes. Both interactive
// input and the turn-timeout driver go through here. On any returned error
// the game state is unchanged.
func (g *Game) Apply(playerID int64, act Action, amount int) error {
	if g.finished {
		return ErrHandOver
	}

	p, ok := g.participants[playerID]
	if !ok {
		return ErrPlayerNotFound
	}

	if p.folded {
		return ErrPlayerAlreadyFolded
	}

	if g.participantOrder[g.currentIndex] != playerID {
		return ErrNotPlayersTurn
	}

	logAmount := amount
	switch act {
	case Fold:
		p.folded = true
	case Check:
		if p.bet != g.currentBet {
			return ErrIllegalCheck
		}
	case Call:
		owed := g.currentBet - p.bet
		if owed <= 0 {
			return ErrIllegalCall
		}

		if owed > p.stack {
			return ErrInsufficientChips
		}

		g.pot += p.betTo(g.currentBet)
		logAmount = owed
	case Bet, Raise:
		if amount <= g.currentBet {
			return ErrIllegalRaiseAmount
		}

		if amount-p.bet > p.stack {
			return ErrInsufficientChips
		}

		g.pot += p.betTo(amount)
		g.currentBet = amount

		// everyone else must act again against the new bet
		for _, other := range g.participants {
			if other != p && !other.folded {
				other.acted = false
			}
		}
	default:
		return fmt.Errorf("unknown action: %s", act)
	}

	p.acted = true
	g.logger.WithField("player", playerID).Debug(act.LogMessage(logAmount))

	if g.activeCount() <= 1 {
		g.resolveShowdown()
		return nil
	}

	if g.isRoundOver() {
		if err := g.advanceStage(); err != nil {
			return err
		}

		if g.finished {
			return nil
		}
	}

	g.advanceTurn()
	return nil
}

func (g *Game) activeCount() int {
	count := 0
	for _, p := range g.participants {
		if !p.folded {
			count++
		}
	}

	return count
}

// isRoundOver returns true once every active player has acted and matched the current bet
func (g *Game) isRoundOver() bool {
	for _, id := range g.participantOrder {
		p := g.participants[id]
		if p.folded {
			continue
		}

		if !p.acted || p.bet != g.currentBet {
			return false
		}
	}

	return true
}

// advanceStage moves the hand to the next street
// Entering the flop, turn, or river burns one card before dealing. Reaching
// the showdown resolves the hand instead.
func (g *Game) advanceStage() error {
	g.stage++

	if g.stage >= StageShowdown {
		g.resolveShowdown()
		return nil
	}

	if _, err := g.deck.Draw(); err != nil {
		return err
	}

	cards, err := g.deck.Deal(g.stage.communityCardsDealt())
	if err != nil {
		return err
	}

	g.community = append(g.community, cards...)
	g.currentBet = 0
	for _, p := range g.participants {
		p.newRound()
	}

	g.logger.WithField("community", g.community.String()).Debugf("dealt the %s", g.stage)
	return nil
}

// advanceTurn moves to the next active seat, cyclically
func (g *Game) advanceTurn() {
	n := len(g.participantOrder)
	for i := 1; i <= n; i++ {
		index := (g.currentIndex + i) % n
		if !g.participants[g.participantOrder[index]].folded {
			g.currentIndex = index
			return
		}
	}

	// no other active player remains; the hand is over regardless of stage
	g.resolveShowdown()
}

// resolveShowdown determines the winners and pays out the pot
// With a single active player left there is nothing to evaluate; otherwise
// the best five-card hand from hole plus community cards takes it, with ties
// splitting the pot in seat order.
func (g *Game) resolveShowdown() {
	g.stage = StageShowdown

	active := make([]int64, 0, len(g.participantOrder))
	for _, id := range g.participantOrder {
		if !g.participants[id].folded {
			active = append(active, id)
		}
	}

	var winners []int64
	if len(active) == 1 {
		winners = active
	} else {
		g.showdownReached = true

		hands := make([][]*deck.Card, len(active))
		for i, id := range active {
			hands[i] = append(g.participants[id].cards.Clone(), g.community...)
		}

		winners = make([]int64, 0, 1)
		for _, index := range poker.Winners(hands) {
			winners = append(winners, active[index])
		}
	}

	g.winners = winners
	g.payouts = poker.SplitPot(g.pot, winners)

	for id, amount := range g.payouts {
		g.participants[id].stack += amount
	}
	g.pot = 0
	g.finished = true

	g.logger.WithFields(logrus.Fields{
		"winners": winners,
		"payouts": g.payouts,
	}).Debug("hand complete")
}

// ID returns the unique identifier of the hand
func (g *Game) ID() string {
	return g.id
}

// Stage returns the current betting street
func (g *Game) Stage() Stage {
	return g.stage
}

// Pot returns the chips in the pot
func (g *Game) Pot() int {
	return g.pot
}

// CurrentBet returns the highest total contribution required this round
func (g *Game) CurrentBet() int {
	return g.currentBet
}

// Community returns the community cards dealt so far
func (g *Game) Community() deck.Hand {
	return g.community.Clone()
}

// DealerID returns the player on the button
func (g *Game) DealerID() int64 {
	return g.participantOrder[g.dealerIndex]
}

// CurrentTurn returns the player whose turn it is
// ok is false once the hand is finished.
func (g *Game) CurrentTurn() (int64, bool) {
	if g.finished {
		return 0, false
	}

	return g.participantOrder[g.currentIndex], true
}

// Participant returns the seated participant for the player
func (g *Game) Participant(playerID int64) (*Participant, bool) {
	p, ok := g.participants[playerID]
	return p, ok
}

// HoleCards returns the player's own two hole cards
func (g *Game) HoleCards(playerID int64) (deck.Hand, error) {
	p, ok := g.participants[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	return p.cards.Clone(), nil
}

// Finished returns true once the pot has been paid out
func (g *Game) Finished() bool {
	return g.finished
}

// Winners returns the winning players, in seat order
// Only populated once the hand is finished.
func (g *Game) Winners() []int64 {
	return g.winners
}

// Payouts returns what each winner takes from the pot
// The caller is responsible for crediting persistent balances exactly once.
func (g *Game) Payouts() map[int64]int {
	payouts := make(map[int64]int, len(g.payouts))
	for id, amount := range g.payouts {
		payouts[id] = amount
	}

	return payouts
}
