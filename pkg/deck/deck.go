package deck

import (
	"errors"

	"chatpoker-holdem/internal/rng"
)

// ErrEndOfDeck is an error when a draw is attempted and there are not enough cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
// Cards are consumed from the front and are never returned mid-hand.
type Deck struct {
	Cards []*Card `json:"cards"`

	random rng.Generator
}

// New returns a new, unshuffled deck of cards
// Call Shuffle() before dealing.
func New(random rng.Generator) *Deck {
	if random == nil {
		random = rng.Crypto{}
	}

	d := &Deck{random: random}
	d.buildDeck()

	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= 14; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// The shuffle is a Fisher–Yates pass over the full 52 cards, driven by the
// deck's random generator.
func (d *Deck) Shuffle() {
	if len(d.Cards) != 52 {
		d.buildDeck()
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.random.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal draws n cards at once
// The deck is untouched if there are fewer than n cards left.
func (d *Deck) Deal(n int) ([]*Card, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	cards := d.Cards[0:n]
	d.Cards = d.Cards[n:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
