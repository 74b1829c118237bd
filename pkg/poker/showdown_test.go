package poker

import (
	"testing"

	"chatpoker-holdem/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestWinners(t *testing.T) {
	a := assert.New(t)

	community := deck.CardsFromString("14s,13d,8h,8c,2d")

	holeCards := [][]*deck.Card{
		deck.CardsFromString("14c,3d"), // two pair, aces and eights
		deck.CardsFromString("8d,8s"),  // four of a kind
		deck.CardsFromString("4c,5h"),  // pair of eights
	}

	hands := make([][]*deck.Card, len(holeCards))
	for i, hc := range holeCards {
		hands[i] = append(hc, community...)
	}

	a.Equal([]int{1}, Winners(hands))
}

func TestWinners_multiwayTie(t *testing.T) {
	a := assert.New(t)

	// the community plays for everyone
	community := deck.CardsFromString("14s,13s,12s,11s,10s")

	hands := [][]*deck.Card{
		append(deck.CardsFromString("2c,3d"), community...),
		append(deck.CardsFromString("4h,5c"), community...),
		append(deck.CardsFromString("6d,7h"), community...),
	}

	a.Equal([]int{0, 1, 2}, Winners(hands))
}

func TestSplitPot(t *testing.T) {
	a := assert.New(t)

	a.Equal(map[int64]int{7: 300}, SplitPot(300, []int64{7}))
	a.Equal(map[int64]int{1: 150, 2: 150}, SplitPot(300, []int64{1, 2}))

	// odd chip goes to the first listed winner
	a.Equal(map[int64]int{1: 151, 2: 150}, SplitPot(301, []int64{1, 2}))
	a.Equal(map[int64]int{1: 101, 2: 101, 3: 100}, SplitPot(302, []int64{1, 2, 3}))

	a.Equal(map[int64]int{1: 0, 2: 0}, SplitPot(0, []int64{1, 2}))
	a.Equal(map[int64]int{}, SplitPot(100, nil))
}

func TestSplitPot_sumsToPot(t *testing.T) {
	a := assert.New(t)

	winners := []int64{10, 20, 30, 40, 50, 60, 70}
	for pot := 0; pot < 500; pot += 13 {
		for n := 1; n <= len(winners); n++ {
			total := 0
			for _, amt := range SplitPot(pot, winners[0:n]) {
				total += amt
			}

			a.Equal(pot, total)
		}
	}
}
