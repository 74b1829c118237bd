package poker

import "chatpoker-holdem/pkg/deck"

// Winners returns the indexes of the hands that no other hand strictly beats
// Multiple indexes mean a multiway tie for the best hand.
func Winners(hands [][]*deck.Card) []int {
	best := 0
	winners := make([]int, 0, 1)

	for i, hand := range hands {
		strength := NewHandAnalyzer(5, hand).GetStrength()
		if strength > best {
			best = strength
			winners = winners[:0]
			winners = append(winners, i)
		} else if strength == best {
			winners = append(winners, i)
		}
	}

	return winners
}

// SplitPot divides the pot among the winners
// Each winner receives pot/n, and the remainder goes out one chip at a time
// in the order the winners are listed. The payouts always sum to the pot.
func SplitPot(pot int, winners []int64) map[int64]int {
	payouts := make(map[int64]int, len(winners))
	if len(winners) == 0 {
		return payouts
	}

	share := pot / len(winners)
	remainder := pot % len(winners)

	for i, id := range winners {
		payout := share
		if i < remainder {
			payout++
		}

		payouts[id] = payout
	}

	return payouts
}
