package holdem

import "encoding/json"

// Stage represents the betting street the hand is on
type Stage int

// constants for Stage
const (
	StagePreFlop Stage = iota
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
)

// communityCardsDealt returns how many community cards are dealt entering the stage
func (s Stage) communityCardsDealt() int {
	switch s {
	case StageFlop:
		return 3
	case StageTurn, StageRiver:
		return 1
	}

	return 0
}

func (s Stage) String() string {
	switch s {
	case StagePreFlop:
		return "pre-flop"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	case StageShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
