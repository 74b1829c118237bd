package main

import (
	"flag"
	"os"
	"strings"

	"chatpoker-holdem/internal/rng"
	"chatpoker-holdem/pkg/room"

	"github.com/sirupsen/logrus"
)

var players = flag.Int("players", 4, "number of players at the table")
var hands = flag.Int("hands", 1, "number of hands to play")

func main() {
	flag.Parse()
	setupLogger()

	floor := room.NewFloor(logrus.StandardLogger())
	random := rng.Crypto{}

	for hand := 0; hand < *hands; hand++ {
		playHand(floor, random)
	}
}

// playHand runs one table from lobby to payout, choosing randomly among the
// legal actions each turn
func playHand(floor *room.Floor, random rng.Generator) {
	const tableID = "simulated-table"

	for i := 0; i < *players; i++ {
		if _, err := floor.Join(tableID, int64(i+1)); err != nil {
			logrus.WithError(err).Fatal("could not join table")
		}
	}

	game, err := floor.StartGame(tableID)
	if err != nil {
		logrus.WithError(err).Fatal("could not start game")
	}

	for {
		playerID, ok := game.CurrentTurn()
		if !ok {
			break
		}

		options := game.ActionsForParticipant(playerID)
		choice := options[random.Intn(len(options))]

		state, err := floor.Apply(tableID, playerID, choice.Action, choice.Amount)
		if err != nil {
			logrus.WithError(err).Fatal("could not apply action")
		}

		if state.Finished {
			break
		}
	}

	for playerID, chips := range game.Payouts() {
		logrus.WithFields(logrus.Fields{
			"player": playerID,
			"chips":  chips,
		}).Info("payout")
	}

	floor.EndGame(tableID)
}

func setupLogger() {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
