package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"highcard/internal/config"
	"highcard/internal/util"
	"highcard/pkg/game"

	"github.com/sirupsen/logrus"
)

// Version is the game version
var Version = "v0.0.0-dev"

var rounds = flag.Int("rounds", 0, "the number of rounds to play (overrides config)")
var quiet = flag.Bool("quiet", false, "suppress per-draw and per-round messages")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	n := cfg.Rounds
	if *rounds > 0 {
		n = *rounds
	}
	if n < 1 {
		n = 1
	}

	beQuiet := cfg.Quiet || *quiet

	logger := logrus.WithFields(logrus.Fields{
		"version": Version,
		"table":   util.GetRandomName(),
	})

	g := game.NewGame(logger)

	wins := make(map[*game.Player]int)
	ties := 0
	for i := 0; i < n; i++ {
		result, err := g.Play()
		if err != nil {
			logger.WithError(err).Fatal("could not play round")
		}

		if !beQuiet {
			printRound(g, result)
		}

		if result.Winner != nil {
			wins[result.Winner]++
		} else {
			ties++
		}
	}

	if n > 1 {
		fmt.Printf("After %d rounds: Player 1 won %d, Player 2 won %d, %d tied\n",
			n, wins[g.Player1()], wins[g.Player2()], ties)
	}
}

func printRound(g *game.Game, result *game.Result) {
	for _, draw := range result.Draws {
		fmt.Printf("Player %d draws %s\n", draw.Player.Number, draw.Card)
		if draw.Player == g.Player2() {
			fmt.Println("--------")
		}
	}

	fmt.Printf("Player 1 scores %d points!\n", result.Points[g.Player1()])
	fmt.Printf("Player 2 scores %d points!\n", result.Points[g.Player2()])

	if result.Winner != nil {
		fmt.Printf("Player %d wins!\n", result.Winner.Number)
	} else {
		fmt.Println("Players tie and there is no winner!")
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
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
