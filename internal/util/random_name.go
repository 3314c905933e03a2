package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Lucky", "Shuffled", "Stacked", "Wild", "High", "Crooked", "Velvet", "Marked",
	"Golden", "Rusty", "Sly", "Smoky", "Neon", "Midnight", "Dapper", "Brazen",
}

var nouns = []string{
	"Table", "Parlor", "Saloon", "Den", "Lounge", "Backroom", "Casino", "Deck",
	"Draw", "Gambit", "Wager", "Cut", "Flourish", "Kitty", "Pot", "Showdown",
}

// GetRandomName returns a random table name by combining an adjective with a noun
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	nounsIndex := random.Intn(len(nouns))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nouns[nounsIndex])
}
