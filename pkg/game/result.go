package game

import (
	"highcard/pkg/deck"
)

// DrawEvent is a single card draw within a round, in deal order
type DrawEvent struct {
	Player *Player
	Card   *deck.Card
}

// Result is the outcome of a scored round
type Result struct {
	// UUID identifies the round, so consumers tracking many rounds can
	// correlate results with their own bookkeeping
	UUID string

	// Draws holds the round's draw events in deal order.
	// Only populated by Play(); a direct CompareHands() call leaves it nil.
	Draws []DrawEvent

	// Points is each player's hand value, keyed by player identity
	Points map[*Player]int

	// Winner is the player with the strictly higher hand value, or nil if
	// the round was a tie
	Winner *Player
}

// IsTie returns true if neither player won the round
func (r *Result) IsTie() bool {
	return r.Winner == nil
}
