package game

import (
	"highcard/pkg/deck"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// handSize is the number of cards each player draws per round
const handSize = 3

// Phase represents the current phase of a round
type Phase int

const (
	// PhaseIdle is when no round is in progress
	PhaseIdle Phase = iota
	// PhaseDealing is when hands have been dealt but not yet compared
	PhaseDealing
	// PhaseScored is when hands have been compared
	PhaseScored
)

// Game is a two-player drawing game. Both players draw from a single shared
// deck and the higher-scoring hand wins the round.
//
// A Game is not safe for concurrent use; a caller exposing it to multiple
// goroutines must serialize access.
type Game struct {
	deck    *deck.Deck
	player1 *Player
	player2 *Player
	phase   Phase

	logger logrus.FieldLogger
}

// NewGame returns a new game with a fresh deck and two players sharing it
func NewGame(logger logrus.FieldLogger) *Game {
	d := deck.New()

	return &Game{
		deck:    d,
		player1: NewPlayer(1, d),
		player2: NewPlayer(2, d),
		phase:   PhaseIdle,
		logger:  logger,
	}
}

// Player1 returns the first player
func (g *Game) Player1() *Player {
	return g.player1
}

// Player2 returns the second player
func (g *Game) Player2() *Player {
	return g.player2
}

// Deck returns the shared deck
func (g *Game) Deck() *deck.Deck {
	return g.deck
}

// Phase returns the current phase of the round
func (g *Game) Phase() Phase {
	return g.phase
}

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDealing:
		return "dealing"
	case PhaseScored:
		return "scored"
	default:
		return "unknown"
	}
}

// Reset clears both hands and returns the game to the idle phase. Idempotent.
// Play() calls this itself; it only needs to be called directly by a caller
// driving DrawCards and CompareHands by hand.
func (g *Game) Reset() {
	g.player1.Reset()
	g.player2.Reset()
	g.phase = PhaseIdle
}

// DrawCards deals the round: players alternate drawing from the shared deck
// until they have drawn three cards each, player 1 first. The draw events are
// returned in deal order.
// If the deck runs out mid-deal, the deck's ErrEmptyDeck is returned; draws
// made before the failure remain in the players' hands and the discard pile.
func (g *Game) DrawCards() ([]DrawEvent, error) {
	if g.phase != PhaseIdle {
		return nil, ErrRoundInProgress
	}

	draws := make([]DrawEvent, 0, 2*handSize)
	for i := 0; i < handSize; i++ {
		for _, p := range []*Player{g.player1, g.player2} {
			card, err := p.DrawOne()
			if err != nil {
				return nil, err
			}

			g.logger.WithFields(logrus.Fields{
				"player": p.Number,
				"card":   card.Short(),
			}).Debug("card drawn")

			draws = append(draws, DrawEvent{Player: p, Card: card})
		}
	}

	g.phase = PhaseDealing
	return draws, nil
}

// CompareHands scores the dealt hands. The player with the strictly higher
// hand value wins; equal hand values are a tie and the result carries no
// winner.
func (g *Game) CompareHands() (*Result, error) {
	if g.phase != PhaseDealing {
		return nil, ErrHandsNotDealt
	}

	points1 := g.player1.HandValue()
	points2 := g.player2.HandValue()

	var winner *Player
	if points1 != points2 {
		winner = g.player1
		if points2 > points1 {
			winner = g.player2
		}
	}

	g.phase = PhaseScored

	result := &Result{
		UUID: uuid.New().String(),
		Points: map[*Player]int{
			g.player1: points1,
			g.player2: points2,
		},
		Winner: winner,
	}

	log := g.logger.WithFields(logrus.Fields{
		"round":   result.UUID,
		"points1": points1,
		"points2": points2,
	})
	if winner != nil {
		log.WithField("winner", winner.Number).Debug("round scored")
	} else {
		log.Debug("round tied")
	}

	return result, nil
}

// Play drives one full round: reset both hands, shuffle the shared deck
// (recombining any prior round's discards), deal, then compare.
// The returned result includes the round's draw events.
func (g *Game) Play() (*Result, error) {
	g.Reset()
	g.deck.Shuffle()

	draws, err := g.DrawCards()
	if err != nil {
		return nil, err
	}

	result, err := g.CompareHands()
	if err != nil {
		return nil, err
	}

	result.Draws = draws
	return result, nil
}
