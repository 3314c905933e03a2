package game

import (
	"highcard/pkg/deck"
)

// Player is a participant in the game. A player keeps a hand of cards and a
// handle to the deck shared by the game instance; the deck must outlive the
// player. Players are compared by identity, never by hand contents, so a
// *Player is a suitable map key for any win tallying the caller keeps.
type Player struct {
	// Number is the player's seat (1 or 2), used for display only
	Number int

	deck *deck.Deck
	hand deck.Hand
}

// NewPlayer returns a new player drawing from the shared deck
func NewPlayer(number int, d *deck.Deck) *Player {
	return &Player{
		Number: number,
		deck:   d,
		hand:   make(deck.Hand, 0, handSize),
	}
}

// DrawOne draws the next card from the shared deck, adds it to the player's
// hand and returns it.
// The deck's ErrEmptyDeck is returned if the draw pile is exhausted; the hand
// is not modified in that case.
func (p *Player) DrawOne() (*deck.Card, error) {
	card, err := p.deck.DrawOne()
	if err != nil {
		return nil, err
	}

	p.hand.AddCard(card)
	return card, nil
}

// Reset removes all cards from the player's hand. Idempotent.
func (p *Player) Reset() {
	p.hand = make(deck.Hand, 0, handSize)
}

// HandValue returns the combined point value of the player's hand, 0 if the
// hand is empty
func (p *Player) HandValue() int {
	return p.hand.Points()
}

// Hand returns a shallow copy of the player's hand in draw order
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}
