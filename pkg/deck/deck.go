package deck

import (
	"errors"
	"sort"

	"highcard/internal/rng"
)

// ErrEmptyDeck is an error when DrawOne() is attempted and the draw pile is empty
var ErrEmptyDeck = errors.New("no cards left in the draw pile")

// Deck represents a standard 52-card deck split into a draw pile and a
// discard pile. Every card drawn moves to the discard pile, so the two piles
// always hold the full 52 cards between them.
type Deck struct {
	cards    []*Card
	discards []*Card
	rng      rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled: the draw pile holds all 52 cards in
// ascending card order and the discard pile is empty. Call Shuffle() before
// dealing.
func New() *Deck {
	d := &Deck{
		rng: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetRNG replaces the random number generator used by Shuffle().
// This should only be used by tests that need a deterministic shuffle.
func (d *Deck) SetRNG(g rng.Generator) {
	d.rng = g
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits() {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, &Card{
				Suit: suit,
				Rank: rank,
			})
		}
	}

	d.cards = cards
	d.discards = nil
}

// Recombine appends the discard pile, in discard order, to the end of the
// draw pile and empties the discard pile
func (d *Deck) Recombine() {
	d.cards = append(d.cards, d.discards...)
	d.discards = nil
}

// Shuffle will shuffle the deck of cards.
// The discard pile is recombined first, so all 52 cards end up in the draw
// pile in uniformly random order. Cards are moved one by one from the old
// pile to the new one, each picked at a uniformly random position among the
// cards not yet placed, which shuffles in a single pass without creating or
// dropping any card.
func (d *Deck) Shuffle() {
	d.Recombine()

	shuffled := make([]*Card, 0, len(d.cards))
	for i := len(d.cards) - 1; i >= 0; i-- {
		j := d.rng.Intn(i + 1)
		shuffled = append(shuffled, d.cards[j])
		d.cards = append(d.cards[:j], d.cards[j+1:]...)
	}

	d.cards = shuffled
}

// DrawOne removes the top card of the draw pile, appends it to the discard
// pile and returns it.
// If the draw pile is empty, an ErrEmptyDeck is returned along with a nil
// card, and neither pile is modified.
func (d *Deck) DrawOne() (*Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	d.discards = append(d.discards, card)

	return card, nil
}

// Sort recombines the discard pile and sorts the full draw pile ascending by
// the card order, restoring a freshly built deck's ordering
func (d *Deck) Sort() {
	d.Recombine()

	sort.Sort(Hand(d.cards))
}

// CanDraw returns true if there are {want} cards left in the draw pile
func (d *Deck) CanDraw(want int) bool {
	return len(d.cards) >= want
}

// CardsLeft returns the number of cards left in the draw pile
func (d *Deck) CardsLeft() int {
	return len(d.cards)
}

// DiscardCount returns the number of cards in the discard pile
func (d *Deck) DiscardCount() int {
	return len(d.discards)
}

// DrawPile returns a shallow copy of the draw pile, front first
func (d *Deck) DrawPile() []*Card {
	return append([]*Card{}, d.cards...)
}

// DiscardPile returns a shallow copy of the discard pile in draw order
func (d *Deck) DiscardPile() []*Card {
	return append([]*Card{}, d.discards...)
}
