package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit. The numeric value of a suit doubles as its
// point multiplier.
type Suit int

// suit constants, in ascending point order
const (
	Spades Suit = iota + 1
	Diamonds
	Hearts
	Clubs
)

// rank boundaries
const (
	MinRank = 2
	MaxRank = 14
)

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spade"
	case Diamonds:
		return "Diamond"
	case Hearts:
		return "Heart"
	case Clubs:
		return "Club"
	}

	return fmt.Sprintf("Suit(%d)", int(s))
}

// Suits returns the four suits in ascending point order
func Suits() []Suit {
	return []Suit{Spades, Diamonds, Hearts, Clubs}
}

// Card is an individual playing card
type Card struct {
	Suit Suit `json:"suit"`
	Rank int  `json:"rank"`
}

// InvalidCardError is an error constructing a card outside the valid domain
type InvalidCardError struct {
	Suit Suit
	Rank int
}

func (e InvalidCardError) Error() string {
	return fmt.Sprintf("invalid card: suit=%d rank=%d", int(e.Suit), e.Rank)
}

// NewCard returns a new card for the suit and rank.
// The suit must be one of the four defined suits and the rank must be between
// 2 and 14, otherwise an InvalidCardError is returned.
func NewCard(suit Suit, rank int) (*Card, error) {
	if suit < Spades || suit > Clubs || rank < MinRank || rank > MaxRank {
		return nil, InvalidCardError{Suit: suit, Rank: rank}
	}

	return &Card{
		Suit: suit,
		Rank: rank,
	}, nil
}

// Points returns the point value of the card (suit multiplier × rank)
func (c *Card) Points() int {
	return int(c.Suit) * c.Rank
}

// RankName returns the display name for the rank ("Queen", "7", ...)
func (c *Card) RankName() string {
	switch c.Rank {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return strconv.Itoa(c.Rank)
	}
}

// String returns the long-form label, "Queen of Diamonds" for example
func (c *Card) String() string {
	return fmt.Sprintf("%s of %ss", c.RankName(), c.Suit)
}

// Short returns the compact label, "(Diamond, Queen)" for example
func (c *Card) Short() string {
	return fmt.Sprintf("(%s, %s)", c.Suit, c.RankName())
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Compare orders cards by suit first, then by rank.
// The result is < 0 if c sorts before card, > 0 if c sorts after card, and 0
// if the cards are equal.
func (c *Card) Compare(card *Card) int {
	if c.Suit != card.Suit {
		return int(c.Suit) - int(card.Suit)
	}

	return c.Rank - card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	card, err := NewCard(suit, rank)
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	return card
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2s,3h,4c,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
