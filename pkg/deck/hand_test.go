package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	hand := Hand{}
	hand.AddCard(CardFromString("2s"))
	hand.AddCard(CardFromString("3s"))

	assert.Equal(t, 2, hand.Len())
	assert.Equal(t, "2s,3s", hand.String())
}

func TestHand_Points(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, Hand{}.Points())
	a.Equal(25, Hand(CardsFromString("2s,3s,5c")).Points())
	a.Equal(24, Hand(CardsFromString("4s,5s,5h")).Points())
}

func TestHand_sort(t *testing.T) {
	hand := Hand(CardsFromString("5c,2d,14s,2s"))
	sort.Sort(hand)

	assert.Equal(t, "2s,14s,2d,5c", hand.String())
}

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("5c,2d"))

	assert.True(t, hand.HasCard(CardFromString("2d")))
	assert.False(t, hand.HasCard(CardFromString("2s")))
}

func TestHand_FirstCard_LastCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand{}
	a.Nil(hand.FirstCard())
	a.Nil(hand.LastCard())

	hand = Hand(CardsFromString("5c,2d,7h"))
	a.True(CardFromString("5c").Equal(hand.FirstCard()))
	a.True(CardFromString("7h").Equal(hand.LastCard()))
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("5c,2d"))
	clone := hand.Clone()

	a.Equal(hand.String(), clone.String())

	clone.AddCard(CardFromString("3h"))
	a.Equal(2, hand.Len())
	a.Equal(3, clone.Len())
}
