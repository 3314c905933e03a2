package deck

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i].Compare(h[j]) < 0
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Points returns the combined point value of all cards in the hand
func (h Hand) Points() int {
	points := 0
	for _, c := range h {
		points += c.Points()
	}

	return points
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
