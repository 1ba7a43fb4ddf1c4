package game

import "math/rand"

// Deck is a FIFO queue of cards: Draw takes the front, Add appends to the back.
type Deck struct {
	cards []Card
}

// NewDeck builds a deck whose draw order is the order of cards.
func NewDeck(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, 0, len(cards))}
	for _, c := range cards {
		d.Add(c)
	}
	return d
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Draw pops the front card. ok is false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Add pushes card to the back.
func (d *Deck) Add(card Card) {
	d.cards = append(d.cards, card.Clone())
}

// Shuffle randomly permutes the remaining cards.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Names lists the cards in draw order.
func (d *Deck) Names() []string {
	names := make([]string, len(d.cards))
	for i, c := range d.cards {
		names[i] = c.Name
	}
	return names
}
