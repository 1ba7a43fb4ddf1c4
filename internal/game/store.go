package game

import "fmt"

// StoreKind selects the replenishment policy of a Store.
type StoreKind int

const (
	StoreFixed   StoreKind = iota // static list, never refills
	StoreDrafted                  // refills from Deck after every purchase
)

func (k StoreKind) String() string {
	if k == StoreDrafted {
		return "Drafted"
	}
	return "Fixed"
}

// Store is a shop zone.
type Store struct {
	Kind StoreKind
	Menu *CardContainer
	Size int   // Drafted menu size
	Deck *Deck // Drafted backing deck
}

// NewFixedStore builds a store that always offers items.
func NewFixedStore(zone BoardZone, items []Card) *Store {
	menu := NewContainer(zone)
	for _, c := range items {
		menu.Add(c.Clone())
	}
	return &Store{Kind: StoreFixed, Menu: menu}
}

// NewDraftedStore deals size cards from deck onto the menu.
func NewDraftedStore(zone BoardZone, size int, deck *Deck) *Store {
	s := &Store{
		Kind: StoreDrafted,
		Menu: NewSizedContainer(zone, size),
		Size: size,
		Deck: deck,
	}
	for !s.Menu.IsFull() {
		if _, ok := s.Refill(); !ok {
			break
		}
	}
	return s
}

// Zone returns the zone the menu lives in.
func (s *Store) Zone() BoardZone {
	return s.Menu.Zone
}

// Peek returns the menu card at idx. Panics on a bad index: menu indices are
// computed fresh from the displayed menu.
func (s *Store) Peek(idx int) Card {
	card, ok := s.Menu.Get(idx)
	if !ok {
		panic(fmt.Sprintf("store %s: menu index %d out of range (len %d)", s.Zone(), idx, s.Menu.Len()))
	}
	return card
}

// Buy hands out the card at idx. A Drafted store removes it and refills once
// from its deck, returning the restocked card; a Fixed store keeps offering it.
func (s *Store) Buy(idx int) (bought Card, restock *Card) {
	bought = s.Peek(idx)
	if s.Kind == StoreDrafted {
		s.Menu.Remove(idx)
		if c, ok := s.Refill(); ok {
			restock = &c
		}
	}
	return bought, restock
}

// Refill draws a single card from the backing deck onto the menu. ok is false
// for Fixed stores and exhausted decks.
func (s *Store) Refill() (Card, bool) {
	if s.Kind != StoreDrafted || s.Deck == nil {
		return Card{}, false
	}
	card, ok := s.Deck.Draw()
	if !ok {
		return Card{}, false
	}
	s.Menu.Add(card)
	return card, true
}
