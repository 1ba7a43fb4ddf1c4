package game

// CardContainer is an ordered board zone. Indices shift down on removal, so
// an index is only meaningful within one synchronous operation.
type CardContainer struct {
	Zone  BoardZone
	Cards []Card
	Size  int // capacity; 0 means unlimited
}

// NewContainer returns an uncapped container for zone.
func NewContainer(zone BoardZone) *CardContainer {
	return &CardContainer{Zone: zone}
}

// NewSizedContainer returns a container holding at most size cards.
func NewSizedContainer(zone BoardZone, size int) *CardContainer {
	return &CardContainer{Zone: zone, Cards: make([]Card, 0, size), Size: size}
}

// Len returns the number of cards.
func (cc *CardContainer) Len() int {
	return len(cc.Cards)
}

// Empty reports whether there are no cards.
func (cc *CardContainer) Empty() bool {
	return len(cc.Cards) == 0
}

// IsFull is only ever true for sized containers.
func (cc *CardContainer) IsFull() bool {
	return cc.Size > 0 && len(cc.Cards) >= cc.Size
}

// Add appends card.
func (cc *CardContainer) Add(card Card) {
	cc.Cards = append(cc.Cards, card)
}

// Get returns a copy of the card at idx.
func (cc *CardContainer) Get(idx int) (Card, bool) {
	if idx < 0 || idx >= len(cc.Cards) {
		return Card{}, false
	}
	return cc.Cards[idx].Clone(), true
}

// At returns a pointer to the card at idx for in-place flag updates, or nil.
func (cc *CardContainer) At(idx int) *Card {
	if idx < 0 || idx >= len(cc.Cards) {
		return nil
	}
	return &cc.Cards[idx]
}

// Remove takes the card at idx out of the container. A stale index is not an
// error: ok is false and nothing changes.
func (cc *CardContainer) Remove(idx int) (Card, bool) {
	if idx < 0 || idx >= len(cc.Cards) {
		return Card{}, false
	}
	card := cc.Cards[idx]
	cc.Cards = append(cc.Cards[:idx], cc.Cards[idx+1:]...)
	return card, true
}

// BreakOne removes the front card.
func (cc *CardContainer) BreakOne() (Card, bool) {
	return cc.Remove(0)
}

// Clear removes every card and returns them.
func (cc *CardContainer) Clear() []Card {
	cards := cc.Cards
	cc.Cards = nil
	return cards
}

// zoneEffect pairs a card snapshot with one of its effects.
type zoneEffect struct {
	card   Card
	effect Effect
}

// allEffects snapshots every (card, effect) pair for a trigger in zone order,
// each card's effects in declared order. Evaluating the snapshot is safe even
// if effects mutate this container.
func (cc *CardContainer) allEffects(sel effectSelector, skip func(*Card) bool) []zoneEffect {
	var out []zoneEffect
	for i := range cc.Cards {
		c := &cc.Cards[i]
		if skip != nil && skip(c) {
			continue
		}
		for _, eff := range sel(c) {
			out = append(out, zoneEffect{card: c.Clone(), effect: eff})
		}
	}
	return out
}
