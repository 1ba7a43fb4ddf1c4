package game

// CardHandler turns a click on card at (zone, index) into an event.
type CardHandler func(zone BoardZone, index int, card Card) (GameEvent, bool)

// Handlers is the per-zone callback table a display layer uses to turn clicks
// into events without knowing the rules.
type Handlers map[BoardZone]CardHandler

// Interactive is implemented by states that accept clicks on a board.
type Interactive interface {
	Board() *BoardState
	Handlers() Handlers
}

// Click resolves a click on board at (zone, index). ok is false when the zone
// has no handler, the index is stale or the handler declines.
func (h Handlers) Click(board *BoardState, zone BoardZone, index int) (GameEvent, bool) {
	handler, ok := h[zone]
	if !ok || zone == ZoneNone {
		return nil, false
	}
	card, ok := board.ContainerByZone(zone).Get(index)
	if !ok {
		return nil, false
	}
	return handler(zone, index, card)
}
