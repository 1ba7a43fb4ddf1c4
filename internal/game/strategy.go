package game

// Strategy makes decisions for an AI-controlled board. Implementations return
// events addressed by index, exactly as a human's clicks would be.
type Strategy interface {
	// SelectCard picks the next action: a hand card, a purchase or EndTurn.
	SelectCard(board *BoardState) GameEvent

	// TargetCard picks a target in zone for the hand card at cardIdx, or
	// NoTarget(cardIdx) when nothing there can be targeted.
	TargetCard(board *BoardState, cardIdx int, zone BoardZone) GameEvent
}

// FirstPick plays the first available hand card, then buys the first
// affordable priced store card, then ends the turn.
type FirstPick struct{}

// NewFirstPick returns the default AI.
func NewFirstPick() *FirstPick {
	return &FirstPick{}
}

func (FirstPick) SelectCard(board *BoardState) GameEvent {
	for i, c := range board.Hand.Cards {
		if c.Available {
			return CardPicked{HandIndex: i}
		}
	}
	for _, s := range board.Stores {
		for i, c := range s.Menu.Cards {
			// Free cards would be bought forever from a fixed store.
			if c.Available && c.Cost.Count > 0 {
				return CardBought{StoreZone: s.Zone(), MenuIndex: i}
			}
		}
	}
	return EndTurn{}
}

func (FirstPick) TargetCard(board *BoardState, cardIdx int, zone BoardZone) GameEvent {
	if zone == ZoneNone || zone == ZoneHand {
		return NoTarget(cardIdx)
	}
	cc := board.ContainerByZone(zone)
	target := -1
	for i, c := range cc.Cards {
		if c.Available {
			target = i
		}
	}
	if target < 0 {
		return NoTarget(cardIdx)
	}
	return CardTargeted{SourceZone: ZoneHand, SourceIndex: cardIdx, TargetZone: zone, TargetIndex: target}
}
