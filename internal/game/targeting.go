package game

import (
	"context"
	"fmt"

	"github.com/peterkuimelis/kaiju/internal/automaton"
)

// TargetingState is pushed over a human's GameplayState while they choose a
// target for the hand card at CardIndex.
type TargetingState struct {
	parent    *GameplayState
	CardIndex int
	Zone      BoardZone
}

// NewTargetingState creates the sub-interaction for the card at cardIdx.
func NewTargetingState(parent *GameplayState, cardIdx int, zone BoardZone) *TargetingState {
	return &TargetingState{parent: parent, CardIndex: cardIdx, Zone: zone}
}

func (t *TargetingState) String() string {
	return fmt.Sprintf("Targeting(%s in %s)", t.parent.Board().Name(), t.Zone)
}

// Board returns the board being targeted.
func (t *TargetingState) Board() *BoardState {
	return t.parent.Board()
}

// Control returns the game the targeting player belongs to.
func (t *TargetingState) Control() *GameControlState {
	return t.parent.Control()
}

func (t *TargetingState) Handle(ctx context.Context, event GameEvent) Step {
	switch ev := event.(type) {
	case CardTargeted:
		if ev.TargetZone != t.Zone && ev.TargetZone != ZoneNone {
			return automaton.Stay[GameEvent]()
		}
		ev.SourceZone = ZoneHand
		ev.SourceIndex = t.CardIndex
		return automaton.Pop[GameEvent](ev)
	case IO:
		if isKey(ev, KeyEscape) {
			return automaton.Pop[GameEvent](NoTarget(t.CardIndex))
		}
	}
	return automaton.Stay[GameEvent]()
}

// Handlers maps clicks in the target zone to CardTargeted. Target indices
// address the zone as it stands once the source card has left the hand, so
// hand clicks past the source shift down by one and the source itself is not
// a target.
func (t *TargetingState) Handlers() Handlers {
	return Handlers{
		t.Zone: func(zone BoardZone, idx int, card Card) (GameEvent, bool) {
			if !card.Available {
				return nil, false
			}
			if zone == ZoneHand {
				if idx == t.CardIndex {
					return nil, false
				}
				if idx > t.CardIndex {
					idx--
				}
			}
			return CardTargeted{SourceZone: ZoneHand, SourceIndex: t.CardIndex, TargetZone: zone, TargetIndex: idx}, true
		},
	}
}
