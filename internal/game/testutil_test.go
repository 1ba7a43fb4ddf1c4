package game

import (
	"context"
	"testing"

	"github.com/peterkuimelis/kaiju/internal/automaton"
	"github.com/peterkuimelis/kaiju/internal/log"
)

// ScriptedStrategy is a Strategy that follows a predefined script of intents.
// Used in tests to deterministically drive AI seats.
type ScriptedStrategy struct {
	t       *testing.T
	actions []GameEvent
	pos     int
	targets []int
	tpos    int
}

func NewScriptedStrategy(t *testing.T) *ScriptedStrategy {
	return &ScriptedStrategy{t: t}
}

func (s *ScriptedStrategy) Pick(handIdx int) *ScriptedStrategy {
	s.actions = append(s.actions, CardPicked{HandIndex: handIdx})
	return s
}

func (s *ScriptedStrategy) Buy(zone BoardZone, menuIdx int) *ScriptedStrategy {
	s.actions = append(s.actions, CardBought{StoreZone: zone, MenuIndex: menuIdx})
	return s
}

func (s *ScriptedStrategy) End() *ScriptedStrategy {
	s.actions = append(s.actions, EndTurn{})
	return s
}

// Intent queues an arbitrary event as the next SelectCard answer.
func (s *ScriptedStrategy) Intent(ev GameEvent) *ScriptedStrategy {
	s.actions = append(s.actions, ev)
	return s
}

// Target queues the index answered to the next TargetCard prompt; -1 means no target.
func (s *ScriptedStrategy) Target(idx int) *ScriptedStrategy {
	s.targets = append(s.targets, idx)
	return s
}

// SelectCard replays the script and ends the turn once it runs out.
func (s *ScriptedStrategy) SelectCard(board *BoardState) GameEvent {
	if s.pos >= len(s.actions) {
		return EndTurn{}
	}
	ev := s.actions[s.pos]
	s.pos++
	s.t.Logf("[%s] scripted %s", board.Name(), ev)
	return ev
}

func (s *ScriptedStrategy) TargetCard(board *BoardState, cardIdx int, zone BoardZone) GameEvent {
	if s.tpos >= len(s.targets) || s.targets[s.tpos] < 0 {
		s.tpos++
		return NoTarget(cardIdx)
	}
	idx := s.targets[s.tpos]
	s.tpos++
	return CardTargeted{SourceZone: ZoneHand, SourceIndex: cardIdx, TargetZone: zone, TargetIndex: idx}
}

// --- card builders ---

func plainCard(name string) Card {
	return Card{Name: name, DrawTo: ZoneHand}
}

func buildingCard(name string) Card {
	return Card{Name: name, DrawTo: ZoneHand}
}

func moneyCard(name string, cur Currency, amount int) Card {
	c := plainCard(name)
	c.OnPlay = []Effect{Global(cur, amount)}
	return c
}

func pricedCard(name string, cur Currency, count int) Card {
	c := plainCard(name)
	c.Cost = Cost{Currency: cur, Count: count}
	return c
}

func kaijuCard(name string, strike ...Effect) Card {
	c := Card{Name: name, DrawTo: ZoneKaiju, OnStrike: strike}
	c.Recharge()
	return c
}

func interceptor(name, tag string, times int) Card {
	c := Card{Name: name, DrawTo: ZoneKaiju, Intercept: &Intercept{Tag: tag, Times: times}}
	c.Recharge()
	return c
}

func repeat(c Card, n int) []Card {
	out := make([]Card, n)
	for i := range out {
		out[i] = c.Clone()
	}
	return out
}

func buildings(names ...string) []Card {
	out := make([]Card, len(names))
	for i, n := range names {
		out[i] = buildingCard(n)
	}
	return out
}

func newTestBoard(name string, deck []Card, blds []Card, logger log.EventLogger) *BoardState {
	return NewBoardState(BoardConfig{
		Player:    Player{Name: name},
		Deck:      deck,
		Buildings: blds,
		Logger:    logger,
	})
}

// newTestGame wires two boards as opponents under one controller.
func newTestGame(a, b *BoardState, maxRounds int, logger log.EventLogger) *GameControlState {
	a.Player.Opponent = 1
	b.Player.Opponent = 0
	return NewGameControlState([]*BoardState{a, b}, maxRounds, logger)
}

func withAI(b *BoardState, s Strategy) *BoardState {
	b.Player.Control = ControlAI
	b.Strategy = s
	return b
}

// runMachine starts control's first turn and dispatches nothing else.
func runMachine(t *testing.T, control *GameControlState) *automaton.Machine[GameEvent] {
	t.Helper()
	m := automaton.New[GameEvent](control.Overtake())
	m.Dispatch(context.Background(), StartTurn{})
	return m
}

func names(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Name
	}
	return out
}
