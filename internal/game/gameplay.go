package game

import (
	"context"
	"fmt"

	"github.com/peterkuimelis/kaiju/internal/automaton"
	"github.com/peterkuimelis/kaiju/internal/log"
)

// Step is an automaton step over game events.
type Step = automaton.Step[GameEvent]

// GameplayState runs one player's turn. It owns no board itself: boards are
// reached through the controller by index.
type GameplayState struct {
	control  *GameControlState
	player   int
	opponent int
}

// NewGameplayState creates the turn controller for player.
func NewGameplayState(control *GameControlState, player, opponent int) *GameplayState {
	return &GameplayState{control: control, player: player, opponent: opponent}
}

func (g *GameplayState) String() string {
	return fmt.Sprintf("Gameplay(%s)", g.Board().Name())
}

// Board returns the active player's board.
func (g *GameplayState) Board() *BoardState {
	return g.control.Board(g.player)
}

// Opponent returns the opposing board.
func (g *GameplayState) Opponent() *BoardState {
	return g.control.Board(g.opponent)
}

// Control returns the shared multi-player controller.
func (g *GameplayState) Control() *GameControlState {
	return g.control
}

// Handle implements automaton.State.
func (g *GameplayState) Handle(ctx context.Context, event GameEvent) Step {
	board := g.Board()

	switch ev := event.(type) {
	case StartTurn:
		board.BeginTurn()
		return g.takeTurn(ctx)

	case CardPicked:
		if board.TryIntercept(ev.HandIndex) {
			return g.takeTurn(ctx)
		}
		card, _ := board.Hand.Get(ev.HandIndex)
		if !card.NeedsTarget() {
			board.PlayCard(ev.HandIndex)
			return g.takeTurn(ctx)
		}
		if board.IsAI() {
			return g.Handle(ctx, board.Strategy.TargetCard(board, ev.HandIndex, card.TargetZone))
		}
		return automaton.Push[GameEvent](NewTargetingState(g, ev.HandIndex, card.TargetZone))

	case CardTargeted:
		if ev.SourceZone != ZoneHand {
			panic(fmt.Sprintf("%s: targeted play from zone %s", board.Name(), ev.SourceZone))
		}
		if ev.TargetZone == ZoneNone {
			board.PlayCard(ev.SourceIndex)
		} else {
			board.PlayCardOnTarget(ev.SourceIndex, ev.TargetZone, ev.TargetIndex)
		}
		return g.takeTurn(ctx)

	case CardBought:
		g.buy(ev.StoreZone, ev.MenuIndex)
		return g.takeTurn(ctx)

	case EndTurn:
		board.EndTurn()
		return g.control.Handle(ctx, ev)

	case GameEnded:
		return automaton.Replace[GameEvent](NewGameEndState(g.control))

	case Resign:
		board.Resign()
		return automaton.Replace[GameEvent](NewGameEndState(g.control))

	case IO:
		if isKey(ev, KeyEscape) {
			return g.Handle(ctx, GameEnded{})
		}
	}
	return automaton.Stay[GameEvent]()
}

// takeTurn hands control back to the player: a human waits for input, an AI
// is asked for its next intent right away.
func (g *GameplayState) takeTurn(ctx context.Context) Step {
	board := g.Board()
	board.UpdateAvailability()
	if !board.IsAI() {
		return automaton.Stay[GameEvent]()
	}
	switch intent := board.Strategy.SelectCard(board); intent.(type) {
	case CardPicked, CardTargeted, CardBought, EndTurn:
		return g.Handle(ctx, intent)
	default:
		// An AI never waits for input.
		return g.Handle(ctx, EndTurn{})
	}
}

// buy re-checks affordability at resolution time, then pays and delivers the
// card to the buyer's deck, or the opponent's for give-to-enemy cards.
func (g *GameplayState) buy(zone BoardZone, idx int) {
	board := g.Board()
	store := board.StoreByZone(zone)
	card := store.Peek(idx)

	if !board.Ledger.CanAfford(card.Cost) {
		reason := fmt.Sprintf("needs %d %s, has %d", card.Cost.Count, card.Cost.Currency, board.Ledger.Get(card.Cost.Currency))
		board.log(log.NewBuyRejectedEntry(board.Turn, board.Name(), card.Name, reason))
		return
	}

	old := board.Ledger.Get(card.Cost.Currency)
	board.Ledger.Pay(card.Cost)
	bought, restock := store.Buy(idx)

	recipient := board
	if bought.GiveToEnemy {
		recipient = g.Opponent()
	}
	bought.Available = false
	recipient.Deck.Add(bought)

	board.log(log.NewBuyEntry(board.Turn, board.Name(), bought.Name, recipient.Name()))
	if card.Cost.Count != 0 {
		board.log(log.NewCurrencyChangeEntry(board.Turn, board.Name(), string(card.Cost.Currency), old, board.Ledger.Get(card.Cost.Currency), "buy "+bought.Name))
	}
	if restock != nil {
		board.log(log.NewRefillEntry(board.Turn, board.Name(), zone.String(), restock.Name))
	}
}

// Handlers maps clicks on the active board to events. AI boards take no clicks.
func (g *GameplayState) Handlers() Handlers {
	if g.Board().IsAI() {
		return nil
	}
	pick := func(zone BoardZone, idx int, card Card) (GameEvent, bool) {
		if !card.Available {
			return nil, false
		}
		return CardPicked{HandIndex: idx}, true
	}
	buy := func(zone BoardZone, idx int, card Card) (GameEvent, bool) {
		if !card.Available {
			return nil, false
		}
		return CardBought{StoreZone: zone, MenuIndex: idx}, true
	}
	h := Handlers{ZoneHand: pick}
	for _, s := range g.Board().Stores {
		h[s.Zone()] = buy
	}
	return h
}
