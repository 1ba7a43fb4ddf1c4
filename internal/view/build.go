package view

import (
	"fmt"
	"strings"

	"github.com/peterkuimelis/kaiju/internal/automaton"
	"github.com/peterkuimelis/kaiju/internal/game"
	"github.com/peterkuimelis/kaiju/internal/log"
)

// Everyone is the viewer index that reveals every hand.
const Everyone = -1

type controlled interface {
	Control() *game.GameControlState
}

// BuildStateView snapshots the game under top from viewer's seat. Other
// players' hands are reduced to a count unless viewer is Everyone.
func BuildStateView(top automaton.State[game.GameEvent], viewer int) *StateView {
	sv := &StateView{State: "Terminated", Mode: "over"}
	if top == nil {
		return sv
	}
	sv.State = fmt.Sprint(top)

	var (
		boards   []*game.BoardState
		active   = -1
		handlers game.Handlers
		ui       *game.BoardState
	)
	if c, ok := top.(controlled); ok && c.Control() != nil {
		ctl := c.Control()
		boards = ctl.Boards()
		active = ctl.Current()
		sv.Round = ctl.Round()
	}
	if it, ok := top.(game.Interactive); ok {
		handlers = it.Handlers()
		ui = it.Board()
	}

	switch s := top.(type) {
	case *game.LoadingState:
		sv.Mode = "loading"
		if s.Control() == nil {
			return sv
		}
	case *game.GameplayState:
		sv.Mode = "play"
	case *game.TargetingState:
		sv.Mode = "target"
		card, _ := s.Board().Hand.Get(s.CardIndex)
		sv.Targeting = &TargetView{CardIndex: s.CardIndex, Card: card.Name, Zone: s.Zone.String()}
	case *game.GameEndState:
		sv.Mode = "over"
		sv.Result = s.Result
		boards = s.Boards()
	}

	for i, b := range boards {
		var h game.Handlers
		if b == ui {
			h = handlers
		}
		pv := BuildPlayerView(b, i == viewer || viewer == Everyone, h)
		pv.Active = i == active && sv.Mode != "over"
		if pv.Active {
			sv.Active = b.Name()
		}
		sv.Players = append(sv.Players, pv)
	}
	return sv
}

// BuildPlayerView snapshots one board. Cards in zones covered by h are marked
// clickable when the handler would accept them.
func BuildPlayerView(b *game.BoardState, showHand bool, h game.Handlers) PlayerView {
	ledger := make(map[string]int)
	var currencies []string
	for _, c := range b.Ledger.Currencies() {
		ledger[string(c)] = b.Ledger.Get(c)
		currencies = append(currencies, string(c))
	}
	pv := PlayerView{
		Name:       b.Name(),
		Control:    b.Player.Control.String(),
		Turn:       b.Turn,
		Defeated:   b.IsDefeated(),
		Ledger:     ledger,
		Currencies: currencies,
		DeckCount:  b.Deck.Len(),
		Hand:       zoneView(b, b.Hand, h),
		Buildings:  zoneView(b, b.Buildings, h),
		Kaiju:      zoneView(b, b.KaijuZone, h),
	}
	if !showHand {
		pv.Hand.Cards = nil
	}
	for _, s := range b.Stores {
		pv.Stores = append(pv.Stores, zoneView(b, s.Menu, h))
	}
	return pv
}

func zoneView(b *game.BoardState, cc *game.CardContainer, h game.Handlers) ZoneView {
	zv := ZoneView{Zone: cc.Zone.String(), Count: cc.Len()}
	for i, c := range cc.Cards {
		cv := CardToView(i, c)
		if h != nil {
			_, cv.Clickable = h.Click(b, cc.Zone, i)
		}
		zv.Cards = append(zv.Cards, cv)
	}
	return zv
}

// CardToView converts a card at index idx.
func CardToView(idx int, c game.Card) CardView {
	cv := CardView{
		Index:          idx,
		Name:           c.Name,
		Text:           DescribeCard(c),
		Tags:           c.Tags,
		Image:          c.Image,
		Available:      c.Available,
		Stunned:        c.Stunned,
		InterceptsLeft: c.InterceptsLeft,
	}
	if c.Cost.Count > 0 {
		cv.Cost = fmt.Sprintf("%d %s", c.Cost.Count, c.Cost.Currency)
	}
	return cv
}

// DescribeCard renders a card's rules text.
func DescribeCard(c game.Card) string {
	var parts []string
	add := func(label string, effects []game.Effect) {
		if len(effects) == 0 {
			return
		}
		s := make([]string, len(effects))
		for i, e := range effects {
			s[i] = e.String()
		}
		parts = append(parts, label+": "+strings.Join(s, ", "))
	}
	add("play", c.OnPlay)
	add("turn start", c.OnTurnStart)
	add("turn end", c.OnTurnEnd)
	add("strike", c.OnStrike)
	if c.NeedsTarget() {
		parts = append(parts, fmt.Sprintf("target %s: %s", c.TargetZone, c.TargetEffect))
	}
	if c.Intercept != nil {
		parts = append(parts, fmt.Sprintf("intercepts %s x%d", c.Intercept.Tag, c.Intercept.Times))
	}
	if c.GiveToEnemy {
		parts = append(parts, "goes to the enemy")
	}
	return strings.Join(parts, "; ")
}

// EventToView converts a log entry.
func EventToView(e log.Entry) EventView {
	return EventView{
		Seq:     e.Seq,
		Turn:    e.Turn,
		Player:  e.Player,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
	}
}

// EventsToView converts a batch of log entries.
func EventsToView(entries []log.Entry) []EventView {
	out := make([]EventView, len(entries))
	for i, e := range entries {
		out[i] = EventToView(e)
	}
	return out
}
