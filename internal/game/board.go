package game

import (
	"fmt"
	"math/rand"

	"github.com/peterkuimelis/kaiju/internal/log"
)

const (
	DefaultHandSize = 5
	// DefaultBlockCurrency absorbs Break effects one unit at a time.
	DefaultBlockCurrency = CurrencyBlock
)

// Player describes one seat of the game.
type Player struct {
	Name              string        `yaml:"name"`
	StartingDeck      string        `yaml:"starting_deck"`
	StartingBuildings string        `yaml:"starting_buildings"`
	Control           PlayerControl `yaml:"control"`

	Opponent int `yaml:"-"` // index of the opposing board
}

// BoardState is one player's whole board.
type BoardState struct {
	Player    Player
	Turn      int // 1-based, incremented by EndTurn
	Hand      *CardContainer
	Deck      *Deck
	Ledger    *Ledger
	Stores    []*Store
	Buildings *CardContainer
	KaijuZone *CardContainer
	Strategy  Strategy // nil for human-controlled boards

	BlockCurrency Currency
	Logger        log.EventLogger

	resigned bool
}

// BoardConfig holds everything needed to set up a BoardState.
type BoardConfig struct {
	Player        Player
	HandSize      int
	Deck          []Card
	Buildings     []Card
	Stores        []*Store
	Strategy      Strategy
	BlockCurrency Currency
	Logger        log.EventLogger
}

// NewBoardState creates a board at turn 1 with an empty hand.
func NewBoardState(cfg BoardConfig) *BoardState {
	handSize := cfg.HandSize
	if handSize <= 0 {
		handSize = DefaultHandSize
	}
	block := cfg.BlockCurrency
	if block == "" {
		block = DefaultBlockCurrency
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	b := &BoardState{
		Player:        cfg.Player,
		Turn:          1,
		Hand:          NewSizedContainer(ZoneHand, handSize),
		Deck:          NewDeck(cfg.Deck),
		Ledger:        NewLedger(),
		Stores:        cfg.Stores,
		Buildings:     NewContainer(ZoneBuildings),
		KaijuZone:     NewContainer(ZoneKaiju),
		Strategy:      cfg.Strategy,
		BlockCurrency: block,
		Logger:        logger,
	}
	for _, c := range cfg.Buildings {
		b.Buildings.Add(c.Clone())
	}
	return b
}

// Name returns the owning player's name.
func (b *BoardState) Name() string {
	return b.Player.Name
}

// IsAI reports whether decisions for this board come from its Strategy.
func (b *BoardState) IsAI() bool {
	return b.Player.Control == ControlAI && b.Strategy != nil
}

func (b *BoardState) log(entry log.Entry) {
	b.Logger.Log(entry)
}

// DrawCard moves the front deck card to its DrawTo zone. Returns false and
// changes nothing when the deck is empty. Hand capacity is the caller's concern.
func (b *BoardState) DrawCard() bool {
	card, ok := b.Deck.Draw()
	if !ok {
		return false
	}
	switch card.DrawTo {
	case ZoneKaiju:
		card.Recharge()
		b.KaijuZone.Add(card)
	default:
		b.Hand.Add(card)
	}
	b.log(log.NewDrawEntry(b.Turn, b.Name(), card.Name, b.drawZone(card).String()))
	return true
}

func (b *BoardState) drawZone(c Card) BoardZone {
	if c.DrawTo == ZoneKaiju {
		return ZoneKaiju
	}
	return ZoneHand
}

// BeginTurn recharges kaiju, fires building turn-start effects and draws
// until the hand is full or the deck runs out.
func (b *BoardState) BeginTurn() {
	b.log(log.NewTurnStartEntry(b.Turn, b.Name()))

	for i := range b.KaijuZone.Cards {
		b.KaijuZone.Cards[i].Recharge()
	}

	for _, ze := range b.Buildings.allEffects(onTurnStart, nil) {
		b.EvaluateEffect(ze.effect, ze.card)
	}

	for !b.Hand.IsFull() {
		if !b.DrawCard() {
			break
		}
	}
}

// EndTurn lets every non-stunned kaiju strike, fires building turn-end
// effects, clears the ledger and advances the turn counter.
func (b *BoardState) EndTurn() {
	stunned := func(c *Card) bool { return c.Stunned }
	for _, ze := range b.KaijuZone.allEffects(onStrike, stunned) {
		b.EvaluateEffect(ze.effect, ze.card)
	}
	for _, ze := range b.Buildings.allEffects(onTurnEnd, nil) {
		b.EvaluateEffect(ze.effect, ze.card)
	}

	// Currencies never carry over.
	b.Ledger.ResetAll()

	b.log(log.NewTurnEndEntry(b.Turn, b.Name()))
	b.Turn++
}

// PlayCard removes the hand card at idx, evaluates its on_play effects and
// returns it. idx must be valid.
func (b *BoardState) PlayCard(idx int) Card {
	card := b.takeFromHand(idx)
	b.log(log.NewPlayEntry(b.Turn, b.Name(), card.Name))
	for _, eff := range card.OnPlay {
		b.EvaluateEffect(eff, card)
	}
	return card
}

// PlayCardOnTarget plays the hand card at idx, then applies its target effect
// to targetIdx in targetZone. A target that has since vanished is skipped.
func (b *BoardState) PlayCardOnTarget(idx int, targetZone BoardZone, targetIdx int) Card {
	card := b.PlayCard(idx)
	b.ApplyTargetEffect(card, targetZone, targetIdx)
	return card
}

// ApplyTargetEffect applies source's TargetEffect to the card at idx in zone.
// Returns the affected card, or false when there was nothing to affect.
func (b *BoardState) ApplyTargetEffect(source Card, zone BoardZone, idx int) (Card, bool) {
	if source.TargetEffect == TargetNone || zone == ZoneNone {
		return Card{}, false
	}
	cc := b.ContainerByZone(zone)
	target := cc.At(idx)
	if target == nil {
		return Card{}, false
	}
	b.log(log.NewTargetEntry(b.Turn, b.Name(), source.Name, target.Name, source.TargetEffect.String()))

	switch source.TargetEffect {
	case TargetStun:
		target.Stunned = true
		b.log(log.NewZoneMoveEntry(log.EventStun, b.Turn, b.Name(), target.Name, "stun"))
		return *target, true
	case TargetKill:
		removed, ok := cc.Remove(idx)
		if ok {
			b.log(log.NewZoneMoveEntry(log.EventKill, b.Turn, b.Name(), removed.Name, "graveyard"))
		}
		return removed, ok
	case TargetBounce:
		removed, ok := cc.Remove(idx)
		if ok {
			b.Deck.Add(removed)
			b.log(log.NewZoneMoveEntry(log.EventBounce, b.Turn, b.Name(), removed.Name, "deck"))
		}
		return removed, ok
	}
	return Card{}, false
}

// Discard removes the hand card at idx without playing it.
func (b *BoardState) Discard(idx int) Card {
	return b.takeFromHand(idx)
}

func (b *BoardState) takeFromHand(idx int) Card {
	card, ok := b.Hand.Remove(idx)
	if !ok {
		panic(fmt.Sprintf("%s: hand index %d out of range (hand has %d cards)", b.Name(), idx, b.Hand.Len()))
	}
	return card
}

// Interceptor returns the first kaiju able to intercept the play of card.
func (b *BoardState) Interceptor(card Card) *Card {
	for i := range b.KaijuZone.Cards {
		k := &b.KaijuZone.Cards[i]
		if k.CanIntercept(card) {
			return k
		}
	}
	return nil
}

// TryIntercept checks the hand card at idx against the kaiju zone. On a match
// one intercept use is consumed, the card is discarded unplayed and true is
// returned.
func (b *BoardState) TryIntercept(idx int) bool {
	card, ok := b.Hand.Get(idx)
	if !ok {
		panic(fmt.Sprintf("%s: hand index %d out of range (hand has %d cards)", b.Name(), idx, b.Hand.Len()))
	}
	k := b.Interceptor(card)
	if k == nil {
		return false
	}
	k.InterceptsLeft--
	b.Discard(idx)
	b.log(log.NewInterceptEntry(b.Turn, b.Name(), card.Name, k.Name, k.InterceptsLeft))
	return true
}

// StoreByZone returns the store whose menu lives in zone.
func (b *BoardState) StoreByZone(zone BoardZone) *Store {
	if zone == ZoneNone {
		panic("StoreByZone: lookup of zone None")
	}
	for _, s := range b.Stores {
		if s.Zone() == zone {
			return s
		}
	}
	panic(fmt.Sprintf("%s: no store in zone %s", b.Name(), zone))
}

// ContainerByZone returns the card container for zone, including store menus.
func (b *BoardState) ContainerByZone(zone BoardZone) *CardContainer {
	switch zone {
	case ZoneNone:
		panic("ContainerByZone: lookup of zone None")
	case ZoneHand:
		return b.Hand
	case ZoneBuildings:
		return b.Buildings
	case ZoneKaiju:
		return b.KaijuZone
	default:
		return b.StoreByZone(zone).Menu
	}
}

// UpdateAvailability marks store cards available when affordable and every
// card already in play as available.
func (b *BoardState) UpdateAvailability() {
	for _, s := range b.Stores {
		for i := range s.Menu.Cards {
			c := &s.Menu.Cards[i]
			c.Available = b.Ledger.CanAfford(c.Cost)
		}
	}
	for _, cc := range []*CardContainer{b.Hand, b.Buildings, b.KaijuZone} {
		for i := range cc.Cards {
			cc.Cards[i].Available = true
		}
	}
}

// IsDefeated reports whether every building is gone or the player resigned.
func (b *BoardState) IsDefeated() bool {
	return b.resigned || b.Buildings.Empty()
}

// Resign concedes the game for this board.
func (b *BoardState) Resign() {
	if b.IsDefeated() {
		return
	}
	b.resigned = true
	b.log(log.NewDefeatEntry(b.Turn, b.Name()))
}

// Shuffle shuffles the draw deck.
func (b *BoardState) Shuffle(rng *rand.Rand) {
	b.Deck.Shuffle(rng)
	b.log(log.NewShuffleEntry(b.Turn, b.Name()))
}
