package game

import (
	"fmt"

	"github.com/peterkuimelis/kaiju/internal/log"
)

// EvaluateEffect is the single interpreter for every Effect variant. source
// is the card the effect belongs to.
func (b *BoardState) EvaluateEffect(effect Effect, source Card) {
	switch effect.Kind {
	case EffectNone:

	case EffectEcho:
		b.log(log.NewEchoEntry(b.Turn, b.Name(), source.Name, effect.Msg))

	case EffectGlobal:
		old := b.Ledger.Get(effect.Currency)
		val := b.Ledger.Add(effect.Currency, effect.Delta)
		b.log(log.NewCurrencyChangeEntry(b.Turn, b.Name(), string(effect.Currency), old, val, source.Name))

	case EffectReturn:
		b.Deck.Add(source)
		b.log(log.NewZoneMoveEntry(log.EventReturn, b.Turn, b.Name(), source.Name, "deck"))

	case EffectToBuildings:
		b.Buildings.Add(source.Clone())
		b.log(log.NewZoneMoveEntry(log.EventToBuildings, b.Turn, b.Name(), source.Name, "buildings"))

	case EffectBreak:
		block := Cost{Currency: b.BlockCurrency, Count: 1}
		if b.Ledger.CanAfford(block) {
			old := b.Ledger.Get(b.BlockCurrency)
			b.Ledger.Pay(block)
			b.log(log.NewBlockEntry(b.Turn, b.Name(), source.Name, string(b.BlockCurrency)))
			b.log(log.NewCurrencyChangeEntry(b.Turn, b.Name(), string(b.BlockCurrency), old, old-1, "block"))
			return
		}
		b.breakFront(source)

	case EffectBreakUnblockable:
		b.breakFront(source)

	case EffectBreakEverything:
		for _, broken := range b.Buildings.Clear() {
			b.log(log.NewBreakEntry(b.Turn, b.Name(), source.Name, broken.Name))
		}
		b.checkDefeat()

	default:
		panic(fmt.Sprintf("unknown effect kind %d", effect.Kind))
	}
}

func (b *BoardState) breakFront(source Card) {
	broken, ok := b.Buildings.BreakOne()
	if !ok {
		return
	}
	b.log(log.NewBreakEntry(b.Turn, b.Name(), source.Name, broken.Name))
	b.checkDefeat()
}

func (b *BoardState) checkDefeat() {
	if b.IsDefeated() {
		b.log(log.NewDefeatEntry(b.Turn, b.Name()))
	}
}
