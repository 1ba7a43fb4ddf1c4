package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/kaiju/internal/log"
)

func TestDrawCard(t *testing.T) {
	deck := []Card{plainCard("Worker"), kaijuCard("Gojira")}
	b := newTestBoard("P1", deck, buildings("Tower"), nil)

	require.True(t, b.DrawCard())
	assert.Equal(t, []string{"Worker"}, names(b.Hand.Cards))
	assert.Equal(t, 1, b.Deck.Len())

	// Kaiju skip the hand entirely.
	require.True(t, b.DrawCard())
	assert.Equal(t, []string{"Worker"}, names(b.Hand.Cards))
	assert.Equal(t, []string{"Gojira"}, names(b.KaijuZone.Cards))
	assert.Equal(t, 0, b.Deck.Len())

	// Empty deck: failure, nothing moves.
	assert.False(t, b.DrawCard())
	assert.Equal(t, 1, b.Hand.Len())
	assert.Equal(t, 1, b.KaijuZone.Len())
}

func TestBeginTurnFillsHand(t *testing.T) {
	tests := []struct {
		name     string
		deckSize int
		inHand   int
		wantHand int
		wantDeck int
	}{
		{"short deck", 3, 0, 3, 0},
		{"exact", 5, 0, 5, 0},
		{"long deck", 8, 0, 5, 3},
		{"partial hand", 10, 2, 5, 7},
		{"full hand", 4, 5, 5, 4},
		{"empty deck", 0, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard("P1", repeat(plainCard("Worker"), tt.deckSize), buildings("Tower"), nil)
			for i := 0; i < tt.inHand; i++ {
				b.Hand.Add(plainCard("Held"))
			}
			b.BeginTurn()
			assert.Equal(t, tt.wantHand, b.Hand.Len())
			assert.Equal(t, tt.wantDeck, b.Deck.Len())
			assert.LessOrEqual(t, b.Hand.Len(), DefaultHandSize)
		})
	}
}

func TestBeginTurnCountsKaijuDrawsSeparately(t *testing.T) {
	deck := []Card{kaijuCard("Gojira"), plainCard("A"), plainCard("B")}
	b := NewBoardState(BoardConfig{Player: Player{Name: "P1"}, HandSize: 2, Deck: deck, Buildings: buildings("Tower")})

	b.BeginTurn()
	assert.Equal(t, []string{"A", "B"}, names(b.Hand.Cards))
	assert.Equal(t, []string{"Gojira"}, names(b.KaijuZone.Cards))
}

func TestBeginTurnEffectsAndRecharge(t *testing.T) {
	logger := log.NewMemoryLogger()
	mill := buildingCard("Mill")
	mill.OnTurnStart = []Effect{Global(CurrencyBuild, 2)}
	b := newTestBoard("P1", nil, []Card{mill, buildingCard("Tower")}, logger)

	k := interceptor("Wall", "attack", 2)
	k.Stunned = true
	k.InterceptsLeft = 0
	b.KaijuZone.Add(k)

	b.BeginTurn()
	assert.Equal(t, 2, b.Ledger.Get(CurrencyBuild))
	assert.False(t, b.KaijuZone.Cards[0].Stunned)
	assert.Equal(t, 2, b.KaijuZone.Cards[0].InterceptsLeft)
	assert.Len(t, logger.EventsOfType(log.EventTurnStart), 1)
}

func TestEndTurnResetsLedger(t *testing.T) {
	b := newTestBoard("P1", nil, buildings("Tower"), nil)
	b.Ledger.Add(CurrencyBuild, 3)
	b.Ledger.Add(CurrencyEvil, 1)

	b.EndTurn()
	for _, c := range InGame() {
		assert.Equal(t, 0, b.Ledger.Get(c), c)
	}
	assert.Empty(t, b.Ledger.Currencies())
	assert.Equal(t, 2, b.Turn)
}

func TestEndTurnStrikes(t *testing.T) {
	logger := log.NewMemoryLogger()
	b := newTestBoard("P1", nil, buildings("B1", "B2", "B3"), logger)
	b.KaijuZone.Add(kaijuCard("Gojira", Simple(EffectBreak)))
	stunned := kaijuCard("Mothra", Simple(EffectBreak))
	stunned.Stunned = true
	b.KaijuZone.Add(stunned)

	b.EndTurn()
	assert.Equal(t, []string{"B2", "B3"}, names(b.Buildings.Cards))
	breaks := logger.EventsOfType(log.EventBreak)
	require.Len(t, breaks, 1)
	assert.Equal(t, "Gojira", breaks[0].Card)
}

func TestEndTurnBuildingEffectsRunAfterStrikes(t *testing.T) {
	b := newTestBoard("P1", nil, buildings("Tower"), nil)
	shelter := buildingCard("Shelter")
	shelter.OnTurnEnd = []Effect{Global(CurrencyBlock, 1)}
	b.Buildings.Add(shelter)
	b.KaijuZone.Add(kaijuCard("Gojira", Simple(EffectBreak)))

	b.EndTurn()
	// The block arrives too late to stop the strike and is then reset.
	assert.Equal(t, []string{"Shelter"}, names(b.Buildings.Cards))
	assert.Equal(t, 0, b.Ledger.Get(CurrencyBlock))
}

func TestBreakWithBlock(t *testing.T) {
	logger := log.NewMemoryLogger()
	b := newTestBoard("P1", nil, buildings("B1", "B2"), logger)
	b.Ledger.Add(CurrencyBlock, 1)
	source := kaijuCard("Gojira")

	b.EvaluateEffect(Simple(EffectBreak), source)
	assert.Equal(t, 0, b.Ledger.Get(CurrencyBlock))
	assert.Equal(t, []string{"B1", "B2"}, names(b.Buildings.Cards))
	assert.Len(t, logger.EventsOfType(log.EventBlock), 1)

	b.EvaluateEffect(Simple(EffectBreak), source)
	assert.Equal(t, []string{"B2"}, names(b.Buildings.Cards))
	assert.Equal(t, 0, b.Ledger.Get(CurrencyBlock))
	breaks := logger.EventsOfType(log.EventBreak)
	require.Len(t, breaks, 1)
	assert.Contains(t, breaks[0].Details, "B1")
}

func TestBreakVariants(t *testing.T) {
	t.Run("unblockable ignores block", func(t *testing.T) {
		b := newTestBoard("P1", nil, buildings("B1", "B2"), nil)
		b.Ledger.Add(CurrencyBlock, 5)
		b.EvaluateEffect(Simple(EffectBreakUnblockable), kaijuCard("Gojira"))
		assert.Equal(t, []string{"B2"}, names(b.Buildings.Cards))
		assert.Equal(t, 5, b.Ledger.Get(CurrencyBlock))
	})

	t.Run("everything", func(t *testing.T) {
		logger := log.NewMemoryLogger()
		b := newTestBoard("P1", nil, buildings("B1", "B2", "B3"), logger)
		b.Ledger.Add(CurrencyBlock, 5)
		b.EvaluateEffect(Simple(EffectBreakEverything), kaijuCard("King"))
		assert.True(t, b.IsDefeated())
		assert.Len(t, logger.EventsOfType(log.EventBreak), 3)
		assert.Len(t, logger.EventsOfType(log.EventDefeat), 1)
	})

	t.Run("no buildings is a no-op", func(t *testing.T) {
		b := newTestBoard("P1", nil, nil, nil)
		assert.NotPanics(t, func() {
			b.EvaluateEffect(Simple(EffectBreakUnblockable), kaijuCard("Gojira"))
		})
		assert.True(t, b.IsDefeated())
	})

	t.Run("custom block currency", func(t *testing.T) {
		b := NewBoardState(BoardConfig{Player: Player{Name: "P1"}, Buildings: buildings("B1"), BlockCurrency: CurrencyEvil})
		b.Ledger.Add(CurrencyBlock, 1)
		b.EvaluateEffect(Simple(EffectBreak), kaijuCard("Gojira"))
		assert.True(t, b.IsDefeated())
	})
}

func TestEvaluateEffectZoneMoves(t *testing.T) {
	logger := log.NewMemoryLogger()
	b := newTestBoard("P1", nil, buildings("Tower"), logger)
	scaffold := plainCard("Scaffold")

	b.EvaluateEffect(Simple(EffectToBuildings), scaffold)
	assert.Equal(t, []string{"Tower", "Scaffold"}, names(b.Buildings.Cards))

	b.EvaluateEffect(Simple(EffectReturn), scaffold)
	assert.Equal(t, []string{"Scaffold"}, b.Deck.Names())

	b.EvaluateEffect(Echo("hello"), scaffold)
	echoes := logger.EventsOfType(log.EventEcho)
	require.Len(t, echoes, 1)
	assert.Contains(t, echoes[0].Details, "hello")

	b.EvaluateEffect(Global(CurrencyEvil, 2), scaffold)
	b.EvaluateEffect(Global(CurrencyEvil, -1), scaffold)
	assert.Equal(t, 1, b.Ledger.Get(CurrencyEvil))

	assert.Panics(t, func() { b.EvaluateEffect(Effect{Kind: EffectKind(99)}, scaffold) })
}

func TestPlayCard(t *testing.T) {
	b := newTestBoard("P1", nil, buildings("Tower"), nil)
	c := plainCard("Contractor")
	c.OnPlay = []Effect{Global(CurrencyBuild, 1), Global(CurrencyBuild, 2), Simple(EffectReturn)}
	b.Hand.Add(c)
	b.Hand.Add(plainCard("Other"))

	played := b.PlayCard(0)
	assert.Equal(t, "Contractor", played.Name)
	assert.Equal(t, 3, b.Ledger.Get(CurrencyBuild))
	assert.Equal(t, []string{"Other"}, names(b.Hand.Cards))
	assert.Equal(t, []string{"Contractor"}, b.Deck.Names())

	assert.Panics(t, func() { b.PlayCard(5) })
}

func TestApplyTargetEffect(t *testing.T) {
	tests := []struct {
		effect    TargetEffect
		wantKaiju []string
		wantDeck  []string
		stunned   bool
	}{
		{TargetStun, []string{"Gojira"}, nil, true},
		{TargetKill, []string{}, nil, false},
		{TargetBounce, []string{}, []string{"Gojira"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.effect.String(), func(t *testing.T) {
			b := newTestBoard("P1", nil, buildings("Tower"), nil)
			b.KaijuZone.Add(kaijuCard("Gojira"))
			src := plainCard("Army")
			src.TargetZone = ZoneKaiju
			src.TargetEffect = tt.effect

			affected, ok := b.ApplyTargetEffect(src, ZoneKaiju, 0)
			require.True(t, ok)
			assert.Equal(t, "Gojira", affected.Name)
			assert.Equal(t, tt.wantKaiju, names(b.KaijuZone.Cards))
			assert.Equal(t, len(tt.wantDeck), b.Deck.Len())
			if tt.stunned {
				assert.True(t, b.KaijuZone.Cards[0].Stunned)
			}
		})
	}

	t.Run("stale index", func(t *testing.T) {
		b := newTestBoard("P1", nil, buildings("Tower"), nil)
		src := plainCard("Army")
		src.TargetEffect = TargetKill
		_, ok := b.ApplyTargetEffect(src, ZoneKaiju, 3)
		assert.False(t, ok)
	})
}

func TestStunnedKaijuCannotIntercept(t *testing.T) {
	b := newTestBoard("P1", nil, buildings("Tower"), nil)
	k := interceptor("Wall", "attack", 1)
	k.Stunned = true
	b.KaijuZone.Add(k)
	atk := plainCard("Raid")
	atk.Tags = []string{"attack"}
	b.Hand.Add(atk)

	assert.False(t, b.TryIntercept(0))
	assert.Equal(t, 1, b.Hand.Len())
}

func TestZoneLookupPanicsOnNone(t *testing.T) {
	b := newTestBoard("P1", nil, nil, nil)
	assert.Panics(t, func() { b.ContainerByZone(ZoneNone) })
	assert.Panics(t, func() { b.StoreByZone(ZoneNone) })
	assert.Panics(t, func() { b.StoreByZone(ZoneBuildStore) })
}

func TestUpdateAvailability(t *testing.T) {
	b := NewBoardState(BoardConfig{
		Player:    Player{Name: "P1"},
		Buildings: buildings("Tower"),
		Stores: []*Store{NewFixedStore(ZoneBuildStore, []Card{
			pricedCard("Cheap", CurrencyBuild, 1),
			pricedCard("Pricey", CurrencyBuild, 4),
			pricedCard("Free", CurrencyEvil, 0),
		})},
	})
	b.Hand.Add(plainCard("Worker"))
	b.Ledger.Add(CurrencyBuild, 2)

	b.UpdateAvailability()
	menu := b.StoreByZone(ZoneBuildStore).Menu.Cards
	assert.True(t, menu[0].Available)
	assert.False(t, menu[1].Available)
	assert.True(t, menu[2].Available, "zero cost of an absent currency is affordable")
	assert.True(t, b.Hand.Cards[0].Available)
	assert.True(t, b.Buildings.Cards[0].Available)
}
