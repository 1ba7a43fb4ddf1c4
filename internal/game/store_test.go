package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(prefix string, n int) []Card {
	out := make([]Card, n)
	for i := range out {
		out[i] = pricedCard(fmt.Sprintf("%s%d", prefix, i), CurrencyEvil, 1)
	}
	return out
}

func TestDraftedStoreRefill(t *testing.T) {
	tests := []struct {
		size, deck int
	}{
		{3, 10},
		{3, 5},
		{3, 2},
		{1, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("size %d deck %d", tt.size, tt.deck), func(t *testing.T) {
			s := NewDraftedStore(ZoneKaijuStore, tt.size, NewDeck(numbered("K", tt.deck)))
			want := min(tt.size, tt.deck)
			require.Equal(t, want, s.Menu.Len())
			backing := tt.deck - want

			for s.Menu.Len() > 0 {
				before := s.Menu.Len()
				bought, restock := s.Buy(0)
				assert.NotEmpty(t, bought.Name)
				if backing > 0 {
					backing--
					require.NotNil(t, restock)
					assert.Equal(t, before, s.Menu.Len())
				} else {
					assert.Nil(t, restock)
					assert.Equal(t, before-1, s.Menu.Len())
				}
				assert.LessOrEqual(t, s.Menu.Len(), tt.size)
			}
			assert.Equal(t, 0, s.Deck.Len())
		})
	}
}

func TestDraftedStoreDealsInDeckOrder(t *testing.T) {
	s := NewDraftedStore(ZoneKaijuStore, 2, NewDeck(numbered("K", 4)))
	assert.Equal(t, []string{"K0", "K1"}, names(s.Menu.Cards))

	bought, restock := s.Buy(0)
	assert.Equal(t, "K0", bought.Name)
	require.NotNil(t, restock)
	assert.Equal(t, "K2", restock.Name)
	assert.Equal(t, []string{"K1", "K2"}, names(s.Menu.Cards))
}

func TestFixedStoreKeepsStock(t *testing.T) {
	s := NewFixedStore(ZoneBuildStore, []Card{pricedCard("House", CurrencyBuild, 2)})
	for i := 0; i < 3; i++ {
		bought, restock := s.Buy(0)
		assert.Equal(t, "House", bought.Name)
		assert.Nil(t, restock)
	}
	assert.Equal(t, 1, s.Menu.Len())

	_, ok := s.Refill()
	assert.False(t, ok)
}

func TestStorePeekPanicsOnBadIndex(t *testing.T) {
	s := NewFixedStore(ZoneBuildStore, nil)
	assert.Panics(t, func() { s.Peek(0) })
	assert.Panics(t, func() { s.Buy(-1) })
}

func TestLedger(t *testing.T) {
	l := NewLedger()
	assert.True(t, l.CanAfford(Cost{Currency: CurrencyBuild, Count: 0}))
	assert.False(t, l.CanAfford(Cost{Currency: CurrencyBuild, Count: 1}))

	assert.Equal(t, 3, l.Add(CurrencyBuild, 3))
	assert.True(t, l.CanAfford(Cost{Currency: CurrencyBuild, Count: 3}))
	l.Pay(Cost{Currency: CurrencyBuild, Count: 2})
	assert.Equal(t, 1, l.Get(CurrencyBuild))

	l.Add(CurrencyEvil, 1)
	assert.Equal(t, []Currency{CurrencyBuild, CurrencyEvil}, l.Currencies())
	l.ResetAll()
	assert.Equal(t, 0, l.Get(CurrencyBuild))
	assert.Empty(t, l.Currencies())
}

func TestDeckFIFO(t *testing.T) {
	d := NewDeck([]Card{plainCard("A"), plainCard("B")})
	d.Add(plainCard("C"))
	assert.Equal(t, []string{"A", "B", "C"}, d.Names())

	c, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, "A", c.Name)
	d.Draw()
	d.Draw()
	_, ok = d.Draw()
	assert.False(t, ok)
}

func TestCardCloneIsDeep(t *testing.T) {
	c := interceptor("Wall", "attack", 2)
	c.Tags = []string{"wall"}
	c.OnStrike = []Effect{Simple(EffectBreak)}

	cp := c.Clone()
	cp.Tags[0] = "changed"
	cp.Intercept.Times = 9
	cp.OnStrike[0] = Echo("x")

	assert.Equal(t, "wall", c.Tags[0])
	assert.Equal(t, 2, c.Intercept.Times)
	assert.Equal(t, EffectBreak, c.OnStrike[0].Kind)
}
