package term

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/kaiju/internal/game"
	"github.com/peterkuimelis/kaiju/internal/session"
	"github.com/peterkuimelis/kaiju/internal/view"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
		err  bool
	}{
		{"p 2", Command{Kind: CmdPlay, Zone: game.ZoneHand, Index: 1}, false},
		{"  PLAY 1 ", Command{Kind: CmdPlay, Zone: game.ZoneHand, Index: 0}, false},
		{"b build 3", Command{Kind: CmdBuy, Zone: game.ZoneBuildStore, Index: 2}, false},
		{"buy kaiju 1", Command{Kind: CmdBuy, Zone: game.ZoneKaijuStore, Index: 0}, false},
		{"t kaiju 1", Command{Kind: CmdTarget, Zone: game.ZoneKaiju, Index: 0}, false},
		{"t none", Command{Kind: CmdTarget, Zone: game.ZoneNone}, false},
		{"e", Command{Kind: CmdEnd}, false},
		{"", Command{Kind: CmdShow}, false},
		{"q", Command{Kind: CmdQuit}, false},
		{"p 0", Command{}, true},
		{"p x", Command{}, true},
		{"b shop 1", Command{}, true},
		{"t none 1", Command{}, true},
		{"t moon 1", Command{}, true},
		{"dance", Command{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const doc = `
game_type: vs
cards:
  Worker:
    on_play: [{effect: Global, key: Build, val: 1}]
  Tower: {}
  House:
    cost: {currency: Build, count: 2}
deck: {Worker: 8}
city: {Tower: 1}
build_store: {type: Fixed, items: [House]}
players:
  - {name: Ann, starting_deck: deck, starting_buildings: city, control: Human}
  - {name: Bot, starting_deck: deck, starting_buildings: city, control: AI}
`

func TestREPLSession(t *testing.T) {
	defs, err := game.ParseDefinitions([]byte(doc))
	require.NoError(t, err)
	s := session.Start(defs, session.Options{Game: game.GameConfig{NoShuffle: true}})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.WaitReady(ctx, time.Millisecond))

	in := strings.NewReader("h\np 1\np 1\nb build 1\nb build 1\nzap\ne\nq\n")
	var out bytes.Buffer
	require.NoError(t, NewREPL(s, in, &out).Run(ctx))

	text := out.String()
	assert.Contains(t, text, "Commands:")
	assert.Contains(t, text, "Ann plays Worker")
	assert.Contains(t, text, "Ann buys House into Ann's deck")
	assert.Contains(t, text, "! click rejected")
	assert.Contains(t, text, `unknown command "zap"`)
	assert.Contains(t, text, "Bot plays Worker")
	assert.Contains(t, text, "GAME OVER")
	assert.True(t, s.Over())
}

func TestREPLStopsAtEOF(t *testing.T) {
	defs, err := game.ParseDefinitions([]byte(doc))
	require.NoError(t, err)
	s := session.Start(defs, session.Options{Game: game.GameConfig{NoShuffle: true}})
	require.NoError(t, s.WaitReady(context.Background(), time.Millisecond))

	var out bytes.Buffer
	require.NoError(t, NewREPL(s, strings.NewReader("p 1"), &out).Run(context.Background()))
	assert.Contains(t, out.String(), "Ann plays Worker")
	assert.False(t, s.Over())
}

func TestFormatLedger(t *testing.T) {
	pv := view.PlayerView{
		Ledger:     map[string]int{"Build": 2, "Evil": 0},
		Currencies: []string{"Build", "Evil"},
	}
	assert.Equal(t, "Build:2 Evil:0", formatLedger(pv))
	assert.Empty(t, formatLedger(view.PlayerView{}))
}
