package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/kaiju/internal/automaton"
	"github.com/peterkuimelis/kaiju/internal/log"
)

// TestFirstPickSelfPlay runs complete AI-vs-AI games from the test document
// and checks the invariants that must hold after every step.
func TestFirstPickSelfPlay(t *testing.T) {
	defs := loadTestDefs(t)
	for _, seed := range []int64{1, 2, 3, 7, 99} {
		logger := log.NewMemoryLogger()
		control, err := NewGame(defs, GameConfig{
			Seed:      seed,
			MaxRounds: 40,
			Logger:    logger,
			Control:   map[string]PlayerControl{"Alice": ControlAI},
		})
		require.NoError(t, err)

		m := automaton.New[GameEvent](NewLoadingState(Ready{Control: control}, 0))
		steps := 0
		m.Observe(func(s automaton.State[GameEvent], ev GameEvent, step Step) {
			steps++
			for _, b := range control.Boards() {
				for _, c := range InGame() {
					require.GreaterOrEqual(t, b.Ledger.Get(c), 0, "seed %d: %s %s negative", seed, b.Name(), c)
				}
				require.LessOrEqual(t, b.Hand.Len(), DefaultHandSize)
				for _, st := range b.Stores {
					if st.Kind == StoreDrafted {
						require.LessOrEqual(t, st.Menu.Len(), st.Size)
					}
				}
			}
		})

		m.Tick(context.Background())
		end, ok := m.Top().(*GameEndState)
		require.True(t, ok, "seed %d: game did not finish", seed)
		assert.Greater(t, steps, 0)

		ends := logger.EventsOfType(log.EventGameEnd)
		require.Len(t, ends, 1)
		if end.Loser() >= 0 {
			assert.True(t, control.Board(end.Loser()).IsDefeated())
		} else {
			assert.Equal(t, 40, control.Round())
		}
		t.Logf("seed %d: %s after %d rounds", seed, end.Result, control.Round())
	}
}
