package game

import (
	"context"
	"fmt"

	"github.com/peterkuimelis/kaiju/internal/automaton"
	"github.com/peterkuimelis/kaiju/internal/log"
)

// GameControlState rotates turns between the boards and detects the end of
// the game. It only ever receives EndTurn, forwarded by GameplayState.
type GameControlState struct {
	boards    []*BoardState
	current   int
	round     int
	maxRounds int // 0 = no limit
	logger    log.EventLogger
}

// NewGameControlState takes ownership of boards. Opponent links are board
// indices.
func NewGameControlState(boards []*BoardState, maxRounds int, logger log.EventLogger) *GameControlState {
	if len(boards) == 0 {
		panic("NewGameControlState: no boards")
	}
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &GameControlState{boards: boards, maxRounds: maxRounds, logger: logger}
}

func (g *GameControlState) String() string {
	return fmt.Sprintf("GameControl(round %d, player %d)", g.round, g.current)
}

// Board returns the board at idx.
func (g *GameControlState) Board(idx int) *BoardState {
	return g.boards[idx]
}

// Boards returns all boards in seat order.
func (g *GameControlState) Boards() []*BoardState {
	return g.boards
}

// Current returns the index of the player whose turn it is.
func (g *GameControlState) Current() int {
	return g.current
}

// Round returns the number of completed rotations.
func (g *GameControlState) Round() int {
	return g.round
}

// Logger returns the game event log.
func (g *GameControlState) Logger() log.EventLogger {
	return g.logger
}

// Overtake starts the first player's turn.
func (g *GameControlState) Overtake() *GameplayState {
	g.current = 0
	return g.StartPlayerTurn(0)
}

// StartPlayerTurn creates the turn controller for board idx. The caller must
// deliver StartTurn to it.
func (g *GameControlState) StartPlayerTurn(idx int) *GameplayState {
	return NewGameplayState(g, idx, g.boards[idx].Player.Opponent)
}

// Handle implements automaton.State.
func (g *GameControlState) Handle(ctx context.Context, event GameEvent) Step {
	if _, ok := event.(EndTurn); !ok {
		panic(fmt.Sprintf("GameControlState can't handle event %v", event))
	}

	alive := 0
	for _, b := range g.boards {
		if !b.IsDefeated() {
			alive++
		}
	}
	if alive <= 1 {
		return automaton.Replace[GameEvent](NewGameEndState(g))
	}

	g.current++
	if g.current >= len(g.boards) {
		g.round++
		g.current = 0
		if g.maxRounds > 0 && g.round >= g.maxRounds {
			return automaton.Replace[GameEvent](NewGameEndState(g))
		}
	}
	return automaton.Replace[GameEvent](g.StartPlayerTurn(g.current), StartTurn{})
}
