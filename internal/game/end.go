package game

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/peterkuimelis/kaiju/internal/automaton"
	"github.com/peterkuimelis/kaiju/internal/log"
)

// GameEndState keeps every board for the post-mortem display. GameEnded or
// Escape pops it, which empties the stack.
type GameEndState struct {
	boards []*BoardState
	loser  int // -1 for a draw
	Result string
}

// NewGameEndState records the outcome and logs it.
func NewGameEndState(control *GameControlState) *GameEndState {
	s := &GameEndState{boards: control.Boards(), loser: -1}

	var defeated []string
	for i, b := range s.boards {
		if b.IsDefeated() {
			s.loser = i
			defeated = append(defeated, b.Name())
		}
	}

	turn := control.Board(control.Current()).Turn
	switch {
	case len(defeated) == 0:
		s.Result = fmt.Sprintf("Draw after %d rounds", control.Round())
	case len(defeated) == len(s.boards):
		s.loser = -1
		s.Result = fmt.Sprintf("Draw, %s all fell", strings.Join(defeated, " and "))
	case len(defeated) == 1:
		s.Result = fmt.Sprintf("It is over, %s lost", defeated[0])
	default:
		// Several boards fell but somebody survived; report the first.
		s.loser = slices.IndexFunc(s.boards, (*BoardState).IsDefeated)
		s.Result = fmt.Sprintf("It is over, %s lost", strings.Join(defeated, " and "))
	}

	name := ""
	if s.loser >= 0 {
		name = s.boards[s.loser].Name()
	}
	control.Logger().Log(log.NewGameEndEntry(turn, name, s.Result))
	return s
}

func (s *GameEndState) String() string {
	return "GameEnd"
}

// Boards returns every board as it stood at the end.
func (s *GameEndState) Boards() []*BoardState {
	return s.boards
}

// Loser returns the defeated board's index, or -1 for a draw.
func (s *GameEndState) Loser() int {
	return s.loser
}

func (s *GameEndState) Handle(ctx context.Context, event GameEvent) Step {
	switch ev := event.(type) {
	case GameEnded:
		return automaton.Pop[GameEvent]()
	case IO:
		if isKey(ev, KeyEscape) {
			return automaton.Pop[GameEvent]()
		}
	}
	return automaton.Stay[GameEvent]()
}
