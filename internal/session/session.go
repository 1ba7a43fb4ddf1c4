package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peterkuimelis/kaiju/internal/automaton"
	"github.com/peterkuimelis/kaiju/internal/game"
	"github.com/peterkuimelis/kaiju/internal/log"
	"github.com/peterkuimelis/kaiju/internal/view"
)

var (
	ErrGameOver       = errors.New("game is over")
	ErrNotInteractive = errors.New("game is not waiting for a click")
	ErrRejected       = errors.New("click rejected")
	ErrNotFound       = errors.New("session not found")
)

// Options configures a session.
type Options struct {
	Game         game.GameConfig
	LoadingTicks int
	// Viewer is the seat whose hand is revealed in snapshots (view.Everyone for all).
	Viewer int
	// Logger additionally receives every game event, e.g. a TextLogger.
	Logger log.EventLogger
}

// Session owns one game's automaton. All methods are safe for concurrent use;
// events are handled one at a time in arrival order.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	machine *automaton.Machine[game.GameEvent]
	logger  *log.SyncLogger
	drained int
	viewer  int
}

// Start loads a game from defs in the background and returns a session
// sitting in the loading state.
func Start(defs *game.Definitions, opts Options) *Session {
	s := &Session{
		ID:     uuid.New(),
		logger: log.NewSyncLogger(log.NewMemoryLogger()),
		viewer: opts.Viewer,
	}
	cfg := opts.Game
	cfg.Logger = s.logger
	if opts.Logger != nil {
		cfg.Logger = teeLogger{s.logger, opts.Logger}
	}

	loader := game.LoadAsync(func() (*game.GameControlState, error) {
		return game.NewGame(defs, cfg)
	})
	s.machine = automaton.New[game.GameEvent](game.NewLoadingState(loader, opts.LoadingTicks))
	s.machine.Observe(s.observe)
	return s
}

// observe records every stack transition in the game log.
func (s *Session) observe(from automaton.State[game.GameEvent], ev game.GameEvent, step game.Step) {
	if step.Op == automaton.OpStay {
		return
	}
	turn, player := 0, ""
	if it, ok := from.(game.Interactive); ok {
		turn, player = it.Board().Turn, it.Board().Name()
	}
	to := "-"
	if step.State != nil {
		to = fmt.Sprint(step.State)
	}
	s.logger.Log(log.NewStateChangeEntry(turn, player, fmt.Sprint(from), step.Op.String(), to))
}

// run executes fn under the lock and turns a rules panic into an error.
func (s *Session) run(fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game error: %v", r)
		}
	}()
	if s.machine.Terminated() {
		return ErrGameOver
	}
	return fn()
}

// Tick advances timers. It reports whether the game has left the loading state.
func (s *Session) Tick(ctx context.Context) (bool, error) {
	var loaded bool
	err := s.run(func() error {
		s.machine.Tick(ctx)
		_, loading := s.machine.Top().(*game.LoadingState)
		loaded = !loading
		return nil
	})
	return loaded, err
}

// WaitReady ticks every interval until the game has started.
func (s *Session) WaitReady(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		loaded, err := s.Tick(ctx)
		if err != nil || loaded {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

// Dispatch feeds ev to the automaton.
func (s *Session) Dispatch(ctx context.Context, ev game.GameEvent) error {
	return s.run(func() error {
		s.machine.Dispatch(ctx, ev)
		return nil
	})
}

// Click translates a click on the active board through the top state's
// handler table.
func (s *Session) Click(ctx context.Context, zone game.BoardZone, index int) error {
	return s.run(func() error {
		it, ok := s.machine.Top().(game.Interactive)
		if !ok {
			return ErrNotInteractive
		}
		ev, ok := it.Handlers().Click(it.Board(), zone, index)
		if !ok {
			return fmt.Errorf("%w: %s %d", ErrRejected, zone, index)
		}
		s.machine.Dispatch(ctx, ev)
		return nil
	})
}

// Target answers a pending target choice. ZoneNone plays the card without one.
func (s *Session) Target(ctx context.Context, zone game.BoardZone, index int) error {
	return s.run(func() error {
		t, ok := s.machine.Top().(*game.TargetingState)
		if !ok {
			return ErrNotInteractive
		}
		if zone == game.ZoneNone {
			s.machine.Dispatch(ctx, game.NoTarget(t.CardIndex))
			return nil
		}
		ev, ok := t.Handlers().Click(t.Board(), zone, index)
		if !ok {
			return fmt.Errorf("%w: %s %d", ErrRejected, zone, index)
		}
		s.machine.Dispatch(ctx, ev)
		return nil
	})
}

// EndTurn ends the active human turn.
func (s *Session) EndTurn(ctx context.Context) error {
	return s.run(func() error {
		if _, ok := s.machine.Top().(*game.GameplayState); !ok {
			return ErrNotInteractive
		}
		s.machine.Dispatch(ctx, game.EndTurn{})
		return nil
	})
}

// Key forwards a raw key press.
func (s *Session) Key(ctx context.Context, key game.Key) error {
	return s.Dispatch(ctx, game.IO{Input: key})
}

// State snapshots the game from the session's viewer seat.
func (s *Session) State() *view.StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.BuildStateView(s.machine.Top(), s.viewer)
}

// Over reports whether the game has been decided (or abandoned).
func (s *Session) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.machine.Terminated() {
		return true
	}
	_, over := s.machine.Top().(*game.GameEndState)
	return over
}

// Result returns the loser's name (empty for a draw) and the result line.
// ok is false until the game has ended.
func (s *Session) Result() (loser, result string, ok bool) {
	for _, e := range s.logger.Events() {
		if e.Type == log.EventGameEnd {
			return e.Player, e.Details, true
		}
	}
	return "", "", false
}

// Events returns the whole game log.
func (s *Session) Events() []log.Entry {
	return s.logger.Events()
}

// Drain returns the entries logged since the previous Drain.
func (s *Session) Drain() []log.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.logger.Events()
	if s.drained >= len(all) {
		return nil
	}
	out := all[s.drained:]
	s.drained = len(all)
	return out
}

type teeLogger struct {
	primary *log.SyncLogger
	extra   log.EventLogger
}

func (t teeLogger) Log(e log.Entry) {
	t.primary.Log(e)
	t.extra.Log(e)
}

func (t teeLogger) Events() []log.Entry {
	return t.primary.Events()
}
