package game

import (
	"context"
	"fmt"

	"github.com/peterkuimelis/kaiju/internal/automaton"
)

// Loader is polled once per tick until the game is ready. Poll never blocks.
type Loader interface {
	Poll() (control *GameControlState, ready bool, err error)
}

// AsyncLoader runs a load function in the background.
type AsyncLoader struct {
	done    chan struct{}
	control *GameControlState
	err     error
}

// LoadAsync starts fn in a goroutine.
func LoadAsync(fn func() (*GameControlState, error)) *AsyncLoader {
	l := &AsyncLoader{done: make(chan struct{})}
	go func() {
		defer close(l.done)
		l.control, l.err = fn()
	}()
	return l
}

// Wait blocks until loading has finished.
func (l *AsyncLoader) Wait() {
	<-l.done
}

func (l *AsyncLoader) Poll() (*GameControlState, bool, error) {
	select {
	case <-l.done:
		return l.control, true, l.err
	default:
		return nil, false, nil
	}
}

// Ready wraps an already built game in a Loader.
type Ready struct {
	Control *GameControlState
}

func (r Ready) Poll() (*GameControlState, bool, error) {
	return r.Control, true, nil
}

// LoadingState is the first state. It waits for the loader and a short frame
// countdown, then hands the game to the first player.
type LoadingState struct {
	loader  Loader
	ticks   int
	control *GameControlState
}

// NewLoadingState waits at least ticks frames before starting the game.
func NewLoadingState(loader Loader, ticks int) *LoadingState {
	return &LoadingState{loader: loader, ticks: ticks}
}

func (l *LoadingState) String() string {
	return "Loading"
}

// Control returns the loaded game, or nil while loading.
func (l *LoadingState) Control() *GameControlState {
	return l.control
}

func (l *LoadingState) poll() {
	if l.control != nil {
		return
	}
	control, ready, err := l.loader.Poll()
	if !ready {
		return
	}
	if err != nil {
		panic(fmt.Sprintf("loading failed: %v", err))
	}
	l.control = control
}

// Tick implements automaton.Ticker.
func (l *LoadingState) Tick(ctx context.Context) []GameEvent {
	l.poll()
	if l.ticks > 0 {
		l.ticks--
	}
	if l.control != nil && l.ticks == 0 {
		return []GameEvent{Timeout{}}
	}
	return nil
}

func (l *LoadingState) Handle(ctx context.Context, event GameEvent) Step {
	if _, ok := event.(Timeout); !ok && !isKey(event, KeyReturn) {
		return automaton.Stay[GameEvent]()
	}
	l.poll()
	if l.control == nil {
		return automaton.Stay[GameEvent]()
	}
	return automaton.Replace[GameEvent](l.control.Overtake(), StartTurn{})
}
