// Package automaton implements the push-down state machine that routes game
// events to the active state.
package automaton

import (
	"context"
	"fmt"
)

// Op is a stack operation requested by a state after handling an event.
type Op int

const (
	OpStay    Op = iota // event consumed, state stays on top
	OpPush              // new state on top of the current one
	OpPop               // discard top, expose the state beneath
	OpReplace           // swap top for a new state
)

func (o Op) String() string {
	switch o {
	case OpStay:
		return "Stay"
	case OpPush:
		return "Push"
	case OpPop:
		return "Pop"
	case OpReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Step is the result of State.Handle: a stack operation plus follow-up events
// that are processed by the new top state before Dispatch returns.
type Step[E any] struct {
	Op    Op
	State State[E]
	Emit  []E
}

// Stay keeps the current state on top. Nothing further is processed.
func Stay[E any]() Step[E] {
	return Step[E]{Op: OpStay}
}

// Push layers s over the current state.
func Push[E any](s State[E], emit ...E) Step[E] {
	return Step[E]{Op: OpPush, State: s, Emit: emit}
}

// Pop removes the current state.
func Pop[E any](emit ...E) Step[E] {
	return Step[E]{Op: OpPop, Emit: emit}
}

// Replace swaps the current state for s.
func Replace[E any](s State[E], emit ...E) Step[E] {
	return Step[E]{Op: OpReplace, State: s, Emit: emit}
}

// State is one entry of the automaton stack.
type State[E any] interface {
	Handle(ctx context.Context, event E) Step[E]
}

// Ticker is implemented by states that need periodic updates (timers, polling).
// Returned events are dispatched as if they came from outside.
type Ticker[E any] interface {
	Tick(ctx context.Context) []E
}

// Observer is notified of every delivered event and resulting step.
type Observer[E any] func(state State[E], event E, step Step[E])

// Machine is a stack of states. The top state receives all events.
type Machine[E any] struct {
	stack   []State[E]
	queue   []E
	observe Observer[E]
}

// New creates a machine with start as its only state.
func New[E any](start State[E]) *Machine[E] {
	if start == nil {
		panic("automaton: nil starting state")
	}
	return &Machine[E]{stack: []State[E]{start}}
}

// Observe installs a callback invoked after each handled event.
func (m *Machine[E]) Observe(o Observer[E]) {
	m.observe = o
}

// Top returns the active state, or nil once the machine has terminated.
func (m *Machine[E]) Top() State[E] {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Depth returns the number of stacked states.
func (m *Machine[E]) Depth() int {
	return len(m.stack)
}

// Terminated reports whether the stack has been emptied.
func (m *Machine[E]) Terminated() bool {
	return len(m.stack) == 0
}

// Dispatch queues event and drains the queue. Each follow-up event is handled
// by whatever state is on top after the previous step was applied.
// Returns true once the stack is empty.
func (m *Machine[E]) Dispatch(ctx context.Context, event E) bool {
	m.queue = append(m.queue, event)
	return m.drain(ctx)
}

// Tick forwards a periodic update to the top state and dispatches whatever
// events it produces.
func (m *Machine[E]) Tick(ctx context.Context) bool {
	top := m.Top()
	if top == nil {
		return true
	}
	t, ok := top.(Ticker[E])
	if !ok {
		return false
	}
	events := t.Tick(ctx)
	if len(events) == 0 {
		return false
	}
	m.queue = append(m.queue, events...)
	return m.drain(ctx)
}

func (m *Machine[E]) drain(ctx context.Context) bool {
	for len(m.queue) > 0 {
		top := m.Top()
		if top == nil {
			m.queue = nil
			return true
		}
		event := m.queue[0]
		m.queue = m.queue[1:]

		step := top.Handle(ctx, event)
		if m.observe != nil {
			m.observe(top, event, step)
		}
		m.apply(step)
		if step.Op == OpStay {
			continue
		}
		m.queue = append(m.queue, step.Emit...)
	}
	return m.Terminated()
}

func (m *Machine[E]) apply(step Step[E]) {
	switch step.Op {
	case OpStay:
	case OpPush:
		if step.State == nil {
			panic("automaton: push of nil state")
		}
		m.stack = append(m.stack, step.State)
	case OpPop:
		m.stack = m.stack[:len(m.stack)-1]
	case OpReplace:
		if step.State == nil {
			panic("automaton: replace with nil state")
		}
		m.stack[len(m.stack)-1] = step.State
	default:
		panic(fmt.Sprintf("automaton: unknown op %d", step.Op))
	}
}
