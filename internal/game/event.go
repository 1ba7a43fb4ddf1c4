package game

import "fmt"

// GameEvent is the closed set of events routed by the automaton. Events carry
// indices, never references, so they stay valid while the board changes.
type GameEvent interface {
	isGameEvent()
	fmt.Stringer
}

// StartTurn is emitted on entry to a player's turn.
type StartTurn struct{}

// CardPicked selects the hand card at HandIndex for play.
type CardPicked struct {
	HandIndex int
}

// CardTargeted resolves a targeted play. TargetZone ZoneNone means no target.
type CardTargeted struct {
	SourceZone  BoardZone
	SourceIndex int
	TargetZone  BoardZone
	TargetIndex int
}

// CardBought purchases menu card MenuIndex from the store in StoreZone.
type CardBought struct {
	StoreZone BoardZone
	MenuIndex int
}

// EndTurn finishes the active player's turn.
type EndTurn struct{}

// GameEnded closes the game.
type GameEnded struct{}

// Resign concedes the game for the active player.
type Resign struct{}

// Timeout is synthesized by timers.
type Timeout struct{}

// IO wraps a raw input event from the presentation layer.
type IO struct {
	Input any
}

// Key is a raw key press understood by the core states.
type Key string

const (
	KeyReturn Key = "Return"
	KeyEscape Key = "Escape"
)

func (StartTurn) isGameEvent()    {}
func (CardPicked) isGameEvent()   {}
func (CardTargeted) isGameEvent() {}
func (CardBought) isGameEvent()   {}
func (EndTurn) isGameEvent()      {}
func (GameEnded) isGameEvent()    {}
func (Resign) isGameEvent()       {}
func (Timeout) isGameEvent()      {}
func (IO) isGameEvent()           {}

func (StartTurn) String() string    { return "StartTurn" }
func (e CardPicked) String() string { return fmt.Sprintf("CardPicked(%d)", e.HandIndex) }
func (e CardTargeted) String() string {
	return fmt.Sprintf("CardTargeted(%s %d -> %s %d)", e.SourceZone, e.SourceIndex, e.TargetZone, e.TargetIndex)
}
func (e CardBought) String() string {
	return fmt.Sprintf("CardBought(%s %d)", e.StoreZone, e.MenuIndex)
}
func (EndTurn) String() string   { return "EndTurn" }
func (GameEnded) String() string { return "GameEnded" }
func (Resign) String() string    { return "Resign" }
func (Timeout) String() string   { return "Timeout" }
func (e IO) String() string      { return fmt.Sprintf("IO(%v)", e.Input) }

// NoTarget is the "nothing to target" answer for the hand card at idx.
func NoTarget(idx int) CardTargeted {
	return CardTargeted{SourceZone: ZoneHand, SourceIndex: idx, TargetZone: ZoneNone}
}

// isKey reports whether ev is a key press of k.
func isKey(ev GameEvent, k Key) bool {
	io, ok := ev.(IO)
	if !ok {
		return false
	}
	key, ok := io.Input.(Key)
	return ok && key == k
}
