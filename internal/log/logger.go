package log

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(entry Entry)
	Events() []Entry
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []Entry
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(entry Entry) {
	l.seq++
	entry.Seq = l.seq
	l.events = append(l.events, entry)
}

func (l *MemoryLogger) Events() []Entry {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []Entry {
	var result []Entry
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero entry if none.
func (l *MemoryLogger) LastEvent() Entry {
	if len(l.events) == 0 {
		return Entry{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(entry Entry) {
	l.MemoryLogger.Log(entry)
	fmt.Fprintln(l.w, FormatEntry(entry))
}

// --- SyncLogger: guards another logger for use across goroutines ---

type SyncLogger struct {
	mu    sync.Mutex
	inner EventLogger
}

func NewSyncLogger(inner EventLogger) *SyncLogger {
	return &SyncLogger{inner: inner}
}

func (l *SyncLogger) Log(entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Log(entry)
}

// Events returns a copy of the inner logger's events.
func (l *SyncLogger) Events() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.inner.Events())
}

// --- Formatting ---

// FormatEntry formats a single event as a human-readable line.
func FormatEntry(e Entry) string {
	player := e.Player
	// Pad player to 10 chars for alignment
	for len(player) < 10 {
		player += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, player, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []Entry) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEntry(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnStartEntry(turn int, player string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventTurnStart,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, player),
	}
}

func NewTurnEndEntry(turn int, player string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventTurnEnd,
		Details: fmt.Sprintf("%s ends turn %d", player, turn),
	}
}

func NewDrawEntry(turn int, player, cardName, zone string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s to %s", player, cardName, zone),
	}
}

func NewPlayEntry(turn int, player, cardName string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventPlay,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s", player, cardName),
	}
}

func NewTargetEntry(turn int, player, cardName, targetName, effect string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventTarget,
		Card:    cardName,
		Details: fmt.Sprintf("%s targets %s with %s (%s)", player, targetName, cardName, effect),
	}
}

func NewBuyEntry(turn int, player, cardName, recipient string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventBuy,
		Card:    cardName,
		Details: fmt.Sprintf("%s buys %s into %s's deck", player, cardName, recipient),
	}
}

func NewBuyRejectedEntry(turn int, player, cardName, reason string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventBuyRejected,
		Card:    cardName,
		Details: fmt.Sprintf("%s cannot buy %s (%s)", player, cardName, reason),
	}
}

func NewInterceptEntry(turn int, player, cardName, interceptor string, left int) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventIntercept,
		Card:    cardName,
		Details: fmt.Sprintf("%s intercepts %s (%d left)", interceptor, cardName, left),
	}
}

func NewEchoEntry(turn int, player, cardName, msg string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventEcho,
		Card:    cardName,
		Details: fmt.Sprintf("%s: %s", cardName, msg),
	}
}

func NewCurrencyChangeEntry(turn int, player, currency string, oldVal, newVal int, reason string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventCurrencyChange,
		Details: fmt.Sprintf("%s %s: %d → %d (%s)", player, currency, oldVal, newVal, reason),
	}
}

func NewBlockEntry(turn int, player, cardName, currency string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventBlock,
		Card:    cardName,
		Details: fmt.Sprintf("%s blocks %s with 1 %s", player, cardName, currency),
	}
}

func NewBreakEntry(turn int, player, cardName, building string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventBreak,
		Card:    cardName,
		Details: fmt.Sprintf("%s breaks %s's %s", cardName, player, building),
	}
}

func NewZoneMoveEntry(t EventType, turn int, player, cardName, where string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    t,
		Card:    cardName,
		Details: fmt.Sprintf("%s goes to %s's %s", cardName, player, where),
	}
}

func NewRefillEntry(turn int, player, store, cardName string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventRefill,
		Card:    cardName,
		Details: fmt.Sprintf("%s restocks %s", store, cardName),
	}
}

func NewShuffleEntry(turn int, player string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventShuffle,
		Details: fmt.Sprintf("%s shuffled their deck", player),
	}
}

func NewStateChangeEntry(turn int, player, from, op, to string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventStateChange,
		Details: fmt.Sprintf("%s -[%s]-> %s", from, op, to),
	}
}

func NewDefeatEntry(turn int, player string) Entry {
	return Entry{
		Turn:    turn,
		Player:  player,
		Type:    EventDefeat,
		Details: fmt.Sprintf("%s has no buildings left", player),
	}
}

func NewGameEndEntry(turn int, loser, result string) Entry {
	return Entry{
		Turn:    turn,
		Player:  loser,
		Type:    EventGameEnd,
		Details: result,
	}
}
