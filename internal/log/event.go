package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventTurnStart EventType = iota
	EventTurnEnd
	EventDraw
	EventPlay
	EventTarget
	EventBuy
	EventBuyRejected
	EventIntercept
	EventEcho
	EventCurrencyChange
	EventBlock
	EventBreak
	EventToBuildings
	EventReturn
	EventStun
	EventKill
	EventBounce
	EventRefill
	EventShuffle
	EventStateChange
	EventDefeat
	EventGameEnd
)

func (e EventType) String() string {
	switch e {
	case EventTurnStart:
		return "TurnStart"
	case EventTurnEnd:
		return "TurnEnd"
	case EventDraw:
		return "Draw"
	case EventPlay:
		return "Play"
	case EventTarget:
		return "Target"
	case EventBuy:
		return "Buy"
	case EventBuyRejected:
		return "BuyRejected"
	case EventIntercept:
		return "Intercept"
	case EventEcho:
		return "Echo"
	case EventCurrencyChange:
		return "CurrencyChange"
	case EventBlock:
		return "Block"
	case EventBreak:
		return "Break"
	case EventToBuildings:
		return "ToBuildings"
	case EventReturn:
		return "Return"
	case EventStun:
		return "Stun"
	case EventKill:
		return "Kill"
	case EventBounce:
		return "Bounce"
	case EventRefill:
		return "Refill"
	case EventShuffle:
		return "Shuffle"
	case EventStateChange:
		return "StateChange"
	case EventDefeat:
		return "Defeat"
	case EventGameEnd:
		return "GameEnd"
	default:
		return "Unknown"
	}
}

// Entry represents a single observable event in a game.
type Entry struct {
	Seq     int       // monotonic sequence number
	Turn    int       // board turn counter (1-based)
	Player  string    // acting player name
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
