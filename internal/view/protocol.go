package view

// Message types for the JSON protocol spoken by the web and MCP front ends.

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"` // "state", "events", "game_over", "error"

	// For "state" and "game_over"
	State *StateView `json:"state,omitempty"`

	// For "events"
	Events []EventView `json:"events,omitempty"`

	// For "game_over"
	Loser  string `json:"loser,omitempty"`
	Result string `json:"result,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`
}

// EventView is a game log entry for the client.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Player  string `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// CardView describes one card in a zone.
type CardView struct {
	Index          int      `json:"index"`
	Name           string   `json:"name"`
	Text           string   `json:"text,omitempty"`
	Cost           string   `json:"cost,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Image          string   `json:"image,omitempty"`
	Available      bool     `json:"available,omitempty"`
	Clickable      bool     `json:"clickable,omitempty"`
	Stunned        bool     `json:"stunned,omitempty"`
	InterceptsLeft int      `json:"intercepts_left,omitempty"`
}

// ZoneView lists the cards of one zone in index order.
type ZoneView struct {
	Zone  string     `json:"zone"`
	Count int        `json:"count"`
	Cards []CardView `json:"cards,omitempty"` // omitted for hidden zones
}

// PlayerView shows one board.
type PlayerView struct {
	Name     string         `json:"name"`
	Control  string         `json:"control"`
	Turn     int            `json:"turn"`
	Active   bool           `json:"active"`
	Defeated bool           `json:"defeated"`
	Ledger   map[string]int `json:"ledger"`
	// Currencies lists the ledger keys in display order.
	Currencies []string   `json:"currencies"`
	DeckCount  int        `json:"deck_count"`
	Hand       ZoneView   `json:"hand"`
	Buildings  ZoneView   `json:"buildings"`
	Kaiju      ZoneView   `json:"kaiju"`
	Stores     []ZoneView `json:"stores,omitempty"`
}

// TargetView describes a pending target choice.
type TargetView struct {
	CardIndex int    `json:"card_index"`
	Card      string `json:"card"`
	Zone      string `json:"zone"`
}

// StateView is a snapshot of the whole game.
type StateView struct {
	State     string       `json:"state"` // top automaton state
	Mode      string       `json:"mode"`  // "loading", "play", "target", "over"
	Round     int          `json:"round"`
	Active    string       `json:"active,omitempty"`
	Players   []PlayerView `json:"players,omitempty"`
	Targeting *TargetView  `json:"targeting,omitempty"`
	Result    string       `json:"result,omitempty"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"` // "click", "end_turn", "key", "new_game", "state"

	// For "click"
	Zone  string `json:"zone,omitempty"`
	Index int    `json:"index,omitempty"`

	// For "key": "Return" or "Escape"
	Key string `json:"key,omitempty"`
}
