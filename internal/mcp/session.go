package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/peterkuimelis/kaiju/internal/session"
	"github.com/peterkuimelis/kaiju/internal/view"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	GameID   string           `json:"game_id"`
	Events   []view.EventView `json:"events"`
	State    *view.StateView  `json:"state,omitempty"`
	GameOver bool             `json:"game_over"`
	Loser    string           `json:"loser,omitempty"`
	Result   string           `json:"result,omitempty"`
	Hint     string           `json:"hint,omitempty"`
}

// buildResponse collects the events since the last tool call and the
// current snapshot.
func buildResponse(s *session.Session) *ToolResponse {
	resp := &ToolResponse{
		GameID: s.ID.String(),
		Events: view.EventsToView(s.Drain()),
		State:  s.State(),
	}
	if loser, result, ok := s.Result(); ok {
		resp.GameOver = true
		resp.Loser = loser
		resp.Result = result
	}
	resp.Hint = hint(resp.State)
	return resp
}

// hint tells the agent which tools make sense right now.
func hint(sv *view.StateView) string {
	switch sv.Mode {
	case "target":
		return fmt.Sprintf("Choose a target for %s with target_card (zone %s), or zone None to play it without one.",
			sv.Targeting.Card, sv.Targeting.Zone)
	case "play":
		return "Play hand cards with pick_card, buy with buy_card, then end_turn. Only cards marked clickable are legal."
	case "over":
		return "The game is over. Use start_game to play again."
	}
	return ""
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
