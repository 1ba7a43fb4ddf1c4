package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/peterkuimelis/kaiju/internal/game"
	"github.com/peterkuimelis/kaiju/internal/session"
)

// Tools lets an MCP client play the first Human seat of a game. One game
// runs at a time per process.
type Tools struct {
	defs *game.Definitions
	opts session.Options
	log  *zap.Logger

	mu     sync.Mutex
	active *session.Session
}

func NewTools(defs *game.Definitions, opts session.Options, logger *zap.Logger) *Tools {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tools{defs: defs, opts: opts, log: logger}
}

// RegisterTools adds all game tools to the MCP server.
func (t *Tools) RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), t.handleStartGame)
	s.AddTool(pickCardTool(), t.handlePickCard)
	s.AddTool(targetCardTool(), t.handleTargetCard)
	s.AddTool(buyCardTool(), t.handleBuyCard)
	s.AddTool(endTurnTool(), t.handleEndTurn)
	s.AddTool(concedeTool(), t.handleConcede)
	s.AddTool(getGameStateTool(), t.handleGetGameState)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new kaiju game against the computer. You defend your city (buildings) and buy kaiju "+
			"that are sent to the opponent's deck. A player loses when their last building is broken. "+
			"Returns the initial state; cards marked clickable are your legal moves."),
		mcp.WithNumber("seed", mcp.Description("Optional random seed for a reproducible game")),
	)
}

func pickCardTool() mcp.Tool {
	return mcp.NewTool("pick_card",
		mcp.WithDescription("Play a card from your hand. Some cards then ask for a target (state mode 'target')."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the card in your hand")),
	)
}

func targetCardTool() mcp.Tool {
	return mcp.NewTool("target_card",
		mcp.WithDescription("Choose the target for the card being played. Use this when the state mode is 'target'."),
		mcp.WithString("zone", mcp.Required(), mcp.Description("Zone of the target, e.g. 'Kaiju', or 'None' to play without a target")),
		mcp.WithNumber("index", mcp.Description("0-based index of the target card in that zone")),
	)
}

func buyCardTool() mcp.Tool {
	return mcp.NewTool("buy_card",
		mcp.WithDescription("Buy a card from a store. Build cards join your deck; kaiju go to the opponent's deck."),
		mcp.WithString("store", mcp.Required(), mcp.Description("'BuildStore' or 'KaijuStore'")),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the card in the store")),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End your turn. Your kaiju strike, currencies reset, and the computer plays its turn."),
	)
}

func concedeTool() mcp.Tool {
	return mcp.NewTool("concede",
		mcp.WithDescription("Resign the current game. You are recorded as the loser."),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current game state and events since the last call without acting. Read-only."),
	)
}

// --- Tool handlers ---

func (t *Tools) current() *session.Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

func (t *Tools) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s := t.current(); s != nil && !s.Over() {
		return mcp.NewToolResultError("A game is already running. Finish it or use concede first."), nil
	}

	opts := t.opts
	if seed := request.GetInt("seed", 0); seed != 0 {
		opts.Game.Seed = int64(seed)
	}
	s := session.Start(t.defs, opts)
	waitCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := s.WaitReady(waitCtx, time.Second/60); err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	t.mu.Lock()
	t.active = s
	t.mu.Unlock()
	t.log.Info("game started", zap.String("game_id", s.ID.String()))
	return mcp.NewToolResultText(respondJSON(buildResponse(s))), nil
}

// act runs fn against the active game and reports the outcome.
func (t *Tools) act(fn func(s *session.Session) error) (*mcp.CallToolResult, error) {
	s := t.current()
	if s == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	if err := fn(s); err != nil {
		switch {
		case errors.Is(err, session.ErrRejected):
			return mcp.NewToolResultErrorf("Illegal move: %v. Only cards marked clickable can be chosen.", err), nil
		case errors.Is(err, session.ErrNotInteractive):
			return mcp.NewToolResultErrorf("Not now: %v. Check the state mode.", err), nil
		default:
			t.log.Warn("tool failed", zap.String("game_id", s.ID.String()), zap.Error(err))
			return mcp.NewToolResultErrorf("%v", err), nil
		}
	}
	resp := buildResponse(s)
	if resp.GameOver {
		t.log.Info("game over", zap.String("game_id", s.ID.String()), zap.String("result", resp.Result))
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (t *Tools) handlePickCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index := request.GetInt("index", -1)
	return t.act(func(s *session.Session) error {
		return s.Click(ctx, game.ZoneHand, index)
	})
}

func (t *Tools) handleTargetCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	zone, err := game.ParseZone(request.GetString("zone", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid zone: %v", err), nil
	}
	index := request.GetInt("index", 0)
	return t.act(func(s *session.Session) error {
		return s.Target(ctx, zone, index)
	})
}

func (t *Tools) handleBuyCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	zone, err := game.ParseZone(request.GetString("store", ""))
	if err != nil || !zone.IsStore() {
		return mcp.NewToolResultError("store must be 'BuildStore' or 'KaijuStore'"), nil
	}
	index := request.GetInt("index", -1)
	return t.act(func(s *session.Session) error {
		return s.Click(ctx, zone, index)
	})
}

func (t *Tools) handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.act(func(s *session.Session) error {
		return s.EndTurn(ctx)
	})
}

func (t *Tools) handleConcede(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.act(func(s *session.Session) error {
		if s.Over() {
			return nil
		}
		if s.State().Mode == "target" {
			return fmt.Errorf("%w: answer the pending target first", session.ErrNotInteractive)
		}
		return s.Dispatch(ctx, game.Resign{})
	})
}

func (t *Tools) handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.act(func(s *session.Session) error { return nil })
}
