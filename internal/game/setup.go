package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/peterkuimelis/kaiju/internal/log"
)

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	HandSize      int
	MaxRounds     int   // end in a draw after this many rounds (0 = no limit)
	Seed          int64 // RNG seed (0 for random)
	NoShuffle     bool  // skip deck shuffles (for deterministic tests)
	BlockCurrency Currency
	Logger        log.EventLogger

	// Strategy returns the AI for an AI-controlled player. Defaults to FirstPick.
	Strategy func(p Player) Strategy
	// Control overrides the control mode declared in the document.
	Control map[string]PlayerControl
}

// NewGame builds every player's board from defs and returns the controller,
// ready for Overtake.
func NewGame(defs *Definitions, cfg GameConfig) (*GameControlState, error) {
	if len(defs.Players) == 0 {
		return nil, fmt.Errorf("%w: no players", ErrBadDocument)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	strategy := cfg.Strategy
	if strategy == nil {
		strategy = func(Player) Strategy { return NewFirstPick() }
	}

	boards := make([]*BoardState, 0, len(defs.Players))
	for _, p := range defs.Players {
		if c, ok := cfg.Control[p.Name]; ok {
			p.Control = c
		}
		deck, err := defs.Deck(p.StartingDeck)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p.Name, err)
		}
		buildings, err := defs.Deck(p.StartingBuildings)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p.Name, err)
		}
		stores, err := defs.buildStores(rng, cfg.NoShuffle)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p.Name, err)
		}

		var ai Strategy
		if p.Control == ControlAI {
			ai = strategy(p)
		}
		b := NewBoardState(BoardConfig{
			Player:        p,
			HandSize:      cfg.HandSize,
			Deck:          deck,
			Buildings:     buildings,
			Stores:        stores,
			Strategy:      ai,
			BlockCurrency: cfg.BlockCurrency,
			Logger:        logger,
		})
		if !cfg.NoShuffle {
			b.Shuffle(rng)
		}
		boards = append(boards, b)
	}

	return NewGameControlState(boards, cfg.MaxRounds, logger), nil
}

// buildStores creates a fresh set of stores in zone order.
func (d *Definitions) buildStores(rng *rand.Rand, noShuffle bool) ([]*Store, error) {
	var stores []*Store
	for _, sn := range storeNodes {
		sd, ok := d.Stores[sn.zone]
		if !ok {
			continue
		}
		switch sd.Type {
		case "Fixed":
			items, err := d.CardsByName(sd.Items)
			if err != nil {
				return nil, err
			}
			stores = append(stores, NewFixedStore(sn.zone, items))
		case "Drafted":
			cards, err := d.Deck(sd.FromDeck)
			if err != nil {
				return nil, err
			}
			deck := NewDeck(cards)
			if !noShuffle {
				deck.Shuffle(rng)
			}
			stores = append(stores, NewDraftedStore(sn.zone, sd.Size, deck))
		}
	}
	return stores, nil
}
