package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownCard = errors.New("unknown card")
	ErrUnknownZone = errors.New("unknown zone")
	ErrBadDocument = errors.New("malformed definition document")
)

// Store node names and the zones their menus occupy.
var storeNodes = []struct {
	node string
	zone BoardZone
}{
	{"build_store", ZoneBuildStore},
	{"kaiju_store", ZoneKaijuStore},
}

// StoreDoc describes a store: {type: Fixed, items: [...]} or
// {type: Drafted, size: 3, from_deck: kaiju_deck}.
type StoreDoc struct {
	Type     string   `yaml:"type"`
	Items    []string `yaml:"items"`
	Size     int      `yaml:"size"`
	FromDeck string   `yaml:"from_deck"`
}

// CardCount is one line of a deck composition.
type CardCount struct {
	Name  string
	Count int
}

// Definitions is a parsed card/deck/store/player document. Named deck nodes
// keep their document order so an unshuffled deck is deterministic.
type Definitions struct {
	Cards    map[string]Card
	Players  []Player
	GameType string
	Stores   map[BoardZone]StoreDoc

	nodes map[string]*yaml.Node
}

// LoadDefinitions reads and parses the document at path. YAML and JSON are
// both accepted.
func LoadDefinitions(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDefinitions(data)
}

// ParseDefinitions parses and validates a definition document.
func ParseDefinitions(data []byte) (*Definitions, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse definitions: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrBadDocument)
	}

	defs := &Definitions{
		Cards:  make(map[string]Card),
		Stores: make(map[BoardZone]StoreDoc),
		nodes:  make(map[string]*yaml.Node),
	}
	top := root.Content[0]
	for i := 0; i+1 < len(top.Content); i += 2 {
		defs.nodes[top.Content[i].Value] = top.Content[i+1]
	}

	cardsNode, ok := defs.nodes["cards"]
	if !ok {
		return nil, fmt.Errorf("%w: missing \"cards\" node", ErrBadDocument)
	}
	var cards map[string]Card
	if err := cardsNode.Decode(&cards); err != nil {
		return nil, fmt.Errorf("parse cards: %w", err)
	}
	for name, c := range cards {
		c.Name = name
		if c.DrawTo == ZoneNone {
			c.DrawTo = ZoneHand
		}
		if c.DrawTo != ZoneHand && c.DrawTo != ZoneKaiju {
			return nil, fmt.Errorf("%w: card %q draws to %s", ErrBadDocument, name, c.DrawTo)
		}
		if c.Cost.Count < 0 {
			return nil, fmt.Errorf("%w: card %q has negative cost", ErrBadDocument, name)
		}
		c.Recharge()
		defs.Cards[name] = c
	}

	if n, ok := defs.nodes["players"]; ok {
		if err := n.Decode(&defs.Players); err != nil {
			return nil, fmt.Errorf("parse players: %w", err)
		}
	}
	if n, ok := defs.nodes["game_type"]; ok {
		if err := n.Decode(&defs.GameType); err != nil {
			return nil, fmt.Errorf("parse game_type: %w", err)
		}
	}

	for _, sn := range storeNodes {
		n, ok := defs.nodes[sn.node]
		if !ok {
			continue
		}
		var sd StoreDoc
		if err := n.Decode(&sd); err != nil {
			return nil, fmt.Errorf("parse %s: %w", sn.node, err)
		}
		defs.Stores[sn.zone] = sd
	}

	if err := defs.validate(); err != nil {
		return nil, err
	}
	return defs, nil
}

func (d *Definitions) validate() error {
	for zone, sd := range d.Stores {
		switch sd.Type {
		case "Fixed":
			if _, err := d.CardsByName(sd.Items); err != nil {
				return fmt.Errorf("store %s: %w", zone, err)
			}
		case "Drafted":
			if sd.Size <= 0 {
				return fmt.Errorf("%w: store %s needs a positive size", ErrBadDocument, zone)
			}
			if _, err := d.Deck(sd.FromDeck); err != nil {
				return fmt.Errorf("store %s: %w", zone, err)
			}
		default:
			return fmt.Errorf("%w: store %s has unknown type %q", ErrBadDocument, zone, sd.Type)
		}
	}

	if d.GameType == "" {
		return nil
	}
	if d.GameType != "vs" {
		return fmt.Errorf("%w: unsupported game_type %q", ErrBadDocument, d.GameType)
	}
	if len(d.Players) != 2 {
		return fmt.Errorf("%w: game_type vs needs exactly 2 players, got %d", ErrBadDocument, len(d.Players))
	}
	for i := range d.Players {
		d.Players[i].Opponent = 1 - i
		p := d.Players[i]
		if _, err := d.Deck(p.StartingDeck); err != nil {
			return fmt.Errorf("player %s: %w", p.Name, err)
		}
		if _, err := d.Deck(p.StartingBuildings); err != nil {
			return fmt.Errorf("player %s: %w", p.Name, err)
		}
	}
	return nil
}

// Card returns a fresh copy of the named template.
func (d *Definitions) Card(name string) (Card, error) {
	c, ok := d.Cards[name]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, name)
	}
	return c.Clone(), nil
}

// CardsByName copies the named templates in order.
func (d *Definitions) CardsByName(names []string) ([]Card, error) {
	out := make([]Card, 0, len(names))
	for _, name := range names {
		c, err := d.Card(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Composition returns the name → count entries of a deck node in document order.
func (d *Definitions) Composition(node string) ([]CardCount, error) {
	n, ok := d.nodes[node]
	if !ok {
		return nil, fmt.Errorf("%w: deck node %q not found", ErrBadDocument, node)
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: deck node %q must map card names to counts", ErrBadDocument, node)
	}
	var out []CardCount
	for i := 0; i+1 < len(n.Content); i += 2 {
		var count int
		if err := n.Content[i+1].Decode(&count); err != nil {
			return nil, fmt.Errorf("deck %q: %w", node, err)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: deck %q has negative count for %q", ErrBadDocument, node, n.Content[i].Value)
		}
		out = append(out, CardCount{Name: n.Content[i].Value, Count: count})
	}
	return out, nil
}

// Deck expands a deck node into cards.
func (d *Definitions) Deck(node string) ([]Card, error) {
	counts, err := d.Composition(node)
	if err != nil {
		return nil, err
	}
	var cards []Card
	for _, cc := range counts {
		tmpl, err := d.Card(cc.Name)
		if err != nil {
			return nil, fmt.Errorf("deck %q: %w", node, err)
		}
		for i := 0; i < cc.Count; i++ {
			cards = append(cards, tmpl.Clone())
		}
	}
	return cards, nil
}
