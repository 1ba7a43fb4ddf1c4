package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EffectKind is the variant tag of an Effect.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectEcho
	EffectGlobal
	EffectReturn
	EffectToBuildings
	EffectBreak
	EffectBreakUnblockable
	EffectBreakEverything
)

var effectNames = map[string]EffectKind{
	"None":             EffectNone,
	"Echo":             EffectEcho,
	"Global":           EffectGlobal,
	"Return":           EffectReturn,
	"ToBuildings":      EffectToBuildings,
	"Break":            EffectBreak,
	"BreakUnblockable": EffectBreakUnblockable,
	"BreakEverything":  EffectBreakEverything,
}

func (k EffectKind) String() string {
	for name, v := range effectNames {
		if v == k {
			return name
		}
	}
	return "Unknown"
}

// Effect is pure data describing one thing a card does. Evaluation happens in
// BoardState.EvaluateEffect.
type Effect struct {
	Kind     EffectKind
	Msg      string   // Echo
	Currency Currency // Global
	Delta    int      // Global
}

// Echo logs msg.
func Echo(msg string) Effect { return Effect{Kind: EffectEcho, Msg: msg} }

// Global adds delta to the ledger entry for currency.
func Global(currency Currency, delta int) Effect {
	return Effect{Kind: EffectGlobal, Currency: currency, Delta: delta}
}

// Simple returns an effect variant that carries no data.
func Simple(kind EffectKind) Effect { return Effect{Kind: kind} }

func (e Effect) String() string {
	switch e.Kind {
	case EffectEcho:
		return fmt.Sprintf("Echo(%q)", e.Msg)
	case EffectGlobal:
		return fmt.Sprintf("Global(%s %+d)", e.Currency, e.Delta)
	default:
		return e.Kind.String()
	}
}

// effectDoc is the document shape: {effect: Global, key: Build, val: 2}.
type effectDoc struct {
	Effect string   `yaml:"effect"`
	Msg    string   `yaml:"msg"`
	Key    Currency `yaml:"key"`
	Val    int      `yaml:"val"`
}

func (e *Effect) UnmarshalYAML(value *yaml.Node) error {
	var doc effectDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	kind, ok := effectNames[doc.Effect]
	if !ok {
		return fmt.Errorf("line %d: unknown effect %q", value.Line, doc.Effect)
	}
	*e = Effect{Kind: kind, Msg: doc.Msg, Currency: doc.Key, Delta: doc.Val}
	return nil
}
