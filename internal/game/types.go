package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- Enums ---

// BoardZone identifies a region of a player's board.
type BoardZone int

const (
	ZoneNone BoardZone = iota
	ZoneHand
	ZoneBuildings
	ZoneKaiju
	ZoneBuildStore
	ZoneKaijuStore
)

var zoneNames = map[string]BoardZone{
	"None":       ZoneNone,
	"Hand":       ZoneHand,
	"Buildings":  ZoneBuildings,
	"Kaiju":      ZoneKaiju,
	"BuildStore": ZoneBuildStore,
	"KaijuStore": ZoneKaijuStore,
}

func (z BoardZone) String() string {
	switch z {
	case ZoneHand:
		return "Hand"
	case ZoneBuildings:
		return "Buildings"
	case ZoneKaiju:
		return "Kaiju"
	case ZoneBuildStore:
		return "BuildStore"
	case ZoneKaijuStore:
		return "KaijuStore"
	default:
		return "None"
	}
}

// IsStore reports whether the zone is a shop menu.
func (z BoardZone) IsStore() bool {
	return z == ZoneBuildStore || z == ZoneKaijuStore
}

func (z *BoardZone) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, zoneNames, z)
}

// ParseZone converts a zone name to a BoardZone.
func ParseZone(name string) (BoardZone, error) {
	z, ok := zoneNames[name]
	if !ok {
		return ZoneNone, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	return z, nil
}

// TargetEffect is applied to the card chosen as a play's target.
type TargetEffect int

const (
	TargetNone TargetEffect = iota
	TargetStun
	TargetKill
	TargetBounce
)

var targetEffectNames = map[string]TargetEffect{
	"None":   TargetNone,
	"Stun":   TargetStun,
	"Kill":   TargetKill,
	"Bounce": TargetBounce,
}

func (t TargetEffect) String() string {
	switch t {
	case TargetStun:
		return "Stun"
	case TargetKill:
		return "Kill"
	case TargetBounce:
		return "Bounce"
	default:
		return "None"
	}
}

func (t *TargetEffect) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, targetEffectNames, t)
}

// PlayerControl says who makes decisions for a board.
type PlayerControl int

const (
	ControlHuman PlayerControl = iota
	ControlAI
)

var controlNames = map[string]PlayerControl{
	"Human": ControlHuman,
	"AI":    ControlAI,
}

func (c PlayerControl) String() string {
	if c == ControlAI {
		return "AI"
	}
	return "Human"
}

func (c *PlayerControl) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, controlNames, c)
}

// Currency names a ledger resource.
type Currency string

const (
	CurrencyBuild Currency = "Build"
	CurrencyEvil  Currency = "Evil"
	CurrencyBlock Currency = "Block"
)

// InGame lists the currencies shown to players, in display order.
func InGame() []Currency {
	return []Currency{CurrencyBuild, CurrencyEvil, CurrencyBlock}
}

func (c *Currency) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	for _, known := range InGame() {
		if string(known) == s {
			*c = known
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown currency %q", value.Line, s)
}

func unmarshalEnum[T any](value *yaml.Node, names map[string]T, out *T) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, ok := names[s]
	if !ok {
		return fmt.Errorf("line %d: unknown value %q", value.Line, s)
	}
	*out = v
	return nil
}
