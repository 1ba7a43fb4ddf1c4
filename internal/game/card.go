package game

import "slices"

// Cost is the price of a store card.
type Cost struct {
	Currency Currency `yaml:"currency"`
	Count    int      `yaml:"count"`
}

// Intercept lets a kaiju card cancel plays of cards carrying Tag, Times per turn.
type Intercept struct {
	Tag   string `yaml:"tag"`
	Times int    `yaml:"times"`
}

// Card is a value type: Clone duplicates everything, nothing is shared.
type Card struct {
	Name         string       `yaml:"-"`
	OnPlay       []Effect     `yaml:"on_play"`
	OnTurnStart  []Effect     `yaml:"on_turn_start"`
	OnTurnEnd    []Effect     `yaml:"on_turn_end"`
	OnStrike     []Effect     `yaml:"on_strike"`
	Cost         Cost         `yaml:"cost"`
	TargetZone   BoardZone    `yaml:"target_zone"`
	TargetEffect TargetEffect `yaml:"target_effect"`
	GiveToEnemy  bool         `yaml:"give_to_enemy"`
	DrawTo       BoardZone    `yaml:"draw_to"`
	Tags         []string     `yaml:"tags"`
	Intercept    *Intercept   `yaml:"intercept"`
	Image        string       `yaml:"image"`

	// Per-turn state, reset by BoardState.BeginTurn.
	Stunned        bool `yaml:"-"`
	InterceptsLeft int  `yaml:"-"`
	// Recomputed by BoardState.UpdateAvailability whenever control returns to the player.
	Available bool `yaml:"-"`
}

func (c Card) String() string {
	return c.Name
}

// Clone returns a deep copy of c.
func (c Card) Clone() Card {
	out := c
	out.OnPlay = slices.Clone(c.OnPlay)
	out.OnTurnStart = slices.Clone(c.OnTurnStart)
	out.OnTurnEnd = slices.Clone(c.OnTurnEnd)
	out.OnStrike = slices.Clone(c.OnStrike)
	out.Tags = slices.Clone(c.Tags)
	if c.Intercept != nil {
		ic := *c.Intercept
		out.Intercept = &ic
	}
	return out
}

// HasTag reports whether the card carries tag.
func (c Card) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// Recharge clears the per-turn flags and restores intercept uses from the template.
func (c *Card) Recharge() {
	c.Stunned = false
	c.InterceptsLeft = 0
	if c.Intercept != nil {
		c.InterceptsLeft = c.Intercept.Times
	}
}

// CanIntercept reports whether c is able to cancel the play of target.
func (c Card) CanIntercept(target Card) bool {
	if c.Stunned || c.Intercept == nil || c.InterceptsLeft <= 0 {
		return false
	}
	return target.HasTag(c.Intercept.Tag)
}

// NeedsTarget reports whether playing the card requires a target choice.
func (c Card) NeedsTarget() bool {
	return c.TargetZone != ZoneNone
}

// effectSelector picks one trigger's effect list from a card.
type effectSelector func(c *Card) []Effect

func onTurnStart(c *Card) []Effect { return c.OnTurnStart }
func onTurnEnd(c *Card) []Effect   { return c.OnTurnEnd }
func onStrike(c *Card) []Effect    { return c.OnStrike }
