// Package battle implements the turn-based combat engine: stat scaling,
// the status condition state machine, damage calculation, turn ordering,
// and the round loop that drives a battle to a win or draw.
package battle

import (
	"context"
	"errors"
)

// ErrUnknownSpecies is returned when a provider has no record for a
// requested species name. It is surfaced before any simulation starts.
var ErrUnknownSpecies = errors.New("unknown species")

// Provider supplies the external data the engine consumes. Implementations
// must be safe for concurrent read-only queries; multiple simulations may
// share one Provider.
type Provider interface {
	// TypeEffectiveness returns the product of the per-pair multipliers for
	// an attacking type against each defending type. Unknown pairs count as
	// neutral (1.0).
	TypeEffectiveness(ctx context.Context, attackType string, defenderTypes []string) (float64, error)

	// Species returns the base data for a named species, or an error
	// wrapping ErrUnknownSpecies if the name is not known.
	Species(ctx context.Context, name string) (*Species, error)
}

// Species is the raw, unscaled data a Provider returns for one creature.
type Species struct {
	Name  string
	Base  BaseStats
	Types []string
	Moves []Move
}

// DamageClass selects which stat pair a move is resolved against.
type DamageClass string

const (
	DamagePhysical DamageClass = "physical"
	DamageSpecial  DamageClass = "special"
)

// Move is a single attack a combatant knows.
type Move struct {
	Name     string
	Type     string
	Power    int // 0 means the move deals no damage and is never selected
	Accuracy int // carried for completeness; battles are always-hit
	Class    DamageClass
}

// ConditionKind identifies a status condition.
type ConditionKind string

const (
	Burn      ConditionKind = "burn"
	Poison    ConditionKind = "poison"
	Paralysis ConditionKind = "paralysis"
	Sleep     ConditionKind = "sleep"
	Freeze    ConditionKind = "freeze"
	Confusion ConditionKind = "confusion"
)

// Major reports whether the condition is one of the mutually exclusive
// major conditions. Confusion is independent and may coexist with any of
// them.
func (k ConditionKind) Major() bool {
	switch k {
	case Burn, Poison, Paralysis, Sleep, Freeze:
		return true
	}
	return false
}

// Condition is an active status condition. TurnsLeft is meaningful only
// for Sleep and Confusion; the other kinds persist until engine rules
// clear them.
type Condition struct {
	Kind      ConditionKind
	TurnsLeft int
}

// Combatant is one side of a battle, scaled and ready to fight. A
// Combatant is owned exclusively by a single simulation and is mutated in
// place each round.
type Combatant struct {
	Name      string
	HP        int
	MaxHP     int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
	Types     []string
	Moves     []Move

	conditions []Condition
}

// IsAlive reports whether the combatant has HP remaining.
func (c *Combatant) IsAlive() bool { return c.HP > 0 }

// TakeDamage reduces HP, clamping at 0, and returns the actual amount
// removed.
func (c *Combatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > c.HP {
		actual = c.HP
	}
	c.HP -= actual
	return actual
}

// HasType reports whether the combatant's own type set contains t.
func (c *Combatant) HasType(t string) bool {
	for _, own := range c.Types {
		if own == t {
			return true
		}
	}
	return false
}

// HasCondition reports whether a condition of the given kind is active.
func (c *Combatant) HasCondition(kind ConditionKind) bool {
	return c.condition(kind) != nil
}

// Conditions returns a copy of the active condition set.
func (c *Combatant) Conditions() []Condition {
	out := make([]Condition, len(c.conditions))
	copy(out, c.conditions)
	return out
}

// UsableMoves returns the moves with positive power, the only ones
// eligible for selection in battle.
func (c *Combatant) UsableMoves() []Move {
	usable := make([]Move, 0, len(c.Moves))
	for _, m := range c.Moves {
		if m.Power > 0 {
			usable = append(usable, m)
		}
	}
	return usable
}

func (c *Combatant) condition(kind ConditionKind) *Condition {
	for i := range c.conditions {
		if c.conditions[i].Kind == kind {
			return &c.conditions[i]
		}
	}
	return nil
}

func (c *Combatant) addCondition(cond Condition) {
	c.conditions = append(c.conditions, cond)
}

func (c *Combatant) removeCondition(kind ConditionKind) {
	for i := range c.conditions {
		if c.conditions[i].Kind == kind {
			c.conditions = append(c.conditions[:i], c.conditions[i+1:]...)
			return
		}
	}
}
