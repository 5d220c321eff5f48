package battle

import (
	"fmt"
	"strings"
)

// Status condition tuning constants.
const (
	paralysisSkipChance = 0.25
	thawChance          = 0.20
	confusionHitChance  = 0.50

	sleepTurnsMin     = 1
	sleepTurnsMax     = 3
	confusionTurnsMin = 2
	confusionTurnsMax = 5
)

// StatusEngine owns the status condition state machine: applying
// conditions under the mutual-exclusion rules, gating whether a combatant
// may act, ticking durations, and computing end-of-round damage.
type StatusEngine struct {
	rng Rand
}

// NewStatusEngine creates a status engine drawing from the given source.
func NewStatusEngine(rng Rand) *StatusEngine {
	return &StatusEngine{rng: rng}
}

// Apply adds a condition to the combatant and returns a message describing
// what happened. Applying a condition the combatant already has is a
// no-op. A new major condition displaces any existing major condition;
// Confusion coexists with them.
func (e *StatusEngine) Apply(c *Combatant, kind ConditionKind) string {
	if c.HasCondition(kind) {
		return fmt.Sprintf("%s is already %s!", c.Name, kind)
	}

	if kind.Major() {
		for _, existing := range c.Conditions() {
			if existing.Kind.Major() {
				c.removeCondition(existing.Kind)
			}
		}
	}

	cond := Condition{Kind: kind}
	switch kind {
	case Sleep:
		cond.TurnsLeft = e.rng.IntN(sleepTurnsMin, sleepTurnsMax)
	case Confusion:
		cond.TurnsLeft = e.rng.IntN(confusionTurnsMin, confusionTurnsMax)
	}
	c.addCondition(cond)

	return fmt.Sprintf("%s is now %s!", c.Name, kind)
}

// CanAct decides whether the combatant may act this round, ticking any
// duration-based conditions in the process. The returned message, when
// non-empty, belongs in the turn log whether or not the action proceeds.
//
// Precedence: paralysis, then sleep, then freeze; confusion is evaluated
// independently since it can coexist with the majors.
func (e *StatusEngine) CanAct(c *Combatant) (bool, string) {
	if c.HasCondition(Paralysis) && e.rng.Float64() < paralysisSkipChance {
		return false, fmt.Sprintf("%s is paralyzed and can't move!", c.Name)
	}

	if sleep := c.condition(Sleep); sleep != nil {
		if sleep.TurnsLeft > 0 {
			sleep.TurnsLeft--
			return false, fmt.Sprintf("%s is fast asleep!", c.Name)
		}
		c.removeCondition(Sleep)
		return true, fmt.Sprintf("%s woke up!", c.Name)
	}

	if c.HasCondition(Freeze) {
		if e.rng.Float64() < thawChance {
			c.removeCondition(Freeze)
			return true, fmt.Sprintf("%s thawed out!", c.Name)
		}
		return false, fmt.Sprintf("%s is frozen solid!", c.Name)
	}

	var messages []string
	if conf := c.condition(Confusion); conf != nil {
		if conf.TurnsLeft > 0 {
			conf.TurnsLeft--
			if e.rng.Float64() < confusionHitChance {
				return false, fmt.Sprintf("%s is confused and hurt itself!", c.Name)
			}
		} else {
			c.removeCondition(Confusion)
			messages = append(messages, fmt.Sprintf("%s snapped out of confusion!", c.Name))
		}
	}

	return true, strings.Join(messages, "; ")
}

// EndOfRoundDamage computes the total residual damage the combatant takes
// at the end of a round, with a log message per contributing condition.
// The caller applies the damage and clamps HP at 0.
func (e *StatusEngine) EndOfRoundDamage(c *Combatant) (int, string) {
	damage := 0
	var messages []string

	if c.HasCondition(Burn) {
		burn := max(1, c.MaxHP/16)
		damage += burn
		messages = append(messages, fmt.Sprintf("%s is hurt by its burn! (-%d HP)", c.Name, burn))
	}
	if c.HasCondition(Poison) {
		poison := max(1, c.MaxHP/8)
		damage += poison
		messages = append(messages, fmt.Sprintf("%s is hurt by poison! (-%d HP)", c.Name, poison))
	}

	return damage, strings.Join(messages, "; ")
}

// DamageModifier adjusts outgoing damage for the attacker's conditions: a
// burned attacker deals half physical damage.
func (e *StatusEngine) DamageModifier(attacker *Combatant, damage int, physical bool) int {
	if physical && attacker.HasCondition(Burn) {
		return damage / 2
	}
	return damage
}
