package battle

import (
	"context"
	"fmt"
	"strings"
)

const critChance = 1.0 / 16.0

// statusChance pairs the condition a move can inflict with its trigger
// probability.
type statusChance struct {
	kind   ConditionKind
	chance float64
}

// moveStatusTable maps move names to the condition they can inflict.
// Loaded once as a package constant; no runtime mutation.
var moveStatusTable = map[string]statusChance{
	// Fire moves
	"flamethrower": {Burn, 0.1},
	"fire-blast":   {Burn, 0.1},
	"ember":        {Burn, 0.1},
	"fire-punch":   {Burn, 0.1},

	// Electric moves
	"thunderbolt":   {Paralysis, 0.1},
	"thunder-shock": {Paralysis, 0.1},
	"thunder":       {Paralysis, 0.3},
	"nuzzle":        {Paralysis, 1.0},

	// Poison moves
	"poison-sting": {Poison, 0.3},
	"toxic":        {Poison, 0.9},
	"poison-jab":   {Poison, 0.3},
	"sludge-bomb":  {Poison, 0.3},

	// Sleep moves
	"sleep-powder": {Sleep, 0.75},
	"spore":        {Sleep, 1.0},
	"hypnosis":     {Sleep, 0.6},

	// Ice moves
	"ice-beam": {Freeze, 0.1},
	"blizzard": {Freeze, 0.1},

	// Confusion moves
	"confusion": {Confusion, 0.1},
	"psybeam":   {Confusion, 0.1},
}

// AttackResult is the outcome of resolving one attack.
type AttackResult struct {
	Damage    int
	Critical  bool
	Inflicted ConditionKind // zero value when no condition was inflicted
}

// DamageCalculator computes the damage of a single attack, including the
// critical roll, same-type bonus, type effectiveness, and status-driven
// modifiers.
type DamageCalculator struct {
	provider Provider
	status   *StatusEngine
	rng      Rand
}

// NewDamageCalculator creates a calculator backed by the given provider
// for type-effectiveness lookups.
func NewDamageCalculator(provider Provider, status *StatusEngine, rng Rand) *DamageCalculator {
	return &DamageCalculator{provider: provider, status: status, rng: rng}
}

// Resolve computes the outcome of attacker using move against defender.
// Damage is at least 1 for any move with positive power. A failed
// effectiveness lookup aborts the attack; the engine never guesses a
// multiplier.
func (d *DamageCalculator) Resolve(ctx context.Context, attacker, defender *Combatant, move Move) (AttackResult, error) {
	if move.Power <= 0 {
		return AttackResult{}, nil
	}

	effectiveness, err := d.provider.TypeEffectiveness(ctx, move.Type, defender.Types)
	if err != nil {
		return AttackResult{}, fmt.Errorf("type effectiveness lookup for %s: %w", move.Name, err)
	}

	physical := move.Class == DamagePhysical
	var attackStat, defenseStat int
	if physical {
		attackStat = attacker.Attack
		defenseStat = defender.Defense
	} else {
		attackStat = attacker.SpAttack
		defenseStat = defender.SpDefense
	}

	level := float64(BattleLevel)
	base := ((2*level/5+2)*float64(move.Power)*float64(attackStat)/float64(defenseStat))/50 + 2

	base *= effectiveness

	critical := d.rng.Float64() < critChance
	if critical {
		base *= 1.5
	}

	// Random spread in [0.85, 1.0]
	damage := base * (0.85 + 0.15*d.rng.Float64())

	if attacker.HasType(move.Type) {
		damage *= 1.5 // STAB
	}

	final := d.status.DamageModifier(attacker, int(damage), physical)
	if final < 1 {
		final = 1
	}

	result := AttackResult{Damage: final, Critical: critical}

	// Status infliction is an independent roll from the damage pipeline.
	// A condition the defender already has is not re-announced.
	if sc, ok := moveStatusTable[strings.ToLower(move.Name)]; ok {
		if d.rng.Float64() < sc.chance && !defender.HasCondition(sc.kind) {
			d.status.Apply(defender, sc.kind)
			result.Inflicted = sc.kind
		}
	}

	return result, nil
}
