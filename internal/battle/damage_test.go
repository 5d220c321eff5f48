package battle

import (
	"context"
	"errors"
	"testing"
)

// newCalculator wires a calculator with a scripted random source and a
// fixed-effectiveness provider.
func newCalculator(effectiveness float64, rng Rand) *DamageCalculator {
	provider := &stubProvider{effectiveness: effectiveness}
	return NewDamageCalculator(provider, NewStatusEngine(rng), rng)
}

// Flat 100/100 stats and power 90 give a deterministic pre-modifier
// damage of 41: ((2*50/5+2)*90*100/100)/50 + 2 = 41.6, truncated.
const flatBaseDamage = 41

func TestResolveZeroPower(t *testing.T) {
	calc := newCalculator(1.0, &scriptRand{})
	attacker := newTestCombatant("a", 100, 50)
	defender := newTestCombatant("d", 100, 50)

	result, err := calc.Resolve(context.Background(), attacker, defender,
		Move{Name: "growl", Type: "normal", Power: 0, Class: DamagePhysical})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if result.Damage != 0 || result.Critical || result.Inflicted != "" {
		t.Errorf("zero-power result = %+v, want empty", result)
	}
}

func TestResolveBaseFormula(t *testing.T) {
	calc := newCalculator(1.0, &scriptRand{})
	attacker := newTestCombatant("a", 100, 50)
	defender := newTestCombatant("d", 100, 50)

	result, err := calc.Resolve(context.Background(), attacker, defender,
		physicalMove("strike", "fighting", 90))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if result.Damage != flatBaseDamage {
		t.Errorf("damage = %d, want %d", result.Damage, flatBaseDamage)
	}
	if result.Critical {
		t.Error("crit roll of 1.0 should never be critical")
	}
}

func TestResolveMinimumFloorWithImmunity(t *testing.T) {
	// Effectiveness 0.0 zeroes the whole pipeline; the floor still
	// guarantees 1 damage.
	calc := newCalculator(0.0, &scriptRand{})
	attacker := newTestCombatant("a", 100, 50)
	defender := newTestCombatant("d", 100, 50)

	result, err := calc.Resolve(context.Background(), attacker, defender,
		physicalMove("strike", "normal", 90))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if result.Damage != 1 {
		t.Errorf("damage = %d, want floor of 1", result.Damage)
	}
}

func TestResolveSameTypeBonus(t *testing.T) {
	calc := newCalculator(1.0, &scriptRand{})
	plain := newTestCombatant("plain", 100, 50)
	defender := newTestCombatant("d", 100, 50)

	move := Move{Name: "strike", Type: "fighting", Power: 90, Accuracy: 100, Class: DamagePhysical}

	base, err := calc.Resolve(context.Background(), plain, defender, move)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	matched := newTestCombatant("matched", 100, 50)
	matched.Types = []string{"fighting"}
	boosted, err := calc.Resolve(context.Background(), matched, defender, move)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	// 41.6 -> 41 without the bonus, 62.4 -> 62 with it.
	if base.Damage != 41 || boosted.Damage != 62 {
		t.Errorf("damage = %d/%d, want 41 plain and 62 with same-type bonus",
			base.Damage, boosted.Damage)
	}
}

func TestResolveCriticalHit(t *testing.T) {
	// First float is the crit roll; 0.0 < 1/16 forces a critical.
	calc := newCalculator(1.0, &scriptRand{floats: []float64{0.0, 1.0}})
	attacker := newTestCombatant("a", 100, 50)
	defender := newTestCombatant("d", 100, 50)

	result, err := calc.Resolve(context.Background(), attacker, defender,
		physicalMove("strike", "fighting", 90))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !result.Critical {
		t.Fatal("crit roll of 0.0 should be critical")
	}
	if result.Damage != 62 { // 41.6 * 1.5 = 62.4
		t.Errorf("critical damage = %d, want 62", result.Damage)
	}
}

func TestResolveSpecialUsesSpecialStats(t *testing.T) {
	calc := newCalculator(1.0, &scriptRand{})
	attacker := newTestCombatant("a", 100, 50)
	attacker.SpAttack = 200
	defender := newTestCombatant("d", 100, 50)

	result, err := calc.Resolve(context.Background(), attacker, defender,
		Move{Name: "beam", Type: "psychic", Power: 90, Class: DamageSpecial})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	// ((22*90*200)/100)/50 + 2 = 81.2
	if result.Damage != 81 {
		t.Errorf("special damage = %d, want 81", result.Damage)
	}
}

func TestResolveBurnHalvesPhysical(t *testing.T) {
	calc := newCalculator(1.0, &scriptRand{})
	attacker := newTestCombatant("a", 100, 50)
	attacker.addCondition(Condition{Kind: Burn})
	defender := newTestCombatant("d", 100, 50)

	result, err := calc.Resolve(context.Background(), attacker, defender,
		physicalMove("strike", "fighting", 90))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if result.Damage != flatBaseDamage/2 {
		t.Errorf("burned physical damage = %d, want %d", result.Damage, flatBaseDamage/2)
	}
}

func TestResolveStatusInfliction(t *testing.T) {
	// Floats: crit roll, spread, status roll. Nuzzle paralyzes at 100%.
	calc := newCalculator(1.0, &scriptRand{floats: []float64{1.0, 1.0, 0.5}})
	attacker := newTestCombatant("pikachu", 100, 90)
	defender := newTestCombatant("onix", 100, 70)

	result, err := calc.Resolve(context.Background(), attacker, defender,
		physicalMove("nuzzle", "electric", 20))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if result.Inflicted != Paralysis {
		t.Errorf("inflicted = %q, want paralysis", result.Inflicted)
	}
	if !defender.HasCondition(Paralysis) {
		t.Error("defender should be paralyzed")
	}
}

func TestResolveStatusRollFails(t *testing.T) {
	// Thunderbolt paralyzes at 10%; a roll of 0.5 misses it.
	calc := newCalculator(1.0, &scriptRand{floats: []float64{1.0, 1.0, 0.5}})
	attacker := newTestCombatant("pikachu", 100, 90)
	defender := newTestCombatant("onix", 100, 70)

	result, err := calc.Resolve(context.Background(), attacker, defender,
		Move{Name: "thunderbolt", Type: "electric", Power: 90, Class: DamageSpecial})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if result.Inflicted != "" {
		t.Errorf("inflicted = %q, want none", result.Inflicted)
	}
	if len(defender.Conditions()) != 0 {
		t.Error("defender should have no conditions")
	}
}

func TestResolveProviderError(t *testing.T) {
	lookupErr := errors.New("provider unavailable")
	provider := &stubProvider{err: lookupErr}
	rng := &scriptRand{}
	calc := NewDamageCalculator(provider, NewStatusEngine(rng), rng)

	_, err := calc.Resolve(context.Background(),
		newTestCombatant("a", 100, 50), newTestCombatant("d", 100, 50),
		physicalMove("strike", "normal", 90))
	if !errors.Is(err, lookupErr) {
		t.Errorf("err = %v, want wrapped provider error", err)
	}
}

func TestResolveIgnoresAccuracy(t *testing.T) {
	// Accuracy is carried but does not gate hits: the engine is an
	// always-hit model, a deliberate simplification.
	calc := newCalculator(1.0, &scriptRand{})
	attacker := newTestCombatant("a", 100, 50)
	defender := newTestCombatant("d", 100, 50)

	move := Move{Name: "wild-swing", Type: "fighting", Power: 90, Accuracy: 1, Class: DamagePhysical}
	result, err := calc.Resolve(context.Background(), attacker, defender, move)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if result.Damage != flatBaseDamage {
		t.Errorf("damage = %d, want %d regardless of accuracy", result.Damage, flatBaseDamage)
	}
}
