package battle

import (
	"context"
	"fmt"
)

// scriptRand is a test implementation of Rand that replays scripted
// values. Exhausted scripts fall back to 1.0 for floats (no critical
// hits, no status triggers, full damage spread) and lo for ints (first
// move, minimum duration), removing all probabilistic branching.
type scriptRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptRand) Float64() float64 {
	if s.fi < len(s.floats) {
		v := s.floats[s.fi]
		s.fi++
		return v
	}
	return 1.0
}

func (s *scriptRand) IntN(lo, hi int) int {
	if s.ii < len(s.ints) {
		v := s.ints[s.ii]
		s.ii++
		return v
	}
	return lo
}

// stubProvider is a test implementation of Provider with a fixed
// effectiveness multiplier and an in-memory species table.
type stubProvider struct {
	effectiveness float64
	species       map[string]*Species
	err           error
}

func (p *stubProvider) TypeEffectiveness(ctx context.Context, attackType string, defenderTypes []string) (float64, error) {
	if p.err != nil {
		return 0, p.err
	}
	return p.effectiveness, nil
}

func (p *stubProvider) Species(ctx context.Context, name string) (*Species, error) {
	sp, ok := p.species[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSpecies)
	}
	return sp, nil
}

func neutralProvider() *stubProvider {
	return &stubProvider{effectiveness: 1.0}
}

// newTestCombatant builds a combatant with flat stats and the given moves,
// bypassing stat scaling.
func newTestCombatant(name string, hp, speed int, moves ...Move) *Combatant {
	return &Combatant{
		Name:      name,
		HP:        hp,
		MaxHP:     hp,
		Attack:    100,
		Defense:   100,
		SpAttack:  100,
		SpDefense: 100,
		Speed:     speed,
		Types:     []string{"normal"},
		Moves:     moves,
	}
}

func physicalMove(name, typ string, power int) Move {
	return Move{Name: name, Type: typ, Power: power, Accuracy: 100, Class: DamagePhysical}
}
