package battle

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pokearena/internal/telemetry"
)

// MaxRounds is the hard bound on battle length. A battle still undecided
// after this many rounds is a draw.
const MaxRounds = 100

// Phase represents the state of a simulation.
type Phase int

const (
	// PhaseRunning - the battle has not yet been decided
	PhaseRunning Phase = iota
	// PhaseWonByFirst - the first-listed combatant won
	PhaseWonByFirst
	// PhaseWonBySecond - the second-listed combatant won
	PhaseWonBySecond
	// PhaseDraw - neither side won within the round cap
	PhaseDraw
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseWonByFirst:
		return "won_by_first"
	case PhaseWonBySecond:
		return "won_by_second"
	case PhaseDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// TurnRecord is the log of one round: the 1-based round index, the action
// messages in chronological order, and both combatants' HP once the round
// settled.
type TurnRecord struct {
	Turn    int
	Actions []string
	HP      [2]int
}

// Result is the completed outcome of a battle.
type Result struct {
	ID      string // unique battle identifier
	Phase   Phase
	Winner  string // surviving combatant's name, empty on a draw
	Turns   []TurnRecord
	Summary string
}

// Simulator drives battles between two combatants. One Simulator runs one
// battle at a time; it owns both combatants exclusively for the duration
// of a Run call. Create one Simulator per concurrent battle.
type Simulator struct {
	provider Provider
	status   *StatusEngine
	damage   *DamageCalculator
	rng      Rand
}

// NewSimulator creates a simulator drawing randomness from rng and type
// data from provider.
func NewSimulator(provider Provider, rng Rand) *Simulator {
	status := NewStatusEngine(rng)
	return &Simulator{
		provider: provider,
		status:   status,
		damage:   NewDamageCalculator(provider, status, rng),
		rng:      rng,
	}
}

// RunNames fetches and prepares both combatants by species name, then
// simulates the battle. Unknown names fail fast before any round runs.
func (s *Simulator) RunNames(ctx context.Context, first, second string) (*Result, error) {
	a, err := s.prepare(ctx, first)
	if err != nil {
		return nil, err
	}
	b, err := s.prepare(ctx, second)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, a, b)
}

func (s *Simulator) prepare(ctx context.Context, name string) (*Combatant, error) {
	sp, err := s.provider.Species(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("prepare %s: %w", name, err)
	}
	return NewCombatant(sp), nil
}

// Run simulates a battle between two prepared combatants and returns the
// completed result. The round loop is the only control flow; there is no
// suspension point besides the provider lookups. Cancellation is honored
// between rounds, the only safe points to abort.
func (s *Simulator) Run(ctx context.Context, first, second *Combatant) (*Result, error) {
	tracer := telemetry.Tracer("battle")
	battleID := uuid.NewString()

	ctx, span := tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("battle.id", battleID),
		attribute.String("battle.first", first.Name),
		attribute.String("battle.second", second.Name),
		attribute.Int("battle.first_hp", first.HP),
		attribute.Int("battle.second_hp", second.HP),
	)
	span.End()

	pair := [2]*Combatant{first, second}
	phase := PhaseRunning
	var turns []TurnRecord

	for round := 1; round <= MaxRounds && phase == PhaseRunning; round++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("battle %s aborted before round %d: %w", battleID, round, err)
		}

		rec, err := s.playRound(ctx, pair, round)
		if err != nil {
			return nil, fmt.Errorf("battle %s: %w", battleID, err)
		}
		turns = append(turns, rec)

		switch {
		case !pair[0].IsAlive() && !pair[1].IsAlive():
			phase = PhaseDraw
		case !pair[1].IsAlive():
			phase = PhaseWonByFirst
		case !pair[0].IsAlive():
			phase = PhaseWonBySecond
		}
	}

	if phase == PhaseRunning {
		phase = PhaseDraw // round cap reached
	}

	result := &Result{
		ID:    battleID,
		Phase: phase,
		Turns: turns,
	}
	switch phase {
	case PhaseWonByFirst:
		result.Winner = first.Name
	case PhaseWonBySecond:
		result.Winner = second.Name
	}
	if result.Winner != "" {
		result.Summary = fmt.Sprintf("%s won in %d turns", result.Winner, len(turns))
	} else {
		result.Summary = "Battle ended in a draw"
	}

	_, endSpan := tracer.Start(ctx, "battle.end")
	endSpan.SetAttributes(
		attribute.String("battle.id", battleID),
		attribute.String("battle.outcome", phase.String()),
		attribute.Int("battle.rounds", len(turns)),
	)
	endSpan.End()

	return result, nil
}

// playRound executes one full round: ordering, both actors' actions, and
// end-of-round status damage. A knockout by the first actor stops the
// round early, before residual damage is applied; one by the second actor
// still lets residual damage land on the survivor.
func (s *Simulator) playRound(ctx context.Context, pair [2]*Combatant, round int) (TurnRecord, error) {
	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.round")
	span.SetAttributes(attribute.Int("battle.turn", round))
	defer span.End()

	rec := TurnRecord{Turn: round}
	skipResidual := false

	for slot, idx := range TurnOrder(pair) {
		actor, target := pair[idx], pair[1-idx]

		canAct, msg := s.status.CanAct(actor)
		if msg != "" {
			rec.Actions = append(rec.Actions, msg)
		}
		if !canAct {
			continue
		}

		usable := actor.UsableMoves()
		if len(usable) == 0 {
			rec.Actions = append(rec.Actions,
				fmt.Sprintf("%s has no attacking moves and struggles helplessly!", actor.Name))
			continue
		}

		move := usable[s.rng.IntN(0, len(usable)-1)]
		outcome, err := s.damage.Resolve(ctx, actor, target, move)
		if err != nil {
			rec.HP = [2]int{pair[0].HP, pair[1].HP}
			return rec, err
		}
		target.TakeDamage(outcome.Damage)

		action := fmt.Sprintf("%s used %s and dealt %d damage to %s",
			actor.Name, move.Name, outcome.Damage, target.Name)
		if outcome.Critical {
			action += " (Critical hit!)"
		}
		if outcome.Inflicted != "" {
			action += fmt.Sprintf(" %s is now %s!", target.Name, outcome.Inflicted)
		}
		rec.Actions = append(rec.Actions, action)

		span.SetAttributes(
			attribute.String("battle.actor", actor.Name),
			attribute.Int("battle.damage", outcome.Damage),
		)

		if !target.IsAlive() {
			skipResidual = slot == 0
			break
		}
	}

	if !skipResidual {
		for _, c := range pair {
			if !c.IsAlive() {
				continue
			}
			damage, msg := s.status.EndOfRoundDamage(c)
			if damage > 0 {
				c.TakeDamage(damage)
				rec.Actions = append(rec.Actions, msg)
			}
		}
	}

	rec.HP = [2]int{pair[0].HP, pair[1].HP}
	return rec, nil
}
