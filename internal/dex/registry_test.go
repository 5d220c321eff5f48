package dex

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/pokearena/internal/battle"
)

func TestLoadEmbeddedData(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if d.Count() != 14 {
		t.Errorf("Count = %d, want 14", d.Count())
	}

	pika := d.GetByID("pikachu")
	if pika == nil {
		t.Fatal("pikachu missing from dex")
	}
	if pika.Stats.HP != 35 || pika.Stats.Speed != 90 {
		t.Errorf("pikachu stats = %+v", pika.Stats)
	}
	if len(pika.Types) != 1 || pika.Types[0] != "electric" {
		t.Errorf("pikachu types = %v", pika.Types)
	}
}

func TestGetByIDCaseInsensitive(t *testing.T) {
	d := MustLoad()
	if d.GetByID("Charizard") == nil || d.GetByID("CHARIZARD") == nil {
		t.Error("lookup should ignore case")
	}
	if d.GetByID("missingno") != nil {
		t.Error("unknown ID should return nil")
	}
}

func TestSpeciesUnknownName(t *testing.T) {
	d := MustLoad()
	_, err := d.Species(context.Background(), "missingno")
	if !errors.Is(err, battle.ErrUnknownSpecies) {
		t.Errorf("err = %v, want battle.ErrUnknownSpecies", err)
	}
}

func TestSpeciesFiltersNonDamagingMoves(t *testing.T) {
	d := MustLoad()

	// bulbasaur carries sleep-powder with zero power; the battle view
	// keeps only damaging moves.
	sp, err := d.Species(context.Background(), "bulbasaur")
	if err != nil {
		t.Fatalf("Species returned error: %v", err)
	}
	if len(sp.Moves) != 4 {
		t.Fatalf("bulbasaur has %d battle moves, want 4", len(sp.Moves))
	}
	for _, m := range sp.Moves {
		if m.Power <= 0 {
			t.Errorf("battle view kept non-damaging move %q", m.Name)
		}
		if m.Name == "sleep-powder" {
			t.Error("sleep-powder should be filtered out")
		}
	}
}

func TestSpeciesCapsAtFourMoves(t *testing.T) {
	d := MustLoad()

	// venusaur lists five moves, one of them non-damaging; four survive.
	sp, err := d.Species(context.Background(), "venusaur")
	if err != nil {
		t.Fatalf("Species returned error: %v", err)
	}
	if len(sp.Moves) != 4 {
		t.Errorf("venusaur has %d battle moves, want 4", len(sp.Moves))
	}

	// gengar lists four with one non-damaging; three survive.
	sp, err = d.Species(context.Background(), "gengar")
	if err != nil {
		t.Fatalf("Species returned error: %v", err)
	}
	if len(sp.Moves) != 3 {
		t.Errorf("gengar has %d battle moves, want 3", len(sp.Moves))
	}
}

func TestTypeEffectiveness(t *testing.T) {
	d := MustLoad()
	ctx := context.Background()

	cases := []struct {
		attack    string
		defenders []string
		want      float64
	}{
		{"electric", []string{"water", "flying"}, 4.0},
		{"electric", []string{"ground"}, 0.0},
		{"fire", []string{"water"}, 0.5},
		{"fire", []string{"grass", "poison"}, 2.0},
		{"ghost", []string{"normal"}, 0.0},
		{"normal", []string{"electric"}, 1.0},
		{"dragon", []string{"water"}, 1.0}, // type absent from the chart
	}
	for _, tc := range cases {
		got, err := d.TypeEffectiveness(ctx, tc.attack, tc.defenders)
		if err != nil {
			t.Fatalf("TypeEffectiveness(%s, %v) returned error: %v", tc.attack, tc.defenders, err)
		}
		if got != tc.want {
			t.Errorf("TypeEffectiveness(%s, %v) = %v, want %v", tc.attack, tc.defenders, got, tc.want)
		}
	}
}

func TestDexBackedSimulation(t *testing.T) {
	d := MustLoad()
	sim := battle.NewSimulator(d, battle.NewSeededRand(3))

	result, err := sim.RunNames(context.Background(), "charizard", "blastoise")
	if err != nil {
		t.Fatalf("RunNames returned error: %v", err)
	}
	if result.Phase == battle.PhaseRunning {
		t.Error("battle did not conclude")
	}
	if len(result.Turns) == 0 {
		t.Error("battle produced no turn records")
	}
}
