package dex

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/pokearena/internal/battle"
)

// Dex holds the loaded species and type-chart data. It is immutable after
// construction and safe for concurrent queries, so any number of
// simulations may share one Dex.
type Dex struct {
	species map[string]*SpeciesDef
	ordered []SpeciesDef
	chart   map[string]map[string]float64
}

// New creates a Dex from loaded definitions.
func New(species []SpeciesDef, matchups []Matchup) *Dex {
	d := &Dex{
		species: make(map[string]*SpeciesDef, len(species)),
		ordered: species,
		chart:   make(map[string]map[string]float64),
	}
	for i := range species {
		d.species[strings.ToLower(species[i].ID)] = &species[i]
	}
	for _, m := range matchups {
		row := d.chart[m.Attack]
		if row == nil {
			row = make(map[string]float64)
			d.chart[m.Attack] = row
		}
		row[m.Defend] = m.Factor
	}
	return d
}

// Load builds a Dex from the embedded species.json and typechart.json.
func Load() (*Dex, error) {
	species, err := LoadSpecies()
	if err != nil {
		return nil, err
	}
	if len(species) == 0 {
		return nil, errors.New("no species loaded from species.json")
	}
	matchups, err := LoadTypeChart()
	if err != nil {
		return nil, err
	}
	return New(species, matchups), nil
}

// MustLoad builds a Dex, panicking on error.
func MustLoad() *Dex {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

// GetByID returns the species definition with the given ID, or nil if not
// found. Lookup is case-insensitive.
func (d *Dex) GetByID(id string) *SpeciesDef {
	return d.species[strings.ToLower(id)]
}

// All returns all species definitions in file order.
func (d *Dex) All() []SpeciesDef {
	return d.ordered
}

// Count returns the number of species in the dex.
func (d *Dex) Count() int {
	return len(d.ordered)
}

// Species implements battle.Provider. It returns the battle-facing view
// of a species: base stats, types, and up to four usable moves.
func (d *Dex) Species(ctx context.Context, name string) (*battle.Species, error) {
	def := d.GetByID(name)
	if def == nil {
		return nil, fmt.Errorf("%q: %w", name, battle.ErrUnknownSpecies)
	}

	sp := &battle.Species{
		Name:  def.Name,
		Base:  def.Stats,
		Types: append([]string(nil), def.Types...),
	}
	for _, m := range def.Moves {
		if m.Power <= 0 {
			continue
		}
		sp.Moves = append(sp.Moves, battle.Move{
			Name:     m.Name,
			Type:     m.Type,
			Power:    m.Power,
			Accuracy: m.Accuracy,
			Class:    battle.DamageClass(m.DamageClass),
		})
		if len(sp.Moves) == 4 {
			break
		}
	}
	return sp, nil
}

// TypeEffectiveness implements battle.Provider. It returns the product of
// per-pair factors for the attacking type against every defending type;
// pairs absent from the chart are neutral.
func (d *Dex) TypeEffectiveness(ctx context.Context, attackType string, defenderTypes []string) (float64, error) {
	total := 1.0
	row := d.chart[attackType]
	for _, def := range defenderTypes {
		if factor, ok := row[def]; ok {
			total *= factor
		}
	}
	return total, nil
}

// Ensure Dex implements battle.Provider
var _ battle.Provider = (*Dex)(nil)
