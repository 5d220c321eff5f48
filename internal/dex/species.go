package dex

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pokearena/internal/battle"
)

// MoveDef defines a learnable move as stored in species.json.
type MoveDef struct {
	Name        string `json:"name"`        // Hyphenated identifier (e.g., "thunderbolt")
	Type        string `json:"type"`        // Elemental type (e.g., "electric")
	Power       int    `json:"power"`       // 0 for non-damaging moves
	Accuracy    int    `json:"accuracy"`    // Percent; informational under the always-hit model
	DamageClass string `json:"damageClass"` // "physical" or "special"
}

// SpeciesDef defines a creature loaded from species.json.
type SpeciesDef struct {
	ID    string           `json:"id"`    // Unique identifier (e.g., "pikachu")
	Name  string           `json:"name"`  // Display name (e.g., "Pikachu")
	Color string           `json:"color"` // Hex color code for the viewer (e.g., "#F8D030")
	Stats battle.BaseStats `json:"stats"` // Unscaled base attributes
	Types []string         `json:"types"` // 1-2 elemental types
	Moves []MoveDef        `json:"moves"` // Learnable moves; battle keeps at most 4
}

// TCellColor returns the species color for terminal rendering.
func (s *SpeciesDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// SpeciesFile represents the structure of species.json.
type SpeciesFile struct {
	Species []SpeciesDef `json:"species"`
}

// LoadSpecies loads species definitions from the embedded species.json file.
func LoadSpecies() ([]SpeciesDef, error) {
	file, err := load[SpeciesFile]("species.json")
	if err != nil {
		return nil, err
	}
	return file.Species, nil
}
