package dex

// Matchup is one attacking-type/defending-type pair with its damage
// factor. Pairs absent from the chart are neutral (1.0).
type Matchup struct {
	Attack string  `json:"attack"`
	Defend string  `json:"defend"`
	Factor float64 `json:"factor"` // 0.0, 0.5, or 2.0
}

// TypeChartFile represents the structure of typechart.json.
type TypeChartFile struct {
	Matchups []Matchup `json:"matchups"`
}

// LoadTypeChart loads the non-neutral type matchups from the embedded
// typechart.json file.
func LoadTypeChart() ([]Matchup, error) {
	file, err := load[TypeChartFile]("typechart.json")
	if err != nil {
		return nil, err
	}
	return file.Matchups, nil
}
