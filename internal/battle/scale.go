package battle

// BattleLevel is the fixed reference level every combatant is scaled to.
const BattleLevel = 50

// Default base stats used when a species record is missing a value.
const (
	defaultBaseHP   = 35
	defaultBaseStat = 50
)

// BaseStats holds a species' unscaled attributes.
type BaseStats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"specialAttack"`
	SpDefense int `json:"specialDefense"`
	Speed     int `json:"speed"`
}

// normalized returns the stats with non-positive values replaced by
// defaults, so malformed source data never produces a zero-stat combatant.
func (b BaseStats) normalized() BaseStats {
	if b.HP <= 0 {
		b.HP = defaultBaseHP
	}
	for _, s := range []*int{&b.Attack, &b.Defense, &b.SpAttack, &b.SpDefense, &b.Speed} {
		if *s <= 0 {
			*s = defaultBaseStat
		}
	}
	return b
}

// ScaleHP converts a base HP value to its battle value at the given level.
func ScaleHP(base, level int) int {
	return base*2*level/100 + level + 10
}

// ScaleStat converts any non-HP base stat to its battle value at the given
// level.
func ScaleStat(base, level int) int {
	return base*2*level/100 + 5
}

// MaxHPAt returns the scaled HP for these base stats at the given level,
// applying the same defaulting NewCombatant uses for missing values.
func (b BaseStats) MaxHPAt(level int) int {
	return ScaleHP(b.normalized().HP, level)
}

// NewCombatant builds a battle-ready combatant from species data: stats
// scaled to BattleLevel, full HP, no active conditions, and at most four
// known moves.
func NewCombatant(sp *Species) *Combatant {
	base := sp.Base.normalized()
	hp := ScaleHP(base.HP, BattleLevel)

	moves := sp.Moves
	if len(moves) > 4 {
		moves = moves[:4]
	}

	c := &Combatant{
		Name:      sp.Name,
		HP:        hp,
		MaxHP:     hp,
		Attack:    ScaleStat(base.Attack, BattleLevel),
		Defense:   ScaleStat(base.Defense, BattleLevel),
		SpAttack:  ScaleStat(base.SpAttack, BattleLevel),
		SpDefense: ScaleStat(base.SpDefense, BattleLevel),
		Speed:     ScaleStat(base.Speed, BattleLevel),
		Types:     make([]string, len(sp.Types)),
		Moves:     make([]Move, len(moves)),
	}
	copy(c.Types, sp.Types)
	copy(c.Moves, moves)
	return c
}
