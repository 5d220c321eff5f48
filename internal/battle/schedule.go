package battle

// EffectiveSpeed returns the speed used for turn ordering: the scaled
// speed stat, halved while the combatant is paralyzed.
func EffectiveSpeed(c *Combatant) int {
	if c.HasCondition(Paralysis) {
		return c.Speed / 2
	}
	return c.Speed
}

// TurnOrder returns the acting order for one round as indices into the
// pair. Ties go to index 0, the first-listed combatant, so identical
// matchups replay identically. Recomputed every round since paralysis can
// change effective speed mid-battle.
func TurnOrder(pair [2]*Combatant) [2]int {
	if EffectiveSpeed(pair[1]) > EffectiveSpeed(pair[0]) {
		return [2]int{1, 0}
	}
	return [2]int{0, 1}
}
