package model

// Enemy is an ephemeral combatant generated per room from a scaled monster
// or boss template and discarded when the room is exited. Enemies have no
// equipment or buff layering: abilities mutate their stat fields directly
// (slow permanently cuts Spd, enrage permanently raises Atk).
type Enemy struct {
	Name        string `json:"name"`
	HP          int    `json:"hp"`
	MaxHP       int    `json:"maxHp"`
	Atk         int    `json:"atk"`
	Def         int    `json:"def"`
	Spd         int    `json:"spd"`
	XP          int    `json:"xp"`
	IsBoss      bool   `json:"isBoss"`
	Special     string `json:"special,omitempty"`
	Poison      int    `json:"poison,omitempty"`
	PoisonTurns int    `json:"poisonTurns,omitempty"`
	Stunned     bool   `json:"stunned,omitempty"`
	Enraged     bool   `json:"enraged,omitempty"`
}

// IsAlive reports whether the enemy can still act or be targeted.
func (e *Enemy) IsAlive() bool {
	return e.HP > 0
}

// ApplyDamage reduces HP, clamping at 0. Returns true if the enemy died.
func (e *Enemy) ApplyDamage(dmg int) bool {
	if dmg < 0 {
		dmg = 0
	}
	e.HP -= dmg
	if e.HP <= 0 {
		e.HP = 0
		return true
	}
	return false
}

// ApplyPoison sets the poison DOT, overwriting any existing poison rather
// than stacking with it.
func (e *Enemy) ApplyPoison(damagePerTurn, turns int) {
	e.Poison = damagePerTurn
	e.PoisonTurns = turns
}

// IsPoisoned reports whether a poison DOT is active.
func (e *Enemy) IsPoisoned() bool {
	return e.Poison > 0
}

// AliveEnemies filters the slice down to enemies with HP > 0.
func AliveEnemies(enemies []*Enemy) []*Enemy {
	out := make([]*Enemy, 0, len(enemies))
	for _, e := range enemies {
		if e.IsAlive() {
			out = append(out, e)
		}
	}
	return out
}

// ActiveMembers filters the party down to members who can act.
func ActiveMembers(party []*Character) []*Character {
	out := make([]*Character, 0, len(party))
	for _, c := range party {
		if c.IsActive() {
			out = append(out, c)
		}
	}
	return out
}
