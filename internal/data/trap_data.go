package data

import "github.com/udisondev/deeploop/internal/model"

// TrapEffect is the kind tag of a trap room. Handled exhaustively.
type TrapEffect string

const (
	TrapDamageAll   TrapEffect = "damage_all"
	TrapDamageOne   TrapEffect = "damage_one"
	TrapPoisonAll   TrapEffect = "poison_all"
	TrapDebuffStats TrapEffect = "debuff_stats"
	TrapDrainMP     TrapEffect = "drain_mp"
)

// TrapDef describes one trap room. Value is a fraction of max HP (damage,
// poison), of max MP (drain) or of the debuffed stat. Traps never kill:
// room damage floors HP at 1.
type TrapDef struct {
	ID       string
	Text     string
	Effect   TrapEffect
	Value    float64
	Stat     model.Stat
	Duration int
}

// TrapTypes is the pool trap rooms draw from, uniformly.
var TrapTypes = []TrapDef{
	{
		ID:     "spike_pit",
		Text:   "The floor gives way to a pit of rusty spikes!",
		Effect: TrapDamageAll,
		Value:  0.12,
	},
	{
		ID:     "arrow_trap",
		Text:   "A tripwire snaps. An arrow finds its mark!",
		Effect: TrapDamageOne,
		Value:  0.25,
	},
	{
		ID:     "gas_cloud",
		Text:   "Green gas hisses from cracks in the walls!",
		Effect: TrapPoisonAll,
		Value:  0.1,
	},
	{
		ID:       "curse_rune",
		Text:     "A glowing rune flares as the party passes. A curse settles in.",
		Effect:   TrapDebuffStats,
		Value:    0.2,
		Stat:     model.StatAtk,
		Duration: 10,
	},
	{
		ID:     "mana_siphon",
		Text:   "Crystal shards in the ceiling pulse, draining magical energy!",
		Effect: TrapDrainMP,
		Value:  0.3,
	},
}

// Trap returns the trap definition, or nil for an unknown id.
func Trap(id string) *TrapDef {
	for i := range TrapTypes {
		if TrapTypes[i].ID == id {
			return &TrapTypes[i]
		}
	}
	return nil
}
