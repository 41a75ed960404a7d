package data

import "github.com/udisondev/deeploop/internal/model"

// Race ids.
const (
	RaceHuman  = "human"
	RaceElf    = "elf"
	RaceDwarf  = "dwarf"
	RaceGoblin = "goblin"
)

// Perk kinds. Each race carries exactly one passive perk consumed at a
// specific point: XP award, skill-xp accrual, incoming damage, gold award.
type Perk string

const (
	PerkXPBonus         Perk = "xp_bonus"
	PerkSkillXPBonus    Perk = "skill_xp_bonus"
	PerkDamageReduction Perk = "damage_reduction"
	PerkGoldBonus       Perk = "gold_bonus"
)

// RaceDef is the static definition of a playable race.
type RaceDef struct {
	ID          string
	Name        string
	Description string
	StatMods    model.StatBlock
	Perk        Perk
	PerkValue   float64
}

var raceTable = map[string]*RaceDef{
	RaceHuman: {
		ID:          RaceHuman,
		Name:        "Human",
		Description: "Versatile and stubborn.",
		StatMods:    model.StatBlock{Atk: 1, Def: 1, Spd: 1, Mag: 1},
		Perk:        PerkXPBonus,
		PerkValue:   0.1,
	},
	RaceElf: {
		ID:          RaceElf,
		Name:        "Elf",
		Description: "Graceful, magical, slightly smug.",
		StatMods:    model.StatBlock{HP: -5, MP: 5, Atk: -1, Spd: 2, Mag: 3},
		Perk:        PerkSkillXPBonus,
		PerkValue:   0.15,
	},
	RaceDwarf: {
		ID:          RaceDwarf,
		Name:        "Dwarf",
		Description: "Short, stout, unbreakable.",
		StatMods:    model.StatBlock{HP: 10, MP: -3, Atk: 2, Def: 3, Spd: -2, Mag: -1},
		Perk:        PerkDamageReduction,
		PerkValue:   0.1,
	},
	RaceGoblin: {
		ID:          RaceGoblin,
		Name:        "Goblin",
		Description: "Small, chaotic, surprisingly effective.",
		StatMods:    model.StatBlock{HP: -5, Def: -2, Spd: 4},
		Perk:        PerkGoldBonus,
		PerkValue:   0.2,
	},
}

var raceOrder = []string{RaceHuman, RaceElf, RaceDwarf, RaceGoblin}

// Race returns the race definition, or nil for an unknown id.
func Race(id string) *RaceDef {
	return raceTable[id]
}

// RaceIDs returns all race ids in a stable order.
func RaceIDs() []string {
	return append([]string(nil), raceOrder...)
}
