package data

import "github.com/udisondev/deeploop/internal/model"

// SynergyDef is a passive party-composition bonus. Conditions look only at
// class/race tags, so a synergy stays active even while members are down.
type SynergyDef struct {
	ID          string
	Name        string
	Description string
	Condition   func([]*model.Character) bool
	Bonuses     model.BonusBlock
}

func countRace(party []*model.Character, race string) int {
	n := 0
	for _, c := range party {
		if c.Race == race {
			n++
		}
	}
	return n
}

func hasClasses(party []*model.Character, classes ...string) bool {
	for _, want := range classes {
		found := false
		for _, c := range party {
			if c.Class == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var Synergies = []SynergyDef{
	{
		ID:          "dwarf_brotherhood",
		Name:        "Dwarf Brotherhood",
		Description: "3+ Dwarves: +15% DEF",
		Condition:   func(p []*model.Character) bool { return countRace(p, RaceDwarf) >= 3 },
		Bonuses:     model.BonusBlock{Def: 0.15},
	},
	{
		ID:          "elven_grace",
		Name:        "Elven Grace",
		Description: "3+ Elves: +15% SPD, +10% MAG",
		Condition:   func(p []*model.Character) bool { return countRace(p, RaceElf) >= 3 },
		Bonuses:     model.BonusBlock{Spd: 0.15, Mag: 0.10},
	},
	{
		ID:          "human_resolve",
		Name:        "Human Resolve",
		Description: "3+ Humans: +15% XP",
		Condition:   func(p []*model.Character) bool { return countRace(p, RaceHuman) >= 3 },
		Bonuses:     model.BonusBlock{XP: 0.15},
	},
	{
		ID:          "goblin_horde",
		Name:        "Goblin Horde",
		Description: "3+ Goblins: +30% gold",
		Condition:   func(p []*model.Character) bool { return countRace(p, RaceGoblin) >= 3 },
		Bonuses:     model.BonusBlock{Gold: 0.30},
	},
	{
		ID:          "frontline",
		Name:        "Frontline",
		Description: "Warrior + Paladin: +10% HP, +10% DEF",
		Condition:   func(p []*model.Character) bool { return hasClasses(p, ClassWarrior, ClassPaladin) },
		Bonuses:     model.BonusBlock{HP: 0.10, Def: 0.10},
	},
	{
		ID:          "dark_arts",
		Name:        "Dark Arts",
		Description: "Necromancer + Mage: +15% MAG",
		Condition:   func(p []*model.Character) bool { return hasClasses(p, ClassNecromancer, ClassMage) },
		Bonuses:     model.BonusBlock{Mag: 0.15},
	},
	{
		ID:          "blitz",
		Name:        "Blitz",
		Description: "Rogue + Monk: +15% SPD, +10% ATK",
		Condition:   func(p []*model.Character) bool { return hasClasses(p, ClassRogue, ClassMonk) },
		Bonuses:     model.BonusBlock{Spd: 0.15, Atk: 0.10},
	},
	{
		ID:          "faith_and_steel",
		Name:        "Faith & Steel",
		Description: "Paladin + Healer: +15% MAG",
		Condition:   func(p []*model.Character) bool { return hasClasses(p, ClassPaladin, ClassHealer) },
		Bonuses:     model.BonusBlock{Mag: 0.15},
	},
	{
		ID:          "balanced_party",
		Name:        "Balanced Party",
		Description: "4 unique classes: +5% all stats",
		Condition: func(p []*model.Character) bool {
			seen := make(map[string]bool, len(p))
			for _, c := range p {
				seen[c.Class] = true
			}
			return len(seen) >= 4
		},
		Bonuses: model.BonusBlock{HP: 0.05, Atk: 0.05, Def: 0.05, Spd: 0.05, Mag: 0.05},
	},
	{
		ID:          "rage_duo",
		Name:        "Rage Duo",
		Description: "Berserker + Warrior: +10% ATK, +10% HP",
		Condition:   func(p []*model.Character) bool { return hasClasses(p, ClassBerserker, ClassWarrior) },
		Bonuses:     model.BonusBlock{Atk: 0.10, HP: 0.10},
	},
}
