package data

import "github.com/udisondev/deeploop/internal/model"

// MutationDef is a challenge modifier the player can arm for a run. Party
// transforms apply once on activation; enemy transforms apply to every
// freshly revealed combat room. Reaching GoalFloor completes the challenge
// and unlocks AchievementID.
type MutationDef struct {
	ID             string
	Name           string
	Description    string
	ApplyToParty   func([]*model.Character)
	ApplyToEnemies func([]*model.Enemy)
	GoldMultiplier float64
	DisableHealing bool
	GoalFloor      int
	AchievementID  string
}

var Mutations = []MutationDef{
	{
		ID:          "glass_cannon",
		Name:        "Glass Cannon",
		Description: "Party has -50% HP but +50% ATK.",
		ApplyToParty: func(party []*model.Character) {
			for _, c := range party {
				c.MaxHP = c.MaxHP / 2
				c.HP = c.MaxHP
				c.Atk = c.Atk * 3 / 2
			}
		},
		GoalFloor:     15,
		AchievementID: "challenge_glass_cannon",
	},
	{
		ID:          "cursed",
		Name:        "Cursed Dungeon",
		Description: "All enemies have +30% stats.",
		ApplyToEnemies: func(enemies []*model.Enemy) {
			for _, e := range enemies {
				e.HP = int(float64(e.HP) * 1.3)
				e.MaxHP = int(float64(e.MaxHP) * 1.3)
				e.Atk = int(float64(e.Atk) * 1.3)
				e.Def = int(float64(e.Def) * 1.3)
				e.Spd = int(float64(e.Spd) * 1.3)
			}
		},
		GoalFloor:     15,
		AchievementID: "challenge_cursed",
	},
	{
		ID:          "speed_run",
		Name:        "Speed Demons",
		Description: "Enemies have +50% SPD.",
		ApplyToEnemies: func(enemies []*model.Enemy) {
			for _, e := range enemies {
				e.Spd = e.Spd * 3 / 2
			}
		},
		GoalFloor:     15,
		AchievementID: "challenge_speed_run",
	},
	{
		ID:          "treasure_hunter",
		Name:        "Treasure Hunter",
		Description: "+60% gold found, but party has -25% ATK.",
		ApplyToParty: func(party []*model.Character) {
			for _, c := range party {
				c.Atk = int(float64(c.Atk) * 0.75)
			}
		},
		GoldMultiplier: 1.6,
		GoalFloor:      15,
		AchievementID:  "challenge_treasure_hunter",
	},
	{
		ID:          "fragile_foes",
		Name:        "Fragile Foes",
		Description: "Enemies have -40% HP but +60% ATK.",
		ApplyToEnemies: func(enemies []*model.Enemy) {
			for _, e := range enemies {
				e.HP = int(float64(e.HP) * 0.6)
				e.MaxHP = int(float64(e.MaxHP) * 0.6)
				e.Atk = int(float64(e.Atk) * 1.6)
			}
		},
		GoalFloor:     15,
		AchievementID: "challenge_fragile_foes",
	},
	{
		ID:             "ironman",
		Name:           "No Rest",
		Description:    "Rest rooms and healing events do nothing.",
		DisableHealing: true,
		GoalFloor:      15,
		AchievementID:  "challenge_ironman",
	},
}

// Mutation returns the definition, or nil for an unknown id.
func Mutation(id string) *MutationDef {
	for i := range Mutations {
		if Mutations[i].ID == id {
			return &Mutations[i]
		}
	}
	return nil
}
