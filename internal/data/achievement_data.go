package data

import "github.com/udisondev/deeploop/internal/model"

// AchievementDef pairs an unlock predicate over the run counters with a
// display name. Reward describes the bonus; the actual numbers live in
// AchievementBonuses.
type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Condition   func(*model.Stats) bool
	Reward      string
}

// Achievements in evaluation order. Conditions are monotone over the
// counters, so re-evaluation never revokes an unlock.
var Achievements = []AchievementDef{
	{
		ID:          "first_blood",
		Name:        "First Blood",
		Description: "Defeat your first monster.",
		Condition:   func(s *model.Stats) bool { return s.MonstersKilled >= 1 },
		Reward:      "Unlocks: Nothing, but it feels good.",
	},
	{
		ID:          "floor_5",
		Name:        "Getting Deeper",
		Description: "Reach floor 5.",
		Condition:   func(s *model.Stats) bool { return s.HighestFloor >= 5 },
		Reward:      "+5% party HP",
	},
	{
		ID:          "floor_10",
		Name:        "Spelunker",
		Description: "Reach floor 10.",
		Condition:   func(s *model.Stats) bool { return s.HighestFloor >= 10 },
		Reward:      "+5% party ATK",
	},
	{
		ID:          "floor_25",
		Name:        "Deep Diver",
		Description: "Reach floor 25.",
		Condition:   func(s *model.Stats) bool { return s.HighestFloor >= 25 },
		Reward:      "+10% party DEF",
	},
	{
		ID:          "boss_slayer",
		Name:        "Boss Slayer",
		Description: "Defeat a boss.",
		Condition:   func(s *model.Stats) bool { return s.BossesKilled >= 1 },
		Reward:      "+5% all stats",
	},
	{
		ID:          "hoarder",
		Name:        "Hoarder",
		Description: "Accumulate 1,000 gold total.",
		Condition:   func(s *model.Stats) bool { return s.TotalGold >= 1000 },
		Reward:      "+10% gold find",
	},
	{
		ID:          "rich",
		Name:        "Filthy Rich",
		Description: "Accumulate 10,000 gold total.",
		Condition:   func(s *model.Stats) bool { return s.TotalGold >= 10000 },
		Reward:      "+20% gold find",
	},
	{
		ID:          "veteran",
		Name:        "Veteran",
		Description: "Reach a party member to level 10.",
		Condition:   func(s *model.Stats) bool { return s.HighestLevel >= 10 },
		Reward:      "+10% XP",
	},
	{
		ID:          "prestige_1",
		Name:        "New Beginnings",
		Description: "Perform your first prestige.",
		Condition:   func(s *model.Stats) bool { return s.TotalPrestige >= 1 },
		Reward:      "Permanent +5% all stats per prestige level",
	},
	{
		ID:          "killer_100",
		Name:        "Centurion",
		Description: "Defeat 100 monsters.",
		Condition:   func(s *model.Stats) bool { return s.MonstersKilled >= 100 },
		Reward:      "+3% ATK",
	},
	{
		ID:          "deaths_10",
		Name:        "Persistent",
		Description: "Get defeated 10 times. Never give up.",
		Condition:   func(s *model.Stats) bool { return s.Deaths >= 10 },
		Reward:      "+10% HP",
	},
	{
		ID:          "floor_50",
		Name:        "Abyssal Explorer",
		Description: "Reach floor 50.",
		Condition:   func(s *model.Stats) bool { return s.HighestFloor >= 50 },
		Reward:      "Unlocks the Paladin class.",
	},
	{
		ID:          "floor_100",
		Name:        "Rock Bottom",
		Description: "Reach floor 100. There is no deeper.",
		Condition:   func(s *model.Stats) bool { return s.HighestFloor >= 100 },
		Reward:      "Unlocks the Monk class.",
	},
	{
		ID:          "prestige_3",
		Name:        "Eternal Return",
		Description: "Prestige 3 times. Some loops run deeper.",
		Condition:   func(s *model.Stats) bool { return s.TotalPrestige >= 3 },
		Reward:      "Unlocks the Necromancer class.",
	},
	{
		ID:          "killer_500",
		Name:        "Slaughter",
		Description: "Defeat 500 monsters. The dungeon knows your name.",
		Condition:   func(s *model.Stats) bool { return s.MonstersKilled >= 500 },
		Reward:      "Unlocks the Berserker class.",
	},
	{
		ID:          "challenge_glass_cannon",
		Name:        "Glass Half Empty",
		Description: "Reach floor 15 with Glass Cannon mutation active.",
		Condition:   func(s *model.Stats) bool { return s.ChallengesCompleted["glass_cannon"] },
		Reward:      "+8% ATK, +5% MAG",
	},
	{
		ID:          "challenge_cursed",
		Name:        "Unbreakable",
		Description: "Reach floor 15 with Cursed Dungeon mutation active.",
		Condition:   func(s *model.Stats) bool { return s.ChallengesCompleted["cursed"] },
		Reward:      "+5% all stats",
	},
	{
		ID:          "challenge_speed_run",
		Name:        "Lightning Reflexes",
		Description: "Reach floor 15 with Speed Demons mutation active.",
		Condition:   func(s *model.Stats) bool { return s.ChallengesCompleted["speed_run"] },
		Reward:      "+10% SPD",
	},
	{
		ID:          "challenge_treasure_hunter",
		Name:        "Midas Touch",
		Description: "Reach floor 15 with Treasure Hunter mutation active.",
		Condition:   func(s *model.Stats) bool { return s.ChallengesCompleted["treasure_hunter"] },
		Reward:      "+15% gold find",
	},
	{
		ID:          "challenge_fragile_foes",
		Name:        "Overkill",
		Description: "Reach floor 15 with Fragile Foes mutation active.",
		Condition:   func(s *model.Stats) bool { return s.ChallengesCompleted["fragile_foes"] },
		Reward:      "+5% ATK, +5% SPD",
	},
	{
		ID:          "challenge_ironman",
		Name:        "Iron Will",
		Description: "Reach floor 15 with No Rest mutation active.",
		Condition:   func(s *model.Stats) bool { return s.ChallengesCompleted["ironman"] },
		Reward:      "+10% HP, +10% DEF",
	},
}

// Achievement returns the definition, or nil for an unknown id.
func Achievement(id string) *AchievementDef {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}

// achievementBonuses maps unlocked achievement ids to their permanent
// percentage bonuses. Ids absent here (class unlocks, first_blood,
// prestige_1) grant no direct stat bonus.
var achievementBonuses = map[string]model.BonusBlock{
	"floor_5":                   {HP: 0.05},
	"floor_10":                  {Atk: 0.05},
	"floor_25":                  {Def: 0.1},
	"boss_slayer":               {HP: 0.05, Atk: 0.05, Def: 0.05, Spd: 0.05, Mag: 0.05},
	"hoarder":                   {Gold: 0.1},
	"rich":                      {Gold: 0.2},
	"veteran":                   {XP: 0.1},
	"killer_100":                {Atk: 0.03},
	"deaths_10":                 {HP: 0.1},
	"floor_50":                  {HP: 0.1, Def: 0.05},
	"floor_100":                 {Spd: 0.1, HP: 0.05},
	"prestige_3":                {Mag: 0.1, HP: 0.05},
	"killer_500":                {Atk: 0.1, HP: 0.05},
	"challenge_glass_cannon":    {Atk: 0.08, Mag: 0.05},
	"challenge_cursed":          {HP: 0.05, Atk: 0.05, Def: 0.05, Spd: 0.05, Mag: 0.05},
	"challenge_speed_run":       {Spd: 0.1},
	"challenge_treasure_hunter": {Gold: 0.15},
	"challenge_fragile_foes":    {Atk: 0.05, Spd: 0.05},
	"challenge_ironman":         {HP: 0.1, Def: 0.1},
}

// AchievementBonuses sums the permanent bonuses of the unlocked set.
func AchievementBonuses(unlockedIDs []string) model.BonusBlock {
	var total model.BonusBlock
	for _, id := range unlockedIDs {
		if b, ok := achievementBonuses[id]; ok {
			total.Add(b)
		}
	}
	return total
}
