// Package progress implements the progression economy: XP awards and
// level-ups, skill learning and upgrading, prestige math, the permanent
// prestige upgrade shop and achievement evaluation.
package progress

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/udisondev/deeploop/internal/data"
	"github.com/udisondev/deeploop/internal/game/formula"
	"github.com/udisondev/deeploop/internal/model"
)

const skillMaxLevel = 5

// prestige bonus coefficients per prestige level
const (
	prestigeStatPerLevel = 0.03
	prestigeXPPerLevel   = 0.05
	prestigeGoldPerLevel = 0.1
)

// AwardXP distributes the cleared room's XP to every living member and runs
// their level-up loops. Each member's gain is scaled independently: race
// perk, then prestige level, then the purchased XP upgrade, flooring after
// each multiplier. Returns the level-up log entries.
func AwardXP(rng *rand.Rand, party []*model.Character, enemies []*model.Enemy, prestigeLevel int, upgradeXPBonus float64) []model.LogEntry {
	total := 0
	for _, e := range enemies {
		total += e.XP
	}

	var log []model.LogEntry
	for _, c := range party {
		if !c.IsActive() {
			continue
		}

		gain := total
		if race := data.Race(c.Race); race != nil && race.Perk == data.PerkXPBonus {
			gain = int(math.Floor(float64(gain) * (1 + race.PerkValue)))
		}
		gain = int(math.Floor(float64(gain) * (1 + float64(prestigeLevel)*prestigeXPPerLevel)))
		if upgradeXPBonus > 0 {
			gain = int(math.Floor(float64(gain) * (1 + upgradeXPBonus)))
		}
		c.XP += gain

		// multiple thresholds can fall in one award; each level rolls its
		// own growth jitter and re-checks skill promotions
		for c.XP >= formula.XPForLevel(c.Level) {
			c.XP -= formula.XPForLevel(c.Level)
			c.Level++
			log = append(log, levelUp(rng, c)...)
		}
	}
	return log
}

// levelUp applies one level's stat growth with jitter, restores the
// character, grants a skill point and promotes any skill whose uses counter
// reached its threshold.
func levelUp(rng *rand.Rand, c *model.Character) []model.LogEntry {
	growth := data.Class(c.Class).Growth

	c.MaxHP += growth.HP + formula.RandInt(rng, 0, 2)
	c.HP = c.MaxHP
	c.MaxMP += growth.MP + formula.RandInt(rng, 0, 1)
	c.MP = c.MaxMP
	c.Atk += growth.Atk + formula.RandInt(rng, 0, 1)
	c.Def += growth.Def + formula.RandInt(rng, 0, 1)
	c.Spd += growth.Spd + formula.RandInt(rng, 0, 1)
	c.Mag += growth.Mag + formula.RandInt(rng, 0, 1)
	c.SkillPoints++

	log := []model.LogEntry{{
		Type: model.LogLevel,
		Text: fmt.Sprintf("%s reached level %d!", c.Name, c.Level),
	}}

	for _, s := range c.Skills {
		if s.Level < skillMaxLevel && s.Uses >= s.Level*5 {
			s.Level++
			s.Uses = 0
			log = append(log, model.LogEntry{
				Type: model.LogLevel,
				Text: fmt.Sprintf("%s's %s improved to level %d!", c.Name, data.Skill(s.ID).Name, s.Level),
			})
		}
	}
	return log
}

// AvailableSkills lists the learnable-catalog entries the character could
// buy right now, ignoring skill point balance: class-eligible, not already
// known, achievement gate met.
func AvailableSkills(c *model.Character, unlockedAchievements []string) []data.LearnableSkill {
	has := func(id string) bool {
		for _, a := range unlockedAchievements {
			if a == id {
				return true
			}
		}
		return false
	}
	var out []data.LearnableSkill
	for _, ls := range data.LearnableSkills {
		if c.Knows(ls.SkillID) {
			continue
		}
		eligible := false
		for _, cls := range ls.Classes {
			if cls == c.Class {
				eligible = true
				break
			}
		}
		if !eligible {
			continue
		}
		if ls.AchievementReq != "" && !has(ls.AchievementReq) {
			continue
		}
		out = append(out, ls)
	}
	return out
}

// LearnSkill spends skill points to learn a catalog skill. Returns false
// with a reason on any failed gate; state is untouched on failure.
func LearnSkill(c *model.Character, skillID string, unlockedAchievements []string) (bool, string) {
	var def *data.LearnableSkill
	for i := range data.LearnableSkills {
		if data.LearnableSkills[i].SkillID == skillID {
			def = &data.LearnableSkills[i]
			break
		}
	}
	if def == nil {
		return false, "Skill not found."
	}
	eligible := false
	for _, cls := range def.Classes {
		if cls == c.Class {
			eligible = true
			break
		}
	}
	if !eligible {
		return false, "Class cannot learn this skill."
	}
	if c.Knows(skillID) {
		return false, "Already known."
	}
	if def.AchievementReq != "" {
		unlocked := false
		for _, a := range unlockedAchievements {
			if a == def.AchievementReq {
				unlocked = true
				break
			}
		}
		if !unlocked {
			return false, "Achievement required."
		}
	}
	if c.SkillPoints < def.Cost {
		return false, fmt.Sprintf("Need %d skill points (have %d).", def.Cost, c.SkillPoints)
	}

	c.SkillPoints -= def.Cost
	c.Skills = append(c.Skills, &model.SkillInstance{ID: skillID, Level: 1})
	return true, fmt.Sprintf("%s learned %s!", c.Name, data.Skill(skillID).Name)
}

// UpgradeSkill raises a known skill one level for skill points equal to its
// current level. Level 5 is the cap.
func UpgradeSkill(c *model.Character, skillID string) (bool, string) {
	inst := c.Skill(skillID)
	if inst == nil {
		return false, "Skill not known."
	}
	cost := inst.Level
	if c.SkillPoints < cost {
		return false, fmt.Sprintf("Need %d skill points (have %d).", cost, c.SkillPoints)
	}
	if inst.Level >= skillMaxLevel {
		return false, "Skill already at max level."
	}

	c.SkillPoints -= cost
	inst.Level++
	return true, fmt.Sprintf("%s's %s upgraded to level %d!", c.Name, data.Skill(skillID).Name, inst.Level)
}

// PrestigePoints earned for a run that reached the given floor:
// floor(highestFloor^1.2).
func PrestigePoints(highestFloor int) int {
	return int(math.Floor(math.Pow(float64(highestFloor), 1.2)))
}

// PrestigeBonus is the passive multiplier bundle a prestige level grants to
// a freshly created party.
type PrestigeBonus struct {
	Stat float64
	XP   float64
	Gold float64
}

// BonusForLevel returns the prestige bonus at the given prestige level.
func BonusForLevel(level int) PrestigeBonus {
	return PrestigeBonus{
		Stat: float64(level) * prestigeStatPerLevel,
		XP:   float64(level) * prestigeXPPerLevel,
		Gold: float64(level) * prestigeGoldPerLevel,
	}
}

// UpgradeLevel reads the purchased level of a prestige upgrade, 0 when
// unpurchased.
func UpgradeLevel(upgrades map[string]int, id string) int {
	return upgrades[id]
}

// UpgradeValue is the effect value of a prestige upgrade at its purchased
// level, 0 when unpurchased.
func UpgradeValue(upgrades map[string]int, id string) float64 {
	level := UpgradeLevel(upgrades, id)
	if level == 0 {
		return 0
	}
	def := data.PrestigeUpgrade(id)
	if def == nil || level > len(def.Values) {
		return 0
	}
	return def.Values[level-1]
}

// BuyPrestigeUpgrade spends banked prestige points on the next level of an
// upgrade. State is untouched on failure.
func BuyPrestigeUpgrade(prestige *model.Prestige, id string) (bool, string) {
	def := data.PrestigeUpgrade(id)
	if def == nil {
		return false, "Upgrade not found."
	}
	if prestige.Upgrades == nil {
		prestige.Upgrades = map[string]int{}
	}
	current := prestige.Upgrades[id]
	if current >= def.MaxLevel {
		return false, fmt.Sprintf("%s is already at max level.", def.Name)
	}
	cost := def.Costs[current]
	if prestige.Points < cost {
		return false, fmt.Sprintf("Need %d prestige points (have %d).", cost, prestige.Points)
	}

	prestige.Points -= cost
	prestige.Upgrades[id] = current + 1
	return true, fmt.Sprintf("%s upgraded to level %d!", def.Name, current+1)
}

// CheckAchievements returns achievement ids newly satisfied by the stats
// aggregate. Already-unlocked ids are never re-returned.
func CheckAchievements(stats *model.Stats, unlocked []string) []string {
	has := func(id string) bool {
		for _, a := range unlocked {
			if a == id {
				return true
			}
		}
		return false
	}
	var fresh []string
	for i := range data.Achievements {
		a := &data.Achievements[i]
		if !has(a.ID) && a.Condition(stats) {
			fresh = append(fresh, a.ID)
		}
	}
	return fresh
}
