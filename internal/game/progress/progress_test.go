package progress

import (
	"math/rand/v2"
	"testing"

	"github.com/udisondev/deeploop/internal/data"
	"github.com/udisondev/deeploop/internal/game/formula"
	"github.com/udisondev/deeploop/internal/model"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(11, 11))
}

func warrior() *model.Character {
	return &model.Character{
		ID: 1, Name: "Aric the Bold", Class: data.ClassWarrior, Race: data.RaceDwarf,
		Level: 1, HP: 45, MaxHP: 45, MP: 5, MaxMP: 5,
		Atk: 12, Def: 10, Spd: 6, Mag: 2,
		Alive: true,
	}
}

func TestAwardXPSingleLevel(t *testing.T) {
	t.Parallel()

	c := warrior()
	enemies := []*model.Enemy{{XP: 30}, {XP: 30}}

	log := AwardXP(testRNG(), []*model.Character{c}, enemies, 0, 0)

	// 60 XP crosses the level 1 threshold (50), leaving 10
	if c.Level != 2 {
		t.Fatalf("level = %d; want 2", c.Level)
	}
	if c.XP != 10 {
		t.Errorf("xp remainder = %d; want 10", c.XP)
	}
	if c.SkillPoints != 1 {
		t.Errorf("skill points = %d; want 1", c.SkillPoints)
	}
	if c.HP != c.MaxHP || c.MP != c.MaxMP {
		t.Error("level-up should fully restore HP and MP")
	}
	// warrior growth: +8 HP plus 0..2 jitter
	if c.MaxHP < 53 || c.MaxHP > 55 {
		t.Errorf("MaxHP = %d; want 53..55", c.MaxHP)
	}
	if len(log) == 0 || log[0].Type != model.LogLevel {
		t.Errorf("missing level log: %v", log)
	}
}

func TestAwardXPMultiLevel(t *testing.T) {
	t.Parallel()

	c := warrior()
	// enough to cross levels 1 and 2: 50 + 174 = 224
	need := formula.XPForLevel(1) + formula.XPForLevel(2)
	enemies := []*model.Enemy{{XP: need + 5}}

	AwardXP(testRNG(), []*model.Character{c}, enemies, 0, 0)

	if c.Level != 3 {
		t.Fatalf("level = %d; want 3", c.Level)
	}
	if c.XP != 5 {
		t.Errorf("xp remainder = %d; want 5", c.XP)
	}
	if c.SkillPoints != 2 {
		t.Errorf("skill points = %d; want 2 (one per level)", c.SkillPoints)
	}
}

func TestAwardXPMultipliersCompound(t *testing.T) {
	t.Parallel()

	c := warrior()
	c.Race = data.RaceHuman
	enemies := []*model.Enemy{{XP: 20}}

	AwardXP(testRNG(), []*model.Character{c}, enemies, 2, 0.10)

	// floor each step: 20 -> 22 (human +10%) -> 24 (prestige 2, +10%) -> 26
	gained := c.XP
	if c.Level > 1 {
		gained += formula.XPForLevel(1)
	}
	if gained != 26 {
		t.Errorf("xp gained = %d; want 26", gained)
	}
}

func TestAwardXPSkipsDead(t *testing.T) {
	t.Parallel()

	c := warrior()
	c.ApplyDamage(c.HP)

	AwardXP(testRNG(), []*model.Character{c}, []*model.Enemy{{XP: 500}}, 0, 0)

	if c.XP != 0 || c.Level != 1 {
		t.Errorf("dead member gained xp: level=%d xp=%d", c.Level, c.XP)
	}
}

func TestLevelUpPromotesUsedSkills(t *testing.T) {
	t.Parallel()

	c := warrior()
	c.Skills = []*model.SkillInstance{
		{ID: "slash", Level: 1, Uses: 5},    // threshold 1*5 reached
		{ID: "war_cry", Level: 2, Uses: 4},  // threshold 2*5 not reached
	}
	enemies := []*model.Enemy{{XP: formula.XPForLevel(1)}}

	AwardXP(testRNG(), []*model.Character{c}, enemies, 0, 0)

	slash := c.Skill("slash")
	if slash.Level != 2 || slash.Uses != 0 {
		t.Errorf("slash level/uses = %d/%d; want 2/0", slash.Level, slash.Uses)
	}
	if cry := c.Skill("war_cry"); cry.Level != 2 || cry.Uses != 4 {
		t.Errorf("war_cry should be untouched, got level/uses = %d/%d", cry.Level, cry.Uses)
	}
}

func TestLearnSkill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(*model.Character)
		skillID string
		unlocks []string
		wantOK  bool
	}{
		{
			name:    "base kit skill for a point",
			setup:   func(c *model.Character) { c.SkillPoints = 1 },
			skillID: "war_cry",
			wantOK:  true,
		},
		{
			name:    "wrong class",
			setup:   func(c *model.Character) { c.SkillPoints = 10 },
			skillID: "fireball",
			wantOK:  false,
		},
		{
			name: "already known",
			setup: func(c *model.Character) {
				c.SkillPoints = 10
				c.Skills = []*model.SkillInstance{{ID: "war_cry", Level: 1}}
			},
			skillID: "war_cry",
			wantOK:  false,
		},
		{
			name:    "achievement gated",
			setup:   func(c *model.Character) { c.SkillPoints = 10 },
			skillID: "whirlwind",
			wantOK:  false,
		},
		{
			name:    "achievement gate satisfied",
			setup:   func(c *model.Character) { c.SkillPoints = 10 },
			skillID: "whirlwind",
			unlocks: []string{"killer_100"},
			wantOK:  true,
		},
		{
			name:    "insufficient points",
			setup:   func(c *model.Character) { c.SkillPoints = 0 },
			skillID: "fortify",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := warrior()
			tt.setup(c)
			before := c.SkillPoints

			ok, msg := LearnSkill(c, tt.skillID, tt.unlocks)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v (%q); want %v", ok, msg, tt.wantOK)
			}
			if !ok {
				if c.SkillPoints != before || c.Knows(tt.skillID) && tt.name != "already known" {
					t.Error("failed learn mutated state")
				}
				return
			}
			if !c.Knows(tt.skillID) {
				t.Error("skill not added")
			}
			if c.SkillPoints >= before {
				t.Error("no points spent")
			}
		})
	}
}

func TestUpgradeSkillEscalatingCost(t *testing.T) {
	t.Parallel()

	c := warrior()
	c.Skills = []*model.SkillInstance{{ID: "slash", Level: 1}}
	c.SkillPoints = 10 // 1+2+3+4 to reach level 5

	for want := 2; want <= 5; want++ {
		ok, msg := UpgradeSkill(c, "slash")
		if !ok {
			t.Fatalf("upgrade to %d failed: %s", want, msg)
		}
		if got := c.Skill("slash").Level; got != want {
			t.Fatalf("level = %d; want %d", got, want)
		}
	}
	if c.SkillPoints != 0 {
		t.Errorf("points = %d; want 0 after 1+2+3+4", c.SkillPoints)
	}

	if ok, _ := UpgradeSkill(c, "slash"); ok {
		t.Error("upgrade past level 5 should fail")
	}
}

func TestUpgradeSkillUnknown(t *testing.T) {
	t.Parallel()

	c := warrior()
	if ok, _ := UpgradeSkill(c, "fireball"); ok {
		t.Error("upgrading an unknown skill should fail")
	}
}

func TestAvailableSkills(t *testing.T) {
	t.Parallel()

	c := warrior()
	c.Skills = []*model.SkillInstance{{ID: "slash", Level: 1}}

	for _, ls := range AvailableSkills(c, nil) {
		if ls.SkillID == "slash" {
			t.Error("known skill listed as available")
		}
		if ls.SkillID == "whirlwind" {
			t.Error("gated skill listed without its achievement")
		}
		if ls.SkillID == "fireball" {
			t.Error("other class's skill listed")
		}
	}

	found := false
	for _, ls := range AvailableSkills(c, []string{"killer_100"}) {
		if ls.SkillID == "whirlwind" {
			found = true
		}
	}
	if !found {
		t.Error("whirlwind should be available with killer_100 unlocked")
	}
}

func TestPrestigePoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		floor, want int
	}{
		{5, 6},
		{25, 47},
		{1, 1},
		{10, 15},
	}
	for _, tt := range tests {
		if got := PrestigePoints(tt.floor); got != tt.want {
			t.Errorf("PrestigePoints(%d) = %d; want %d", tt.floor, got, tt.want)
		}
	}
}

func TestBonusForLevel(t *testing.T) {
	t.Parallel()

	b := BonusForLevel(4)
	if b.Stat != 0.12 || b.XP != 0.2 || b.Gold != 0.4 {
		t.Errorf("bonus = %+v; want stat 0.12, xp 0.2, gold 0.4", b)
	}
}

func TestUpgradeValue(t *testing.T) {
	t.Parallel()

	upgrades := map[string]int{
		data.UpgradeStartingGold: 2,
		data.UpgradeVitality:     5,
	}

	if got := UpgradeValue(upgrades, data.UpgradeStartingGold); got != 150 {
		t.Errorf("starting_gold = %v; want 150", got)
	}
	if got := UpgradeValue(upgrades, data.UpgradeVitality); got != 0.40 {
		t.Errorf("vitality = %v; want 0.40", got)
	}
	if got := UpgradeValue(upgrades, data.UpgradeXPGain); got != 0 {
		t.Errorf("unpurchased = %v; want 0", got)
	}
	if got := UpgradeValue(upgrades, "bogus"); got != 0 {
		t.Errorf("unknown id = %v; want 0", got)
	}
}

func TestBuyPrestigeUpgrade(t *testing.T) {
	t.Parallel()

	p := &model.Prestige{Points: 11, Upgrades: map[string]int{}}

	ok, _ := BuyPrestigeUpgrade(p, data.UpgradeStartingGold) // cost 3
	if !ok || p.Upgrades[data.UpgradeStartingGold] != 1 || p.Points != 8 {
		t.Fatalf("first buy: ok=%v level=%d points=%d", ok, p.Upgrades[data.UpgradeStartingGold], p.Points)
	}

	ok, _ = BuyPrestigeUpgrade(p, data.UpgradeStartingGold) // cost 8
	if !ok || p.Upgrades[data.UpgradeStartingGold] != 2 || p.Points != 0 {
		t.Fatalf("second buy: ok=%v level=%d points=%d", ok, p.Upgrades[data.UpgradeStartingGold], p.Points)
	}

	if ok, _ = BuyPrestigeUpgrade(p, data.UpgradeStartingGold); ok {
		t.Error("buy with 0 points should fail")
	}
	if p.Upgrades[data.UpgradeStartingGold] != 2 {
		t.Error("failed buy mutated upgrade level")
	}

	p.Points = 100
	p.Upgrades[data.UpgradeThreeSkills] = 1 // maxLevel 1
	if ok, _ = BuyPrestigeUpgrade(p, data.UpgradeThreeSkills); ok {
		t.Error("buy past max level should fail")
	}
	if ok, _ = BuyPrestigeUpgrade(p, "bogus"); ok {
		t.Error("unknown upgrade should fail")
	}
}

func TestCheckAchievements(t *testing.T) {
	t.Parallel()

	stats := &model.Stats{MonstersKilled: 1, HighestFloor: 5}

	fresh := CheckAchievements(stats, nil)
	want := map[string]bool{"first_blood": true, "floor_5": true}
	if len(fresh) != len(want) {
		t.Fatalf("fresh = %v; want first_blood and floor_5", fresh)
	}
	for _, id := range fresh {
		if !want[id] {
			t.Errorf("unexpected unlock %s", id)
		}
	}

	// already-unlocked ids never re-returned
	if again := CheckAchievements(stats, fresh); len(again) != 0 {
		t.Errorf("re-check returned %v; want none", again)
	}

	// monotonic: a strictly larger aggregate still satisfies
	stats.MonstersKilled = 100
	more := CheckAchievements(stats, fresh)
	found := false
	for _, id := range more {
		if id == "killer_100" {
			found = true
		}
		if want[id] {
			t.Errorf("re-returned %s", id)
		}
	}
	if !found {
		t.Error("killer_100 should unlock at 100 kills")
	}
}
