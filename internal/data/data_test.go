package data

import (
	"testing"

	"github.com/udisondev/deeploop/internal/model"
)

func TestClassLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		id       string
		wantNil  bool
		wantName string
	}{
		{"warrior", ClassWarrior, false, "Warrior"},
		{"mage", ClassMage, false, "Mage"},
		{"monk", ClassMonk, false, "Monk"},
		{"unknown", "bard", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cls := Class(tt.id)
			if tt.wantNil {
				if cls != nil {
					t.Errorf("Class(%q) = %v; want nil", tt.id, cls)
				}
				return
			}
			if cls == nil {
				t.Fatalf("Class(%q) = nil; want non-nil", tt.id)
			}
			if cls.Name != tt.wantName {
				t.Errorf("Name = %q; want %q", cls.Name, tt.wantName)
			}
		})
	}
}

func TestAllClassSkillsRegistered(t *testing.T) {
	t.Parallel()

	for id, cls := range classTable {
		for _, skillID := range cls.Skills {
			if Skill(skillID) == nil {
				t.Errorf("class %s references unknown skill %q", id, skillID)
			}
		}
	}
}

func TestUnlockedClassIDs(t *testing.T) {
	t.Parallel()

	base := UnlockedClassIDs(nil)
	if len(base) != 4 {
		t.Fatalf("UnlockedClassIDs(nil) = %v; want the 4 ungated classes", base)
	}
	for _, id := range base {
		if Class(id).UnlockReq != "" {
			t.Errorf("class %s is gated but returned without its achievement", id)
		}
	}

	withPaladin := UnlockedClassIDs([]string{"floor_50"})
	if len(withPaladin) != 5 {
		t.Errorf("UnlockedClassIDs(floor_50) = %v; want 5 classes", withPaladin)
	}

	all := UnlockedClassIDs([]string{"floor_50", "floor_100", "prestige_3", "killer_500"})
	if len(all) != len(classOrder) {
		t.Errorf("all achievements unlocked %d classes; want %d", len(all), len(classOrder))
	}
}

func TestSkillRegistryMerged(t *testing.T) {
	t.Parallel()

	wantCount := len(baseSkills) + len(learnableSkillDefs)
	if len(skillTable) != wantCount {
		t.Errorf("skillTable has %d entries; want %d (duplicate skill id?)", len(skillTable), wantCount)
	}

	// learnables must be reachable through the same registry as base kits
	for _, id := range []string{"slash", "mana_shield", "second_wind", "rampage"} {
		if Skill(id) == nil {
			t.Errorf("Skill(%q) = nil; want merged registry hit", id)
		}
	}
	if Skill("nonexistent") != nil {
		t.Error("Skill(nonexistent) != nil")
	}
}

func TestLearnableSkillsWellFormed(t *testing.T) {
	t.Parallel()

	for _, ls := range LearnableSkills {
		if Skill(ls.SkillID) == nil {
			t.Errorf("learnable %q has no skill definition", ls.SkillID)
		}
		if ls.Cost < 1 {
			t.Errorf("learnable %q has cost %d; want >= 1", ls.SkillID, ls.Cost)
		}
		if len(ls.Classes) == 0 {
			t.Errorf("learnable %q has no classes", ls.SkillID)
		}
		for _, cls := range ls.Classes {
			if Class(cls) == nil {
				t.Errorf("learnable %q names unknown class %q", ls.SkillID, cls)
			}
		}
		if ls.AchievementReq != "" && Achievement(ls.AchievementReq) == nil {
			t.Errorf("learnable %q gated on unknown achievement %q", ls.SkillID, ls.AchievementReq)
		}
	}
}

func TestFlagSkillsCarryDurations(t *testing.T) {
	t.Parallel()

	// flag buffs must outlive any realistic combat
	for _, id := range []string{"undying_fury", "second_wind"} {
		def := Skill(id)
		if def == nil {
			t.Fatalf("Skill(%q) = nil", id)
		}
		if def.Duration < 99 {
			t.Errorf("%s duration = %d; want 99", id, def.Duration)
		}
	}
}

func TestPrestigeUpgradesWellFormed(t *testing.T) {
	t.Parallel()

	if len(PrestigeUpgrades) != 15 {
		t.Fatalf("PrestigeUpgrades has %d entries; want 15", len(PrestigeUpgrades))
	}

	for _, u := range PrestigeUpgrades {
		if len(u.Costs) != u.MaxLevel {
			t.Errorf("%s: %d costs for maxLevel %d", u.ID, len(u.Costs), u.MaxLevel)
		}
		if len(u.Values) != u.MaxLevel {
			t.Errorf("%s: %d values for maxLevel %d", u.ID, len(u.Values), u.MaxLevel)
		}
		for i := 1; i < len(u.Costs); i++ {
			if u.Costs[i] <= u.Costs[i-1] {
				t.Errorf("%s: cost for level %d (%d) not above level %d (%d)",
					u.ID, i+1, u.Costs[i], i, u.Costs[i-1])
			}
		}
	}

	if PrestigeUpgrade("starting_gold") == nil {
		t.Error("PrestigeUpgrade(starting_gold) = nil")
	}
	if PrestigeUpgrade("bogus") != nil {
		t.Error("PrestigeUpgrade(bogus) != nil")
	}
}

func TestAchievementsWellFormed(t *testing.T) {
	t.Parallel()

	if len(Achievements) != 21 {
		t.Fatalf("Achievements has %d entries; want 21", len(Achievements))
	}

	seen := make(map[string]bool)
	for _, a := range Achievements {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Condition == nil {
			t.Errorf("achievement %q has nil condition", a.ID)
		}
	}

	// every bonus entry must name a real achievement
	for id := range achievementBonuses {
		if !seen[id] {
			t.Errorf("achievementBonuses names unknown achievement %q", id)
		}
	}

	// class gates must be real achievements
	for _, cls := range classTable {
		if cls.UnlockReq != "" && !seen[cls.UnlockReq] {
			t.Errorf("class %s gated on unknown achievement %q", cls.ID, cls.UnlockReq)
		}
	}
}

func TestAchievementConditions(t *testing.T) {
	t.Parallel()

	stats := &model.Stats{
		MonstersKilled:      100,
		HighestFloor:        10,
		TotalGold:           1500,
		ChallengesCompleted: map[string]bool{"cursed": true},
	}

	tests := []struct {
		id   string
		want bool
	}{
		{"first_blood", true},
		{"killer_100", true},
		{"killer_500", false},
		{"floor_10", true},
		{"floor_25", false},
		{"hoarder", true},
		{"rich", false},
		{"challenge_cursed", true},
		{"challenge_ironman", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()
			ach := Achievement(tt.id)
			if ach == nil {
				t.Fatalf("Achievement(%q) = nil", tt.id)
			}
			if got := ach.Condition(stats); got != tt.want {
				t.Errorf("Condition = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestAchievementBonusesStack(t *testing.T) {
	t.Parallel()

	b := AchievementBonuses([]string{"floor_5", "deaths_10", "boss_slayer", "first_blood"})
	if want := 0.05 + 0.1 + 0.05; b.HP != want {
		t.Errorf("HP bonus = %v; want %v", b.HP, want)
	}
	if b.Atk != 0.05 {
		t.Errorf("Atk bonus = %v; want 0.05", b.Atk)
	}
	if b.Gold != 0 {
		t.Errorf("Gold bonus = %v; want 0", b.Gold)
	}
}

func TestMutationsWellFormed(t *testing.T) {
	t.Parallel()

	if len(Mutations) != 6 {
		t.Fatalf("Mutations has %d entries; want 6", len(Mutations))
	}
	for _, m := range Mutations {
		if m.GoalFloor != 15 {
			t.Errorf("%s goal floor = %d; want 15", m.ID, m.GoalFloor)
		}
		if Achievement(m.AchievementID) == nil {
			t.Errorf("%s names unknown achievement %q", m.ID, m.AchievementID)
		}
	}
}

func TestMutationTransforms(t *testing.T) {
	t.Parallel()

	t.Run("glass cannon halves HP and raises ATK", func(t *testing.T) {
		t.Parallel()
		c := &model.Character{HP: 40, MaxHP: 40, Atk: 10}
		Mutation("glass_cannon").ApplyToParty([]*model.Character{c})
		if c.MaxHP != 20 || c.HP != 20 {
			t.Errorf("HP/MaxHP = %d/%d; want 20/20", c.HP, c.MaxHP)
		}
		if c.Atk != 15 {
			t.Errorf("Atk = %d; want 15", c.Atk)
		}
	})

	t.Run("cursed inflates enemy stats", func(t *testing.T) {
		t.Parallel()
		e := &model.Enemy{HP: 10, MaxHP: 10, Atk: 10, Def: 10, Spd: 10}
		Mutation("cursed").ApplyToEnemies([]*model.Enemy{e})
		if e.HP != 13 || e.Atk != 13 || e.Def != 13 || e.Spd != 13 {
			t.Errorf("enemy after cursed = %+v; want 13s", e)
		}
	})

	t.Run("ironman has no transforms", func(t *testing.T) {
		t.Parallel()
		m := Mutation("ironman")
		if m.ApplyToParty != nil || m.ApplyToEnemies != nil {
			t.Error("ironman should not transform party or enemies")
		}
		if !m.DisableHealing {
			t.Error("ironman should disable healing")
		}
	})
}

func TestSynergyConditions(t *testing.T) {
	t.Parallel()

	party := []*model.Character{
		{Class: ClassWarrior, Race: RaceHuman},
		{Class: ClassMage, Race: RaceElf},
		{Class: ClassRogue, Race: RaceGoblin},
		{Class: ClassHealer, Race: RaceDwarf},
	}

	active := make(map[string]bool)
	for _, s := range Synergies {
		if s.Condition(party) {
			active[s.ID] = true
		}
	}

	if !active["balanced_party"] {
		t.Error("balanced_party should be active for 4 unique classes")
	}
	if active["dwarf_brotherhood"] {
		t.Error("dwarf_brotherhood should need 3 dwarves")
	}
	if active["frontline"] {
		t.Error("frontline should need warrior and paladin")
	}
}

func TestEventAndTrapLookups(t *testing.T) {
	t.Parallel()

	if len(EventTypes) != 12 {
		t.Errorf("EventTypes has %d entries; want 12", len(EventTypes))
	}
	if len(TrapTypes) != 5 {
		t.Errorf("TrapTypes has %d entries; want 5", len(TrapTypes))
	}

	for _, e := range EventTypes {
		if got := Event(e.ID); got == nil || got.Effect != e.Effect {
			t.Errorf("Event(%q) roundtrip failed", e.ID)
		}
	}
	for _, tr := range TrapTypes {
		if got := Trap(tr.ID); got == nil || got.Effect != tr.Effect {
			t.Errorf("Trap(%q) roundtrip failed", tr.ID)
		}
	}
	if Event("nope") != nil || Trap("nope") != nil {
		t.Error("unknown event/trap lookup should return nil")
	}

	curse := Trap("curse_rune")
	if curse.Stat != model.StatAtk || curse.Duration != 10 {
		t.Errorf("curse_rune = %+v; want atk debuff for 10 turns", curse)
	}
}

func TestItemTemplates(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, it := range ItemTemplates {
		key := it.Name + "/" + string(it.Slot)
		if seen[key] {
			t.Errorf("duplicate item template %s", key)
		}
		seen[key] = true

		if it.Tier < 1 || it.Tier > 4 {
			t.Errorf("%s tier = %d; want 1..4", it.Name, it.Tier)
		}
		if it.Price <= 0 {
			t.Errorf("%s has no price", it.Name)
		}
		if it.Tier >= 3 && it.LevelReq == 0 {
			t.Errorf("%s is tier %d without a level requirement", it.Name, it.Tier)
		}
		for _, cls := range it.ClassReq {
			if Class(cls) == nil {
				t.Errorf("%s requires unknown class %q", it.Name, cls)
			}
		}
	}

	tier1 := ItemsUpToTier(1)
	for _, it := range tier1 {
		if it.Tier > 1 {
			t.Errorf("ItemsUpToTier(1) returned tier %d item %s", it.Tier, it.Name)
		}
	}
	if len(ItemsUpToTier(4)) != len(ItemTemplates) {
		t.Error("ItemsUpToTier(4) should return the full catalog")
	}
}

func TestFloorDescriptionCycles(t *testing.T) {
	t.Parallel()

	if FloorDescription(1) != FloorDescriptions[0] {
		t.Error("floor 1 should use the first description")
	}
	if FloorDescription(1) != FloorDescription(1+len(FloorDescriptions)) {
		t.Error("descriptions should cycle by floor number")
	}
}
