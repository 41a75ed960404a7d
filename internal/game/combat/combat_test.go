package combat

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/udisondev/deeploop/internal/data"
	"github.com/udisondev/deeploop/internal/model"
)

func testResolver() *Resolver {
	return NewResolver(rand.New(rand.NewPCG(7, 7)))
}

func fighter(name string, skills ...string) *model.Character {
	c := &model.Character{
		ID: 1, Name: name, Class: data.ClassWarrior, Race: data.RaceHuman,
		Level: 1, HP: 50, MaxHP: 50, MP: 20, MaxMP: 20,
		Atk: 12, Def: 10, Spd: 8, Mag: 2,
		Alive: true, Buffs: []model.Buff{},
	}
	for _, id := range skills {
		c.Skills = append(c.Skills, &model.SkillInstance{ID: id, Level: 1})
	}
	return c
}

func slime(hp int) *model.Enemy {
	return &model.Enemy{Name: "Slime", HP: hp, MaxHP: hp, Atk: 5, Def: 2, Spd: 3, XP: 10}
}

func hasLog(log []model.LogEntry, substr string) bool {
	for _, e := range log {
		if strings.Contains(e.Text, substr) {
			return true
		}
	}
	return false
}

func TestCheckResult(t *testing.T) {
	t.Parallel()

	c := fighter("Aric the Bold")
	e := slime(10)

	if got := CheckResult([]*model.Character{c}, []*model.Enemy{e}); got != OutcomeOngoing {
		t.Fatalf("ongoing fight = %v; want OutcomeOngoing", got)
	}
	e.HP = 0
	if got := CheckResult([]*model.Character{c}, []*model.Enemy{e}); got != OutcomeVictory {
		t.Fatalf("dead enemies = %v; want OutcomeVictory", got)
	}
	e.HP = 10
	c.ApplyDamage(c.HP)
	if got := CheckResult([]*model.Character{c}, []*model.Enemy{e}); got != OutcomeDefeat {
		t.Fatalf("wiped party = %v; want OutcomeDefeat", got)
	}
}

func TestBasicAttackFallback(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Bren Ironjaw") // no skills known
	e := slime(200)

	log := r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})
	if !hasLog(log, "attacks") {
		t.Fatalf("expected a basic attack in the log: %v", log)
	}
	if e.HP == e.MaxHP {
		t.Error("enemy took no damage")
	}
}

func TestStunConsumesTurn(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Cael the Wise")
	c.Spd = 1 // enemy acts first so the stun skip is visible
	e := slime(500)
	e.Stunned = true
	e.Spd = 99

	hpBefore := c.HP
	log := r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})

	if !hasLog(log, "stunned and cannot act") {
		t.Fatalf("missing stun log: %v", log)
	}
	if e.Stunned {
		t.Error("stun flag not consumed")
	}
	if c.HP != hpBefore {
		t.Error("stunned enemy still dealt damage")
	}
}

func TestDodgeConsumedBeforeDamage(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Dorn Lightfoot")
	c.Spd = 0
	c.AddBuff(model.Buff{Stat: model.BuffDodge, Amount: 1, Turns: 5, Name: "Evasion"})
	e := slime(5000)
	e.Atk = 100
	e.Spd = 99

	hpBefore := c.HP
	log := r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})

	if !hasLog(log, "dodges") {
		t.Fatalf("missing dodge log: %v", log)
	}
	if c.HP != hpBefore {
		t.Error("dodged attack still dealt damage")
	}
	if c.HasBuff(model.BuffDodge) {
		t.Error("dodge buff not consumed")
	}
}

func TestManaShieldAbsorbsAndBreaks(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Elm Stormborn")
	c.Spd = 0
	c.Def = 0
	c.MP = 5
	c.AddBuff(model.Buff{Stat: model.BuffManaShield, Amount: 1, Turns: 5, Name: "Mana Shield"})
	e := slime(5000)
	e.Atk = 50
	e.Spd = 99

	log := r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})

	if !hasLog(log, "mana shield absorbs 5") {
		t.Fatalf("shield should absorb exactly the 5 MP: %v", log)
	}
	if c.MP != 0 {
		t.Errorf("MP = %d; want 0", c.MP)
	}
	if c.HasBuff(model.BuffManaShield) {
		t.Error("drained shield should shatter")
	}
	if c.HP == c.MaxHP {
		t.Error("overflow damage should still land on HP")
	}
}

func TestUndyingSurvivesLethalOnce(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Finn Fireheart")
	c.Spd = 0
	c.HP = 5
	c.AddBuff(model.Buff{Stat: model.BuffUndying, Amount: 1, Turns: 99, Name: "Undying Fury"})
	e := slime(5000)
	e.Atk = 500
	e.Spd = 99

	log := r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})

	if c.HP != 1 || !c.Alive {
		t.Fatalf("HP/alive = %d/%v; want 1/true", c.HP, c.Alive)
	}
	if c.HasBuff(model.BuffUndying) {
		t.Error("undying should be consumed")
	}
	if !hasLog(log, "refuses to fall") {
		t.Errorf("missing undying log: %v", log)
	}
}

func TestSecondWindTriggersOnce(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Gale Rockbiter")
	c.Spd = 0
	c.MaxHP = 100
	c.HP = 25
	c.Def = 999 // damage floors at 1, HP drifts down slowly
	c.AddBuff(model.Buff{Stat: model.BuffSecondWind, Amount: 1, Turns: 99, Name: "Second Wind"})
	e := slime(5000)
	e.Spd = 99

	// drive HP below 20% over repeated turns
	triggered := false
	for i := 0; i < 40 && !triggered; i++ {
		log := r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})
		triggered = hasLog(log, "second wind")
	}
	if !triggered {
		t.Fatal("second wind never triggered")
	}
	if c.HasBuff(model.BuffSecondWind) {
		t.Error("second wind buff should be removed on trigger")
	}
	if c.HP <= 20 {
		t.Errorf("HP = %d; want healed above the 20%% threshold", c.HP)
	}
}

func TestDeathLatchLogsImportant(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Holt the Meek")
	c.Spd = 0
	c.HP = 1
	c.Def = 0
	e := slime(5000)
	e.Atk = 100
	e.Spd = 99

	log := r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})

	if c.Alive || c.HP != 0 {
		t.Fatalf("alive/HP = %v/%d; want dead at 0", c.Alive, c.HP)
	}
	found := false
	for _, e := range log {
		if e.Type == model.LogImportant && strings.Contains(e.Text, "has fallen") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing important fall log: %v", log)
	}
}

func TestPoisonTicksAndExpires(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Iris Moonwhisper")
	c.Atk = 0 // basic attacks do 1, poison dominates nothing; we poison manually
	e := slime(500)
	e.ApplyPoison(10, 2)

	hpBefore := e.HP
	log := r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})
	if !hasLog(log, "poison damage") {
		t.Fatalf("missing poison tick: %v", log)
	}
	if e.HP >= hpBefore {
		t.Error("poison dealt no damage")
	}
	if e.PoisonTurns != 1 {
		t.Errorf("poisonTurns = %d; want 1", e.PoisonTurns)
	}

	r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})
	if e.IsPoisoned() {
		t.Error("poison should expire after its turns run out")
	}
}

func TestPoisonOverwritesNotStacks(t *testing.T) {
	t.Parallel()

	e := slime(100)
	e.ApplyPoison(10, 3)
	e.ApplyPoison(4, 3)
	if e.Poison != 4 {
		t.Errorf("poison = %d; want overwrite to 4", e.Poison)
	}
}

func TestSlowIsPermanent(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Jade Shadowstep", "ice_shard")
	c.Class = data.ClassMage
	c.Mag = 14
	c.MP = 50
	e := slime(5000)
	e.Spd = 10

	r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})
	if e.Spd != 7 {
		t.Fatalf("Spd = %d; want 7 after one slow", e.Spd)
	}
	// slowing again compounds; nothing restores it
	c.MP = 50
	r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})
	if e.Spd != 4 {
		t.Errorf("Spd = %d; want 4 after second slow", e.Spd)
	}
}

func TestBuffTickExpires(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Kael Goldtooth")
	c.AddBuff(model.Buff{Stat: model.StatAtk, Amount: 5, Turns: 2, Name: "Shrine"})
	e := slime(5000)

	r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})
	if !c.HasBuff(model.StatAtk) {
		t.Fatal("buff expired a turn early")
	}
	r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})
	if c.HasBuff(model.StatAtk) {
		t.Error("buff should expire after its turns tick to 0")
	}
}

func TestSkillUseTracksXPAndMP(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Luna Sparkfinger", "war_cry")
	c.Race = data.RaceElf
	e := slime(500)

	r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})

	inst := c.Skill("war_cry")
	if inst.Uses != 1 {
		t.Errorf("uses = %d; want 1", inst.Uses)
	}
	if diff := inst.XP - 1.15; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("skill xp = %v; want 1.15 with the elf bonus", inst.XP)
	}
	if c.MP != 20-data.Skill("war_cry").MPCost {
		t.Errorf("MP = %d; want cost deducted", c.MP)
	}
}

func TestWarriorOpensWithWarCry(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Moss the Brave", "slash", "shield_bash", "war_cry")
	e := slime(500)

	log := r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})

	if !hasLog(log, "War Cry") {
		t.Fatalf("warrior should buff first: %v", log)
	}
	if !c.HasBuffNamed("War Cry") {
		t.Error("war cry buff missing")
	}
	// magnitude scales with caster stats: floor(0.2 * (atk + mag))
	for _, b := range c.Buffs {
		if b.Name == "War Cry" && (b.Stat != model.StatAtk || b.Amount < 1) {
			t.Errorf("war cry buff = %+v; want positive atk buff", b)
		}
	}
}

func TestHealerHealsMostWounded(t *testing.T) {
	t.Parallel()

	r := testResolver()
	h := fighter("Nyx the Lucky", "heal", "bless", "smite")
	h.Class = data.ClassHealer
	h.Mag = 12
	h.MP = 25
	hurt := fighter("Orin Mudfoot")
	hurt.ID = 2
	hurt.HP = 10 // 20%, most wounded
	mild := fighter("Pike Dirthand")
	mild.ID = 3
	mild.HP = 40

	party := []*model.Character{h, hurt, mild}
	e := slime(5000)
	e.Atk = 0

	r.ResolveTurn(party, []*model.Enemy{e})

	if hurt.HP <= 10 {
		t.Errorf("most wounded ally not healed: HP = %d", hurt.HP)
	}
}

func TestRogueTargetsUnpoisoned(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Quinn the Hungry", "backstab", "poison_blade", "evasion")
	c.Class = data.ClassRogue
	c.MP = 10
	poisoned := slime(500)
	poisoned.ApplyPoison(3, 3)
	fresh := slime(500)
	fresh.Name = "Rat"

	r.ResolveTurn([]*model.Character{c}, []*model.Enemy{poisoned, fresh})

	if !fresh.IsPoisoned() {
		t.Error("rogue should poison the unpoisoned enemy")
	}
}

func TestMageUsesFireballOnGroups(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Ren the Lost", "fireball", "ice_shard", "arcane_blast")
	c.Class = data.ClassMage
	c.Mag = 14
	c.MP = 30
	a, b := slime(500), slime(500)
	b.Name = "Bat"

	log := r.ResolveTurn([]*model.Character{c}, []*model.Enemy{a, b})

	if !hasLog(log, "Fireball") {
		t.Fatalf("mage should AoE a group: %v", log)
	}
	if a.HP == a.MaxHP || b.HP == b.MaxHP {
		t.Error("fireball should hit every enemy")
	}
}

func TestBossEnrages(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Sage Ironjaw")
	c.Spd = 0
	boss := &model.Enemy{
		Name: "Demon Lord", HP: 40, MaxHP: 100, Atk: 20, Def: 14, Spd: 99,
		IsBoss: true, Special: string(data.SpecialEnrage),
	}

	log := r.ResolveTurn([]*model.Character{c}, []*model.Enemy{boss})

	if !boss.Enraged {
		t.Fatal("boss below half HP should enrage")
	}
	if boss.Atk != 26 { // floor(20 * 1.3)
		t.Errorf("Atk = %d; want 26", boss.Atk)
	}
	if !hasLog(log, "rage") {
		t.Errorf("missing enrage log: %v", log)
	}

	// enrage fires once
	r.ResolveTurn([]*model.Character{c}, []*model.Enemy{boss})
	if boss.Atk != 26 {
		t.Errorf("Atk = %d after second turn; enrage must not stack", boss.Atk)
	}
}

func TestVictoryStopsMidTurn(t *testing.T) {
	t.Parallel()

	r := testResolver()
	// two fast party members vs one 1-HP enemy: once the first kill lands,
	// the enemy must not act and the second member must not swing at a corpse
	a := fighter("Thorn the Bold")
	a.Atk = 100
	b := fighter("Uma the Sleepy")
	b.ID = 2
	b.Atk = 100
	e := slime(1)
	e.Spd = 0

	log := r.ResolveTurn([]*model.Character{a, b}, []*model.Enemy{e})

	attacks := 0
	for _, entry := range log {
		if strings.Contains(entry.Text, "attacks Slime") || strings.Contains(entry.Text, "on Slime") {
			attacks++
		}
	}
	if attacks != 1 {
		t.Errorf("attacks on the enemy = %d; want exactly 1 (combat decided mid-turn)", attacks)
	}
	if CheckResult([]*model.Character{a, b}, []*model.Enemy{e}) != OutcomeVictory {
		t.Error("expected victory")
	}
}

func TestFasterCombatantActsFirst(t *testing.T) {
	t.Parallel()

	r := testResolver()
	c := fighter("Vale Stormborn")
	c.Spd = 50
	c.Atk = 500 // one-shots the enemy before it can act
	e := slime(10)
	e.Spd = 1
	e.Atk = 1000

	r.ResolveTurn([]*model.Character{c}, []*model.Enemy{e})

	if !c.Alive {
		t.Error("faster character should have killed the enemy before its turn")
	}
	if e.IsAlive() {
		t.Error("enemy should be dead")
	}
}
