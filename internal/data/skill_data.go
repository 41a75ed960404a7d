package data

import "github.com/udisondev/deeploop/internal/model"

// SkillType is the combat dispatch category of a skill.
type SkillType string

const (
	SkillPhysical SkillType = "physical"
	SkillMagic    SkillType = "magic"
	SkillHeal     SkillType = "heal"
	SkillBuff     SkillType = "buff"
)

// TargetMode selects who a skill affects.
type TargetMode string

const (
	TargetSingle      TargetMode = "single"
	TargetAll         TargetMode = "all"
	TargetMulti       TargetMode = "multi"
	TargetParty       TargetMode = "party"
	TargetPartyPct    TargetMode = "party_pct"
	TargetSelf        TargetMode = "self"
	TargetSelfHeal    TargetMode = "self_heal"
	TargetSingleAlly  TargetMode = "single_ally"
)

// SkillEffect is a skill's secondary effect tag. The combat engine switches
// exhaustively over these; adding a kind means extending that switch.
type SkillEffect string

const (
	EffectNone       SkillEffect = ""
	EffectStun       SkillEffect = "stun"
	EffectPoison     SkillEffect = "poison"
	EffectSlow       SkillEffect = "slow"
	EffectLifeSteal  SkillEffect = "life_steal"
	EffectDodge      SkillEffect = "dodge"
	EffectManaShield SkillEffect = "mana_shield"
	EffectSecondWind SkillEffect = "second_wind"
	EffectDeathPact  SkillEffect = "death_pact"
	EffectUndying    SkillEffect = "undying"
)

// SkillDef is an immutable skill definition. A character's learned instance
// (model.SkillInstance) references one by id and tracks its own level/uses.
type SkillDef struct {
	ID          string
	Name        string
	Type        SkillType
	Target      TargetMode
	MPCost      int
	BasePower   float64
	Effect      SkillEffect
	Description string

	// optional numeric modifiers
	CritBonus        float64
	GuaranteedCrit   bool
	HitCount         int
	LifeStealRatio   float64
	HealPct          float64
	Duration         int
	BuffStat         model.Stat
	BuffAmount       float64
	SelfDamagePct    float64
	MissingHPScaling bool
	IgnoreDefense    bool
}

// baseSkills are the 24 class-kit skills every class ships with.
var baseSkills = []*SkillDef{
	// Warrior
	{ID: "slash", Name: "Slash", Type: SkillPhysical, Target: TargetSingle, MPCost: 0, BasePower: 1.5, Description: "A powerful sword swing."},
	{ID: "shield_bash", Name: "Shield Bash", Type: SkillPhysical, Target: TargetSingle, MPCost: 2, BasePower: 1.2, Effect: EffectStun, Description: "Bash with shield. May stun."},
	{ID: "war_cry", Name: "War Cry", Type: SkillBuff, Target: TargetParty, MPCost: 3, BuffStat: model.StatAtk, BuffAmount: 0.2, Duration: 3, Description: "Boosts party ATK."},

	// Mage
	{ID: "fireball", Name: "Fireball", Type: SkillMagic, Target: TargetAll, MPCost: 5, BasePower: 1.0, Description: "Fire damage to all enemies."},
	{ID: "ice_shard", Name: "Ice Shard", Type: SkillMagic, Target: TargetSingle, MPCost: 3, BasePower: 1.3, Effect: EffectSlow, Description: "Ice damage. Slows target."},
	{ID: "arcane_blast", Name: "Arcane Blast", Type: SkillMagic, Target: TargetSingle, MPCost: 8, BasePower: 2.0, Description: "Massive magic damage."},

	// Rogue
	{ID: "backstab", Name: "Backstab", Type: SkillPhysical, Target: TargetSingle, MPCost: 2, BasePower: 2.0, CritBonus: 0.3, Description: "High damage. High crit chance."},
	{ID: "poison_blade", Name: "Poison Blade", Type: SkillPhysical, Target: TargetSingle, MPCost: 3, BasePower: 1.0, Effect: EffectPoison, Description: "Poisons the target."},
	{ID: "evasion", Name: "Evasion", Type: SkillBuff, Target: TargetSelf, MPCost: 2, Effect: EffectDodge, Duration: 1, Description: "Dodge the next attack."},

	// Healer
	{ID: "heal", Name: "Heal", Type: SkillHeal, Target: TargetSingleAlly, MPCost: 4, BasePower: 1.5, Description: "Restore HP to an ally."},
	{ID: "bless", Name: "Bless", Type: SkillBuff, Target: TargetParty, MPCost: 5, BuffStat: model.StatDef, BuffAmount: 0.25, Duration: 3, Description: "Boosts party DEF."},
	{ID: "smite", Name: "Smite", Type: SkillMagic, Target: TargetSingle, MPCost: 3, BasePower: 1.5, Description: "Holy damage to one enemy."},

	// Paladin
	{ID: "holy_strike", Name: "Holy Strike", Type: SkillPhysical, Target: TargetSingle, MPCost: 2, BasePower: 1.4, Description: "A strike infused with holy power."},
	{ID: "lay_on_hands", Name: "Lay on Hands", Type: SkillHeal, Target: TargetSingleAlly, MPCost: 5, BasePower: 1.3, Description: "A powerful healing touch."},
	{ID: "divine_aura", Name: "Divine Aura", Type: SkillBuff, Target: TargetParty, MPCost: 6, BuffStat: model.StatDef, BuffAmount: 0.3, Duration: 4, Description: "Shields the party with holy light."},

	// Necromancer
	{ID: "soul_bolt", Name: "Soul Bolt", Type: SkillMagic, Target: TargetSingle, MPCost: 4, BasePower: 1.8, Description: "Tears at the target with dark energy."},
	{ID: "drain_life", Name: "Drain Life", Type: SkillMagic, Target: TargetSingle, MPCost: 5, BasePower: 1.3, Effect: EffectLifeSteal, LifeStealRatio: 0.5, Description: "Steals life from the target."},
	{ID: "bone_shield", Name: "Bone Shield", Type: SkillBuff, Target: TargetSelf, MPCost: 4, BuffStat: model.StatDef, BuffAmount: 0.5, Duration: 3, Description: "Surrounds self with a barrier of bones."},

	// Berserker
	{ID: "reckless_blow", Name: "Reckless Blow", Type: SkillPhysical, Target: TargetSingle, MPCost: 0, BasePower: 2.2, SelfDamagePct: 0.1, Description: "Devastating hit. Hurts yourself too."},
	{ID: "blood_rage", Name: "Blood Rage", Type: SkillBuff, Target: TargetSelf, MPCost: 2, BuffStat: model.StatAtk, BuffAmount: 0.5, Duration: 4, Description: "Fury made physical. Massively boosts ATK."},
	{ID: "cleave", Name: "Cleave", Type: SkillPhysical, Target: TargetAll, MPCost: 3, BasePower: 1.3, Description: "Slash through all enemies."},

	// Monk
	{ID: "palm_strike", Name: "Palm Strike", Type: SkillPhysical, Target: TargetSingle, MPCost: 1, BasePower: 1.6, Effect: EffectStun, Description: "Focused strike. May stun."},
	{ID: "inner_peace", Name: "Inner Peace", Type: SkillHeal, Target: TargetSelfHeal, MPCost: 3, HealPct: 0.3, Description: "Meditate briefly. Restore 30% HP."},
	{ID: "flurry", Name: "Flurry", Type: SkillPhysical, Target: TargetMulti, MPCost: 4, BasePower: 0.8, HitCount: 3, Description: "Three rapid strikes on random enemies."},
}

// learnableSkillDefs are the combat definitions of skills acquired in safe
// rooms. Merged into the same registry as the base kits at init.
var learnableSkillDefs = []*SkillDef{
	{ID: "fortify", Name: "Fortify", Type: SkillBuff, Target: TargetSelf, MPCost: 3, BuffStat: model.StatDef, BuffAmount: 0.4, Duration: 4, Description: "Greatly boosts own DEF."},
	{ID: "whirlwind", Name: "Whirlwind", Type: SkillPhysical, Target: TargetAll, MPCost: 5, BasePower: 1.2, Description: "Physical damage to all enemies."},
	{ID: "mana_shield", Name: "Mana Shield", Type: SkillBuff, Target: TargetSelf, MPCost: 4, Effect: EffectManaShield, Duration: 3, Description: "Absorb damage using MP."},
	{ID: "chain_lightning", Name: "Chain Lightning", Type: SkillMagic, Target: TargetMulti, MPCost: 6, BasePower: 1.5, HitCount: 2, Description: "Lightning strikes 2 random enemies."},
	{ID: "smoke_bomb", Name: "Smoke Bomb", Type: SkillBuff, Target: TargetParty, MPCost: 4, Effect: EffectDodge, Duration: 2, Description: "Grants dodge to entire party."},
	{ID: "shadow_strike", Name: "Shadow Strike", Type: SkillPhysical, Target: TargetSingle, MPCost: 6, BasePower: 2.5, GuaranteedCrit: true, Description: "A guaranteed critical strike."},
	{ID: "mass_heal", Name: "Mass Heal", Type: SkillHeal, Target: TargetParty, MPCost: 8, BasePower: 1.0, Description: "Restore HP to all allies."},
	{ID: "life_drain", Name: "Life Drain", Type: SkillMagic, Target: TargetSingle, MPCost: 5, BasePower: 1.3, Effect: EffectLifeSteal, LifeStealRatio: 0.5, Description: "Magic damage. Heals self for half dealt."},
	{ID: "consecrate", Name: "Consecrate", Type: SkillMagic, Target: TargetAll, MPCost: 7, BasePower: 1.2, Description: "Holy fire damages all enemies."},
	{ID: "martyrdom", Name: "Martyrdom", Type: SkillHeal, Target: TargetSingleAlly, MPCost: 0, SelfDamagePct: 0.4, BasePower: 99, Description: "Sacrifice 40% HP to fully heal an ally."},
	{ID: "soul_siphon", Name: "Soul Siphon", Type: SkillMagic, Target: TargetAll, MPCost: 8, BasePower: 0.9, Effect: EffectLifeSteal, LifeStealRatio: 0.3, Description: "Dark AoE. Heals self for each enemy hit."},
	{ID: "death_pact", Name: "Death Pact", Type: SkillBuff, Target: TargetSelf, MPCost: 5, Effect: EffectDeathPact, BuffStat: model.StatMag, BuffAmount: 0.8, Duration: 5, SelfDamagePct: 0.3, Description: "Sacrifice 30% max HP. Massively boost MAG."},
	{ID: "rampage", Name: "Rampage", Type: SkillPhysical, Target: TargetAll, MPCost: 2, BasePower: 1.0, MissingHPScaling: true, Description: "AoE that hits harder the lower your HP."},
	{ID: "undying_fury", Name: "Undying Fury", Type: SkillBuff, Target: TargetSelf, MPCost: 0, Effect: EffectUndying, Duration: 99, Description: "Survive one lethal hit with 1 HP."},
	{ID: "pressure_point", Name: "Pressure Point", Type: SkillPhysical, Target: TargetSingle, MPCost: 3, BasePower: 1.5, IgnoreDefense: true, Description: "Precise strike that ignores defense."},
	{ID: "tranquility", Name: "Tranquility", Type: SkillBuff, Target: TargetParty, MPCost: 6, Effect: EffectDodge, Duration: 1, Description: "Entire party dodges for 1 turn."},
	{ID: "rally", Name: "Rally", Type: SkillHeal, Target: TargetPartyPct, MPCost: 6, HealPct: 0.15, Description: "Heal entire party for 15% max HP."},
	{ID: "second_wind", Name: "Second Wind", Type: SkillBuff, Target: TargetSelf, MPCost: 0, Effect: EffectSecondWind, Duration: 99, Description: "Auto-heal 25% HP when below 20%. Once per combat."},
}

// skillTable is the merged immutable registry, built once at init from the
// base kits and the learnable definitions.
var skillTable map[string]*SkillDef

func init() {
	skillTable = make(map[string]*SkillDef, len(baseSkills)+len(learnableSkillDefs))
	for _, s := range baseSkills {
		skillTable[s.ID] = s
	}
	for _, s := range learnableSkillDefs {
		skillTable[s.ID] = s
	}
}

// Skill returns the merged skill definition, or nil for an unknown id.
func Skill(id string) *SkillDef {
	return skillTable[id]
}

// allClasses lists every class id, for cross-class learnables.
var allClasses = []string{
	ClassWarrior, ClassMage, ClassRogue, ClassHealer,
	ClassPaladin, ClassNecromancer, ClassBerserker, ClassMonk,
}

// LearnableSkill is a safe-room shop entry: which classes may learn the
// skill, its skill-point cost and an optional achievement gate.
type LearnableSkill struct {
	SkillID        string
	Classes        []string
	Cost           int
	AchievementReq string
}

// LearnableSkills is every skill purchasable in safe rooms: the advanced
// skills plus the base class kits (so a skill skipped at creation can be
// picked up for 1 point).
var LearnableSkills = buildLearnables()

func buildLearnables() []LearnableSkill {
	ls := []LearnableSkill{
		{SkillID: "fortify", Classes: []string{ClassWarrior}, Cost: 2},
		{SkillID: "whirlwind", Classes: []string{ClassWarrior}, Cost: 3, AchievementReq: "killer_100"},
		{SkillID: "mana_shield", Classes: []string{ClassMage}, Cost: 2},
		{SkillID: "chain_lightning", Classes: []string{ClassMage}, Cost: 3, AchievementReq: "floor_10"},
		{SkillID: "smoke_bomb", Classes: []string{ClassRogue}, Cost: 2},
		{SkillID: "shadow_strike", Classes: []string{ClassRogue}, Cost: 3, AchievementReq: "boss_slayer"},
		{SkillID: "mass_heal", Classes: []string{ClassHealer}, Cost: 2, AchievementReq: "floor_5"},
		{SkillID: "life_drain", Classes: []string{ClassHealer}, Cost: 3, AchievementReq: "veteran"},
		{SkillID: "consecrate", Classes: []string{ClassPaladin}, Cost: 3},
		{SkillID: "martyrdom", Classes: []string{ClassPaladin}, Cost: 4, AchievementReq: "floor_25"},
		{SkillID: "soul_siphon", Classes: []string{ClassNecromancer}, Cost: 3},
		{SkillID: "death_pact", Classes: []string{ClassNecromancer}, Cost: 4, AchievementReq: "deaths_10"},
		{SkillID: "rampage", Classes: []string{ClassBerserker}, Cost: 3},
		{SkillID: "undying_fury", Classes: []string{ClassBerserker}, Cost: 4, AchievementReq: "killer_100"},
		{SkillID: "pressure_point", Classes: []string{ClassMonk}, Cost: 3},
		{SkillID: "tranquility", Classes: []string{ClassMonk}, Cost: 4, AchievementReq: "veteran"},
		{SkillID: "rally", Classes: allClasses, Cost: 3, AchievementReq: "deaths_10"},
		{SkillID: "second_wind", Classes: allClasses, Cost: 3, AchievementReq: "floor_25"},
	}
	// Base class kits at cost 1, so the third skill not rolled at creation
	// stays learnable.
	for _, id := range classOrder {
		cls := classTable[id]
		for _, skillID := range cls.Skills {
			ls = append(ls, LearnableSkill{SkillID: skillID, Classes: []string{id}, Cost: 1})
		}
	}
	return ls
}
