package combat

import (
	"github.com/udisondev/deeploop/internal/data"
	"github.com/udisondev/deeploop/internal/model"
)

// Action is a chosen skill use. Nil targets mean "resolver picks a default".
type Action struct {
	SkillID     string
	TargetEnemy *model.Enemy
	TargetAlly  *model.Character
}

// aiContext is the world view a rule evaluates against. Enemies holds only
// living enemies; Allies only active members.
type aiContext struct {
	r       *Resolver
	actor   *model.Character
	allies  []*model.Character
	enemies []*model.Enemy
}

// canUse gates a skill on knowledge and MP.
func (ctx *aiContext) canUse(skillID string) bool {
	def := data.Skill(skillID)
	return def != nil && ctx.actor.Knows(skillID) && ctx.actor.MP >= def.MPCost
}

// rule is one priority slot: returns a non-nil action to fire, nil to fall
// through to the next rule. Rules are evaluated strictly in order.
type rule func(ctx *aiContext) *Action

// chooseAction runs the universal rules, then the actor's class table.
// Returns nil when nothing fires, which means a basic attack.
func (r *Resolver) chooseAction(c *model.Character, party []*model.Character, aliveEnemies []*model.Enemy) *Action {
	ctx := &aiContext{
		r:       r,
		actor:   c,
		allies:  model.ActiveMembers(party),
		enemies: aliveEnemies,
	}

	for _, ru := range universalRules {
		if a := ru(ctx); a != nil {
			return a
		}
	}
	for _, ru := range classRules[c.Class] {
		if a := ru(ctx); a != nil {
			return a
		}
	}
	return nil
}

// universalRules fire for any class before the class table.
var universalRules = []rule{
	// second wind goes up once per encounter, before anything else
	func(ctx *aiContext) *Action {
		if ctx.canUse("second_wind") &&
			!ctx.actor.HasBuff(model.BuffSecondWind) &&
			!ctx.r.secondWindSpent[ctx.actor.ID] {
			return &Action{SkillID: "second_wind"}
		}
		return nil
	},
	// rally when half the living party is badly hurt
	func(ctx *aiContext) *Action {
		if !ctx.canUse("rally") {
			return nil
		}
		hurt := 0
		for _, m := range ctx.allies {
			if m.HP*5 < m.MaxHP*2 { // below 40%
				hurt++
			}
		}
		if hurt*2 >= len(ctx.allies) && hurt > 0 {
			return &Action{SkillID: "rally"}
		}
		return nil
	},
}

// classRules are the per-class priority tables. The four base classes follow
// their scripted tactics exactly; the unlockable classes use the same shape
// built from their kits.
var classRules = map[string][]rule{
	data.ClassHealer: {
		func(ctx *aiContext) *Action {
			if ctx.canUse("mass_heal") && countBelow(ctx.allies, 0.6) >= 2 {
				return &Action{SkillID: "mass_heal"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if w := lowestBelow(ctx.allies, 0.5); w != nil && ctx.canUse("heal") {
				return &Action{SkillID: "heal", TargetAlly: w}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if hpBelow(ctx.actor, 0.5) && ctx.canUse("life_drain") {
				return &Action{SkillID: "life_drain", TargetEnemy: highestHP(ctx.enemies)}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if !anyBuffNamed(ctx.allies, "Bless") && ctx.canUse("bless") {
				return &Action{SkillID: "bless"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if ctx.canUse("smite") {
				return &Action{SkillID: "smite"}
			}
			return nil
		},
	},

	data.ClassWarrior: {
		func(ctx *aiContext) *Action {
			if !anyBuffNamed(ctx.allies, "War Cry") && ctx.canUse("war_cry") {
				return &Action{SkillID: "war_cry"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if hpBelow(ctx.actor, 0.5) && ctx.canUse("fortify") && !ctx.actor.HasBuffNamed("Fortify") {
				return &Action{SkillID: "fortify"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if len(ctx.enemies) > 1 && ctx.canUse("whirlwind") {
				return &Action{SkillID: "whirlwind"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if len(ctx.enemies) == 1 && ctx.canUse("shield_bash") {
				return &Action{SkillID: "shield_bash", TargetEnemy: ctx.enemies[0]}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if ctx.canUse("slash") {
				return &Action{SkillID: "slash", TargetEnemy: highestHP(ctx.enemies)}
			}
			return nil
		},
	},

	data.ClassMage: {
		func(ctx *aiContext) *Action {
			if hpBelow(ctx.actor, 0.4) && ctx.canUse("mana_shield") && !ctx.actor.HasBuff(model.BuffManaShield) {
				return &Action{SkillID: "mana_shield"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if len(ctx.enemies) >= 2 && ctx.canUse("chain_lightning") {
				return &Action{SkillID: "chain_lightning"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if len(ctx.enemies) > 1 && ctx.canUse("fireball") {
				return &Action{SkillID: "fireball"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if len(ctx.enemies) == 1 && ctx.canUse("arcane_blast") {
				return &Action{SkillID: "arcane_blast", TargetEnemy: ctx.enemies[0]}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if ctx.canUse("ice_shard") {
				return &Action{SkillID: "ice_shard", TargetEnemy: highestHP(ctx.enemies)}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if ctx.canUse("fireball") {
				return &Action{SkillID: "fireball"}
			}
			return nil
		},
	},

	data.ClassRogue: {
		func(ctx *aiContext) *Action {
			if hpBelow(ctx.actor, 0.3) && ctx.canUse("evasion") && !ctx.actor.HasBuff(model.BuffDodge) {
				return &Action{SkillID: "evasion"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if u := unpoisoned(ctx.enemies); u != nil && ctx.canUse("poison_blade") {
				return &Action{SkillID: "poison_blade", TargetEnemy: u}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if ctx.canUse("shadow_strike") {
				return &Action{SkillID: "shadow_strike", TargetEnemy: highestHP(ctx.enemies)}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if ctx.canUse("backstab") {
				return &Action{SkillID: "backstab", TargetEnemy: highestHP(ctx.enemies)}
			}
			return nil
		},
	},

	data.ClassPaladin: {
		func(ctx *aiContext) *Action {
			if !anyBuffNamed(ctx.allies, "Divine Aura") && ctx.canUse("divine_aura") {
				return &Action{SkillID: "divine_aura"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if w := lowestBelow(ctx.allies, 0.3); w != nil && w != ctx.actor &&
				!hpBelow(ctx.actor, 0.6) && ctx.canUse("martyrdom") {
				return &Action{SkillID: "martyrdom", TargetAlly: w}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if w := lowestBelow(ctx.allies, 0.5); w != nil && ctx.canUse("lay_on_hands") {
				return &Action{SkillID: "lay_on_hands", TargetAlly: w}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if len(ctx.enemies) > 1 && ctx.canUse("consecrate") {
				return &Action{SkillID: "consecrate"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if ctx.canUse("holy_strike") {
				return &Action{SkillID: "holy_strike", TargetEnemy: highestHP(ctx.enemies)}
			}
			return nil
		},
	},

	data.ClassNecromancer: {
		func(ctx *aiContext) *Action {
			if hpBelow(ctx.actor, 0.5) && ctx.canUse("bone_shield") && !ctx.actor.HasBuffNamed("Bone Shield") {
				return &Action{SkillID: "bone_shield"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if !hpBelow(ctx.actor, 0.6) && ctx.canUse("death_pact") && !ctx.actor.HasBuffNamed("Death Pact") {
				return &Action{SkillID: "death_pact"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if len(ctx.enemies) > 1 && ctx.canUse("soul_siphon") {
				return &Action{SkillID: "soul_siphon"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if hpBelow(ctx.actor, 0.7) && ctx.canUse("drain_life") {
				return &Action{SkillID: "drain_life", TargetEnemy: highestHP(ctx.enemies)}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if ctx.canUse("soul_bolt") {
				return &Action{SkillID: "soul_bolt", TargetEnemy: highestHP(ctx.enemies)}
			}
			return nil
		},
	},

	data.ClassBerserker: {
		func(ctx *aiContext) *Action {
			if ctx.canUse("blood_rage") && !ctx.actor.HasBuffNamed("Blood Rage") {
				return &Action{SkillID: "blood_rage"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if hpBelow(ctx.actor, 0.4) && ctx.canUse("undying_fury") && !ctx.actor.HasBuff(model.BuffUndying) {
				return &Action{SkillID: "undying_fury"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if len(ctx.enemies) > 1 && ctx.canUse("rampage") {
				return &Action{SkillID: "rampage"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if len(ctx.enemies) > 1 && ctx.canUse("cleave") {
				return &Action{SkillID: "cleave"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if ctx.canUse("reckless_blow") {
				return &Action{SkillID: "reckless_blow", TargetEnemy: highestHP(ctx.enemies)}
			}
			return nil
		},
	},

	data.ClassMonk: {
		func(ctx *aiContext) *Action {
			if hpBelow(ctx.actor, 0.4) && ctx.canUse("inner_peace") {
				return &Action{SkillID: "inner_peace"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if countBelow(ctx.allies, 0.5) >= 2 && ctx.canUse("tranquility") {
				return &Action{SkillID: "tranquility"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if ctx.canUse("pressure_point") {
				if t := highestDef(ctx.enemies); t != nil && t.Def > 0 {
					return &Action{SkillID: "pressure_point", TargetEnemy: t}
				}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if len(ctx.enemies) > 1 && ctx.canUse("flurry") {
				return &Action{SkillID: "flurry"}
			}
			return nil
		},
		func(ctx *aiContext) *Action {
			if ctx.canUse("palm_strike") {
				return &Action{SkillID: "palm_strike", TargetEnemy: highestHP(ctx.enemies)}
			}
			return nil
		},
	},
}

// target/condition helpers

func hpBelow(c *model.Character, frac float64) bool {
	return float64(c.HP) < float64(c.MaxHP)*frac
}

func countBelow(members []*model.Character, frac float64) int {
	n := 0
	for _, m := range members {
		if hpBelow(m, frac) {
			n++
		}
	}
	return n
}

// lowestBelow returns the member with the lowest HP fraction, if that
// fraction is under the threshold.
func lowestBelow(members []*model.Character, frac float64) *model.Character {
	var worst *model.Character
	worstFrac := frac
	for _, m := range members {
		f := float64(m.HP) / float64(m.MaxHP)
		if f < worstFrac {
			worst, worstFrac = m, f
		}
	}
	return worst
}

// lowestHPFraction returns the member with the lowest HP fraction.
func lowestHPFraction(members []*model.Character) *model.Character {
	return lowestBelow(members, 2)
}

func highestHP(enemies []*model.Enemy) *model.Enemy {
	var best *model.Enemy
	for _, e := range enemies {
		if best == nil || e.HP > best.HP {
			best = e
		}
	}
	return best
}

func highestDef(enemies []*model.Enemy) *model.Enemy {
	var best *model.Enemy
	for _, e := range enemies {
		if best == nil || e.Def > best.Def {
			best = e
		}
	}
	return best
}

func unpoisoned(enemies []*model.Enemy) *model.Enemy {
	for _, e := range enemies {
		if !e.IsPoisoned() {
			return e
		}
	}
	return nil
}

func anyBuffNamed(members []*model.Character, name string) bool {
	for _, m := range members {
		if m.HasBuffNamed(name) {
			return true
		}
	}
	return false
}
