// Package combat resolves encounters one turn at a time: turn ordering,
// the class AI policy, skill effect application and enemy attacks. The
// resolver mutates party and enemies in place and returns player-visible
// log entries; the orchestrator owns phase transitions.
package combat

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/udisondev/deeploop/internal/data"
	"github.com/udisondev/deeploop/internal/game/formula"
	"github.com/udisondev/deeploop/internal/model"
)

// Outcome of an encounter after a resolved turn.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

const (
	critMult        = 1.5
	stunChance      = 0.3
	poisonAtkRatio  = 0.3
	poisonDuration  = 3
	slowMult        = 0.7
	enrageAtkMult   = 1.3
	secondWindHeal  = 0.25
	skillLevelPhys  = 0.1
	skillLevelHeal  = 0.15
)

// Resolver runs combat turns. It carries per-encounter bookkeeping (one
// second-wind activation per member per encounter), so the orchestrator
// calls Reset when a new encounter begins.
type Resolver struct {
	rng             *rand.Rand
	secondWindSpent map[int]bool
}

// NewResolver returns a resolver driven by the given random source.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng, secondWindSpent: map[int]bool{}}
}

// Reset clears per-encounter state. Call when a combat room is revealed.
func (r *Resolver) Reset() {
	r.secondWindSpent = map[int]bool{}
}

// combatant is one slot of the turn order, party member or enemy.
type combatant struct {
	char  *model.Character
	enemy *model.Enemy
	spd   int
}

// ResolveTurn runs exactly one full combat turn and returns its log.
// The turn order is fixed up front and not rebuilt as combatants die;
// dead entries are skipped at execution time. Outcome is checked after
// every individual action, so a decided encounter stops mid-order.
func (r *Resolver) ResolveTurn(party []*model.Character, enemies []*model.Enemy) []model.LogEntry {
	var log []model.LogEntry

	order := make([]combatant, 0, len(party)+len(enemies))
	for _, c := range party {
		if c.IsActive() {
			order = append(order, combatant{char: c, spd: c.EffectiveStat(model.StatSpd)})
		}
	}
	for _, e := range enemies {
		if e.IsAlive() {
			order = append(order, combatant{enemy: e, spd: e.Spd})
		}
	}
	// shuffle first so the stable sort breaks speed ties uniformly
	r.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].spd > order[j].spd
	})

	for _, cb := range order {
		if cb.char != nil && !cb.char.IsActive() {
			continue
		}
		if cb.enemy != nil && !cb.enemy.IsAlive() {
			continue
		}

		if cb.enemy != nil && cb.enemy.Stunned {
			cb.enemy.Stunned = false
			log = append(log, entry(model.LogInfo, "%s is stunned and cannot act!", cb.enemy.Name))
			continue
		}

		if cb.char != nil {
			log = append(log, r.characterTurn(cb.char, party, enemies)...)
		} else {
			log = append(log, r.enemyTurn(cb.enemy, party)...)
		}

		if CheckResult(party, enemies) != OutcomeOngoing {
			break
		}
	}

	// end-of-turn housekeeping: buffs tick for everyone, acted or not
	for _, c := range party {
		c.TickBuffs()
	}
	for _, e := range enemies {
		if e.IsPoisoned() && e.IsAlive() {
			e.ApplyDamage(e.Poison)
			log = append(log, entry(model.LogDamage, "%s takes %d poison damage!", e.Name, e.Poison))
			e.PoisonTurns--
			if e.PoisonTurns <= 0 {
				e.Poison = 0
			}
		}
	}

	return log
}

// CheckResult reports whether the encounter is decided.
func CheckResult(party []*model.Character, enemies []*model.Enemy) Outcome {
	if len(model.AliveEnemies(enemies)) == 0 {
		return OutcomeVictory
	}
	for _, c := range party {
		if c.IsActive() {
			return OutcomeOngoing
		}
	}
	return OutcomeDefeat
}

func entry(t model.LogType, format string, args ...any) model.LogEntry {
	return model.LogEntry{Type: t, Text: fmt.Sprintf(format, args...)}
}

// characterTurn picks an action through the class AI and applies it.
func (r *Resolver) characterTurn(c *model.Character, party []*model.Character, enemies []*model.Enemy) []model.LogEntry {
	alive := model.AliveEnemies(enemies)
	if len(alive) == 0 {
		return nil
	}

	action := r.chooseAction(c, party, alive)
	if action == nil {
		return r.basicAttack(c, alive)
	}

	def := data.Skill(action.SkillID)
	c.SpendMP(def.MPCost)
	if inst := c.Skill(action.SkillID); inst != nil {
		inst.Uses++
		gain := 1.0
		if race := data.Race(c.Race); race != nil && race.Perk == data.PerkSkillXPBonus {
			gain += race.PerkValue
		}
		inst.XP += gain
	}
	if action.SkillID == "second_wind" {
		r.secondWindSpent[c.ID] = true
	}

	switch def.Type {
	case data.SkillPhysical:
		return r.applyPhysical(c, def, action, enemies)
	case data.SkillMagic:
		return r.applyMagic(c, def, action, enemies)
	case data.SkillHeal:
		return r.applyHeal(c, def, action, party)
	case data.SkillBuff:
		return r.applyBuff(c, def, party)
	default:
		return nil
	}
}

// basicAttack is the fallback when no AI rule fires.
func (r *Resolver) basicAttack(c *model.Character, alive []*model.Enemy) []model.LogEntry {
	target := formula.Choice(r.rng, alive)
	atk := c.EffectiveStat(model.StatAtk)
	dmg := formula.Damage(r.rng, atk, target.Def)
	dmg, crit := r.applyCrit(c, dmg, 0, false)

	var log []model.LogEntry
	if crit {
		log = append(log, entry(model.LogDamage, "CRITICAL! %s attacks %s for %d damage!", c.Name, target.Name, dmg))
	} else {
		log = append(log, entry(model.LogDamage, "%s attacks %s for %d damage!", c.Name, target.Name, dmg))
	}
	log = append(log, r.dealPhysical(c, target, dmg, atk)...)
	return log
}

// applyCrit rolls the critical multiplier: guaranteed flag, or skill crit
// bonus plus the attacker's critChance enchantments.
func (r *Resolver) applyCrit(c *model.Character, dmg int, critBonus float64, guaranteed bool) (int, bool) {
	chance := critBonus + c.EnchantmentBonus(model.EnchantCritChance)
	if guaranteed || (chance > 0 && r.rng.Float64() < chance) {
		return int(math.Floor(float64(dmg) * critMult)), true
	}
	return dmg, false
}

// dealPhysical applies already-computed physical damage to the target and
// the attacker's on-hit enchantment effects (life steal, poison chance).
func (r *Resolver) dealPhysical(c *model.Character, target *model.Enemy, dmg, atkUsed int) []model.LogEntry {
	var log []model.LogEntry
	if target.ApplyDamage(dmg) {
		log = append(log, entry(model.LogInfo, "%s is defeated!", target.Name))
	}

	if ls := c.EnchantmentBonus(model.EnchantLifeSteal); ls > 0 && dmg > 0 {
		if healed := c.Heal(int(math.Floor(float64(dmg) * ls))); healed > 0 {
			log = append(log, entry(model.LogHeal, "%s drains %d HP!", c.Name, healed))
		}
	}
	if pc := c.EnchantmentBonus(model.EnchantPoisonChance); pc > 0 && target.IsAlive() && !target.IsPoisoned() {
		if r.rng.Float64() < pc {
			target.ApplyPoison(int(math.Floor(float64(atkUsed)*poisonAtkRatio)), poisonDuration)
			log = append(log, entry(model.LogInfo, "%s is poisoned!", target.Name))
		}
	}
	return log
}

func (r *Resolver) applyPhysical(c *model.Character, def *data.SkillDef, action *Action, enemies []*model.Enemy) []model.LogEntry {
	var log []model.LogEntry
	atk := c.EffectiveStat(model.StatAtk)
	power := def.BasePower
	if inst := c.Skill(def.ID); inst != nil {
		power += float64(inst.Level-1) * skillLevelPhys
	}
	if def.MissingHPScaling && c.MaxHP > 0 {
		missing := 1 - float64(c.HP)/float64(c.MaxHP)
		power *= 1 + missing
	}

	// self sacrifice, never below 1 HP
	if def.SelfDamagePct > 0 {
		self := int(math.Floor(float64(c.MaxHP) * def.SelfDamagePct))
		if c.HP-self < 1 {
			self = c.HP - 1
		}
		if self > 0 {
			c.HP -= self
			log = append(log, entry(model.LogDamage, "%s sacrifices %d HP!", c.Name, self))
		}
	}

	hit := func(target *model.Enemy) {
		targetDef := target.Def
		if def.IgnoreDefense {
			targetDef = 0
		}
		dmg := formula.Damage(r.rng, int(math.Floor(float64(atk)*power)), targetDef)
		dmg, crit := r.applyCrit(c, dmg, def.CritBonus, def.GuaranteedCrit)
		if crit {
			log = append(log, entry(model.LogDamage, "CRITICAL! %s uses %s on %s for %d damage!", c.Name, def.Name, target.Name, dmg))
		} else {
			log = append(log, entry(model.LogDamage, "%s uses %s on %s for %d damage!", c.Name, def.Name, target.Name, dmg))
		}
		log = append(log, r.dealPhysical(c, target, dmg, atk)...)

		if def.Effect == data.EffectStun && target.IsAlive() && r.rng.Float64() < stunChance {
			target.Stunned = true
			log = append(log, entry(model.LogInfo, "%s is stunned!", target.Name))
		}
		if def.Effect == data.EffectPoison && target.IsAlive() {
			target.ApplyPoison(int(math.Floor(float64(atk)*poisonAtkRatio)), poisonDuration)
			log = append(log, entry(model.LogInfo, "%s is poisoned!", target.Name))
		}
	}

	switch def.Target {
	case data.TargetAll:
		for _, target := range model.AliveEnemies(enemies) {
			hit(target)
		}
	case data.TargetMulti:
		hits := def.HitCount
		if hits < 1 {
			hits = 1
		}
		for i := 0; i < hits; i++ {
			alive := model.AliveEnemies(enemies)
			if len(alive) == 0 {
				break
			}
			hit(formula.Choice(r.rng, alive))
		}
	default:
		target := action.TargetEnemy
		if target == nil || !target.IsAlive() {
			alive := model.AliveEnemies(enemies)
			if len(alive) == 0 {
				return log
			}
			target = formula.Choice(r.rng, alive)
		}
		hit(target)
	}
	return log
}

func (r *Resolver) applyMagic(c *model.Character, def *data.SkillDef, action *Action, enemies []*model.Enemy) []model.LogEntry {
	var log []model.LogEntry
	mag := c.EffectiveStat(model.StatMag)
	power := def.BasePower
	if inst := c.Skill(def.ID); inst != nil {
		power += float64(inst.Level-1) * skillLevelPhys
	}

	hit := func(target *model.Enemy) {
		dmg := formula.MagicDamage(r.rng, int(math.Floor(float64(mag)*power)), target.Def)
		log = append(log, entry(model.LogDamage, "%s's %s hits %s for %d damage!", c.Name, def.Name, target.Name, dmg))
		if target.ApplyDamage(dmg) {
			log = append(log, entry(model.LogInfo, "%s is defeated!", target.Name))
		}
		if def.Effect == data.EffectSlow && target.IsAlive() {
			target.Spd = int(math.Floor(float64(target.Spd) * slowMult))
			log = append(log, entry(model.LogInfo, "%s is slowed!", target.Name))
		}
		if def.Effect == data.EffectLifeSteal && dmg > 0 {
			if healed := c.Heal(int(math.Floor(float64(dmg) * def.LifeStealRatio))); healed > 0 {
				log = append(log, entry(model.LogHeal, "%s drains %d HP!", c.Name, healed))
			}
		}
	}

	switch def.Target {
	case data.TargetAll:
		for _, target := range model.AliveEnemies(enemies) {
			hit(target)
		}
	case data.TargetMulti:
		hits := def.HitCount
		if hits < 1 {
			hits = 1
		}
		for i := 0; i < hits; i++ {
			alive := model.AliveEnemies(enemies)
			if len(alive) == 0 {
				break
			}
			hit(formula.Choice(r.rng, alive))
		}
	default:
		target := action.TargetEnemy
		if target == nil || !target.IsAlive() {
			alive := model.AliveEnemies(enemies)
			if len(alive) == 0 {
				return log
			}
			target = formula.Choice(r.rng, alive)
		}
		hit(target)
	}
	return log
}

func (r *Resolver) applyHeal(c *model.Character, def *data.SkillDef, action *Action, party []*model.Character) []model.LogEntry {
	var log []model.LogEntry
	mag := c.EffectiveStat(model.StatMag)
	power := def.BasePower
	if inst := c.Skill(def.ID); inst != nil {
		power += float64(inst.Level-1) * skillLevelHeal
	}
	active := model.ActiveMembers(party)

	switch def.Target {
	case data.TargetParty:
		amt := int(math.Floor(float64(mag) * power))
		for _, m := range active {
			if healed := m.Heal(amt); healed > 0 {
				log = append(log, entry(model.LogHeal, "%s heals %s for %d HP!", c.Name, m.Name, healed))
			}
		}
	case data.TargetPartyPct:
		for _, m := range active {
			if healed := m.Heal(int(math.Floor(float64(m.MaxHP) * def.HealPct))); healed > 0 {
				log = append(log, entry(model.LogHeal, "%s heals %s for %d HP!", c.Name, m.Name, healed))
			}
		}
	case data.TargetSelfHeal:
		if healed := c.Heal(int(math.Floor(float64(c.MaxHP) * def.HealPct))); healed > 0 {
			log = append(log, entry(model.LogHeal, "%s recovers %d HP!", c.Name, healed))
		}
	default: // single_ally
		target := action.TargetAlly
		if target == nil || !target.IsActive() {
			target = lowestHPFraction(active)
		}
		if target == nil {
			return log
		}
		// martyrdom trades the caster's HP for a full heal
		if def.SelfDamagePct > 0 {
			self := int(math.Floor(float64(c.MaxHP) * def.SelfDamagePct))
			if c.HP-self < 1 {
				self = c.HP - 1
			}
			if self > 0 {
				c.HP -= self
				log = append(log, entry(model.LogDamage, "%s sacrifices %d HP!", c.Name, self))
			}
		}
		amt := int(math.Floor(float64(mag) * power))
		if healed := target.Heal(amt); healed > 0 {
			log = append(log, entry(model.LogHeal, "%s heals %s for %d HP!", c.Name, target.Name, healed))
		}
	}
	return log
}

func (r *Resolver) applyBuff(c *model.Character, def *data.SkillDef, party []*model.Character) []model.LogEntry {
	var log []model.LogEntry
	active := model.ActiveMembers(party)

	switch def.Effect {
	case data.EffectDodge:
		if def.Target == data.TargetParty {
			for _, m := range active {
				m.AddBuff(model.Buff{Stat: model.BuffDodge, Amount: 1, Turns: def.Duration, Name: def.Name})
			}
			log = append(log, entry(model.LogInfo, "%s uses %s! The party prepares to evade!", c.Name, def.Name))
		} else {
			c.AddBuff(model.Buff{Stat: model.BuffDodge, Amount: 1, Turns: def.Duration, Name: def.Name})
			log = append(log, entry(model.LogInfo, "%s prepares to evade!", c.Name))
		}
	case data.EffectManaShield:
		c.AddBuff(model.Buff{Stat: model.BuffManaShield, Amount: 1, Turns: def.Duration, Name: def.Name})
		log = append(log, entry(model.LogInfo, "%s raises a shimmering mana shield!", c.Name))
	case data.EffectSecondWind:
		c.AddBuff(model.Buff{Stat: model.BuffSecondWind, Amount: 1, Turns: def.Duration, Name: def.Name})
		log = append(log, entry(model.LogInfo, "%s steadies for a second wind!", c.Name))
	case data.EffectUndying:
		c.AddBuff(model.Buff{Stat: model.BuffUndying, Amount: 1, Turns: def.Duration, Name: def.Name})
		log = append(log, entry(model.LogInfo, "%s refuses to die!", c.Name))
	case data.EffectDeathPact:
		// sacrifice max HP permanently for the run, then the stat buff
		cut := int(math.Floor(float64(c.MaxHP) * def.SelfDamagePct))
		if c.MaxHP-cut < 1 {
			cut = c.MaxHP - 1
		}
		c.MaxHP -= cut
		if c.HP > c.MaxHP {
			c.HP = c.MaxHP
		}
		log = append(log, entry(model.LogDamage, "%s seals a death pact, trading %d max HP for power!", c.Name, cut))
		amount := r.buffAmount(c, def)
		c.AddBuff(model.Buff{Stat: def.BuffStat, Amount: amount, Turns: def.Duration, Name: def.Name})
	default:
		amount := r.buffAmount(c, def)
		if def.Target == data.TargetParty {
			for _, m := range active {
				m.AddBuff(model.Buff{Stat: def.BuffStat, Amount: amount, Turns: def.Duration, Name: def.Name})
			}
			log = append(log, entry(model.LogInfo, "%s uses %s! Party %s increased!", c.Name, def.Name, statLabel(def.BuffStat)))
		} else {
			c.AddBuff(model.Buff{Stat: def.BuffStat, Amount: amount, Turns: def.Duration, Name: def.Name})
			log = append(log, entry(model.LogInfo, "%s uses %s!", c.Name, def.Name))
		}
	}
	return log
}

// buffAmount scales a stat buff with the caster's power: the buff multiplier
// times (atk or def, matching the buffed stat) plus mag.
func (r *Resolver) buffAmount(c *model.Character, def *data.SkillDef) int {
	base := model.StatDef
	if def.BuffStat == model.StatAtk {
		base = model.StatAtk
	}
	return int(math.Floor(def.BuffAmount *
		float64(c.EffectiveStat(base)+c.EffectiveStat(model.StatMag))))
}

func statLabel(s model.Stat) string {
	switch s {
	case model.StatAtk:
		return "ATK"
	case model.StatDef:
		return "DEF"
	case model.StatSpd:
		return "SPD"
	case model.StatMag:
		return "MAG"
	default:
		return string(s)
	}
}

// enemyTurn runs one enemy's attack against a random living member.
func (r *Resolver) enemyTurn(e *model.Enemy, party []*model.Character) []model.LogEntry {
	var log []model.LogEntry

	if e.Special == string(data.SpecialEnrage) && !e.Enraged && e.HP < e.MaxHP/2 {
		e.Atk = int(math.Floor(float64(e.Atk) * enrageAtkMult))
		e.Enraged = true
		log = append(log, entry(model.LogImportant, "%s flies into a rage!", e.Name))
	}

	active := model.ActiveMembers(party)
	if len(active) == 0 {
		return log
	}
	target := formula.Choice(r.rng, active)

	// dodge consumes before any damage math
	if target.HasBuff(model.BuffDodge) {
		target.RemoveBuff(model.BuffDodge)
		log = append(log, entry(model.LogInfo, "%s dodges %s's attack!", target.Name, e.Name))
		return log
	}

	dmg := formula.Damage(r.rng, e.Atk, target.EffectiveStat(model.StatDef))

	if race := data.Race(target.Race); race != nil && race.Perk == data.PerkDamageReduction {
		dmg = int(math.Floor(float64(dmg) * (1 - race.PerkValue)))
	}
	if dr := target.EnchantmentBonus(model.EnchantDamageReduction); dr > 0 {
		if dr > 0.9 {
			dr = 0.9
		}
		dmg = int(math.Floor(float64(dmg) * (1 - dr)))
	}

	// mana shield absorbs 1:1 from MP and breaks when MP runs out
	if target.HasBuff(model.BuffManaShield) && target.MP > 0 && dmg > 0 {
		absorb := dmg
		if absorb > target.MP {
			absorb = target.MP
		}
		target.SpendMP(absorb)
		dmg -= absorb
		log = append(log, entry(model.LogInfo, "%s's mana shield absorbs %d damage!", target.Name, absorb))
		if target.MP == 0 {
			target.RemoveBuff(model.BuffManaShield)
			log = append(log, entry(model.LogInfo, "%s's mana shield shatters!", target.Name))
		}
	}

	// undying keeps the target at 1 HP through one lethal hit
	if dmg >= target.HP && target.HasBuff(model.BuffUndying) {
		target.HP = 1
		target.RemoveBuff(model.BuffUndying)
		log = append(log, entry(model.LogImportant, "%s refuses to fall! (1 HP)", target.Name))
		return log
	}

	fell := target.ApplyDamage(dmg)
	log = append(log, entry(model.LogDamage, "%s attacks %s for %d damage!", e.Name, target.Name, dmg))

	if fell {
		log = append(log, entry(model.LogImportant, "%s has fallen!", target.Name))
		return log
	}

	// second wind: one auto-heal per encounter when dropping below 20%
	if target.HasBuff(model.BuffSecondWind) && target.HP*5 < target.MaxHP {
		target.RemoveBuff(model.BuffSecondWind)
		healed := target.Heal(int(math.Floor(float64(target.MaxHP) * secondWindHeal)))
		log = append(log, entry(model.LogHeal, "%s catches a second wind, recovering %d HP!", target.Name, healed))
	}

	return log
}
