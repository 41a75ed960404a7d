package engine

import (
	"fmt"
	"math"

	"github.com/udisondev/deeploop/internal/data"
	"github.com/udisondev/deeploop/internal/game/formula"
	"github.com/udisondev/deeploop/internal/game/party"
	"github.com/udisondev/deeploop/internal/model"
)

// handleEvent resolves an event room, once. The event text is always
// logged; the effect switch is exhaustive over the registry kinds.
func (e *Engine) handleEvent(room *model.Room) {
	if room.Resolved {
		return
	}
	room.Resolved = true

	event := data.Event(room.EventID)
	if event == nil {
		return
	}
	e.state.AddLog(model.LogInfo, event.Text)

	floorNum := e.state.Dungeon.Floor.Number

	switch event.Effect {
	case data.EventHeal:
		if e.healingDisabled() {
			e.state.AddLog(model.LogInfo, "The waters shimmer but the curse prevents healing.")
			return
		}
		party.Heal(e.state.Party, event.Value)
		e.state.AddLog(model.LogHeal, "The party feels rejuvenated!")

	case data.EventDamage:
		e.damageParty(event.Value)
		e.state.AddLog(model.LogDamage, "The party takes damage!")

	case data.EventBuffAtk:
		e.buffParty("Shrine", 10, model.StatAtk, int(event.Value))
		e.state.AddLog(model.LogInfo, fmt.Sprintf("The party gains +%d ATK for a while.", int(event.Value)))

	case data.EventBuffDef:
		e.buffParty("Statue", 10, model.StatDef, int(event.Value))
		e.state.AddLog(model.LogInfo, fmt.Sprintf("The party gains +%d DEF for a while.", int(event.Value)))

	case data.EventBuffSpd:
		e.buffParty("Mirror Pool", 10, model.StatSpd, int(event.Value))
		e.state.AddLog(model.LogInfo, fmt.Sprintf("The party gains +%d SPD for a while.", int(event.Value)))

	case data.EventBuffAll:
		e.buffParty("Campfire", 10, model.StatAtk, int(event.Value))
		e.buffParty("Campfire", 10, model.StatDef, int(event.Value))
		e.state.AddLog(model.LogInfo, fmt.Sprintf("The party gains +%d ATK and DEF for a while.", int(event.Value)))

	case data.EventRandom:
		switch roll := e.rng.Float64(); {
		case roll < 0.4:
			if !e.healingDisabled() {
				party.Heal(e.state.Party, 0.2)
			}
			e.state.AddLog(model.LogHeal, "The mushroom tastes surprisingly restorative!")
		case roll < 0.7:
			e.buffParty("Mushroom", 15, model.StatMag, 4)
			e.state.AddLog(model.LogInfo, "Colors sharpen. The party gains +4 MAG for a while.")
		default:
			e.damageParty(0.1)
			e.state.AddLog(model.LogDamage, "That was definitely poisonous. The party takes damage!")
		}

	case data.EventGamble:
		bet := 50 + floorNum*10
		if bet > e.state.Inventory.Gold {
			bet = e.state.Inventory.Gold
		}
		if bet <= 0 {
			e.state.AddLog(model.LogInfo, "You have nothing to wager...")
			return
		}
		switch roll := e.rng.Float64(); {
		case roll < 0.4:
			won := bet * 2
			e.state.Inventory.Gold += won
			e.state.Stats.TotalGold += won
			e.state.AddLog(model.LogGold, fmt.Sprintf("The dice land well! Won %d gold!", won))
		case roll < 0.7:
			e.state.AddLog(model.LogInfo, "A draw. The cloaked figure shrugs.")
		default:
			e.state.Inventory.Gold -= bet
			if e.state.Inventory.Gold < 0 {
				e.state.Inventory.Gold = 0
			}
			e.state.AddLog(model.LogDamage, fmt.Sprintf("The dice betray you. Lost %d gold.", bet))
		}

	case data.EventSkillXP:
		for _, c := range e.state.Party {
			if !c.Alive {
				continue
			}
			for _, s := range c.Skills {
				s.Uses += int(event.Value)
			}
		}
		e.state.AddLog(model.LogInfo, "The party studies the tomes. Skills feel closer to mastery.")

	case data.EventCursedTreasure:
		e.damageParty(0.2)
		gold := 20 + floorNum*8
		e.state.Inventory.Gold += gold
		e.state.Stats.TotalGold += gold
		e.state.AddLog(model.LogDamage, "Dark energy lashes out from the chest!")
		e.state.AddLog(model.LogGold, fmt.Sprintf("Inside: %d gold.", gold))

	case data.EventBonusXP:
		bonus := int(math.Floor(20 * (1 + float64(floorNum)*event.Value)))
		for _, c := range e.state.Party {
			if c.Alive {
				c.XP += bonus
			}
		}
		e.state.AddLog(model.LogInfo, fmt.Sprintf("The spirit shares its memories. +%d XP to the party.", bonus))

	case data.EventSacrificeGold:
		cost := 30 + floorNum*5
		if e.state.Inventory.Gold < cost {
			e.state.AddLog(model.LogInfo, "The altar's demand goes unanswered. It falls silent.")
			return
		}
		e.state.Inventory.Gold -= cost
		if !e.healingDisabled() {
			party.Heal(e.state.Party, 0.4)
		}
		e.buffParty("Altar", 15, model.StatAtk, 4)
		e.buffParty("Altar", 15, model.StatMag, 4)
		e.state.AddLog(model.LogGold, fmt.Sprintf("The altar accepts %d gold.", cost))
		e.state.AddLog(model.LogHeal, "The party is blessed with vigor and power!")
	}
}

// handleTrap resolves a trap room, once. Trap damage is reduced by the
// trap_sense upgrade and never kills: HP floors at 1.
func (e *Engine) handleTrap(room *model.Room) {
	if room.Resolved {
		return
	}
	room.Resolved = true

	trap := data.Trap(room.TrapID)
	if trap == nil {
		return
	}
	e.state.AddLog(model.LogDamage, trap.Text)

	mult := 1 - e.upgradeValue(data.UpgradeTrapSense)

	switch trap.Effect {
	case data.TrapDamageAll, data.TrapPoisonAll:
		for _, c := range e.state.Party {
			if c.Alive {
				trapDamage(c, trap.Value, mult)
			}
		}

	case data.TrapDamageOne:
		living := living(e.state.Party)
		if len(living) == 0 {
			return
		}
		victim := formula.Choice(e.rng, living)
		dmg := trapDamage(victim, trap.Value, mult)
		e.state.AddLog(model.LogDamage, fmt.Sprintf("%s takes %d damage!", victim.Name, dmg))

	case data.TrapDebuffStats:
		for _, c := range e.state.Party {
			if !c.Alive {
				continue
			}
			amount := int(math.Floor(float64(baseStat(c, trap.Stat)) * trap.Value * mult))
			if amount < 1 {
				amount = 1
			}
			c.AddBuff(model.Buff{Stat: trap.Stat, Amount: -amount, Turns: trap.Duration, Name: "Trap Curse"})
		}

	case data.TrapDrainMP:
		for _, c := range e.state.Party {
			if !c.Alive {
				continue
			}
			drain := int(math.Floor(float64(c.MaxMP) * trap.Value * mult))
			c.MP -= drain
			if c.MP < 0 {
				c.MP = 0
			}
		}
	}
}

// damageParty deals a fraction of each living member's max HP, flooring HP
// at 1. Room hazards soften the party but never finish it.
func (e *Engine) damageParty(fraction float64) {
	for _, c := range e.state.Party {
		if !c.Alive {
			continue
		}
		dmg := int(math.Floor(float64(c.MaxHP) * fraction))
		c.HP -= dmg
		if c.HP < 1 {
			c.HP = 1
		}
	}
}

func trapDamage(c *model.Character, fraction, mult float64) int {
	dmg := int(math.Floor(float64(c.MaxHP) * fraction * mult))
	if dmg < 1 {
		dmg = 1
	}
	c.HP -= dmg
	if c.HP < 1 {
		c.HP = 1
	}
	return dmg
}

func (e *Engine) buffParty(name string, turns int, stat model.Stat, amount int) {
	for _, c := range e.state.Party {
		if c.Alive {
			c.AddBuff(model.Buff{Stat: stat, Amount: amount, Turns: turns, Name: name})
		}
	}
}

func living(members []*model.Character) []*model.Character {
	out := make([]*model.Character, 0, len(members))
	for _, c := range members {
		if c.Alive {
			out = append(out, c)
		}
	}
	return out
}

func baseStat(c *model.Character, stat model.Stat) int {
	switch stat {
	case model.StatAtk:
		return c.Atk
	case model.StatDef:
		return c.Def
	case model.StatSpd:
		return c.Spd
	case model.StatMag:
		return c.Mag
	case model.StatHP:
		return c.MaxHP
	case model.StatMP:
		return c.MaxMP
	default:
		return 0
	}
}
