package engine

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/deeploop/internal/data"
	"github.com/udisondev/deeploop/internal/game/party"
	"github.com/udisondev/deeploop/internal/game/progress"
	"github.com/udisondev/deeploop/internal/model"
)

// ContinueExploring leaves the safe room and resumes the descent. Outside
// the safe-room phase it is a no-op failure.
func (e *Engine) ContinueExploring() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.GamePhase != model.PhaseSafeRoom {
		return fail("There is no safe room to leave.")
	}

	if rest := e.upgradeValue(data.UpgradeRestPower); rest > 0 && !e.healingDisabled() {
		party.Heal(e.state.Party, rest*0.5)
	}
	e.state.LastSafeRoomLogIndex = len(e.state.Log)
	e.state.GamePhase = model.PhaseExploring
	e.paused = false
	e.state.AddLog(model.LogInfo, "The party ventures deeper...")
	return ok("The party ventures deeper...")
}

// StartOver begins a fresh run after a defeat, without banking prestige
// points. Only valid in the prestige phase.
func (e *Engine) StartOver() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.GamePhase != model.PhasePrestige {
		return fail("The run is still going.")
	}

	e.resetRun()
	e.state.AddLog(model.LogImportant, "A new adventure begins...")
	e.logStartingGold()
	e.state.AddLog(model.LogInfo, fmt.Sprintf("Floor 1: %s", e.state.Dungeon.Floor.Description))
	e.state.GamePhase = model.PhaseExploring
	e.paused = false
	slog.Info("run restarted", "prestige_level", e.state.Prestige.Level)
	return ok("A new adventure begins...")
}

// PerformPrestige banks points earned from the run's highest floor and
// starts over with the permanent bonuses applied. Requires having reached
// floor 5 at least once.
func (e *Engine) PerformPrestige() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.GamePhase != model.PhasePrestige {
		return fail("The run is still going.")
	}
	if e.state.Stats.HighestFloor < prestigeFloorGate {
		return fail("Reach floor %d before prestiging.", prestigeFloorGate)
	}

	points := progress.PrestigePoints(e.state.Stats.HighestFloor)
	e.state.Prestige.Level++
	e.state.Prestige.Points += points
	e.state.Prestige.TotalPoints += points
	e.state.Stats.TotalPrestige++

	e.resetRun()
	bonus := progress.BonusForLevel(e.state.Prestige.Level)
	e.state.AddLog(model.LogImportant,
		fmt.Sprintf("PRESTIGE %d! Earned %d prestige points.", e.state.Prestige.Level, points))
	e.state.AddLog(model.LogInfo,
		fmt.Sprintf("Permanent bonuses: +%.0f%% stats, +%.0f%% XP, +%.0f%% gold.",
			bonus.Stat*100, bonus.XP*100, bonus.Gold*100))
	e.logStartingGold()
	e.state.AddLog(model.LogInfo, "A new adventure begins with ancient wisdom...")
	e.state.GamePhase = model.PhaseExploring
	e.paused = false
	slog.Info("prestige performed", "level", e.state.Prestige.Level, "points", points)
	return ok("PRESTIGE %d! Earned %d prestige points.", e.state.Prestige.Level, points)
}

// resetRun rebuilds the party and the dungeon for a fresh descent,
// preserving everything meta: prestige, achievements, lifetime stats.
func (e *Engine) resetRun() {
	opts := party.Options{AllSkills: progress.UpgradeLevel(e.state.Prestige.Upgrades, data.UpgradeThreeSkills) >= 1}
	e.state.Party = e.factory.CreateParty(e.partySize, e.state.Achievements, opts)

	if lvl := e.state.Prestige.Level; lvl > 0 {
		mul := 1 + progress.BonusForLevel(lvl).Stat
		for _, c := range e.state.Party {
			c.MaxHP = int(math.Floor(float64(c.MaxHP) * mul))
			c.HP = c.MaxHP
			c.Atk = int(math.Floor(float64(c.Atk) * mul))
			c.Def = int(math.Floor(float64(c.Def) * mul))
			c.Spd = int(math.Floor(float64(c.Spd) * mul))
			c.Mag = int(math.Floor(float64(c.Mag) * mul))
		}
	}
	e.applyPrestigeUpgrades()

	e.state.Inventory.Gold = int(e.upgradeValue(data.UpgradeStartingGold))
	e.state.Inventory.Items = []*model.Item{}
	e.state.Shop = []*model.Item{}
	e.state.ActiveMutation = ""
	e.state.Dungeon.CurrentFloorNum = 1
	e.state.Dungeon.Floor = e.gen.GenerateFloor(1)
	e.state.Log = []model.LogEntry{}
	e.state.LastSafeRoomLogIndex = 0
}

// applyPrestigeUpgrades stamps the purchased permanent upgrades onto a
// freshly created party: head-start levels, bonus skill points and the
// flat stat multipliers, then synergies amplified by synergy_power.
func (e *Engine) applyPrestigeUpgrades() {
	upgrades := e.state.Prestige.Upgrades

	if sp := int(progress.UpgradeValue(upgrades, data.UpgradeStartingSP)); sp > 0 {
		for _, c := range e.state.Party {
			c.SkillPoints += sp
		}
	}

	if levels := int(progress.UpgradeValue(upgrades, data.UpgradeStartingLevel)); levels > 0 {
		for _, c := range e.state.Party {
			growth := data.Class(c.Class).Growth
			for i := 0; i < levels; i++ {
				c.Level++
				c.MaxHP += growth.HP
				c.MaxMP += growth.MP
				c.Atk += growth.Atk
				c.Def += growth.Def
				c.Spd += growth.Spd
				c.Mag += growth.Mag
				c.SkillPoints++
			}
			c.HP = c.MaxHP
			c.MP = c.MaxMP
		}
	}

	statMul := func(id string, apply func(c *model.Character, mul float64)) {
		if v := progress.UpgradeValue(upgrades, id); v > 0 {
			for _, c := range e.state.Party {
				apply(c, 1+v)
			}
		}
	}
	statMul(data.UpgradeVitality, func(c *model.Character, mul float64) {
		c.MaxHP = int(math.Floor(float64(c.MaxHP) * mul))
		c.HP = c.MaxHP
	})
	statMul(data.UpgradeMight, func(c *model.Character, mul float64) {
		c.Atk = int(math.Floor(float64(c.Atk) * mul))
	})
	statMul(data.UpgradeResilience, func(c *model.Character, mul float64) {
		c.Def = int(math.Floor(float64(c.Def) * mul))
	})
	statMul(data.UpgradeArcana, func(c *model.Character, mul float64) {
		c.Mag = int(math.Floor(float64(c.Mag) * mul))
	})

	syn := party.SynergyBonuses(e.state.Party)
	amp := 1 + progress.UpgradeValue(upgrades, data.UpgradeSynergyPower)
	synMul := func(bonus float64, apply func(c *model.Character, mul float64)) {
		if bonus > 0 {
			for _, c := range e.state.Party {
				apply(c, 1+bonus*amp)
			}
		}
	}
	synMul(syn.HP, func(c *model.Character, mul float64) {
		c.MaxHP = int(math.Floor(float64(c.MaxHP) * mul))
		c.HP = c.MaxHP
	})
	synMul(syn.Atk, func(c *model.Character, mul float64) {
		c.Atk = int(math.Floor(float64(c.Atk) * mul))
	})
	synMul(syn.Def, func(c *model.Character, mul float64) {
		c.Def = int(math.Floor(float64(c.Def) * mul))
	})
	synMul(syn.Spd, func(c *model.Character, mul float64) {
		c.Spd = int(math.Floor(float64(c.Spd) * mul))
	})
	synMul(syn.Mag, func(c *model.Character, mul float64) {
		c.Mag = int(math.Floor(float64(c.Mag) * mul))
	})
}

func (e *Engine) logStartingGold() {
	if gold := e.state.Inventory.Gold; gold > 0 {
		e.state.AddLog(model.LogGold, fmt.Sprintf("Nest Egg: starting with %d gold.", gold))
	}
}

// BuyItem moves a shop item into the inventory for its listed price.
func (e *Engine) BuyItem(itemID int64) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := itemIndex(e.state.Shop, itemID)
	if idx < 0 {
		return fail("Item not found.")
	}
	item := e.state.Shop[idx]
	if e.state.Inventory.Gold < item.Price {
		return fail("Need %d gold (have %d).", item.Price, e.state.Inventory.Gold)
	}

	e.state.Inventory.Gold -= item.Price
	e.state.Shop = append(e.state.Shop[:idx], e.state.Shop[idx+1:]...)
	e.state.Inventory.Items = append(e.state.Inventory.Items, item)
	msg := fmt.Sprintf("Purchased %s for %d gold.", item.Name, item.Price)
	e.state.AddLog(model.LogGold, msg)
	return ok("%s", msg)
}

// SellItem sells an inventory item for half its price.
func (e *Engine) SellItem(itemID int64) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := itemIndex(e.state.Inventory.Items, itemID)
	if idx < 0 {
		return fail("Item not found.")
	}
	item := e.state.Inventory.Items[idx]
	price := item.SellPrice()

	e.state.Inventory.Items = append(e.state.Inventory.Items[:idx], e.state.Inventory.Items[idx+1:]...)
	e.state.Inventory.Gold += price
	e.state.Stats.TotalGold += price
	msg := fmt.Sprintf("Sold %s for %d gold.", item.Name, price)
	e.state.AddLog(model.LogGold, msg)
	return ok("%s", msg)
}

// EquipItem equips an inventory item on a party member; whatever occupied
// the slot goes back to the inventory.
func (e *Engine) EquipItem(charID int, itemID int64) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.character(charID)
	if c == nil {
		return fail("Character not found.")
	}
	idx := itemIndex(e.state.Inventory.Items, itemID)
	if idx < 0 {
		return fail("Item not found.")
	}
	item := e.state.Inventory.Items[idx]
	if !model.CanEquip(c, item) {
		return fail("%s cannot equip %s.", c.Name, item.Name)
	}

	e.state.Inventory.Items = append(e.state.Inventory.Items[:idx], e.state.Inventory.Items[idx+1:]...)
	if prev := c.Equipment.Set(item.Slot, item); prev != nil {
		e.state.Inventory.Items = append(e.state.Inventory.Items, prev)
	}
	msg := fmt.Sprintf("%s equips %s.", c.Name, item.Name)
	e.state.AddLog(model.LogInfo, msg)
	return ok("%s", msg)
}

// LearnSkill spends a character's skill points on a new skill.
func (e *Engine) LearnSkill(charID int, skillID string) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.character(charID)
	if c == nil {
		return fail("Character not found.")
	}
	okay, msg := progress.LearnSkill(c, skillID, e.state.Achievements)
	if okay {
		e.state.AddLog(model.LogImportant, msg)
	}
	return Result{OK: okay, Message: msg}
}

// UpgradeSkill spends skill points raising a known skill's level.
func (e *Engine) UpgradeSkill(charID int, skillID string) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.character(charID)
	if c == nil {
		return fail("Character not found.")
	}
	okay, msg := progress.UpgradeSkill(c, skillID)
	if okay {
		e.state.AddLog(model.LogLevel, msg)
	}
	return Result{OK: okay, Message: msg}
}

// BuyPrestigeUpgrade spends banked prestige points on a permanent upgrade.
func (e *Engine) BuyPrestigeUpgrade(id string) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	okay, msg := progress.BuyPrestigeUpgrade(&e.state.Prestige, id)
	if okay {
		e.state.AddLog(model.LogImportant, msg)
	}
	return Result{OK: okay, Message: msg}
}

// ActivateMutation arms a challenge mutation for the current run, applying
// its party transform immediately. An empty id clears the active mutation.
func (e *Engine) ActivateMutation(id string) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id == "" {
		e.state.ActiveMutation = ""
		e.state.AddLog(model.LogInfo, "Challenge deactivated.")
		return ok("Challenge deactivated.")
	}
	m := data.Mutation(id)
	if m == nil {
		return fail("Unknown challenge.")
	}

	e.state.ActiveMutation = id
	if m.ApplyToParty != nil {
		m.ApplyToParty(e.state.Party)
	}
	msg := fmt.Sprintf("Challenge activated: %s! %s", m.Name, m.Description)
	e.state.AddLog(model.LogImportant, msg)
	return ok("%s", msg)
}

func (e *Engine) character(id int) *model.Character {
	for _, c := range e.state.Party {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func itemIndex(items []*model.Item, id int64) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
