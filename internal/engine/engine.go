// Package engine is the run orchestrator: a phase state machine driving
// exploration, combat, room side effects and the prestige loop tick by
// tick. The engine is the single writer of the run state; player commands
// and the scheduler serialize through its mutex.
package engine

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/udisondev/deeploop/internal/data"
	"github.com/udisondev/deeploop/internal/game/combat"
	"github.com/udisondev/deeploop/internal/game/dungeon"
	"github.com/udisondev/deeploop/internal/game/formula"
	"github.com/udisondev/deeploop/internal/game/party"
	"github.com/udisondev/deeploop/internal/game/progress"
	"github.com/udisondev/deeploop/internal/model"
)

const prestigeFloorGate = 5

// Result is the outcome of a player command. Failed commands never mutate
// state.
type Result struct {
	OK      bool
	Message string
}

func fail(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

func ok(format string, args ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...)}
}

// Engine owns the authoritative run state.
type Engine struct {
	mu sync.Mutex

	state    *model.State
	rng      *rand.Rand
	resolver *combat.Resolver
	factory  *party.Factory
	gen      *dungeon.Generator

	partySize int
	paused    bool
	notify    func(*model.State)
}

// New builds an engine around a random source. Party size below 1 falls
// back to 4.
func New(rng *rand.Rand, partySize int) *Engine {
	if partySize < 1 {
		partySize = 4
	}
	return &Engine{
		rng:       rng,
		resolver:  combat.NewResolver(rng),
		factory:   party.NewFactory(rng),
		gen:       dungeon.NewGenerator(rng),
		partySize: partySize,
	}
}

// NewGame initializes a fresh run.
func (e *Engine) NewGame() {
	e.mu.Lock()
	defer e.mu.Unlock()

	members := e.factory.CreateParty(e.partySize, nil, party.Options{})
	e.state = &model.State{
		Party:   members,
		Dungeon: model.Dungeon{CurrentFloorNum: 1, Floor: e.gen.GenerateFloor(1)},
		Inventory: model.Inventory{
			Items: []*model.Item{},
		},
		Shop:      []*model.Item{},
		Prestige:  model.Prestige{Upgrades: map[string]int{}},
		Stats:     model.Stats{HighestFloor: 1, HighestLevel: 1, ChallengesCompleted: map[string]bool{}},
		GamePhase: model.PhaseExploring,
		Log:       []model.LogEntry{},
	}
	e.state.AddLog(model.LogImportant, "The party enters the dungeon...")
	e.state.AddLog(model.LogInfo, fmt.Sprintf("Floor 1: %s", e.state.Dungeon.Floor.Description))
	slog.Info("new game started", "party_size", len(members))
}

// LoadState adopts a previously persisted state, backfilling legacy gaps.
func (e *Engine) LoadState(state *model.State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	state.Backfill()
	e.state = state
	e.reseedIDs()
	e.state.AddLog(model.LogInfo, "Game loaded successfully.")
	slog.Info("state loaded", "floor", state.Dungeon.CurrentFloorNum, "tick", state.TickCount)
}

// reseedIDs moves the id generators past every id present in the loaded
// state so new entities never collide.
func (e *Engine) reseedIDs() {
	maxChar := 0
	for _, c := range e.state.Party {
		if c.ID > maxChar {
			maxChar = c.ID
		}
	}
	e.factory.ResetIDs(maxChar + 1)

	var maxItem int64
	scan := func(it *model.Item) {
		if it != nil && it.ID > maxItem {
			maxItem = it.ID
		}
	}
	for _, it := range e.state.Inventory.Items {
		scan(it)
	}
	for _, it := range e.state.Shop {
		scan(it)
	}
	for _, c := range e.state.Party {
		for _, slot := range model.EquipSlots {
			scan(c.Equipment.Get(slot))
		}
	}
	e.gen.ResetIDs(int(maxItem) + 1)
}

// State returns the state aggregate. Callers outside the engine must treat
// it as read-only.
func (e *Engine) State() *model.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Snapshot returns a deep copy of the state, safe to hand to persistence
// while ticks continue.
func (e *Engine) Snapshot() *model.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshotState(e.state)
}

// Pause stops tick processing; commands still work.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = true
}

// Resume re-enables tick processing.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = false
}

// Paused reports whether ticks are being processed.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// Phase returns the current game phase.
func (e *Engine) Phase() model.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.GamePhase
}

// Tick advances the simulation one step. Safe-room and prestige phases are
// player-gated: ticks in them do nothing but count.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil || e.paused {
		return
	}

	switch e.state.GamePhase {
	case model.PhaseExploring:
		e.tickExplore()
	case model.PhaseCombat:
		e.tickCombat()
	case model.PhaseSafeRoom, model.PhasePrestige:
		// waiting for the player
	}

	e.state.TickCount++
	e.checkAllAchievements()

	if e.notify != nil {
		e.notify(e.state)
	}
}

// SetNotify registers a callback invoked after every processed tick with
// the current state. The callback runs synchronously under the engine
// mutex and must treat the state as read-only.
func (e *Engine) SetNotify(fn func(*model.State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notify = fn
}

func (e *Engine) tickExplore() {
	floor := e.state.Dungeon.Floor
	room := floor.Current()

	if room.Explored {
		if !floor.AtEnd() {
			floor.CurrentRoom++
			return
		}
		e.completeFloor()
		return
	}

	room.Explored = true

	switch room.Type {
	case model.RoomCombat, model.RoomBoss:
		e.enterCombat(room)
	case model.RoomTreasure:
		e.handleTreasure(room)
	case model.RoomEvent:
		e.handleEvent(room)
	case model.RoomRest:
		e.handleRest(room)
	case model.RoomTrap:
		e.handleTrap(room)
	case model.RoomSafe:
		e.enterSafeRoom("The party reaches a safe room. A merchant awaits.")
	}
}

func (e *Engine) enterCombat(room *model.Room) {
	e.state.GamePhase = model.PhaseCombat
	e.resolver.Reset()

	if m := data.Mutation(e.state.ActiveMutation); m != nil && m.ApplyToEnemies != nil {
		m.ApplyToEnemies(room.Enemies)
	}

	if room.Type == model.RoomBoss {
		e.state.AddLog(model.LogImportant, fmt.Sprintf("BOSS: %s appears!", room.Enemies[0].Name))
		return
	}
	names := ""
	for i, en := range room.Enemies {
		if i > 0 {
			names += ", "
		}
		names += en.Name
	}
	e.state.AddLog(model.LogInfo, fmt.Sprintf("Encountered: %s", names))
}

func (e *Engine) enterSafeRoom(banner string) {
	e.state.GamePhase = model.PhaseSafeRoom
	e.state.Shop = e.gen.GenerateShop(
		e.state.Dungeon.CurrentFloorNum,
		e.state.Party,
		int(e.upgradeValue(data.UpgradeShopTier)),
		e.upgradeValue(data.UpgradeEnchantLuck),
	)
	e.paused = true
	e.state.AddLog(model.LogImportant, banner)
}

func (e *Engine) tickCombat() {
	room := e.state.Dungeon.Floor.Current()

	for _, entry := range e.resolver.ResolveTurn(e.state.Party, room.Enemies) {
		e.state.AddLog(entry.Type, entry.Text)
	}

	switch combat.CheckResult(e.state.Party, room.Enemies) {
	case combat.OutcomeVictory:
		e.handleVictory(room)
	case combat.OutcomeDefeat:
		e.handleDefeat()
	}
}

func (e *Engine) handleVictory(room *model.Room) {
	room.Defeated = true
	enemies := room.Enemies

	xpLog := progress.AwardXP(e.rng, e.state.Party, enemies,
		e.state.Prestige.Level, e.upgradeValue(data.UpgradeXPGain))
	for _, entry := range xpLog {
		e.state.AddLog(entry.Type, entry.Text)
	}

	gold := e.goldForVictory(len(enemies))
	e.state.Inventory.Gold += gold
	e.state.Stats.TotalGold += gold
	e.state.AddLog(model.LogGold, fmt.Sprintf("Found %d gold!", gold))

	for _, en := range enemies {
		e.state.Stats.MonstersKilled++
		if en.IsBoss {
			e.state.Stats.BossesKilled++
		}
	}
	for _, c := range e.state.Party {
		if c.Level > e.state.Stats.HighestLevel {
			e.state.Stats.HighestLevel = c.Level
		}
	}

	slog.Debug("combat won", "floor", e.state.Dungeon.CurrentFloorNum, "gold", gold)
	e.state.GamePhase = model.PhaseExploring
}

// goldForVictory runs the full bonus chain over the base drop, flooring
// after every multiplier: goblin perk, achievements, prestige level, the
// gold_find upgrade, synergies amplified by synergy_power, goldFind
// enchantments on living members, then the mutation multiplier.
func (e *Engine) goldForVictory(enemyCount int) int {
	floorNum := e.state.Dungeon.Floor.Number
	gold := formula.GoldReward(e.rng, floorNum, enemyCount)
	mul := func(bonus float64) {
		gold = int(math.Floor(float64(gold) * (1 + bonus)))
	}

	for _, c := range e.state.Party {
		if race := data.Race(c.Race); c.Alive && race != nil && race.Perk == data.PerkGoldBonus {
			mul(race.PerkValue)
			break
		}
	}

	mul(data.AchievementBonuses(e.state.Achievements).Gold)
	mul(progress.BonusForLevel(e.state.Prestige.Level).Gold)

	if v := e.upgradeValue(data.UpgradeGoldFind); v > 0 {
		mul(v)
	}

	if syn := party.SynergyBonuses(e.state.Party).Gold; syn > 0 {
		mul(syn * (1 + e.upgradeValue(data.UpgradeSynergyPower)))
	}

	goldFind := 0.0
	for _, c := range e.state.Party {
		if c.Alive {
			goldFind += c.EnchantmentBonus(model.EnchantGoldFind)
		}
	}
	if goldFind > 0 {
		mul(goldFind)
	}

	if m := data.Mutation(e.state.ActiveMutation); m != nil && m.GoldMultiplier > 0 {
		gold = int(math.Floor(float64(gold) * m.GoldMultiplier))
	}
	return gold
}

func (e *Engine) handleDefeat() {
	e.state.GamePhase = model.PhasePrestige
	e.state.Stats.Deaths++
	e.paused = true
	e.state.AddLog(model.LogImportant, "The party has been defeated!")
	slog.Info("party wiped", "floor", e.state.Dungeon.CurrentFloorNum, "deaths", e.state.Stats.Deaths)
}

func (e *Engine) handleTreasure(room *model.Room) {
	if room.Collected {
		return
	}
	room.Collected = true

	e.state.Inventory.Items = append(e.state.Inventory.Items, room.Item)
	e.state.Inventory.Gold += room.Gold
	e.state.Stats.TotalGold += room.Gold
	e.state.AddLog(model.LogGold, fmt.Sprintf("Found %d gold and a %s!", room.Gold, room.Item.Name))
}

func (e *Engine) handleRest(room *model.Room) {
	if room.Used {
		return
	}
	room.Used = true

	if e.healingDisabled() {
		e.state.AddLog(model.LogInfo, "The party tries to rest but the curse prevents recovery.")
		return
	}
	party.Heal(e.state.Party, room.HealAmount+e.upgradeValue(data.UpgradeRestPower))
	e.state.AddLog(model.LogHeal, "The party rests and recovers some HP and MP.")
}

func (e *Engine) healingDisabled() bool {
	m := data.Mutation(e.state.ActiveMutation)
	return m != nil && m.DisableHealing
}

func (e *Engine) completeFloor() {
	floor := e.state.Dungeon.Floor
	floor.Completed = true
	e.state.Stats.FloorsCleared++

	next := floor.Number + 1
	if next > e.state.Stats.HighestFloor {
		e.state.Stats.HighestFloor = next
	}

	if m := data.Mutation(e.state.ActiveMutation); m != nil && next >= m.GoalFloor {
		if !e.state.Stats.ChallengesCompleted[m.ID] {
			e.state.Stats.ChallengesCompleted[m.ID] = true
			e.state.AddLog(model.LogImportant,
				fmt.Sprintf("CHALLENGE COMPLETE: %s! Reached floor %d!", m.Name, m.GoalFloor))
		}
	}

	if floor.IsBossFloor {
		e.state.AddLog(model.LogImportant, fmt.Sprintf("Floor %d cleared! Boss defeated!", floor.Number))
	}

	e.state.Dungeon.CurrentFloorNum = next
	e.state.Dungeon.Floor = e.gen.GenerateFloor(next)
	e.state.AddLog(model.LogInfo, fmt.Sprintf("Entering Floor %d: %s", next, e.state.Dungeon.Floor.Description))
	slog.Debug("floor completed", "floor", floor.Number, "next", next)

	// a beaten boss floor earns a breather before the descent continues
	if floor.IsBossFloor {
		e.enterSafeRoom("The party finds a safe room. A merchant awaits.")
	} else {
		e.state.GamePhase = model.PhaseExploring
	}
}

func (e *Engine) checkAllAchievements() {
	for _, id := range progress.CheckAchievements(&e.state.Stats, e.state.Achievements) {
		e.state.Achievements = append(e.state.Achievements, id)
		if a := data.Achievement(id); a != nil {
			e.state.AddLog(model.LogImportant, fmt.Sprintf("Achievement unlocked: %s!", a.Name))
		}
	}
}

func (e *Engine) upgradeValue(id string) float64 {
	return progress.UpgradeValue(e.state.Prestige.Upgrades, id)
}

// snapshotState deep-copies the aggregate through its JSON form. State is
// fully JSON-representable by construction (that is its wire format).
func snapshotState(s *model.State) *model.State {
	cp := *s
	cp.Party = make([]*model.Character, len(s.Party))
	for i, c := range s.Party {
		cc := *c
		cc.Buffs = append([]model.Buff(nil), c.Buffs...)
		cc.Skills = make([]*model.SkillInstance, len(c.Skills))
		for j, sk := range c.Skills {
			sc := *sk
			cc.Skills[j] = &sc
		}
		for _, slot := range model.EquipSlots {
			if it := c.Equipment.Get(slot); it != nil {
				cc.Equipment.Set(slot, it.Clone())
			}
		}
		cp.Party[i] = &cc
	}
	cp.Inventory.Items = cloneItems(s.Inventory.Items)
	cp.Shop = cloneItems(s.Shop)
	cp.Log = append([]model.LogEntry(nil), s.Log...)
	cp.Achievements = append([]string(nil), s.Achievements...)
	cp.Prestige.Upgrades = make(map[string]int, len(s.Prestige.Upgrades))
	for k, v := range s.Prestige.Upgrades {
		cp.Prestige.Upgrades[k] = v
	}
	cp.Stats.ChallengesCompleted = make(map[string]bool, len(s.Stats.ChallengesCompleted))
	for k, v := range s.Stats.ChallengesCompleted {
		cp.Stats.ChallengesCompleted[k] = v
	}
	if s.Dungeon.Floor != nil {
		fc := *s.Dungeon.Floor
		fc.Rooms = make([]*model.Room, len(s.Dungeon.Floor.Rooms))
		for i, r := range s.Dungeon.Floor.Rooms {
			rc := *r
			if r.Item != nil {
				rc.Item = r.Item.Clone()
			}
			rc.Enemies = make([]*model.Enemy, len(r.Enemies))
			for j, en := range r.Enemies {
				ec := *en
				rc.Enemies[j] = &ec
			}
			fc.Rooms[i] = &rc
		}
		cp.Dungeon.Floor = &fc
	}
	return &cp
}

func cloneItems(items []*model.Item) []*model.Item {
	out := make([]*model.Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
