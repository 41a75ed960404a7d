// Package dungeon generates floors, rooms, enemies, treasure and shop
// offers. All output is freshly constructed: enemies are scaled copies of
// their templates and items are clones of catalog entries, so nothing ever
// aliases shared data.
package dungeon

import (
	"math"
	"math/rand/v2"

	"github.com/udisondev/deeploop/internal/data"
	"github.com/udisondev/deeploop/internal/game/formula"
	"github.com/udisondev/deeploop/internal/model"
)

const restHealFraction = 0.25

// roomPool weights combat rooms 3x against the one-shot room types.
var roomPool = []model.RoomType{
	model.RoomCombat, model.RoomCombat, model.RoomCombat,
	model.RoomTreasure, model.RoomEvent, model.RoomRest, model.RoomTrap,
}

// Generator produces dungeon content. It owns the item id sequence; Reset
// exists for test isolation and for re-seeding after a load.
type Generator struct {
	rng *rand.Rand
	ids *model.IDGen
}

// NewGenerator returns a generator driven by the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, ids: model.NewIDGen(1)}
}

// ResetIDs rewinds the item id sequence.
func (g *Generator) ResetIDs(start int) {
	g.ids.Reset(start)
}

// GenerateFloor builds a floor. Every 5th floor is a single boss room;
// otherwise 3 to 4+floor/5 rooms, the last always safe, the rest drawn from
// the weighted pool.
func (g *Generator) GenerateFloor(floorNum int) *model.Floor {
	f := &model.Floor{
		Number:      floorNum,
		IsBossFloor: floorNum%5 == 0,
		Description: data.FloorDescription(floorNum),
	}

	if f.IsBossFloor {
		f.Rooms = []*model.Room{g.bossRoom(floorNum)}
		return f
	}

	count := formula.RandInt(g.rng, 3, 4+floorNum/5)
	f.Rooms = make([]*model.Room, 0, count)
	for i := 0; i < count; i++ {
		if i == count-1 {
			f.Rooms = append(f.Rooms, &model.Room{Type: model.RoomSafe})
			continue
		}
		f.Rooms = append(f.Rooms, g.room(formula.Choice(g.rng, roomPool), floorNum))
	}
	return f
}

func (g *Generator) room(t model.RoomType, floorNum int) *model.Room {
	room := &model.Room{Type: t}
	switch t {
	case model.RoomCombat:
		room.Enemies = g.Enemies(floorNum)
	case model.RoomTreasure:
		room.Item = g.Treasure(floorNum, 0)
		room.Gold = formula.RandInt(g.rng, 10, 30) + floorNum*5
	case model.RoomEvent:
		room.EventID = formula.Choice(g.rng, data.EventTypes).ID
	case model.RoomTrap:
		room.TrapID = formula.Choice(g.rng, data.TrapTypes).ID
	case model.RoomRest:
		room.HealAmount = restHealFraction
	}
	return room
}

func (g *Generator) bossRoom(floorNum int) *model.Room {
	tpl := formula.Choice(g.rng, data.BossTemplates)
	return &model.Room{
		Type:    model.RoomBoss,
		Enemies: []*model.Enemy{scaleTemplate(tpl, floorNum, true)},
	}
}

// Enemies rolls a combat room's enemy group: 1 to min(3, 1+floor/3)
// floor-scaled monsters.
func (g *Generator) Enemies(floorNum int) []*model.Enemy {
	count := formula.RandInt(g.rng, 1, min(3, 1+floorNum/3))
	out := make([]*model.Enemy, count)
	for i := range out {
		out[i] = scaleTemplate(formula.Choice(g.rng, data.MonsterTemplates), floorNum, false)
	}
	return out
}

// scaleTemplate builds an independent enemy from a template, every stat and
// the XP reward multiplied by the floor difficulty and floored.
func scaleTemplate(tpl data.EnemyTemplate, floorNum int, boss bool) *model.Enemy {
	s := formula.FloorScaling(floorNum)
	scale := func(v int) int { return int(math.Floor(float64(v) * s)) }
	return &model.Enemy{
		Name:    tpl.Name,
		HP:      scale(tpl.HP),
		MaxHP:   scale(tpl.HP),
		Atk:     scale(tpl.Atk),
		Def:     scale(tpl.Def),
		Spd:     scale(tpl.Spd),
		XP:      scale(tpl.XP),
		IsBoss:  boss,
		Special: string(tpl.Special),
	}
}

// Treasure rolls one item from the tier-capped catalog (cap = min(4,
// 1+floor/5)) and maybe an enchantment on top.
func (g *Generator) Treasure(floorNum int, enchantLuck float64) *model.Item {
	maxTier := min(4, 1+floorNum/5)
	tpl := formula.Choice(g.rng, data.ItemsUpToTier(maxTier))
	return g.instantiate(&tpl, floorNum, enchantLuck)
}

// instantiate clones a template into an owned item, assigns an id and rolls
// the enchantment chance: min(0.5, 0.05 + floor*0.01 + tier*0.03 + luck).
// Enchanted items carry a name prefix and a x1.4 price.
func (g *Generator) instantiate(tpl *model.Item, floorNum int, enchantLuck float64) *model.Item {
	it := tpl.Clone()
	it.ID = int64(g.ids.Next())

	chance := 0.05 + float64(floorNum)*0.01 + float64(it.Tier)*0.03 + enchantLuck
	if chance > 0.5 {
		chance = 0.5
	}
	if g.rng.Float64() < chance {
		opt := formula.Choice(g.rng, data.EnchantPool)
		it.Enchantment = &model.Enchantment{Stat: opt.Stat, Value: opt.Value}
		it.Name = opt.Prefix + " " + it.Name
		it.Price = int(math.Floor(float64(it.Price) * 1.4))
	}
	return it
}

// GenerateShop draws a safe-room offer of 3-5 items, de-duplicated by
// (name, slot) and biased so at least max(2, size-1) are usable by some
// current party member. tierBonus raises the tier cap (shop_tier upgrade),
// enchantLuck feeds the enchantment roll.
func (g *Generator) GenerateShop(floorNum int, party []*model.Character, tierBonus int, enchantLuck float64) []*model.Item {
	maxTier := min(4, 1+floorNum/5+tierBonus)
	pool := data.ItemsUpToTier(maxTier)

	usable := make([]model.Item, 0, len(pool))
	for _, tpl := range pool {
		for _, c := range party {
			if model.CanEquip(c, &tpl) {
				usable = append(usable, tpl)
				break
			}
		}
	}

	size := formula.RandInt(g.rng, 3, 5)
	minUsable := max(2, size-1)

	type key struct {
		name string
		slot model.Slot
	}
	seen := make(map[key]bool, size)
	offer := make([]*model.Item, 0, size)

	draw := func(from []model.Item) bool {
		// bounded retries; the pools are small and mostly distinct
		for tries := 0; tries < 20; tries++ {
			tpl := formula.Choice(g.rng, from)
			k := key{tpl.Name, tpl.Slot}
			if seen[k] {
				continue
			}
			seen[k] = true
			offer = append(offer, g.instantiate(&tpl, floorNum, enchantLuck))
			return true
		}
		return false
	}

	for len(offer) < minUsable && len(usable) > 0 {
		if !draw(usable) {
			break
		}
	}
	for len(offer) < size {
		if !draw(pool) {
			break
		}
	}
	return offer
}
