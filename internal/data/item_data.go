package data

import "github.com/udisondev/deeploop/internal/model"

// casters may use staves and focus items.
var casterClasses = []string{ClassMage, ClassHealer, ClassNecromancer}

// ItemTemplates is the treasure/shop catalog. Templates are cloned at
// generation time so no two generated items alias the same record.
var ItemTemplates = []model.Item{
	// tier 1
	{Name: "Rusty Sword", Slot: model.SlotWeapon, Atk: 3, Tier: 1, Price: 35},
	{Name: "Wooden Shield", Slot: model.SlotArmor, Def: 3, Tier: 1, Price: 30},
	{Name: "Swift Boots", Slot: model.SlotAccessory, Spd: 3, Tier: 1, Price: 30},
	{Name: "Apprentice Staff", Slot: model.SlotWeapon, Mag: 4, Tier: 1, Price: 40, ClassReq: casterClasses},
	{Name: "Padded Vest", Slot: model.SlotArmor, Def: 2, Spd: 1, Tier: 1, Price: 30},

	// tier 2
	{Name: "Iron Blade", Slot: model.SlotWeapon, Atk: 6, Tier: 2, Price: 100},
	{Name: "Chain Mail", Slot: model.SlotArmor, Def: 6, Spd: -1, Tier: 2, Price: 95},
	{Name: "Magic Ring", Slot: model.SlotAccessory, Mag: 5, Tier: 2, Price: 110},
	{Name: "Bone Staff", Slot: model.SlotWeapon, Mag: 8, Tier: 2, Price: 120, ClassReq: casterClasses},
	{Name: "Shadow Cloak", Slot: model.SlotArmor, Def: 3, Spd: 4, Tier: 2, Price: 105, ClassReq: []string{ClassRogue, ClassMonk}},

	// tier 3, level gated
	{Name: "Flame Sword", Slot: model.SlotWeapon, Atk: 10, Mag: 3, Tier: 3, Price: 250, LevelReq: 5},
	{Name: "Plate Armor", Slot: model.SlotArmor, Def: 10, Spd: -2, Tier: 3, Price: 240, LevelReq: 5},
	{Name: "Amulet of Speed", Slot: model.SlotAccessory, Atk: 2, Def: 2, Spd: 5, Mag: 2, Tier: 3, Price: 270, LevelReq: 5},
	{Name: "Archon Staff", Slot: model.SlotWeapon, Mag: 13, Tier: 3, Price: 280, LevelReq: 5, ClassReq: casterClasses},

	// tier 4, level gated
	{Name: "Void Edge", Slot: model.SlotWeapon, Atk: 15, Spd: 2, Mag: 5, Tier: 4, Price: 600, LevelReq: 10},
	{Name: "Dragon Scale", Slot: model.SlotArmor, Atk: 3, Def: 15, Mag: 3, Tier: 4, Price: 580, LevelReq: 10},
	{Name: "Crown of Stars", Slot: model.SlotAccessory, Atk: 5, Def: 5, Spd: 5, Mag: 5, Tier: 4, Price: 650, LevelReq: 10},
}

// ItemsUpToTier returns the templates at or below the tier cap.
func ItemsUpToTier(maxTier int) []model.Item {
	out := make([]model.Item, 0, len(ItemTemplates))
	for _, it := range ItemTemplates {
		if it.Tier <= maxTier {
			out = append(out, it)
		}
	}
	return out
}

// EnchantOption is one entry of the enchantment roll pool. Flat-stat enchants
// add through EffectiveStat; specials are read by the code that applies them.
type EnchantOption struct {
	Prefix string
	Stat   model.EnchantStat
	Value  float64
}

// EnchantPool is the roll pool for bonus enchantments. Flat values are small
// because they stack with item stats; special values are fractions.
var EnchantPool = []EnchantOption{
	{Prefix: "Fierce", Stat: model.EnchantAtk, Value: 3},
	{Prefix: "Stalwart", Stat: model.EnchantDef, Value: 3},
	{Prefix: "Nimble", Stat: model.EnchantSpd, Value: 3},
	{Prefix: "Arcane", Stat: model.EnchantMag, Value: 3},
	{Prefix: "Hearty", Stat: model.EnchantHP, Value: 8},
	{Prefix: "Keen", Stat: model.EnchantCritChance, Value: 0.1},
	{Prefix: "Vampiric", Stat: model.EnchantLifeSteal, Value: 0.15},
	{Prefix: "Venomous", Stat: model.EnchantPoisonChance, Value: 0.2},
	{Prefix: "Gilded", Stat: model.EnchantGoldFind, Value: 0.15},
	{Prefix: "Warded", Stat: model.EnchantDamageReduction, Value: 0.08},
}
