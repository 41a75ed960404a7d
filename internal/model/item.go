package model

// Slot is an equipment slot on a character.
type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// EquipSlots is the fixed resolution order for equipment bonuses. The
// derived-stat pipeline walks slots in this order; keep it stable.
var EquipSlots = [3]Slot{SlotWeapon, SlotArmor, SlotAccessory}

// Enchantment is a bonus rolled onto a generated item. Value is a flat
// amount for core stats and a fraction for the special stats.
type Enchantment struct {
	Stat  EnchantStat `json:"stat"`
	Value float64     `json:"value"`
}

// Item is an immutable piece of equipment. Instances are independent value
// objects: generation always deep-copies the catalog template, so two items
// never alias the same enchantment.
type Item struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Slot        Slot         `json:"slot"`
	Atk         int          `json:"atk"`
	Def         int          `json:"def"`
	Spd         int          `json:"spd"`
	Mag         int          `json:"mag"`
	Tier        int          `json:"tier"`
	Price       int          `json:"price"`
	ClassReq    []string     `json:"classReq,omitempty"`
	LevelReq    int          `json:"levelReq,omitempty"`
	Enchantment *Enchantment `json:"enchantment,omitempty"`
}

// StatBonus returns the item's flat bonus for a core stat, excluding the
// enchantment.
func (it *Item) StatBonus(stat Stat) int {
	switch stat {
	case StatAtk:
		return it.Atk
	case StatDef:
		return it.Def
	case StatSpd:
		return it.Spd
	case StatMag:
		return it.Mag
	default:
		return 0
	}
}

// Clone returns an independent copy of the item, including its enchantment.
func (it *Item) Clone() *Item {
	cp := *it
	if it.Enchantment != nil {
		ench := *it.Enchantment
		cp.Enchantment = &ench
	}
	if it.ClassReq != nil {
		cp.ClassReq = append([]string(nil), it.ClassReq...)
	}
	return &cp
}

// SellPrice is what the merchant pays for the item.
func (it *Item) SellPrice() int {
	return it.Price / 2
}

// CanEquip reports whether the character satisfies the item's class and
// level requirements.
func CanEquip(c *Character, it *Item) bool {
	if it.LevelReq > 0 && c.Level < it.LevelReq {
		return false
	}
	if len(it.ClassReq) == 0 {
		return true
	}
	for _, cls := range it.ClassReq {
		if cls == c.Class {
			return true
		}
	}
	return false
}

// EquipDelta returns the per-stat change that equipping it would cause,
// relative to whatever currently occupies the item's slot.
func EquipDelta(c *Character, it *Item) StatBlock {
	var delta StatBlock
	delta.Atk = it.Atk
	delta.Def = it.Def
	delta.Spd = it.Spd
	delta.Mag = it.Mag
	if prev := c.Equipment.Get(it.Slot); prev != nil {
		delta.Atk -= prev.Atk
		delta.Def -= prev.Def
		delta.Spd -= prev.Spd
		delta.Mag -= prev.Mag
	}
	return delta
}
