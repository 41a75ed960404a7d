package model

// Buff is a time-limited stat modifier (or a flag buff, see the Buff*
// sentinels in stats.go). Amount may be negative for debuffs. Turns is
// decremented once per combat turn; the buff is dropped when it reaches 0.
type Buff struct {
	Stat   Stat   `json:"stat"`
	Amount int    `json:"amount"`
	Turns  int    `json:"turns"`
	Name   string `json:"name"`
}

// SkillInstance is one character's learned copy of a skill. Level and uses
// progress independently of the character's level and of other characters'
// instances of the same skill.
type SkillInstance struct {
	ID    string  `json:"id"`
	Level int     `json:"level"`
	XP    float64 `json:"xp"`
	Uses  int     `json:"uses"`
}

// Equipment is a character's paperdoll, one optional item per slot.
type Equipment struct {
	Weapon    *Item `json:"weapon"`
	Armor     *Item `json:"armor"`
	Accessory *Item `json:"accessory"`
}

// Get returns the item in the given slot, or nil.
func (e *Equipment) Get(slot Slot) *Item {
	switch slot {
	case SlotWeapon:
		return e.Weapon
	case SlotArmor:
		return e.Armor
	case SlotAccessory:
		return e.Accessory
	default:
		return nil
	}
}

// Set places an item in the given slot and returns the previous occupant.
func (e *Equipment) Set(slot Slot, it *Item) *Item {
	var prev *Item
	switch slot {
	case SlotWeapon:
		prev, e.Weapon = e.Weapon, it
	case SlotArmor:
		prev, e.Armor = e.Armor, it
	case SlotAccessory:
		prev, e.Accessory = e.Accessory, it
	}
	return prev
}

// Character is a party member. Created by the party factory, mutated every
// combat turn / level-up / equip, fully replaced on prestige or start-over.
//
// Invariants: 0 <= HP <= MaxHP, 0 <= MP <= MaxMP. Alive latches to false
// when HP reaches 0 through ApplyDamage and stays false until the character
// is explicitly revived (RestoreParty).
type Character struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Class       string           `json:"class"`
	Race        string           `json:"race"`
	Level       int              `json:"level"`
	XP          int              `json:"xp"`
	HP          int              `json:"hp"`
	MaxHP       int              `json:"maxHp"`
	MP          int              `json:"mp"`
	MaxMP       int              `json:"maxMp"`
	Atk         int              `json:"atk"`
	Def         int              `json:"def"`
	Spd         int              `json:"spd"`
	Mag         int              `json:"mag"`
	Skills      []*SkillInstance `json:"skills"`
	Equipment   Equipment        `json:"equipment"`
	SkillPoints int              `json:"skillPoints"`
	Alive       bool             `json:"alive"`
	Buffs       []Buff           `json:"buffs"`
}

// base returns the unmodified base value for a core stat.
func (c *Character) base(stat Stat) int {
	switch stat {
	case StatHP:
		return c.MaxHP
	case StatMP:
		return c.MaxMP
	case StatAtk:
		return c.Atk
	case StatDef:
		return c.Def
	case StatSpd:
		return c.Spd
	case StatMag:
		return c.Mag
	default:
		return 0
	}
}

// EffectiveStat resolves a core stat through the modifier pipeline, in this
// documented order: base stat, then per slot (weapon, armor, accessory) the
// item's flat bonus followed by the item's enchantment if it targets the
// same stat, then every matching buff. The result is clamped at 0; later
// additive terms may push the intermediate value negative.
func (c *Character) EffectiveStat(stat Stat) int {
	v := c.base(stat)
	for _, slot := range EquipSlots {
		it := c.Equipment.Get(slot)
		if it == nil {
			continue
		}
		v += it.StatBonus(stat)
		if it.Enchantment != nil && Stat(it.Enchantment.Stat) == stat {
			v += int(it.Enchantment.Value)
		}
	}
	for _, b := range c.Buffs {
		if b.Stat == stat {
			v += b.Amount
		}
	}
	if v < 0 {
		return 0
	}
	return v
}

// EnchantmentBonus sums enchantment values for one of the special
// enchantment stats across all three slots.
func (c *Character) EnchantmentBonus(stat EnchantStat) float64 {
	var total float64
	for _, slot := range EquipSlots {
		it := c.Equipment.Get(slot)
		if it != nil && it.Enchantment != nil && it.Enchantment.Stat == stat {
			total += it.Enchantment.Value
		}
	}
	return total
}

// IsActive reports whether the character can take part in combat.
func (c *Character) IsActive() bool {
	return c.Alive && c.HP > 0
}

// ApplyDamage reduces HP, clamping at 0, and latches Alive to false when HP
// hits 0. Returns true if the character fell.
func (c *Character) ApplyDamage(dmg int) bool {
	if dmg < 0 {
		dmg = 0
	}
	c.HP -= dmg
	if c.HP <= 0 {
		c.HP = 0
		c.Alive = false
		return true
	}
	return false
}

// Heal restores HP up to MaxHP and returns the amount actually restored.
func (c *Character) Heal(amount int) int {
	if amount < 0 || !c.Alive {
		return 0
	}
	old := c.HP
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	return c.HP - old
}

// RestoreMP restores MP up to MaxMP.
func (c *Character) RestoreMP(amount int) {
	c.MP += amount
	if c.MP > c.MaxMP {
		c.MP = c.MaxMP
	}
	if c.MP < 0 {
		c.MP = 0
	}
}

// SpendMP deducts cost; callers must have checked affordability.
func (c *Character) SpendMP(cost int) {
	c.MP -= cost
	if c.MP < 0 {
		c.MP = 0
	}
}

// AddBuff appends a buff to the active list.
func (c *Character) AddBuff(b Buff) {
	c.Buffs = append(c.Buffs, b)
}

// HasBuff reports whether any active buff matches the given stat
// (including flag-buff sentinels).
func (c *Character) HasBuff(stat Stat) bool {
	for _, b := range c.Buffs {
		if b.Stat == stat {
			return true
		}
	}
	return false
}

// HasBuffNamed reports whether any active buff carries the given name.
func (c *Character) HasBuffNamed(name string) bool {
	for _, b := range c.Buffs {
		if b.Name == name {
			return true
		}
	}
	return false
}

// RemoveBuff drops the first active buff matching stat and reports whether
// one was removed.
func (c *Character) RemoveBuff(stat Stat) bool {
	for i, b := range c.Buffs {
		if b.Stat == stat {
			c.Buffs = append(c.Buffs[:i], c.Buffs[i+1:]...)
			return true
		}
	}
	return false
}

// TickBuffs decrements every buff's remaining turns and drops expired ones.
// Runs once per combat turn for every party member, acted or not.
func (c *Character) TickBuffs() {
	kept := c.Buffs[:0]
	for i := range c.Buffs {
		c.Buffs[i].Turns--
		if c.Buffs[i].Turns > 0 {
			kept = append(kept, c.Buffs[i])
		}
	}
	c.Buffs = kept
}

// Skill returns the character's instance of the given skill, or nil if not
// known.
func (c *Character) Skill(id string) *SkillInstance {
	for _, s := range c.Skills {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Knows reports whether the character has learned the given skill.
func (c *Character) Knows(id string) bool {
	return c.Skill(id) != nil
}
