package model

// Stat identifies one of the core combat stats. HP and MP are tracked as
// current/max pairs on the owning entity, not queried through EffectiveStat,
// but items and enchantments may still carry flat HP bonuses under StatHP.
type Stat string

const (
	StatHP  Stat = "hp"
	StatMP  Stat = "mp"
	StatAtk Stat = "atk"
	StatDef Stat = "def"
	StatSpd Stat = "spd"
	StatMag Stat = "mag"
)

// Flag-buff sentinels. A buff whose Stat is one of these is not a stat
// modifier: it marks a one-shot or per-combat ability on the carrier and is
// consumed by the combat engine (amount is always 1).
const (
	BuffDodge      Stat = "dodge"
	BuffManaShield Stat = "mana_shield"
	BuffSecondWind Stat = "second_wind"
	BuffUndying    Stat = "undying"
)

// EnchantStat identifies an enchantment effect. Core stats (atk/def/spd/mag/
// hp) are flat additions resolved by EffectiveStat; the rest are
// percentage-style multipliers read by the code paths that apply them
// (crit rolls, gold awards, incoming damage) and never flow through
// EffectiveStat.
type EnchantStat string

const (
	EnchantAtk EnchantStat = "atk"
	EnchantDef EnchantStat = "def"
	EnchantSpd EnchantStat = "spd"
	EnchantMag EnchantStat = "mag"
	EnchantHP  EnchantStat = "hp"

	EnchantCritChance      EnchantStat = "critChance"
	EnchantLifeSteal       EnchantStat = "lifeSteal"
	EnchantPoisonChance    EnchantStat = "poisonChance"
	EnchantGoldFind        EnchantStat = "goldFind"
	EnchantDamageReduction EnchantStat = "damageReduction"
)

// StatBlock is a plain bundle of the six base stats, used by class bases,
// class growths and race modifiers.
type StatBlock struct {
	HP  int
	MP  int
	Atk int
	Def int
	Spd int
	Mag int
}

// BonusBlock holds percentage bonuses keyed by concern. Used by synergies
// and achievements, which stack additively.
type BonusBlock struct {
	HP   float64
	Atk  float64
	Def  float64
	Spd  float64
	Mag  float64
	XP   float64
	Gold float64
}

// Add accumulates other into b.
func (b *BonusBlock) Add(other BonusBlock) {
	b.HP += other.HP
	b.Atk += other.Atk
	b.Def += other.Def
	b.Spd += other.Spd
	b.Mag += other.Mag
	b.XP += other.XP
	b.Gold += other.Gold
}
