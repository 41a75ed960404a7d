package data

// PrestigeUpgrade ids, referenced wherever an upgrade's value is consumed.
const (
	UpgradeStartingGold  = "starting_gold"
	UpgradeStartingSP    = "starting_sp"
	UpgradeVitality      = "vitality"
	UpgradeMight         = "might"
	UpgradeArcana        = "arcana"
	UpgradeResilience    = "resilience"
	UpgradeGoldFind      = "gold_find"
	UpgradeXPGain        = "xp_gain"
	UpgradeThreeSkills   = "three_skills"
	UpgradeShopTier      = "shop_tier"
	UpgradeEnchantLuck   = "enchant_luck"
	UpgradeTrapSense     = "trap_sense"
	UpgradeRestPower     = "rest_power"
	UpgradeSynergyPower  = "synergy_power"
	UpgradeStartingLevel = "starting_level"
)

// PrestigeUpgradeDef is a permanent upgrade bought with prestige points.
// Costs[i] buys level i+1; Values[i] is the effect value at level i+1.
type PrestigeUpgradeDef struct {
	ID          string
	Name        string
	Description string
	MaxLevel    int
	Costs       []int
	Values      []float64
}

var PrestigeUpgrades = []PrestigeUpgradeDef{
	{
		ID:          UpgradeStartingGold,
		Name:        "Nest Egg",
		Description: "Start each run with bonus gold.",
		MaxLevel:    5,
		Costs:       []int{3, 8, 15, 25, 40},
		Values:      []float64{50, 150, 300, 500, 800},
	},
	{
		ID:          UpgradeStartingSP,
		Name:        "Innate Talent",
		Description: "Party members start with extra skill points.",
		MaxLevel:    3,
		Costs:       []int{5, 15, 30},
		Values:      []float64{1, 2, 3},
	},
	{
		ID:          UpgradeVitality,
		Name:        "Vitality",
		Description: "Permanent HP bonus for all party members.",
		MaxLevel:    5,
		Costs:       []int{2, 5, 10, 18, 30},
		Values:      []float64{0.05, 0.10, 0.18, 0.28, 0.40},
	},
	{
		ID:          UpgradeMight,
		Name:        "Might",
		Description: "Permanent ATK bonus for all party members.",
		MaxLevel:    5,
		Costs:       []int{2, 5, 10, 18, 30},
		Values:      []float64{0.05, 0.10, 0.18, 0.28, 0.40},
	},
	{
		ID:          UpgradeArcana,
		Name:        "Arcana",
		Description: "Permanent MAG bonus for all party members.",
		MaxLevel:    3,
		Costs:       []int{3, 8, 18},
		Values:      []float64{0.08, 0.18, 0.30},
	},
	{
		ID:          UpgradeResilience,
		Name:        "Resilience",
		Description: "Permanent DEF bonus for all party members.",
		MaxLevel:    3,
		Costs:       []int{3, 8, 18},
		Values:      []float64{0.08, 0.18, 0.30},
	},
	{
		ID:          UpgradeGoldFind,
		Name:        "Golden Touch",
		Description: "Find more gold from all sources.",
		MaxLevel:    5,
		Costs:       []int{2, 5, 10, 18, 30},
		Values:      []float64{0.10, 0.25, 0.40, 0.60, 0.85},
	},
	{
		ID:          UpgradeXPGain,
		Name:        "Quick Learner",
		Description: "Gain more XP from combat.",
		MaxLevel:    5,
		Costs:       []int{2, 5, 10, 18, 30},
		Values:      []float64{0.10, 0.20, 0.35, 0.50, 0.70},
	},
	{
		ID:          UpgradeThreeSkills,
		Name:        "Prodigy",
		Description: "Party members start with all 3 class skills.",
		MaxLevel:    1,
		Costs:       []int{20},
		Values:      []float64{1},
	},
	{
		ID:          UpgradeShopTier,
		Name:        "Merchant Connections",
		Description: "Shops offer higher tier items earlier.",
		MaxLevel:    3,
		Costs:       []int{5, 12, 25},
		Values:      []float64{1, 2, 3},
	},
	{
		ID:          UpgradeEnchantLuck,
		Name:        "Enchanter's Eye",
		Description: "Higher chance of finding enchanted items.",
		MaxLevel:    3,
		Costs:       []int{4, 10, 22},
		Values:      []float64{0.05, 0.12, 0.20},
	},
	{
		ID:          UpgradeTrapSense,
		Name:        "Trap Sense",
		Description: "Reduce damage from dungeon traps.",
		MaxLevel:    3,
		Costs:       []int{3, 8, 16},
		Values:      []float64{0.20, 0.40, 0.60},
	},
	{
		ID:          UpgradeRestPower,
		Name:        "Deep Rest",
		Description: "Rest rooms and safe rooms restore more HP/MP.",
		MaxLevel:    3,
		Costs:       []int{3, 8, 16},
		Values:      []float64{0.10, 0.20, 0.35},
	},
	{
		ID:          UpgradeSynergyPower,
		Name:        "Bonds of Fellowship",
		Description: "Party synergy bonuses are stronger.",
		MaxLevel:    3,
		Costs:       []int{5, 12, 25},
		Values:      []float64{0.25, 0.50, 1.00},
	},
	{
		ID:          UpgradeStartingLevel,
		Name:        "Head Start",
		Description: "Party members start at a higher level.",
		MaxLevel:    3,
		Costs:       []int{8, 20, 40},
		Values:      []float64{2, 4, 6},
	},
}

// PrestigeUpgrade returns the definition, or nil for an unknown id.
func PrestigeUpgrade(id string) *PrestigeUpgradeDef {
	for i := range PrestigeUpgrades {
		if PrestigeUpgrades[i].ID == id {
			return &PrestigeUpgrades[i]
		}
	}
	return nil
}
