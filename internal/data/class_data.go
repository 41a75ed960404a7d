package data

import "github.com/udisondev/deeploop/internal/model"

// Class ids.
const (
	ClassWarrior     = "warrior"
	ClassMage        = "mage"
	ClassRogue       = "rogue"
	ClassHealer      = "healer"
	ClassPaladin     = "paladin"
	ClassNecromancer = "necromancer"
	ClassBerserker   = "berserker"
	ClassMonk        = "monk"
)

// ClassDef holds the static definition of a playable class: base stats at
// level 1, flat per-level growths and the three class skills. UnlockReq
// names an achievement id that gates the class, empty = always available.
type ClassDef struct {
	ID          string
	Name        string
	Description string
	Base        model.StatBlock
	Growth      model.StatBlock
	Skills      [3]string
	UnlockReq   string
}

var classTable = map[string]*ClassDef{
	ClassWarrior: {
		ID:          ClassWarrior,
		Name:        "Warrior",
		Description: "Hits things. Gets hit. Keeps going.",
		Base:        model.StatBlock{HP: 45, MP: 5, Atk: 12, Def: 10, Spd: 6, Mag: 2},
		Growth:      model.StatBlock{HP: 8, MP: 1, Atk: 3, Def: 2, Spd: 1, Mag: 0},
		Skills:      [3]string{"slash", "shield_bash", "war_cry"},
	},
	ClassMage: {
		ID:          ClassMage,
		Name:        "Mage",
		Description: "Turns MP into someone else's problem.",
		Base:        model.StatBlock{HP: 25, MP: 30, Atk: 3, Def: 4, Spd: 7, Mag: 14},
		Growth:      model.StatBlock{HP: 3, MP: 5, Atk: 0, Def: 1, Spd: 1, Mag: 4},
		Skills:      [3]string{"fireball", "ice_shard", "arcane_blast"},
	},
	ClassRogue: {
		ID:          ClassRogue,
		Name:        "Rogue",
		Description: "Fast, sneaky, questionable morals.",
		Base:        model.StatBlock{HP: 30, MP: 10, Atk: 10, Def: 5, Spd: 14, Mag: 5},
		Growth:      model.StatBlock{HP: 4, MP: 2, Atk: 2, Def: 1, Spd: 3, Mag: 1},
		Skills:      [3]string{"backstab", "poison_blade", "evasion"},
	},
	ClassHealer: {
		ID:          ClassHealer,
		Name:        "Healer",
		Description: "Keeps everyone alive. Mostly.",
		Base:        model.StatBlock{HP: 30, MP: 25, Atk: 4, Def: 6, Spd: 8, Mag: 12},
		Growth:      model.StatBlock{HP: 5, MP: 4, Atk: 0, Def: 1, Spd: 1, Mag: 3},
		Skills:      [3]string{"heal", "bless", "smite"},
	},
	ClassPaladin: {
		ID:          ClassPaladin,
		Name:        "Paladin",
		Description: "Faith is armor. Also, actual armor.",
		Base:        model.StatBlock{HP: 40, MP: 15, Atk: 10, Def: 12, Spd: 5, Mag: 8},
		Growth:      model.StatBlock{HP: 7, MP: 2, Atk: 2, Def: 3, Spd: 0, Mag: 2},
		Skills:      [3]string{"holy_strike", "lay_on_hands", "divine_aura"},
		UnlockReq:   "floor_50",
	},
	ClassNecromancer: {
		ID:          ClassNecromancer,
		Name:        "Necromancer",
		Description: "Death is just another resource to manage.",
		Base:        model.StatBlock{HP: 22, MP: 35, Atk: 2, Def: 3, Spd: 6, Mag: 16},
		Growth:      model.StatBlock{HP: 2, MP: 6, Atk: 0, Def: 0, Spd: 1, Mag: 5},
		Skills:      [3]string{"soul_bolt", "drain_life", "bone_shield"},
		UnlockReq:   "prestige_3",
	},
	ClassBerserker: {
		ID:          ClassBerserker,
		Name:        "Berserker",
		Description: "Defense is for people who plan to survive.",
		Base:        model.StatBlock{HP: 35, MP: 5, Atk: 16, Def: 3, Spd: 10, Mag: 1},
		Growth:      model.StatBlock{HP: 6, MP: 0, Atk: 4, Def: 0, Spd: 2, Mag: 0},
		Skills:      [3]string{"reckless_blow", "blood_rage", "cleave"},
		UnlockReq:   "killer_500",
	},
	ClassMonk: {
		ID:          ClassMonk,
		Name:        "Monk",
		Description: "Punches things at the speed of enlightenment.",
		Base:        model.StatBlock{HP: 32, MP: 12, Atk: 9, Def: 7, Spd: 16, Mag: 6},
		Growth:      model.StatBlock{HP: 5, MP: 2, Atk: 2, Def: 1, Spd: 4, Mag: 1},
		Skills:      [3]string{"palm_strike", "inner_peace", "flurry"},
		UnlockReq:   "floor_100",
	},
}

// classOrder keeps deterministic iteration for generation and tests.
var classOrder = []string{
	ClassWarrior, ClassMage, ClassRogue, ClassHealer,
	ClassPaladin, ClassNecromancer, ClassBerserker, ClassMonk,
}

// Class returns the class definition, or nil for an unknown id.
func Class(id string) *ClassDef {
	return classTable[id]
}

// ClassIDs returns all class ids in a stable order.
func ClassIDs() []string {
	return append([]string(nil), classOrder...)
}

// UnlockedClassIDs filters class ids down to those whose unlock requirement
// is met by the given achievement set.
func UnlockedClassIDs(unlocked []string) []string {
	has := func(id string) bool {
		for _, a := range unlocked {
			if a == id {
				return true
			}
		}
		return false
	}
	out := make([]string, 0, len(classOrder))
	for _, id := range classOrder {
		cls := classTable[id]
		if cls.UnlockReq == "" || has(cls.UnlockReq) {
			out = append(out, id)
		}
	}
	return out
}
