package data

// EnemySpecial marks a template behavior the combat engine dispatches on.
type EnemySpecial string

// SpecialEnrage gives bosses +30% ATK once they drop below half HP.
const SpecialEnrage EnemySpecial = "enrage"

// EnemyTemplate holds pre-scaling base stats. Floor scaling multiplies every
// stat (and the XP reward) at generation time.
type EnemyTemplate struct {
	Name    string
	HP      int
	Atk     int
	Def     int
	Spd     int
	XP      int
	Special EnemySpecial
}

// MonsterTemplates are the regular combat-room enemies.
var MonsterTemplates = []EnemyTemplate{
	{Name: "Slime", HP: 15, Atk: 5, Def: 2, Spd: 3, XP: 10},
	{Name: "Rat", HP: 10, Atk: 7, Def: 1, Spd: 8, XP: 8},
	{Name: "Skeleton", HP: 20, Atk: 8, Def: 5, Spd: 4, XP: 15},
	{Name: "Bat", HP: 8, Atk: 6, Def: 1, Spd: 12, XP: 7},
	{Name: "Goblin Scout", HP: 18, Atk: 9, Def: 3, Spd: 7, XP: 12},
	{Name: "Spider", HP: 12, Atk: 10, Def: 2, Spd: 9, XP: 11},
	{Name: "Zombie", HP: 30, Atk: 6, Def: 3, Spd: 2, XP: 14},
	{Name: "Ghost", HP: 15, Atk: 11, Def: 1, Spd: 10, XP: 16},
	{Name: "Orc", HP: 35, Atk: 12, Def: 7, Spd: 5, XP: 20},
	{Name: "Mimic", HP: 25, Atk: 14, Def: 8, Spd: 6, XP: 25},
}

// BossTemplates appear alone on every fifth floor. All bosses enrage.
var BossTemplates = []EnemyTemplate{
	{Name: "Dragon Hatchling", HP: 80, Atk: 18, Def: 12, Spd: 8, XP: 100, Special: SpecialEnrage},
	{Name: "Lich King", HP: 60, Atk: 22, Def: 8, Spd: 10, XP: 120, Special: SpecialEnrage},
	{Name: "Spider Queen", HP: 70, Atk: 16, Def: 10, Spd: 14, XP: 110, Special: SpecialEnrage},
	{Name: "Demon Lord", HP: 90, Atk: 20, Def: 14, Spd: 7, XP: 150, Special: SpecialEnrage},
	{Name: "Ancient Golem", HP: 120, Atk: 14, Def: 20, Spd: 3, XP: 130, Special: SpecialEnrage},
}
