// Package testutil provides deterministic fixtures shared by package tests:
// a seeded random source and canned combatants.
package testutil

import (
	"math/rand/v2"

	"github.com/udisondev/deeploop/internal/model"
)

// RNG returns a deterministic random source for the given seed.
func RNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Fighter returns a plain level-1 warrior with no skills, suitable for
// tests that only need a body in the party.
func Fighter(id int, name string) *model.Character {
	return &model.Character{
		ID: id, Name: name, Class: "warrior", Race: "human",
		Level: 1, HP: 50, MaxHP: 50, MP: 10, MaxMP: 10,
		Atk: 12, Def: 10, Spd: 8, Mag: 2,
		Skills: []*model.SkillInstance{}, Alive: true, Buffs: []model.Buff{},
	}
}

// Slime returns a weak canned enemy with the given HP.
func Slime(hp int) *model.Enemy {
	return &model.Enemy{Name: "Slime", HP: hp, MaxHP: hp, Atk: 5, Def: 2, Spd: 3, XP: 10}
}
