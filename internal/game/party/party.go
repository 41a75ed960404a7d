// Package party generates and maintains the adventuring party: character
// creation from class/race templates, party-wide heal/restore helpers and
// composition synergies.
package party

import (
	"fmt"
	"math/rand/v2"

	"github.com/udisondev/deeploop/internal/data"
	"github.com/udisondev/deeploop/internal/game/formula"
	"github.com/udisondev/deeploop/internal/model"
)

// Options tweak character creation.
type Options struct {
	// AllSkills grants all three class skills instead of two random ones
	// (the Prodigy prestige upgrade).
	AllSkills bool
}

// Factory creates characters. It owns the id sequence and the random source
// so generation is reproducible under a seeded rng.
type Factory struct {
	rng *rand.Rand
	ids *model.IDGen
}

// NewFactory returns a factory whose first character id is 1.
func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng, ids: model.NewIDGen(1)}
}

// ResetIDs rewinds the id sequence, used after loading a save so new
// characters don't collide with persisted ids.
func (f *Factory) ResetIDs(start int) {
	f.ids.Reset(start)
}

// GenerateName produces a "first name + title" display name.
func (f *Factory) GenerateName() string {
	return fmt.Sprintf("%s %s",
		formula.Choice(f.rng, data.FirstNames),
		formula.Choice(f.rng, data.Titles))
}

// CreateCharacter builds a level-1 character. Empty classID or raceID picks
// one at random. Base stats are class base + race modifier + a small jitter;
// the character starts with two of its three class skills (all three with
// opts.AllSkills).
func (f *Factory) CreateCharacter(classID, raceID string, opts Options) *model.Character {
	if classID == "" {
		classID = formula.Choice(f.rng, data.ClassIDs())
	}
	if raceID == "" {
		raceID = formula.Choice(f.rng, data.RaceIDs())
	}
	cls := data.Class(classID)
	race := data.Race(raceID)

	hp := cls.Base.HP + race.StatMods.HP + formula.RandInt(f.rng, -2, 2)
	mp := cls.Base.MP + race.StatMods.MP + formula.RandInt(f.rng, -1, 1)
	if mp < 0 {
		mp = 0
	}

	startSkills := cls.Skills[:]
	if !opts.AllSkills {
		startSkills = formula.PickN(f.rng, cls.Skills[:], 2)
	}
	skills := make([]*model.SkillInstance, 0, len(startSkills))
	for _, id := range startSkills {
		skills = append(skills, &model.SkillInstance{ID: id, Level: 1})
	}

	return &model.Character{
		ID:     f.ids.Next(),
		Name:   f.GenerateName(),
		Class:  classID,
		Race:   raceID,
		Level:  1,
		HP:     hp,
		MaxHP:  hp,
		MP:     mp,
		MaxMP:  mp,
		Atk:    cls.Base.Atk + race.StatMods.Atk + formula.RandInt(f.rng, -1, 1),
		Def:    cls.Base.Def + race.StatMods.Def + formula.RandInt(f.rng, -1, 1),
		Spd:    cls.Base.Spd + race.StatMods.Spd + formula.RandInt(f.rng, -1, 1),
		Mag:    cls.Base.Mag + race.StatMods.Mag + formula.RandInt(f.rng, -1, 1),
		Skills: skills,
		Alive:  true,
		Buffs:  []model.Buff{},
	}
}

// CreateParty builds size characters with distinct classes drawn from the
// achievement-unlocked pool.
func (f *Factory) CreateParty(size int, unlockedAchievements []string, opts Options) []*model.Character {
	available := data.UnlockedClassIDs(unlockedAchievements)
	classIDs := formula.Shuffle(f.rng, available)
	if size > len(classIDs) {
		size = len(classIDs)
	}
	party := make([]*model.Character, 0, size)
	for _, cls := range classIDs[:size] {
		party = append(party, f.CreateCharacter(cls, "", opts))
	}
	return party
}

// Restore revives the whole party at full HP/MP with cleared buffs.
func Restore(party []*model.Character) {
	for _, c := range party {
		c.HP = c.MaxHP
		c.MP = c.MaxMP
		c.Alive = true
		c.Buffs = c.Buffs[:0]
	}
}

// Heal restores a fraction of max HP and max MP to every living member.
func Heal(party []*model.Character, fraction float64) {
	for _, c := range party {
		if !c.Alive {
			continue
		}
		c.Heal(int(float64(c.MaxHP) * fraction))
		c.RestoreMP(int(float64(c.MaxMP) * fraction))
	}
}

// IsAlive reports whether anyone in the party can still fight.
func IsAlive(party []*model.Character) bool {
	for _, c := range party {
		if c.IsActive() {
			return true
		}
	}
	return false
}
