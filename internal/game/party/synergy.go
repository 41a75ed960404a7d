package party

import (
	"github.com/udisondev/deeploop/internal/data"
	"github.com/udisondev/deeploop/internal/model"
)

// ActiveSynergies returns every composition synergy the party satisfies, in
// catalog order.
func ActiveSynergies(party []*model.Character) []*data.SynergyDef {
	var active []*data.SynergyDef
	for i := range data.Synergies {
		if data.Synergies[i].Condition(party) {
			active = append(active, &data.Synergies[i])
		}
	}
	return active
}

// SynergyBonuses sums the bonuses of all active synergies.
func SynergyBonuses(party []*model.Character) model.BonusBlock {
	var total model.BonusBlock
	for _, s := range ActiveSynergies(party) {
		total.Add(s.Bonuses)
	}
	return total
}
