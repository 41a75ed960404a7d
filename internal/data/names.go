package data

// FirstNames and Titles feed the party name generator.
var FirstNames = []string{
	"Aric", "Bren", "Cael", "Dorn", "Elm", "Finn", "Gale", "Holt",
	"Iris", "Jade", "Kael", "Luna", "Moss", "Nyx", "Orin", "Pike",
	"Quinn", "Ren", "Sage", "Thorn", "Uma", "Vale", "Wren", "Xia",
	"Yew", "Zara", "Ash", "Briar", "Cliff", "Dawn", "Echo", "Flint",
}

var Titles = []string{
	"the Bold", "the Wise", "Ironjaw", "Lightfoot", "Stormborn",
	"the Unlikely", "Mudfoot", "the Hungry", "Goldtooth", "the Lost",
	"the Brave", "Shadowstep", "Fireheart", "the Meek", "Sparkfinger",
	"the Sleepy", "Rockbiter", "the Lucky", "Moonwhisper", "Dirthand",
}

// FloorDescriptions cycle by floor number.
var FloorDescriptions = []string{
	"Damp stone walls echo with distant dripping.",
	"Cobwebs thick as curtains hang from the ceiling.",
	"The air smells faintly of sulfur and bad decisions.",
	"Luminescent fungi cast an eerie green glow.",
	"Ancient carvings depict heroes who probably did better than you.",
	"The floor is suspiciously sticky.",
	"A cold wind howls through unseen passages.",
	"Someone scratched \"TURN BACK\" on the wall. How helpful.",
	"The walls seem to shift when you look away.",
	"A faded sign reads \"Welcome to level ???\". Very informative.",
	"Mushrooms grow in the shape of a face. It does not look happy.",
	"Tiny footprints lead in circles around a rock.",
}

// FloorDescription returns the flavor line for a floor number (1-based).
func FloorDescription(floor int) string {
	return FloorDescriptions[(floor-1)%len(FloorDescriptions)]
}
