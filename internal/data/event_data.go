package data

// EventEffect is the kind tag of a dungeon event. The room handler switches
// exhaustively over these; an unknown kind is a programming error.
type EventEffect string

const (
	EventHeal           EventEffect = "heal"
	EventDamage         EventEffect = "damage"
	EventBuffAtk        EventEffect = "buff_atk"
	EventBuffDef        EventEffect = "buff_def"
	EventBuffSpd        EventEffect = "buff_spd"
	EventBuffAll        EventEffect = "buff_all"
	EventRandom         EventEffect = "random"
	EventGamble         EventEffect = "gamble"
	EventSkillXP        EventEffect = "skill_xp"
	EventCursedTreasure EventEffect = "cursed_treasure"
	EventBonusXP        EventEffect = "bonus_xp"
	EventSacrificeGold  EventEffect = "sacrifice_gold"
)

// EventDef describes one event room encounter. Value's meaning depends on
// the effect kind: heal/damage fractions of max HP, flat buff amounts,
// skill-use grants, or an XP scaling factor.
type EventDef struct {
	ID     string
	Text   string
	Effect EventEffect
	Value  float64
}

// EventTypes is the pool event rooms draw from, uniformly.
var EventTypes = []EventDef{
	{
		ID:     "fountain",
		Text:   "The party discovers a mysterious fountain. Its waters shimmer invitingly.",
		Effect: EventHeal,
		Value:  0.3,
	},
	{
		ID:     "darts",
		Text:   "A hidden trap springs! Darts fly from the walls!",
		Effect: EventDamage,
		Value:  0.15,
	},
	{
		ID:     "shrine",
		Text:   "A forgotten shrine hums with ancient power.",
		Effect: EventBuffAtk,
		Value:  3,
	},
	{
		ID:     "statue",
		Text:   "A crumbling statue whispers words of encouragement. Probably.",
		Effect: EventBuffDef,
		Value:  3,
	},
	{
		ID:     "mushroom",
		Text:   "Strange glowing mushrooms line the corridor. Someone decides to eat one.",
		Effect: EventRandom,
	},
	{
		ID:     "gambler",
		Text:   "A cloaked figure rattles a cup of dice. 'Care for a wager?'",
		Effect: EventGamble,
	},
	{
		ID:     "library",
		Text:   "Dusty tomes of forgotten technique fill a collapsed study.",
		Effect: EventSkillXP,
		Value:  2,
	},
	{
		ID:     "cursed_chest",
		Text:   "An ornate chest radiates malice. The party opens it anyway.",
		Effect: EventCursedTreasure,
	},
	{
		ID:     "spirit",
		Text:   "The ghost of a fallen adventurer lingers here, eager to talk.",
		Effect: EventBonusXP,
		Value:  0.1,
	},
	{
		ID:     "campfire",
		Text:   "Embers of an abandoned campfire still glow. The party warms up.",
		Effect: EventBuffAll,
		Value:  2,
	},
	{
		ID:     "mirror_pool",
		Text:   "A still pool reflects the party moving a half-second early.",
		Effect: EventBuffSpd,
		Value:  3,
	},
	{
		ID:     "altar",
		Text:   "A blood-stained altar demands tribute.",
		Effect: EventSacrificeGold,
	},
}

// Event returns the event definition, or nil for an unknown id.
func Event(id string) *EventDef {
	for i := range EventTypes {
		if EventTypes[i].ID == id {
			return &EventTypes[i]
		}
	}
	return nil
}
