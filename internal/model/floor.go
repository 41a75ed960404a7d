package model

// RoomType tags a room variant. Each variant carries its own payload fields
// on Room and its own one-shot resolution flag.
type RoomType string

const (
	RoomCombat   RoomType = "combat"
	RoomBoss     RoomType = "boss"
	RoomTreasure RoomType = "treasure"
	RoomEvent    RoomType = "event"
	RoomRest     RoomType = "rest"
	RoomTrap     RoomType = "trap"
	RoomSafe     RoomType = "safe"
)

// Room is one node in a floor's sequence. Explored marks the party having
// entered it; the variant-specific flag (Defeated/Collected/Resolved/Used)
// gates the one-shot side effect so a revisit never re-triggers it.
type Room struct {
	Type     RoomType `json:"type"`
	Explored bool     `json:"explored"`

	// combat / boss
	Enemies  []*Enemy `json:"enemies,omitempty"`
	Defeated bool     `json:"defeated,omitempty"`

	// treasure
	Item      *Item `json:"item,omitempty"`
	Gold      int   `json:"gold,omitempty"`
	Collected bool  `json:"collected,omitempty"`

	// event / trap (registry ids, resolved by the room handlers)
	EventID  string `json:"event,omitempty"`
	TrapID   string `json:"trap,omitempty"`
	Resolved bool   `json:"resolved,omitempty"`

	// rest
	HealAmount float64 `json:"healAmount,omitempty"`
	Used       bool    `json:"used,omitempty"`
}

// Floor is an ordered sequence of rooms with a cursor. Every 5th floor is a
// single-room boss floor; other floors end in a safe room.
type Floor struct {
	Number      int     `json:"number"`
	Rooms       []*Room `json:"rooms"`
	CurrentRoom int     `json:"currentRoom"`
	Completed   bool    `json:"completed"`
	IsBossFloor bool    `json:"isBossFloor"`
	Description string  `json:"description"`
}

// Current returns the room under the cursor.
func (f *Floor) Current() *Room {
	return f.Rooms[f.CurrentRoom]
}

// AtEnd reports whether the cursor is on the last room.
func (f *Floor) AtEnd() bool {
	return f.CurrentRoom >= len(f.Rooms)-1
}
