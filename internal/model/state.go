package model

// Phase is the orchestrator's state machine. Only exploring and combat
// advance on scheduler ticks; safeRoom and prestige are player-gated pauses.
type Phase string

const (
	PhaseExploring Phase = "exploring"
	PhaseCombat    Phase = "combat"
	PhaseSafeRoom  Phase = "safeRoom"
	PhasePrestige  Phase = "prestige"
)

// LogType is the severity tag on a player-visible log entry.
type LogType string

const (
	LogInfo      LogType = "info"
	LogDamage    LogType = "damage"
	LogHeal      LogType = "heal"
	LogGold      LogType = "gold"
	LogLevel     LogType = "level"
	LogImportant LogType = "important"
)

// LogEntry is one line of the player-visible log.
type LogEntry struct {
	Type LogType `json:"type"`
	Text string  `json:"text"`
}

// Log trimming bounds: past logMax entries the log is cut to the most
// recent logKeep.
const (
	logMax  = 200
	logKeep = 100
)

// Dungeon tracks the current floor.
type Dungeon struct {
	CurrentFloorNum int    `json:"currentFloorNum"`
	Floor           *Floor `json:"floor"`
}

// Inventory is the party's shared gold and unequipped items.
type Inventory struct {
	Gold  int     `json:"gold"`
	Items []*Item `json:"items"`
}

// Prestige holds the meta-progression currency and the permanent upgrade
// levels bought with it.
type Prestige struct {
	Level       int            `json:"level"`
	Points      int            `json:"points"`
	TotalPoints int            `json:"totalPoints"`
	Upgrades    map[string]int `json:"upgrades"`
}

// Stats is the cumulative, monotonic counter aggregate that achievement
// predicates evaluate against. Counters never decrease.
type Stats struct {
	MonstersKilled      int             `json:"monstersKilled"`
	BossesKilled        int             `json:"bossesKilled"`
	HighestFloor        int             `json:"highestFloor"`
	HighestLevel        int             `json:"highestLevel"`
	TotalGold           int             `json:"totalGold"`
	Deaths              int             `json:"deaths"`
	TotalPrestige       int             `json:"totalPrestige"`
	FloorsCleared       int             `json:"floorsCleared"`
	ChallengesCompleted map[string]bool `json:"challengesCompleted"`
}

// State is the single authoritative run-state aggregate. The orchestrator
// is its only writer; collaborators receive a read-only snapshot reference
// after each tick's notify.
type State struct {
	Party                []*Character `json:"party"`
	Dungeon              Dungeon      `json:"dungeon"`
	Inventory            Inventory    `json:"inventory"`
	Shop                 []*Item      `json:"shop"`
	Prestige             Prestige     `json:"prestige"`
	Achievements         []string     `json:"achievements"`
	Stats                Stats        `json:"stats"`
	ActiveMutation       string       `json:"activeMutation"`
	GamePhase            Phase        `json:"gamePhase"`
	Log                  []LogEntry   `json:"log"`
	LastSafeRoomLogIndex int          `json:"lastSafeRoomLogIndex"`
	TickCount            int          `json:"tickCount"`
}

// AddLog appends a player-visible entry, trimming the log when it grows
// past the bound.
func (s *State) AddLog(t LogType, text string) {
	s.Log = append(s.Log, LogEntry{Type: t, Text: text})
	if len(s.Log) > logMax {
		trimmed := len(s.Log) - logKeep
		s.Log = append([]LogEntry(nil), s.Log[trimmed:]...)
		s.LastSafeRoomLogIndex -= trimmed
		if s.LastSafeRoomLogIndex < 0 {
			s.LastSafeRoomLogIndex = 0
		}
	}
}

// HasAchievement reports whether the achievement id is unlocked.
func (s *State) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Backfill defaults any optional fields a legacy save may be missing.
// Loading must never fail on gaps; it fills and moves on.
func (s *State) Backfill() {
	if s.Shop == nil {
		s.Shop = []*Item{}
	}
	if s.Inventory.Items == nil {
		s.Inventory.Items = []*Item{}
	}
	if s.Prestige.Upgrades == nil {
		s.Prestige.Upgrades = map[string]int{}
	}
	if s.Stats.ChallengesCompleted == nil {
		s.Stats.ChallengesCompleted = map[string]bool{}
	}
	if s.Achievements == nil {
		s.Achievements = []string{}
	}
	if s.Log == nil {
		s.Log = []LogEntry{}
	}
	if s.GamePhase == "" {
		s.GamePhase = PhaseExploring
	}
	for _, c := range s.Party {
		if c.Buffs == nil {
			c.Buffs = []Buff{}
		}
		if c.Skills == nil {
			c.Skills = []*SkillInstance{}
		}
	}
}
