package catcher

// EventKind identifies a notable change during a tick.
type EventKind uint8

const (
	EventLevelUp EventKind = iota
	EventLifeLost
	EventLifeRestored
	EventCollected
	EventStatusActivated
	EventStatusExpired
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLevelUp:
		return "level_up"
	case EventLifeLost:
		return "life_lost"
	case EventLifeRestored:
		return "life_restored"
	case EventCollected:
		return "collected"
	case EventStatusActivated:
		return "status_activated"
	case EventStatusExpired:
		return "status_expired"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by Tick. Value carries the level, points or final
// score depending on Kind; Status is set for status events.
type Event struct {
	Kind   EventKind
	Value  int
	Status StatusKind
}

// Stats are per-session counters persisted alongside the score.
type Stats struct {
	Collected       map[string]int // coins per variant
	GroundItems     int
	HazardsHit      int
	HazardsBlocked  int
	PowerUps        int
	LifeRestores    int
	StatusModifiers int
	MaxLevel        int
	PlayTimeMs      float64
}

func newStats() Stats {
	return Stats{Collected: make(map[string]int), MaxLevel: 1}
}

// Map flattens the counters for storage.
func (s Stats) Map() map[string]int {
	m := map[string]int{
		"ground_items":     s.GroundItems,
		"hazards_hit":      s.HazardsHit,
		"hazards_blocked":  s.HazardsBlocked,
		"power_ups":        s.PowerUps,
		"life_restores":    s.LifeRestores,
		"status_modifiers": s.StatusModifiers,
		"max_level":        s.MaxLevel,
		"play_time_ms":     int(s.PlayTimeMs),
	}
	for variant, n := range s.Collected {
		m["coins_"+variant] = n
	}
	return m
}

func (s *Stats) record(res Resolution) {
	if res.HazardHit {
		s.HazardsHit++
	}
	s.HazardsBlocked += res.Blocked
	for _, e := range res.Consumed {
		switch c := e.Category.(type) {
		case Collectible:
			s.Collected[c.Variant]++
		case GroundItem:
			s.GroundItems++
		case PowerUp:
			s.PowerUps++
		case LifeRestore:
			s.LifeRestores++
		case StatusModifier:
			s.StatusModifiers++
		}
	}
}
