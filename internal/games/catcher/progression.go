package catcher

// LevelFor derives the level from a score.
func LevelFor(score, divisor, maxLevel int) int {
	if divisor <= 0 || score < 0 {
		return 1
	}
	return min(maxLevel, score/divisor+1)
}

// Progression tracks the level of a session. The level only rises.
type Progression struct {
	divisor int
	max     int
	enabled bool
	level   int
}

// NewProgression creates a tracker starting at level 1.
func NewProgression(divisor, maxLevel int, enabled bool) *Progression {
	return &Progression{divisor: divisor, max: maxLevel, enabled: enabled, level: 1}
}

// Update re-derives the level from score and reports a level-up.
func (p *Progression) Update(score int) (int, bool) {
	if !p.enabled {
		return p.level, false
	}
	if lvl := LevelFor(score, p.divisor, p.max); lvl > p.level {
		p.level = lvl
		return lvl, true
	}
	return p.level, false
}

// Level returns the current level.
func (p *Progression) Level() int {
	return p.level
}

// Reset returns to level 1.
func (p *Progression) Reset() {
	p.level = 1
}
