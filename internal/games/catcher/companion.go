package catcher

import "github.com/vovakirdan/catcher-arcade/internal/config"

type trail struct {
	x      float64
	facing Direction
}

// Companion trails the player with a lag of a few ticks and drops
// ground items while it walks.
type Companion struct {
	X       float64
	W, H    float64
	Facing  Direction
	Walking bool
	Placed  bool // false until enough history is buffered

	cfg     config.CompanionConfig
	history []trail
}

// NewCompanion creates a companion without a position.
func NewCompanion(cfg config.CompanionConfig) *Companion {
	return &Companion{
		W:       cfg.Width,
		H:       cfg.Height,
		cfg:     cfg,
		history: make([]trail, 0, cfg.History),
	}
}

// Reset forgets the trail and the position.
func (c *Companion) Reset() {
	c.history = c.history[:0]
	c.X = 0
	c.Facing = DirRight
	c.Walking = false
	c.Placed = false
}

// Follow records the player position of this tick and moves behind the
// oldest buffered one.
func (c *Companion) Follow(p *Player) {
	if !c.cfg.Enabled {
		return
	}
	c.history = append(c.history, trail{x: p.X, facing: p.Facing})
	if len(c.history) > c.cfg.History {
		c.history = append(c.history[:0], c.history[1:]...)
	}
	if len(c.history) < c.cfg.MinHistory {
		return
	}

	target := c.history[0]
	c.X = target.x + c.cfg.FollowDist
	if target.facing == DirRight {
		c.X = target.x - c.cfg.FollowDist
	}
	c.Facing = target.facing
	c.Walking = p.Moving
	c.Placed = true
}

// Center returns the horizontal centre, if placed.
func (c *Companion) Center() (float64, bool) {
	if !c.Placed {
		return 0, false
	}
	return c.X + c.W/2, true
}
