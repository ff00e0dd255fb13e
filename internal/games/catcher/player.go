package catcher

import (
	"math"

	"github.com/vovakirdan/catcher-arcade/internal/core"
)

// Direction is a horizontal facing.
type Direction int8

const (
	DirRight Direction = iota
	DirLeft
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Intent is the held-direction input of one tick.
type Intent struct {
	Left  bool
	Right bool
}

// Player is the catcher. Y is fixed on the baseline.
type Player struct {
	X, Y   float64
	W, H   float64
	Facing Direction
	Moving bool
}

// Measured reports whether the player has a usable size.
func (p *Player) Measured() bool {
	return p.W > 0 && p.H > 0
}

// Body returns the visual bounds.
func (p *Player) Body() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Move applies one tick of input. Under inversion left and right swap
// meaning. When both are held, right is applied last and wins the facing.
func (p *Player) Move(in Intent, inverted bool, speed, fieldW float64) {
	p.Moving = false
	if inverted {
		in.Left, in.Right = in.Right, in.Left
	}

	maxX := math.Max(0, fieldW-p.W)
	if in.Left && p.X > 0 {
		if nx := math.Max(0, p.X-speed); nx != p.X {
			p.X = nx
			p.Facing = DirLeft
			p.Moving = true
		}
	}
	if in.Right && p.X < maxX {
		if nx := math.Min(maxX, p.X+speed); nx != p.X {
			p.X = nx
			p.Facing = DirRight
			p.Moving = true
		}
	}
	p.X = core.ClampF(p.X, 0, maxX)
}
