package catcher

import "github.com/vovakirdan/catcher-arcade/internal/core"

// Tag identifies the category of a falling entity.
type Tag uint8

const (
	TagCollectible Tag = iota
	TagHazard
	TagPowerUp
	TagLifeRestore
	TagStatusModifier
	TagGroundItem
)

// String returns the category name.
func (t Tag) String() string {
	switch t {
	case TagCollectible:
		return "collectible"
	case TagHazard:
		return "hazard"
	case TagPowerUp:
		return "power-up"
	case TagLifeRestore:
		return "life-restore"
	case TagStatusModifier:
		return "status-modifier"
	case TagGroundItem:
		return "ground-item"
	default:
		return "unknown"
	}
}

// Category is the tagged variant carried by every entity. Each variant
// holds only the fields relevant to it.
type Category interface {
	Tag() Tag
}

// Collectible awards Points on contact.
type Collectible struct {
	Variant string
	Points  int
}

// Hazard costs a life on contact unless the player is immune.
type Hazard struct{}

// PowerUp activates a beneficial status.
type PowerUp struct {
	Kind PowerUpKind
}

// LifeRestore gives one life back, up to the maximum.
type LifeRestore struct{}

// StatusModifier activates a detrimental status.
type StatusModifier struct {
	Kind StatusKind
}

// GroundItem is dropped by the companion. It settles on the ground line
// and stays there until collected.
type GroundItem struct {
	Points  int
	Settled bool
}

func (Collectible) Tag() Tag    { return TagCollectible }
func (Hazard) Tag() Tag         { return TagHazard }
func (PowerUp) Tag() Tag        { return TagPowerUp }
func (LifeRestore) Tag() Tag    { return TagLifeRestore }
func (StatusModifier) Tag() Tag { return TagStatusModifier }
func (GroundItem) Tag() Tag     { return TagGroundItem }

// PowerUpKind selects the status a power-up grants.
type PowerUpKind uint8

const (
	PowerUpInvincibility PowerUpKind = iota
	PowerUpDoublePoints
)

// String returns the power-up name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpInvincibility:
		return "invincibility"
	case PowerUpDoublePoints:
		return "double_points"
	default:
		return "unknown"
	}
}

// Status returns the status activated by the power-up.
func (k PowerUpKind) Status() StatusKind {
	if k == PowerUpDoublePoints {
		return StatusDoublePoints
	}
	return StatusInvincibility
}

func parsePowerUpKind(s string) PowerUpKind {
	if s == "double_points" {
		return PowerUpDoublePoints
	}
	return PowerUpInvincibility
}

// Entity is a live object on the playfield. Only Y changes while it falls.
type Entity struct {
	ID       uint64
	X, Y     float64
	W, H     float64
	Speed    float64 // px per ms
	Category Category
}

// Box returns the entity bounds.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Tag returns the entity category tag.
func (e *Entity) Tag() Tag {
	return e.Category.Tag()
}

// Settled reports whether e is a ground item resting on the ground line.
func (e *Entity) Settled() bool {
	g, ok := e.Category.(GroundItem)
	return ok && g.Settled
}
