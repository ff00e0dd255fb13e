package catcher

import (
	"github.com/vovakirdan/catcher-arcade/internal/config"
	"github.com/vovakirdan/catcher-arcade/internal/core"
)

// Resolution is the aggregated outcome of one collision pass. Applying it
// once is equivalent to applying each contact in sequence.
type Resolution struct {
	ScoreDelta int
	LifeDelta  int
	HazardHit  bool // a hazard cost a life
	Blocked    int  // hazards absorbed by immunity
	Activate   []StatusKind
	Consumed   []Entity
}

// Hitbox returns the effective collision box of a player.
func Hitbox(body core.Box, inset config.HitboxInset) core.Box {
	return body.Inset(inset.Left, inset.Top, inset.Right, inset.Bottom)
}

// Resolve tests hitbox against every entity, removes the ones it touches
// and aggregates their effects. The returned slice reuses the backing
// array of entities.
//
// At most one hazard costs a life per pass: the first hit arms post-hit
// immunity, which absorbs the rest. immune covers immunity that was
// already active before the pass.
func Resolve(hitbox core.Box, entities []Entity, doublePoints, immune bool) ([]Entity, Resolution) {
	var res Resolution

	multiplier := 1
	if doublePoints {
		multiplier = 2
	}

	remaining := entities[:0]
	for _, e := range entities {
		if !hitbox.Overlaps(e.Box()) {
			remaining = append(remaining, e)
			continue
		}
		res.Consumed = append(res.Consumed, e)

		switch c := e.Category.(type) {
		case Collectible:
			res.ScoreDelta += c.Points * multiplier
		case GroundItem:
			res.ScoreDelta += c.Points * multiplier
		case Hazard:
			if immune {
				res.Blocked++
				continue
			}
			immune = true
			res.HazardHit = true
			res.LifeDelta--
			res.Activate = append(res.Activate, StatusHurtFlash, StatusPostHitImmunity)
		case LifeRestore:
			res.LifeDelta++
		case PowerUp:
			res.Activate = append(res.Activate, c.Kind.Status())
		case StatusModifier:
			res.Activate = append(res.Activate, c.Kind)
		}
	}
	return remaining, res
}
