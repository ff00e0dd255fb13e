package catcher

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/catcher-arcade/internal/config"
	"github.com/vovakirdan/catcher-arcade/internal/core"
)

// WeightedIndex performs weighted discrete sampling. It walks weights
// accumulating mass and returns the first index whose cumulative mass
// exceeds draw. Weights need not sum to 1; when nothing matches, index 0
// is returned.
func WeightedIndex(weights []float64, draw float64) int {
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if draw < cumulative {
			return i
		}
	}
	return 0
}

// Factory creates fully initialized entities. IDs increase monotonically
// for the lifetime of the factory and are never reused.
type Factory struct {
	cfg    *config.CatcherConfig
	rng    *rand.Rand
	nextID uint64

	collectibleWeights []float64
	powerUpWeights     []float64
}

// NewFactory creates a factory drawing from rng.
func NewFactory(cfg *config.CatcherConfig, rng *rand.Rand) *Factory {
	f := &Factory{cfg: cfg, rng: rng}
	for _, v := range cfg.Collectibles {
		f.collectibleWeights = append(f.collectibleWeights, v.Probability)
	}
	for _, p := range cfg.PowerUps {
		f.powerUpWeights = append(f.powerUpWeights, p.Probability)
	}
	return f
}

// SetRand replaces the random source.
func (f *Factory) SetRand(rng *rand.Rand) {
	f.rng = rng
}

// Create makes an entity of the given category at a random x for a
// playfield fieldW wide. It returns false without allocating an ID when
// the playfield width is not known yet.
func (f *Factory) Create(tag Tag, fieldW float64, level int) (Entity, bool) {
	if fieldW <= 0 {
		return Entity{}, false
	}
	e := f.build(tag, level)
	e.X = f.rng.Float64() * math.Max(0, fieldW-e.W)
	return f.finish(e)
}

// CreateAt makes an entity centred on centerX, kept inside the playfield.
func (f *Factory) CreateAt(tag Tag, fieldW float64, level int, centerX float64) (Entity, bool) {
	if fieldW <= 0 {
		return Entity{}, false
	}
	e := f.build(tag, level)
	e.X = core.ClampF(centerX-e.W/2, 0, math.Max(0, fieldW-e.W))
	return f.finish(e)
}

func (f *Factory) finish(e Entity) (Entity, bool) {
	if !e.Box().Finite() || math.IsNaN(e.Speed) || math.IsInf(e.Speed, 0) {
		return Entity{}, false
	}
	f.nextID++
	e.ID = f.nextID
	return e, true
}

func (f *Factory) build(tag Tag, level int) Entity {
	lvl := f.cfg.Level(level)
	sp := &f.cfg.Spawning
	scale := &f.cfg.SpeedScale

	var e Entity
	switch tag {
	case TagCollectible:
		v := f.cfg.Collectibles[WeightedIndex(f.collectibleWeights, f.rng.Float64())]
		e.Category = Collectible{Variant: v.Name, Points: v.Points}
		e.W, e.H = v.Width, v.Height
		e.Speed = lvl.Speed * scale.Collectible * f.jitter()
	case TagHazard:
		e.Category = Hazard{}
		e.W, e.H = sp.Hazard.Width, sp.Hazard.Height
		e.Speed = lvl.Speed * scale.Hazard * f.jitter()
	case TagPowerUp:
		p := f.cfg.PowerUps[WeightedIndex(f.powerUpWeights, f.rng.Float64())]
		e.Category = PowerUp{Kind: parsePowerUpKind(p.Kind)}
		e.W, e.H = sp.PowerUp.Width, sp.PowerUp.Height
		e.Speed = lvl.Speed * scale.PowerUp
	case TagLifeRestore:
		e.Category = LifeRestore{}
		e.W, e.H = sp.LifeRestore.Width, sp.LifeRestore.Height
		e.Speed = lvl.Speed * scale.LifeRestore
	case TagStatusModifier:
		e.Category = StatusModifier{Kind: StatusControlInversion}
		e.W, e.H = sp.StatusModifier.Width, sp.StatusModifier.Height
		e.Speed = lvl.Speed * scale.StatusModifier
	case TagGroundItem:
		e.Category = GroundItem{Points: sp.GroundItemPoints}
		e.W, e.H = sp.GroundItem.Width, sp.GroundItem.Height
		e.Speed = lvl.Speed * scale.GroundItem
	}

	// Fully above the visible area
	e.Y = -(e.H + sp.SpawnOffsetY)
	return e
}

// jitter returns a multiplier in [1, 1+jitter).
func (f *Factory) jitter() float64 {
	return 1 + f.rng.Float64()*f.cfg.SpeedScale.Jitter
}
