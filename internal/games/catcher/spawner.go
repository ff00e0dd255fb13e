package catcher

import (
	"math/rand"

	"github.com/vovakirdan/catcher-arcade/internal/config"
)

// gate indexes the cooldown-gated spawn categories.
type gate uint8

const (
	gatePowerUp gate = iota
	gateLifeRestore
	gateStatusModifier
	gateGroundItem
	gateCount
)

// SpawnContext is the session state the spawner reads each tick.
type SpawnContext struct {
	FieldW   float64
	Level    int
	Lives    int
	MaxLives int

	// Companion state. Ground items drop from DropX when HasDrop is set.
	CompanionWalking bool
	DropX            float64
	HasDrop          bool
}

// Spawner decides once per tick which categories emit an entity.
// Its clock is the sum of tick deltas, so paused time does not count.
type Spawner struct {
	cfg     *config.CatcherConfig
	rng     *rand.Rand
	factory *Factory

	clock      float64
	lastSpawn  [gateCount]float64
	spawned    [gateCount]bool
	lastForced float64
}

// NewSpawner creates a spawner that builds entities with factory.
func NewSpawner(cfg *config.CatcherConfig, rng *rand.Rand, factory *Factory) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, factory: factory}
}

// Reset restarts the clock and clears all cooldowns.
func (s *Spawner) Reset(rng *rand.Rand) {
	s.rng = rng
	s.clock = 0
	s.lastSpawn = [gateCount]float64{}
	s.spawned = [gateCount]bool{}
	s.lastForced = 0
}

// Clock returns the simulation time in milliseconds.
func (s *Spawner) Clock() float64 {
	return s.clock
}

// Tick advances the clock by dt milliseconds and returns the entities
// spawned this tick. The forced and the chance-based ground item are
// independent and may both fire in the same tick.
func (s *Spawner) Tick(dt float64, ctx SpawnContext) []Entity {
	s.clock += dt

	var out []Entity
	emit := func(e Entity, ok bool) bool {
		if ok {
			out = append(out, e)
		}
		return ok
	}

	lvl := s.cfg.Level(ctx.Level)
	sp := &s.cfg.Spawning

	if s.rng.Float64() < lvl.SpawnRate*dt*sp.SpawnScale {
		tag := TagHazard
		if s.rng.Float64() > lvl.ObstacleRate {
			tag = TagCollectible
		}
		emit(s.factory.Create(tag, ctx.FieldW, ctx.Level))
	}

	if s.ready(gatePowerUp, sp.PowerUpCooldownMs) && s.roll(lvl.PowerUpChance, dt) {
		if emit(s.factory.Create(TagPowerUp, ctx.FieldW, ctx.Level)) {
			s.mark(gatePowerUp)
		}
	}

	if ctx.Lives < ctx.MaxLives && s.ready(gateLifeRestore, sp.LifeRestoreCooldownMs) && s.roll(lvl.HeartChance, dt) {
		if emit(s.factory.Create(TagLifeRestore, ctx.FieldW, ctx.Level)) {
			s.mark(gateLifeRestore)
		}
	}

	if s.ready(gateStatusModifier, sp.StatusModifierCooldownMs) && s.roll(lvl.InversionChance, dt) {
		if emit(s.factory.Create(TagStatusModifier, ctx.FieldW, ctx.Level)) {
			s.mark(gateStatusModifier)
		}
	}

	if ctx.CompanionWalking && s.ready(gateGroundItem, sp.GroundItemCooldownMs) && s.roll(lvl.GroundChance, dt) {
		if emit(s.groundItem(ctx)) {
			s.mark(gateGroundItem)
		}
	}

	if s.clock-s.lastForced > sp.ForcedGroundIntervalMs {
		if emit(s.groundItem(ctx)) {
			s.lastForced = s.clock
		}
	}

	return out
}

func (s *Spawner) groundItem(ctx SpawnContext) (Entity, bool) {
	if ctx.HasDrop {
		return s.factory.CreateAt(TagGroundItem, ctx.FieldW, ctx.Level, ctx.DropX)
	}
	return s.factory.Create(TagGroundItem, ctx.FieldW, ctx.Level)
}

// ready reports whether g has never spawned or its cooldown has passed.
func (s *Spawner) ready(g gate, cooldown float64) bool {
	return !s.spawned[g] || s.clock-s.lastSpawn[g] > cooldown
}

func (s *Spawner) mark(g gate) {
	s.spawned[g] = true
	s.lastSpawn[g] = s.clock
}

func (s *Spawner) roll(chance, dt float64) bool {
	return s.rng.Float64() < chance*dt*s.cfg.Spawning.GatedScale
}
