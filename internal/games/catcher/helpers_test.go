package catcher

import (
	"math"
	"testing"

	"github.com/vovakirdan/catcher-arcade/internal/config"
)

// quietConfig returns the default config with every random spawn disabled.
func quietConfig() config.CatcherConfig {
	cfg := config.DefaultCatcherConfig()
	for i := range cfg.Levels {
		cfg.Levels[i].SpawnRate = 0
		cfg.Levels[i].PowerUpChance = 0
		cfg.Levels[i].HeartChance = 0
		cfg.Levels[i].InversionChance = 0
		cfg.Levels[i].GroundChance = 0
	}
	cfg.Spawning.ForcedGroundIntervalMs = math.Inf(1)
	return cfg
}

// newQuietEngine returns an engine on an 800x440 playfield with no spawning.
func newQuietEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(quietConfig(), 1)
	e.SetPlayfield(800, 440)
	return e
}

// overPlayer returns an entity box that overlaps the player hitbox.
func overPlayer(e *Engine, cat Category, w, h float64) Entity {
	return Entity{
		ID:       1000 + uint64(len(e.entities)),
		X:        e.player.X + e.player.W/2 - w/2,
		Y:        e.player.Y + e.player.H/2 - h/2,
		W:        w,
		H:        h,
		Category: cat,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
