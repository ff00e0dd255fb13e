package catcher

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/catcher-arcade/internal/config"
)

func newTestSpawner(cfg *config.CatcherConfig) *Spawner {
	rng := rand.New(rand.NewSource(5))
	return NewSpawner(cfg, rng, NewFactory(cfg, rng))
}

func countTag(entities []Entity, tag Tag) int {
	n := 0
	for i := range entities {
		if entities[i].Tag() == tag {
			n++
		}
	}
	return n
}

func TestSpawnerPowerUpCooldown(t *testing.T) {
	cfg := quietConfig()
	cfg.Levels[0].PowerUpChance = 100 // roll always succeeds at dt=100
	s := newTestSpawner(&cfg)
	ctx := SpawnContext{FieldW: 800, Level: 1, Lives: 3, MaxLives: 5}

	var times []float64
	for i := 0; i < 160; i++ {
		if n := countTag(s.Tick(100, ctx), TagPowerUp); n > 0 {
			times = append(times, s.Clock())
		}
	}

	// Eligible on the first tick, then only after more than 15 s
	if len(times) != 2 || times[0] != 100 || times[1] != 15200 {
		t.Errorf("power-up spawn times = %v, expected [100 15200]", times)
	}
}

func TestSpawnerLifeRestoreNeedsMissingLife(t *testing.T) {
	cfg := quietConfig()
	cfg.Levels[0].HeartChance = 100
	s := newTestSpawner(&cfg)

	full := SpawnContext{FieldW: 800, Level: 1, Lives: 5, MaxLives: 5}
	for i := 0; i < 50; i++ {
		if n := countTag(s.Tick(100, full), TagLifeRestore); n > 0 {
			t.Fatal("life-restore spawned with full lives")
		}
	}

	hurt := full
	hurt.Lives = 4
	if n := countTag(s.Tick(100, hurt), TagLifeRestore); n != 1 {
		t.Errorf("life-restore count = %d, expected 1 once a life is missing", n)
	}
}

func TestSpawnerGroundItemNeedsWalkingCompanion(t *testing.T) {
	cfg := quietConfig()
	cfg.Levels[0].GroundChance = 100
	s := newTestSpawner(&cfg)

	idle := SpawnContext{FieldW: 800, Level: 1, Lives: 3, MaxLives: 5, HasDrop: true, DropX: 200}
	for i := 0; i < 20; i++ {
		if n := countTag(s.Tick(100, idle), TagGroundItem); n > 0 {
			t.Fatal("ground item spawned while the companion stood still")
		}
	}

	walking := idle
	walking.CompanionWalking = true
	out := s.Tick(100, walking)
	if countTag(out, TagGroundItem) != 1 {
		t.Fatalf("expected one ground item, got %d", countTag(out, TagGroundItem))
	}
	if x := out[0].X + out[0].W/2; !approx(x, 200) {
		t.Errorf("ground item centre = %v, expected the companion centre 200", x)
	}
}

func TestSpawnerForcedGroundItem(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawning.ForcedGroundIntervalMs = 10000
	s := newTestSpawner(&cfg)
	ctx := SpawnContext{FieldW: 800, Level: 1, Lives: 3, MaxLives: 5}

	total := 0
	for i := 1; i <= 202; i++ {
		total += countTag(s.Tick(100, ctx), TagGroundItem)
		switch i {
		case 100:
			if total != 0 {
				t.Errorf("forced spawn at 10 s exactly, expected strictly after")
			}
		case 101, 201:
			if total != 1 {
				t.Errorf("tick %d: forced count = %d, expected 1", i, total)
			}
		case 202:
			if total != 2 {
				t.Errorf("tick %d: forced count = %d, expected 2", i, total)
			}
		}
	}
}

func TestSpawnerForcedAndChanceShareTick(t *testing.T) {
	cfg := quietConfig()
	cfg.Levels[0].GroundChance = 100
	cfg.Spawning.GroundItemCooldownMs = 0
	cfg.Spawning.ForcedGroundIntervalMs = 1000
	s := newTestSpawner(&cfg)
	ctx := SpawnContext{FieldW: 800, Level: 1, Lives: 3, MaxLives: 5, CompanionWalking: true}

	for i := 1; i <= 11; i++ {
		n := countTag(s.Tick(100, ctx), TagGroundItem)
		want := 1
		if i == 11 {
			want = 2 // both paths fire, no dedupe
		}
		if n != want {
			t.Errorf("tick %d: ground items = %d, expected %d", i, n, want)
		}
	}
}

func TestSpawnerSuspendedWithoutWidth(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	cfg.Spawning.ForcedGroundIntervalMs = 100
	for i := range cfg.Levels {
		cfg.Levels[i].SpawnRate = 100
	}
	s := newTestSpawner(&cfg)
	ctx := SpawnContext{Level: 1, Lives: 3, MaxLives: 5}

	for i := 0; i < 50; i++ {
		if out := s.Tick(100, ctx); len(out) != 0 {
			t.Fatalf("spawned %d entities without a playfield width", len(out))
		}
	}

	ctx.FieldW = 800
	if out := s.Tick(100, ctx); countTag(out, TagGroundItem) != 1 {
		t.Error("forced ground item should fire once the width is known")
	}
}

func TestSpawnerResetClearsCooldowns(t *testing.T) {
	cfg := quietConfig()
	cfg.Levels[0].InversionChance = 100
	s := newTestSpawner(&cfg)
	ctx := SpawnContext{FieldW: 800, Level: 1, Lives: 3, MaxLives: 5}

	if countTag(s.Tick(100, ctx), TagStatusModifier) != 1 {
		t.Fatal("expected a status modifier on the first tick")
	}
	if countTag(s.Tick(100, ctx), TagStatusModifier) != 0 {
		t.Fatal("status modifier should be on cooldown")
	}

	s.Reset(rand.New(rand.NewSource(5)))
	if s.Clock() != 0 {
		t.Errorf("Clock() after reset = %v", s.Clock())
	}
	if countTag(s.Tick(100, ctx), TagStatusModifier) != 1 {
		t.Error("cooldown should not survive a reset")
	}
}
