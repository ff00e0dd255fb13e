package catcher

import (
	"math"
	"testing"

	"github.com/vovakirdan/catcher-arcade/internal/config"
)

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestEngineHazardScenario(t *testing.T) {
	e := newQuietEngine(t)
	e.player.X = 40
	e.entities = append(e.entities, Entity{ID: 500, X: 50, Y: 0, W: 48, H: 48, Speed: 0.2, Category: Hazard{}})

	var events []Event
	for i := 0; i < 300 && e.Lives() == 3; i++ {
		res := e.Tick(16, Intent{})
		events = append(events, res.Events...)
	}

	if e.Lives() != 2 {
		t.Fatalf("Lives = %d, expected 2", e.Lives())
	}
	if len(e.entities) != 0 {
		t.Errorf("hazard should be removed, %d entities left", len(e.entities))
	}
	for _, k := range []StatusKind{StatusHurtFlash, StatusPostHitImmunity} {
		if !e.statuses.Active(k) || e.statuses.Remaining(k) <= 0 {
			t.Errorf("%s should be active with time left, got %+v", k, e.statuses.Status(k))
		}
	}
	if !hasEvent(events, EventLifeLost) {
		t.Error("expected a LifeLost event")
	}
	if e.GameOver() {
		t.Error("game should not be over with 2 lives")
	}
	if e.Stats().HazardsHit != 1 {
		t.Errorf("HazardsHit = %d, expected 1", e.Stats().HazardsHit)
	}
}

func TestEngineNoLifeLossWhileImmune(t *testing.T) {
	for _, k := range []StatusKind{StatusInvincibility, StatusPostHitImmunity} {
		t.Run(k.String(), func(t *testing.T) {
			e := newQuietEngine(t)
			e.statuses.Trigger(k)
			e.entities = append(e.entities, overPlayer(e, Hazard{}, 48, 48))

			e.Tick(16, Intent{})

			if e.Lives() != 3 {
				t.Errorf("Lives = %d, expected 3", e.Lives())
			}
			if len(e.entities) != 0 {
				t.Error("hazard should still be consumed")
			}
			if e.statuses.Active(StatusHurtFlash) {
				t.Error("blocked hazard must not flash")
			}
		})
	}
}

func TestEngineDoublePoints(t *testing.T) {
	e := newQuietEngine(t)
	cash := Collectible{Variant: "moneycash", Points: 100}

	e.entities = append(e.entities, overPlayer(e, cash, 36, 24))
	res := e.Tick(16, Intent{})
	if e.Score() != 100 {
		t.Fatalf("Score = %d, expected 100", e.Score())
	}
	if len(res.Events) == 0 || res.Events[0].Kind != EventCollected || res.Events[0].Value != 100 {
		t.Errorf("Events = %+v, expected Collected(100)", res.Events)
	}

	e.entities = append(e.entities, overPlayer(e, PowerUp{Kind: PowerUpDoublePoints}, 40, 40))
	res = e.Tick(16, Intent{})
	if !e.statuses.Active(StatusDoublePoints) {
		t.Fatal("double points should be active")
	}
	if len(res.Timers) != 1 {
		t.Errorf("Timers = %+v, expected one expiry nudge", res.Timers)
	}

	e.entities = append(e.entities, overPlayer(e, cash, 36, 24))
	e.Tick(16, Intent{})
	if e.Score() != 300 {
		t.Errorf("Score = %d, expected 300 (100 + 2x100)", e.Score())
	}
}

func TestEngineGameOverLatch(t *testing.T) {
	e := newQuietEngine(t)
	e.lives = 1
	e.entities = append(e.entities, overPlayer(e, Hazard{}, 48, 48))

	res := e.Tick(16, Intent{Left: true})
	if !e.GameOver() || e.Lives() != 0 {
		t.Fatalf("GameOver = %v, Lives = %d", e.GameOver(), e.Lives())
	}
	if !hasEvent(res.Events, EventGameOver) {
		t.Error("expected a GameOver event")
	}

	// Frozen: more hazards and input change nothing
	e.statuses.Reset()
	e.entities = append(e.entities,
		overPlayer(e, Hazard{}, 48, 48),
		Entity{ID: 900, X: 10, Y: 0, W: 30, H: 30, Speed: 0.2, Category: Hazard{}},
	)
	x := e.player.X
	for i := 0; i < 50; i++ {
		if res := e.Tick(16, Intent{Right: true}); len(res.Events) != 0 {
			t.Fatalf("events after game over: %+v", res.Events)
		}
	}
	if e.Lives() != 0 || !e.GameOver() {
		t.Errorf("latch broken: Lives = %d, GameOver = %v", e.Lives(), e.GameOver())
	}
	if e.player.X != x || e.player.Moving {
		t.Error("player moved after game over")
	}
	if e.entities[1].Y != 0 {
		t.Error("entities moved after game over")
	}

	e.Reset(3)
	if e.GameOver() || e.Lives() != 3 || e.Score() != 0 || len(e.entities) != 0 {
		t.Errorf("Reset did not start a fresh session: over=%v lives=%d score=%d entities=%d",
			e.GameOver(), e.Lives(), e.Score(), len(e.entities))
	}
}

func TestEngineLivesClamp(t *testing.T) {
	e := newQuietEngine(t)
	e.lives = 5
	e.entities = append(e.entities, overPlayer(e, LifeRestore{}, 30, 30))
	res := e.Tick(16, Intent{})
	if e.Lives() != 5 {
		t.Errorf("Lives = %d, expected clamp at 5", e.Lives())
	}
	if hasEvent(res.Events, EventLifeRestored) {
		t.Error("a heart caught at full lives restores nothing")
	}

	e.lives = 4
	e.entities = append(e.entities, overPlayer(e, LifeRestore{}, 30, 30))
	res = e.Tick(16, Intent{})
	if e.Lives() != 5 || !hasEvent(res.Events, EventLifeRestored) {
		t.Errorf("Lives = %d, events = %+v", e.Lives(), res.Events)
	}

	// Hazard and heart in one tick cancel out
	e.lives = 1
	e.entities = append(e.entities, overPlayer(e, Hazard{}, 48, 48), overPlayer(e, LifeRestore{}, 30, 30))
	res = e.Tick(16, Intent{})
	if e.Lives() != 1 || e.GameOver() {
		t.Errorf("Lives = %d, GameOver = %v, expected 1 and false", e.Lives(), e.GameOver())
	}
	if !hasEvent(res.Events, EventLifeLost) || !hasEvent(res.Events, EventLifeRestored) {
		t.Errorf("events = %+v, expected both a lost and a restored life", res.Events)
	}
}

func TestEngineResetDuringInversion(t *testing.T) {
	e := newQuietEngine(t)
	e.entities = append(e.entities, overPlayer(e, StatusModifier{Kind: StatusControlInversion}, 43, 43))

	res := e.Tick(16, Intent{})
	snap := e.Snapshot()
	if !snap.ControlsReversed() || !snap.Flags.Intoxicated {
		t.Fatal("controls should be reversed")
	}
	if len(res.Timers) != 1 {
		t.Fatalf("Timers = %+v, expected one", res.Timers)
	}
	stale := res.Timers[0].Token

	e.Reset(2)
	snap = e.Snapshot()
	if snap.ControlsReversed() || snap.ControlsReversedLeft() != 0 || snap.Flags.Intoxicated {
		t.Errorf("after reset: reversed=%v left=%v", snap.ControlsReversed(), snap.ControlsReversedLeft())
	}

	if _, ok := e.HandleTimer(stale); ok {
		t.Error("stale timer from the previous session must be ignored")
	}
	for i := 0; i < 600; i++ {
		e.Tick(16, Intent{})
		if e.statuses.Active(StatusControlInversion) {
			t.Fatalf("tick %d: inversion came back on", i)
		}
	}

	// A new activation is unaffected by the stale token
	e.statuses.Trigger(StatusControlInversion)
	if _, ok := e.HandleTimer(stale); ok || !e.statuses.Active(StatusControlInversion) {
		t.Error("stale token deactivated a new activation")
	}
}

func TestEngineInvertedMovement(t *testing.T) {
	e := newQuietEngine(t)
	x := e.player.X
	e.statuses.Trigger(StatusControlInversion)

	e.Tick(16, Intent{Left: true})
	if e.player.X != x+5 || e.player.Facing != DirRight {
		t.Errorf("inverted left: x = %v facing %s, expected %v facing right", e.player.X, e.player.Facing, x+5)
	}
}

func TestEngineFrameDelta(t *testing.T) {
	e := newQuietEngine(t)
	e.entities = append(e.entities, Entity{ID: 1, X: 700, Y: 0, W: 30, H: 30, Speed: 0.2, Category: Hazard{}})

	for _, dt := range []float64{0, -16, math.NaN(), math.Inf(1)} {
		e.Tick(dt, Intent{Right: true})
	}
	snap := e.Snapshot()
	if snap.Tick != 0 || e.entities[0].Y != 0 {
		t.Errorf("invalid deltas advanced the game: tick=%d y=%v", snap.Tick, e.entities[0].Y)
	}

	// A stall is clamped to max_frame_delta_ms
	e.Tick(10000, Intent{})
	if !approx(e.entities[0].Y, 20) {
		t.Errorf("y = %v, expected 20 after a clamped 100 ms step", e.entities[0].Y)
	}
}

func TestEngineNotReady(t *testing.T) {
	t.Run("unmeasured player", func(t *testing.T) {
		e := newQuietEngine(t)
		hazard := overPlayer(e, Hazard{}, 48, 48)
		e.SetPlayerSize(0, 0)
		e.entities = append(e.entities, hazard)

		e.Tick(16, Intent{})
		if len(e.entities) != 1 || e.Lives() != 3 {
			t.Error("collision phase should be skipped without a player size")
		}

		e.SetPlayerSize(72, 72)
		e.player.X = hazard.X + hazard.W/2 - 36
		e.Tick(16, Intent{})
		if e.Lives() != 2 {
			t.Errorf("Lives = %d, expected 2 once measured", e.Lives())
		}
	})

	t.Run("unknown playfield", func(t *testing.T) {
		cfg := config.DefaultCatcherConfig()
		for i := range cfg.Levels {
			cfg.Levels[i].SpawnRate = 1e6
		}
		e := NewEngine(cfg, 1)

		for i := 0; i < 500; i++ {
			e.Tick(16, Intent{Left: true})
		}
		if len(e.entities) != 0 {
			t.Errorf("%d entities spawned without a playfield", len(e.entities))
		}

		e.SetPlayfield(800, 440)
		e.Tick(16, Intent{})
		if len(e.entities) == 0 {
			t.Error("spawning should resume once the playfield is known")
		}
	})

	t.Run("zero height", func(t *testing.T) {
		cfg := config.DefaultCatcherConfig()
		for i := range cfg.Levels {
			cfg.Levels[i].SpawnRate = 1e6
		}
		e := NewEngine(cfg, 1)
		e.SetPlayfield(800, 0)

		for i := 0; i < 5000; i++ {
			e.Tick(16, Intent{})
		}
		if len(e.entities) != 0 {
			t.Errorf("%d entities spawned on an 800x0 playfield", len(e.entities))
		}
	})
}

func TestEngineLevelUp(t *testing.T) {
	e := newQuietEngine(t)
	e.score = 1400
	e.entities = append(e.entities, overPlayer(e, Collectible{Variant: "bitcoin", Points: 500}, 30, 30))

	res := e.Tick(16, Intent{})
	if e.Level() != 2 {
		t.Fatalf("Level = %d, expected 2", e.Level())
	}
	found := false
	for _, ev := range res.Events {
		if ev.Kind == EventLevelUp && ev.Value == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("Events = %+v, expected LevelUp(2)", res.Events)
	}
	if e.Stats().MaxLevel != 2 {
		t.Errorf("MaxLevel = %d", e.Stats().MaxLevel)
	}

	if res := e.Tick(16, Intent{}); hasEvent(res.Events, EventLevelUp) {
		t.Error("level-up must fire once")
	}
}

func TestEngineSessionsAndIDs(t *testing.T) {
	e := newQuietEngine(t)
	s1 := e.Session()

	a, _ := e.factory.Create(TagHazard, 800, 1)
	e.Reset(1)
	b, _ := e.factory.Create(TagHazard, 800, 1)

	if e.Session() != s1+1 {
		t.Errorf("Session = %d, expected %d", e.Session(), s1+1)
	}
	if b.ID <= a.ID {
		t.Errorf("IDs reused across reset: %d then %d", a.ID, b.ID)
	}
}

func TestEngineDeterminism(t *testing.T) {
	run := func(seed int64) []uint64 {
		cfg := config.DefaultCatcherConfig()
		for i := range cfg.Levels {
			cfg.Levels[i].SpawnRate *= 5
		}
		e := NewEngine(cfg, seed)
		e.SetPlayfield(800, 440)

		var hashes []uint64
		for i := 0; i < 3000; i++ {
			in := Intent{Left: i%90 < 40, Right: i%90 >= 50}
			e.Tick(16+float64(i%3), in)
			if i%100 == 0 {
				snap := e.Snapshot()
				hashes = append(hashes, snap.Hash())
			}
		}
		return hashes
	}

	h1 := run(42)
	h2 := run(42)
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Fatalf("checkpoint %d: hashes differ %d != %d", i, h1[i], h2[i])
		}
	}

	h3 := run(43)
	if h1[len(h1)-1] == h3[len(h3)-1] {
		t.Error("different seeds produced identical runs")
	}
}

func TestSnapshotEncode(t *testing.T) {
	e := newQuietEngine(t)
	e.entities = append(e.entities,
		Entity{ID: 1, X: 10, Y: 20, W: 30, H: 30, Speed: 0.2, Category: Collectible{Variant: "bitcoin", Points: 500}},
		Entity{ID: 2, X: 10, Y: 380, W: 23.2, H: 23.2, Category: GroundItem{Points: 150, Settled: true}},
	)
	snap := e.Snapshot()

	if len(snap.Entities) != 2 || snap.Entities[0].Variant != "bitcoin" || !snap.Entities[1].Settled {
		t.Errorf("Entities = %+v", snap.Entities)
	}
	data, err := snap.Encode()
	if err != nil || len(data) == 0 {
		t.Fatalf("Encode() = %d bytes, %v", len(data), err)
	}

	before := snap.Hash()
	e.player.X++
	after := e.Snapshot()
	if after.Hash() == before {
		t.Error("hash should change with the player position")
	}
}
