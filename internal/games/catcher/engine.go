package catcher

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/catcher-arcade/internal/config"
	"github.com/vovakirdan/catcher-arcade/internal/core"
)

// TickResult is everything a tick produced besides the new state.
type TickResult struct {
	Events []Event
	Timers []core.TimerRequest
}

// Engine is the simulation core. It performs no I/O and is driven by
// Tick with a measured frame delta. Not safe for concurrent use.
type Engine struct {
	cfg config.CatcherConfig

	rng       *rand.Rand
	factory   *Factory
	spawner   *Spawner
	statuses  *StatusMachine
	progress  *Progression
	companion *Companion

	player   Player
	entities []Entity

	fieldW, fieldH float64
	placed         bool

	score    int
	lives    int
	gameOver bool
	session  uint64
	ticks    uint64
	stats    Stats
}

// NewEngine creates an engine and starts the first session.
func NewEngine(cfg config.CatcherConfig, seed int64) *Engine {
	e := &Engine{
		cfg:       cfg,
		statuses:  NewStatusMachine(cfg.Statuses),
		progress:  NewProgression(cfg.Progression.ScoreDivisor, cfg.Progression.MaxLevel, cfg.Progression.Enabled),
		companion: NewCompanion(cfg.Companion),
	}
	e.player.W = cfg.Player.Width
	e.player.H = cfg.Player.Height

	e.rng = rand.New(rand.NewSource(seed))
	e.factory = NewFactory(&e.cfg, e.rng)
	e.spawner = NewSpawner(&e.cfg, e.rng, e.factory)
	e.Reset(seed)
	return e
}

// Reset starts a new session. Entities, statuses and pending timer tokens
// of the previous session are discarded before the next tick.
func (e *Engine) Reset(seed int64) {
	e.session++
	e.rng = rand.New(rand.NewSource(seed))
	e.factory.SetRand(e.rng)
	e.spawner.Reset(e.rng)
	e.statuses.Reset()
	e.progress.Reset()
	e.companion.Reset()

	e.entities = e.entities[:0]
	e.score = 0
	e.lives = core.Clamp(e.cfg.Gameplay.StartLives, 0, e.cfg.Gameplay.MaxLives)
	e.gameOver = false
	e.ticks = 0
	e.stats = newStats()

	e.player.Facing = DirRight
	e.player.Moving = false
	e.centerPlayer()
}

// SetPlayfield updates the playfield size in pixels. Zero dimensions
// suspend spawning, motion and collisions until a real size arrives.
func (e *Engine) SetPlayfield(w, h float64) {
	e.fieldW = math.Max(0, w)
	e.fieldH = math.Max(0, h)
	e.player.Y = e.fieldH - e.cfg.Player.BottomMargin - e.player.H
	if !e.placed {
		e.centerPlayer()
		return
	}
	e.player.X = core.ClampF(e.player.X, 0, math.Max(0, e.fieldW-e.player.W))
}

// SetPlayerSize updates the measured player size. A zero size skips the
// collision phase.
func (e *Engine) SetPlayerSize(w, h float64) {
	e.player.W = math.Max(0, w)
	e.player.H = math.Max(0, h)
	e.SetPlayfield(e.fieldW, e.fieldH)
}

func (e *Engine) centerPlayer() {
	if e.fieldW <= 0 {
		e.placed = false
		return
	}
	e.player.X = math.Max(0, (e.fieldW-e.player.W)/2)
	e.player.Y = e.fieldH - e.cfg.Player.BottomMargin - e.player.H
	e.placed = true
}

// Tick advances the session by dt milliseconds. Non-positive deltas are
// ignored and large ones are clamped. Once the game is over the session
// is frozen until Reset.
//
// Order: move player, move companion, spawn, integrate, resolve
// collisions, count statuses down, derive level.
func (e *Engine) Tick(dt float64, in Intent) TickResult {
	var out TickResult
	if e.gameOver || !(dt > 0) || math.IsInf(dt, 0) {
		return out
	}
	if limit := e.cfg.Playfield.MaxFrameDeltaMs; limit > 0 && dt > limit {
		dt = limit
	}
	e.ticks++
	e.stats.PlayTimeMs += dt

	e.player.Move(in, e.statuses.Active(StatusControlInversion), e.cfg.Player.Speed, e.fieldW)
	e.companion.Follow(&e.player)

	ctx := SpawnContext{
		FieldW:           e.fieldW,
		Level:            e.progress.Level(),
		Lives:            e.lives,
		MaxLives:         e.cfg.Gameplay.MaxLives,
		CompanionWalking: e.companion.Walking,
	}
	ctx.DropX, ctx.HasDrop = e.companion.Center()

	// A degenerate playfield suspends spawning, motion and collisions.
	if e.fieldW > 0 && e.fieldH > 0 {
		e.entities = append(e.entities, e.spawner.Tick(dt, ctx)...)
		restY := e.fieldH - e.cfg.Playfield.GroundOffset
		e.entities = Integrate(e.entities, dt, e.fieldH, restY)
		if e.player.Measured() {
			e.resolve(&out)
		}
	}

	for _, t := range e.statuses.Tick(dt) {
		out.Events = append(out.Events, Event{Kind: EventStatusExpired, Status: t.Kind})
	}

	if lvl, up := e.progress.Update(e.score); up {
		e.stats.MaxLevel = max(e.stats.MaxLevel, lvl)
		out.Events = append(out.Events, Event{Kind: EventLevelUp, Value: lvl})
	}
	return out
}

func (e *Engine) resolve(out *TickResult) {
	hitbox := Hitbox(e.player.Body(), e.cfg.Player.Hitbox)

	var res Resolution
	e.entities, res = Resolve(hitbox, e.entities, e.statuses.Active(StatusDoublePoints), e.statuses.Immune())
	if len(res.Consumed) == 0 {
		return
	}
	e.stats.record(res)

	if res.ScoreDelta > 0 {
		e.score += res.ScoreDelta
		out.Events = append(out.Events, Event{Kind: EventCollected, Value: res.ScoreDelta})
	}

	for _, k := range res.Activate {
		out.Timers = append(out.Timers, e.statuses.Trigger(k))
		out.Events = append(out.Events, Event{Kind: EventStatusActivated, Status: k})
	}

	// The heart only counts as restored if clamping left it any effect.
	afterHit := e.lives
	if res.HazardHit {
		afterHit = max(0, afterHit-1)
	}
	e.lives = core.Clamp(e.lives+res.LifeDelta, 0, e.cfg.Gameplay.MaxLives)
	if res.HazardHit {
		out.Events = append(out.Events, Event{Kind: EventLifeLost, Value: e.lives})
	}
	if e.lives > afterHit {
		out.Events = append(out.Events, Event{Kind: EventLifeRestored, Value: e.lives})
	}

	if e.lives <= 0 && !e.gameOver {
		e.gameOver = true
		e.player.Moving = false
		e.companion.Walking = false
		out.Events = append(out.Events, Event{Kind: EventGameOver, Value: e.score})
	}
}

// HandleTimer applies a wall-clock expiry nudge. Stale or repeated tokens
// are ignored.
func (e *Engine) HandleTimer(token uint64) (Transition, bool) {
	return e.statuses.ExpireToken(token)
}

// Score returns the session score.
func (e *Engine) Score() int { return e.score }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// Level returns the current level.
func (e *Engine) Level() int { return e.progress.Level() }

// GameOver reports whether the session has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// Session returns the session number, incremented by every Reset.
func (e *Engine) Session() uint64 { return e.session }

// Stats returns the session counters.
func (e *Engine) Stats() Stats { return e.stats }

// Statuses exposes the status machine for inspection.
func (e *Engine) Statuses() *StatusMachine { return e.statuses }

// Config returns the configuration the engine runs with.
func (e *Engine) Config() *config.CatcherConfig { return &e.cfg }
