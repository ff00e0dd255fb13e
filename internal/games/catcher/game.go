// Package catcher implements Coin Catcher: the player walks along the
// bottom of the screen catching falling coins while dodging hazards.
package catcher

import (
	"fmt"
	"time"

	"github.com/vovakirdan/catcher-arcade/internal/config"
	"github.com/vovakirdan/catcher-arcade/internal/core"
	"github.com/vovakirdan/catcher-arcade/internal/registry"
)

// GameID is the identifier used on the command line and in the scores table.
const GameID = "catcher"

// noticeTTL is how long a HUD notice stays visible, in ms of play time.
const noticeTTL = 1500

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

type notice struct {
	text  string
	color core.Color
	ttl   float64
}

// Game adapts the Engine to the registry.Game interface. It maps terminal
// cells to playfield pixels and handles pause.
type Game struct {
	engine  *Engine
	cfg     config.CatcherConfig
	cfgErr  error
	runtime core.RuntimeConfig

	cols, rows int
	paused     bool
	notices    []notice
}

// New creates a game using the configuration found by LoadCatcher.
func New() *Game {
	cfg, err := config.LoadCatcher(configPath)
	if difficultyPreset != "" {
		config.ApplyCatcherPreset(&cfg, difficultyPreset)
	}
	g := NewWithConfig(cfg)
	g.cfgErr = err
	return g
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.CatcherConfig) *Game {
	return &Game{cfg: cfg}
}

// ConfigError returns the error from loading the configuration, if any.
// The game falls back to defaults in that case.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Coin Catcher"
}

// Reset starts a new session. The engine survives resets so session
// numbers keep increasing.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if g.engine == nil {
		g.engine = NewEngine(g.cfg, seed)
	} else {
		g.engine.Reset(seed)
	}
	g.paused = false
	g.notices = g.notices[:0]
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize maps a terminal of cols x rows cells onto the playfield.
func (g *Game) Resize(cols, rows int) {
	g.cols, g.rows = cols, rows
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
	if g.engine == nil {
		return
	}
	pf := g.cfg.Playfield
	w := float64(max(0, cols)) * pf.CellWidth
	h := float64(max(0, rows-pf.HUDRows)) * pf.CellHeight
	g.engine.SetPlayfield(w, h)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(g.runtime)
	}

	if in.Has(core.ActionPause) && !g.engine.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	elapsed := in.Elapsed
	if elapsed == 0 {
		elapsed = g.runtime.TickInterval()
	}
	dt := float64(elapsed) / float64(time.Millisecond)

	res := g.engine.Tick(dt, Intent{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	})

	g.ageNotices(dt)
	events := make([]core.GameEvent, 0, len(res.Events))
	for _, ev := range res.Events {
		events = append(events, core.GameEvent{Name: ev.Name(), Value: ev.Value})
		g.noticeFor(ev)
	}

	return core.StepResult{
		State:  g.State(),
		Events: events,
		Timers: res.Timers,
	}
}

// HandleTimer receives a wall-clock expiry nudge scheduled by the platform.
// Nudges arriving while paused are dropped; the simulation countdown still
// ends the status after resume.
func (g *Game) HandleTimer(token uint64) {
	if g.engine == nil || g.paused {
		return
	}
	if t, ok := g.engine.HandleTimer(token); ok {
		g.noticeFor(Event{Kind: EventStatusExpired, Status: t.Kind})
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Lives:    g.engine.Lives(),
		Level:    g.engine.Level(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused,
		Session:  g.engine.Session(),
		Stats:    g.engine.Stats().Map(),
	}
}

// Engine exposes the simulation for inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// HoldWindow is how long a direction key counts as held after a press.
func (g *Game) HoldWindow() time.Duration {
	return g.cfg.Gameplay.HoldWindow()
}

// Name returns a stable event name for logs.
func (ev Event) Name() string {
	switch ev.Kind {
	case EventStatusActivated:
		return ev.Status.String() + "_on"
	case EventStatusExpired:
		return ev.Status.String() + "_off"
	default:
		return ev.Kind.String()
	}
}

func (g *Game) noticeFor(ev Event) {
	var n notice
	switch ev.Kind {
	case EventLevelUp:
		n = notice{fmt.Sprintf("LEVEL %d!", ev.Value), core.ColorBrightCyan, 0}
	case EventLifeLost:
		n = notice{"OUCH! -1 life", core.ColorBrightRed, 0}
	case EventLifeRestored:
		n = notice{"+1 life", core.ColorBrightGreen, 0}
	case EventStatusActivated:
		switch ev.Status {
		case StatusInvincibility:
			n = notice{"INVINCIBLE!", core.ColorBrightYellow, 0}
		case StatusDoublePoints:
			n = notice{"DOUBLE POINTS!", core.ColorBrightYellow, 0}
		case StatusControlInversion:
			n = notice{"Controls reversed!", core.ColorMagenta, 0}
		default:
			return
		}
	case EventStatusExpired:
		switch ev.Status {
		case StatusInvincibility, StatusDoublePoints, StatusControlInversion:
			n = notice{ev.Status.Label() + " wore off", core.ColorGray, 0}
		default:
			return
		}
	default:
		return
	}
	n.ttl = noticeTTL
	g.notices = append(g.notices, n)
	if len(g.notices) > 3 {
		g.notices = g.notices[len(g.notices)-3:]
	}
}

func (g *Game) ageNotices(dt float64) {
	live := g.notices[:0]
	for _, n := range g.notices {
		n.ttl -= dt
		if n.ttl > 0 {
			live = append(live, n)
		}
	}
	g.notices = live
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          GameID,
		Title:       "Coin Catcher",
		Description: "Catch falling coins, dodge hazards, grab power-ups",
	}, func() registry.Game {
		return New()
	})
}
