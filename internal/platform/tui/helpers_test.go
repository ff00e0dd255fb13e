package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catcher-arcade/internal/core"
	"github.com/vovakirdan/catcher-arcade/internal/registry"
	"github.com/vovakirdan/catcher-arcade/internal/storage"
)

const fakeGameID = "tui_fake"

// fakeGame records what the platform feeds it.
type fakeGame struct {
	state  core.GameState
	steps  []core.InputFrame
	resets int
	sizes  [][2]int
	timers []uint64
}

func (g *fakeGame) ID() string { return fakeGameID }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Session: uint64(g.resets), Lives: 1, Level: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(cols, rows int) { g.sizes = append(g.sizes, [2]int{cols, rows}) }
func (g *fakeGame) HandleTimer(token uint64) { g.timers = append(g.timers, token) }
func (g *fakeGame) HoldWindow() time.Duration { return 180 * time.Millisecond }
func (g *fakeGame) lastStep() core.InputFrame { return g.steps[len(g.steps)-1] }

var lastFake *fakeGame

func init() {
	registry.Register(registry.GameInfo{ID: fakeGameID, Title: "Fake"}, func() registry.Game {
		lastFake = &fakeGame{}
		return lastFake
	})
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }
func newClock() *clock { return &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)} }
