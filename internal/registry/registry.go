// Package registry holds the set of playable games. Games register a
// factory from their init() so the platform can build them by ID without
// importing game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/catcher-arcade/internal/core"
)

// Game is the contract between a simulation and the platform.
// Implementations hold pure logic; input mapping, timing and drawing to a
// terminal belong to the platform.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// scores table.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh session. Called once before the first Step and
	// again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame. in.Elapsed carries the
	// measured frame delta.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current session state.
	State() core.GameState
}

// Resizable is implemented by games whose playfield follows the terminal.
type Resizable interface {
	Resize(cols, rows int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game. Panics on an empty or duplicate ID.
func Register(info GameInfo, f Factory) {
	if info.ID == "" {
		panic("registry: empty game id")
	}
	if f == nil {
		panic(fmt.Sprintf("registry: nil factory for %q", info.ID))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// unregister removes a game. Test helper.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, id)
}
