package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catcher-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// HoldLatch turns key presses into held directions. Terminals report
// presses and auto-repeats but never releases, so a direction counts as
// held for a short window after its last press. Pressing the opposite
// direction releases the first one immediately.
type HoldLatch struct {
	window      time.Duration
	left, right time.Time
}

// NewHoldLatch creates a latch with the given hold window.
func NewHoldLatch(window time.Duration) *HoldLatch {
	return &HoldLatch{window: window}
}

// Press records a press of a direction at now. Other actions are ignored.
func (h *HoldLatch) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.left = now
		h.right = time.Time{}
	case core.ActionRight:
		h.right = now
		h.left = time.Time{}
	}
}

// Apply marks the directions still held at now on frame.
func (h *HoldLatch) Apply(frame *core.InputFrame, now time.Time) {
	if h.held(h.left, now) {
		frame.Set(core.ActionLeft)
	}
	if h.held(h.right, now) {
		frame.Set(core.ActionRight)
	}
}

// Release drops both directions.
func (h *HoldLatch) Release() {
	h.left, h.right = time.Time{}, time.Time{}
}

func (h *HoldLatch) held(at, now time.Time) bool {
	return !at.IsZero() && now.Sub(at) < h.window
}
