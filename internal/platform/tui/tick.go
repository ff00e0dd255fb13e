// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catcher-arcade/internal/core"
)

// modelGen numbers game models so ticks and timers scheduled by a model
// that has since been replaced are dropped instead of driving its successor.
var modelGen atomic.Uint64

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

// TimerMsg delivers a game's timer token back after the requested delay.
type TimerMsg struct {
	Gen     uint64
	Session uint64
	Token   uint64
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}

// timerCmd schedules req for the given session.
func timerCmd(gen, session uint64, req core.TimerRequest) tea.Cmd {
	return tea.Tick(req.After, func(time.Time) tea.Msg {
		return TimerMsg{Gen: gen, Session: session, Token: req.Token}
	})
}
