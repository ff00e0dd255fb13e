package catcher

import (
	"time"

	"github.com/vovakirdan/catcher-arcade/internal/config"
	"github.com/vovakirdan/catcher-arcade/internal/core"
)

// StatusKind names a time-boxed modifier.
type StatusKind uint8

const (
	StatusInvincibility StatusKind = iota
	StatusControlInversion
	StatusPostHitImmunity
	StatusHurtFlash
	StatusDoublePoints
	StatusKindCount // Sentinel for counting kinds
)

// String returns the status name.
func (k StatusKind) String() string {
	switch k {
	case StatusInvincibility:
		return "invincibility"
	case StatusControlInversion:
		return "control_inversion"
	case StatusPostHitImmunity:
		return "post_hit_immunity"
	case StatusHurtFlash:
		return "hurt_flash"
	case StatusDoublePoints:
		return "double_points"
	default:
		return "unknown"
	}
}

// Label returns a short display name.
func (k StatusKind) Label() string {
	switch k {
	case StatusInvincibility:
		return "Invincible"
	case StatusControlInversion:
		return "Reversed"
	case StatusPostHitImmunity:
		return "Shield"
	case StatusHurtFlash:
		return "Hurt"
	case StatusDoublePoints:
		return "2x"
	default:
		return "?"
	}
}

// Status is the state of one kind. Inactive kinds have zero Remaining.
type Status struct {
	Active    bool
	Remaining float64 // ms
	Total     float64 // ms
}

// Flags are presentation outputs coupled to statuses.
type Flags struct {
	Transformed bool // set with Invincibility
	Shaking     bool // set with Invincibility
	Intoxicated bool // set with ControlInversion
}

// Transition reports a status turning on or off.
type Transition struct {
	Kind   StatusKind
	Active bool
}

// StatusMachine owns one record per status kind. It is advanced by the
// tick loop; wall-clock timers only nudge it through ExpireToken.
type StatusMachine struct {
	durations [StatusKindCount]float64
	slots     [StatusKindCount]Status
	flags     Flags

	// tokens[k] is the timer token of the current activation of k, or 0.
	// Tokens are never reused, so a token from before a Reset never matches.
	tokens    [StatusKindCount]uint64
	nextToken uint64
}

// NewStatusMachine creates a machine with durations from cfg.
func NewStatusMachine(cfg config.StatusConfig) *StatusMachine {
	m := &StatusMachine{}
	m.durations[StatusInvincibility] = float64(cfg.InvincibilityMs)
	m.durations[StatusControlInversion] = float64(cfg.ControlInversionMs)
	m.durations[StatusPostHitImmunity] = float64(cfg.PostHitImmunityMs)
	m.durations[StatusHurtFlash] = float64(cfg.HurtFlashMs)
	m.durations[StatusDoublePoints] = float64(cfg.DoublePointsMs)
	return m
}

// Trigger activates k for its full duration. An active k is re-armed, not
// extended. The returned request asks for a secondary expiry nudge.
func (m *StatusMachine) Trigger(k StatusKind) core.TimerRequest {
	d := m.durations[k]
	m.slots[k] = Status{Active: true, Remaining: d, Total: d}
	m.setFlags(k, true)

	m.nextToken++
	m.tokens[k] = m.nextToken
	return core.TimerRequest{
		Token: m.nextToken,
		After: time.Duration(d * float64(time.Millisecond)),
	}
}

// Tick counts every active status down by dt milliseconds and returns
// the kinds that expired. Each activation expires exactly once.
func (m *StatusMachine) Tick(dt float64) []Transition {
	var out []Transition
	for k := range StatusKindCount {
		s := &m.slots[k]
		if !s.Active {
			continue
		}
		s.Remaining -= dt
		if s.Remaining <= 0 {
			m.deactivate(k)
			out = append(out, Transition{Kind: k})
		}
	}
	return out
}

// ExpireToken handles a wall-clock nudge. It deactivates the status only
// if token belongs to its current activation and the status is still
// active; stale, repeated and unknown tokens are ignored.
func (m *StatusMachine) ExpireToken(token uint64) (Transition, bool) {
	if token == 0 {
		return Transition{}, false
	}
	for k := range StatusKindCount {
		if m.tokens[k] != token {
			continue
		}
		if !m.slots[k].Active {
			m.tokens[k] = 0
			return Transition{}, false
		}
		m.deactivate(k)
		return Transition{Kind: k}, true
	}
	return Transition{}, false
}

// Reset zeroes every countdown and invalidates all pending tokens.
func (m *StatusMachine) Reset() {
	m.slots = [StatusKindCount]Status{}
	m.tokens = [StatusKindCount]uint64{}
	m.flags = Flags{}
}

func (m *StatusMachine) deactivate(k StatusKind) {
	m.slots[k] = Status{Total: m.durations[k]}
	m.tokens[k] = 0
	m.setFlags(k, false)
}

func (m *StatusMachine) setFlags(k StatusKind, on bool) {
	switch k {
	case StatusInvincibility:
		m.flags.Transformed = on
		m.flags.Shaking = on
	case StatusControlInversion:
		m.flags.Intoxicated = on
	}
}

// Active reports whether k is active.
func (m *StatusMachine) Active(k StatusKind) bool {
	return m.slots[k].Active
}

// Remaining returns the time left on k in milliseconds.
func (m *StatusMachine) Remaining(k StatusKind) float64 {
	return m.slots[k].Remaining
}

// Status returns the record of k.
func (m *StatusMachine) Status(k StatusKind) Status {
	return m.slots[k]
}

// Flags returns the coupled presentation flags.
func (m *StatusMachine) Flags() Flags {
	return m.flags
}

// Immune reports whether a hazard would be ignored right now.
func (m *StatusMachine) Immune() bool {
	return m.Active(StatusInvincibility) || m.Active(StatusPostHitImmunity)
}
