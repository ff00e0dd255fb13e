package catcher

import (
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// EntityView is the read-only form of an entity.
type EntityView struct {
	ID      uint64  `msgpack:"id"`
	Tag     Tag     `msgpack:"tag"`
	X       float64 `msgpack:"x"`
	Y       float64 `msgpack:"y"`
	W       float64 `msgpack:"w"`
	H       float64 `msgpack:"h"`
	Speed   float64 `msgpack:"speed"`
	Variant string  `msgpack:"variant,omitempty"` // collectibles and power-ups
	Points  int     `msgpack:"points,omitempty"`
	Settled bool    `msgpack:"settled,omitempty"`
}

// ActorView is the read-only form of the player or the companion.
type ActorView struct {
	X      float64   `msgpack:"x"`
	Y      float64   `msgpack:"y"`
	W      float64   `msgpack:"w"`
	H      float64   `msgpack:"h"`
	Facing Direction `msgpack:"facing"`
	Moving bool      `msgpack:"moving"`
	Placed bool      `msgpack:"placed"`
}

// Snapshot is the per-tick state handed to renderers. It holds no
// references into the engine.
type Snapshot struct {
	Session  uint64  `msgpack:"session"`
	Tick     uint64  `msgpack:"tick"`
	FieldW   float64 `msgpack:"field_w"`
	FieldH   float64 `msgpack:"field_h"`
	Score    int     `msgpack:"score"`
	Lives    int     `msgpack:"lives"`
	MaxLives int     `msgpack:"max_lives"`
	Level    int     `msgpack:"level"`
	GameOver bool    `msgpack:"game_over"`

	Player    ActorView    `msgpack:"player"`
	Companion ActorView    `msgpack:"companion"`
	Entities  []EntityView `msgpack:"entities"`

	Statuses [StatusKindCount]Status `msgpack:"statuses"`
	Flags    Flags                   `msgpack:"flags"`
}

// ControlsReversed reports whether control inversion is active.
func (s *Snapshot) ControlsReversed() bool {
	return s.Statuses[StatusControlInversion].Active
}

// ControlsReversedLeft returns the inversion time left in milliseconds.
func (s *Snapshot) ControlsReversedLeft() float64 {
	return s.Statuses[StatusControlInversion].Remaining
}

// Encode serializes the snapshot with msgpack.
func (s *Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(s)
}

// Hash returns a digest of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	data, err := s.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Session:  e.session,
		Tick:     e.ticks,
		FieldW:   e.fieldW,
		FieldH:   e.fieldH,
		Score:    e.score,
		Lives:    e.lives,
		MaxLives: e.cfg.Gameplay.MaxLives,
		Level:    e.progress.Level(),
		GameOver: e.gameOver,
		Player: ActorView{
			X: e.player.X, Y: e.player.Y, W: e.player.W, H: e.player.H,
			Facing: e.player.Facing, Moving: e.player.Moving, Placed: e.placed,
		},
		Companion: ActorView{
			X: e.companion.X, Y: e.fieldH - e.cfg.Player.BottomMargin - e.companion.H,
			W: e.companion.W, H: e.companion.H,
			Facing: e.companion.Facing, Moving: e.companion.Walking, Placed: e.companion.Placed,
		},
		Entities: make([]EntityView, 0, len(e.entities)),
		Flags:    e.statuses.Flags(),
	}

	for k := range StatusKindCount {
		snap.Statuses[k] = e.statuses.Status(k)
	}

	for i := range e.entities {
		ent := &e.entities[i]
		v := EntityView{
			ID: ent.ID, Tag: ent.Tag(),
			X: ent.X, Y: ent.Y, W: ent.W, H: ent.H,
			Speed: ent.Speed,
		}
		switch c := ent.Category.(type) {
		case Collectible:
			v.Variant = c.Variant
			v.Points = c.Points
		case PowerUp:
			v.Variant = c.Kind.String()
		case StatusModifier:
			v.Variant = c.Kind.String()
		case GroundItem:
			v.Points = c.Points
			v.Settled = c.Settled
		}
		snap.Entities = append(snap.Entities, v)
	}
	return snap
}
