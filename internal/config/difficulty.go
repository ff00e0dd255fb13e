package config

import (
	"errors"
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value into a preset. The empty string
// means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// speedFactorForPreset returns the fall speed multiplier of a preset.
func speedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// ApplyCatcherPreset modifies the config based on a difficulty preset.
func ApplyCatcherPreset(cfg *CatcherConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Progression.Enabled = false
		return
	}

	factor := speedFactorForPreset(preset)
	for i := range cfg.Levels {
		cfg.Levels[i].Speed *= factor
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartLives = cfg.Gameplay.MaxLives
	case DifficultyHard:
		cfg.Gameplay.StartLives = 2
	}
}

// Level returns the settings for a 1-based level. Levels outside the
// table clamp to the nearest defined one.
func (c CatcherConfig) Level(n int) LevelSettings {
	if len(c.Levels) == 0 {
		return LevelSettings{}
	}
	idx := n - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.Levels) {
		idx = len(c.Levels) - 1
	}
	return c.Levels[idx]
}

// Validate rejects configurations the game cannot run with.
func Validate(c CatcherConfig) error {
	var errs []error

	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("levels: at least one level is required"))
	}
	for i, l := range c.Levels {
		if l.Speed <= 0 || !finite(l.Speed) {
			errs = append(errs, fmt.Errorf("levels[%d]: speed must be positive", i))
		}
		for _, p := range []float64{l.SpawnRate, l.ObstacleRate, l.PowerUpChance, l.HeartChance, l.InversionChance, l.GroundChance} {
			if p < 0 || !finite(p) {
				errs = append(errs, fmt.Errorf("levels[%d]: rates must be non-negative", i))
				break
			}
		}
	}

	if c.Progression.ScoreDivisor <= 0 {
		errs = append(errs, errors.New("progression: score_divisor must be positive"))
	}
	if c.Progression.MaxLevel < 1 {
		errs = append(errs, errors.New("progression: max_level must be at least 1"))
	}

	if len(c.Collectibles) == 0 {
		errs = append(errs, errors.New("collectibles: at least one variant is required"))
	}
	for i, v := range c.Collectibles {
		if v.Width <= 0 || v.Height <= 0 {
			errs = append(errs, fmt.Errorf("collectibles[%d]: size must be positive", i))
		}
		if v.Points < 0 || v.Probability < 0 {
			errs = append(errs, fmt.Errorf("collectibles[%d]: points and probability must be non-negative", i))
		}
	}

	if len(c.PowerUps) == 0 {
		errs = append(errs, errors.New("power_ups: at least one kind is required"))
	}
	for i, p := range c.PowerUps {
		if p.Kind != "invincibility" && p.Kind != "double_points" {
			errs = append(errs, fmt.Errorf("power_ups[%d]: unknown kind %q", i, p.Kind))
		}
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player: size must be positive"))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, errors.New("player: speed must be non-negative"))
	}
	if c.Playfield.CellWidth <= 0 || c.Playfield.CellHeight <= 0 {
		errs = append(errs, errors.New("playfield: cell size must be positive"))
	}
	if c.Gameplay.MaxLives < 1 {
		errs = append(errs, errors.New("gameplay: max_lives must be at least 1"))
	}
	if c.Gameplay.StartLives < 1 {
		errs = append(errs, errors.New("gameplay: start_lives must be at least 1"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid catcher config: %w", errors.Join(errs...))
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
