package config

import (
	_ "embed"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultCatcherConfig returns the built-in catcher configuration.
// It mirrors defaults/catcher.yaml and is the last fallback of LoadCatcher.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Playfield: PlayfieldConfig{
			CellWidth:       10,
			CellHeight:      20,
			HUDRows:         2,
			GroundOffset:    60,
			MaxFrameDeltaMs: 100,
		},
		Player: PlayerConfig{
			Width:        72,
			Height:       72,
			Speed:        5,
			BottomMargin: 28,
			Hitbox: HitboxInset{
				Left:   0.25,
				Top:    0.10,
				Right:  0.25,
				Bottom: 0.05,
			},
		},
		Companion: CompanionConfig{
			Enabled:    true,
			Width:      40,
			Height:     40,
			History:    15,
			MinHistory: 10,
			FollowDist: 60,
		},
		Levels: []LevelSettings{
			{Speed: 0.2, SpawnRate: 0.02, ObstacleRate: 0.3, PowerUpChance: 0.02, HeartChance: 0.15, InversionChance: 0.02, GroundChance: 0.8},
			{Speed: 0.3, SpawnRate: 0.03, ObstacleRate: 0.4, PowerUpChance: 0.015, HeartChance: 0.15, InversionChance: 0.025, GroundChance: 0.8},
			{Speed: 0.4, SpawnRate: 0.04, ObstacleRate: 0.5, PowerUpChance: 0.01, HeartChance: 0.15, InversionChance: 0.03, GroundChance: 0.8},
		},
		Progression: ProgressionConfig{
			Enabled:      true,
			ScoreDivisor: 1500,
			MaxLevel:     3,
		},
		Collectibles: []CollectibleVariant{
			{Name: "bitcoin", Points: 500, Width: 30, Height: 30, Probability: 0.40},
			{Name: "moneycash", Points: 100, Width: 36, Height: 24, Probability: 0.35},
			{Name: "moneybag", Points: 200, Width: 36, Height: 36, Probability: 0.25},
		},
		PowerUps: []PowerUpVariant{
			{Kind: "invincibility", Probability: 0.7},
			{Kind: "double_points", Probability: 0.3},
		},
		Spawning: SpawningConfig{
			SpawnScale:               0.1,
			GatedScale:               0.01,
			PowerUpCooldownMs:        15000,
			LifeRestoreCooldownMs:    10000,
			StatusModifierCooldownMs: 12000,
			GroundItemCooldownMs:     5000,
			ForcedGroundIntervalMs:   10000,
			Hazard:                   Size{Width: 48, Height: 48},
			PowerUp:                  Size{Width: 40, Height: 40},
			LifeRestore:              Size{Width: 30, Height: 30},
			StatusModifier:           Size{Width: 43, Height: 43},
			GroundItem:               Size{Width: 23.2, Height: 23.2},
			GroundItemPoints:         150,
		},
		SpeedScale: SpeedScaleConfig{
			Jitter:         0.5,
			Collectible:    1.0,
			Hazard:         1.0,
			PowerUp:        0.8,
			LifeRestore:    0.7,
			StatusModifier: 0.75,
			GroundItem:     0.65,
		},
		Statuses: StatusConfig{
			InvincibilityMs:    5000,
			ControlInversionMs: 8000,
			PostHitImmunityMs:  1000,
			HurtFlashMs:        900,
			DoublePointsMs:     8000,
		},
		Gameplay: GameplayConfig{
			StartLives:   3,
			MaxLives:     5,
			HoldWindowMs: 180,
		},
	}
}

// DefaultYAML returns the embedded default YAML for a game, or nil.
func DefaultYAML(gameID string) []byte {
	switch gameID {
	case "catcher":
		return defaultCatcherYAML
	default:
		return nil
	}
}
