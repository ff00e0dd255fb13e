// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "time"

// CatcherConfig contains all tunables of the catcher game.
type CatcherConfig struct {
	Playfield    PlayfieldConfig      `yaml:"playfield"`
	Player       PlayerConfig         `yaml:"player"`
	Companion    CompanionConfig      `yaml:"companion"`
	Levels       []LevelSettings      `yaml:"levels"`
	Progression  ProgressionConfig    `yaml:"progression"`
	Collectibles []CollectibleVariant `yaml:"collectibles"`
	PowerUps     []PowerUpVariant     `yaml:"power_ups"`
	Spawning     SpawningConfig       `yaml:"spawning"`
	SpeedScale   SpeedScaleConfig     `yaml:"speed_scale"`
	Statuses     StatusConfig         `yaml:"statuses"`
	Gameplay     GameplayConfig       `yaml:"gameplay"`
}

// Size is a width/height pair in playfield pixels.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayfieldConfig maps terminal cells onto the pixel playfield.
type PlayfieldConfig struct {
	CellWidth       float64 `yaml:"cell_width"`         // px per terminal column
	CellHeight      float64 `yaml:"cell_height"`        // px per terminal row
	HUDRows         int     `yaml:"hud_rows"`           // rows reserved for the HUD
	GroundOffset    float64 `yaml:"ground_offset"`      // settled ground items rest at height - offset
	MaxFrameDeltaMs float64 `yaml:"max_frame_delta_ms"` // larger deltas are clamped
}

// PlayerConfig defines the player body and movement.
type PlayerConfig struct {
	Width        float64     `yaml:"width"`
	Height       float64     `yaml:"height"`
	Speed        float64     `yaml:"speed"` // px per tick
	BottomMargin float64     `yaml:"bottom_margin"`
	Hitbox       HitboxInset `yaml:"hitbox"`
}

// HitboxInset holds per-side insets as fractions of the player size.
type HitboxInset struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// CompanionConfig defines the follower that drops ground items.
type CompanionConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	History    int     `yaml:"history"`     // buffered player positions
	MinHistory int     `yaml:"min_history"` // positions needed before it moves
	FollowDist float64 `yaml:"follow_dist"` // px behind the oldest position
}

// LevelSettings holds the spawn and speed rates of one level.
type LevelSettings struct {
	Speed           float64 `yaml:"speed"`         // base fall speed, px per ms
	SpawnRate       float64 `yaml:"spawn_rate"`    // collectible/hazard rate
	ObstacleRate    float64 `yaml:"obstacle_rate"` // share of spawns that are hazards
	PowerUpChance   float64 `yaml:"power_up_chance"`
	HeartChance     float64 `yaml:"heart_chance"`
	InversionChance float64 `yaml:"inversion_chance"`
	GroundChance    float64 `yaml:"ground_chance"`
}

// ProgressionConfig defines how the level follows the score.
type ProgressionConfig struct {
	Enabled      bool `yaml:"enabled"`
	ScoreDivisor int  `yaml:"score_divisor"` // points per level
	MaxLevel     int  `yaml:"max_level"`
}

// CollectibleVariant is one row of the weighted collectible table.
type CollectibleVariant struct {
	Name        string  `yaml:"name"`
	Points      int     `yaml:"points"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Probability float64 `yaml:"probability"`
}

// PowerUpVariant is one row of the weighted power-up table.
type PowerUpVariant struct {
	Kind        string  `yaml:"kind"` // "invincibility" or "double_points"
	Probability float64 `yaml:"probability"`
}

// SpawningConfig defines spawn scaling, cooldowns and entity sizes.
type SpawningConfig struct {
	SpawnScale   float64 `yaml:"spawn_scale"` // multiplier for collectible/hazard chance
	GatedScale   float64 `yaml:"gated_scale"` // multiplier for cooldown-gated chances
	SpawnOffsetY float64 `yaml:"spawn_offset_y"`

	PowerUpCooldownMs        float64 `yaml:"power_up_cooldown_ms"`
	LifeRestoreCooldownMs    float64 `yaml:"life_restore_cooldown_ms"`
	StatusModifierCooldownMs float64 `yaml:"status_modifier_cooldown_ms"`
	GroundItemCooldownMs     float64 `yaml:"ground_item_cooldown_ms"`
	ForcedGroundIntervalMs   float64 `yaml:"forced_ground_interval_ms"`

	Hazard           Size `yaml:"hazard"`
	PowerUp          Size `yaml:"power_up"`
	LifeRestore      Size `yaml:"life_restore"`
	StatusModifier   Size `yaml:"status_modifier"`
	GroundItem       Size `yaml:"ground_item"`
	GroundItemPoints int  `yaml:"ground_item_points"`
}

// SpeedScaleConfig multiplies the level speed per category.
type SpeedScaleConfig struct {
	Jitter         float64 `yaml:"jitter"` // collectibles and hazards get speed*(1+U[0,jitter))
	Collectible    float64 `yaml:"collectible"`
	Hazard         float64 `yaml:"hazard"`
	PowerUp        float64 `yaml:"power_up"`
	LifeRestore    float64 `yaml:"life_restore"`
	StatusModifier float64 `yaml:"status_modifier"`
	GroundItem     float64 `yaml:"ground_item"`
}

// StatusConfig holds status effect durations.
type StatusConfig struct {
	InvincibilityMs    int `yaml:"invincibility_ms"`
	ControlInversionMs int `yaml:"control_inversion_ms"`
	PostHitImmunityMs  int `yaml:"post_hit_immunity_ms"`
	HurtFlashMs        int `yaml:"hurt_flash_ms"`
	DoublePointsMs     int `yaml:"double_points_ms"`
}

// GameplayConfig defines the lives pool and input latch.
type GameplayConfig struct {
	StartLives   int `yaml:"start_lives"`
	MaxLives     int `yaml:"max_lives"`
	HoldWindowMs int `yaml:"hold_window_ms"`
}

// HoldWindow returns how long a pressed direction counts as held.
func (g GameplayConfig) HoldWindow() time.Duration {
	return time.Duration(g.HoldWindowMs) * time.Millisecond
}
