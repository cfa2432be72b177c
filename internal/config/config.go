// Package config provides YAML-based game configuration loading and
// difficulty management for lavajump.
package config

// Config contains every tunable of the simulation.
// World units are abstract; the renderer scales them onto the terminal.
type Config struct {
	World             WorldConfig               `yaml:"world"`
	Physics           PhysicsConfig             `yaml:"physics"`
	Player            PlayerConfig              `yaml:"player"`
	Platforms         PlatformConfig            `yaml:"platforms"`
	Enemies           EnemyConfig               `yaml:"enemies"`
	Collision         CollisionConfig           `yaml:"collision"`
	Hazard            HazardConfig              `yaml:"hazard"`
	Particles         ParticleConfig            `yaml:"particles"`
	Progression       ProgressionConfig         `yaml:"progression"`
	Camera            CameraConfig              `yaml:"camera"`
	Colors            ColorConfig               `yaml:"colors"`
	DefaultDifficulty string                    `yaml:"default_difficulty"`
	Difficulty        map[string]DifficultyTier `yaml:"difficulty"`
}

// WorldConfig is the viewport size in world units, fixed per session.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick integration constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
	MoveSpeed   float64 `yaml:"move_speed"`
}

// PlayerConfig defines the player hitbox.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformConfig defines platform geometry and generation.
type PlatformConfig struct {
	Height       float64 `yaml:"height"`
	StartWidth   float64 `yaml:"start_width"`
	StartOffset  float64 `yaml:"start_offset"` // Distance of the start platform above the viewport bottom
	InitialCount int     `yaml:"initial_count"`
	GapBase      float64 `yaml:"gap_base"`
	GapJitter    float64 `yaml:"gap_jitter"`
	PruneMargin  float64 `yaml:"prune_margin"`
}

// EnemyConfig defines enemy geometry.
type EnemyConfig struct {
	Size   float64 `yaml:"size"`
	Offset float64 `yaml:"offset"` // Height above the platform surface
}

// CollisionConfig holds the tuned tolerance constants.
type CollisionConfig struct {
	LandingMargin float64 `yaml:"landing_margin"`
	HazardBuffer  float64 `yaml:"hazard_buffer"`
}

// HazardConfig defines the lava start position.
type HazardConfig struct {
	StartOffset float64 `yaml:"start_offset"` // Below the viewport bottom
}

// ParticleConfig defines landing particle behaviour.
type ParticleConfig struct {
	Count      int     `yaml:"count"`
	Decay      float64 `yaml:"decay"`
	Gravity    float64 `yaml:"gravity"`
	Spread     float64 `yaml:"spread"`
	Lift       float64 `yaml:"lift"`
	MinSize    float64 `yaml:"min_size"`
	SizeJitter float64 `yaml:"size_jitter"`
}

// CameraConfig defines camera framing and the height unit.
type CameraConfig struct {
	FollowFraction float64 `yaml:"follow_fraction"` // Player kept at height/FollowFraction from the top
	UnitsPerMeter  float64 `yaml:"units_per_meter"`
}

// ColorConfig defines altitude thresholds for the cosmetic color tiers.
type ColorConfig struct {
	SnowAltitude float64 `yaml:"snow_altitude"`
	DarkAltitude float64 `yaml:"dark_altitude"`
}

// DifficultyTier is a named bundle controlling hazard speed, enemy spawn
// rate and platform size.
type DifficultyTier struct {
	LavaSpeed      float64 `yaml:"lava_speed"`
	EnemyFrequency float64 `yaml:"enemy_frequency"`
	PlatformSize   float64 `yaml:"platform_size"`
}
