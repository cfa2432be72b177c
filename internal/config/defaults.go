package config

import (
	_ "embed"
	"fmt"

	"github.com/vovakirdan/lavajump/internal/core"
)

//go:embed defaults/lavajump.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:     0.6,
			JumpImpulse: -15,
			MoveSpeed:   5,
		},
		Player: PlayerConfig{
			Width:  32,
			Height: 32,
		},
		Platforms: PlatformConfig{
			Height:       12,
			StartWidth:   100,
			StartOffset:  100,
			InitialCount: 20,
			GapBase:      80,
			GapJitter:    60,
			PruneMargin:  100,
		},
		Enemies: EnemyConfig{
			Size:   24,
			Offset: 24,
		},
		Collision: CollisionConfig{
			LandingMargin: 10,
			HazardBuffer:  50,
		},
		Hazard: HazardConfig{
			StartOffset: 100,
		},
		Particles: ParticleConfig{
			Count:      5,
			Decay:      0.02,
			Gravity:    0.2,
			Spread:     4,
			Lift:       2,
			MinSize:    2,
			SizeJitter: 4,
		},
		Progression: ProgressionConfig{
			PerHeight:     1000,
			MaxMultiplier: 0,
		},
		Camera: CameraConfig{
			FollowFraction: 3,
			UnitsPerMeter:  10,
		},
		Colors: ColorConfig{
			SnowAltitude: 1500,
			DarkAltitude: 3000,
		},
		DefaultDifficulty: string(DifficultyNormal),
		Difficulty: map[string]DifficultyTier{
			string(DifficultyEasy): {
				LavaSpeed:      0.3,
				EnemyFrequency: 0.15,
				PlatformSize:   100,
			},
			string(DifficultyNormal): {
				LavaSpeed:      0.5,
				EnemyFrequency: 0.25,
				PlatformSize:   80,
			},
			string(DifficultyHard): {
				LavaSpeed:      0.8,
				EnemyFrequency: 0.35,
				PlatformSize:   60,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Validate repairs values that would make the simulation degenerate and
// returns a description of every repair. A repaired config is always usable.
func (c *Config) Validate() []string {
	def := Default()
	var warnings []string

	fix := func(name string, val *float64, fallback float64) {
		if *val <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s must be positive, using %g", name, fallback))
			*val = fallback
		}
	}

	fix("world.width", &c.World.Width, def.World.Width)
	fix("world.height", &c.World.Height, def.World.Height)
	fix("player.width", &c.Player.Width, def.Player.Width)
	fix("player.height", &c.Player.Height, def.Player.Height)
	fix("platforms.height", &c.Platforms.Height, def.Platforms.Height)
	fix("platforms.start_width", &c.Platforms.StartWidth, def.Platforms.StartWidth)
	fix("platforms.gap_base", &c.Platforms.GapBase, def.Platforms.GapBase)
	fix("camera.follow_fraction", &c.Camera.FollowFraction, def.Camera.FollowFraction)
	fix("camera.units_per_meter", &c.Camera.UnitsPerMeter, def.Camera.UnitsPerMeter)
	fix("particles.decay", &c.Particles.Decay, def.Particles.Decay)

	if c.Physics.JumpImpulse >= 0 {
		warnings = append(warnings, fmt.Sprintf("physics.jump_impulse must be negative, using %g", def.Physics.JumpImpulse))
		c.Physics.JumpImpulse = def.Physics.JumpImpulse
	}
	if c.Platforms.GapJitter < 0 {
		warnings = append(warnings, "platforms.gap_jitter must not be negative, using 0")
		c.Platforms.GapJitter = 0
	}
	if c.Platforms.InitialCount < 0 {
		c.Platforms.InitialCount = 0
	}

	if len(c.Difficulty) == 0 {
		warnings = append(warnings, "no difficulty tiers configured, using built-in tiers")
		c.Difficulty = def.Difficulty
	}
	for name, tier := range c.Difficulty {
		base := def.tierDefaults(name)
		if tier.LavaSpeed <= 0 {
			warnings = append(warnings, fmt.Sprintf("difficulty.%s.lava_speed must be positive, using %g", name, base.LavaSpeed))
			tier.LavaSpeed = base.LavaSpeed
		}
		if tier.PlatformSize <= 0 {
			warnings = append(warnings, fmt.Sprintf("difficulty.%s.platform_size must be positive, using %g", name, base.PlatformSize))
			tier.PlatformSize = base.PlatformSize
		}
		if tier.EnemyFrequency < 0 || tier.EnemyFrequency > 1 {
			warnings = append(warnings, fmt.Sprintf("difficulty.%s.enemy_frequency out of [0,1], clamping", name))
			tier.EnemyFrequency = core.ClampF(tier.EnemyFrequency, 0, 1)
		}
		c.Difficulty[name] = tier
	}
	if _, ok := c.Difficulty[c.DefaultDifficulty]; !ok {
		fallback := c.defaultPreset()
		if c.DefaultDifficulty != "" {
			warnings = append(warnings, fmt.Sprintf("unknown default_difficulty %q, using %q", c.DefaultDifficulty, fallback))
		}
		c.DefaultDifficulty = string(fallback)
	}

	return warnings
}

// tierDefaults returns the built-in values for a tier name. Custom tiers
// repair towards the fallback tier.
func (c Config) tierDefaults(name string) DifficultyTier {
	if tier, ok := c.Difficulty[name]; ok {
		return tier
	}
	return c.Difficulty[string(FallbackDifficulty)]
}
