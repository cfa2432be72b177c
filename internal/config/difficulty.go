package config

import (
	"math"
	"sort"
)

// DifficultyPreset names a difficulty tier.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// FallbackDifficulty is used when neither the requested nor the configured
// default tier exists.
const FallbackDifficulty = DifficultyNormal

// ProgressionConfig defines how the global speed multiplier grows with height.
type ProgressionConfig struct {
	PerHeight     float64 `yaml:"per_height"`     // Height at which the multiplier has grown by 1.0
	MaxMultiplier float64 `yaml:"max_multiplier"` // 0 disables the cap
}

// Tier returns the named difficulty tier. Unknown names resolve to the
// configured default tier (or normal) and report false, so generation never
// runs with undefined parameters.
func (c Config) Tier(name string) (DifficultyPreset, DifficultyTier, bool) {
	if tier, ok := c.Difficulty[name]; ok {
		return DifficultyPreset(name), tier, true
	}
	preset := c.defaultPreset()
	return preset, c.Difficulty[string(preset)], false
}

func (c Config) defaultPreset() DifficultyPreset {
	if _, ok := c.Difficulty[c.DefaultDifficulty]; ok {
		return DifficultyPreset(c.DefaultDifficulty)
	}
	if _, ok := c.Difficulty[string(FallbackDifficulty)]; ok {
		return FallbackDifficulty
	}
	// Any tier beats none; pick deterministically.
	names := c.TierNames()
	if len(names) > 0 {
		return DifficultyPreset(names[0])
	}
	return FallbackDifficulty
}

// TierNames returns the configured tier names ordered by lava speed, then name.
func (c Config) TierNames() []string {
	names := make([]string, 0, len(c.Difficulty))
	for name := range c.Difficulty {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := c.Difficulty[names[i]], c.Difficulty[names[j]]
		if a.LavaSpeed != b.LavaSpeed {
			return a.LavaSpeed < b.LavaSpeed
		}
		return names[i] < names[j]
	})
	return names
}

// Progression calculates the global speed multiplier from height reached.
type Progression struct {
	cfg ProgressionConfig
}

// NewProgression creates a progression calculator.
func NewProgression(cfg ProgressionConfig) *Progression {
	return &Progression{cfg: cfg}
}

// Multiplier returns 1 + height/perHeight, capped when a cap is configured.
// The result is non-decreasing in height.
func (p *Progression) Multiplier(height int) float64 {
	perHeight := p.cfg.PerHeight
	if perHeight <= 0 {
		perHeight = 1 // Prevent division by zero
	}
	m := 1 + math.Max(0, float64(height))/perHeight
	if p.cfg.MaxMultiplier > 0 {
		m = math.Min(m, math.Max(1, p.cfg.MaxMultiplier))
	}
	return m
}
