package jumper

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lavajump/internal/config"
)

// Rand is the randomness source used by generation and particles.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Generator creates platforms above the camera and prunes the ones that fell
// below it.
type Generator struct {
	cfg   config.Config
	tier  config.DifficultyTier
	rng   Rand
	lastY float64 // Y of the highest platform generated so far
}

// NewGenerator creates a generator for one difficulty tier.
func NewGenerator(cfg config.Config, tier config.DifficultyTier, rng Rand) *Generator {
	return &Generator{cfg: cfg, tier: tier, rng: rng}
}

// Seed builds the platform set for a new session: the start platform
// followed by the initial upward run.
func (g *Generator) Seed() []Platform {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	start := Platform{
		X: w/2 - g.cfg.Platforms.StartWidth/2,
		Y: h - g.cfg.Platforms.StartOffset,
		W: g.cfg.Platforms.StartWidth,
		H: g.cfg.Platforms.Height,
	}
	start.Tier = g.tierAt(start.Y)

	platforms := make([]Platform, 0, g.cfg.Platforms.InitialCount+1)
	platforms = append(platforms, start)
	g.lastY = start.Y

	for i := 0; i < g.cfg.Platforms.InitialCount; i++ {
		platforms = append(platforms, g.Next())
	}
	return platforms
}

// Next generates one platform above the highest one, with an optional enemy.
func (g *Generator) Next() Platform {
	gap := g.cfg.Platforms.GapBase + g.rng.Float64()*g.cfg.Platforms.GapJitter
	y := g.lastY - gap

	size := g.tier.PlatformSize
	span := math.Max(0, g.cfg.World.Width-size)
	x := g.rng.Float64() * span

	p := Platform{
		X:    x,
		Y:    y,
		W:    size,
		H:    g.cfg.Platforms.Height,
		Tier: g.tierAt(y),
	}

	if g.rng.Float64() < g.tier.EnemyFrequency {
		ey := y - g.cfg.Enemies.Offset
		p.Enemy = &Enemy{
			X:    x + size/2 - g.cfg.Enemies.Size/2,
			Y:    ey,
			W:    g.cfg.Enemies.Size,
			H:    g.cfg.Enemies.Size,
			Tier: g.tierAt(ey),
		}
	}

	g.lastY = y
	return p
}

// Extend adds at most one platform when the highest one is no longer a full
// viewport above the camera.
func (g *Generator) Extend(platforms []Platform, cameraY float64) []Platform {
	if g.lastY > cameraY-g.cfg.World.Height {
		platforms = append(platforms, g.Next())
	}
	return platforms
}

// Prune drops platforms (and their enemies) that fell below the visible
// window. The slice is filtered in place.
func (g *Generator) Prune(platforms []Platform, cameraY float64) []Platform {
	limit := cameraY + g.cfg.World.Height + g.cfg.Platforms.PruneMargin
	kept := platforms[:0]
	for _, p := range platforms {
		if p.Y > limit {
			continue
		}
		kept = append(kept, p)
	}
	// Release dropped enemies
	for i := len(kept); i < len(platforms); i++ {
		platforms[i] = Platform{}
	}
	return kept
}

func (g *Generator) tierAt(y float64) ColorTier {
	return tierAt(y, g.cfg.World.Height, g.cfg.Colors.SnowAltitude, g.cfg.Colors.DarkAltitude)
}
