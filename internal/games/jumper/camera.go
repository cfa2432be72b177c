package jumper

import (
	"math"

	"github.com/vovakirdan/lavajump/internal/config"
)

// Progress tracks the upward-only camera, height reached and the speed
// multiplier derived from it.
type Progress struct {
	viewportH      float64
	followFraction float64
	unitsPerMeter  float64
	progression    *config.Progression

	cameraY    float64
	height     int
	multiplier float64
}

// NewProgress creates camera tracking for one session.
func NewProgress(cfg config.Config) *Progress {
	p := &Progress{
		viewportH:      cfg.World.Height,
		followFraction: cfg.Camera.FollowFraction,
		unitsPerMeter:  cfg.Camera.UnitsPerMeter,
		progression:    config.NewProgression(cfg.Progression),
	}
	if p.followFraction <= 0 {
		p.followFraction = 3
	}
	if p.unitsPerMeter <= 0 {
		p.unitsPerMeter = 10
	}
	p.Reset()
	return p
}

// Reset returns the camera to the session origin.
func (p *Progress) Reset() {
	p.cameraY = 0
	p.height = 0
	p.multiplier = p.progression.Multiplier(0)
}

// Follow moves the camera up toward the player and ratchets height.
// It reports whether a new height was reached.
func (p *Progress) Follow(playerY float64) bool {
	target := playerY - p.viewportH/p.followFraction
	if target < p.cameraY {
		p.cameraY = target
	}

	h := int(math.Max(0, math.Floor(-p.cameraY/p.unitsPerMeter)))
	if h <= p.height {
		return false
	}
	p.height = h
	p.multiplier = p.progression.Multiplier(h)
	return true
}

// CameraY returns the camera position (non-increasing within a session).
func (p *Progress) CameraY() float64 { return p.cameraY }

// Height returns the height reached in meters.
func (p *Progress) Height() int { return p.height }

// Score equals the height reached.
func (p *Progress) Score() int { return p.height }

// Multiplier returns the global speed multiplier.
func (p *Progress) Multiplier() float64 { return p.multiplier }

// LineY returns the world y of a height mark, used for the best-height line.
func (p *Progress) LineY(height int) float64 {
	return -float64(height) * p.unitsPerMeter
}
