// Package jumper implements the lavajump simulation: a character bounces
// between procedurally generated platforms while lava rises from below.
//
// Entities are plain data. The Session owns all of them and mutates them only
// inside Tick; presentation code reads Snapshots.
package jumper

import "github.com/vovakirdan/lavajump/internal/core"

// ColorTier is the cosmetic altitude band an entity was created in.
type ColorTier int

const (
	TierGround ColorTier = iota
	TierSnow
	TierDark
)

// String returns the tier name.
func (t ColorTier) String() string {
	switch t {
	case TierGround:
		return "ground"
	case TierSnow:
		return "snow"
	case TierDark:
		return "dark"
	default:
		return "unknown"
	}
}

// Player is the bouncing character.
type Player struct {
	X, Y     float64
	VX, VY   float64
	W, H     float64
	Grounded bool // True only after a landing in the current tick
}

// Box returns the player's hitbox.
func (p Player) Box() core.AABB {
	return core.NewAABB(p.X, p.Y, p.W, p.H)
}

// Bottom returns the y-coordinate of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.H
}

// Bounce applies the jump impulse when grounded.
func (p *Player) Bounce(impulse float64) {
	if !p.Grounded {
		return
	}
	p.VY = impulse
}

// Enemy sits on a platform; touching it ends the session.
type Enemy struct {
	X, Y float64
	W, H float64
	Tier ColorTier
}

// Box returns the enemy hitbox.
func (e Enemy) Box() core.AABB {
	return core.NewAABB(e.X, e.Y, e.W, e.H)
}

// Platform is a one-way surface the player bounces off.
type Platform struct {
	X, Y  float64
	W, H  float64
	Enemy *Enemy // Owned; removed together with the platform
	Tier  ColorTier
}

// Box returns the platform rectangle.
func (p Platform) Box() core.AABB {
	return core.NewAABB(p.X, p.Y, p.W, p.H)
}

// Particle is a decorative landing spark.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at spawn, removed once <= 0
	Size   float64
	Tier   ColorTier
}

// tierAt maps a world y-coordinate to its color tier. Altitude is measured
// from the viewport bottom.
func tierAt(y, viewportH, snowAltitude, darkAltitude float64) ColorTier {
	altitude := viewportH - y
	switch {
	case altitude > darkAltitude:
		return TierDark
	case altitude > snowAltitude:
		return TierSnow
	default:
		return TierGround
	}
}
