package jumper

import "github.com/vovakirdan/lavajump/internal/core"

// Integrator advances the player by one tick.
type Integrator struct {
	Gravity   float64
	MoveSpeed float64
	WorldW    float64
}

// Step clears the grounded flag, applies steering and gravity, and wraps the
// player horizontally. Left takes precedence when both directions are held.
func (ig Integrator) Step(p *Player, in core.InputFrame) {
	p.Grounded = false

	switch {
	case in.Has(core.ActionLeft):
		p.VX = -ig.MoveSpeed
	case in.Has(core.ActionRight):
		p.VX = ig.MoveSpeed
	default:
		p.VX = 0
	}

	p.X += p.VX

	// Toroidal horizontal space
	if p.X < -p.W {
		p.X = ig.WorldW
	} else if p.X > ig.WorldW {
		p.X = -p.W
	}

	p.VY += ig.Gravity
	p.Y += p.VY
}
