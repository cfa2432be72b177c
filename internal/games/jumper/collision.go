package jumper

// Landing describes one platform the player bounced off this tick.
type Landing struct {
	X, Y float64 // Contact point: player center x, platform top
	Tier ColorTier
}

// Contact is the outcome of resolving one tick of collisions.
type Contact struct {
	Landings []Landing
	EnemyHit bool
}

// Resolver applies one-way platform landings and detects enemy contact.
type Resolver struct {
	LandingMargin float64
	JumpImpulse   float64
}

// Resolve tests the player against every platform. Landings snap and bounce
// the player immediately; enemy contact is reported for the caller to end the
// session. Every platform is visited even after a landing or a hit.
func (r Resolver) Resolve(p *Player, platforms []Platform) Contact {
	var c Contact
	for i := range platforms {
		pl := &platforms[i]

		if p.VY > 0 && r.lands(*p, *pl) {
			p.Y = pl.Y - p.H
			p.Grounded = true
			p.Bounce(r.JumpImpulse)
			c.Landings = append(c.Landings, Landing{
				X:    p.X + p.W/2,
				Y:    pl.Y,
				Tier: pl.Tier,
			})
		}

		if pl.Enemy != nil && p.Box().Intersects(pl.Enemy.Box()) {
			c.EnemyHit = true
		}
	}
	return c
}

// lands reports whether the player's feet are within the landing band of the
// platform with open horizontal overlap.
func (r Resolver) lands(p Player, pl Platform) bool {
	bottom := p.Bottom()
	if bottom < pl.Y || bottom > pl.Y+pl.H+r.LandingMargin {
		return false
	}
	return p.Box().OverlapsX(pl.Box())
}
