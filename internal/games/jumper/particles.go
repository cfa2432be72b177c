package jumper

import "github.com/vovakirdan/lavajump/internal/config"

// Emitter spawns and ages landing particles.
type Emitter struct {
	cfg config.ParticleConfig
	rng Rand
}

// NewEmitter creates a particle emitter using its own random source so
// decoration never perturbs world generation.
func NewEmitter(cfg config.ParticleConfig, rng Rand) *Emitter {
	return &Emitter{cfg: cfg, rng: rng}
}

// Burst appends cfg.Count particles at a landing point.
func (e *Emitter) Burst(particles []Particle, l Landing) []Particle {
	for i := 0; i < e.cfg.Count; i++ {
		particles = append(particles, Particle{
			X:    l.X,
			Y:    l.Y,
			VX:   (e.rng.Float64() - 0.5) * e.cfg.Spread,
			VY:   (e.rng.Float64()-0.5)*e.cfg.Spread - e.cfg.Lift,
			Life: 1,
			Size: e.rng.Float64()*e.cfg.SizeJitter + e.cfg.MinSize,
			Tier: l.Tier,
		})
	}
	return particles
}

// Step moves and ages particles, dropping the expired ones in place.
func (e *Emitter) Step(particles []Particle) []Particle {
	kept := particles[:0]
	for _, p := range particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += e.cfg.Gravity
		p.Life -= e.cfg.Decay
		if p.Life <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
