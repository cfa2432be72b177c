package jumper

import (
	"math"

	"github.com/vovakirdan/lavajump/internal/config"
	"github.com/vovakirdan/lavajump/internal/core"
)

// Autopilot steers the player for headless runs. It picks the highest
// platform it can still reach and moves under it, avoiding enemies when it
// has a choice.
type Autopilot struct {
	gravity   float64
	moveSpeed float64
}

// NewAutopilot creates an autopilot for the given physics.
func NewAutopilot(cfg config.Config) Autopilot {
	return Autopilot{
		gravity:   cfg.Physics.Gravity,
		moveSpeed: cfg.Physics.MoveSpeed,
	}
}

// Decide returns the input for the next tick.
func (a Autopilot) Decide(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.Screen != ScreenPlaying || snap.Paused {
		return in
	}

	target, ok := a.target(snap)
	if !ok {
		return in
	}

	p := snap.Player
	aim := target.Box().CenterX()
	if target.Enemy != nil {
		// Land on the free strip left of the enemy
		aim = target.X + 2
	}

	dx := wrapDelta(aim-p.Box().CenterX(), snap.World.Width+p.W)
	if math.Abs(dx) <= a.moveSpeed {
		return in
	}
	if dx < 0 {
		in.Set(core.ActionLeft)
	} else {
		in.Set(core.ActionRight)
	}
	return in
}

// target selects the platform to steer toward.
func (a Autopilot) target(snap Snapshot) (Platform, bool) {
	p := snap.Player
	feet := p.Bottom()

	if p.VY < 0 && a.gravity > 0 {
		apexFeet := feet - p.VY*p.VY/(2*a.gravity)
		if best, ok := pick(snap.Platforms, func(pl Platform) bool {
			return pl.Y < feet && pl.Y > apexFeet
		}, func(x, y Platform) bool { return x.Y < y.Y }); ok {
			return best, true
		}
	}

	// Falling, or nothing reachable above: the nearest platform below
	return pick(snap.Platforms, func(pl Platform) bool {
		return pl.Y >= feet
	}, func(x, y Platform) bool { return x.Y < y.Y })
}

// pick returns the best candidate, preferring platforms without enemies.
func pick(platforms []Platform, eligible func(Platform) bool, better func(x, y Platform) bool) (Platform, bool) {
	var best, fallback Platform
	var found, foundFallback bool
	for _, pl := range platforms {
		if !eligible(pl) {
			continue
		}
		if pl.Enemy == nil {
			if !found || better(pl, best) {
				best, found = pl, true
			}
			continue
		}
		if !foundFallback || better(pl, fallback) {
			fallback, foundFallback = pl, true
		}
	}
	if found {
		return best, true
	}
	return fallback, foundFallback
}

// wrapDelta returns the shortest signed horizontal distance on a loop of the
// given period.
func wrapDelta(dx, period float64) float64 {
	if period <= 0 {
		return dx
	}
	half := period / 2
	for dx > half {
		dx -= period
	}
	for dx < -half {
		dx += period
	}
	return dx
}
