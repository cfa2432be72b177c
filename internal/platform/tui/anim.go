package tui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation timings in seconds.
const (
	countUpSeconds = 1.2
	pulseSeconds   = 0.4
	shimmerSeconds = 1.0
)

// summaryAnim drives the game-over box: the final score counts up and a new
// record banner pulses.
type summaryAnim struct {
	countUp *gween.Tween
	pulse   *gween.Sequence // nil unless the run set a record
	score   float32
	glow    float32
	done    bool
}

func newSummaryAnim(score int, record bool) *summaryAnim {
	a := &summaryAnim{
		countUp: gween.New(0, float32(score), countUpSeconds, ease.OutCubic),
	}
	if record {
		a.pulse = gween.NewSequence(
			gween.New(0, 1, pulseSeconds, ease.InOutSine),
			gween.New(1, 0, pulseSeconds, ease.InOutSine),
		)
	}
	return a
}

// Update advances both tweens by dt seconds.
func (a *summaryAnim) Update(dt float32) {
	if !a.done {
		a.score, a.done = a.countUp.Update(dt)
	}
	if a.pulse != nil {
		var finished bool
		a.glow, _, finished = a.pulse.Update(dt)
		if finished {
			a.pulse.Reset()
		}
	}
}

// Score returns the displayed score.
func (a *summaryAnim) Score() int {
	return int(math.Round(float64(a.score)))
}

// Done reports whether the count-up has finished.
func (a *summaryAnim) Done() bool {
	return a.done
}

// Bright reports whether the record banner is in the bright half of its pulse.
func (a *summaryAnim) Bright() bool {
	return a.glow >= 0.5
}

// shimmer loops the lava wave phase through [0, 1).
type shimmer struct {
	tween *gween.Tween
	phase float32
}

func newShimmer() *shimmer {
	return &shimmer{tween: gween.New(0, 1, shimmerSeconds, ease.Linear)}
}

func (s *shimmer) Update(dt float32) float64 {
	var finished bool
	s.phase, finished = s.tween.Update(dt)
	if finished {
		s.tween.Reset()
		s.phase = 0
	}
	return float64(s.phase)
}
