package jumper

import (
	"math"
	"testing"

	"github.com/vovakirdan/lavajump/internal/config"
	"github.com/vovakirdan/lavajump/internal/core"
)

// seqRand replays a fixed sequence of values, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func newSeqRand(vals ...float64) *seqRand {
	return &seqRand{vals: vals}
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// newTestSession starts a normal-difficulty session whose generated
// platforms all sit at x=0 with an enemy, 80 units apart.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(config.Default(), core.DefaultConfig(),
		WithRand(newSeqRand(0), newSeqRand(0.5)),
		WithDifficulty("normal"))
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return s
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
