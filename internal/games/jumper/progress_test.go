package jumper

import (
	"testing"

	"github.com/vovakirdan/lavajump/internal/config"
)

func TestProgressCameraOnlyMovesUp(t *testing.T) {
	p := NewProgress(config.Default())

	steps := []struct {
		playerY    float64
		wantCamera float64
		wantHeight int
		wantNew    bool
	}{
		{300, 0, 0, false},   // target 100, below origin
		{150, -50, 5, true},  // target -50
		{400, -50, 5, false}, // falling back never lowers the camera
		{-1000, -1200, 120, true},
		{-995, -1200, 120, false},
	}

	for i, st := range steps {
		gotNew := p.Follow(st.playerY)
		if p.CameraY() != st.wantCamera {
			t.Errorf("step %d: CameraY = %f, expected %f", i, p.CameraY(), st.wantCamera)
		}
		if p.Height() != st.wantHeight || p.Score() != st.wantHeight {
			t.Errorf("step %d: height/score = %d/%d, expected %d", i, p.Height(), p.Score(), st.wantHeight)
		}
		if gotNew != st.wantNew {
			t.Errorf("step %d: new height = %v, expected %v", i, gotNew, st.wantNew)
		}
	}

	if !approx(p.Multiplier(), 1.12) {
		t.Errorf("Multiplier = %f, expected 1.12", p.Multiplier())
	}
	if p.LineY(120) != -1200 {
		t.Errorf("LineY(120) = %f, expected -1200", p.LineY(120))
	}

	p.Reset()
	if p.CameraY() != 0 || p.Height() != 0 || p.Multiplier() != 1 {
		t.Errorf("Reset left camera=%f height=%d multiplier=%f", p.CameraY(), p.Height(), p.Multiplier())
	}
}

func TestProgressHeightFloors(t *testing.T) {
	p := NewProgress(config.Default())
	// target = -19.5 - 0 -> floor(1.95) = 1
	p.Follow(180.5)
	if p.Height() != 1 {
		t.Errorf("Height = %d, expected 1", p.Height())
	}
}

func TestHazardAdvanceAndEngulf(t *testing.T) {
	h := NewHazard(600, 100, 50)
	if h.Y() != 700 {
		t.Fatalf("start Y = %f, expected 700", h.Y())
	}

	h.Advance(0.5 * 1.5)
	if h.Y() != 699.25 {
		t.Errorf("Y = %f, expected 699.25", h.Y())
	}

	h.Advance(-3)
	if h.Y() != 699.25 {
		t.Errorf("negative speed moved the lava to %f", h.Y())
	}

	tests := []struct {
		y    float64
		want bool
	}{
		{649.25, false},
		{649.5, true},
		{100, false},
	}
	for _, tc := range tests {
		if got := h.Engulfs(Player{Y: tc.y}); got != tc.want {
			t.Errorf("Engulfs(y=%f) = %v, expected %v", tc.y, got, tc.want)
		}
	}

	h.Reset()
	if h.Y() != 700 {
		t.Errorf("Reset Y = %f, expected 700", h.Y())
	}
}

func TestEmitterBurstAndDecay(t *testing.T) {
	cfg := config.Default().Particles
	e := NewEmitter(cfg, newSeqRand(0.5, 0.75, 0.25))

	particles := e.Burst(nil, Landing{X: 10, Y: 20, Tier: TierDark})
	if len(particles) != 5 {
		t.Fatalf("Burst() spawned %d particles, expected 5", len(particles))
	}
	first := particles[0]
	if first.X != 10 || first.Y != 20 || first.Life != 1 || first.Tier != TierDark {
		t.Errorf("unexpected particle: %+v", first)
	}
	// vx = (0.5-0.5)*4, vy = (0.75-0.5)*4 - 2, size = 0.25*4 + 2
	if first.VX != 0 || first.VY != -1 || first.Size != 3 {
		t.Errorf("particle motion = (%f, %f) size %f, expected (0, -1) size 3", first.VX, first.VY, first.Size)
	}

	particles = e.Step(particles)
	if !approx(particles[0].Life, 0.98) {
		t.Errorf("Life = %f, expected 0.98", particles[0].Life)
	}
	if particles[0].Y != 19 || !approx(particles[0].VY, -0.8) {
		t.Errorf("after step y=%f vy=%f, expected 19 and -0.8", particles[0].Y, particles[0].VY)
	}

	// Life 1 decays by 0.02: gone after at most 51 steps
	for i := 0; i < 60 && len(particles) > 0; i++ {
		particles = e.Step(particles)
	}
	if len(particles) != 0 {
		t.Errorf("%d particles never expired", len(particles))
	}
}
