package jumper

import (
	"testing"

	"github.com/vovakirdan/lavajump/internal/core"
)

func newTestIntegrator() Integrator {
	return Integrator{Gravity: 0.6, MoveSpeed: 5, WorldW: 800}
}

func TestIntegratorSteering(t *testing.T) {
	tests := []struct {
		name   string
		in     core.InputFrame
		wantVX float64
	}{
		{"none", input(), 0},
		{"left", input(core.ActionLeft), -5},
		{"right", input(core.ActionRight), 5},
		{"both prefers left", input(core.ActionLeft, core.ActionRight), -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{X: 100, Y: 100, VX: 3, W: 32, H: 32}
			newTestIntegrator().Step(&p, tc.in)
			if p.VX != tc.wantVX {
				t.Errorf("VX = %f, expected %f", p.VX, tc.wantVX)
			}
			if p.X != 100+tc.wantVX {
				t.Errorf("X = %f, expected %f", p.X, 100+tc.wantVX)
			}
		})
	}
}

func TestIntegratorGravity(t *testing.T) {
	p := Player{X: 100, Y: 100, VY: -15, W: 32, H: 32}
	newTestIntegrator().Step(&p, input())

	if !approx(p.VY, -14.4) {
		t.Errorf("VY = %f, expected -14.4", p.VY)
	}
	if !approx(p.Y, 85.6) {
		t.Errorf("Y = %f, expected 85.6", p.Y)
	}
}

func TestIntegratorHorizontalWrap(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		in    core.InputFrame
		wantX float64
	}{
		{"off left edge", -30, input(core.ActionLeft), 800},
		{"partly off left stays", -20, input(core.ActionLeft), -25},
		{"off right edge", 798, input(core.ActionRight), -32},
		{"exactly at right edge stays", 795, input(core.ActionRight), 800},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{X: tc.x, Y: 100, W: 32, H: 32}
			newTestIntegrator().Step(&p, tc.in)
			if p.X != tc.wantX {
				t.Errorf("X = %f, expected %f", p.X, tc.wantX)
			}
		})
	}
}

func TestIntegratorClearsGrounded(t *testing.T) {
	p := Player{Y: 100, W: 32, H: 32, Grounded: true}
	newTestIntegrator().Step(&p, input())
	if p.Grounded {
		t.Error("Grounded should be reset at the start of integration")
	}
}

func TestBounceRequiresGrounded(t *testing.T) {
	p := Player{VY: 3}
	p.Bounce(-15)
	if p.VY != 3 {
		t.Errorf("airborne Bounce changed VY to %f", p.VY)
	}

	p.Grounded = true
	p.Bounce(-15)
	if p.VY != -15 {
		t.Errorf("grounded Bounce VY = %f, expected -15", p.VY)
	}
}
