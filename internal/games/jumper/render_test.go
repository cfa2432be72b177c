package jumper

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lavajump/internal/core"
)

func TestRenderStartFrame(t *testing.T) {
	s := newTestSession(t)
	dst := core.NewScreen(80, 24)
	View{}.Render(dst, s.Snapshot())

	if !strings.HasPrefix(dst.Row(0), " Score: 0  Height: 0m") {
		t.Errorf("HUD row = %q", dst.Row(0))
	}
	if !strings.Contains(dst.Row(0), "normal x1.00") {
		t.Errorf("HUD should show difficulty and multiplier: %q", dst.Row(0))
	}

	// Player at world (384, 300): row 12, cols 38-40
	for x := 38; x <= 40; x++ {
		cell := dst.GetCell(x, 12)
		if cell.Rune != PlayerChar || cell.Color != core.ColorPink {
			t.Errorf("cell (%d, 12) = %+v, expected player", x, cell)
		}
	}
	if dst.Get(38, 11) != EarChar {
		t.Errorf("expected an ear above the player, got %q", dst.Get(38, 11))
	}

	// Start platform at world (350, 500) width 100: row 20, cols 35-44
	for x := 35; x <= 44; x++ {
		cell := dst.GetCell(x, 20)
		if cell.Rune != PlatformChar || cell.Color != core.ColorBrown {
			t.Errorf("cell (%d, 20) = %+v, expected platform", x, cell)
		}
	}

	// Lava starts below the viewport
	for y := 1; y < 24; y++ {
		if strings.ContainsRune(dst.Row(y), LavaChar) {
			t.Errorf("lava visible on row %d at session start", y)
		}
	}
}

func TestRenderLavaAndBestLine(t *testing.T) {
	s := newTestSession(t)
	snap := s.Snapshot()
	snap.HazardY = 590
	snap.CameraY = -100
	snap.HighScore = 5
	snap.HighScoreY = -50

	dst := core.NewScreen(80, 24)
	View{Shimmer: 0.5}.Render(dst, snap)

	// (590 + 100) * 23/600 = 26.45 -> lava surface below the screen
	if strings.ContainsRune(dst.Row(23), LavaChar) {
		t.Error("lava body should not be visible yet")
	}

	snap.HazardY = 450
	View{}.Render(dst, snap)
	// (450 + 100) * 23/600 = 21.08 -> surface on row 22, body on row 23
	if r := dst.Get(0, 22); r != WaveChar && r != WaveAltChar {
		t.Errorf("expected lava surface on row 22, got %q", r)
	}
	if dst.GetCell(5, 23) != (core.Cell{Rune: LavaChar, Color: core.ColorLava}) {
		t.Errorf("expected lava body on row 23, got %+v", dst.GetCell(5, 23))
	}

	// Best line at world y -50: (-50 + 100) * 23/600 = 1.9 -> row 2
	if !strings.Contains(dst.Row(2), "BEST: 5m") {
		t.Errorf("best line missing: %q", dst.Row(2))
	}
	if dst.GetCell(1, 2).Color != core.ColorGold {
		t.Errorf("best line should be gold, got %+v", dst.GetCell(1, 2))
	}
}

func TestRenderNightSky(t *testing.T) {
	snap := newTestSession(t).Snapshot()
	snap.Height = NightSkyHeight + 1

	dst := core.NewScreen(80, 24)
	View{}.Render(dst, snap)

	stars := 0
	for y := 1; y < dst.Height(); y++ {
		stars += strings.Count(dst.Row(y), string(StarChar))
	}
	if stars == 0 {
		t.Error("night sky should draw stars")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	snap := newTestSession(t).Snapshot()
	snap.Paused = true

	dst := core.NewScreen(80, 24)
	View{}.Render(dst, snap)

	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	snap := newTestSession(t).Snapshot()
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		dst := core.NewScreen(size[0], size[1])
		View{}.Render(dst, snap) // Must not panic
	}
}
