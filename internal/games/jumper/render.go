package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lavajump/internal/core"
)

// Glyphs used by the renderer.
const (
	PlayerChar   = '█'
	EarChar      = '^'
	PlatformChar = '='
	EnemyChar    = 'M'
	ParticleChar = '*'
	LavaChar     = '▓'
	WaveChar     = '~'
	WaveAltChar  = '≈'
	BestChar     = '-'
	StarChar     = '.'
	FlakeChar    = '\''
)

// Sky thresholds in meters.
const (
	SnowSkyHeight  = 150
	NightSkyHeight = 300
)

// View draws a Snapshot onto a screen buffer. It never touches the session.
type View struct {
	// Shimmer shifts the lava wave pattern; any value works, the TUI tweens it.
	Shimmer float64
}

// projection maps world units to cells. The camera marks the top of the
// viewport; row 0 is reserved for the HUD.
type projection struct {
	sx, sy  float64
	offsetY float64
}

func newProjection(dst *core.Screen, snap Snapshot) projection {
	w, h := snap.World.Width, snap.World.Height
	if w <= 0 || h <= 0 {
		return projection{}
	}
	rows := float64(dst.Height() - 1)
	return projection{
		sx:      float64(dst.Width()) / w,
		sy:      rows / h,
		offsetY: -snap.CameraY,
	}
}

func (p projection) col(x float64) int {
	return int(math.Floor(x * p.sx))
}

func (p projection) row(y float64) int {
	return 1 + int(math.Floor((y+p.offsetY)*p.sy))
}

// span returns the number of cells covered by a world length, at least 1.
func span(length, scale float64) int {
	return core.Max(1, int(math.Round(length*scale)))
}

// Render draws the playfield and HUD.
func (v View) Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 {
		return
	}
	proj := newProjection(dst, snap)
	if proj.sx == 0 {
		return
	}

	v.drawSky(dst, snap)

	for _, p := range snap.Platforms {
		row := proj.row(p.Y)
		dst.DrawHLine(proj.col(p.X), row, span(p.W, proj.sx), PlatformChar, PlatformColor(p.Tier))
		if e := p.Enemy; e != nil {
			erow := proj.row(e.Y)
			dst.DrawHLine(proj.col(e.X), erow, span(e.W, proj.sx), EnemyChar, EnemyColor(e.Tier))
		}
	}

	for _, pt := range snap.Particles {
		if pt.Life <= 0.25 {
			continue // Faded
		}
		dst.SetColored(proj.col(pt.X), proj.row(pt.Y), ParticleChar, PlatformColor(pt.Tier))
	}

	v.drawBestLine(dst, snap, proj)
	v.drawPlayer(dst, snap.Player, proj)
	v.drawLava(dst, snap, proj)
	v.drawHUD(dst, snap)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (v View) drawSky(dst *core.Screen, snap Snapshot) {
	var glyph rune
	var color core.Color
	switch {
	case snap.Height > NightSkyHeight:
		glyph, color = StarChar, core.ColorSkyNight
	case snap.Height > SnowSkyHeight:
		glyph, color = FlakeChar, core.ColorSkySnow
	default:
		return
	}

	// Scroll the pattern with the camera
	shift := int(-snap.CameraY / 20)
	for y := 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7+(y-shift)*13)%37 == 0 {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

func (v View) drawBestLine(dst *core.Screen, snap Snapshot, proj projection) {
	if snap.HighScore <= 0 {
		return
	}
	row := proj.row(snap.HighScoreY)
	if row < 1 || row >= dst.Height() {
		return
	}
	for x := 0; x < dst.Width(); x += 2 {
		dst.SetColored(x, row, BestChar, core.ColorGold)
	}
	dst.DrawTextColored(1, row, fmt.Sprintf(" BEST: %dm ", snap.HighScore), core.ColorGold)
}

func (v View) drawPlayer(dst *core.Screen, p Player, proj projection) {
	x := proj.col(p.X)
	w := span(p.W, proj.sx)
	top := proj.row(p.Y)
	h := span(p.H, proj.sy)

	dst.DrawRect(core.NewRect(x, top, w, h), PlayerChar, core.ColorPink)
	if top-1 >= 1 {
		dst.SetColored(x, top-1, EarChar, core.ColorHotPink)
		dst.SetColored(x+w-1, top-1, EarChar, core.ColorHotPink)
	}
}

func (v View) drawLava(dst *core.Screen, snap Snapshot, proj projection) {
	top := core.Max(1, proj.row(snap.HazardY))
	if top >= dst.Height() {
		return
	}
	phase := int(math.Floor(v.Shimmer * 4))
	for x := 0; x < dst.Width(); x++ {
		wave := WaveChar
		if (x+phase)%4 < 2 {
			wave = WaveAltChar
		}
		dst.SetColored(x, top, wave, core.ColorEmber)
	}
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), LavaChar, core.ColorLava)
	}
}

func (v View) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	left := fmt.Sprintf(" Score: %d  Height: %dm  Best: %d", snap.Score, snap.Height, snap.HighScore)
	dst.DrawTextColored(0, 0, left, core.ColorWhite)

	right := fmt.Sprintf("%s x%.2f ", snap.Difficulty, snap.Multiplier)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorWhite)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorGray)
}

// PlatformColor maps a tier to its platform color.
func PlatformColor(t ColorTier) core.Color {
	switch t {
	case TierSnow:
		return core.ColorSnow
	case TierDark:
		return core.ColorSlate
	default:
		return core.ColorBrown
	}
}

// EnemyColor maps a tier to its enemy color.
func EnemyColor(t ColorTier) core.Color {
	switch t {
	case TierSnow:
		return core.ColorRoyal
	case TierDark:
		return core.ColorPurple
	default:
		return core.ColorCrimson
	}
}
