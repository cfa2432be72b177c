package core

// Color represents a foreground color for a screen cell.
// The TUI maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the renderer.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorPink    // player body
	ColorHotPink // player nose and ears
	ColorBrown   // low-altitude platforms
	ColorSnow    // mid-altitude platforms
	ColorSlate   // high-altitude platforms
	ColorCrimson // low-altitude enemies
	ColorRoyal   // mid-altitude enemies
	ColorPurple  // high-altitude enemies
	ColorLava
	ColorEmber
	ColorGold
	ColorSkyDay
	ColorSkySnow
	ColorSkyNight
)
