package jumper

// Hazard is the rising lava surface.
type Hazard struct {
	start  float64
	buffer float64
	y      float64
}

// NewHazard places the lava startOffset below the viewport bottom.
func NewHazard(viewportH, startOffset, buffer float64) *Hazard {
	h := &Hazard{start: viewportH + startOffset, buffer: buffer}
	h.Reset()
	return h
}

// Reset moves the lava back to its start line.
func (h *Hazard) Reset() {
	h.y = h.start
}

// Advance raises the lava by speed world units. Negative speeds are ignored
// so the surface never recedes.
func (h *Hazard) Advance(speed float64) {
	if speed > 0 {
		h.y -= speed
	}
}

// Engulfs reports whether the player sank into the lava.
func (h *Hazard) Engulfs(p Player) bool {
	return p.Y > h.y-h.buffer
}

// Y returns the lava surface.
func (h *Hazard) Y() float64 { return h.y }
