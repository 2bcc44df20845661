package render

import "image/color"

// Canvas is the drawing surface a grid is rendered onto.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c color.RGBA)
	// FillRect fills the axis-aligned rectangle at (x, y) of size w*h.
	FillRect(x, y, w, h float32, c color.RGBA)
}
