//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenCanvas draws onto an ebiten image, usually the screen passed to Draw.
type ScreenCanvas struct {
	dst *ebiten.Image
}

// NewScreenCanvas wraps dst.
func NewScreenCanvas(dst *ebiten.Image) *ScreenCanvas {
	return &ScreenCanvas{dst: dst}
}

// Clear fills the whole image with c.
func (s *ScreenCanvas) Clear(c color.RGBA) {
	s.dst.Fill(c)
}

// FillRect draws a filled rectangle without antialiasing so cell edges stay
// crisp.
func (s *ScreenCanvas) FillRect(x, y, w, h float32, c color.RGBA) {
	vector.DrawFilledRect(s.dst, x, y, w, h, c, false)
}
