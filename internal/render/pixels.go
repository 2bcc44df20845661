package render

import (
	"image"
	"image/color"
	"math"
)

// ImageCanvas renders into an in-memory RGBA image. It backs headless
// snapshots and lets tests inspect rendered pixels.
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas allocates a w*h canvas.
func NewImageCanvas(w, h int) *ImageCanvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// Clear fills every pixel with col.
func (c *ImageCanvas) Clear(col color.RGBA) {
	fillRGBA(c.img.Pix, col)
}

// FillRect fills the pixels whose centers lie inside the rectangle, clipped
// to the image bounds.
func (c *ImageCanvas) FillRect(x, y, w, h float32, col color.RGBA) {
	b := c.img.Bounds()
	x0 := clampInt(roundPixel(x), b.Min.X, b.Max.X)
	y0 := clampInt(roundPixel(y), b.Min.Y, b.Max.Y)
	x1 := clampInt(roundPixel(x+w), b.Min.X, b.Max.X)
	y1 := clampInt(roundPixel(y+h), b.Min.Y, b.Max.Y)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		start := c.img.PixOffset(x0, py)
		end := c.img.PixOffset(x1, py)
		fillRGBA(c.img.Pix[start:end], col)
	}
}

// fillRGBA writes col into every 4-byte pixel of buf.
func fillRGBA(buf []byte, col color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func roundPixel(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
