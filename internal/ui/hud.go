//go:build ebiten

package ui

import (
	"image/color"

	"gridview/internal/frontend"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 4
	hudLineHeight = 16
)

// HUD draws a status line in the top-left corner of the window. H toggles it.
type HUD struct {
	name   string
	hidden bool
	line   string
	width  int

	panel *ebiten.Image
}

// NewHUD constructs a HUD labelled with the scene name.
func NewHUD(name string) *HUD {
	return &HUD{name: name}
}

// Update refreshes the status text and handles the visibility toggle.
func (h *HUD) Update(s frontend.Status) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.hidden = !h.hidden
	}
	h.line = FormatStatus(h.name, s)
}

// Draw paints the status line over the grid.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.hidden || h.line == "" {
		return
	}
	face := basicfont.Face7x13
	width := text.BoundString(face, h.line).Dx() + 2*hudPadding
	if h.panel == nil || h.width != width {
		h.panel = ebiten.NewImage(width, hudLineHeight+hudPadding)
		h.width = width
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	text.Draw(h.panel, h.line, face, hudPadding, hudLineHeight-2, color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudPadding, hudPadding)
	screen.DrawImage(h.panel, op)
}
