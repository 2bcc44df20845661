package app

import (
	"gridview/internal/core"
	"gridview/internal/render"
)

// Snapshot steps scene up to gens times, stopping early once it finishes,
// and renders the result onto a canvas the size of the scene's window. It
// returns the canvas and the number of generations advanced.
func Snapshot(scene Scene, gens int) (*render.ImageCanvas, int) {
	ran := 0
	for ran < gens && !scene.ShouldClose() {
		ran++
		if scene.Step() == core.Finished {
			break
		}
	}
	size := scene.WindowSize()
	canvas := render.NewImageCanvas(size.W, size.H)
	scene.Render(canvas)
	return canvas, ran
}
