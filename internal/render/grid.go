package render

import (
	"image/color"

	"gridview/internal/core"
	"gridview/internal/geometry"
)

// DenseGrid is the read side of a dense automaton.
type DenseGrid[C core.Cell] interface {
	Size() core.Size
	At(x, y int) C
}

// DrawDense clears dst to background and draws one rectangle per grid
// coordinate in row-major order, colored by the cell's RenderCell.
func DrawDense[C core.Cell](dst Canvas, layout geometry.Layout, grid DenseGrid[C], background color.RGBA) {
	dst.Clear(background)

	size := grid.Size()
	side := layout.Side()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			px, py := layout.CellPos(x, y)
			dst.FillRect(px, py, side, side, grid.At(x, y).RenderCell())
		}
	}
}

// DrawSparse clears dst to background and draws every coordinate of the
// layout's grid, which acts as the viewport over the automaton's unbounded
// plane. Coordinates without a cell are drawn in empty.
func DrawSparse[C core.Cell](dst Canvas, layout geometry.Layout, cells map[core.Pos]C, empty, background color.RGBA) {
	dst.Clear(background)

	box := layout.Grid()
	side := layout.Side()
	for y := 0; y < box.H; y++ {
		for x := 0; x < box.W; x++ {
			col := empty
			if cell, ok := cells[core.Pos{X: x, Y: y}]; ok {
				col = cell.RenderCell()
			}
			px, py := layout.CellPos(x, y)
			dst.FillRect(px, py, side, side, col)
		}
	}
}
