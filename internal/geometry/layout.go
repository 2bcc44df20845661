// Package geometry maps logical grid coordinates to window pixels.
//
// Cells are square. The side length is the largest one that lets the grid,
// including a margin before, between and after every cell, fit in both window
// dimensions; the grid is then centered along the axis with space left over.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"gridview/internal/core"
)

var (
	// ErrEmptyGrid is returned for grids with a non-positive axis.
	ErrEmptyGrid = errors.New("grid must have at least one cell on each axis")
	// ErrEmptyWindow is returned for windows with a non-positive axis.
	ErrEmptyWindow = errors.New("window must be at least one pixel on each axis")
	// ErrNegativeMargin is returned for margins below zero.
	ErrNegativeMargin = errors.New("cell margin must not be negative")
	// ErrGridTooLarge is returned when the margins alone fill the window.
	ErrGridTooLarge = errors.New("grid margins do not fit in window")
)

// Layout holds the screen geometry of a grid inside a window. It is immutable;
// a new grid or window size requires a new Layout.
type Layout struct {
	window core.Size
	grid   core.Size
	margin float32

	side   float32
	pixels [2]float32
	offset [2]float32
}

// NewLayout computes the geometry of grid inside window with margin pixels
// around every cell. The window must exceed (cells+1)*margin on both axes.
func NewLayout(window, grid core.Size, margin int) (Layout, error) {
	if grid.Empty() {
		return Layout{}, fmt.Errorf("layout %dx%d: %w", grid.W, grid.H, ErrEmptyGrid)
	}
	if window.Empty() {
		return Layout{}, fmt.Errorf("layout window %dx%d: %w", window.W, window.H, ErrEmptyWindow)
	}
	if margin < 0 {
		return Layout{}, fmt.Errorf("layout margin %d: %w", margin, ErrNegativeMargin)
	}
	if window.W <= (grid.W+1)*margin || window.H <= (grid.H+1)*margin {
		return Layout{}, fmt.Errorf("layout %dx%d with margin %d in %dx%d window: %w",
			grid.W, grid.H, margin, window.W, window.H, ErrGridTooLarge)
	}

	m := float32(margin)
	win := [2]float32{float32(window.W), float32(window.H)}
	cells := [2]float32{float32(grid.W), float32(grid.H)}

	l := Layout{window: window, grid: grid, margin: m}
	l.side = float32(math.Inf(1))
	for axis := range cells {
		side := (win[axis] - (cells[axis]+1)*m) / cells[axis]
		if side < l.side {
			l.side = side
		}
	}
	for axis := range cells {
		l.pixels[axis] = cells[axis]*l.side + (cells[axis]+1)*m
		l.offset[axis] = (win[axis] - l.pixels[axis]) / 2
	}
	return l, nil
}

// Side returns the side length of a cell in pixels.
func (l Layout) Side() float32 { return l.side }

// Margin returns the gap between neighboring cells in pixels.
func (l Layout) Margin() float32 { return l.margin }

// Grid returns the grid dimensions in cells.
func (l Layout) Grid() core.Size { return l.grid }

// Window returns the window dimensions in pixels.
func (l Layout) Window() core.Size { return l.window }

// GridPixels returns the size of the whole grid, margins included.
func (l Layout) GridPixels() (float32, float32) { return l.pixels[0], l.pixels[1] }

// Translation returns the offset that centers the grid in the window.
func (l Layout) Translation() (float32, float32) { return l.offset[0], l.offset[1] }

// CellPos returns the top-left pixel of the cell at column x, row y.
func (l Layout) CellPos(x, y int) (float32, float32) {
	return l.axisPos(0, x), l.axisPos(1, y)
}

func (l Layout) axisPos(axis, cell int) float32 {
	c := float32(cell)
	return c*l.side + (c+1)*l.margin + l.offset[axis]
}

// CellAt returns the cell under the pixel (px, py). Points on a margin or
// outside the grid report ok == false.
func (l Layout) CellAt(px, py float32) (x, y int, ok bool) {
	x, okX := l.axisCell(0, px, l.grid.W)
	y, okY := l.axisCell(1, py, l.grid.H)
	if !okX || !okY {
		return 0, 0, false
	}
	return x, y, true
}

func (l Layout) axisCell(axis int, p float32, cells int) (int, bool) {
	local := p - l.offset[axis] - l.margin
	if local < 0 {
		return 0, false
	}
	pitch := l.side + l.margin
	cell := int(local / pitch)
	if cell >= cells {
		return 0, false
	}
	if local-float32(cell)*pitch >= l.side {
		return 0, false
	}
	return cell, true
}
