package elementary

import (
	"image/color"
	"strconv"

	"gridview/internal/app"
	"gridview/internal/core"
	"gridview/internal/frontend"
)

// Bit is a cell of the elementary automaton.
type Bit uint8

// RenderCell draws set bits white.
func (b Bit) RenderCell() color.RGBA {
	if b != 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{A: 255}
}

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width       int
	Height      int
	Rule        uint8
	Generations int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 96, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["gens"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
// The newest generation is the top row; older rows scroll down.
type Elementary struct {
	cfg        Config
	grid       *core.ByteGrid
	tmp        []uint8
	generation int
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	return NewWithConfig(Config{Width: w, Height: h, Rule: rule})
}

// NewWithConfig creates an automaton seeded by Reset.
func NewWithConfig(cfg Config) *Elementary {
	g := core.NewByteGrid(cfg.Width, cfg.Height)
	e := &Elementary{cfg: cfg, grid: g, tmp: make([]uint8, g.W)}
	e.Reset(0)
	return e
}

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return e.grid.Size() }

// At returns the bit at (x, y).
func (e *Elementary) At(x, y int) Bit { return Bit(e.grid.At(x, y)) }

// Toggle flips a bit of the newest generation. Other rows are history and
// ignore edits.
func (e *Elementary) Toggle(p core.Pos) {
	if p.Y != 0 || p.X < 0 || p.X >= e.grid.W {
		return
	}
	e.grid.Set(p.X, 0, e.grid.At(p.X, 0)^1)
}

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(int64) {
	e.grid.Clear()
	e.grid.Set(e.grid.W/2, 0, 1)
	e.generation = 0
}

// IsFinished reports whether the generation limit was reached.
func (e *Elementary) IsFinished() bool {
	return e.cfg.Generations > 0 && e.generation >= e.cfg.Generations
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() core.ExecutionState {
	w, h := e.grid.W, e.grid.H
	cells := e.grid.Cells()
	copy(e.tmp, e.grid.Row(0))
	copy(cells[w:], cells[:w*(h-1)])
	for x := 0; x < w; x++ {
		left := e.tmp[(x-1+w)%w]
		center := e.tmp[x]
		right := e.tmp[(x+1)%w]
		idx := (left << 2) | (center << 1) | right
		cells[x] = (e.cfg.Rule >> idx) & 1
	}
	e.generation++
	if e.IsFinished() {
		return core.Finished
	}
	return core.Running
}

func init() {
	app.Register("elementary", func(params map[string]string, cfg frontend.Config, seed int64) (app.Scene, error) {
		e := NewWithConfig(FromMap(params))
		f, err := frontend.NewDense[Bit](e, cfg)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}
