package briansbrain

import (
	"image/color"
	"strconv"

	"gridview/internal/app"
	"gridview/internal/core"
	"gridview/internal/frontend"
	rng "gridview/pkg/core"
)

// State is a Brian's Brain cell.
type State uint8

const (
	StateDead State = iota
	StateOn
	StateDying
)

// RenderCell colors firing cells white and refractory cells blue.
func (s State) RenderCell() color.RGBA {
	switch s {
	case StateOn:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case StateDying:
		return color.RGBA{R: 70, G: 110, B: 220, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}

// Config holds parameters for Brian's Brain.
type Config struct {
	Width       int
	Height      int
	Density     float64
	Generations int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Density: 0.125}
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
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["gens"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	return c
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	cfg        Config
	cur        *core.ByteGrid
	nxt        *core.ByteGrid
	generation int
}

// New creates a Brain simulation with the provided dimensions.
func New(w, h int) *Brain {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Brain with every cell dead.
func NewWithConfig(cfg Config) *Brain {
	cur := core.NewByteGrid(cfg.Width, cfg.Height)
	return &Brain{cfg: cfg, cur: cur, nxt: core.NewByteGrid(cur.W, cur.H)}
}

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return b.cur.Size() }

// At returns the state at (x, y).
func (b *Brain) At(x, y int) State { return State(b.cur.At(x, y)) }

// Toggle sets a dead cell firing and kills any other cell.
func (b *Brain) Toggle(p core.Pos) {
	if p.X < 0 || p.Y < 0 || p.X >= b.cur.W || p.Y >= b.cur.H {
		return
	}
	if State(b.cur.At(p.X, p.Y)) == StateDead {
		b.cur.Set(p.X, p.Y, uint8(StateOn))
		return
	}
	b.cur.Set(p.X, p.Y, uint8(StateDead))
}

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng.NewRNG(seed).FillChance(b.cur.Cells(), b.cfg.Density)
	b.generation = 0
}

// IsFinished reports whether the generation limit was reached.
func (b *Brain) IsFinished() bool {
	return b.cfg.Generations > 0 && b.generation >= b.cfg.Generations
}

// Step advances the automaton by one tick.
func (b *Brain) Step() core.ExecutionState {
	w, h := b.cur.W, b.cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch State(b.cur.At(x, y)) {
			case StateOn:
				b.nxt.Set(x, y, uint8(StateDying))
			case StateDying:
				b.nxt.Set(x, y, uint8(StateDead))
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := b.cur.Wrap(x+dx, y+dy)
						if State(b.cur.At(nx, ny)) == StateOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					b.nxt.Set(x, y, uint8(StateOn))
				} else {
					b.nxt.Set(x, y, uint8(StateDead))
				}
			}
		}
	}
	b.cur.Swap(b.nxt)
	b.generation++
	if b.IsFinished() {
		return core.Finished
	}
	return core.Running
}

func init() {
	app.Register("briansbrain", func(params map[string]string, cfg frontend.Config, seed int64) (app.Scene, error) {
		b := NewWithConfig(FromMap(params))
		b.Reset(seed)
		f, err := frontend.NewDense[State](b, cfg)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}
